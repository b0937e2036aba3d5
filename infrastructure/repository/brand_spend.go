// Package repository contém as consultas de marcas e gastos executadas pelo gateway
package repository

//go:generate mockgen -source=brand_spend.go -destination=mocks/brand_spend.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/brand-spend-api/infrastructure/database/sqlstore"
	"github.com/vfg2006/brand-spend-api/internal/config"
	"github.com/vfg2006/brand-spend-api/internal/domain"
)

type BrandSpendRepository interface {
	ListBrands(ctx context.Context, limit int) (domain.QueryResult, error)
	ListDailySpend(ctx context.Context, limit int) (domain.QueryResult, error)
	GetSummary(ctx context.Context) (*domain.SummaryReport, error)
}

type StatementExecutor interface {
	Execute(ctx context.Context, stmts ...sqlstore.Statement) ([]domain.QueryResult, error)
}

type brandSpendRepository struct {
	executor StatementExecutor
	builder  squirrel.StatementBuilderType
	tables   config.Tables
}

func NewBrandSpendRepository(
	executor StatementExecutor,
	placeholder squirrel.PlaceholderFormat,
	tables config.Tables,
) BrandSpendRepository {
	return &brandSpendRepository{
		executor: executor,
		builder:  squirrel.StatementBuilder.PlaceholderFormat(placeholder),
		tables:   tables,
	}
}

func (r *brandSpendRepository) ListBrands(ctx context.Context, limit int) (domain.QueryResult, error) {
	stmt, err := r.toStatement("brands", r.builder.
		Select("*").
		From(r.tables.Brands).
		OrderBy("brand_id ASC").
		Suffix("LIMIT ?", limit),
	)
	if err != nil {
		return nil, err
	}

	return r.single(ctx, stmt)
}

func (r *brandSpendRepository) ListDailySpend(ctx context.Context, limit int) (domain.QueryResult, error) {
	stmt, err := r.toStatement("daily_spend", r.builder.
		Select("*").
		From(r.tables.Transactions).
		OrderBy("spend_amount DESC", "transaction_id ASC").
		Suffix("LIMIT ?", limit),
	)
	if err != nil {
		return nil, err
	}

	return r.single(ctx, stmt)
}

// GetSummary executa as cinco consultas do resumo em sequência. Qualquer falha
// invalida o resumo inteiro.
func (r *brandSpendRepository) GetSummary(ctx context.Context) (*domain.SummaryReport, error) {
	stmts, err := r.summaryStatements()
	if err != nil {
		return nil, err
	}

	results, err := r.executor.Execute(ctx, stmts...)
	if err != nil {
		return nil, err
	}
	if len(results) != len(stmts) {
		return nil, fmt.Errorf("repository: expected %d summary results, got %d", len(stmts), len(results))
	}

	report := &domain.SummaryReport{
		TopBrands:         results[1],
		SpendByIndustry:   results[2],
		SpendByState:      results[3],
		TxCountByIndustry: results[4],
	}
	if len(results[0]) > 0 {
		report.OverallStats = results[0][0]
	}

	return report, nil
}

func (r *brandSpendRepository) summaryStatements() ([]sqlstore.Statement, error) {
	transactions := r.tables.Transactions + " t"
	joinBrands := r.tables.Brands + " b ON b.brand_id = t.brand_id"

	builders := []struct {
		name  string
		query squirrel.SelectBuilder
	}{
		{
			name: domain.SummaryOverallStats,
			query: r.builder.
				Select(
					"SUM(t.spend_amount) AS total_spend",
					"AVG(t.spend_amount) AS avg_transaction_amount",
					"MAX(t.spend_amount) AS max_spend",
					"MIN(t.spend_amount) AS min_spend",
					"COUNT(*) AS num_transactions",
				).
				From(transactions),
		},
		{
			name: domain.SummaryTopBrands,
			query: r.builder.
				Select(
					"b.brand_id AS brand_id",
					"b.brand_name AS brand_name",
					"SUM(t.spend_amount) AS total_spend",
					"AVG(t.spend_amount) AS avg_spend",
					"COUNT(*) AS num_transactions",
				).
				From(transactions).
				Join(joinBrands).
				GroupBy("b.brand_id", "b.brand_name").
				OrderBy("total_spend DESC", "b.brand_name ASC").
				Suffix("LIMIT ?", domain.TopBrandsLimit),
		},
		{
			name: domain.SummarySpendByIndustry,
			query: r.builder.
				Select("b.industry_name AS industry_name", "SUM(t.spend_amount) AS total_spend").
				From(transactions).
				Join(joinBrands).
				GroupBy("b.industry_name").
				OrderBy("total_spend DESC", "b.industry_name ASC"),
		},
		{
			name: domain.SummarySpendByState,
			query: r.builder.
				Select("t.state_abbr AS state_abbr", "SUM(t.spend_amount) AS total_spend").
				From(transactions).
				GroupBy("t.state_abbr").
				OrderBy("total_spend DESC", "t.state_abbr ASC"),
		},
		{
			name: domain.SummaryTxCountByIndustry,
			query: r.builder.
				Select("b.industry_name AS industry_name", "COUNT(*) AS transaction_count").
				From(transactions).
				Join(joinBrands).
				GroupBy("b.industry_name").
				OrderBy("transaction_count DESC", "b.industry_name ASC"),
		},
	}

	stmts := make([]sqlstore.Statement, 0, len(builders))
	for _, b := range builders {
		stmt, err := r.toStatement(b.name, b.query)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

func (r *brandSpendRepository) single(ctx context.Context, stmt sqlstore.Statement) (domain.QueryResult, error) {
	results, err := r.executor.Execute(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("repository: expected 1 result for %s, got %d", stmt.Name, len(results))
	}
	return results[0], nil
}

func (r *brandSpendRepository) toStatement(name string, query squirrel.SelectBuilder) (sqlstore.Statement, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return sqlstore.Statement{}, fmt.Errorf("repository: building %s query: %w", name, err)
	}
	return sqlstore.Statement{Name: name, SQL: sql, Args: args}, nil
}

package reporting

//go:generate mockgen -source=service.go -destination=mocks/reporter.go -package=mocks

import (
	"context"

	"github.com/vfg2006/brand-spend-api/infrastructure/repository"
	"github.com/vfg2006/brand-spend-api/internal/domain"
)

// Nomes dos relatórios, usados nos logs e nos erros
const (
	ReportBrands     = "brands"
	ReportDailySpend = "daily_spend"
	ReportSummary    = "summary"
)

type Reporter interface {
	Brands(ctx context.Context, limit int) (domain.QueryResult, error)
	DailySpend(ctx context.Context, limit int) (domain.QueryResult, error)
	Summary(ctx context.Context) (*domain.SummaryReport, error)
}

type ReportService struct {
	repo repository.BrandSpendRepository
}

func NewReportService(repo repository.BrandSpendRepository) Reporter {
	return &ReportService{repo: repo}
}

func (s *ReportService) Brands(ctx context.Context, limit int) (domain.QueryResult, error) {
	result, err := s.repo.ListBrands(ctx, limit)
	if err != nil {
		return nil, newDatabaseError(ReportBrands, err)
	}
	return result.LowerKeys(), nil
}

func (s *ReportService) DailySpend(ctx context.Context, limit int) (domain.QueryResult, error) {
	result, err := s.repo.ListDailySpend(ctx, limit)
	if err != nil {
		return nil, newDatabaseError(ReportDailySpend, err)
	}
	return result.LowerKeys(), nil
}

// Summary devolve o resumo com chaves em minúsculas. overall_stats é sempre um
// objeto, vazio quando o banco não devolveu linha.
func (s *ReportService) Summary(ctx context.Context) (*domain.SummaryReport, error) {
	report, err := s.repo.GetSummary(ctx)
	if err != nil {
		return nil, newDatabaseError(ReportSummary, err)
	}

	return &domain.SummaryReport{
		OverallStats:      report.OverallStats.LowerKeys(),
		TopBrands:         report.TopBrands.LowerKeys(),
		SpendByIndustry:   report.SpendByIndustry.LowerKeys(),
		SpendByState:      report.SpendByState.LowerKeys(),
		TxCountByIndustry: report.TxCountByIndustry.LowerKeys(),
	}, nil
}

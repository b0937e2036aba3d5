package sqlstore

import (
	"database/sql"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/brand-spend-api/internal/domain"
)

// scanRecords reads the whole result set into records in store order.
func scanRecords(rows *sql.Rows) (domain.QueryResult, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "reading columns")
	}

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, errors.Wrap(err, "reading column types")
	}

	result := make(domain.QueryResult, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, errors.Wrap(err, "scanning row")
		}

		for i := range values {
			values[i] = normalizeValue(values[i], databaseTypeName(types, i))
		}

		result = append(result, domain.NewRecord(columns, values))
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating rows")
	}

	return result, nil
}

func databaseTypeName(types []*sql.ColumnType, i int) string {
	if i >= len(types) || types[i] == nil {
		return ""
	}
	return strings.ToUpper(types[i].DatabaseTypeName())
}

// normalizeValue reduz os valores do driver a string, número ou nulo
func normalizeValue(value any, typeName string) any {
	switch v := value.(type) {
	case []byte:
		if isNumericType(typeName) {
			if d, err := decimal.NewFromString(string(v)); err == nil {
				return jsoniter.Number(d.String())
			}
		}
		return string(v)
	case time.Time:
		if typeName == "DATE" {
			return v.Format(time.DateOnly)
		}
		return v.Format(time.RFC3339Nano)
	default:
		return v
	}
}

func isNumericType(typeName string) bool {
	return strings.HasPrefix(typeName, "NUMERIC") || strings.HasPrefix(typeName, "DECIMAL")
}

package handler

import (
	"net/url"

	"github.com/vfg2006/brand-spend-api/internal/config"
	"github.com/vfg2006/brand-spend-api/pkg/utils"
)

const limitParam = "limit"

// ParseLimit lê o parâmetro limit. Valores ausentes ou inválidos usam o padrão
// e qualquer inteiro é forçado para [MinLimit, MaxLimit]; nunca gera 4xx.
func ParseLimit(values url.Values, cfg config.Query) int {
	limit := utils.ParseIntOrDefault(values.Get(limitParam), cfg.DefaultLimit)
	return utils.Clamp(limit, cfg.MinLimit, cfg.MaxLimit)
}

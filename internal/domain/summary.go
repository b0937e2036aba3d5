package domain

// SummaryReport agrega as cinco consultas do painel de resumo
type SummaryReport struct {
	OverallStats      Record      `json:"overall_stats"`
	TopBrands         QueryResult `json:"top_brands"`
	SpendByIndustry   QueryResult `json:"spend_by_industry"`
	SpendByState      QueryResult `json:"spend_by_state"`
	TxCountByIndustry QueryResult `json:"tx_count_by_industry"`
}

// Nomes das consultas que compõem o resumo, na ordem de execução
const (
	SummaryOverallStats      = "overall_stats"
	SummaryTopBrands         = "top_brands"
	SummarySpendByIndustry   = "spend_by_industry"
	SummarySpendByState      = "spend_by_state"
	SummaryTxCountByIndustry = "tx_count_by_industry"
)

// TopBrandsLimit é o tamanho máximo do ranking de marcas
const TopBrandsLimit = 10

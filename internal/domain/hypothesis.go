package domain

const (
	ConclusionSignificant    = "Há uma diferença significativa nas vendas entre as categorias."
	ConclusionNotSignificant = "Não há diferença significativa nas vendas entre as categorias."
)

type GroupSummary struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
	Mean     float64  `json:"mean"`
}

// HypothesisResult é o resultado do ANOVA de um fator entre as categorias
type HypothesisResult struct {
	FStatistic  float64        `json:"f_statistic"`
	PValue      float64        `json:"p_value"`
	Alpha       float64        `json:"alpha"`
	Significant bool           `json:"significant"`
	Conclusion  string         `json:"conclusion"`
	Groups      []GroupSummary `json:"groups"`
}

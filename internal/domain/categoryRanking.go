package domain

// CategoryAggregate é o total de vendas de uma categoria e sua posição no ranking
type CategoryAggregate struct {
	Category   Category `json:"category"`
	TotalSales float64  `json:"total_sales"`
	Position   int      `json:"position"`
}

type CategoryRanking []CategoryAggregate

// Total soma os totais de todas as categorias
func (r CategoryRanking) Total() float64 {
	total := 0.0
	for _, item := range r {
		total += item.TotalSales
	}

	return total
}

// Labels devolve os nomes das categorias na ordem do ranking
func (r CategoryRanking) Labels() []string {
	labels := make([]string, len(r))
	for i, item := range r {
		labels[i] = string(item.Category)
	}

	return labels
}

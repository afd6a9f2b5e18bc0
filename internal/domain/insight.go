package domain

// CleaningResult é o conjunto de dados limpo, sem nulos em SaleAmount
type CleaningResult struct {
	Dataset     Dataset `json:"-"`
	FillValue   float64 `json:"fill_value"`
	FilledCount int     `json:"filled_count"`
}

// SummaryStatistics espelha o describe() do valor de venda, arredondado para duas casas
type SummaryStatistics struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

package domain

import "time"

type Category string

const (
	CategoryElectronics Category = "Eletrônicos"
	CategoryClothing    Category = "Vestuário"
	CategoryHomeGarden  Category = "Casa e Jardim"
)

// Categories mantém a ordem fixa das categorias, usada em sorteios e desempates
var Categories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryHomeGarden,
}

// SalesRecord representa as vendas de um dia. SaleAmount nulo indica valor ausente.
type SalesRecord struct {
	Date          time.Time `json:"date"`
	SaleAmount    *float64  `json:"sale_amount"`
	Category      Category  `json:"category"`
	MarketingCost float64   `json:"marketing_cost"`
}

type Dataset []SalesRecord

// Clone devolve uma cópia profunda, sem compartilhar os ponteiros de SaleAmount
func (d Dataset) Clone() Dataset {
	clone := make(Dataset, len(d))
	for i, record := range d {
		clone[i] = record
		if record.SaleAmount != nil {
			amount := *record.SaleAmount
			clone[i].SaleAmount = &amount
		}
	}

	return clone
}

// MissingCount conta os registros com SaleAmount nulo
func (d Dataset) MissingCount() int {
	missing := 0
	for _, record := range d {
		if record.SaleAmount == nil {
			missing++
		}
	}

	return missing
}

// SaleAmounts devolve os valores de venda na ordem dos registros, ignorando nulos
func (d Dataset) SaleAmounts() []float64 {
	amounts := make([]float64, 0, len(d))
	for _, record := range d {
		if record.SaleAmount != nil {
			amounts = append(amounts, *record.SaleAmount)
		}
	}

	return amounts
}

// MarketingCosts devolve os custos de marketing na ordem dos registros
func (d Dataset) MarketingCosts() []float64 {
	costs := make([]float64, len(d))
	for i, record := range d {
		costs[i] = record.MarketingCost
	}

	return costs
}

// SaleAmountsByCategory agrupa os valores de venda não nulos por categoria
func (d Dataset) SaleAmountsByCategory() map[Category][]float64 {
	groups := make(map[Category][]float64)
	for _, record := range d {
		if record.SaleAmount == nil {
			continue
		}
		groups[record.Category] = append(groups[record.Category], *record.SaleAmount)
	}

	return groups
}

// Float64Ptr é um atalho para montar registros em testes e geradores
func Float64Ptr(v float64) *float64 {
	return &v
}

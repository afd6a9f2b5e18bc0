package insighting

import (
	"github.com/vfg2006/sales-eda/internal/domain"
)

// Describer define a interface para obter as estatísticas descritivas do valor de venda
type Describer interface {
	// Describe calcula count, média, desvio padrão, mínimo, quartis e máximo de um conjunto limpo
	Describe(dataset domain.Dataset) (*domain.SummaryStatistics, error)
}

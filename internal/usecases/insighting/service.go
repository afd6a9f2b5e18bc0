package insighting

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-eda/internal/domain"
	"github.com/vfg2006/sales-eda/pkg/analysisErrors"
	"github.com/vfg2006/sales-eda/pkg/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Service struct{}

func NewService() Describer {
	return &Service{}
}

// Describe calcula as estatísticas descritivas do valor de venda, arredondadas para duas casas
func (s *Service) Describe(dataset domain.Dataset) (*domain.SummaryStatistics, error) {
	if len(dataset) == 0 {
		return nil, analysisErrors.Degenerate(string(domain.StageAggregation), "conjunto de dados vazio")
	}

	if missing := dataset.MissingCount(); missing > 0 {
		return nil, analysisErrors.Degenerate(string(domain.StageAggregation),
			"conjunto ainda possui %d valores de venda nulos", missing)
	}

	amounts := dataset.SaleAmounts()

	sorted := make([]float64, len(amounts))
	copy(sorted, amounts)
	sort.Float64s(sorted)

	// Desvio padrão amostral (n-1). Com uma única observação fica zero.
	std := 0.0
	if len(sorted) > 1 {
		std = stat.StdDev(sorted, nil)
	}

	summary := &domain.SummaryStatistics{
		Count:  len(sorted),
		Mean:   utils.RoundWithTwoDecimalPlace(stat.Mean(sorted, nil)),
		Std:    utils.RoundWithTwoDecimalPlace(std),
		Min:    utils.RoundWithTwoDecimalPlace(floats.Min(sorted)),
		Q25:    utils.RoundWithTwoDecimalPlace(Quantile(sorted, 0.25)),
		Median: utils.RoundWithTwoDecimalPlace(Quantile(sorted, 0.5)),
		Q75:    utils.RoundWithTwoDecimalPlace(Quantile(sorted, 0.75)),
		Max:    utils.RoundWithTwoDecimalPlace(floats.Max(sorted)),
	}

	logrus.WithFields(logrus.Fields{
		"count": summary.Count,
		"mean":  summary.Mean,
		"std":   summary.Std,
	}).Debug("Estatísticas descritivas calculadas")

	return summary, nil
}

// Quantile interpola linearmente entre as observações vizinhas da posição (n-1)*p.
// sorted deve estar em ordem crescente e não vazio.
func Quantile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lower := math.Floor(pos)
	i := int(lower)

	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	return sorted[i] + (pos-lower)*(sorted[i+1]-sorted[i])
}

package hypothesis

import (
	"math"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-eda/internal/domain"
	"github.com/vfg2006/sales-eda/pkg/analysisErrors"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Tester executa a ANOVA de um fator do valor de venda entre categorias
type Tester interface {
	Test(dataset domain.Dataset) (*domain.HypothesisResult, error)
}

type Service struct {
	alpha float64
}

func NewService(alpha float64) Tester {
	return &Service{alpha: alpha}
}

func (s *Service) Test(dataset domain.Dataset) (*domain.HypothesisResult, error) {
	stage := string(domain.StageHypothesis)

	if missing := dataset.MissingCount(); missing > 0 {
		return nil, analysisErrors.Degenerate(stage, "conjunto ainda possui %d valores de venda nulos", missing)
	}

	byCategory := dataset.SaleAmountsByCategory()

	groups := make([][]float64, 0, len(domain.Categories))
	summaries := make([]domain.GroupSummary, 0, len(domain.Categories))
	for _, category := range domain.Categories {
		values, exists := byCategory[category]
		if !exists {
			continue
		}
		if len(values) < 2 {
			return nil, analysisErrors.Insufficient(stage,
				"categoria %q possui apenas %d observação", category, len(values))
		}
		groups = append(groups, values)
		summaries = append(summaries, domain.GroupSummary{
			Category: category,
			Count:    len(values),
			Mean:     stat.Mean(values, nil),
		})
	}

	if len(groups) < 2 {
		return nil, analysisErrors.Insufficient(stage,
			"são necessárias ao menos 2 categorias, encontradas %d", len(groups))
	}

	fStatistic, pValue, err := OneWayANOVA(groups)
	if err != nil {
		return nil, err
	}

	result := &domain.HypothesisResult{
		FStatistic:  fStatistic,
		PValue:      pValue,
		Alpha:       s.alpha,
		Significant: pValue < s.alpha,
		Groups:      summaries,
	}

	result.Conclusion = domain.ConclusionNotSignificant
	if result.Significant {
		result.Conclusion = domain.ConclusionSignificant
	}

	logrus.WithFields(logrus.Fields{
		"f_statistic": fStatistic,
		"p_value":     pValue,
		"groups":      len(groups),
	}).Debug("ANOVA calculada")

	return result, nil
}

// OneWayANOVA retorna a estatística F e o p-valor para grupos com ao menos 2 observações cada
func OneWayANOVA(groups [][]float64) (float64, float64, error) {
	stage := string(domain.StageHypothesis)

	total := 0
	sum := 0.0
	for _, group := range groups {
		total += len(group)
		for _, value := range group {
			sum += value
		}
	}
	grandMean := sum / float64(total)

	between, within := 0.0, 0.0
	for _, group := range groups {
		mean := stat.Mean(group, nil)
		between += float64(len(group)) * (mean - grandMean) * (mean - grandMean)
		for _, value := range group {
			within += (value - mean) * (value - mean)
		}
	}

	dfBetween := float64(len(groups) - 1)
	dfWithin := float64(total - len(groups))

	if within == 0 {
		return 0, 0, analysisErrors.Degenerate(stage, "variância dentro dos grupos é zero")
	}

	fStatistic := (between / dfBetween) / (within / dfWithin)
	if math.IsNaN(fStatistic) || math.IsInf(fStatistic, 0) {
		return 0, 0, analysisErrors.Degenerate(stage, "estatística F indefinida")
	}

	pValue := distuv.F{D1: dfBetween, D2: dfWithin}.Survival(fStatistic)

	return fStatistic, pValue, nil
}

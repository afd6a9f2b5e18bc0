package cleaning

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-eda/internal/domain"
	"github.com/vfg2006/sales-eda/pkg/analysisErrors"
	"gonum.org/v1/gonum/stat"
)

// Cleaner define a interface para preencher valores de venda ausentes
type Cleaner interface {
	Clean(dataset domain.Dataset) (*domain.CleaningResult, error)
}

type Service struct{}

func NewService() Cleaner {
	return &Service{}
}

// Clean substitui cada valor de venda nulo pela média global dos valores presentes.
// A média é calculada uma única vez, antes de qualquer substituição, e vale para todas as categorias.
// O conjunto recebido não é alterado.
func (s *Service) Clean(dataset domain.Dataset) (*domain.CleaningResult, error) {
	amounts := dataset.SaleAmounts()
	if len(amounts) == 0 {
		return nil, analysisErrors.Degenerate(string(domain.StageCleaning),
			"todos os %d valores de venda são nulos, média indefinida", len(dataset))
	}

	fillValue := stat.Mean(amounts, nil)

	cleaned := dataset.Clone()
	filled := 0
	for i := range cleaned {
		if cleaned[i].SaleAmount == nil {
			cleaned[i].SaleAmount = domain.Float64Ptr(fillValue)
			filled++
		}
	}

	logrus.WithFields(logrus.Fields{
		"fill_value": fillValue,
		"filled":     filled,
		"records":    len(cleaned),
	}).Info("Valores de venda ausentes preenchidos com a média")

	return &domain.CleaningResult{
		Dataset:     cleaned,
		FillValue:   fillValue,
		FilledCount: filled,
	}, nil
}

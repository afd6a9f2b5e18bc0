package generating

import (
	"math"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-eda/internal/config"
	"github.com/vfg2006/sales-eda/internal/domain"
	"github.com/vfg2006/sales-eda/pkg/analysisErrors"
	"github.com/vfg2006/sales-eda/pkg/utils"
)

// Generator define a interface para fabricar o conjunto de dados sintético
type Generator interface {
	Generate() (domain.Dataset, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Generator {
	return &Service{
		cfg: cfg,
	}
}

// Generate fabrica um registro por dia a partir da data inicial e anula uma fração dos valores de venda.
// Toda a aleatoriedade vem de um único gerador semeado com cfg.App.Seed.
func (s *Service) Generate() (domain.Dataset, error) {
	g := s.cfg.Generator

	if g.RecordCount <= 0 {
		return nil, analysisErrors.InvalidConfig("quantidade de registros deve ser positiva, recebido %d", g.RecordCount)
	}
	if g.SaleAmountMin > g.SaleAmountMax {
		return nil, analysisErrors.InvalidConfig("valor de venda mínimo (%.2f) maior que o máximo (%.2f)", g.SaleAmountMin, g.SaleAmountMax)
	}
	if g.MarketingCostMin > g.MarketingCostMax {
		return nil, analysisErrors.InvalidConfig("custo de marketing mínimo (%.2f) maior que o máximo (%.2f)", g.MarketingCostMin, g.MarketingCostMax)
	}
	if g.MissingFraction < 0 || g.MissingFraction > 1 {
		return nil, analysisErrors.InvalidConfig("fração de nulos fora de [0,1]: %v", g.MissingFraction)
	}

	rng := utils.NewRand(s.cfg.App.Seed)
	dates := utils.DateRange(g.StartDate, g.RecordCount)

	dataset := make(domain.Dataset, g.RecordCount)

	// Cada coluna é sorteada inteira antes da seguinte
	for i := range dataset {
		dataset[i].Date = dates[i]
		dataset[i].SaleAmount = domain.Float64Ptr(uniform(rng, g.SaleAmountMin, g.SaleAmountMax))
	}

	for i := range dataset {
		dataset[i].Category = domain.Categories[rng.IntN(len(domain.Categories))]
	}

	for i := range dataset {
		dataset[i].MarketingCost = uniform(rng, g.MarketingCostMin, g.MarketingCostMax)
	}

	missing := MissingCount(g.RecordCount, g.MissingFraction)
	for _, idx := range rng.Perm(g.RecordCount)[:missing] {
		dataset[idx].SaleAmount = nil
	}

	logrus.WithFields(logrus.Fields{
		"records":    len(dataset),
		"missing":    missing,
		"seed":       s.cfg.App.Seed,
		"start_date": g.StartDate.Format("2006-01-02"),
	}).Info("Conjunto de dados sintético gerado")

	return dataset, nil
}

// MissingCount devolve quantos registros recebem valor nulo: round(fraction * n)
func MissingCount(n int, fraction float64) int {
	missing := int(math.Round(fraction * float64(n)))
	if missing > n {
		return n
	}

	return missing
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	return utils.RoundWithTwoDecimalPlace(min + rng.Float64()*(max-min))
}

package forecasting

import (
	"math"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-eda/internal/config"
	"github.com/vfg2006/sales-eda/internal/domain"
	"github.com/vfg2006/sales-eda/pkg/analysisErrors"
	"github.com/vfg2006/sales-eda/pkg/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Forecaster ajusta a regressão linear do valor de venda sobre o custo de marketing
type Forecaster interface {
	Fit(dataset domain.Dataset) (*domain.RegressionResult, error)
}

type Service struct {
	testSize float64
	seed     uint64
}

func NewService(cfg *config.Config) Forecaster {
	return &Service{
		testSize: cfg.Analysis.TestSize,
		seed:     cfg.App.Seed,
	}
}

func (s *Service) Fit(dataset domain.Dataset) (*domain.RegressionResult, error) {
	stage := string(domain.StageRegression)

	if missing := dataset.MissingCount(); missing > 0 {
		return nil, analysisErrors.Degenerate(stage, "conjunto ainda possui %d valores de venda nulos", missing)
	}

	x := dataset.MarketingCosts()
	y := dataset.SaleAmounts()

	train, test := Split(len(dataset), s.testSize, s.seed)
	if len(train) < 2 || len(test) < 1 {
		return nil, analysisErrors.Degenerate(stage,
			"divisão inválida: %d registros de treino e %d de teste", len(train), len(test))
	}

	xTrain, yTrain := pick(x, train), pick(y, train)
	xTest, yTest := pick(x, test), pick(y, test)

	if floats.Min(xTrain) == floats.Max(xTrain) {
		return nil, analysisErrors.Degenerate(stage, "custo de marketing constante no conjunto de treino")
	}

	intercept, slope := stat.LinearRegression(xTrain, yTrain, nil, false)

	result := &domain.RegressionResult{
		Intercept:    intercept,
		Coefficients: []float64{slope},
		TrainSize:    len(train),
		TestSize:     len(test),
		TestInputs:   xTest,
		Actual:       yTest,
	}

	result.Predictions = make([]float64, len(xTest))
	for i, value := range xTest {
		result.Predictions[i] = result.Predict(value)
	}

	result.MeanSquaredError = MeanSquaredError(yTest, result.Predictions)
	result.RSquared = RSquared(yTest, result.Predictions)

	logrus.WithFields(logrus.Fields{
		"intercept": intercept,
		"slope":     slope,
		"mse":       result.MeanSquaredError,
		"r2":        result.RSquared,
	}).Debug("Modelo de regressão ajustado")

	return result, nil
}

// Split embaralha os índices com a semente e separa os primeiros ceil(testSize*n) para teste
func Split(n int, testSize float64, seed uint64) ([]int, []int) {
	testCount := int(math.Ceil(testSize * float64(n)))
	if testCount > n {
		testCount = n
	}

	perm := utils.NewRand(seed).Perm(n)

	return perm[testCount:], perm[:testCount]
}

func MeanSquaredError(actual, predicted []float64) float64 {
	if len(actual) == 0 {
		return 0
	}

	sum := 0.0
	for i := range actual {
		diff := actual[i] - predicted[i]
		sum += diff * diff
	}

	return sum / float64(len(actual))
}

// RSquared segue 1 - SS_res/SS_tot. Com SS_tot zero, vale 1 para ajuste perfeito e 0 caso contrário.
func RSquared(actual, predicted []float64) float64 {
	if len(actual) == 0 {
		return 0
	}

	mean := stat.Mean(actual, nil)

	ssRes, ssTot := 0.0, 0.0
	for i := range actual {
		ssRes += (actual[i] - predicted[i]) * (actual[i] - predicted[i])
		ssTot += (actual[i] - mean) * (actual[i] - mean)
	}

	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}

	return 1 - ssRes/ssTot
}

func pick(values []float64, indexes []int) []float64 {
	picked := make([]float64, len(indexes))
	for i, index := range indexes {
		picked[i] = values[index]
	}
	return picked
}

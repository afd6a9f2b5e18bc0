package forecasting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-eda/internal/config"
	"github.com/vfg2006/sales-eda/internal/domain"
	"github.com/vfg2006/sales-eda/internal/usecases/cleaning"
	"github.com/vfg2006/sales-eda/internal/usecases/generating"
	"github.com/vfg2006/sales-eda/pkg/analysisErrors"
)

func linearDataset(n int, intercept, slope float64) domain.Dataset {
	dataset := make(domain.Dataset, n)
	for i := range dataset {
		x := float64(i + 1)
		dataset[i] = domain.SalesRecord{
			Category:      domain.CategoryElectronics,
			MarketingCost: x,
			SaleAmount:    domain.Float64Ptr(intercept + slope*x),
		}
	}
	return dataset
}

func generatedDataset(t *testing.T, cfg *config.Config) domain.Dataset {
	t.Helper()

	dataset, err := generating.NewService(cfg).Generate()
	require.NoError(t, err)

	cleaned, err := cleaning.NewService().Clean(dataset)
	require.NoError(t, err)

	return cleaned.Dataset
}

func TestSplit(t *testing.T) {
	train, test := Split(365, 0.2, 42)

	assert.Len(t, test, 73)
	assert.Len(t, train, 292)

	seen := make(map[int]bool, 365)
	for _, index := range append(append([]int{}, train...), test...) {
		assert.False(t, seen[index], "índice %d repetido", index)
		seen[index] = true
	}
	assert.Len(t, seen, 365)

	trainAgain, testAgain := Split(365, 0.2, 42)
	assert.Equal(t, train, trainAgain)
	assert.Equal(t, test, testAgain)
}

func TestSplit_ArredondaParaCima(t *testing.T) {
	train, test := Split(10, 0.25, 1)

	assert.Len(t, test, 3)
	assert.Len(t, train, 7)
}

func TestFit_AjustePerfeito(t *testing.T) {
	cfg := config.Default()

	result, err := NewService(cfg).Fit(linearDataset(50, 3, 2))
	require.NoError(t, err)

	assert.InDelta(t, 3.0, result.Intercept, 1e-9)
	require.Len(t, result.Coefficients, 1)
	assert.InDelta(t, 2.0, result.Coefficients[0], 1e-9)
	assert.InDelta(t, 0.0, result.MeanSquaredError, 1e-9)
	assert.InDelta(t, 1.0, result.RSquared, 1e-9)
	assert.Equal(t, 40, result.TrainSize)
	assert.Equal(t, 10, result.TestSize)
	assert.Len(t, result.Predictions, 10)
}

func TestFit_Deterministico(t *testing.T) {
	cfg := config.Default()
	dataset := generatedDataset(t, cfg)

	first, err := NewService(cfg).Fit(dataset)
	require.NoError(t, err)
	second, err := NewService(cfg).Fit(dataset)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 292, first.TrainSize)
	assert.Equal(t, 73, first.TestSize)
}

func TestFit_RSquaredConfereComCalculoManual(t *testing.T) {
	cfg := config.Default()

	result, err := NewService(cfg).Fit(generatedDataset(t, cfg))
	require.NoError(t, err)

	mean := 0.0
	for _, value := range result.Actual {
		mean += value
	}
	mean /= float64(len(result.Actual))

	ssRes, ssTot := 0.0, 0.0
	for i, value := range result.Actual {
		ssRes += (value - result.Predictions[i]) * (value - result.Predictions[i])
		ssTot += (value - mean) * (value - mean)
	}

	assert.InDelta(t, 1-ssRes/ssTot, result.RSquared, 1e-6)
	assert.InDelta(t, ssRes/float64(len(result.Actual)), result.MeanSquaredError, 1e-6)
}

func TestFit_EntradaDegenerada(t *testing.T) {
	constant := linearDataset(20, 1, 1)
	for i := range constant {
		constant[i].MarketingCost = 500
	}

	withNull := linearDataset(20, 1, 1)
	withNull[3].SaleAmount = nil

	tests := []struct {
		name    string
		dataset domain.Dataset
	}{
		{name: "custo de marketing constante", dataset: constant},
		{name: "valor nulo", dataset: withNull},
		{name: "poucos registros", dataset: linearDataset(2, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(config.Default()).Fit(tt.dataset)

			assert.ErrorIs(t, err, analysisErrors.ErrDegenerateInput)
		})
	}
}

func TestRSquared(t *testing.T) {
	assert.Equal(t, 1.0, RSquared([]float64{5, 5}, []float64{5, 5}))
	assert.Equal(t, 0.0, RSquared([]float64{5, 5}, []float64{4, 6}))
	assert.InDelta(t, 0.75, RSquared([]float64{0, 2}, []float64{0.5, 1.5}), 1e-12)
}

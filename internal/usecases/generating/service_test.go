package generating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-eda/internal/config"
	"github.com/vfg2006/sales-eda/internal/domain"
	"github.com/vfg2006/sales-eda/pkg/analysisErrors"
)

func TestGenerate_PadraoDoRelatorio(t *testing.T) {
	cfg := config.Default()

	dataset, err := NewService(cfg).Generate()
	require.NoError(t, err)

	require.Len(t, dataset, 365)
	assert.Equal(t, "2023-01-01", dataset[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2023-12-31", dataset[364].Date.Format("2006-01-02"))
	assert.Equal(t, 18, dataset.MissingCount())

	for i, record := range dataset {
		if i > 0 {
			assert.Equal(t, 24.0, record.Date.Sub(dataset[i-1].Date).Hours())
		}
		assert.Contains(t, domain.Categories, record.Category)
		assert.GreaterOrEqual(t, record.MarketingCost, 10.0)
		assert.LessOrEqual(t, record.MarketingCost, 100.0)
		assert.InDelta(t, record.MarketingCost, float64(int(record.MarketingCost*100+0.5))/100, 1e-9)

		if record.SaleAmount != nil {
			assert.GreaterOrEqual(t, *record.SaleAmount, 50.0)
			assert.LessOrEqual(t, *record.SaleAmount, 500.0)
		}
	}
}

func TestGenerate_MesmaSementeMesmoResultado(t *testing.T) {
	cfg := config.Default()

	first, err := NewService(cfg).Generate()
	require.NoError(t, err)
	second, err := NewService(cfg).Generate()
	require.NoError(t, err)

	assert.Equal(t, first, second)

	other := config.Default()
	other.App.Seed = 7
	third, err := NewService(other).Generate()
	require.NoError(t, err)

	assert.NotEqual(t, first, third)
}

func TestGenerate_ConfiguracaoInvalida(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{name: "sem registros", mutate: func(c *config.Config) { c.Generator.RecordCount = 0 }},
		{name: "fração acima de um", mutate: func(c *config.Config) { c.Generator.MissingFraction = 1.5 }},
		{name: "venda mínima maior que a máxima", mutate: func(c *config.Config) { c.Generator.SaleAmountMin = 600 }},
		{name: "custo mínimo maior que o máximo", mutate: func(c *config.Config) { c.Generator.MarketingCostMin = 200 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)

			_, err := NewService(cfg).Generate()

			assert.ErrorIs(t, err, analysisErrors.ErrInvalidConfig)
		})
	}
}

func TestMissingCount(t *testing.T) {
	tests := []struct {
		n        int
		fraction float64
		want     int
	}{
		{n: 365, fraction: 0.05, want: 18},
		{n: 10, fraction: 0, want: 0},
		{n: 10, fraction: 1, want: 10},
		{n: 10, fraction: 0.25, want: 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MissingCount(tt.n, tt.fraction))
	}
}

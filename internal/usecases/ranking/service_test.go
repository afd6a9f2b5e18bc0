package ranking

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

func record(category domain.Category, amount float64) domain.SalesRecord {
	return domain.SalesRecord{Category: category, SaleAmount: domain.Float64Ptr(amount)}
}

func TestRankCategories(t *testing.T) {
	electronics := domain.CategoryElectronics
	clothing := domain.CategoryClothing
	home := domain.CategoryHomeGarden

	tests := []struct {
		name    string
		dataset domain.Dataset
		want    domain.CategoryRanking
	}{
		{
			name: "ordem decrescente por total",
			dataset: domain.Dataset{
				record(electronics, 100), record(clothing, 50), record(home, 25),
				record(electronics, 100), record(clothing, 50), record(home, 25),
				record(electronics, 100), record(clothing, 50), record(home, 25),
				record(electronics, 100),
			},
			want: domain.CategoryRanking{
				{Category: electronics, TotalSales: 400, Position: 1},
				{Category: clothing, TotalSales: 150, Position: 2},
				{Category: home, TotalSales: 75, Position: 3},
			},
		},
		{
			name: "categoria de menor contagem pode liderar",
			dataset: domain.Dataset{
				record(electronics, 10), record(electronics, 10),
				record(home, 500),
			},
			want: domain.CategoryRanking{
				{Category: home, TotalSales: 500, Position: 1},
				{Category: electronics, TotalSales: 20, Position: 2},
			},
		},
		{
			name: "empate mantém ordem fixa",
			dataset: domain.Dataset{
				record(home, 30), record(clothing, 30), record(electronics, 30),
			},
			want: domain.CategoryRanking{
				{Category: electronics, TotalSales: 30, Position: 1},
				{Category: clothing, TotalSales: 30, Position: 2},
				{Category: home, TotalSales: 30, Position: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranking, err := NewCategoryRankingService().RankCategories(tt.dataset)
			require.NoError(t, err)

			assert.Equal(t, tt.want, ranking)
		})
	}
}

func TestRankCategories_SomaIgualAoTotal(t *testing.T) {
	cfg := config.Default()
	dataset, err := generating.NewService(cfg).Generate()
	require.NoError(t, err)

	cleaned, err := cleaning.NewService().Clean(dataset)
	require.NoError(t, err)

	ranking, err := NewCategoryRankingService().RankCategories(cleaned.Dataset)
	require.NoError(t, err)

	total := 0.0
	for _, amount := range cleaned.Dataset.SaleAmounts() {
		total += amount
	}

	assert.InDelta(t, total, ranking.Total(), 1e-6)
	for i := 1; i < len(ranking); i++ {
		assert.GreaterOrEqual(t, ranking[i-1].TotalSales, ranking[i].TotalSales)
	}
}

func TestRankCategories_EntradaInvalida(t *testing.T) {
	_, err := NewCategoryRankingService().RankCategories(domain.Dataset{})
	assert.ErrorIs(t, err, analysisErrors.ErrDegenerateInput)

	_, err = NewCategoryRankingService().RankCategories(domain.Dataset{{Category: domain.CategoryClothing}})
	assert.ErrorIs(t, err, analysisErrors.ErrDegenerateInput)
}

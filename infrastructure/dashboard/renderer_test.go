package dashboard

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-eda/internal/config"
	"github.com/vfg2006/sales-eda/internal/domain"
	"github.com/vfg2006/sales-eda/pkg/analysisErrors"
)

func testConfig(path string) config.Dashboard {
	return config.Dashboard{
		Enabled:       true,
		Path:          path,
		WidthInches:   8,
		HeightInches:  6,
		HistogramBins: 10,
	}
}

func sampleInput() domain.DashboardInput {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	dataset := make(domain.Dataset, 60)
	for i := range dataset {
		dataset[i] = domain.SalesRecord{
			Date:          start.AddDate(0, 0, i),
			SaleAmount:    domain.Float64Ptr(100 + float64(i%17)*12.5),
			Category:      domain.Categories[i%len(domain.Categories)],
			MarketingCost: 10 + float64(i),
		}
	}

	return domain.DashboardInput{
		Dataset: dataset,
		Ranking: domain.CategoryRanking{
			{Category: domain.CategoryElectronics, TotalSales: 3000, Position: 1},
			{Category: domain.CategoryClothing, TotalSales: 2500, Position: 2},
			{Category: domain.CategoryHomeGarden, TotalSales: 2000, Position: 3},
		},
		Regression: &domain.RegressionResult{
			Intercept:    10,
			Coefficients: []float64{1},
			RSquared:     0.42,
			Actual:       []float64{100, 150, 200, 250},
			Predictions:  []float64{110, 140, 210, 240},
		},
	}
}

func assertPNG(t *testing.T, path string) {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 0)
}

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.png")

	result, err := NewRenderer(testConfig(path)).Render(sampleInput())
	require.NoError(t, err)

	assert.True(t, result.Saved)
	assert.False(t, result.Degraded())
	assert.Equal(t, path, result.Path)
	require.Len(t, result.Panels, 4)
	assert.Equal(t, TitleTrend, result.Panels[0].Title)
	assert.Equal(t, TitleDistribution, result.Panels[1].Title)
	assert.Equal(t, TitleCategories, result.Panels[2].Title)
	assert.Equal(t, TitleModel, result.Panels[3].Title)

	assertPNG(t, path)
}

func TestRender_EntradaVazia(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vazio", "dashboard.png")

	result, err := NewRenderer(testConfig(path)).Render(domain.DashboardInput{})

	assert.ErrorIs(t, err, analysisErrors.ErrRender)
	require.NotNil(t, result)
	assert.True(t, result.Saved)
	assert.True(t, result.Degraded())
	for _, panel := range result.Panels {
		assert.False(t, panel.Rendered, panel.Title)
		assert.NotEmpty(t, panel.Err, panel.Title)
	}

	assertPNG(t, path)
}

func TestRender_UmPainelFalha(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.png")
	input := sampleInput()
	input.Regression = nil

	result, err := NewRenderer(testConfig(path)).Render(input)

	assert.ErrorIs(t, err, analysisErrors.ErrRender)
	assert.True(t, result.Saved)
	assert.True(t, result.Panels[0].Rendered)
	assert.True(t, result.Panels[1].Rendered)
	assert.True(t, result.Panels[2].Rendered)
	assert.False(t, result.Panels[3].Rendered)
}

func TestRender_NaoAlteraEntrada(t *testing.T) {
	input := sampleInput()
	before := input.Dataset.Clone()

	_, err := NewRenderer(testConfig(filepath.Join(t.TempDir(), "d.png"))).Render(input)
	require.NoError(t, err)

	assert.Equal(t, before, input.Dataset)
}

func TestRender_FalhaAoGravar(t *testing.T) {
	dir := t.TempDir()

	result, err := NewRenderer(testConfig(dir)).Render(sampleInput())

	assert.ErrorIs(t, err, analysisErrors.ErrRender)
	assert.False(t, result.Saved)
	assert.NotEmpty(t, result.Err)
}

func TestDensityCurve(t *testing.T) {
	assert.Nil(t, densityCurve([]float64{5, 5, 5}, 1))
	assert.Nil(t, densityCurve([]float64{5}, 1))

	curve := densityCurve([]float64{1, 2, 3, 4, 5}, 1)
	require.Len(t, curve, kdePoints)

	area := 0.0
	for i := 1; i < len(curve); i++ {
		area += (curve[i].X - curve[i-1].X) * (curve[i].Y + curve[i-1].Y) / 2
	}
	assert.InDelta(t, 1.0, area, 0.01)
}

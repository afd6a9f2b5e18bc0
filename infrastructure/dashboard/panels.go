package dashboard

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-eda/internal/domain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const kdePoints = 200

var (
	scatterColor = color.NRGBA{R: 31, G: 119, B: 180, A: 153}
	diagonalRed  = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

var errEmptySeries = errors.New("série vazia")

func trendPanel(p *plot.Plot, dataset domain.Dataset) error {
	points := make(plotter.XYs, 0, len(dataset))
	for _, record := range dataset {
		if record.SaleAmount == nil {
			continue
		}
		points = append(points, plotter.XY{X: float64(record.Date.Unix()), Y: *record.SaleAmount})
	}

	if len(points) == 0 {
		return errors.Wrap(errEmptySeries, "tendência de vendas")
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].X < points[j].X })

	line, err := plotter.NewLine(points)
	if err != nil {
		return errors.Wrap(err, "falha ao criar linha de tendência")
	}
	line.Color = plotutil.Color(0)

	p.X.Label.Text = "Data"
	p.Y.Label.Text = "Valor da Venda"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}
	p.Add(plotter.NewGrid(), line)

	return nil
}

func distributionPanel(p *plot.Plot, dataset domain.Dataset, bins int) error {
	values := plotter.Values(dataset.SaleAmounts())
	if len(values) == 0 {
		return errors.Wrap(errEmptySeries, "distribuição de vendas")
	}

	hist, err := plotter.NewHist(values, bins)
	if err != nil {
		return errors.Wrap(err, "falha ao criar histograma")
	}
	hist.FillColor = plotutil.Color(0)

	p.X.Label.Text = "Valor da Venda"
	p.Y.Label.Text = "Frequência"
	p.Add(hist)

	curve := densityCurve(values, float64(len(values))*hist.Width)
	if curve != nil {
		kde, err := plotter.NewLine(curve)
		if err != nil {
			return errors.Wrap(err, "falha ao criar curva de densidade")
		}
		kde.Color = plotutil.Color(1)
		kde.Width = vg.Points(2)
		p.Add(kde)
	}

	return nil
}

// densityCurve estima a densidade por núcleo gaussiano com largura de Scott, escalada para contagens.
// Devolve nil quando o desvio padrão é zero.
func densityCurve(values []float64, scale float64) plotter.XYs {
	if len(values) < 2 {
		return nil
	}

	bandwidth := stat.StdDev(values, nil) * math.Pow(float64(len(values)), -1.0/5.0)
	if bandwidth == 0 || math.IsNaN(bandwidth) {
		return nil
	}

	kernel := distuv.Normal{Mu: 0, Sigma: bandwidth}

	low := floats.Min(values) - 3*bandwidth
	high := floats.Max(values) + 3*bandwidth
	step := (high - low) / float64(kdePoints-1)

	curve := make(plotter.XYs, kdePoints)
	for i := range curve {
		x := low + float64(i)*step
		density := 0.0
		for _, value := range values {
			density += kernel.Prob(x - value)
		}
		curve[i] = plotter.XY{X: x, Y: scale * density / float64(len(values))}
	}

	return curve
}

func categoryPanel(p *plot.Plot, ranking domain.CategoryRanking) error {
	if len(ranking) == 0 {
		return errors.Wrap(errEmptySeries, "vendas por categoria")
	}

	totals := make(plotter.Values, len(ranking))
	for i, item := range ranking {
		totals[i] = item.TotalSales
	}

	bars, err := plotter.NewBarChart(totals, vg.Points(60))
	if err != nil {
		return errors.Wrap(err, "falha ao criar gráfico de barras")
	}
	bars.Color = plotutil.Color(2)
	bars.LineStyle.Width = vg.Length(0)

	p.X.Label.Text = "Categoria"
	p.Y.Label.Text = "Total de Vendas"
	p.Add(bars)
	p.NominalX(ranking.Labels()...)

	return nil
}

func modelPanel(p *plot.Plot, regression *domain.RegressionResult) error {
	if regression == nil || len(regression.Actual) == 0 {
		return errors.Wrap(errEmptySeries, "real vs. previsto")
	}
	if len(regression.Actual) != len(regression.Predictions) {
		return errors.Errorf("tamanhos divergentes: %d reais e %d previstos",
			len(regression.Actual), len(regression.Predictions))
	}

	points := make(plotter.XYs, len(regression.Actual))
	for i := range regression.Actual {
		points[i] = plotter.XY{X: regression.Actual[i], Y: regression.Predictions[i]}
	}

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return errors.Wrap(err, "falha ao criar dispersão")
	}
	scatter.GlyphStyle.Color = scatterColor
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(3)

	low, high := floats.Min(regression.Actual), floats.Max(regression.Actual)
	diagonal, err := plotter.NewLine(plotter.XYs{{X: low, Y: low}, {X: high, Y: high}})
	if err != nil {
		return errors.Wrap(err, "falha ao criar diagonal")
	}
	diagonal.Color = diagonalRed
	diagonal.Width = vg.Points(2)
	diagonal.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}

	annotation, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: low, Y: floats.Max(regression.Predictions)}},
		Labels: []string{fmt.Sprintf("R² = %.2f", regression.RSquared)},
	})
	if err != nil {
		return errors.Wrap(err, "falha ao criar anotação")
	}

	p.X.Label.Text = "Vendas Reais"
	p.Y.Label.Text = "Vendas Previstas"
	p.Add(plotter.NewGrid(), scatter, diagonal, annotation)

	return nil
}

package dashboard

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-eda/internal/config"
	"github.com/vfg2006/sales-eda/internal/domain"
	"github.com/vfg2006/sales-eda/pkg/analysisErrors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	Title = "Dashboard de Análise de Vendas"

	TitleTrend        = "1. Tendência de Vendas ao Longo do Tempo"
	TitleDistribution = "2. Distribuição dos Valores de Venda"
	TitleCategories   = "3. Total de Vendas por Categoria"
	TitleModel        = "4. Performance do Modelo: Real vs. Previsto"
)

var titleHeight = vg.Points(40)

type Renderer interface {
	Render(input domain.DashboardInput) (*domain.DashboardResult, error)
}

type PlotRenderer struct {
	path   string
	width  vg.Length
	height vg.Length
	bins   int
}

func NewRenderer(cfg config.Dashboard) Renderer {
	return &PlotRenderer{
		path:   cfg.Path,
		width:  vg.Length(cfg.WidthInches) * vg.Inch,
		height: vg.Length(cfg.HeightInches) * vg.Inch,
		bins:   cfg.HistogramBins,
	}
}

type panelBuilder struct {
	title string
	build func(p *plot.Plot) error
}

// Render desenha os quatro painéis em grade 2x2 e grava o PNG.
// Falhas de painel ou de gravação voltam como erro de renderização, com o resultado preenchido.
func (r *PlotRenderer) Render(input domain.DashboardInput) (*domain.DashboardResult, error) {
	builders := []panelBuilder{
		{title: TitleTrend, build: func(p *plot.Plot) error { return trendPanel(p, input.Dataset) }},
		{title: TitleDistribution, build: func(p *plot.Plot) error { return distributionPanel(p, input.Dataset, r.bins) }},
		{title: TitleCategories, build: func(p *plot.Plot) error { return categoryPanel(p, input.Ranking) }},
		{title: TitleModel, build: func(p *plot.Plot) error { return modelPanel(p, input.Regression) }},
	}

	result := &domain.DashboardResult{
		Path:   r.path,
		Panels: make([]domain.PanelStatus, 0, len(builders)),
	}

	plots := make([]*plot.Plot, 0, len(builders))
	for _, builder := range builders {
		p, status := buildPanel(builder)
		plots = append(plots, p)
		result.Panels = append(result.Panels, status)
	}

	if err := r.save(plots); err != nil {
		result.Err = err.Error()
		logrus.WithError(err).WithField("path", r.path).Error("Erro ao gravar dashboard")
		return result, analysisErrors.Render(string(domain.StageDashboard), "falha ao gravar %s: %v", r.path, err)
	}
	result.Saved = true

	failed := make([]string, 0)
	for _, status := range result.Panels {
		if !status.Rendered {
			failed = append(failed, status.Title)
		}
	}

	if len(failed) > 0 {
		logrus.WithFields(logrus.Fields{
			"path":   r.path,
			"panels": failed,
		}).Warn("Dashboard gravado com painéis em branco")
		return result, analysisErrors.Render(string(domain.StageDashboard), "painéis não renderizados: %v", failed)
	}

	logrus.WithField("path", r.path).Info("Dashboard gravado")

	return result, nil
}

// buildPanel isola cada painel: erro ou pânico viram um painel em branco com o título
func buildPanel(builder panelBuilder) (p *plot.Plot, status domain.PanelStatus) {
	status = domain.PanelStatus{Title: builder.title}

	defer func() {
		if recovered := recover(); recovered != nil {
			p = blankPanel(builder.title)
			status.Rendered = false
			status.Err = fmt.Sprintf("pânico ao montar painel: %v", recovered)
		}
	}()

	p = plot.New()
	p.Title.Text = builder.title

	if err := builder.build(p); err != nil {
		return blankPanel(builder.title), domain.PanelStatus{Title: builder.title, Err: err.Error()}
	}

	status.Rendered = true

	return p, status
}

func blankPanel(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	return p
}

func (r *PlotRenderer) save(plots []*plot.Plot) error {
	img := vgimg.New(r.width, r.height)
	dc := draw.New(img)

	dc.FillText(text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, vg.Points(20)),
		XAlign:  draw.XCenter,
		YAlign:  draw.YTop,
		Handler: plot.DefaultTextHandler,
	}, vg.Point{X: dc.Center().X, Y: dc.Max.Y - vg.Points(8)}, Title)

	tiles := draw.Tiles{
		Rows:      2,
		Cols:      2,
		PadX:      vg.Points(20),
		PadY:      vg.Points(20),
		PadTop:    titleHeight,
		PadBottom: vg.Points(10),
		PadLeft:   vg.Points(10),
		PadRight:  vg.Points(10),
	}

	grid := [][]*plot.Plot{
		{plots[0], plots[1]},
		{plots[2], plots[3]},
	}

	canvases := plot.Align(grid, tiles, dc)
	for i := range grid {
		for j := range grid[i] {
			grid[i][j].Draw(canvases[i][j])
		}
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "falha ao criar diretório do dashboard")
		}
	}

	file, err := os.Create(r.path)
	if err != nil {
		return errors.Wrap(err, "falha ao criar arquivo do dashboard")
	}
	defer file.Close()

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(file); err != nil {
		return errors.Wrap(err, "falha ao codificar PNG")
	}

	return nil
}

package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-eda/infrastructure/dashboard"
	"github.com/vfg2006/sales-eda/internal/config"
	"github.com/vfg2006/sales-eda/internal/domain"
	"github.com/vfg2006/sales-eda/internal/usecases/cleaning"
	"github.com/vfg2006/sales-eda/internal/usecases/forecasting"
	"github.com/vfg2006/sales-eda/internal/usecases/generating"
	"github.com/vfg2006/sales-eda/internal/usecases/hypothesis"
	"github.com/vfg2006/sales-eda/internal/usecases/insighting"
	"github.com/vfg2006/sales-eda/internal/usecases/ranking"
	"github.com/vfg2006/sales-eda/pkg/analysisErrors"
	"github.com/vfg2006/sales-eda/pkg/log"
	"github.com/vfg2006/sales-eda/pkg/utils"
)

//go:generate mockgen -source=pipeline.go -destination=mocks/mock_pipeline.go -package=mocks

// DashboardRenderer desenha o painel 2x2 a partir dos resultados da análise
type DashboardRenderer interface {
	Render(input domain.DashboardInput) (*domain.DashboardResult, error)
}

// Reporter recebe o relatório parcial ao fim de cada etapa e o relatório final
type Reporter interface {
	StageCompleted(stage domain.Stage, report *domain.AnalysisReport) error
	Completed(report *domain.AnalysisReport) error
}

type Dependencies struct {
	Generator  generating.Generator
	Cleaner    cleaning.Cleaner
	Describer  insighting.Describer
	Ranker     ranking.RankingService
	Tester     hypothesis.Tester
	Forecaster forecasting.Forecaster
	Renderer   DashboardRenderer
	Reporter   Reporter
}

// DefaultDependencies monta as etapas reais a partir da configuração
func DefaultDependencies(cfg *config.Config, reporter Reporter) Dependencies {
	return Dependencies{
		Generator:  generating.NewService(cfg),
		Cleaner:    cleaning.NewService(),
		Describer:  insighting.NewService(),
		Ranker:     ranking.NewCategoryRankingService(),
		Tester:     hypothesis.NewService(cfg.Analysis.SignificanceLevel),
		Forecaster: forecasting.NewService(cfg),
		Renderer:   dashboard.NewRenderer(cfg.Dashboard),
		Reporter:   reporter,
	}
}

type Pipeline struct {
	cfg  *config.Config
	deps Dependencies
}

func NewPipeline(cfg *config.Config, deps Dependencies) *Pipeline {
	return &Pipeline{
		cfg:  cfg,
		deps: deps,
	}
}

// runState guarda os conjuntos intermediários que não entram no relatório
type runState struct {
	raw     domain.Dataset
	cleaned domain.Dataset
}

type stage struct {
	name domain.Stage
	run  func(state *runState, report *domain.AnalysisReport) error
}

// Run executa as etapas uma única vez, em ordem. Erros fatais interrompem a execução
// antes das etapas seguintes; erros de renderização são registrados e a execução conclui.
func (p *Pipeline) Run(ctx context.Context) (*domain.AnalysisReport, error) {
	ctx, _ = log.WithCorrelationID(ctx)

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "falha ao gerar identificador da execução")
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"run_id": runID,
		"seed":   p.cfg.App.Seed,
	})
	logger.Infof("Iniciando análise de vendas (correlation_id=%s)", log.GetCorrelationID(ctx))

	report := &domain.AnalysisReport{
		RunID: runID,
		Seed:  p.cfg.App.Seed,
	}
	state := &runState{}

	for _, current := range p.stages() {
		if err := ctx.Err(); err != nil {
			return report, p.fail(logger, report, current.name, errors.Wrap(err, "execução cancelada"))
		}

		if current.name == domain.StageDashboard && !p.cfg.Dashboard.Enabled {
			logger.WithField("stage", current.name).Info("Dashboard desabilitado, etapa ignorada")
			continue
		}

		started := time.Now()
		err := current.run(state, report)
		stageLogger := logger.WithFields(log.Fields{
			"stage":       current.name,
			"duration_ms": time.Since(started).Milliseconds(),
		})

		if err != nil {
			var analysisErr *analysisErrors.AnalysisError
			if !errors.As(err, &analysisErr) || analysisErr.IsFatal() {
				return report, p.fail(stageLogger, report, current.name, err)
			}
			stageLogger.WithError(err).Warn("Etapa concluída com falhas não fatais")
		} else {
			stageLogger.Info("Etapa concluída")
		}

		if err := p.deps.Reporter.StageCompleted(current.name, report); err != nil {
			return report, errors.Wrapf(err, "falha ao reportar etapa %s", current.name)
		}
	}

	if err := p.deps.Reporter.Completed(report); err != nil {
		return report, errors.Wrap(err, "falha ao emitir relatório final")
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logger.Debug("Relatório final: ", utils.PrettyJson(report))
	}
	logger.Info("Análise de vendas concluída")

	return report, nil
}

func (p *Pipeline) fail(logger log.Logger, report *domain.AnalysisReport, name domain.Stage, cause error) error {
	report.FailedStage = name
	report.FailureReason = cause.Error()

	logger.WithError(cause).Error("Análise interrompida")

	if err := p.deps.Reporter.Completed(report); err != nil {
		logger.WithError(err).Error("Erro ao emitir relatório parcial")
	}

	return errors.Wrapf(cause, "etapa %s", name)
}

func (p *Pipeline) stages() []stage {
	return []stage{
		{name: domain.StageGeneration, run: p.generate},
		{name: domain.StageCleaning, run: p.clean},
		{name: domain.StageAggregation, run: p.aggregate},
		{name: domain.StageHypothesis, run: p.test},
		{name: domain.StageRegression, run: p.fit},
		{name: domain.StageDashboard, run: p.render},
	}
}

func (p *Pipeline) generate(state *runState, report *domain.AnalysisReport) error {
	dataset, err := p.deps.Generator.Generate()
	if err != nil {
		return err
	}

	state.raw = dataset
	report.RecordCount = len(dataset)
	report.MissingCount = dataset.MissingCount()

	return nil
}

func (p *Pipeline) clean(state *runState, report *domain.AnalysisReport) error {
	result, err := p.deps.Cleaner.Clean(state.raw)
	if err != nil {
		return err
	}

	state.cleaned = result.Dataset
	report.Cleaning = result

	return nil
}

func (p *Pipeline) aggregate(state *runState, report *domain.AnalysisReport) error {
	summary, err := p.deps.Describer.Describe(state.cleaned)
	if err != nil {
		return err
	}

	categoryRanking, err := p.deps.Ranker.RankCategories(state.cleaned)
	if err != nil {
		return err
	}

	report.Summary = summary
	report.Ranking = categoryRanking

	return nil
}

func (p *Pipeline) test(state *runState, report *domain.AnalysisReport) error {
	result, err := p.deps.Tester.Test(state.cleaned)
	if err != nil {
		return err
	}

	report.Hypothesis = result

	return nil
}

func (p *Pipeline) fit(state *runState, report *domain.AnalysisReport) error {
	result, err := p.deps.Forecaster.Fit(state.cleaned)
	if err != nil {
		return err
	}

	report.Regression = result

	return nil
}

func (p *Pipeline) render(state *runState, report *domain.AnalysisReport) error {
	result, err := p.deps.Renderer.Render(domain.DashboardInput{
		Dataset:    state.cleaned,
		Ranking:    report.Ranking,
		Regression: report.Regression,
	})

	report.Dashboard = result

	var analysisErr *analysisErrors.AnalysisError
	if err != nil && !errors.As(err, &analysisErr) {
		return analysisErrors.Render(string(domain.StageDashboard), "%v", err)
	}

	return err
}

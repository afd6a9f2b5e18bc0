package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-eda/internal/config"
	"github.com/vfg2006/sales-eda/internal/pipeline"
	"github.com/vfg2006/sales-eda/internal/report"
	"github.com/vfg2006/sales-eda/pkg/analysisErrors"
	"github.com/vfg2006/sales-eda/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	// Logs vão para stderr, o relatório ocupa o stdout
	if !log.Configure(os.Stderr, cfg.App.LogLevel) {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}

	reporter, err := report.New(cfg.Report.Format, os.Stdout)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar reporter")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	analysis := pipeline.NewPipeline(cfg, pipeline.DefaultDependencies(cfg, reporter))

	result, err := analysis.Run(ctx)
	if err != nil {
		stage := analysisErrors.StageOf(err)
		if result != nil && result.FailedStage != "" {
			stage = string(result.FailedStage)
		}
		entry := logrus.WithError(err).WithFields(logrus.Fields{
			"stage": stage,
			"code":  analysisErrors.CodeOf(err),
		})
		entry.Error("Análise de vendas falhou")
		cancel()
		os.Exit(1)
	}
}

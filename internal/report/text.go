package report

import (
	"fmt"
	"io"

	"github.com/vfg2006/sales-eda/internal/domain"
)

var stageHeaders = map[domain.Stage]string{
	domain.StageGeneration:  "--- Etapa 1: Coleta e Preparação dos Dados ---",
	domain.StageAggregation: "--- Etapa 2: Cálculos da Análise Exploratória ---",
	domain.StageHypothesis:  "--- Etapa 3: Aplicação de Estatística Básica (Teste ANOVA) ---",
	domain.StageRegression:  "--- Etapa 4: Modelagem de Machine Learning ---",
	domain.StageDashboard:   "--- Etapa 5: Gerando Dashboard de Visualização ---",
}

// TextReporter imprime a narrativa da análise no console, etapa por etapa
type TextReporter struct {
	out io.Writer
	err error
}

func NewTextReporter(out io.Writer) *TextReporter {
	return &TextReporter{out: out}
}

func (r *TextReporter) StageCompleted(stage domain.Stage, report *domain.AnalysisReport) error {
	r.err = nil

	switch stage {
	case domain.StageGeneration:
		r.println(stageHeaders[stage])
		r.printf("%d registros gerados, %d valores de venda ausentes.\n", report.RecordCount, report.MissingCount)
	case domain.StageCleaning:
		if report.Cleaning != nil {
			r.printf("%d valores ausentes preenchidos com a média (%.2f).\n",
				report.Cleaning.FilledCount, report.Cleaning.FillValue)
		}
		r.println("Dados preparados.")
		r.println()
	case domain.StageAggregation:
		r.println(stageHeaders[stage])
		r.println("Estatísticas descritivas do valor de venda:")
		r.describe(report.Summary)
		r.println()
		r.println("Total de vendas por categoria:")
		for _, item := range report.Ranking {
			r.printf("  %d. %-15s %12.2f\n", item.Position, item.Category, item.TotalSales)
		}
		r.println()
		r.println("Cálculos para os gráficos concluídos.")
		r.println()
	case domain.StageHypothesis:
		r.println(stageHeaders[stage])
		if report.Hypothesis != nil {
			r.printf("Resultado do Teste ANOVA (P-valor): %.4f\n", report.Hypothesis.PValue)
			r.printf("Conclusão: %s\n", report.Hypothesis.Conclusion)
		}
		r.println()
	case domain.StageRegression:
		r.println(stageHeaders[stage])
		if report.Regression != nil {
			r.println("Modelo treinado. Performance:")
			r.printf("  - Erro Quadrático Médio (MSE): %.2f\n", report.Regression.MeanSquaredError)
			r.printf("  - Coeficiente de Determinação (R²): %.2f\n", report.Regression.RSquared)
		}
		r.println()
	case domain.StageDashboard:
		r.println(stageHeaders[stage])
		if report.Dashboard != nil {
			for _, panel := range report.Dashboard.Panels {
				if !panel.Rendered {
					r.printf("Painel em branco: %s (%s)\n", panel.Title, panel.Err)
				}
			}
		}
	}

	return r.err
}

func (r *TextReporter) Completed(report *domain.AnalysisReport) error {
	r.err = nil

	switch {
	case report.FailedStage != "":
		r.println()
		r.printf("Análise interrompida na etapa %s: %s\n", report.FailedStage, report.FailureReason)
	case report.Dashboard == nil:
		r.println()
		r.println("Análise concluída sem dashboard.")
	case !report.Dashboard.Saved:
		r.println()
		r.printf("Não foi possível gravar o dashboard: %s\n", report.Dashboard.Err)
	default:
		r.printf("Dashboard salvo em %s\n", report.Dashboard.Path)
		r.println()
		if report.Dashboard.Degraded() {
			r.println("Dashboard gerado com painéis em branco.")
		} else {
			r.println("Dashboard gerado com sucesso!")
		}
	}

	return r.err
}

func (r *TextReporter) describe(summary *domain.SummaryStatistics) {
	if summary == nil {
		return
	}

	rows := []struct {
		label string
		value float64
	}{
		{"count", float64(summary.Count)},
		{"mean", summary.Mean},
		{"std", summary.Std},
		{"min", summary.Min},
		{"25%", summary.Q25},
		{"50%", summary.Median},
		{"75%", summary.Q75},
		{"max", summary.Max},
	}

	for _, row := range rows {
		r.printf("%-8s%10.2f\n", row.label, row.value)
	}
	r.println("Name: sale_amount, dtype: float64")
}

func (r *TextReporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.out, format, args...)
}

func (r *TextReporter) println(args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintln(r.out, args...)
}

package report

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-eda/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONReporter grava o relatório completo como JSON indentado ao final da execução
type JSONReporter struct {
	out io.Writer
}

func NewJSONReporter(out io.Writer) *JSONReporter {
	return &JSONReporter{out: out}
}

func (r *JSONReporter) StageCompleted(stage domain.Stage, report *domain.AnalysisReport) error {
	logrus.WithFields(logrus.Fields{
		"run_id": report.RunID,
		"stage":  stage,
	}).Debug("Etapa registrada no relatório")

	return nil
}

func (r *JSONReporter) Completed(report *domain.AnalysisReport) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(report); err != nil {
		return errors.Wrap(err, "falha ao serializar relatório")
	}

	return nil
}

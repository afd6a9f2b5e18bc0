package report

import (
	"io"

	"github.com/vfg2006/sales-eda/internal/config"
	"github.com/vfg2006/sales-eda/internal/pipeline"
	"github.com/vfg2006/sales-eda/pkg/analysisErrors"
)

// New escolhe o reporter pelo formato configurado
func New(format string, out io.Writer) (pipeline.Reporter, error) {
	switch format {
	case config.ReportFormatText:
		return NewTextReporter(out), nil
	case config.ReportFormatJSON:
		return NewJSONReporter(out), nil
	}

	return nil, analysisErrors.InvalidConfig("formato de relatório desconhecido: %q", format)
}

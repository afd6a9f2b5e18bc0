package utils

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson devolve a representação JSON indentada de in. Aceita também JSON já serializado.
// Erros vão para o log, nunca para o stdout.
func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			logrus.WithError(err).Warn("PrettyJson: conteúdo não é JSON válido")
			return string(raw)
		}
		in = decoded
	}

	// jsoniter só aceita espaços como indentação
	out, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		logrus.WithError(err).Warn("PrettyJson: falha ao serializar")
		return ""
	}

	return string(out)
}

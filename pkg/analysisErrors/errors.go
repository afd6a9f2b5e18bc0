// Package analysisErrors define a taxonomia de erros das etapas de análise
package analysisErrors

import (
	"errors"
	"fmt"
)

// Códigos de erro
const (
	// Entrada degenerada (1000-1999)
	CodeDegenerateInput = "DEG_001" // Todos os valores nulos, preditor sem variância, etc.

	// Dados insuficientes (2000-2999)
	CodeInsufficientData = "INS_001" // Menos de 2 grupos ou observações

	// Renderização (3000-3999)
	CodeRender = "RND_001" // Painel ou arquivo do dashboard não gerado

	// Configuração (4000-4999)
	CodeInvalidConfig = "CFG_001" // Parâmetro de configuração impossível
)

// Erros base de cada categoria
var (
	ErrDegenerateInput  = errors.New("degenerate input")
	ErrInsufficientData = errors.New("insufficient data")
	ErrRender           = errors.New("render error")
	ErrInvalidConfig    = errors.New("invalid configuration")
)

var codeByKind = map[error]string{
	ErrDegenerateInput:  CodeDegenerateInput,
	ErrInsufficientData: CodeInsufficientData,
	ErrRender:           CodeRender,
	ErrInvalidConfig:    CodeInvalidConfig,
}

// AnalysisError é um erro com contexto adicional de uma etapa
type AnalysisError struct {
	Err     error  // Erro base
	Code    string // Código do erro
	Stage   string // Etapa onde ocorreu (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// IsFatal indica se o erro deve interromper o pipeline. Erros de renderização não interrompem.
func (e *AnalysisError) IsFatal() bool {
	return !errors.Is(e.Err, ErrRender)
}

// New cria um novo AnalysisError a partir de um dos erros base
func New(kind error, stage string, details string) *AnalysisError {
	code, ok := codeByKind[kind]
	if !ok {
		code = CodeDegenerateInput
	}

	return &AnalysisError{
		Err:     kind,
		Code:    code,
		Stage:   stage,
		Details: details,
	}
}

// Degenerate cria um erro de entrada degenerada
func Degenerate(stage string, format string, args ...any) *AnalysisError {
	return New(ErrDegenerateInput, stage, fmt.Sprintf(format, args...))
}

// Insufficient cria um erro de dados insuficientes
func Insufficient(stage string, format string, args ...any) *AnalysisError {
	return New(ErrInsufficientData, stage, fmt.Sprintf(format, args...))
}

// Render cria um erro de renderização (não fatal)
func Render(stage string, format string, args ...any) *AnalysisError {
	return New(ErrRender, stage, fmt.Sprintf(format, args...))
}

// InvalidConfig cria um erro de configuração
func InvalidConfig(format string, args ...any) *AnalysisError {
	return New(ErrInvalidConfig, "", fmt.Sprintf(format, args...))
}

// CodeOf devolve o código do primeiro AnalysisError na cadeia, ou vazio
func CodeOf(err error) string {
	var analysisErr *AnalysisError
	if errors.As(err, &analysisErr) {
		return analysisErr.Code
	}
	return ""
}

// StageOf devolve a etapa do primeiro AnalysisError na cadeia, ou vazio
func StageOf(err error) string {
	var analysisErr *AnalysisError
	if errors.As(err, &analysisErr) {
		return analysisErr.Stage
	}
	return ""
}

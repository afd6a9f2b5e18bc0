package domain

type Stage string

const (
	StageGeneration  Stage = "generation"
	StageCleaning    Stage = "cleaning"
	StageAggregation Stage = "aggregation"
	StageHypothesis  Stage = "hypothesis"
	StageRegression  Stage = "regression"
	StageDashboard   Stage = "dashboard"
)

// Stages na ordem de execução
var Stages = []Stage{
	StageGeneration,
	StageCleaning,
	StageAggregation,
	StageHypothesis,
	StageRegression,
	StageDashboard,
}

// AnalysisReport acumula os resultados de cada etapa de uma execução
type AnalysisReport struct {
	RunID         string             `json:"run_id"`
	Seed          uint64             `json:"seed"`
	RecordCount   int                `json:"record_count"`
	MissingCount  int                `json:"missing_count"`
	Cleaning      *CleaningResult    `json:"cleaning,omitempty"`
	Summary       *SummaryStatistics `json:"summary,omitempty"`
	Ranking       CategoryRanking    `json:"ranking,omitempty"`
	Hypothesis    *HypothesisResult  `json:"hypothesis,omitempty"`
	Regression    *RegressionResult  `json:"regression,omitempty"`
	Dashboard     *DashboardResult   `json:"dashboard,omitempty"`
	FailedStage   Stage              `json:"failed_stage,omitempty"`
	FailureReason string             `json:"failure_reason,omitempty"`
}

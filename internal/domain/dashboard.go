package domain

type PanelStatus struct {
	Title    string `json:"title"`
	Rendered bool   `json:"rendered"`
	Err      string `json:"error,omitempty"`
}

type DashboardResult struct {
	Path   string        `json:"path"`
	Saved  bool          `json:"saved"`
	Panels []PanelStatus `json:"panels"`
	Err    string        `json:"error,omitempty"`
}

// DashboardInput reúne, somente para leitura, as saídas das etapas anteriores
type DashboardInput struct {
	Dataset    Dataset
	Ranking    CategoryRanking
	Regression *RegressionResult
}

// Degraded indica se algum painel ou a gravação do arquivo falhou
func (r *DashboardResult) Degraded() bool {
	if r == nil {
		return false
	}
	if r.Err != "" {
		return true
	}
	for _, panel := range r.Panels {
		if !panel.Rendered {
			return true
		}
	}

	return false
}

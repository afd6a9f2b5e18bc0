package domain

// RegressionResult guarda o modelo ajustado e sua avaliação no conjunto de teste.
// Actual, Predictions e TestInputs são alinhados pelo índice.
type RegressionResult struct {
	Intercept        float64   `json:"intercept"`
	Coefficients     []float64 `json:"coefficients"`
	MeanSquaredError float64   `json:"mean_squared_error"`
	RSquared         float64   `json:"r_squared"`
	TrainSize        int       `json:"train_size"`
	TestSize         int       `json:"test_size"`
	TestInputs       []float64 `json:"test_inputs"`
	Actual           []float64 `json:"actual"`
	Predictions      []float64 `json:"predictions"`
}

// Predict aplica o modelo a um único valor de custo de marketing
func (r *RegressionResult) Predict(x float64) float64 {
	if r == nil || len(r.Coefficients) == 0 {
		return 0
	}

	return r.Intercept + r.Coefficients[0]*x
}

package regressor

import "errors"

// Linear is an ordinary linear regression: intercept + Σ coef·x.
type Linear struct {
	Intercept    float64
	Coefficients []float64
}

func NewLinear(intercept float64, coefficients []float64) (*Linear, error) {
	if len(coefficients) == 0 {
		return nil, errors.New("linear model has no coefficients")
	}
	return &Linear{Intercept: intercept, Coefficients: append([]float64(nil), coefficients...)}, nil
}

func (l *Linear) predictRow(row []float64) float64 {
	sum := l.Intercept
	for i, c := range l.Coefficients {
		sum += c * row[i]
	}
	return sum
}

func (l *Linear) numFeatures() int { return len(l.Coefficients) }

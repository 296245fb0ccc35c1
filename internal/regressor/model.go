package regressor

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// Model types understood by Load.
const (
	TypeLinear       = "linear"
	TypeTreeEnsemble = "tree_ensemble"
)

// ErrFeatureMismatch is returned when the input columns do not match what the model was trained on.
var ErrFeatureMismatch = errors.New("feature mismatch")

// predictor evaluates a single feature row.
type predictor interface {
	predictRow(row []float64) float64
	numFeatures() int
}

// Model is a trained regression model loaded from an exported artifact.
// It is immutable after Load and safe for concurrent use.
type Model struct {
	Type         string
	FeatureNames []string
	p            predictor
}

type artifact struct {
	Type         string   `json:"type"`
	FeatureNames []string `json:"feature_names,omitempty"`

	// linear
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients,omitempty"`

	// tree_ensemble
	NFeatures    int     `json:"n_features,omitempty"`
	BaseScore    float64 `json:"base_score"`
	LearningRate float64 `json:"learning_rate,omitempty"`
	Aggregation  string  `json:"aggregation,omitempty"`
	Trees        []Tree  `json:"trees,omitempty"`
}

// Load reads a model artifact from a JSON file.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file %s: %w", path, err)
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to decode model file %s: %w", path, err)
	}

	m, err := fromArtifact(a)
	if err != nil {
		return nil, fmt.Errorf("invalid model file %s: %w", path, err)
	}
	return m, nil
}

func fromArtifact(a artifact) (*Model, error) {
	var p predictor
	switch a.Type {
	case TypeLinear:
		lm, err := NewLinear(a.Intercept, a.Coefficients)
		if err != nil {
			return nil, err
		}
		p = lm
	case TypeTreeEnsemble:
		n := a.NFeatures
		if n == 0 {
			n = len(a.FeatureNames)
		}
		te, err := NewTreeEnsemble(n, a.BaseScore, a.LearningRate, a.Aggregation, a.Trees)
		if err != nil {
			return nil, err
		}
		p = te
	case "":
		return nil, errors.New("model type is missing")
	default:
		return nil, fmt.Errorf("unsupported model type %q", a.Type)
	}

	if len(a.FeatureNames) > 0 && len(a.FeatureNames) != p.numFeatures() {
		return nil, fmt.Errorf("%w: %d feature names for %d model inputs", ErrFeatureMismatch, len(a.FeatureNames), p.numFeatures())
	}
	return &Model{Type: a.Type, FeatureNames: a.FeatureNames, p: p}, nil
}

// NumFeatures is the row width Predict expects.
func (m *Model) NumFeatures() int {
	return m.p.numFeatures()
}

// CheckFeatures verifies that names, the columns an encoder produces, line up with
// the model inputs. Models exported without feature names only have their width checked.
func (m *Model) CheckFeatures(names []string) error {
	if len(names) != m.NumFeatures() {
		return fmt.Errorf("%w: encoder produces %d columns, model expects %d", ErrFeatureMismatch, len(names), m.NumFeatures())
	}
	for i, name := range m.FeatureNames {
		if names[i] != name {
			return fmt.Errorf("%w: column %d is %q, model expects %q", ErrFeatureMismatch, i, names[i], name)
		}
	}
	return nil
}

// Predict returns one estimate per row.
func (m *Model) Predict(rows [][]float64) ([]float64, error) {
	out := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) != m.NumFeatures() {
			return nil, fmt.Errorf("%w: row %d has %d values, model expects %d", ErrFeatureMismatch, i, len(row), m.NumFeatures())
		}
		v := m.p.predictRow(row)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("model produced a non-finite value for row %d", i)
		}
		out[i] = v
	}
	return out, nil
}

package regressor

import (
	"errors"
	"fmt"
)

// Aggregations of tree outputs.
const (
	AggregationSum  = "sum"  // gradient boosting: base + lr·Σ trees
	AggregationMean = "mean" // random forest: mean of trees
)

// Node is one node of a flattened decision tree. Internal nodes send a row to
// Left when row[Feature] <= Threshold, otherwise to Right.
type Node struct {
	Leaf      bool    `json:"leaf,omitempty"`
	Value     float64 `json:"value,omitempty"`
	Feature   int     `json:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Left      int     `json:"left,omitempty"`
	Right     int     `json:"right,omitempty"`
}

// Tree is a decision tree stored as a node array rooted at index 0.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// TreeEnsemble is a boosted or bagged ensemble of regression trees.
type TreeEnsemble struct {
	features     int
	baseScore    float64
	learningRate float64
	aggregation  string
	trees        []Tree
}

func NewTreeEnsemble(features int, baseScore, learningRate float64, aggregation string, trees []Tree) (*TreeEnsemble, error) {
	if features <= 0 {
		return nil, errors.New("tree ensemble needs n_features or feature_names")
	}
	if len(trees) == 0 {
		return nil, errors.New("tree ensemble has no trees")
	}
	if aggregation == "" {
		aggregation = AggregationSum
	}
	if aggregation != AggregationSum && aggregation != AggregationMean {
		return nil, fmt.Errorf("unsupported aggregation %q", aggregation)
	}
	if learningRate == 0 {
		learningRate = 1
	}
	for i, t := range trees {
		if err := t.validate(features); err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
	}
	return &TreeEnsemble{
		features:     features,
		baseScore:    baseScore,
		learningRate: learningRate,
		aggregation:  aggregation,
		trees:        trees,
	}, nil
}

// validate rejects out-of-range references. Children must come after their
// parent, which also rules out cycles.
func (t Tree) validate(features int) error {
	if len(t.Nodes) == 0 {
		return errors.New("empty tree")
	}
	for i, n := range t.Nodes {
		if n.Leaf {
			continue
		}
		if n.Feature < 0 || n.Feature >= features {
			return fmt.Errorf("node %d splits on feature %d, model has %d", i, n.Feature, features)
		}
		for _, child := range []int{n.Left, n.Right} {
			if child <= i || child >= len(t.Nodes) {
				return fmt.Errorf("node %d has invalid child %d", i, child)
			}
		}
	}
	return nil
}

func (t Tree) eval(row []float64) float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Leaf {
			return n.Value
		}
		if row[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

func (e *TreeEnsemble) predictRow(row []float64) float64 {
	var sum float64
	for _, t := range e.trees {
		sum += t.eval(row)
	}
	if e.aggregation == AggregationMean {
		return e.baseScore + sum/float64(len(e.trees))
	}
	return e.baseScore + e.learningRate*sum
}

func (e *TreeEnsemble) numFeatures() int { return e.features }

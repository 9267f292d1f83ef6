// Package report wraps evaluation metrics in an attributed envelope for
// downstream reporters.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/jackzampolin/segeval/internal/segeval"
)

// Report is a single evaluation run with its inputs and results. The nested
// metrics keep their fixed interchange field names.
type Report struct {
	RunID     string    `json:"run_id" yaml:"run_id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// Input attribution
	GroundTruthPath string `json:"ground_truth_path,omitempty" yaml:"ground_truth_path,omitempty"`
	PredictedPath   string `json:"predicted_path,omitempty" yaml:"predicted_path,omitempty"`

	// Set cardinalities after deduplication
	GroundTruthCount int `json:"ground_truth_count" yaml:"ground_truth_count"`
	PredictedCount   int `json:"predicted_count" yaml:"predicted_count"`
	MatchedCount     int `json:"matched_count" yaml:"matched_count"`

	Metrics segeval.Metrics `json:"metrics" yaml:"metrics"`
}

// New runs the evaluator and assembles a report around its result. Domain
// errors from Evaluate propagate unmodified.
func New(e *segeval.Evaluator, gtPath, predPath string) (*Report, error) {
	m, err := e.Evaluate()
	if err != nil {
		return nil, err
	}

	return &Report{
		RunID:            uuid.New().String(),
		CreatedAt:        time.Now().UTC(),
		GroundTruthPath:  gtPath,
		PredictedPath:    predPath,
		GroundTruthCount: len(e.GroundTruth()),
		PredictedCount:   len(e.Predicted()),
		MatchedCount:     len(e.Intersection()),
		Metrics:          m,
	}, nil
}

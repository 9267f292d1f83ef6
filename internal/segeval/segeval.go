// Package segeval scores a predicted document segmentation against a
// ground-truth one using strict (exact-bounds) set matching: a predicted
// document is a true positive only if its dossier name and page bounds
// exactly equal a ground-truth document's. Any boundary deviation, however
// small, is a full miss.
package segeval

import (
	"errors"

	"github.com/jackzampolin/segeval/internal/document"
)

var (
	// ErrEmptyGroundTruth is returned when the ground-truth set is empty:
	// recall and IoU are undefined. Usually an upstream mistake (e.g. an
	// empty gold file), so it surfaces instead of being coerced to 0.
	ErrEmptyGroundTruth = errors.New("ground-truth set is empty: recall and IoU are undefined")

	// ErrEmptyPredictions is returned when the predicted set is empty:
	// precision and IoU are undefined.
	ErrEmptyPredictions = errors.New("predicted set is empty: precision and IoU are undefined")

	// ErrNoOverlap is returned when precision and recall are both zero, which
	// makes the F1 denominator zero.
	ErrNoOverlap = errors.New("no overlap between ground truth and predictions: F1 is undefined")
)

// Metrics holds the four strict agreement scores. The field names are fixed;
// external reporters depend on this exact shape.
type Metrics struct {
	StrictF1        float64 `json:"strictF1" yaml:"strictF1"`
	StrictIoU       float64 `json:"strictIoU" yaml:"strictIoU"`
	StrictRecall    float64 `json:"strictRecall" yaml:"strictRecall"`
	StrictPrecision float64 `json:"strictPrecision" yaml:"strictPrecision"`
}

// Evaluator compares a ground-truth segmentation against a predicted one.
// Both inputs are deduplicated into sets at construction; the evaluator is
// read-only afterwards and safe for concurrent use.
type Evaluator struct {
	gt   map[document.Key]document.Document
	pred map[document.Key]document.Document
}

// New builds an Evaluator from the two document collections. Duplicate
// entries (identical identity triples) collapse to one; input order is not
// preserved.
func New(groundTruth, predicted []document.Document) *Evaluator {
	return &Evaluator{
		gt:   toSet(groundTruth),
		pred: toSet(predicted),
	}
}

func toSet(docs []document.Document) map[document.Key]document.Document {
	s := make(map[document.Key]document.Document, len(docs))
	for _, d := range docs {
		s[d.Key()] = d
	}
	return s
}

// GroundTruth returns the deduplicated ground-truth documents, in no
// particular order.
func (e *Evaluator) GroundTruth() []document.Document { return setToSlice(e.gt) }

// Predicted returns the deduplicated predicted documents, in no particular
// order.
func (e *Evaluator) Predicted() []document.Document { return setToSlice(e.pred) }

func setToSlice(s map[document.Key]document.Document) []document.Document {
	out := make([]document.Document, 0, len(s))
	for _, d := range s {
		out = append(out, d)
	}
	return out
}

// Intersection returns the documents present in both sets — the strict true
// positives.
func (e *Evaluator) Intersection() []document.Document {
	out := make([]document.Document, 0)
	for k, d := range e.gt {
		if _, ok := e.pred[k]; ok {
			out = append(out, d)
		}
	}
	return out
}

// Evaluate computes all four strict metrics in a single pass over the two
// sets. It fails loudly on undefined divisions: an empty ground-truth or
// predicted set, or zero overlap between nonempty sets (F1's denominator),
// returns a named sentinel error rather than 0 or NaN.
func (e *Evaluator) Evaluate() (Metrics, error) {
	if len(e.gt) == 0 {
		return Metrics{}, ErrEmptyGroundTruth
	}
	if len(e.pred) == 0 {
		return Metrics{}, ErrEmptyPredictions
	}

	inter := 0
	for k := range e.gt {
		if _, ok := e.pred[k]; ok {
			inter++
		}
	}
	union := len(e.gt) + len(e.pred) - inter

	precision := float64(inter) / float64(len(e.pred))
	recall := float64(inter) / float64(len(e.gt))
	if precision+recall == 0 {
		return Metrics{}, ErrNoOverlap
	}

	return Metrics{
		StrictF1:        2 * precision * recall / (precision + recall),
		StrictIoU:       float64(inter) / float64(union),
		StrictRecall:    recall,
		StrictPrecision: precision,
	}, nil
}

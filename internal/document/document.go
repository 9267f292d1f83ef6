// Package document provides the value type for a logical document inside a
// multi-page dossier: a named, contiguous, 1-based inclusive page range.
// This package has no dependencies on other segeval packages to avoid import cycles.
package document

import "fmt"

// Key is the identity triple of a document. Two documents are the same
// document if and only if their keys are equal. Key is comparable, so it can
// be used directly as a map or set key.
type Key struct {
	DossierName string
	StartIdx    int
	EndIdx      int
}

// Document is an immutable page span [StartIdx, EndIdx] (1-based, inclusive)
// within a named dossier. Construct with New; the zero value is not valid.
type Document struct {
	key Key
}

// BoundsError reports an invalid page range at construction time.
type BoundsError struct {
	DossierName string
	StartIdx    int
	EndIdx      int
}

func (e *BoundsError) Error() string {
	if e.StartIdx < 1 {
		return fmt.Sprintf("document in %q: start_idx must be >= 1, got %d", e.DossierName, e.StartIdx)
	}
	return fmt.Sprintf("document in %q: end_idx must be >= start_idx, got start_idx=%d end_idx=%d",
		e.DossierName, e.StartIdx, e.EndIdx)
}

// New creates a Document after validating the page range. Indices are 1-based
// and inclusive: the first page of the dossier is page 1, and a single-page
// document has startIdx == endIdx. Returns a *BoundsError if startIdx < 1 or
// endIdx < startIdx.
func New(dossierName string, startIdx, endIdx int) (Document, error) {
	if startIdx < 1 || endIdx < startIdx {
		return Document{}, &BoundsError{DossierName: dossierName, StartIdx: startIdx, EndIdx: endIdx}
	}
	return Document{key: Key{DossierName: dossierName, StartIdx: startIdx, EndIdx: endIdx}}, nil
}

// DossierName returns the name of the dossier containing the document.
func (d Document) DossierName() string { return d.key.DossierName }

// StartIdx returns the 1-based first page of the document.
func (d Document) StartIdx() int { return d.key.StartIdx }

// EndIdx returns the 1-based last page of the document.
func (d Document) EndIdx() int { return d.key.EndIdx }

// PageCount returns the number of pages spanned, always >= 1.
func (d Document) PageCount() int { return d.key.EndIdx - d.key.StartIdx + 1 }

// Key returns the identity triple. All equality, ordering and set membership
// derive from it.
func (d Document) Key() Key { return d.key }

// Summary is the canonical interchange form of a document. The field names
// are fixed; external tools depend on this exact shape.
type Summary struct {
	DossierName string `json:"dossierName" yaml:"dossierName"`
	StartIdx    int    `json:"startIdx" yaml:"startIdx"`
	EndIdx      int    `json:"endIdx" yaml:"endIdx"`
}

// Summary returns the canonical interchange record for the document.
func (d Document) Summary() Summary {
	return Summary{DossierName: d.key.DossierName, StartIdx: d.key.StartIdx, EndIdx: d.key.EndIdx}
}

// String implements fmt.Stringer using the interchange field names.
func (d Document) String() string {
	return fmt.Sprintf(`{"dossierName":%q,"startIdx":%d,"endIdx":%d}`,
		d.key.DossierName, d.key.StartIdx, d.key.EndIdx)
}

// Equal reports whether two documents have the same identity triple. Only
// Document operands are accepted; comparing against other types is a compile
// error rather than a runtime fallback.
func (d Document) Equal(o Document) bool { return d.key == o.key }

// Compare orders documents lexicographically by dossier name, then start
// index, then end index. Returns -1, 0 or 1.
func (d Document) Compare(o Document) int {
	switch {
	case d.key.DossierName < o.key.DossierName:
		return -1
	case d.key.DossierName > o.key.DossierName:
		return 1
	case d.key.StartIdx < o.key.StartIdx:
		return -1
	case d.key.StartIdx > o.key.StartIdx:
		return 1
	case d.key.EndIdx < o.key.EndIdx:
		return -1
	case d.key.EndIdx > o.key.EndIdx:
		return 1
	}
	return 0
}

// Less reports whether d orders before o. Suitable for sort.Slice and
// slices.SortFunc via Compare.
func (d Document) Less(o Document) bool { return d.Compare(o) < 0 }

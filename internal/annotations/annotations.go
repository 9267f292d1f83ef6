// Package annotations loads document segmentation annotation files: JSON
// arrays of {dossierName, startIdx, endIdx} records, as produced by labeling
// tools or segmentation models.
package annotations

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jackzampolin/segeval/internal/document"
)

// annotationSchema is the canonical shape of an annotation file. Raw input is
// validated against it before any Document is constructed, so shape errors
// report schema paths instead of decode failures.
const annotationSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "dossierName": {"type": "string", "minLength": 1},
      "startIdx": {"type": "integer"},
      "endIdx": {"type": "integer"}
    },
    "required": ["dossierName", "startIdx", "endIdx"],
    "additionalProperties": false
  }
}`

// Options controls loading behavior.
type Options struct {
	// SkipValidation disables JSON Schema validation of the raw input.
	// Malformed records then surface as decode or bounds errors instead.
	SkipValidation bool

	// Logger receives load progress; nil means slog.Default.
	Logger *slog.Logger
}

// LoadFile reads and parses an annotation file into documents. Bounds
// violations inside the file surface as *document.BoundsError wrapped with
// the file path and record position.
func LoadFile(path string, opts Options) ([]document.Document, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read annotations: %w", err)
	}

	docs, err := Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Info("loaded annotations", "path", path, "documents", len(docs))
	return docs, nil
}

// Parse validates raw annotation JSON against the canonical schema and
// constructs the documents it describes.
func Parse(data []byte, opts Options) ([]document.Document, error) {
	if !opts.SkipValidation {
		if err := validateShape(data); err != nil {
			return nil, err
		}
	}

	var records []document.Summary
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode annotations: %w", err)
	}

	docs := make([]document.Document, 0, len(records))
	for i, r := range records {
		d, err := document.New(r.DossierName, r.StartIdx, r.EndIdx)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		docs = append(docs, d)
	}
	return docs, nil
}

func validateShape(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("annotations.json", bytes.NewReader([]byte(annotationSchema))); err != nil {
		return fmt.Errorf("failed to load annotation schema: %w", err)
	}
	schema, err := compiler.Compile("annotations.json")
	if err != nil {
		return fmt.Errorf("failed to compile annotation schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode annotations for validation: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("annotations do not match schema: %w", err)
	}
	return nil
}

package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteTo(t *testing.T) {
	data := map[string]any{"strictF1": 0.5}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteTo(&buf, FormatJSON, data); err != nil {
			t.Fatalf("WriteTo: %v", err)
		}
		if !strings.Contains(buf.String(), `"strictF1": 0.5`) {
			t.Errorf("unexpected JSON output: %s", buf.String())
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteTo(&buf, FormatYAML, data); err != nil {
			t.Fatalf("WriteTo: %v", err)
		}
		if !strings.Contains(buf.String(), "strictF1: 0.5") {
			t.Errorf("unexpected YAML output: %s", buf.String())
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteTo(&buf, Format("toml"), data); err == nil {
			t.Fatal("expected error for unknown format")
		}
	})
}

func TestSetFormat(t *testing.T) {
	defer SetFormat("yaml")

	SetFormat("json")
	if GetFormat() != FormatJSON {
		t.Errorf("expected json, got %s", GetFormat())
	}
	SetFormat("bogus")
	if GetFormat() != DefaultFormat {
		t.Errorf("expected default, got %s", GetFormat())
	}
}

package dossier

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackzampolin/segeval/internal/document"
)

func doc(t *testing.T, name string, start, end int) document.Document {
	t.Helper()
	d, err := document.New(name, start, end)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

// touch writes a minimal PDF-header stand-in for a dossier; the fake
// PageCounter below never reads it.
func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func fixedPages(n int) PageCounter {
	return func(string) (int, error) { return n, nil }
}

func TestInspect(t *testing.T) {
	t.Run("spans within page count", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "doss1.pdf"))

		insp := NewInspector(dir, fixedPages(10), nil)
		report, err := insp.Inspect([]document.Document{
			doc(t, "doss1.pdf", 1, 3),
			doc(t, "doss1.pdf", 4, 10),
		})
		if err != nil {
			t.Fatalf("Inspect: %v", err)
		}
		if len(report.Dossiers) != 1 {
			t.Fatalf("expected 1 dossier, got %d", len(report.Dossiers))
		}
		d := report.Dossiers[0]
		if d.PageCount != 10 || d.DocumentCount != 2 || d.Missing {
			t.Errorf("unexpected dossier info: %+v", d)
		}
		if len(report.Issues) != 0 {
			t.Errorf("expected no issues, got %+v", report.Issues)
		}
	})

	t.Run("span past the last page is flagged", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "doss1.pdf"))

		insp := NewInspector(dir, fixedPages(5), nil)
		report, err := insp.Inspect([]document.Document{doc(t, "doss1.pdf", 4, 7)})
		if err != nil {
			t.Fatalf("Inspect: %v", err)
		}
		if len(report.Issues) != 1 {
			t.Fatalf("expected 1 issue, got %d", len(report.Issues))
		}
		issue := report.Issues[0]
		if issue.PageCount != 5 || issue.Document.EndIdx != 7 {
			t.Errorf("unexpected issue: %+v", issue)
		}
	})

	t.Run("missing dossier is reported not fatal", func(t *testing.T) {
		insp := NewInspector(t.TempDir(), fixedPages(5), nil)
		report, err := insp.Inspect([]document.Document{doc(t, "absent.pdf", 1, 2)})
		if err != nil {
			t.Fatalf("Inspect: %v", err)
		}
		if len(report.Dossiers) != 1 || !report.Dossiers[0].Missing {
			t.Errorf("expected missing dossier, got %+v", report.Dossiers)
		}
	})

	t.Run("resolves name without pdf suffix", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "doss1.pdf"))

		insp := NewInspector(dir, fixedPages(5), nil)
		report, err := insp.Inspect([]document.Document{doc(t, "doss1", 1, 2)})
		if err != nil {
			t.Fatalf("Inspect: %v", err)
		}
		if report.Dossiers[0].Missing {
			t.Error("expected doss1 to resolve to doss1.pdf")
		}
	})

	t.Run("dossiers are sorted by name", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "a.pdf"))
		touch(t, filepath.Join(dir, "b.pdf"))

		insp := NewInspector(dir, fixedPages(5), nil)
		report, err := insp.Inspect([]document.Document{
			doc(t, "b.pdf", 1, 2),
			doc(t, "a.pdf", 1, 2),
		})
		if err != nil {
			t.Fatalf("Inspect: %v", err)
		}
		if report.Dossiers[0].DossierName != "a.pdf" || report.Dossiers[1].DossierName != "b.pdf" {
			t.Errorf("expected sorted dossiers, got %+v", report.Dossiers)
		}
	})

	t.Run("page count failure propagates", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "doss1.pdf"))

		failing := func(string) (int, error) { return 0, fmt.Errorf("corrupt xref") }
		insp := NewInspector(dir, failing, nil)
		if _, err := insp.Inspect([]document.Document{doc(t, "doss1.pdf", 1, 2)}); err == nil {
			t.Fatal("expected error from page counter")
		}
	})
}

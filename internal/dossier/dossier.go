// Package dossier checks annotation spans against the physical dossier PDFs
// they reference. Purely advisory: it reports page counts and out-of-range
// spans, it never rejects an evaluation.
package dossier

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/jackzampolin/segeval/internal/document"
)

// PageCounter returns the number of pages in a PDF file.
type PageCounter func(path string) (int, error)

// CountPages is the pdfcpu-backed PageCounter used outside tests.
func CountPages(path string) (int, error) {
	return api.PageCountFile(path)
}

// Info summarizes one dossier referenced by the annotations.
type Info struct {
	DossierName   string `json:"dossierName" yaml:"dossierName"`
	Path          string `json:"path,omitempty" yaml:"path,omitempty"`
	PageCount     int    `json:"page_count,omitempty" yaml:"page_count,omitempty"`
	DocumentCount int    `json:"document_count" yaml:"document_count"`
	Missing       bool   `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// Issue flags a document span that falls outside its dossier's page range.
type Issue struct {
	Document  document.Summary `json:"document" yaml:"document"`
	PageCount int              `json:"page_count" yaml:"page_count"`
	Reason    string           `json:"reason" yaml:"reason"`
}

// Report is the result of inspecting a set of annotations against a dossier
// directory.
type Report struct {
	Dossiers []Info  `json:"dossiers" yaml:"dossiers"`
	Issues   []Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// Inspector resolves dossier names to PDFs under a directory and checks
// document spans against real page counts.
type Inspector struct {
	dir   string
	count PageCounter
	log   *slog.Logger
}

// NewInspector creates an Inspector over the given dossier directory. A nil
// counter uses pdfcpu; a nil logger uses slog.Default.
func NewInspector(dir string, counter PageCounter, log *slog.Logger) *Inspector {
	if counter == nil {
		counter = CountPages
	}
	if log == nil {
		log = slog.Default()
	}
	return &Inspector{dir: dir, count: counter, log: log}
}

// Inspect groups documents by dossier, resolves each dossier to a PDF and
// flags spans that exceed the physical page count. Dossiers with no PDF on
// disk are reported as missing rather than failing the whole inspection.
func (i *Inspector) Inspect(docs []document.Document) (*Report, error) {
	byDossier := make(map[string][]document.Document)
	for _, d := range docs {
		byDossier[d.DossierName()] = append(byDossier[d.DossierName()], d)
	}

	names := make([]string, 0, len(byDossier))
	for name := range byDossier {
		names = append(names, name)
	}
	sort.Strings(names)

	report := &Report{Dossiers: make([]Info, 0, len(names))}
	for _, name := range names {
		members := byDossier[name]
		info := Info{DossierName: name, DocumentCount: len(members)}

		path, ok := i.resolve(name)
		if !ok {
			info.Missing = true
			i.log.Warn("dossier PDF not found", "dossier", name, "dir", i.dir)
			report.Dossiers = append(report.Dossiers, info)
			continue
		}
		info.Path = path

		pages, err := i.count(path)
		if err != nil {
			return nil, fmt.Errorf("failed to count pages of %s: %w", path, err)
		}
		info.PageCount = pages

		for _, d := range members {
			if d.EndIdx() > pages {
				report.Issues = append(report.Issues, Issue{
					Document:  d.Summary(),
					PageCount: pages,
					Reason:    fmt.Sprintf("end_idx %d exceeds page count %d", d.EndIdx(), pages),
				})
			}
		}

		i.log.Info("inspected dossier", "dossier", name, "pages", pages, "documents", len(members))
		report.Dossiers = append(report.Dossiers, info)
	}

	return report, nil
}

// resolve maps a dossier name to a PDF under the inspector's directory,
// trying the name as-is and with a .pdf suffix.
func (i *Inspector) resolve(name string) (string, bool) {
	candidates := []string{
		filepath.Join(i.dir, name),
		filepath.Join(i.dir, name+".pdf"),
	}
	for _, p := range candidates {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p, true
		}
	}
	return "", false
}

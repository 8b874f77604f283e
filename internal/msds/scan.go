// Copyright ETOS group, Aalto University, 2026. MIT license.

// Package msds scrapes hazard statement data from Sigma-Aldrich style MSDS
// documents and formats the laboratory safety report.
package msds

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/etos-chem/msds-scraper/internal/hazard"
	"github.com/etos-chem/msds-scraper/internal/pdftext"
	"github.com/etos-chem/msds-scraper/pkg/types"
)

// banner is the first line of every report.
const banner = "ETOS group A!lto MSDS scaper"

// Scanner runs the per-directory scan. The zero value is not usable; both
// fields must be set.
type Scanner struct {
	Extractor pdftext.Extractor
	Lists     hazard.Lists
}

// Scan enumerates the .pdf files in dir in name-sorted order, scrapes each
// one, and writes the report to w. A file that cannot be read or parsed is
// still reported, with sentinel values; only an unreadable directory is an
// error. The returned records mirror the printed blocks.
func (s Scanner) Scan(dir string, w io.Writer) ([]types.Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".pdf") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "%d MSDS files found in the directory\n\n", len(names))

	records := make([]types.Record, 0, len(names))
	for i, name := range names {
		rec := s.scanFile(filepath.Join(dir, name), name)
		writeBlock(w, rec, i+1, len(names))
		records = append(records, rec)
	}

	return records, nil
}

// scanFile scrapes one MSDS file. Extraction failure degrades to a record
// full of sentinels rather than an error; the run must report every file.
func (s Scanner) scanFile(path, filename string) types.Record {
	rec := types.Record{
		Filename:     filename,
		CompoundName: types.NotFound,
		CAS:          types.NotFound,
	}

	doc, err := s.Extractor.Extract(path)
	if err != nil || doc.Empty() {
		return rec
	}

	if name, ok := parseCompoundName(doc.FirstPage()); ok {
		rec.CompoundName = name
	}
	if cas, ok := parseCAS(doc.FirstPage()); ok {
		rec.CAS = cas
	}

	codes := parseHazardCodes(doc.Pages)
	rec.CMRPhrases, rec.OtherPhrases = s.Lists.Partition(codes)
	rec.CMR = len(rec.CMRPhrases) > 0
	rec.ParticularlyHazardous = s.Lists.ParticularlyHazardous(codes)

	return rec
}

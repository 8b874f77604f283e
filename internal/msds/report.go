// Copyright ETOS group, Aalto University, 2026. MIT license.

package msds

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/etos-chem/msds-scraper/pkg/types"
)

// writeBlock prints the per-file report block. The layout is fixed; the
// safety coordinators diff reports between runs, so nothing here may depend
// on time or environment.
func writeBlock(w io.Writer, rec types.Record, index, total int) {
	fmt.Fprintf(w, "File: %s (%d/%d)\n", rec.Filename, index, total)
	fmt.Fprintln(w, "--------------------------------")
	fmt.Fprintf(w, "Compound name: %s\n", rec.CompoundName)
	fmt.Fprintf(w, "Compound CAS: %s\n", rec.CAS)
	fmt.Fprintf(w, "Particularily hazardous: %s\n", yesNo(rec.ParticularlyHazardous))
	fmt.Fprintf(w, "CMR chemical: %s\n", yesNo(rec.CMR))
	if rec.CMR {
		fmt.Fprintf(w, "CMR H-phrases: %s\n", strings.Join(rec.CMRPhrases, ", "))
	}
	if len(rec.OtherPhrases) > 0 {
		fmt.Fprintf(w, "Other H and EU Phrases chemical: %s\n", strings.Join(rec.OtherPhrases, ", "))
	} else {
		fmt.Fprintln(w, "Other H and EU Phrases: No")
	}
	fmt.Fprintln(w)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// Report is the YAML export of one scan run.
type Report struct {
	Files   int            `yaml:"files"`
	Records []types.Record `yaml:"records"`
}

// WriteYAML saves the scan records to a YAML report file.
func WriteYAML(path string, records []types.Record) error {
	report := Report{
		Files:   len(records),
		Records: records,
	}
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

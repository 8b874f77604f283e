// Copyright ETOS group, Aalto University, 2026. MIT license.

// Package types defines the data records shared between the scraper stages
// and the report output.
package types

// NotFound is printed in place of a field that could not be located in the
// document text.
const NotFound = "NOT FOUND IN MSDS"

// Record holds the hazard data scraped from one MSDS file. A record exists
// only for the duration of one scan run; nothing is persisted.
type Record struct {
	// Filename is the base name of the source PDF.
	Filename string `yaml:"filename"`

	// CompoundName is the product name from the identification section,
	// or NotFound.
	CompoundName string `yaml:"compound_name"`

	// CAS is the CAS registry number (e.g. "151-50-8"), or NotFound.
	CAS string `yaml:"cas"`

	// ParticularlyHazardous reports whether the document carries any
	// statement from the particularly-hazardous (SVHC) marker list.
	ParticularlyHazardous bool `yaml:"particularly_hazardous"`

	// CMR reports whether any CMR-classified statement was found.
	CMR bool `yaml:"cmr"`

	// CMRPhrases lists the CMR-classified hazard codes in the order they
	// first appear in the document.
	CMRPhrases []string `yaml:"cmr_phrases,omitempty"`

	// OtherPhrases lists the remaining hazard codes in first-appearance order.
	OtherPhrases []string `yaml:"other_phrases,omitempty"`
}

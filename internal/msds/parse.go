// Copyright ETOS group, Aalto University, 2026. MIT license.

package msds

import (
	"regexp"
	"strings"
)

// The identification fields sit between fixed labels of the Sigma-Aldrich
// MSDS template. Extracted text loses layout, so the value runs from the
// label up to the next known label, with newlines removed first.
var (
	productNameRe = regexp.MustCompile(`(?is)Product name\s*:\s*(.*?)\s*Product Number`)
	casRe         = regexp.MustCompile(`(?i)CAS[-\s]?No\.?\s*:?\s*(\d{2,7}-\d{2}-\d)`)
	hazardCodeRe  = regexp.MustCompile(`\b(EUH\d{2,3}|H\d{3}[A-Za-z]{0,2})\b`)
)

// trademarkGlyphs are the footnote marks Sigma-Aldrich appends to product
// names.
const trademarkGlyphs = "®™* "

// parseCompoundName pulls the product name from the first page of the
// document. The reported name is trimmed of trailing trademark glyphs.
func parseCompoundName(firstPage string) (string, bool) {
	m := productNameRe.FindStringSubmatch(flatten(firstPage))
	if m == nil {
		return "", false
	}
	name := strings.TrimRight(strings.TrimSpace(m[1]), trademarkGlyphs)
	if name == "" {
		return "", false
	}
	return name, true
}

// parseCAS pulls the CAS registry number from the first page.
func parseCAS(firstPage string) (string, bool) {
	m := casRe.FindStringSubmatch(flatten(firstPage))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// parseHazardCodes collects every H and EUH statement code in the document,
// page by page, deduplicated in first-appearance order.
func parseHazardCodes(pages []string) []string {
	var codes []string
	seen := make(map[string]bool)
	for _, page := range pages {
		for _, m := range hazardCodeRe.FindAllString(page, -1) {
			if seen[m] {
				continue
			}
			seen[m] = true
			codes = append(codes, m)
		}
	}
	return codes
}

// flatten removes line breaks so label/value pairs split across lines by the
// text extractor still match.
func flatten(s string) string {
	return strings.ReplaceAll(s, "\n", "")
}

// Copyright ETOS group, Aalto University, 2026. MIT license.

// Package hazard carries the GHS hazard statement code lists and the
// classification logic built on them. The defaults follow the Aalto School of
// Chemical Engineering laboratory safety requirements for Sigma-Aldrich MSDS
// documents; a config file may override each list.
package hazard

// Lists holds the hazard statement code lists the scraper classifies
// against. Membership is exact string match, including suffix letters
// (H350i and H350 are distinct codes).
type Lists struct {
	// RedFlags marks a substance as particularly hazardous (SVHC) when any
	// of its statements appear in the document.
	RedFlags []string

	// CMR lists the carcinogenic/mutagenic/reprotoxic statement codes.
	// Partition places every code outside this list under "other".
	CMR []string
}

// Defaults returns the compiled-in code lists.
func Defaults() Lists {
	return Lists{
		RedFlags: []string{
			"H340", "H341", "H350", "H350i", "H360", "H360D", "H360Df",
			"H360F", "H360FD", "H360Fd", "H361", "H361d", "H361df", "H362",
			"H370", "H371", "H372", "H373", "H300", "H301", "H310", "H311",
			"H330", "H331", "UEH001", "EUH006", "EUH019", "EUH029", "EUH031",
			"EUH32", "EUH044", "EUH070", "EUH071",
		},
		CMR: []string{
			"H340", "H350", "H341", "H350i", "H351", "H360", "H360D",
			"H360Df", "H360F", "H360FD", "H360Fd", "H361", "H361d", "H361f",
			"H361fd", "H362", "H370", "H371", "H372", "H373",
		},
	}
}

// Partition splits codes into the CMR-classified set and everything else.
// Both results preserve the input order. The sets are disjoint and together
// cover every input code.
func (l Lists) Partition(codes []string) (cmr, other []string) {
	inCMR := toSet(l.CMR)
	for _, code := range codes {
		if inCMR[code] {
			cmr = append(cmr, code)
		} else {
			other = append(other, code)
		}
	}
	return cmr, other
}

// ParticularlyHazardous reports whether any code is on the red-flag list.
func (l Lists) ParticularlyHazardous(codes []string) bool {
	flagged := toSet(l.RedFlags)
	for _, code := range codes {
		if flagged[code] {
			return true
		}
	}
	return false
}

func toSet(codes []string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, code := range codes {
		set[code] = true
	}
	return set
}

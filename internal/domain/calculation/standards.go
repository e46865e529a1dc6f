package calculation

import "strings"

// standardsByLocation is the fixed lookup for reporting frameworks by
// jurisdiction. Location keys are normalized to lowercase without spaces.
var standardsByLocation = map[string][]string{
	"australia":      {"NGER Act", "Climate Active", "TCFD"},
	"newzealand":     {"Climate Standards NZ CS1", "TCFD"},
	"unitedkingdom":  {"SECR", "ESOS", "TCFD"},
	"uk":             {"SECR", "ESOS", "TCFD"},
	"europeanunion":  {"CSRD", "EU ETS", "SFDR"},
	"eu":             {"CSRD", "EU ETS", "SFDR"},
	"unitedstates":   {"SEC Climate Disclosure", "GHG Protocol", "TCFD"},
	"usa":            {"SEC Climate Disclosure", "GHG Protocol", "TCFD"},
	"canada":         {"OSFI B-15", "GHG Protocol", "TCFD"},
	"singapore":      {"SGX Climate Reporting", "TCFD"},
}

// defaultStandards applies when the location is unknown.
var defaultStandards = []string{"GHG Protocol", "ISO 14064", "TCFD"}

// ApplicableStandards resolves the ordered standards list. An explicit
// non-empty caller list wins verbatim; otherwise the location table decides.
func ApplicableStandards(explicit []string, location string) []string {
	if len(explicit) > 0 {
		return explicit
	}
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(location), " ", ""))
	if standards, ok := standardsByLocation[key]; ok {
		return append([]string(nil), standards...)
	}
	return append([]string(nil), defaultStandards...)
}

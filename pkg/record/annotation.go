package record

import (
	"slices"
	"strings"
)

// Score computes the data-completeness score of a record:
// 1 plus one point for each of a curated name, an occurrence in a trusted
// database, a known organism and a literature reference.
func (np *NaturalProduct) Score(trusted []string) int {
	res := 1
	if np.hasName() {
		res++
	}
	if np.hasTrustedSource(trusted) {
		res++
	}
	if np.HasOrganism() {
		res++
	}
	if len(np.Citations) > 0 {
		res++
	}
	return res
}

// UpdateAnnotationLevel recomputes the score and stores it.
func (np *NaturalProduct) UpdateAnnotationLevel(trusted []string) bool {
	lvl := np.Score(trusted)
	if lvl == np.AnnotationLevel {
		return false
	}
	np.AnnotationLevel = lvl
	return true
}

func (np *NaturalProduct) hasName() bool {
	name := strings.TrimSpace(np.Name)
	return name != "" && name != strings.TrimSpace(np.IUPACName)
}

func (np *NaturalProduct) hasTrustedSource(trusted []string) bool {
	for _, v := range np.FoundInDatabases {
		if slices.Contains(trusted, v) {
			return true
		}
	}
	return false
}

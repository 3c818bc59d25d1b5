package names

// Current is the name state of a record before a candidate arrives.
type Current struct {
	Name  string
	Trust int
	IUPAC string
}

// Decision is the outcome of SelectName.
type Decision struct {
	// Name is the display name the record keeps.
	Name string
	// Trust is the trust level of Name. It is never lower than the trust
	// level of the current name.
	Trust int
	// Archive lists names that go to synonyms.
	Archive []string
	// Changed is true when Name or Trust differ from the current state.
	Changed bool
}

// SelectName applies the best-name policy for a candidate name coming from
// a source with trust level t.
//
// An empty current name is replaced by the candidate. A low-quality current
// name is replaced by a usable candidate and discarded. A usable current
// name is replaced only by a usable, strictly shorter candidate from a
// source of at least the same trust, and goes to synonyms. A usable
// candidate that does not win goes to synonyms. Low-quality candidates
// never go to synonyms, and become the name only when nothing else is
// available.
func (c *Curator) SelectName(cur Current, candidate string, t int) Decision {
	name := Normalize(cur.Name)
	cand := Normalize(candidate)
	iupac := Normalize(cur.IUPAC)
	res := Decision{Name: name, Trust: cur.Trust}

	candOK := cand != "" && !c.IsLowQuality(cand)

	switch {
	case name == "":
		switch {
		case candOK:
			res.Name = cand
			res.Trust = max(cur.Trust, t)
		case iupac != "":
			res.Name = iupac
		case cand == "":
		default:
			// last resort
			res.Name = cand
			res.Trust = max(cur.Trust, t)
		}

	case c.IsLowQuality(name):
		switch {
		case candOK:
			res.Name = cand
			res.Trust = max(cur.Trust, t)
		case iupac != "":
			res.Name = iupac
		}

	case !candOK || cand == name:

	case Len(cand) < Len(name) && t >= cur.Trust:
		res.Archive = append(res.Archive, name)
		res.Name = cand
		res.Trust = t

	default:
		res.Archive = append(res.Archive, cand)
	}

	res.Changed = res.Name != cur.Name || res.Trust != cur.Trust
	return res
}

// FallbackToIUPAC replaces an empty or low-quality name with the IUPAC
// name. The trust level is kept.
func (c *Curator) FallbackToIUPAC(cur Current) Decision {
	res := Decision{Name: cur.Name, Trust: cur.Trust}
	iupac := Normalize(cur.IUPAC)
	if iupac != "" && c.IsLowQuality(cur.Name) {
		res.Name = iupac
	}
	res.Changed = res.Name != cur.Name
	return res
}

// CleanSynonyms drops low-quality synonyms, empty strings, duplicates and
// the display name itself. The order of the remaining synonyms is kept.
func (c *Curator) CleanSynonyms(name string, synonyms []string) []string {
	name = Normalize(name)
	seen := make(map[string]struct{}, len(synonyms))
	res := make([]string, 0, len(synonyms))
	for _, v := range synonyms {
		v = Normalize(v)
		if v == name || c.IsLowQuality(v) {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}

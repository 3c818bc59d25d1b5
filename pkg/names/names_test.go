package names_test

import (
	"testing"

	"github.com/gnames/npdb/pkg/names"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRules(t *testing.T) {
	rules := names.DefaultRules()
	assert.Equal(t, 4, rules.MinLength)
	assert.Contains(t, rules.Prefix, "ZINC")
	assert.Contains(t, rules.ContainsCI, "salt")
	assert.Len(t, rules.Regex, 8)
	assert.Greater(t, rules.Len(), 100)
}

func TestParseRules(t *testing.T) {
	t.Run("custom table", func(t *testing.T) {
		data := []byte("min_length: 2\nprefix:\n  - FOO\nregex:\n  - '^x+$'\n")
		rules, err := names.ParseRules(data)
		require.NoError(t, err)
		cur := names.New(rules)
		assert.True(t, cur.IsLowQuality("FOO123"))
		assert.True(t, cur.IsLowQuality("xxxx"))
		assert.True(t, cur.IsLowQuality("a"))
		assert.False(t, cur.IsLowQuality("ZINC000123"))
	})

	t.Run("bad regex", func(t *testing.T) {
		_, err := names.ParseRules([]byte("regex:\n  - '('\n"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := names.ParseRules([]byte("prefix: [unclosed"))
		assert.Error(t, err)
	})
}

func TestIsLowQuality(t *testing.T) {
	cur := names.NewDefault()

	tests := []struct {
		msg  string
		name string
		kind names.Kind
	}{
		{"empty", "", names.KindEmpty},
		{"spaces", "   ", names.KindEmpty},
		{"short", "abc", names.KindMinLength},
		{"exact", "No Doz", names.KindExact},
		{"zinc", "ZINC000123", names.KindPrefix},
		{"mcule", "MCULE-1234567890", names.KindPrefix},
		{"schembl", "SCHEMBL12345", names.KindPrefix},
		{"nsc", "NSC 12345", names.KindPrefix},
		{"prestwick", "Prestwick3_000123", names.KindPrefixCI},
		{"kbio", "KBio2_001234", names.KindPrefixCI},
		{"dash suffix", "abcdef-", names.KindSuffix},
		{"purity", "caffeine 99%", names.KindContains},
		{"hplc", "quercetin, HPLC grade", names.KindContains},
		{"salt", "Sodium Salt of something", names.KindContainsCI},
		{"standard", "Analytical STANDARD", names.KindContainsCI},
		{"chebi", "CHEBI:12345", names.KindContainsCI},
		{"microg", "solution 100 microg/mL", names.KindContainsCI},
		{"inchikey", "RZVAJINKPMORJF-UHFFFAOYSA-N", names.KindRegex},
		{"cas", "50-78-2", names.KindRegex},
		{"formula", "C15H10O7", names.KindRegex},
		{"cid", "cid5280343", names.KindRegex},
		{"ge code", "GE2270", names.KindRegex},
		{"broken inchi", "1(2z)-something", names.KindRegex},
		{"broken inchi pair", "3(4z,5z)-dienoate", names.KindRegex},
		{"lipid", "16:0/18:1 phosphocholine", names.KindRegex},
		{"pc prefix", "pc(16:0/18:1)", names.KindPrefix},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			assert.True(t, cur.IsLowQuality(v.name), v.name)
			rule, ok := cur.Match(v.name)
			assert.True(t, ok)
			assert.Equal(t, v.kind, rule.Kind)
		})
	}
}

func TestVendorPrefixes(t *testing.T) {
	cur := names.NewDefault()
	for _, p := range cur.Rules().Prefix {
		name := p + "000123"
		assert.True(t, cur.IsLowQuality(name), name)
	}
	for _, p := range cur.Rules().PrefixCI {
		name := p + "000123"
		assert.True(t, cur.IsLowQuality(name), name)
	}
}

func TestUsableNames(t *testing.T) {
	cur := names.NewDefault()
	good := []string{
		"Taxol",
		"Paclitaxel",
		"Quercetin",
		"Caffeine",
		"Artemisinin",
		"Morphine",
		"Vinblastine",
		"Camptothecin",
		"β-Carotene",
	}
	for _, v := range good {
		_, ok := cur.Match(v)
		assert.False(t, ok, v)
	}
}

func TestNormalize(t *testing.T) {
	decomposed := "Cafe\u0301ine "
	assert.Equal(t, "Caf\u00e9ine", names.Normalize(decomposed))
	assert.Equal(t, 7, names.Len(decomposed))
	assert.True(t, names.IsCAS(" 58-08-2"))
	assert.False(t, names.IsCAS("58-08"))
}

func TestSelectName(t *testing.T) {
	cur := names.NewDefault()

	tests := []struct {
		msg     string
		current names.Current
		cand    string
		trust   int
		name    string
		level   int
		archive []string
		changed bool
	}{
		{
			msg:     "empty current adopts candidate",
			current: names.Current{},
			cand:    "Taxol",
			trust:   1,
			name:    "Taxol",
			level:   1,
			changed: true,
		},
		{
			msg:     "low-quality current is discarded",
			current: names.Current{Name: "ZINC000123", Trust: 1},
			cand:    "Taxol",
			trust:   1,
			name:    "Taxol",
			level:   1,
			changed: true,
		},
		{
			msg:     "low-quality current replaced by lower trust",
			current: names.Current{Name: "ZINC000123", Trust: 2},
			cand:    "Taxol",
			trust:   1,
			name:    "Taxol",
			level:   2,
			changed: true,
		},
		{
			msg:     "shorter candidate wins and current is archived",
			current: names.Current{Name: "Paclitaxel", Trust: 1},
			cand:    "Taxol",
			trust:   1,
			name:    "Taxol",
			level:   1,
			archive: []string{"Paclitaxel"},
			changed: true,
		},
		{
			msg:     "longer candidate is archived",
			current: names.Current{Name: "Taxol", Trust: 1},
			cand:    "Paclitaxel",
			trust:   1,
			name:    "Taxol",
			level:   1,
			archive: []string{"Paclitaxel"},
		},
		{
			msg:     "lower trust never replaces usable name",
			current: names.Current{Name: "Paclitaxel", Trust: 2},
			cand:    "Taxol",
			trust:   1,
			name:    "Paclitaxel",
			level:   2,
			archive: []string{"Taxol"},
		},
		{
			msg:     "higher trust shorter candidate",
			current: names.Current{Name: "Paclitaxel", Trust: 1},
			cand:    "Taxol",
			trust:   2,
			name:    "Taxol",
			level:   2,
			archive: []string{"Paclitaxel"},
			changed: true,
		},
		{
			msg:     "low-quality candidate is never archived",
			current: names.Current{Name: "Taxol", Trust: 1},
			cand:    "ZINC000123",
			trust:   2,
			name:    "Taxol",
			level:   1,
		},
		{
			msg:     "same name does nothing",
			current: names.Current{Name: "Taxol", Trust: 1},
			cand:    "Taxol",
			trust:   1,
			name:    "Taxol",
			level:   1,
		},
		{
			msg:     "empty candidate does nothing",
			current: names.Current{Name: "Taxol", Trust: 1},
			cand:    "",
			trust:   2,
			name:    "Taxol",
			level:   1,
		},
		{
			msg:     "low-quality candidate yields to iupac",
			current: names.Current{IUPAC: "methyl benzoate"},
			cand:    "ZINC000123",
			trust:   1,
			name:    "methyl benzoate",
			level:   0,
			changed: true,
		},
		{
			msg:     "low-quality candidate as last resort",
			current: names.Current{},
			cand:    "ZINC000123",
			trust:   1,
			name:    "ZINC000123",
			level:   1,
			changed: true,
		},
		{
			msg:     "low-quality current and candidate fall back to iupac",
			current: names.Current{Name: "SCHEMBL1234", Trust: 1, IUPAC: "methyl benzoate"},
			cand:    "MCULE-123",
			trust:   1,
			name:    "methyl benzoate",
			level:   1,
			changed: true,
		},
		{
			msg:     "low-quality current stays without alternatives",
			current: names.Current{Name: "SCHEMBL1234", Trust: 1},
			cand:    "MCULE-123",
			trust:   1,
			name:    "SCHEMBL1234",
			level:   1,
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			res := cur.SelectName(v.current, v.cand, v.trust)
			assert.Equal(t, v.name, res.Name)
			assert.Equal(t, v.level, res.Trust)
			assert.Equal(t, v.archive, res.Archive)
			assert.Equal(t, v.changed, res.Changed)
			assert.GreaterOrEqual(t, res.Trust, v.current.Trust)
		})
	}
}

func TestFallbackToIUPAC(t *testing.T) {
	cur := names.NewDefault()

	res := cur.FallbackToIUPAC(names.Current{Name: "NSC 1234", Trust: 2, IUPAC: "ethanol"})
	assert.Equal(t, "ethanol", res.Name)
	assert.Equal(t, 2, res.Trust)
	assert.True(t, res.Changed)

	res = cur.FallbackToIUPAC(names.Current{Name: "Ethanol", IUPAC: "ethanol"})
	assert.Equal(t, "Ethanol", res.Name)
	assert.False(t, res.Changed)

	res = cur.FallbackToIUPAC(names.Current{Name: "NSC 1234"})
	assert.Equal(t, "NSC 1234", res.Name)
	assert.False(t, res.Changed)
}

func TestCleanSynonyms(t *testing.T) {
	cur := names.NewDefault()
	syns := []string{
		"Taxol", "Paclitaxel", "ZINC000123", "", "Paclitaxel ", "Taxol A",
		"50-78-2",
	}
	res := cur.CleanSynonyms("Taxol", syns)
	assert.Equal(t, []string{"Paclitaxel", "Taxol A"}, res)
}

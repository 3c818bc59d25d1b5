package iosources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/npdb/pkg/config"
	"github.com/gnames/npdb/pkg/errcode"
	"github.com/gnames/npdb/pkg/names"
	"github.com/gnames/npdb/pkg/sources"
	"github.com/gnames/npdb/pkg/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func homeWith(t *testing.T, file, content string) *config.Config {
	t.Helper()
	home := t.TempDir()
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(home)})

	dir := config.ConfigDir(home)
	require.NoError(t, os.MkdirAll(dir, 0755))
	if file != "" {
		err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0644)
		require.NoError(t, err)
	}
	return cfg
}

func TestLoadTemplate(t *testing.T) {
	cfg := homeWith(t, "sources.yaml", templates.SourcesYAML)

	sc, err := New(cfg).Load()
	require.NoError(t, err)
	assert.Empty(t, sc.Warnings)

	chebi, ok := sc.Get(sources.ChEBI)
	require.True(t, ok)
	assert.Equal(t, "chebi", chebi.Name)
	assert.Equal(t, "chebi_np", chebi.DatabaseTag)
	assert.Equal(t, 2, chebi.NameTrustLevel)

	cmaup, err := Source(New(cfg), sources.CMAUP)
	require.NoError(t, err)
	assert.Len(t, cmaup.Files, 4)
}

func TestLoadWarnings(t *testing.T) {
	cfg := homeWith(t, "sources.yaml", `
sources:
  knapsack:
    files:
      data: /tmp/knapsack.tsv
    xref_url: ftp://example.org/
`)
	sc, err := New(cfg).Load()
	require.NoError(t, err)
	assert.Len(t, sc.Warnings, 3)
	src, _ := sc.Get(sources.KnapSack)
	assert.Empty(t, src.XRefURL)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		msg     string
		content string
		write   bool
	}{
		{"missing file", "", false},
		{"bad yaml", "sources: [", true},
		{"unknown source", "sources:\n  zinc:\n    files:\n      data: a.tsv\n", true},
		{"missing location", "sources:\n  chebi:\n    files: {}\n", true},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			file := ""
			if v.write {
				file = "sources.yaml"
			}
			cfg := homeWith(t, file, v.content)
			_, err := New(cfg).Load()
			var gnErr *gn.Error
			require.ErrorAs(t, err, &gnErr)
			assert.Equal(t, errcode.SourcesConfigError, gnErr.Code)
		})
	}
}

func TestSourceUnknown(t *testing.T) {
	cfg := homeWith(t, "sources.yaml", `
sources:
  iupac:
    files:
      data: /tmp/iupac.txt
`)
	_, err := Source(New(cfg), sources.PubChem)
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.SourcesUnknownError, gnErr.Code)
}

func TestLoadRules(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		cfg := homeWith(t, "", "")
		rules, err := LoadRules(cfg.HomeDir)
		require.NoError(t, err)
		assert.Equal(t, names.DefaultRules().Len(), rules.Len())
	})

	t.Run("custom", func(t *testing.T) {
		cfg := homeWith(t, "rules.yaml", "min_length: 2\nexact:\n  - foo\n")
		rules, err := LoadRules(cfg.HomeDir)
		require.NoError(t, err)
		cur := names.New(rules)
		assert.True(t, cur.IsLowQuality("foo"))
		assert.False(t, cur.IsLowQuality("ZINC0001"))
	})

	t.Run("bad regex", func(t *testing.T) {
		cfg := homeWith(t, "rules.yaml", "regex:\n  - '['\n")
		_, err := LoadRules(cfg.HomeDir)
		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr)
		assert.Equal(t, errcode.RulesParseError, gnErr.Code)
	})
}

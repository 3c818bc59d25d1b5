package curation_test

import (
	"testing"

	"github.com/gnames/npdb/pkg/config"
	"github.com/gnames/npdb/pkg/curation"
	"github.com/gnames/npdb/pkg/names"
	"github.com/gnames/npdb/pkg/parserpool"
	"github.com/gnames/npdb/pkg/record"
	"github.com/gnames/npdb/pkg/sources"
	"github.com/stretchr/testify/assert"
)

func env(src sources.Source) *curation.Env {
	return &curation.Env{Names: names.NewDefault(), Source: src}
}

var chebiSrc = sources.Source{
	Name:           sources.ChEBI,
	DatabaseTag:    "chebi_np",
	XRefTag:        "chebi_np",
	XRefURL:        "https://www.ebi.ac.uk/chebi/searchId.do?chebiId=CHEBI:",
	NameTrustLevel: 2,
}

func TestKnapSack(t *testing.T) {
	e := env(sources.Source{
		DatabaseTag: "knapsack",
		XRefTag:     "knapsack",
		XRefURL:     "http://www.knapsackfamily.com/knapsack_core/information.php?word=",
	})
	np := &record.NaturalProduct{
		AccessionID: "CNP0000001",
		TextTaxa:    []string{record.NoTaxon},
	}
	row := curation.KnapSackRow{
		Accession:  "CNP0000001",
		KnapSackID: "C00001234",
		Species:    "Taxus brevifolia",
		Reference:  "J. Nat. Prod. 1990",
	}
	assert.Equal(t, "CNP0000001", row.AccessionID())

	row.Merge(np, e)
	row.Merge(np, e)

	assert.Equal(t, []string{"knapsack"}, np.FoundInDatabases)
	assert.Equal(t, []string{"Taxus brevifolia"}, np.TextTaxa)
	assert.Equal(t, []string{"J. Nat. Prod. 1990"}, np.Citations)
	assert.Len(t, np.XRefs, 1)
	assert.Equal(t, "C00001234", np.XRefs[0].ID)
}

func TestChEBI(t *testing.T) {
	t.Run("better name and lists", func(t *testing.T) {
		np := &record.NaturalProduct{
			Name:           "ZINC000123",
			NameTrustLevel: 0,
			TextTaxa:       []string{record.NoTaxon},
			TaxonomyIDs:    []string{"9606"},
		}
		row := curation.ChEBIRow{
			ChEBIID:   "45863",
			Name:      "paclitaxel",
			Synonyms:  []string{"Taxol", "CHEBI:45863", "Paxene"},
			Species:   []string{"Taxus brevifolia"},
			TaxonIDs:  []string{"46220-1"},
			PubMedIDs: []string{"1234567"},
		}
		row.Merge(np, env(chebiSrc))

		assert.Equal(t, "paclitaxel", np.Name)
		assert.Equal(t, 2, np.NameTrustLevel)
		assert.Equal(t, []string{"Taxol", "Paxene"}, np.Synonyms)
		assert.Equal(t, []string{"Taxus brevifolia"}, np.TextTaxa)
		assert.Equal(t, []string{"9606", "46220"}, np.TaxonomyIDs)
		assert.Equal(t, []string{"1234567"}, np.Citations)
		assert.Equal(t, []string{"chebi_np"}, np.FoundInDatabases)
		assert.Equal(t, []record.XRef{{
			Source: "chebi_np", ID: "45863", URL: chebiSrc.XRefURL,
		}}, np.XRefs)
	})

	t.Run("first synonym when name is empty", func(t *testing.T) {
		np := &record.NaturalProduct{}
		row := curation.ChEBIRow{ChEBIID: "1", Synonyms: []string{"Quercetin", "Sophoretin"}}
		row.Merge(np, env(chebiSrc))
		assert.Equal(t, "Quercetin", np.Name)
		assert.Equal(t, []string{"Sophoretin"}, np.Synonyms)
	})
}

func TestCMAUP(t *testing.T) {
	src := sources.Source{
		DatabaseTag:    "cmaup",
		XRefTag:        "cmaup",
		XRefURL:        "http://bidd2.nus.edu.sg/CMAUP/searchresults.php?keyword_search=",
		NameTrustLevel: 1,
	}
	np := &record.NaturalProduct{
		Name:           "Paclitaxel",
		NameTrustLevel: 2,
		TextTaxa:       []string{record.NoTaxon},
	}
	row := curation.CMAUPRow{
		CMAUPID: "NPC12345",
		Name:    "Taxol",
		Plants: []curation.Plant{
			{ID: "NPO1", Name: "Taxus brevifolia", TaxonID: "46220"},
			{ID: "NPO2", Name: "NA", TaxonID: "NA"},
		},
	}
	row.Merge(np, env(src))

	// lower trust does not replace the ChEBI name
	assert.Equal(t, "Paclitaxel", np.Name)
	assert.Equal(t, 2, np.NameTrustLevel)
	assert.Equal(t, []string{"Taxol"}, np.Synonyms)
	assert.Equal(t, []string{curation.CMAUPTaxon, "Taxus brevifolia"}, np.TextTaxa)
	assert.Equal(t, []string{"46220"}, np.TaxonomyIDs)
	assert.True(t, np.HasXRef("cmaup", "NPC12345"))
}

func TestPubChem(t *testing.T) {
	src := sources.Source{
		DatabaseTag:    "pubchem",
		XRefTag:        "pubchem_tested_np",
		XRefURL:        "https://pubchem.ncbi.nlm.nih.gov/compound/",
		NameTrustLevel: 1,
	}

	t.Run("name, iupac and cas", func(t *testing.T) {
		np := &record.NaturalProduct{Name: "SCHEMBL69781"}
		row := curation.PubChemRow{
			CID:      "1",
			Name:     "Acetyl-DL-carnitine",
			IUPAC:    "3-acetyloxy-4-(trimethylazaniumyl)butanoate",
			CAS:      []string{"870-77-9", "14992-62-2"},
			Synonyms: []string{"acetylcarnitine", "bmse000142", "870-77-9"},
		}
		row.Merge(np, env(src))

		assert.Equal(t, "Acetyl-DL-carnitine", np.Name)
		assert.Equal(t, 1, np.NameTrustLevel)
		assert.Equal(t, "3-acetyloxy-4-(trimethylazaniumyl)butanoate", np.IUPACName)
		assert.Equal(t, "870-77-9", np.CAS)
		assert.Equal(t, []string{"acetylcarnitine"}, np.Synonyms)
		assert.Equal(t, []string{"pubchem"}, np.FoundInDatabases)
		assert.True(t, np.HasXRef("pubchem_tested_np", "1"))
	})

	t.Run("existing values are kept", func(t *testing.T) {
		np := &record.NaturalProduct{
			Name:      "Carnitine acetate",
			IUPACName: "old iupac",
			CAS:       "14992-62-2",
		}
		row := curation.PubChemRow{
			CID:   "1",
			Name:  "ZINC000001",
			IUPAC: "new iupac",
			CAS:   []string{"870-77-9"},
		}
		row.Merge(np, env(src))
		assert.Equal(t, "Carnitine acetate", np.Name)
		assert.Equal(t, "old iupac", np.IUPACName)
		assert.Equal(t, "14992-62-2", np.CAS)
		assert.Empty(t, np.Synonyms)
	})

	t.Run("no xref tag", func(t *testing.T) {
		np := &record.NaturalProduct{}
		curation.PubChemRow{CID: "1"}.Merge(np, env(sources.Source{}))
		assert.Empty(t, np.XRefs)
		assert.Empty(t, np.FoundInDatabases)
	})
}

func TestIUPAC(t *testing.T) {
	tests := []struct {
		msg   string
		np    record.NaturalProduct
		row   curation.IUPACRow
		title bool
		name  string
		iupac string
		cas   string
		syns  []string
	}{
		{
			msg:   "cas-shaped name",
			np:    record.NaturalProduct{Name: "50-78-2"},
			row:   curation.IUPACRow{IUPAC: "2-acetyloxybenzoic acid"},
			name:  "2-acetyloxybenzoic acid",
			iupac: "2-acetyloxybenzoic acid",
			cas:   "50-78-2",
		},
		{
			msg:   "usable name kept",
			np:    record.NaturalProduct{Name: "aspirin", Synonyms: []string{"MCULE-1", "Acetylsalicylic acid"}},
			row:   curation.IUPACRow{IUPAC: "2-acetyloxybenzoic acid"},
			name:  "aspirin",
			iupac: "2-acetyloxybenzoic acid",
			syns:  []string{"Acetylsalicylic acid"},
		},
		{
			msg:   "title case",
			np:    record.NaturalProduct{Name: "acetylsalicylic acid"},
			row:   curation.IUPACRow{IUPAC: "2-acetyloxybenzoic acid"},
			title: true,
			name:  "Acetylsalicylic Acid",
			iupac: "2-acetyloxybenzoic acid",
		},
		{
			msg:   "iupac is never overwritten",
			np:    record.NaturalProduct{Name: "", IUPACName: "first"},
			row:   curation.IUPACRow{IUPAC: "second"},
			title: true,
			name:  "first",
			iupac: "first",
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			np := v.np.Clone()
			e := env(sources.Source{})
			e.TitleCase = v.title
			v.row.Merge(np, e)
			assert.Equal(t, v.name, np.Name)
			assert.Equal(t, v.iupac, np.IUPACName)
			assert.Equal(t, v.cas, np.CAS)
			assert.Equal(t, len(v.syns), len(np.Synonyms))
			for _, s := range v.syns {
				assert.Contains(t, np.Synonyms, s)
			}
		})
	}
}

func TestTransforms(t *testing.T) {
	np := &record.NaturalProduct{
		Name:             "Taxol",
		TaxonomyIDs:      []string{"46220-1"},
		TextTaxa:         []string{"Taxus brevifolia"},
		FoundInDatabases: []string{"knapsack"},
		InChIKey:         "RCINICONZNJXQF-MZXODVADSA-N",
		XRefs: []record.XRef{
			{Source: "knapsack", ID: "C1", URL: "http://k/"},
			{Source: "knapsack", ID: "C1", URL: "http://k/"},
		},
	}
	cl := record.Classification{
		SuperClass:   "Lipids and lipid-like molecules",
		Class:        "Prenol lipids",
		SubClass:     "Diterpenoids",
		DirectParent: "Taxanes and derivatives",
	}

	tr := curation.Chain(
		curation.NormalizeXRefs(record.PrettySources),
		curation.NormalizeTaxonIDs(),
		curation.Classify(map[string]record.Classification{np.InChIKey: cl}),
		curation.Annotate(config.DefaultTrustedSources),
	)
	tr(np)

	assert.Len(t, np.XRefs, 1)
	assert.Equal(t, []record.CleanXRef{
		{Source: "KnapSack", IDInSource: "C1", LinkToSource: "http://k/C1"},
	}, np.CleanXRefs)
	assert.Equal(t, []string{"46220"}, np.TaxonomyIDs)
	assert.Equal(t, cl, np.Classification)
	assert.Equal(t, 4, np.AnnotationLevel)

	orig := np.Clone()
	tr(np)
	assert.Empty(t, record.Diff(orig, np))

	curation.Classify(nil)(np)
	assert.Equal(t, cl, np.Classification)
}

func TestCanonicalTaxa(t *testing.T) {
	pool := parserpool.NewPool(1)
	defer pool.Close()

	np := &record.NaturalProduct{
		TextTaxa:         []string{"plants", "Camellia sinensis (L.) Kuntze"},
		FoundInDatabases: []string{"cmaup"},
	}
	curation.CanonicalTaxa(pool)(np)
	assert.Equal(t, []string{"plants", "Camellia sinensis"}, np.TextTaxa)
}

package parserpool_test

import (
	"sync"
	"testing"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/npdb/pkg/parserpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	pool := parserpool.NewPool(2)
	defer pool.Close()

	tests := []struct {
		msg  string
		name string
		code nomcode.Code
	}{
		{"botanical", "Plantago major L.", nomcode.Botanical},
		{"botanical trinomial", "Rosa acicularis var. acicularis", nomcode.Botanical},
		{"zoological", "Apis mellifera Linnaeus, 1758", nomcode.Zoological},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			res, err := pool.Parse(v.name, v.code)
			require.NoError(t, err)
			assert.True(t, res.Parsed)
			assert.NotEmpty(t, res.Canonical.Simple)
		})
	}

	_, err := pool.Parse("Plantago major", nomcode.Bacterial)
	assert.Error(t, err)
}

func TestCanonical(t *testing.T) {
	pool := parserpool.NewPool(1)
	defer pool.Close()

	tests := []struct {
		msg   string
		name  string
		canon string
		ok    bool
	}{
		{"binomial with author", "Camellia sinensis (L.) Kuntze", "Camellia sinensis", true},
		{"binomial", "Homo sapiens", "Homo sapiens", true},
		{"common word", "plants", "", false},
		{"empty", " ", "", false},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			canon, ok := pool.Canonical(v.name, nomcode.Botanical)
			assert.Equal(t, v.ok, ok)
			assert.Equal(t, v.canon, canon)
		})
	}
}

func TestParseConcurrent(t *testing.T) {
	pool := parserpool.NewPool(4)
	defer pool.Close()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			code := nomcode.Botanical
			if id%2 == 0 {
				code = nomcode.Zoological
			}
			for range 10 {
				res, err := pool.Parse("Homo sapiens", code)
				assert.NoError(t, err)
				assert.True(t, res.Parsed)
			}
		}(i)
	}
	wg.Wait()
}

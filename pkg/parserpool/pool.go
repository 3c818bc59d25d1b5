// Package parserpool keeps gnparser instances for turning organism names
// found in vendor files into canonical scientific names.
// This is a pure package - parsing is computation, not I/O.
package parserpool

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool provides parsers for botanical and zoological nomenclatural codes.
type Pool interface {
	// Parse parses a name string using the given nomenclatural code.
	// It is safe for concurrent use.
	Parse(nameString string, code nomcode.Code) (parsed.Parsed, error)

	// Canonical returns the simple canonical form of a name. The second
	// value is false when the string is not a scientific name, for example
	// a common name like "plants" or "green tea".
	Canonical(nameString string, code nomcode.Code) (string, bool)

	// Close releases parsers. The pool cannot be used afterwards.
	Close()
}

type pool struct {
	botanicalCh  chan gnparser.GNparser
	zoologicalCh chan gnparser.GNparser
}

// NewPool creates parser pools with jobsNum parsers per code.
// If jobsNum is 0, it defaults to runtime.NumCPU().
func NewPool(jobsNum int) Pool {
	if jobsNum <= 0 {
		jobsNum = runtime.NumCPU()
	}

	botanicalCfg := gnparser.NewConfig(gnparser.OptCode(nomcode.Botanical))
	zoologicalCfg := gnparser.NewConfig(gnparser.OptCode(nomcode.Zoological))

	return &pool{
		botanicalCh:  gnparser.NewPool(botanicalCfg, jobsNum),
		zoologicalCh: gnparser.NewPool(zoologicalCfg, jobsNum),
	}
}

func (p *pool) Parse(nameString string, code nomcode.Code) (parsed.Parsed, error) {
	var ch chan gnparser.GNparser
	switch code {
	case nomcode.Botanical:
		ch = p.botanicalCh
	case nomcode.Zoological:
		ch = p.zoologicalCh
	default:
		return parsed.Parsed{}, fmt.Errorf("unsupported nomenclatural code: %v", code)
	}

	parser := <-ch
	res := parser.ParseName(nameString)
	ch <- parser

	return res, nil
}

func (p *pool) Canonical(nameString string, code nomcode.Code) (string, bool) {
	nameString = strings.TrimSpace(nameString)
	if nameString == "" {
		return "", false
	}
	prs, err := p.Parse(nameString, code)
	if err != nil || !prs.Parsed || prs.Canonical == nil {
		return "", false
	}
	// uninomials that are lowercase in input are common words, not taxa
	if prs.Cardinality < 2 && strings.ToLower(nameString) == nameString {
		return "", false
	}
	return prs.Canonical.Simple, true
}

func (p *pool) Close() {
	if p.botanicalCh != nil {
		close(p.botanicalCh)
		for range p.botanicalCh {
		}
	}
	if p.zoologicalCh != nil {
		close(p.zoologicalCh)
		for range p.zoologicalCh {
		}
	}
}

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/gnames/npdb/pkg/record"
)

// Applied is a curation event kept by Memory.
type Applied struct {
	Event
	AccessionID string
	Fields      []string
}

var _ Store = (*Memory)(nil)

// Memory is an in-memory Store.
type Memory struct {
	mu      sync.Mutex
	records map[string]*record.NaturalProduct
	events  []Applied
	writes  int
}

// NewMemory creates a Memory store with copies of the given records.
func NewMemory(nps ...*record.NaturalProduct) *Memory {
	res := Memory{records: make(map[string]*record.NaturalProduct, len(nps))}
	for _, v := range nps {
		res.records[v.AccessionID] = v.Clone()
	}
	return &res
}

func (m *Memory) FetchMany(
	ctx context.Context,
	ids []string,
) (map[string]*record.NaturalProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	res := make(map[string]*record.NaturalProduct, len(ids))
	for _, id := range ids {
		if np, ok := m.records[id]; ok {
			res[id] = np.Clone()
		}
	}
	return res, nil
}

func (m *Memory) Page(
	ctx context.Context,
	after string,
	limit int,
) ([]*record.NaturalProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(m.records))
	for id := range m.records {
		if id > after {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	if len(ids) > limit {
		ids = ids[:limit]
	}

	res := make([]*record.NaturalProduct, len(ids))
	for i, id := range ids {
		res[i] = m.records[id].Clone()
	}
	return res, nil
}

func (m *Memory) Apply(ctx context.Context, ev Event, patches []record.Patch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writes++
	for _, p := range patches {
		id := p.AccessionID()
		if _, ok := m.records[id]; !ok {
			continue
		}
		m.records[id] = p.Record.Clone()
		m.events = append(m.events, Applied{
			Event:       ev,
			AccessionID: id,
			Fields:      slices.Clone(p.Fields),
		})
	}
	return nil
}

// Get returns a copy of a stored record.
func (m *Memory) Get(id string) (*record.NaturalProduct, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	np, ok := m.records[id]
	if !ok {
		return nil, false
	}
	return np.Clone(), true
}

// Events returns curation events in the order they were applied.
func (m *Memory) Events() []Applied {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.events)
}

// Writes returns how many times Apply was called.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

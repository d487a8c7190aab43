package domain

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrTableNotFound reports that no table is registered for a key.
	ErrTableNotFound = errors.New("table not found")
	// ErrCodeNotFound reports that the table exists but has no such code.
	ErrCodeNotFound = errors.New("code not found")

	// ErrDuplicateCode is a construction fault: a code appears twice in one table.
	ErrDuplicateCode = errors.New("duplicate parameter code")
	// ErrDuplicateTable is a construction fault: a key is registered twice.
	ErrDuplicateTable = errors.New("duplicate table")
	// ErrInvalidKey is a construction fault: a negative center, subcenter,
	// version or code.
	ErrInvalidKey = errors.New("invalid table key")
)

// Registry resolves GRIB1 parameter codes against versioned parameter tables.
// A Registry is immutable once built and safe for concurrent use without
// locking.
type Registry struct {
	tables  map[TableKey]*ParameterTable
	ordered []*ParameterTable
	entries int
}

// Lookup finds the entry for code in the table identified by
// (center, subcenter, version). It reports false when the table is unknown
// or the code is absent; it never consults any other table.
func (r *Registry) Lookup(center, subcenter, version, code int) (ParameterEntry, bool) {
	t, ok := r.tables[TableKey{Center: center, Subcenter: subcenter, Version: version}]
	if !ok {
		return ParameterEntry{}, false
	}
	return t.Entry(code)
}

// Resolve is Lookup with the reason for a miss: the returned error wraps
// ErrTableNotFound or ErrCodeNotFound.
func (r *Registry) Resolve(key TableKey, code int) (ParameterEntry, error) {
	t, ok := r.tables[key]
	if !ok {
		return ParameterEntry{}, fmt.Errorf("table %s: %w", key, ErrTableNotFound)
	}
	e, ok := t.Entry(code)
	if !ok {
		return ParameterEntry{}, fmt.Errorf("table %s code %d: %w", key, code, ErrCodeNotFound)
	}
	return e, nil
}

// Table returns the table registered under key.
func (r *Registry) Table(key TableKey) (*ParameterTable, bool) {
	t, ok := r.tables[key]
	return t, ok
}

// Tables returns every table sorted by key.
func (r *Registry) Tables() []*ParameterTable {
	return slices.Clone(r.ordered)
}

// Len returns the number of registered tables.
func (r *Registry) Len() int {
	return len(r.ordered)
}

// EntryCount returns the total number of entries across all tables.
func (r *Registry) EntryCount() int {
	return r.entries
}

// TableSource is a table as authored, before validation.
type TableSource struct {
	Key     TableKey
	Name    string
	Note    string
	Entries []ParameterEntry
}

// Builder collects tables during initialization. The first integrity fault
// is remembered and returned by Build, so a series of RegisterTable calls can
// be checked once at the end.
type Builder struct {
	tables map[TableKey]*ParameterTable
	err    error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{tables: make(map[TableKey]*ParameterTable)}
}

// RegisterTable adds a table of entries under (center, subcenter, version).
func (b *Builder) RegisterTable(center, subcenter, version int, entries []ParameterEntry) error {
	return b.Register(TableSource{
		Key:     TableKey{Center: center, Subcenter: subcenter, Version: version},
		Entries: entries,
	})
}

// Register adds a table along with its header metadata.
func (b *Builder) Register(src TableSource) error {
	if b.err != nil {
		return b.err
	}
	t, err := newTable(src)
	if err == nil {
		if _, exists := b.tables[src.Key]; exists {
			err = fmt.Errorf("table %s: %w", src.Key, ErrDuplicateTable)
		}
	}
	if err != nil {
		b.err = err
		return err
	}
	b.tables[src.Key] = t
	return nil
}

// Build seals the collected tables into a Registry. It fails if any
// registration failed; no partial registry is ever returned.
func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}

	r := &Registry{
		tables:  make(map[TableKey]*ParameterTable, len(b.tables)),
		ordered: make([]*ParameterTable, 0, len(b.tables)),
	}
	for k, t := range b.tables {
		r.tables[k] = t
		r.ordered = append(r.ordered, t)
		r.entries += t.Len()
	}
	slices.SortFunc(r.ordered, func(a, b *ParameterTable) int {
		switch {
		case a.key.less(b.key):
			return -1
		case b.key.less(a.key):
			return 1
		default:
			return 0
		}
	})
	return r, nil
}

func newTable(src TableSource) (*ParameterTable, error) {
	k := src.Key
	if k.Center < 0 || k.Subcenter < 0 || k.Version < 0 {
		return nil, fmt.Errorf("table %s: %w", k, ErrInvalidKey)
	}

	t := &ParameterTable{
		key:     k,
		name:    src.Name,
		note:    src.Note,
		entries: make([]ParameterEntry, len(src.Entries)),
		byCode:  make(map[int]int, len(src.Entries)),
	}
	copy(t.entries, src.Entries)

	for i, e := range t.entries {
		if e.Code < 0 {
			return nil, fmt.Errorf("table %s code %d: %w", k, e.Code, ErrInvalidKey)
		}
		if prev, dup := t.byCode[e.Code]; dup {
			return nil, fmt.Errorf("table %s code %d (rows %d and %d): %w", k, e.Code, prev, i, ErrDuplicateCode)
		}
		t.byCode[e.Code] = i
	}
	return t, nil
}

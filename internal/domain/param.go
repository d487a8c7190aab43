package domain

import "fmt"

// ParameterEntry is one row of a GRIB1 parameter table (code table 2).
// Description, Unit and Abbreviation are carried exactly as authored; any of
// them may be empty.
type ParameterEntry struct {
	Code         int    `json:"code" yaml:"code"`
	Description  string `json:"description" yaml:"description"`
	Unit         string `json:"unit" yaml:"unit"`
	Abbreviation string `json:"abbreviation" yaml:"abbreviation"`
}

// TableKey identifies a parameter table by originating center (PDS octet 5),
// subcenter (octet 26) and table version (octet 4).
type TableKey struct {
	Center    int `json:"center"`
	Subcenter int `json:"subcenter"`
	Version   int `json:"version"`
}

// String renders the key as "center.subcenter.version", the form used in
// message headers and log fields.
func (k TableKey) String() string {
	return fmt.Sprintf("%d.%d.%d", k.Center, k.Subcenter, k.Version)
}

func (k TableKey) less(o TableKey) bool {
	if k.Center != o.Center {
		return k.Center < o.Center
	}
	if k.Subcenter != o.Subcenter {
		return k.Subcenter < o.Subcenter
	}
	return k.Version < o.Version
}

// ParameterTable is an ordered set of entries for one TableKey.
// Tables are only created by a Builder and never change afterwards.
type ParameterTable struct {
	key  TableKey
	name string
	note string

	entries []ParameterEntry
	byCode  map[int]int
}

// Key returns the table's center, subcenter and version.
func (t *ParameterTable) Key() TableKey {
	return t.key
}

// Name is the free-text originating center name from the table header.
func (t *ParameterTable) Name() string {
	return t.name
}

// Note is the optional usage note from the table header.
func (t *ParameterTable) Note() string {
	return t.note
}

// Entries returns a copy of the table rows in authored order.
func (t *ParameterTable) Entries() []ParameterEntry {
	out := make([]ParameterEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries in the table.
func (t *ParameterTable) Len() int {
	return len(t.entries)
}

// Entry returns the row for code, if the table has one.
func (t *ParameterTable) Entry(code int) (ParameterEntry, bool) {
	i, ok := t.byCode[code]
	if !ok {
		return ParameterEntry{}, false
	}
	return t.entries[i], true
}

package domain

import "sync"

// embeddedTables lists every table compiled into the binary, grouped by
// originating center. Rows are transcribed verbatim from the published
// tables, including their inconsistent unit spellings.
var embeddedTables = []TableSource{
	ncepTable2,
	ecmwfTable128,
	ecmwfTable170,
	ecmwfTable172,
	dwdTable201,
	dwdTable205,
}

// EmbeddedTables returns the compiled-in table sources. The slice and its
// entries are copies, so callers cannot alter the tables Default builds.
func EmbeddedTables() []TableSource {
	out := make([]TableSource, len(embeddedTables))
	for i, src := range embeddedTables {
		src.Entries = append([]ParameterEntry(nil), src.Entries...)
		out[i] = src
	}
	return out
}

// RegisterEmbedded registers every compiled-in table on b.
func RegisterEmbedded(b *Builder) error {
	for _, src := range EmbeddedTables() {
		if err := b.Register(src); err != nil {
			return err
		}
	}
	return nil
}

var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	b := NewBuilder()
	if err := RegisterEmbedded(b); err != nil {
		return nil, err
	}
	return b.Build()
})

// Default returns the registry of compiled-in tables. It is built on first
// use and shared for the life of the process; a build error is returned to
// every caller.
func Default() (*Registry, error) {
	return defaultRegistry()
}

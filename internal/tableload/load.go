// Package tableload reads GRIB1 parameter tables from files so they can be
// registered alongside the compiled-in tables before the registry is built.
//
// Supported formats are chosen by file name:
//
//	*.h                NCL C header (self-describing key)
//	*.tab              wgrib (key from the first line, if specific)
//	2.<c>.<v>.table    ecCodes export (center c, subcenter 0, version v)
//	<c>_<s>_<v>.dss    NCAR DSS tab-separated
//	*.xml              NCAR DSS XML (key from a WMO_GRIB1.<c>-<s>.<v>.xml name)
//	*.wrf              WRF AMPS, '|'-separated
//	table_2_*          ECMWF legacy text, also local_table_2_*
//	US058*             FNMOC XML
//	*.yaml, *.yml      YAML with center/subcenter/version/parameters
//
// A directory may also carry a lookup list, lookupTables.txt, with lines of
// "center:subcenter:version:filename". A list entry overrides whatever key
// the file itself declares, and is the only source of a key for the formats
// that do not carry one.
package tableload

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/couchcryptid/grib-param-service/internal/domain"
	"golang.org/x/sync/errgroup"
)

// LookupListName is the file LoadDir reads table keys from.
const LookupListName = "lookupTables.txt"

var (
	// ErrUnknownFormat reports a file name that matches no table format.
	ErrUnknownFormat = errors.New("unknown table format")
	// ErrMissingKey reports a table whose center/subcenter/version could not
	// be determined from the file or a lookup list.
	ErrMissingKey = errors.New("table key not found")
	// ErrMalformedHeader reports an unreadable table header.
	ErrMalformedHeader = errors.New("malformed table header")
	// ErrMalformedRow reports an unreadable table row.
	ErrMalformedRow = errors.New("malformed table row")
)

var (
	ecCodesNameRe = regexp.MustCompile(`^2\.(\d+)\.(\d+)\.table$`)
	dssNameRe     = regexp.MustCompile(`^(\d+)_(\d+)_(\d+)\.dss$`)
	dssXMLNameRe  = regexp.MustCompile(`^WMO_GRIB1\.(\d+)-(\d+)\.(\d+)\.xml$`)
)

// Table is a parsed table file.
type Table struct {
	domain.TableSource
	Path string
}

type parseFunc func(r io.Reader) (parsed, error)

// formatFor returns the parser for a file name, plus the key implied by the
// name itself for formats that encode it there.
func formatFor(name string) (parseFunc, *domain.TableKey, bool) {
	switch {
	case strings.HasPrefix(name, "table_2_"), strings.HasPrefix(name, "local_table_2_"):
		return parseEcmwfLegacy, nil, true
	case strings.HasPrefix(name, "US058"):
		return parseFNMOC, nil, true
	case strings.HasSuffix(name, ".h"):
		return parseNCL, nil, true
	case strings.HasSuffix(name, ".tab"):
		return parseTab, nil, true
	case strings.HasSuffix(name, ".wrf"):
		return parseSplit("|", wrfColumns), nil, true
	case strings.HasSuffix(name, ".yaml"), strings.HasSuffix(name, ".yml"):
		return parseYAML, nil, true
	case strings.HasSuffix(name, ".table"):
		return parseEcCodes, keyFromName(ecCodesNameRe, name), true
	case strings.HasSuffix(name, ".dss"):
		return parseSplit("\t", dssColumns), keyFromName(dssNameRe, name), true
	case strings.HasSuffix(name, ".xml"):
		return parseDSSXML, keyFromName(dssXMLNameRe, name), true
	default:
		return nil, nil, false
	}
}

// keyFromName extracts a key from a file name. Two captures are
// (center, version) with subcenter 0; three are (center, subcenter, version).
func keyFromName(re *regexp.Regexp, name string) *domain.TableKey {
	m := re.FindStringSubmatch(name)
	switch len(m) {
	case 3:
		return &domain.TableKey{Center: atoi(m[1]), Version: atoi(m[2])}
	case 4:
		return &domain.TableKey{Center: atoi(m[1]), Subcenter: atoi(m[2]), Version: atoi(m[3])}
	default:
		return nil
	}
}

// atoi is only used on strings already matched as \d+.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// ParseFile reads one table file. The key comes from the file contents, or
// from its name for ecCodes and DSS files.
func ParseFile(path string) (Table, error) {
	return parseFile(path, nil)
}

// ParseFileAs reads one table file and registers it under key regardless of
// what the file declares.
func ParseFileAs(path string, key domain.TableKey) (Table, error) {
	return parseFile(path, &key)
}

func parseFile(path string, override *domain.TableKey) (Table, error) {
	parse, nameKey, ok := formatFor(filepath.Base(path))
	if !ok {
		return Table{}, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	p, err := parse(f)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}

	switch {
	case override != nil:
		p.src.Key = *override
	case p.hasKey:
	case nameKey != nil:
		p.src.Key = *nameKey
	default:
		return Table{}, fmt.Errorf("%s: %w", path, ErrMissingKey)
	}

	return Table{TableSource: p.src, Path: path}, nil
}

// ReadLookupList parses a lookup list: "center:subcenter:version:filename"
// per line, blank lines and '#' comments ignored. Keys are returned by
// file name.
func ReadLookupList(path string) (map[string]domain.TableKey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lookup list: %w", err)
	}
	defer f.Close()

	keys := make(map[string]domain.TableKey)
	sc := bufio.NewScanner(f)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, ":", 4)
		if len(fields) != 4 {
			return nil, fmt.Errorf("%s line %d: %w: %q", path, lineNum, ErrMalformedRow, line)
		}
		var key [3]int
		for i := range key {
			n, err := strconv.Atoi(strings.TrimSpace(fields[i]))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%s line %d: %w: %q", path, lineNum, ErrMalformedRow, line)
			}
			key[i] = n
		}
		keys[strings.TrimSpace(fields[3])] = domain.TableKey{Center: key[0], Subcenter: key[1], Version: key[2]}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lookup list: %w", err)
	}
	return keys, nil
}

// LoadDir parses every table file in dir with at most limit files in flight.
// Files in no known format are skipped unless the lookup list names them. The first failure cancels the
// remaining work and is returned. Tables come back sorted by key.
func LoadDir(ctx context.Context, dir string, limit int) ([]Table, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read table dir: %w", err)
	}

	var listed map[string]domain.TableKey
	if _, err := os.Stat(filepath.Join(dir, LookupListName)); err == nil {
		listed, err = ReadLookupList(filepath.Join(dir, LookupListName))
		if err != nil {
			return nil, err
		}
	}

	present := make(map[string]bool, len(dirEntries))
	var names []string
	for _, e := range dirEntries {
		if e.IsDir() || e.Name() == LookupListName {
			continue
		}
		present[e.Name()] = true
		if _, _, ok := formatFor(e.Name()); ok {
			names = append(names, e.Name())
		}
	}
	for name := range listed {
		if !present[name] {
			return nil, fmt.Errorf("%s lists %s: %w", LookupListName, name, os.ErrNotExist)
		}
		if _, _, ok := formatFor(name); !ok {
			return nil, fmt.Errorf("%s lists %s: %w", LookupListName, name, ErrUnknownFormat)
		}
	}

	if limit <= 0 {
		limit = 1
	}
	tables := make([]Table, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, name)
			var t Table
			var err error
			if key, ok := listed[name]; ok {
				t, err = ParseFileAs(path, key)
			} else {
				t, err = ParseFile(path)
			}
			if err != nil {
				return err
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(tables, func(a, b Table) int {
		ka, kb := a.Key, b.Key
		if ka.Center != kb.Center {
			return ka.Center - kb.Center
		}
		if ka.Subcenter != kb.Subcenter {
			return ka.Subcenter - kb.Subcenter
		}
		return ka.Version - kb.Version
	})
	return tables, nil
}

// RegisterAll registers loaded tables on b, naming the offending file on
// failure.
func RegisterAll(b *domain.Builder, tables []Table) error {
	for _, t := range tables {
		if err := b.Register(t.TableSource); err != nil {
			return fmt.Errorf("%s: %w", t.Path, err)
		}
	}
	return nil
}

// BuildRegistry builds a registry of the compiled-in tables plus every table
// in dir. An empty dir yields the shared default registry. The loaded tables
// are returned for reporting.
func BuildRegistry(ctx context.Context, dir string, limit int) (*domain.Registry, []Table, error) {
	if dir == "" {
		reg, err := domain.Default()
		return reg, nil, err
	}

	tables, err := LoadDir(ctx, dir, limit)
	if err != nil {
		return nil, nil, err
	}
	b := domain.NewBuilder()
	if err := domain.RegisterEmbedded(b); err != nil {
		return nil, nil, err
	}
	if err := RegisterAll(b, tables); err != nil {
		return nil, nil, err
	}
	reg, err := b.Build()
	if err != nil {
		return nil, nil, err
	}
	return reg, tables, nil
}

package tableload

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/couchcryptid/grib-param-service/internal/domain"
	"gopkg.in/yaml.v3"
)

// parsed is the result of reading one table file. hasKey is false when the
// file itself does not say which table it is.
type parsed struct {
	src    domain.TableSource
	hasKey bool
}

// nclRowRe matches one NCL table row: {code, "description", "unit", "ABBR"},
var nclRowRe = regexp.MustCompile(`^\s*\{\s*(\d+)\s*,\s*"([^"]*)"\s*,\s*"([^"]*)"\s*,\s*"([^"]*)"`)

// parseNCL reads the C-header format used by NCL and by the compiled-in
// tables: a comment header naming the center followed by TBLE2 rows.
//
//	/*
//	 * European Centre for Medium-Range Weather Forecasts - Reading
//	 * Center: 98
//	 * Subcenter: 0
//	 * Parameter table version: 170
//	 */
//	TBLE2 ecmwf_170_params[] = {
//	{130, "Temperature", "K", "T"},
func parseNCL(r io.Reader) (parsed, error) {
	var (
		p                   parsed
		haveC, haveS, haveV bool
		notes               []string
	)
	sc := bufio.NewScanner(r)

	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "TBLE2") {
			break
		}
		text := stripComment(line)
		switch {
		case text == "":
		case strings.Contains(text, "Subcenter:"):
			v, err := headerInt(text, "Subcenter:")
			if err != nil {
				return parsed{}, err
			}
			p.src.Key.Subcenter, haveS = v, true
		case strings.Contains(text, "Center:"):
			v, err := headerInt(text, "Center:")
			if err != nil {
				return parsed{}, err
			}
			p.src.Key.Center, haveC = v, true
		case strings.Contains(text, "version:"):
			v, err := headerInt(text, "version:")
			if err != nil {
				return parsed{}, err
			}
			p.src.Key.Version, haveV = v, true
		case p.src.Name == "":
			p.src.Name = text
		default:
			notes = append(notes, text)
		}
	}

	for sc.Scan() {
		m := nclRowRe.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		code, err := strconv.Atoi(m[1])
		if err != nil {
			return parsed{}, fmt.Errorf("%w: code %q", ErrMalformedRow, m[1])
		}
		p.src.Entries = append(p.src.Entries, domain.ParameterEntry{
			Code:         code,
			Description:  m[2],
			Unit:         m[3],
			Abbreviation: m[4],
		})
	}
	if err := sc.Err(); err != nil {
		return parsed{}, err
	}

	p.src.Note = strings.Join(notes, " ")
	p.hasKey = haveC && haveS && haveV
	return p, nil
}

func stripComment(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "/*")
	s = strings.TrimSuffix(s, "*/")
	s = strings.TrimPrefix(s, "//")
	s = strings.TrimPrefix(s, "*")
	return strings.TrimSpace(s)
}

func headerInt(text, key string) (int, error) {
	i := strings.Index(text, key)
	v, err := strconv.Atoi(strings.TrimSpace(text[i+len(key):]))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedHeader, text)
	}
	return v, nil
}

// parseTab reads the wgrib format. The first line is "-1:center:subcenter:version";
// a negative subcenter there means "any", which the registry cannot express,
// so such files need a lookup list entry.
//
//	-1:7:-1:2
//	1:PRES:Pressure [Pa]
//	8:DIST:Geometric height [m]
func parseTab(r io.Reader) (parsed, error) {
	var p parsed
	sc := bufio.NewScanner(r)

	if sc.Scan() {
		f := strings.Split(strings.TrimSpace(sc.Text()), ":")
		if len(f) == 4 {
			c, errC := strconv.Atoi(f[1])
			s, errS := strconv.Atoi(f[2])
			v, errV := strconv.Atoi(f[3])
			if errC == nil && errS == nil && errV == nil && c >= 0 && s >= 0 && v >= 0 {
				p.src.Key = domain.TableKey{Center: c, Subcenter: s, Version: v}
				p.hasKey = true
			}
		}
	}

	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.SplitN(line, ":", 3)
		if len(f) != 3 {
			return parsed{}, fmt.Errorf("%w: %q", ErrMalformedRow, line)
		}
		code, err := strconv.Atoi(strings.TrimSpace(f[0]))
		if err != nil {
			return parsed{}, fmt.Errorf("%w: %q", ErrMalformedRow, line)
		}

		desc, unit := f[2], ""
		if open := strings.IndexByte(f[2], '['); open >= 0 {
			desc = f[2][:open]
			if closing := strings.LastIndexByte(f[2], ']'); closing > open {
				unit = strings.TrimSpace(f[2][open+1 : closing])
			}
		}
		desc = strings.TrimSpace(desc)
		if strings.EqualFold(desc, "undefined") {
			continue
		}

		p.src.Entries = append(p.src.Entries, domain.ParameterEntry{
			Code:         code,
			Description:  desc,
			Unit:         unit,
			Abbreviation: strings.TrimSpace(f[1]),
		})
	}
	return p, sc.Err()
}

// parseEcCodes reads the ecCodes export format. Rows follow the first line
// starting with "#":
//
//	251 atte [Adiabatic tendency of temperature] (K)
func parseEcCodes(r io.Reader) (parsed, error) {
	var p parsed
	sc := bufio.NewScanner(r)

	inBody := false
	for sc.Scan() {
		line := sc.Text()
		if !inBody {
			if strings.HasPrefix(line, "#") {
				inBody = true
			}
			continue
		}
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		openD, closeD := strings.IndexByte(line, '['), strings.IndexByte(line, ']')
		if len(fields) < 2 || openD < 0 || closeD < openD {
			return parsed{}, fmt.Errorf("%w: %q", ErrMalformedRow, line)
		}
		code, err := strconv.Atoi(fields[0])
		if err != nil {
			return parsed{}, fmt.Errorf("%w: %q", ErrMalformedRow, line)
		}

		unit := ""
		rest := line[closeD+1:]
		if openU, closeU := strings.IndexByte(rest, '('), strings.LastIndexByte(rest, ')'); openU >= 0 && closeU > openU {
			unit = strings.TrimSpace(rest[openU+1 : closeU])
		}

		p.src.Entries = append(p.src.Entries, domain.ParameterEntry{
			Code:         code,
			Description:  strings.TrimSpace(line[openD+1 : closeD]),
			Unit:         unit,
			Abbreviation: fields[1],
		})
	}
	return p, sc.Err()
}

// splitColumns gives the position of each field in a delimited row. A
// negative abbr means the format has no abbreviation column.
type splitColumns struct {
	code, abbr, desc, unit int
}

var (
	// NCAR DSS: code, description, unit.
	dssColumns = splitColumns{code: 0, abbr: -1, desc: 1, unit: 2}
	// WRF AMPS: code|description|unit|abbreviation.
	wrfColumns = splitColumns{code: 0, abbr: 3, desc: 1, unit: 2}
)

// parseSplit returns a reader for one-row-per-line formats split on sep.
// Columns past the description are optional.
func parseSplit(sep string, cols splitColumns) parseFunc {
	minFields := max(cols.code, cols.desc) + 1
	return func(r io.Reader) (parsed, error) {
		var p parsed
		sc := bufio.NewScanner(r)

		for sc.Scan() {
			line := sc.Text()
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			f := strings.Split(line, sep)
			if len(f) < minFields {
				return parsed{}, fmt.Errorf("%w: %q", ErrMalformedRow, line)
			}
			code, err := strconv.Atoi(strings.TrimSpace(f[cols.code]))
			if err != nil {
				return parsed{}, fmt.Errorf("%w: %q", ErrMalformedRow, line)
			}
			e := domain.ParameterEntry{Code: code, Description: strings.TrimSpace(f[cols.desc])}
			if len(f) > cols.unit {
				e.Unit = strings.TrimSpace(f[cols.unit])
			}
			if cols.abbr >= 0 && len(f) > cols.abbr {
				e.Abbreviation = strings.TrimSpace(f[cols.abbr])
			}
			p.src.Entries = append(p.src.Entries, e)
		}
		return p, sc.Err()
	}
}

// parseEcmwfLegacy reads the old ECMWF "table_2" text format. An optional
// title line precedes the first "..." separator; after it each record is
// code, short name, description, unit and an optional note on separate
// lines, records separated by "...".
//
//	...
//	005
//	None
//	ICAO Standard Atmosphere reference height
//	m
//	...
func parseEcmwfLegacy(r io.Reader) (parsed, error) {
	var (
		p       parsed
		started bool
		record  []string
	)

	flush := func() error {
		if len(record) == 0 {
			return nil
		}
		rec := record
		record = record[:0]
		if len(rec) < 4 || len(rec) > 5 {
			return fmt.Errorf("%w: record %q", ErrMalformedRow, strings.Join(rec, " | "))
		}
		code, err := strconv.Atoi(rec[0])
		if err != nil {
			return fmt.Errorf("%w: code %q", ErrMalformedRow, rec[0])
		}
		if strings.EqualFold(rec[2], "undefined") {
			return nil
		}
		p.src.Entries = append(p.src.Entries, domain.ParameterEntry{
			Code:         code,
			Description:  rec[2],
			Unit:         rec[3],
			Abbreviation: rec[1],
		})
		return nil
	}

	sc := bufio.NewScanner(r)
	first := true
	for sc.Scan() {
		line := sc.Text()
		isSep := strings.HasPrefix(line, "...")
		if !started {
			if isSep {
				started = true
			} else if first {
				p.src.Name = strings.TrimSpace(line)
			}
			first = false
			continue
		}
		if isSep {
			if err := flush(); err != nil {
				return parsed{}, err
			}
			continue
		}
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		record = append(record, strings.TrimSpace(line))
	}
	if err := sc.Err(); err != nil {
		return parsed{}, err
	}
	if err := flush(); err != nil {
		return parsed{}, err
	}
	return p, nil
}

// dssXMLTable is the NCAR DSS XML parameter table. The root element name
// varies between files and is not checked.
//
//	<parameter code="5">
//	  <description>ICAO Standard Atmosphere reference height</description>
//	  <units>m</units>
//	</parameter>
type dssXMLTable struct {
	Parameters []struct {
		Code        string  `xml:"code,attr"`
		Description *string `xml:"description"`
		Units       string  `xml:"units"`
		Name        string  `xml:"name"`
		ShortName   string  `xml:"shortName"`
	} `xml:"parameter"`
}

// parseDSSXML reads NCAR DSS XML. Parameters without a description are
// placeholders and are skipped.
func parseDSSXML(r io.Reader) (parsed, error) {
	var t dssXMLTable
	if err := xml.NewDecoder(r).Decode(&t); err != nil {
		return parsed{}, fmt.Errorf("decode xml table: %w", err)
	}

	var p parsed
	for _, prm := range t.Parameters {
		if prm.Description == nil {
			continue
		}
		code, err := strconv.Atoi(strings.TrimSpace(prm.Code))
		if err != nil {
			return parsed{}, fmt.Errorf("%w: code %q", ErrMalformedRow, prm.Code)
		}
		abbr := prm.Name
		if abbr == "" {
			abbr = prm.ShortName
		}
		p.src.Entries = append(p.src.Entries, domain.ParameterEntry{
			Code:         code,
			Description:  *prm.Description,
			Unit:         prm.Units,
			Abbreviation: abbr,
		})
	}
	return p, nil
}

// fnmocTable is the FNMOC master parameter table (files named US058*).
type fnmocTable struct {
	Name    string `xml:"name"`
	Entries []struct {
		Grib1ID     string  `xml:"grib1Id"`
		Name        string  `xml:"name"`
		Description *string `xml:"description"`
		Units       string  `xml:"unitsFNMOC"`
	} `xml:"fnmocTable>entry"`
}

// parseFNMOC reads an FNMOC parameter table. Entries without a numeric
// GRIB1 id exist only in FNMOC's own numbering and are skipped, as are
// entries without a description. Descriptions wrap across lines in the
// source files, so their whitespace is collapsed.
func parseFNMOC(r io.Reader) (parsed, error) {
	var t fnmocTable
	if err := xml.NewDecoder(r).Decode(&t); err != nil {
		return parsed{}, fmt.Errorf("decode xml table: %w", err)
	}

	p := parsed{src: domain.TableSource{Name: strings.TrimSpace(t.Name)}}
	for _, e := range t.Entries {
		code, err := strconv.Atoi(strings.TrimSpace(e.Grib1ID))
		if err != nil || e.Description == nil {
			continue
		}
		p.src.Entries = append(p.src.Entries, domain.ParameterEntry{
			Code:         code,
			Description:  strings.Join(strings.Fields(*e.Description), " "),
			Unit:         e.Units,
			Abbreviation: e.Name,
		})
	}
	return p, nil
}

// yamlTable is the on-disk shape of a YAML table file.
type yamlTable struct {
	Center     *int                    `yaml:"center"`
	Subcenter  *int                    `yaml:"subcenter"`
	Version    *int                    `yaml:"version"`
	Name       string                  `yaml:"name"`
	Note       string                  `yaml:"note"`
	Parameters []domain.ParameterEntry `yaml:"parameters"`
}

func parseYAML(r io.Reader) (parsed, error) {
	var t yamlTable
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return parsed{}, fmt.Errorf("%w: empty document", ErrMalformedHeader)
		}
		return parsed{}, fmt.Errorf("decode yaml table: %w", err)
	}

	p := parsed{src: domain.TableSource{Name: t.Name, Note: t.Note, Entries: t.Parameters}}
	if t.Center != nil && t.Subcenter != nil && t.Version != nil {
		p.src.Key = domain.TableKey{Center: *t.Center, Subcenter: *t.Subcenter, Version: *t.Version}
		p.hasKey = true
	}
	return p, nil
}

package tableload

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/grib-param-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParseFile_Formats(t *testing.T) {
	cases := []struct {
		file      string
		key       domain.TableKey
		name      string
		wantCodes []int
	}{
		{file: "local_254.h", key: domain.TableKey{Center: 254, Version: 1},
			name: "Example local centre - Test site", wantCodes: []int{1, 11, 200}},
		{file: "local_254_2.tab", key: domain.TableKey{Center: 254, Version: 2},
			wantCodes: []int{1, 2, 61}},
		{file: "2.254.3.table", key: domain.TableKey{Center: 254, Version: 3},
			wantCodes: []int{130, 167, 251}},
		{file: "254_0_4.dss", key: domain.TableKey{Center: 254, Version: 4},
			wantCodes: []int{1, 33, 190}},
		{file: "local.yaml", key: domain.TableKey{Center: 254, Subcenter: 1, Version: 5},
			name: "Example local centre - Subcentre one", wantCodes: []int{4, 5}},
		{file: "WMO_GRIB1.254-0.7.xml", key: domain.TableKey{Center: 254, Version: 7},
			wantCodes: []int{5, 6, 11}},
	}

	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			tbl, err := ParseFile(filepath.Join("testdata", "tables", tc.file))
			require.NoError(t, err)
			assert.Equal(t, tc.key, tbl.Key)
			if tc.name != "" {
				assert.Equal(t, tc.name, tbl.Name)
			}
			codes := make([]int, 0, len(tbl.Entries))
			for _, e := range tbl.Entries {
				codes = append(codes, e.Code)
			}
			assert.Equal(t, tc.wantCodes, codes)
		})
	}
}

func TestParseFile_KeyFromLookupList(t *testing.T) {
	dir := filepath.Join("testdata", "tables")
	keys, err := ReadLookupList(filepath.Join(dir, LookupListName))
	require.NoError(t, err)

	cases := []struct {
		file      string
		name      string
		wantCodes []int
	}{
		{file: "amps.wrf", wantCodes: []int{1, 11, 180}},
		{file: "US058MMTA-params.xml", name: "Master Parameter Table", wantCodes: []int{1, 11}},
		{file: "local_table_2_version_210", name: "ECMWF local table 2 version 210", wantCodes: []int{5, 121}},
	}

	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			_, err := ParseFile(path)
			require.ErrorIs(t, err, ErrMissingKey, "the file carries no key of its own")

			key, ok := keys[tc.file]
			require.True(t, ok)
			tbl, err := ParseFileAs(path, key)
			require.NoError(t, err)
			assert.Equal(t, key, tbl.Key)
			assert.Equal(t, tc.name, tbl.Name)
			codes := make([]int, 0, len(tbl.Entries))
			for _, e := range tbl.Entries {
				codes = append(codes, e.Code)
			}
			assert.Equal(t, tc.wantCodes, codes)
		})
	}
}

func TestParseFile_ColumnMapping(t *testing.T) {
	key := domain.TableKey{Center: 254, Version: 99}
	dir := filepath.Join("testdata", "tables")

	tbl, err := ParseFileAs(filepath.Join(dir, "amps.wrf"), key)
	require.NoError(t, err)
	assert.Equal(t, domain.ParameterEntry{Code: 11, Description: "Temperature", Unit: "K", Abbreviation: "TMP"}, tbl.Entries[1])
	assert.Equal(t, domain.ParameterEntry{Code: 180, Description: "Precipitable water content"}, tbl.Entries[2])

	tbl, err = ParseFile(filepath.Join(dir, "WMO_GRIB1.254-0.7.xml"))
	require.NoError(t, err)
	assert.Equal(t, domain.ParameterEntry{Code: 5, Description: "ICAO Standard Atmosphere reference height", Unit: "m"}, tbl.Entries[0])
	assert.Equal(t, "GP", tbl.Entries[1].Abbreviation, "shortName stands in for a missing name")
	assert.Equal(t, "TMP", tbl.Entries[2].Abbreviation)

	tbl, err = ParseFileAs(filepath.Join(dir, "US058MMTA-params.xml"), key)
	require.NoError(t, err)
	assert.Equal(t, domain.ParameterEntry{
		Code:         1,
		Description:  "Commonly used for atmospheric pressure, the pressure exerted by the atmosphere as a consequence of gravitational attraction.",
		Unit:         "pa",
		Abbreviation: "pres",
	}, tbl.Entries[0])

	tbl, err = ParseFileAs(filepath.Join(dir, "local_table_2_version_210"), key)
	require.NoError(t, err)
	assert.Equal(t, domain.ParameterEntry{
		Code: 5, Description: "ICAO Standard Atmosphere reference height", Unit: "m", Abbreviation: "None",
	}, tbl.Entries[0])
	assert.Equal(t, domain.ParameterEntry{
		Code: 121, Description: "Sea Salt Aerosol (0.03 - 0.5 um) Mixing Ratio", Unit: "kg kg**-1", Abbreviation: "AERMR01",
	}, tbl.Entries[1])
}

func TestParseFile_IndentedNCLTableMarker(t *testing.T) {
	body := "/*\n * Test centre\n * Center: 254\n * Subcenter: 0\n * Parameter table version: 8\n */\n" +
		"  TBLE2 test_254_params[] = {\n{1, \"Pressure\", \"Pa\", \"PRES\"},\n{2, \"Height\", \"m\", \"HGT\"},\n};\n"
	path := filepath.Join(t.TempDir(), "indented.h")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	tbl, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.TableKey{Center: 254, Version: 8}, tbl.Key)
	assert.Len(t, tbl.Entries, 2)
	assert.Empty(t, tbl.Note)
}

func TestParseFile_NCLHeaderNote(t *testing.T) {
	tbl, err := ParseFile(filepath.Join("testdata", "tables", "local_254.h"))
	require.NoError(t, err)

	assert.Equal(t, "Codes 200 and up are experimental.", tbl.Note)
	assert.Equal(t, domain.ParameterEntry{Code: 200, Description: "Experimental index", Unit: "non-dim"}, tbl.Entries[2])
}

func TestParseFile_TextKeptVerbatim(t *testing.T) {
	tbl, err := ParseFile(filepath.Join("testdata", "tables", "2.254.3.table"))
	require.NoError(t, err)
	assert.Equal(t, domain.ParameterEntry{
		Code: 251, Description: "Adiabatic tendency of temperature", Unit: "K", Abbreviation: "~",
	}, tbl.Entries[2])

	tbl, err = ParseFile(filepath.Join("testdata", "tables", "local.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Snow factor  (weighting)", tbl.Entries[1].Description)
	assert.Empty(t, tbl.Entries[1].Unit)

	tbl, err = ParseFile(filepath.Join("testdata", "tables", "254_0_4.dss"))
	require.NoError(t, err)
	assert.Equal(t, "m/s", tbl.Entries[1].Unit)
	assert.Empty(t, tbl.Entries[2].Unit)
	assert.Empty(t, tbl.Entries[2].Abbreviation)
}

func TestParseFile_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
		return p
	}

	t.Run("unknown format", func(t *testing.T) {
		_, err := ParseFile(write("params.csv", "1,Pressure,Pa\n"))
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("wildcard subcenter needs a key", func(t *testing.T) {
		_, err := ParseFile(write("any.tab", "-1:7:-1:2\n1:PRES:Pressure [Pa]\n"))
		assert.ErrorIs(t, err, ErrMissingKey)
	})

	t.Run("yaml without key", func(t *testing.T) {
		_, err := ParseFile(write("nokey.yaml", "name: x\nparameters: []\n"))
		assert.ErrorIs(t, err, ErrMissingKey)
	})

	t.Run("yaml unknown field", func(t *testing.T) {
		_, err := ParseFile(write("typo.yaml", "center: 1\nsubcentre: 0\nversion: 1\n"))
		assert.Error(t, err)
	})

	t.Run("empty yaml", func(t *testing.T) {
		_, err := ParseFile(write("empty.yml", ""))
		assert.ErrorIs(t, err, ErrMalformedHeader)
	})

	t.Run("malformed NCL header", func(t *testing.T) {
		_, err := ParseFile(write("bad.h", "/* Center: ninety-eight */\nTBLE2 x[] = {\n"))
		assert.ErrorIs(t, err, ErrMalformedHeader)
	})

	t.Run("malformed wgrib row", func(t *testing.T) {
		_, err := ParseFile(filepath.Join("testdata", "broken", "bad.tab"))
		require.ErrorIs(t, err, ErrMalformedRow)
		assert.Contains(t, err.Error(), "bad.tab")
	})

	t.Run("ecCodes row without brackets", func(t *testing.T) {
		_, err := ParseFile(write("2.254.7.table", "#\n1 pres Pressure Pa\n"))
		assert.ErrorIs(t, err, ErrMalformedRow)
	})

	t.Run("ECMWF legacy record too short", func(t *testing.T) {
		_, err := ParseFile(write("table_2_001", "...\n1\nPRES\nPressure\n...\n"))
		assert.ErrorIs(t, err, ErrMalformedRow)
	})

	t.Run("DSS XML bad code", func(t *testing.T) {
		_, err := ParseFile(write("WMO_GRIB1.254-0.9.xml",
			`<t><parameter code="x"><description>d</description></parameter></t>`))
		assert.ErrorIs(t, err, ErrMalformedRow)
	})

	t.Run("truncated XML", func(t *testing.T) {
		_, err := ParseFile(write("WMO_GRIB1.254-0.10.xml", `<t><parameter code="1">`))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ParseFile(filepath.Join(dir, "absent.h"))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestParseFileAs_OverridesDeclaredKey(t *testing.T) {
	key := domain.TableKey{Center: 254, Subcenter: 9, Version: 9}
	tbl, err := ParseFileAs(filepath.Join("testdata", "tables", "local_254.h"), key)
	require.NoError(t, err)
	assert.Equal(t, key, tbl.Key)
}

func TestReadLookupList(t *testing.T) {
	keys, err := ReadLookupList(filepath.Join("testdata", "lookup", LookupListName))
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.TableKey{
		"ncep_any.tab": {Center: 7, Subcenter: 4, Version: 2},
	}, keys)

	bad := filepath.Join(t.TempDir(), LookupListName)
	require.NoError(t, os.WriteFile(bad, []byte("7:-1:2:x.tab\n"), 0o600))
	_, err = ReadLookupList(bad)
	assert.ErrorIs(t, err, ErrMalformedRow)
}

func TestLoadDir(t *testing.T) {
	tables, err := LoadDir(context.Background(), filepath.Join("testdata", "tables"), 2)
	require.NoError(t, err)

	keys := make([]domain.TableKey, 0, len(tables))
	for _, tbl := range tables {
		keys = append(keys, tbl.Key)
	}
	assert.Equal(t, []domain.TableKey{
		{Center: 58, Version: 2},
		{Center: 98, Version: 210},
		{Center: 254, Version: 1},
		{Center: 254, Version: 2},
		{Center: 254, Version: 3},
		{Center: 254, Version: 4},
		{Center: 254, Version: 6},
		{Center: 254, Version: 7},
		{Center: 254, Subcenter: 1, Version: 5},
	}, keys, "README.txt is skipped and results are sorted")
}

func TestLoadDir_LookupList(t *testing.T) {
	tables, err := LoadDir(context.Background(), filepath.Join("testdata", "lookup"), 1)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, domain.TableKey{Center: 7, Subcenter: 4, Version: 2}, tables[0].Key)
}

func TestLoadDir_ListedFileMissing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, LookupListName), []byte("7:0:2:gone.tab\n"), 0o600))

	_, err := LoadDir(context.Background(), dir, 4)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadDir_ListedFileInUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "params.csv"), []byte("1,Pressure,Pa\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, LookupListName), []byte("7:0:2:params.csv\n"), 0o600))

	_, err := LoadDir(context.Background(), dir, 4)
	require.ErrorIs(t, err, ErrUnknownFormat)
	assert.Contains(t, err.Error(), "params.csv")
}

func TestLoadDir_FirstFailureWins(t *testing.T) {
	_, err := LoadDir(context.Background(), filepath.Join("testdata", "broken"), 4)
	assert.ErrorIs(t, err, ErrMalformedRow)
}

func TestLoadDir_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadDir(ctx, filepath.Join("testdata", "tables"), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegisterAll(t *testing.T) {
	tables, err := LoadDir(context.Background(), filepath.Join("testdata", "tables"), 4)
	require.NoError(t, err)

	b := domain.NewBuilder()
	require.NoError(t, domain.RegisterEmbedded(b))
	require.NoError(t, RegisterAll(b, tables))
	reg, err := b.Build()
	require.NoError(t, err)

	e, ok := reg.Lookup(254, 1, 5, 4)
	require.True(t, ok)
	assert.Equal(t, "SYN", e.Abbreviation)

	// Embedded tables are still there alongside the loaded ones.
	e, ok = reg.Lookup(98, 0, 170, 130)
	require.True(t, ok)
	assert.Equal(t, "T", e.Abbreviation)
}

func TestRegisterAll_DuplicateCodeNamesFile(t *testing.T) {
	tbl, err := ParseFile(filepath.Join("testdata", "broken", "dup.yaml"))
	require.NoError(t, err)

	b := domain.NewBuilder()
	err = RegisterAll(b, []Table{tbl})
	require.ErrorIs(t, err, domain.ErrDuplicateCode)
	assert.Contains(t, err.Error(), "dup.yaml")

	_, err = b.Build()
	assert.ErrorIs(t, err, domain.ErrDuplicateCode)
}

func TestRegisterAll_CollisionWithEmbedded(t *testing.T) {
	b := domain.NewBuilder()
	require.NoError(t, domain.RegisterEmbedded(b))

	err := RegisterAll(b, []Table{{
		TableSource: domain.TableSource{Key: domain.TableKey{Center: 98, Version: 170}},
		Path:        "override.yaml",
	}})
	assert.ErrorIs(t, err, domain.ErrDuplicateTable)
}

func TestBuildRegistry(t *testing.T) {
	reg, loaded, err := BuildRegistry(context.Background(), "", 4)
	require.NoError(t, err)
	assert.Empty(t, loaded)
	def, err := domain.Default()
	require.NoError(t, err)
	assert.Same(t, def, reg)

	reg, loaded, err = BuildRegistry(context.Background(), filepath.Join("testdata", "tables"), 4)
	require.NoError(t, err)
	assert.Len(t, loaded, 9)
	assert.Equal(t, len(domain.EmbeddedTables())+9, reg.Len())

	_, _, err = BuildRegistry(context.Background(), filepath.Join("testdata", "broken"), 4)
	assert.Error(t, err)
}

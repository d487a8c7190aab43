package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/grib-param-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var extraTablesDir = filepath.Join("..", "..", "internal", "tableload", "testdata", "tables")

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PARAM_TABLE_DIR", "")

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLookup(t *testing.T) {
	out, err := execute(t, "lookup", "78", "0", "205", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "table:        78.0.205")
	assert.Contains(t, out, "abbreviation: SYNMSG")
	assert.Contains(t, out, "description:  synthetic satellite imags MSG")
	assert.Contains(t, out, "unit:         non-dim")
}

func TestLookup_JSON(t *testing.T) {
	out, err := execute(t, "lookup", "--json", "98", "0", "172", "50")
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":50,"description":"Large-scale precipitation fraction","unit":"-","abbreviation":""}`, out)
}

func TestLookup_NotFound(t *testing.T) {
	_, err := execute(t, "lookup", "98", "0", "172", "9999")
	require.ErrorIs(t, err, errNotFound)
	assert.Contains(t, err.Error(), "98.0.172")
}

func TestLookup_BadArguments(t *testing.T) {
	_, err := execute(t, "lookup", "98", "0", "172")
	require.Error(t, err)

	_, err = execute(t, "lookup", "ecmwf", "0", "172", "50")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument 1")
}

func TestLookup_ExtraTableDir(t *testing.T) {
	out, err := execute(t, "lookup", "--dir", extraTablesDir, "254", "1", "5", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "abbreviation: SYN")
}

func TestTables(t *testing.T) {
	out, err := execute(t, "tables")
	require.NoError(t, err)
	assert.Contains(t, out, "TABLE")
	assert.Contains(t, out, "98.0.170")
	assert.Contains(t, out, "Deutscher Wetterdienst - Offenbach")
}

func TestTables_JSON(t *testing.T) {
	out, err := execute(t, "tables", "--json")
	require.NoError(t, err)

	var rows []tableRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, len(domain.EmbeddedTables()))
	assert.Equal(t, "7.0.2", rows[0].Table)
	assert.Positive(t, rows[0].Entries)
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Registry build")
	assert.Contains(t, out, "Reference lookups")
	assert.NotContains(t, out, "FAIL")
	assert.Contains(t, out, "All validations passed.")
}

func TestValidate_WithExtraTables(t *testing.T) {
	out, err := execute(t, "validate", "--dir", extraTablesDir)
	require.NoError(t, err)
	assert.Contains(t, out, "All validations passed.")
}

func TestValidate_BuildFailure(t *testing.T) {
	dir := t.TempDir()
	table := "center: 98\nsubcenter: 0\nversion: 170\nparameters:\n  - code: 1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clash.yaml"), []byte(table), 0o600))

	out, err := execute(t, "validate", "--dir", dir)
	require.ErrorIs(t, err, errValidationFailed)
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "duplicate table")
}

func TestValidate_EmptyTableFails(t *testing.T) {
	dir := t.TempDir()
	table := "center: 250\nsubcenter: 0\nversion: 1\nparameters: []\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.yaml"), []byte(table), 0o600))

	out, err := execute(t, "validate", "--dir", dir)
	require.ErrorIs(t, err, errValidationFailed)
	assert.Contains(t, out, "table 250.0.1 has no entries")
}

func TestGenmock_MatchesCommittedFixture(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "descriptors.json")
	resolved := filepath.Join(dir, "resolved.json")

	_, err := execute(t, "genmock", "--out", out, "--resolved", resolved)
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join("..", "..", "data", "mock", "grib_field_descriptors.json"))
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))

	var fields []domain.ResolvedField
	data, err := os.ReadFile(resolved)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &fields))
	require.Len(t, fields, 2*len(domain.EmbeddedTables()))
	for _, f := range fields {
		assert.Equal(t, resolvedAt, f.ResolvedAt)
		assert.NotEmpty(t, f.ID)
	}
}

func TestGenmock_RequiresOut(t *testing.T) {
	_, err := execute(t, "genmock")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--out")

	_, err = execute(t, "genmock", "--out", filepath.Join(t.TempDir(), "x.json"), "--count", "0")
	require.Error(t, err)
}

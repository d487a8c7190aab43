package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/couchcryptid/grib-param-service/internal/domain"
	"github.com/spf13/cobra"
)

var errValidationFailed = errors.New("validation failed")

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

// scenario is a lookup with a known answer. A zero want means the lookup
// must miss.
type scenario struct {
	center, subcenter, version, code int
	want                             *domain.ParameterEntry
}

var referenceScenarios = []scenario{
	{98, 0, 170, 130, &domain.ParameterEntry{Code: 130, Description: "Temperature", Unit: "K", Abbreviation: "T"}},
	{78, 0, 205, 4, &domain.ParameterEntry{Code: 4, Description: "synthetic satellite imags MSG", Unit: "non-dim", Abbreviation: "SYNMSG"}},
	{98, 0, 172, 50, &domain.ParameterEntry{Code: 50, Description: "Large-scale precipitation fraction", Unit: "-"}},
	{98, 0, 172, 9999, nil},
	{1, 0, 1, 1, nil},
}

func newValidateCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Build the registry and check its integrity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "=== GRIB1 Parameter Registry Validation ===")
			fmt.Fprintln(out)

			build := &phase{name: "Registry build"}
			reg, err := root.registry(cmd)
			if err != nil {
				build.errorf("%v", err)
				return report(out, nil, []*phase{build})
			}

			phases := []*phase{
				build,
				validateTablesNonEmpty(reg),
				validateEntriesResolvable(reg),
				validateReferenceScenarios(reg),
			}
			return report(out, reg, phases)
		},
	}
}

func report(out io.Writer, reg *domain.Registry, phases []*phase) error {
	allPassed := true
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = fmt.Sprintf("FAIL (%d errors)", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(out, "  %-32s %s\n", p.name, status)
	}

	if reg != nil {
		fmt.Fprintf(out, "\nTables: %d, entries: %d\n", reg.Len(), reg.EntryCount())
	}

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(out, "\nAll validations passed.")
		return nil
	}
	fmt.Fprintln(out, "\nValidation FAILED.")
	return errValidationFailed
}

func validateTablesNonEmpty(reg *domain.Registry) *phase {
	p := &phase{name: "Tables non-empty"}
	for _, t := range reg.Tables() {
		if t.Len() == 0 {
			p.errorf("table %s has no entries", t.Key())
		}
	}
	return p
}

func validateEntriesResolvable(reg *domain.Registry) *phase {
	p := &phase{name: "Entries resolvable"}
	for _, t := range reg.Tables() {
		k := t.Key()
		for _, want := range t.Entries() {
			got, ok := reg.Lookup(k.Center, k.Subcenter, k.Version, want.Code)
			switch {
			case !ok:
				p.errorf("table %s code %d: lookup missed", k, want.Code)
			case got != want:
				p.errorf("table %s code %d: lookup returned %+v, table holds %+v", k, want.Code, got, want)
			}
		}
	}
	return p
}

func validateReferenceScenarios(reg *domain.Registry) *phase {
	p := &phase{name: "Reference lookups"}
	for _, s := range referenceScenarios {
		key := domain.TableKey{Center: s.center, Subcenter: s.subcenter, Version: s.version}
		got, ok := reg.Lookup(s.center, s.subcenter, s.version, s.code)
		switch {
		case s.want == nil && ok:
			p.errorf("table %s code %d: expected no entry, got %+v", key, s.code, got)
		case s.want != nil && !ok:
			p.errorf("table %s code %d: expected %+v, got none", key, s.code, *s.want)
		case s.want != nil && got != *s.want:
			p.errorf("table %s code %d: expected %+v, got %+v", key, s.code, *s.want, got)
		}
	}
	return p
}

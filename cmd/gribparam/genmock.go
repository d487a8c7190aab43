package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/couchcryptid/grib-param-service/internal/domain"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

// unknownCode is outside the 0-255 range of GRIB1 octet 9, so no table can
// ever hold it.
const unknownCode = 9999

var (
	baseDate   = time.Date(2024, time.April, 26, 0, 0, 0, 0, time.UTC)
	resolvedAt = time.Date(2024, time.April, 27, 6, 0, 0, 0, time.UTC)
)

func newGenmockCommand(root *rootOptions) *cobra.Command {
	var (
		out      string
		resolved string
		count    int
	)

	cmd := &cobra.Command{
		Use:   "genmock",
		Short: "Write field descriptor fixtures drawn from the registry",
		Long: `Writes a JSON array of field descriptors: the first --count entries of
every registered table plus one descriptor whose code no table holds.
With --resolved, also writes what the resolver produces for the known
descriptors, timestamped with a fixed clock so the output is reproducible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				return errors.New("--out is required")
			}
			if count <= 0 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}

			reg, err := root.registry(cmd)
			if err != nil {
				return err
			}

			descriptors := generateDescriptors(reg, count)
			if err := writeJSONFile(out, descriptors); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d descriptors\n", out, len(descriptors))

			if resolved == "" {
				return nil
			}
			fields, err := resolveDescriptors(reg, descriptors)
			if err != nil {
				return err
			}
			if err := writeJSONFile(resolved, fields); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d resolved fields\n", resolved, len(fields))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output path for the descriptor fixture")
	cmd.Flags().StringVar(&resolved, "resolved", "", "optional output path for the resolved fixture")
	cmd.Flags().IntVar(&count, "count", 2, "entries taken from each table")
	return cmd
}

// generateDescriptors is deterministic: tables in key order, entries in
// authored order, records numbered across the whole fixture.
func generateDescriptors(reg *domain.Registry, perTable int) []domain.FieldDescriptor {
	var (
		descriptors []domain.FieldDescriptor //nolint:prealloc // size depends on table lengths
		record      int
		last        domain.TableKey
	)
	for _, t := range reg.Tables() {
		last = t.Key()
		entries := t.Entries()
		for i := 0; i < perTable && i < len(entries); i++ {
			record++
			descriptors = append(descriptors, descriptor(t.Key(), entries[i].Code, i*6,
				fmt.Sprintf("genmock-%s.grb", t.Key()), record))
		}
	}
	if reg.Len() > 0 {
		record++
		descriptors = append(descriptors, descriptor(last, unknownCode, 0, "genmock-unknown.grb", record))
	}
	return descriptors
}

func descriptor(key domain.TableKey, code, forecastHour int, source string, record int) domain.FieldDescriptor {
	center, sub, version := key.Center, key.Subcenter, key.Version
	return domain.FieldDescriptor{
		Center:        &center,
		Subcenter:     &sub,
		TableVersion:  &version,
		Parameter:     &code,
		LevelType:     1,
		ReferenceTime: baseDate,
		ForecastHour:  forecastHour,
		Source:        source,
		Record:        record,
	}
}

// resolveDescriptors runs the known descriptors through the resolver's domain
// logic with a frozen clock. Misses are expected and left out.
func resolveDescriptors(reg *domain.Registry, descriptors []domain.FieldDescriptor) ([]domain.ResolvedField, error) {
	domain.SetClock(clockwork.NewFakeClockAt(resolvedAt))
	defer domain.SetClock(nil)

	fields := make([]domain.ResolvedField, 0, len(descriptors))
	for _, d := range descriptors {
		f, err := domain.ResolveField(reg, d, nil)
		if errors.Is(err, domain.ErrCodeNotFound) || errors.Is(err, domain.ErrTableNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // fixtures are meant to be world-readable
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

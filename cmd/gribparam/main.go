// Command gribparam inspects and checks the GRIB1 parameter registry.
//
// Usage:
//
//	gribparam lookup 98 0 170 130
//	gribparam tables --json
//	gribparam validate --dir ./tables
//	gribparam genmock --out data/mock/grib_field_descriptors.json
package main

import (
	"fmt"
	"os"

	"github.com/couchcryptid/grib-param-service/internal/domain"
	"github.com/couchcryptid/grib-param-service/internal/tableload"
	"github.com/spf13/cobra"
)

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	dir         string
	concurrency int
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "gribparam",
		Short:         "Look up GRIB1 parameter codes and check parameter tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.dir, "dir", os.Getenv("PARAM_TABLE_DIR"),
		"directory of extra parameter tables to register (default $PARAM_TABLE_DIR)")
	cmd.PersistentFlags().IntVar(&opts.concurrency, "concurrency", 4, "table files parsed in parallel")

	cmd.AddCommand(
		newLookupCommand(opts),
		newTablesCommand(opts),
		newValidateCommand(opts),
		newGenmockCommand(opts),
	)
	return cmd
}

func (o *rootOptions) registry(cmd *cobra.Command) (*domain.Registry, error) {
	if o.concurrency <= 0 {
		return nil, fmt.Errorf("--concurrency must be positive, got %d", o.concurrency)
	}
	reg, _, err := tableload.BuildRegistry(cmd.Context(), o.dir, o.concurrency)
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}
	return reg, nil
}

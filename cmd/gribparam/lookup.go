package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/couchcryptid/grib-param-service/internal/domain"
	"github.com/spf13/cobra"
)

var errNotFound = errors.New("not found")

func newLookupCommand(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "lookup CENTER SUBCENTER VERSION CODE",
		Short: "Print the parameter table entry for a code",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var n [4]int
			for i, a := range args {
				v, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("argument %d: %q is not an integer", i+1, a)
				}
				n[i] = v
			}

			reg, err := root.registry(cmd)
			if err != nil {
				return err
			}

			key := domain.TableKey{Center: n[0], Subcenter: n[1], Version: n[2]}
			entry, ok := reg.Lookup(key.Center, key.Subcenter, key.Version, n[3])
			if !ok {
				return fmt.Errorf("%w: table %s code %d", errNotFound, key, n[3])
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entry)
			}
			fmt.Fprintf(out, "table:        %s\n", key)
			fmt.Fprintf(out, "code:         %d\n", entry.Code)
			fmt.Fprintf(out, "abbreviation: %s\n", entry.Abbreviation)
			fmt.Fprintf(out, "description:  %s\n", entry.Description)
			fmt.Fprintf(out, "unit:         %s\n", entry.Unit)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the entry as JSON")
	return cmd
}

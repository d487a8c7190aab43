package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type tableRow struct {
	Table   string `json:"table"`
	Name    string `json:"name,omitempty"`
	Note    string `json:"note,omitempty"`
	Entries int    `json:"entries"`
}

func newTablesCommand(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List registered parameter tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := root.registry(cmd)
			if err != nil {
				return err
			}

			rows := make([]tableRow, 0, reg.Len())
			for _, t := range reg.Tables() {
				rows = append(rows, tableRow{Table: t.Key().String(), Name: t.Name(), Note: t.Note(), Entries: t.Len()})
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TABLE\tENTRIES\tNAME\tNOTE")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", r.Table, r.Entries, r.Name, r.Note)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print tables as JSON")
	return cmd
}

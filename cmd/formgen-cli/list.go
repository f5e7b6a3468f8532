package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-form/pkg/definition"
)

func listCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the loaded forms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			return printForms(cmd, store)
		},
	}
}

func printForms(cmd *cobra.Command, store *definition.Store) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tFIELDS\tPROTECTED\tSOURCE")
	for _, id := range store.IDs() {
		entry, _ := store.Entry(id)
		fmt.Fprintf(w, "%s\t%s\t%d\t%t\t%s\n",
			id,
			entry.Definition.Name(),
			len(entry.Definition.Fields()),
			entry.Protected,
			entry.Source,
		)
	}
	return w.Flush()
}

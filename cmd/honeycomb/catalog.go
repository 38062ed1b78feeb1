package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fine-structures/honeycomb/libhex/catalog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	var catalogPath string

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect a logo catalog",
	}
	catalogCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "badger directory (or HONEYCOMB_CATALOG)")

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List stored logos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if catalogPath == "" {
				catalogPath = os.Getenv("HONEYCOMB_CATALOG")
			}
			if catalogPath == "" {
				return errors.New("--catalog is required")
			}

			cat, err := catalog.Open(catalog.Opts{DbPathName: catalogPath, ReadOnly: true})
			if err != nil {
				return err
			}
			defer cat.Close()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "KEY\tPRESET\tBONDS\tVERTICES\tCREATED\tSITES\n")
			err = cat.Select(func(rec *catalog.LogoRecord) error {
				_, err := fmt.Fprintf(tw, "%016x\t%s\t%d\t%d\t%s\t%s\n",
					rec.Key, rec.Preset, rec.NumBonds, rec.NumVertices,
					time.Unix(rec.CreatedAt, 0).UTC().Format(time.RFC3339), rec.Sites)
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "%d logos\n", cat.NumLogos())
			return tw.Flush()
		},
	}

	catalogCmd.AddCommand(lsCmd)
	return catalogCmd
}

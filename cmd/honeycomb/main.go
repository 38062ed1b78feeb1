package main

import (
	"flag"
	"os"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		klog.Errorf("%v", err)
	}
	klog.Flush()

	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "0")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	opts := &renderOpts{}

	rootCmd := &cobra.Command{
		Use:   "honeycomb",
		Short: "Emits the honeycomb logo as SVG",
		Long: `honeycomb computes hexagonal lattice sites, joins neighboring sites with mitered
bond polygons, and optionally circles each site, writing SVG elements to stdout.

Run without a subcommand to render the simplified logo fragment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}
	rootCmd.PersistentFlags().AddGoFlagSet(fset)
	opts.register(rootCmd)

	rootCmd.AddCommand(
		newRenderCmd(),
		newRunCmd(),
		newCatalogCmd(),
	)
	return rootCmd
}

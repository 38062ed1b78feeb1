package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fine-structures/honeycomb/gohex"
	"github.com/fine-structures/honeycomb/libhex"
	"github.com/fine-structures/honeycomb/libhex/catalog"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
)

type renderOpts struct {
	Preset      string
	StyleFile   string
	Sites       string
	Document    bool
	CatalogPath string
}

// optResolver binds a flag to an environment fallback, used when the flag is not given.
type optResolver struct {
	flagName   string
	envVarName string
	target     *string
}

func (opts *renderOpts) resolvers() []optResolver {
	return []optResolver{
		{"preset", "HONEYCOMB_PRESET", &opts.Preset},
		{"config", "HONEYCOMB_CONFIG", &opts.StyleFile},
		{"sites", "HONEYCOMB_SITES", &opts.Sites},
		{"catalog", "HONEYCOMB_CATALOG", &opts.CatalogPath},
	}
}

func (opts *renderOpts) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&opts.Preset, "preset", "", "style preset: "+strings.Join(gohex.PresetNames, ", ")+" (default simplified)")
	flags.StringVar(&opts.StyleFile, "config", "", "YAML style file overlaid on the preset")
	flags.StringVar(&opts.Sites, "sites", "", `lattice sites, e.g. "(1,-3) (0,-2)" (default: the logo)`)
	flags.BoolVar(&opts.Document, "document", false, "wrap output in a standalone <svg> document")
	flags.StringVar(&opts.CatalogPath, "catalog", "", "badger directory caching rendered logos")
}

func (opts *renderOpts) applyEnv(cmd *cobra.Command, lookup func(string) (string, bool)) {
	for _, res := range opts.resolvers() {
		if cmd.Flags().Changed(res.flagName) {
			continue
		}
		if v, ok := lookup(res.envVarName); ok && v != "" {
			*res.target = v
		}
	}
}

func newRenderCmd() *cobra.Command {
	opts := &renderOpts{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the logo (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}
	opts.register(cmd)
	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOpts) error {
	opts.applyEnv(cmd, os.LookupEnv)
	return renderLogo(cmd.OutOrStdout(), opts)
}

func renderLogo(out io.Writer, opts *renderOpts) error {
	st, err := libhex.LoadStyle(opts.Preset, opts.StyleFile)
	if err != nil {
		return err
	}

	sites := gohex.LogoSites
	if opts.Sites != "" {
		if sites, err = libhex.ParseSites(opts.Sites); err != nil {
			return err
		}
	}

	var cat *catalog.Catalog
	var key uint64
	if opts.CatalogPath != "" {
		cat, err = catalog.Open(catalog.Opts{DbPathName: opts.CatalogPath})
		if err != nil {
			return err
		}
		defer cat.Close()

		// Stored lines are fragments, so a document is always re-rendered.
		key = catalog.KeyFor(&st, sites)
		if !opts.Document {
			rec, err := cat.Lookup(key)
			if err == nil {
				klog.V(1).Infof("catalog hit %016x (%d lines)", key, len(rec.Lines))
				return writeLines(out, rec.Lines)
			}
			if errors.Cause(err) != gohex.ErrNotFound {
				return err
			}
			klog.V(1).Infof("catalog miss %016x", key)
		}
	}

	dr, err := libhex.Render(&st, sites)
	if err != nil {
		return err
	}

	if cat != nil {
		preset := opts.Preset
		switch {
		case opts.StyleFile != "":
			preset = filepath.Base(opts.StyleFile)
		case preset == "":
			preset = gohex.PresetSimplified
		}
		rec := catalog.NewRecord(key, preset, sites, dr, time.Now().Unix())
		if _, err = cat.TryAdd(rec); err != nil {
			klog.Warningf("unable to store logo in catalog: %v", err)
		}
	}

	if opts.Document {
		return libhex.WriteDocument(out, dr.Shapes)
	}
	return libhex.WriteFragment(out, dr.Shapes)
}

// writeLines replays fragment lines stored in a catalog.
func writeLines(out io.Writer, lines []string) error {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	_, err := out.Write(buf.Bytes())
	return err
}

package main

import (
	"time"

	"github.com/go-python/gpython/py"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	_ "github.com/fine-structures/honeycomb/pyhex"
	_ "github.com/go-python/gpython/stdlib"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.py>",
		Short: "Execute a Python script with the _honeycomb module available",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(args[0])
		},
	}
}

func runScript(pathname string) error {
	ctx := py.NewContext(py.DefaultContextOpts())

	startTime := time.Now()
	klog.V(1).Infof("<<<>>>   executing '%s'   <<<>>>", pathname)

	_, err := py.RunFile(ctx, pathname, py.CompileOpts{}, nil)
	if err == nil {
		klog.V(1).Infof("<<<>>>   execution complete: %v   <<<>>>", time.Since(startTime))
	}

	ctx.Close()
	<-ctx.Done()

	if err != nil {
		py.TracebackDump(err)
		return errors.Wrapf(err, "running %q", pathname)
	}
	return nil
}

// Command vsl validates, resolves, formats and bundles vsl package
// descriptors, and benchmarks the lane math kernels.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rawbytedev/vsl/internal/logging"
	"github.com/rawbytedev/vsl/manifest"
)

type options struct {
	manifest string
	logLevel string
	logFile  string
}

func (o *options) load() (*manifest.Package, error) {
	p, err := manifest.ParseFile(o.manifest)
	if err != nil {
		return nil, err
	}
	logging.Debugf("loaded %s (%d products, %d targets)\n", o.manifest, len(p.Products), len(p.Targets))
	return p, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "vsl",
		Short:         "Work with vsl package descriptors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := logging.SetLogger(nil, map[string]interface{}{
				"log.level": opts.logLevel,
				"log.file":  opts.logFile,
			})
			return err
		},
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&opts.manifest, "manifest", "m", "vsl.yaml", "package descriptor (yaml, json, starlark or binary)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "ignore, error, warn, info, verbose, debug or trace")
	flags.StringVar(&opts.logFile, "log-file", "", "append logs to this file instead of stderr")

	root.AddCommand(
		newValidateCmd(opts),
		newResolveCmd(opts),
		newFmtCmd(opts),
		newBundleCmd(opts),
		newShowCmd(opts),
		newBenchCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vsl:", err)
		os.Exit(1)
	}
}

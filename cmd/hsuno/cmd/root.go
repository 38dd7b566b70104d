// Package cmd implements the hsuno command line.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/teranos/hsuno/am"
	"github.com/teranos/hsuno/errors"
	"github.com/teranos/hsuno/logger"
	"github.com/teranos/hsuno/version"
)

var (
	verbosity int
	jsonLogs  bool
)

// RootCmd is the hsuno entry point
var RootCmd = &cobra.Command{
	Use:   "hsuno",
	Short: "Generate C++ call shims and Haskell FFI bindings for UNO IDL entities",
	Long: `hsuno - UNO IDL to Haskell binding generator.

For every interface, exception and singleton in the given schema files hsuno
writes three artifacts next to each other:
  <Name>.hpp  C++ declarations of the extern "C" shim functions
  <Name>.cpp  the shims, calling into the UNO binary bridge
  <Name>.hs   the Haskell module importing the shims via the FFI

Available commands:
  generate - Generate bindings from schema files
  check    - Verify that generated bindings are up to date
  am       - Show and manage hsuno configuration ("I am")
  version  - Show version information

Examples:
  hsuno generate idl/widget.yaml                 # Write to ./gen
  hsuno generate idl/*.yaml -o bindings -v       # Custom root, progress logs
  hsuno check idl/*.yaml -o bindings             # Fail when bindings are stale
  hsuno am show --sources                        # Show config with origins`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}

		if err := logger.InitializeWithVerbosity(jsonLogs || cfg.Log.JSON, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		logger.Debugw("hsuno starting",
			"version", version.Get().UserAgent(),
			"verbosity", logger.LevelName(verbosity))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	RootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	RootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "Emit logs as JSON")

	RootCmd.AddCommand(GenerateCmd)
	RootCmd.AddCommand(CheckCmd)
	RootCmd.AddCommand(AmCmd)
	RootCmd.AddCommand(VersionCmd)
}

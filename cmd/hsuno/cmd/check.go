package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/teranos/hsuno/errors"
	"github.com/teranos/hsuno/typegen"
)

var (
	checkOutput  string
	checkWorkers int
)

// CheckCmd checks if generated bindings are up to date
var CheckCmd = &cobra.Command{
	Use:   "check <schema>...",
	Short: "Check if generated bindings are up to date",
	Long: `Check if the generated bindings under the output root match the schema files.

This command generates into a temporary directory and compares the result
with the existing tree. Generated-looking files that would no longer be
produced are reported as stale.

Exit codes:
  0 - Bindings are up to date
  1 - Bindings are out of date (files listed)
  2 - Error during check

Examples:
  hsuno check idl/*.yaml
  hsuno check idl/*.yaml -o bindings`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "Output root to check (default: generate.output_root)")
	CheckCmd.Flags().IntVar(&checkWorkers, "workers", -1, "Concurrent entities, 0 = one per CPU (default: generate.workers)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	gen, err := resolveGeneration(args, checkOutput, checkWorkers)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Checking generated bindings...")

	tempDir, err := os.MkdirTemp("", "hsuno-check-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp directory")
	}
	defer os.RemoveAll(tempDir)

	fs := afero.NewOsFs()
	report, _, err := gen.run(cmd.Context(), fs, tempDir)
	if err != nil {
		return err
	}
	if err := report.Err(); err != nil {
		return errors.WithHint(
			errors.Wrap(err, "cannot check bindings while entities fail to generate"),
			"run 'hsuno generate' to see the failures")
	}

	result, err := typegen.CompareDirectories(fs, tempDir, gen.root, gen.opts)
	if err != nil {
		return errors.Wrap(err, "failed to compare directories")
	}

	if result.UpToDate {
		pterm.Success.Println("Bindings are up to date")
		return nil
	}

	out := cmd.OutOrStdout()
	printFiles := func(title string, files []string) {
		if len(files) == 0 {
			return
		}
		fmt.Fprintf(out, "\n%s:\n", title)
		for _, f := range files {
			fmt.Fprintf(out, "  - %s\n", f)
		}
	}
	pterm.Error.Println("Bindings are out of date")
	printFiles("Changed", result.Differences)
	printFiles("Missing", result.Missing)
	printFiles("Stale", result.Stale)

	return errors.WithHint(result.Err(), "run 'hsuno generate' with the same schemas to update them")
}

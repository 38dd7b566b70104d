package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/teranos/hsuno/am"
	"github.com/teranos/hsuno/errors"
	"github.com/teranos/hsuno/logger"
	"github.com/teranos/hsuno/typegen"
	"github.com/teranos/hsuno/typegen/emit"
	"github.com/teranos/hsuno/typegen/output"
	"github.com/teranos/hsuno/typegen/runner"
	"github.com/teranos/hsuno/unoidl"
)

var (
	generateOutput  string
	generateWorkers int
	generateWatch   bool
)

// GenerateCmd generates bindings for every entity of the given schema files
var GenerateCmd = &cobra.Command{
	Use:   "generate <schema>...",
	Short: "Generate bindings from schema files",
	Long: `Generate the C++ declaration, C++ call shim and Haskell binding of every
entity in the given YAML or TOML schema files.

Files land in <output>/<module path>/<Name>.{hpp,cpp,hs}. Files whose content
is unchanged are not rewritten. An entity that fails is reported and skipped;
the remaining entities are still generated.

Examples:
  hsuno generate idl/widget.yaml
  hsuno generate idl/*.toml -o bindings --workers 4
  hsuno generate idl/*.yaml --watch`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output root (default: generate.output_root)")
	GenerateCmd.Flags().IntVar(&generateWorkers, "workers", -1, "Concurrent entities, 0 = one per CPU (default: generate.workers)")
	GenerateCmd.Flags().BoolVar(&generateWatch, "watch", false, "Regenerate whenever a schema file changes")
}

// generation is one resolved set of inputs for a run
type generation struct {
	schemas []string
	root    string
	opts    typegen.Options
	workers int

	// progress, when set, is called as each entity finishes
	progress func(runner.EntityReport)
}

// resolveGeneration applies command-line overrides on top of the loaded config
func resolveGeneration(schemas []string, outputFlag string, workersFlag int) (*generation, error) {
	cfg, err := am.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	resolved := *cfg
	if outputFlag != "" {
		resolved.Generate.OutputRoot = outputFlag
	}
	if workersFlag >= 0 {
		resolved.Generate.Workers = workersFlag
	}
	if err := resolved.Validate(); err != nil {
		return nil, errors.WithHint(
			errors.Wrap(err, "configuration validation failed"),
			"run 'hsuno am show --sources' to see where each setting comes from")
	}

	return &generation{
		schemas: schemas,
		root:    resolved.Generate.OutputRoot,
		opts:    resolved.TypegenOptions(),
		workers: resolved.Generate.Workers,
	}, nil
}

// run loads the schemas and generates every entity below root on fs
func (g *generation) run(ctx context.Context, fs afero.Fs, root string) (*runner.Report, *output.Writer, error) {
	_, idx, err := unoidl.LoadSchemas(fs, g.schemas...)
	if err != nil {
		return nil, nil, err
	}

	logger.Debugw("Loaded schemas",
		"schemas", len(g.schemas),
		"entities", idx.Names())

	cfg := runner.DefaultConfig()
	if g.workers > 0 {
		cfg.Workers = g.workers
	}
	cfg.OnEntity = func(r runner.EntityReport) {
		if g.progress != nil {
			g.progress(r)
		}
	}

	w := output.NewWriter(fs, root)
	report, err := runner.Run(ctx, emit.NewContext(g.opts, idx), idx.Entities(), w, cfg)
	return report, w, err
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gen, err := resolveGeneration(args, generateOutput, generateWorkers)
	if err != nil {
		return err
	}

	fs := afero.NewOsFs()
	out := cmd.OutOrStdout()
	gen.progress = entityProgress

	runOnce := func() error {
		report, w, err := gen.run(cmd.Context(), fs, gen.root)
		if err != nil {
			return err
		}
		printReport(out, report, w)
		if err := report.Err(); err != nil {
			return errors.WithHint(
				errors.Wrapf(err, "%d of %d entities failed", len(report.Failed()), len(report.Entities)),
				"re-run with -vv to see skipped members and placeholders")
		}
		return nil
	}

	if !generateWatch {
		return runOnce()
	}

	// In watch mode a broken schema is reported and the watch continues
	if err := runOnce(); err != nil {
		pterm.Error.Println(err.Error())
	}

	watcher, err := unoidl.NewWatcher(gen.schemas, func(changed string) error {
		pterm.Info.Printfln("%s changed, regenerating", changed)
		return runOnce()
	})
	if err != nil {
		return err
	}

	pterm.Info.Printfln("Watching %d schema file(s), press Ctrl+C to stop", len(gen.schemas))
	return watcher.Run(cmd.Context())
}

// entityProgress logs each entity as the runner finishes it
func entityProgress(r runner.EntityReport) {
	switch {
	case r.Failed():
		logger.Debugw("Entity failed", logger.FieldEntity, r.Entity, logger.FieldError, r.Err)
	case r.Skipped():
		logger.Debugw("Entity skipped", logger.FieldEntity, r.Entity, "reason", r.Err)
	default:
		logger.Debugw("Entity generated", logger.FieldEntity, r.Entity,
			"files", len(r.Files),
			"duration", r.Duration)
	}
}

// printReport prints one line per file written and a summary table
func printReport(out io.Writer, report *runner.Report, w *output.Writer) {
	for _, rel := range w.Written() {
		fmt.Fprintf(out, "%s %s\n", pterm.LightGreen("✓"), rel)
	}
	for _, e := range report.Skipped() {
		pterm.Warning.Printfln("%s: %v", e.Entity, e.Err)
	}
	for _, e := range report.Failed() {
		pterm.Error.Printfln("%s: %v", e.Entity, e.Err)
	}

	data := pterm.TableData{
		{"Entities", "Generated", "Skipped", "Failed", "Files written", "Unchanged", "Time"},
		{
			fmt.Sprint(len(report.Entities)),
			fmt.Sprint(len(report.Succeeded())),
			fmt.Sprint(len(report.Skipped())),
			fmt.Sprint(len(report.Failed())),
			fmt.Sprint(len(w.Written())),
			fmt.Sprint(len(w.Unchanged())),
			report.Duration.Round(time.Millisecond).String(),
		},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithWriter(out).WithData(data).Render(); err != nil {
		logger.Warnw("Failed to render summary", logger.FieldError, err)
	}
	logger.Infow("Run complete",
		logger.FieldRunID, report.RunID,
		logger.FieldOutput, w.Root())
}

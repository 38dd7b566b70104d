package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/hsuno/am"
	"github.com/teranos/hsuno/errors"
	"github.com/teranos/hsuno/typegen"
	"github.com/teranos/hsuno/typegen/runner"
)

const widgetSchema = `version: "1.0"
entities:
  - name: Widget
    module: a.b
    kind: interface
    methods:
      - name: getCount
        returns: long
      - name: setLabel
        parameters:
          - name: label
            type: string
  - name: theWidget
    module: a.b
    kind: interface-singleton
    base: a.b.Widget
  - name: theFactory
    module: a.b
    kind: service-singleton
    base: a.b.Factory
`

func TestGenerationRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/idl/widget.yaml", []byte(widgetSchema), 0644))

	var (
		mu       sync.Mutex
		finished []string
	)
	gen := &generation{
		schemas: []string{"/idl/widget.yaml"},
		root:    "/out",
		opts:    typegen.DefaultOptions(),
		workers: 2,
		progress: func(r runner.EntityReport) {
			mu.Lock()
			defer mu.Unlock()
			finished = append(finished, r.Entity)
		},
	}
	report, w, err := gen.run(context.Background(), fs, "/out")
	require.NoError(t, err)
	require.NoError(t, report.Err(), "a service singleton is skipped, not failed")

	sort.Strings(finished)
	assert.Equal(t, []string{"a.b.Widget", "a.b.theFactory", "a.b.theWidget"}, finished, "every entity reports progress")

	assert.Len(t, report.Succeeded(), 2)
	assert.Len(t, report.Skipped(), 1)
	assert.Empty(t, report.Failed())

	for _, f := range []string{"Widget.hpp", "Widget.cpp", "Widget.hs", "theWidget.hpp", "theWidget.cpp", "theWidget.hs"} {
		exists, err := afero.Exists(fs, filepath.Join("/out/A/B", f))
		require.NoError(t, err)
		assert.True(t, exists, f)
	}
	assert.Len(t, w.Written(), 6)

	var out bytes.Buffer
	printReport(&out, report, w)
	assert.Contains(t, out.String(), "A/B/Widget.hpp")
}

func TestGenerationRunBadSchema(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/idl/bad.yaml", []byte("version: \"2.0\"\nentities: []\n"), 0644))

	gen := &generation{schemas: []string{"/idl/bad.yaml"}, root: "/out", opts: typegen.DefaultOptions()}
	_, _, err := gen.run(context.Background(), fs, "/out")
	assert.Error(t, err)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want interface{}
	}{
		{"4", 4},
		{"-1", -1},
		{"true", true},
		{"false", false},
		{"hsuno_", "hsuno_"},
		{".hpp", ".hpp"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseValue(tt.in))
		})
	}
}

// execute runs the root command in an isolated home and working directory
func execute(t *testing.T, args ...string) error {
	t.Helper()
	RootCmd.SetArgs(args)
	RootCmd.SetOut(&bytes.Buffer{})
	am.Reset()
	return RootCmd.ExecuteContext(context.Background())
}

func TestGenerateThenCheck(t *testing.T) {
	work := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		am.Reset()
	})

	schema := filepath.Join(work, "widget.yaml")
	require.NoError(t, os.WriteFile(schema, []byte(widgetSchema), 0644))
	out := filepath.Join(work, "bindings")

	require.NoError(t, execute(t, "generate", schema, "-o", out))
	assert.FileExists(t, filepath.Join(out, "A", "B", "Widget.hs"))

	require.NoError(t, execute(t, "check", schema, "-o", out), "fresh tree is up to date")

	require.NoError(t, os.WriteFile(filepath.Join(out, "A", "B", "Widget.cpp"), []byte("// edited\n"), 0644))
	err = execute(t, "check", schema, "-o", out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrOutOfDate))

	require.NoError(t, execute(t, "generate", schema, "-o", out))
	require.NoError(t, execute(t, "check", schema, "-o", out), "regenerating repairs the tree")
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	work := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HSUNO_GENERATE_SYMBOL_PREFIX", "not-valid")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		am.Reset()
	})

	schema := filepath.Join(work, "widget.yaml")
	require.NoError(t, os.WriteFile(schema, []byte(widgetSchema), 0644))

	err = execute(t, "generate", schema, "-o", filepath.Join(work, "out"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "symbol_prefix")
}

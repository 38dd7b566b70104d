package output

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/hsuno/typegen"
	"github.com/teranos/hsuno/unoidl"
)

func widgetResult(decl, impl, hs string) *typegen.Result {
	r := &typegen.Result{
		Entity: "a.b.Widget",
		Names:  typegen.DeriveNames(typegen.DefaultOptions(), unoidl.MustParseModulePath("a.b"), "Widget"),
	}
	r.Declaration.WriteString(decl)
	r.Implementation.WriteString(impl)
	r.Binding.WriteString(hs)
	return r
}

func TestWriter_Write(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, "/gen")

	paths, err := w.Write(widgetResult("decl\n", "impl\n", "hs\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A/B/Widget.hpp", "A/B/Widget.cpp", "A/B/Widget.hs"}, paths)

	for path, want := range map[string]string{
		"/gen/A/B/Widget.hpp": "decl\n",
		"/gen/A/B/Widget.cpp": "impl\n",
		"/gen/A/B/Widget.hs":  "hs\n",
	} {
		got, err := afero.ReadFile(fs, path)
		require.NoError(t, err, path)
		assert.Equal(t, want, string(got), path)
	}
	assert.Len(t, w.Written(), 3)
	assert.Empty(t, w.Unchanged())
}

func TestWriter_SkipsUnchanged(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/gen/A/B/Widget.hpp", []byte("decl\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/gen/A/B/Widget.hs", []byte("old\n"), 0644))

	w := NewWriter(fs, "/gen")
	_, err := w.Write(widgetResult("decl\n", "impl\n", "hs\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"A/B/Widget.hpp"}, w.Unchanged())
	assert.Equal(t, []string{"A/B/Widget.cpp", "A/B/Widget.hs"}, w.Written())

	got, err := afero.ReadFile(fs, "/gen/A/B/Widget.hs")
	require.NoError(t, err)
	assert.Equal(t, "hs\n", string(got))
}

func TestWriter_ReadOnlyFs(t *testing.T) {
	w := NewWriter(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/gen")
	_, err := w.Write(widgetResult("d", "i", "h"))
	assert.Error(t, err)
}

func TestWriter_RefusesEmptyResult(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, "/gen")

	_, err := w.Write(widgetResult("", "", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.b.Widget")

	exists, err := afero.DirExists(fs, "/gen/A/B")
	require.NoError(t, err)
	assert.False(t, exists, "nothing is created for an empty result")
	assert.Empty(t, w.Written())
}

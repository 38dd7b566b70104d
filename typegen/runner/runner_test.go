package runner

import (
	"context"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/hsuno/errors"
	"github.com/teranos/hsuno/typegen"
	"github.com/teranos/hsuno/typegen/emit"
	"github.com/teranos/hsuno/typegen/output"
	"github.com/teranos/hsuno/unoidl"
)

type memSink struct {
	mu      sync.Mutex
	results map[string]*typegen.Result
}

func (s *memSink) Write(r *typegen.Result) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.results == nil {
		s.results = make(map[string]*typegen.Result)
	}
	s.results[r.Entity] = r
	return []string{r.Entity}, nil
}

func iface(module, name string, methods ...unoidl.Method) *unoidl.Entity {
	return &unoidl.Entity{
		Name:      name,
		Module:    unoidl.MustParseModulePath(module),
		Kind:      unoidl.KindInterface,
		Interface: &unoidl.InterfaceEntity{Methods: methods},
	}
}

func testEntities() []*unoidl.Entity {
	return []*unoidl.Entity{
		iface("a.b", "Widget", unoidl.Method{Name: "getCount", ReturnType: unoidl.T("long")}),
		iface("a.b", "Broken", unoidl.Method{Name: "f", ReturnType: unoidl.T("bad type")}),
		{
			Name:      "theService",
			Module:    unoidl.MustParseModulePath("a.b"),
			Kind:      unoidl.KindServiceSingleton,
			Singleton: &unoidl.SingletonEntity{Base: "a.b.WidgetService"},
		},
		iface("c", "Gadget", unoidl.Method{Name: "reset", ReturnType: unoidl.Void}),
	}
}

func TestRun_IsolatesFailures(t *testing.T) {
	entities := testEntities()
	idx, err := unoidl.NewIndex(entities...)
	require.NoError(t, err)

	sink := &memSink{}
	report, err := Run(context.Background(), emit.NewContext(typegen.DefaultOptions(), idx), entities, sink, Config{Workers: 2})
	require.NoError(t, err)

	require.Len(t, report.Entities, 4)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "a.b.Widget", report.Entities[0].Entity)
	assert.Equal(t, "c.Gadget", report.Entities[3].Entity)

	assert.Len(t, report.Succeeded(), 2)
	require.Len(t, report.Skipped(), 1)
	assert.Equal(t, "a.b.theService", report.Skipped()[0].Entity)
	require.Len(t, report.Failed(), 1)
	assert.Equal(t, "a.b.Broken", report.Failed()[0].Entity)

	require.Error(t, report.Err())
	assert.True(t, errors.Is(report.Err(), errors.ErrUnknownType))
	assert.False(t, errors.IsNotImplemented(report.Err()))

	assert.Contains(t, sink.results, "a.b.Widget")
	assert.Contains(t, sink.results, "c.Gadget")
	assert.NotContains(t, sink.results, "a.b.Broken")
	assert.NotContains(t, sink.results, "a.b.theService")
}

func TestRun_SameOutputAnyWorkerCount(t *testing.T) {
	var entities []*unoidl.Entity
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		entities = append(entities, iface("m", name,
			unoidl.Method{Name: "get", ReturnType: unoidl.T("string")},
			unoidl.Method{Name: "set", ReturnType: unoidl.Void, Parameters: []unoidl.Parameter{
				{Name: "v", Type: unoidl.T("hyper")},
			}}))
	}
	idx, err := unoidl.NewIndex(entities...)
	require.NoError(t, err)
	ectx := emit.NewContext(typegen.DefaultOptions(), idx)

	serial := &memSink{}
	_, err = Run(context.Background(), ectx, entities, serial, Config{Workers: 1})
	require.NoError(t, err)

	parallel := &memSink{}
	_, err = Run(context.Background(), ectx, entities, parallel, Config{Workers: 8})
	require.NoError(t, err)

	require.Len(t, parallel.results, len(entities))
	for name, r := range serial.results {
		for _, a := range typegen.AllArtifacts {
			assert.Equal(t, r.Text(a), parallel.results[name].Text(a), name)
		}
	}
}

func TestRun_WritesThroughOutputWriter(t *testing.T) {
	entities := testEntities()
	idx, err := unoidl.NewIndex(entities...)
	require.NoError(t, err)

	fs := afero.NewMemMapFs()
	w := output.NewWriter(fs, "/gen")

	var mu sync.Mutex
	var seen []string
	cfg := Config{Workers: 3, RunID: "run-1", OnEntity: func(r EntityReport) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, r.Entity)
	}}

	report, err := Run(context.Background(), emit.NewContext(typegen.DefaultOptions(), idx), entities, w, cfg)
	require.NoError(t, err)
	assert.Equal(t, "run-1", report.RunID)
	assert.Len(t, seen, 4)

	for _, path := range []string{"/gen/A/B/Widget.hpp", "/gen/A/B/Widget.cpp", "/gen/A/B/Widget.hs", "/gen/C/Gadget.hs"} {
		exists, err := afero.Exists(fs, path)
		require.NoError(t, err)
		assert.True(t, exists, path)
	}
	for _, path := range []string{"/gen/A/B/Broken.hpp", "/gen/A/B/theService.hpp"} {
		exists, err := afero.Exists(fs, path)
		require.NoError(t, err)
		assert.False(t, exists, path)
	}
	assert.Equal(t, []string{"A/B/Widget.hpp", "A/B/Widget.cpp", "A/B/Widget.hs"}, report.Entities[0].Files)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, emit.NewContext(typegen.DefaultOptions(), nil), testEntities(), &memSink{}, Config{Workers: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

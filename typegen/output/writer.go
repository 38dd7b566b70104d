// Package output places generated artifacts on a file system: each entity's
// three files go to <root>/<GeneratedDir>/<name><ext>.
package output

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/afero"

	"github.com/teranos/hsuno/errors"
	"github.com/teranos/hsuno/logger"
	"github.com/teranos/hsuno/typegen"
)

// Status is what happened to one file
type Status int

const (
	// StatusWritten means the file was created or its content changed
	StatusWritten Status = iota
	// StatusUnchanged means the file already had the generated content and was left alone
	StatusUnchanged
)

// Writer writes results below a root directory. It is safe for concurrent
// use; distinct entities map to distinct files, so writers never contend on a file.
type Writer struct {
	fs   afero.Fs
	root string

	mu        sync.Mutex
	written   []string
	unchanged []string
}

// NewWriter creates a writer rooted at root
func NewWriter(fs afero.Fs, root string) *Writer {
	return &Writer{fs: fs, root: root}
}

// Root returns the output root directory
func (w *Writer) Root() string {
	return w.root
}

// Write stores the three artifacts of r and returns their paths relative to
// the root, in declaration, implementation, binding order. Files whose
// content is already up to date are not rewritten.
func (w *Writer) Write(r *typegen.Result) ([]string, error) {
	if r.Empty() {
		return nil, errors.AssertionFailedf("entity %s produced no artifacts", r.Entity)
	}

	dir := filepath.Join(w.root, filepath.FromSlash(r.Names.GeneratedDir))
	if err := w.fs.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", dir)
	}

	paths := make([]string, 0, len(typegen.AllArtifacts))
	for _, a := range typegen.AllArtifacts {
		rel := r.Names.FilePath(r.Names.Files.File(a))
		status, err := w.writeFile(filepath.Join(w.root, filepath.FromSlash(rel)), []byte(r.Text(a)))
		if err != nil {
			return nil, err
		}
		w.record(rel, status)
		paths = append(paths, rel)
	}

	logger.Debugw("Wrote entity artifacts",
		logger.FieldEntity, r.Entity,
		logger.FieldOutput, dir)
	return paths, nil
}

func (w *Writer) writeFile(path string, content []byte) (Status, error) {
	existing, err := afero.ReadFile(w.fs, path)
	if err == nil && bytes.Equal(existing, content) {
		return StatusUnchanged, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return 0, errors.Wrapf(err, "failed to read %s", path)
	}
	if err := afero.WriteFile(w.fs, path, content, 0644); err != nil {
		return 0, errors.Wrapf(err, "failed to write %s", path)
	}
	return StatusWritten, nil
}

func (w *Writer) record(rel string, status Status) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if status == StatusWritten {
		w.written = append(w.written, rel)
	} else {
		w.unchanged = append(w.unchanged, rel)
	}
}

// Written returns the relative paths written so far, sorted
func (w *Writer) Written() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := append([]string(nil), w.written...)
	sort.Strings(out)
	return out
}

// Unchanged returns the relative paths left untouched so far, sorted
func (w *Writer) Unchanged() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := append([]string(nil), w.unchanged...)
	sort.Strings(out)
	return out
}

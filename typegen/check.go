package typegen

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/teranos/hsuno/errors"
)

// CheckResult holds the result of an up-to-date check of a generated tree
type CheckResult struct {
	UpToDate bool
	// Differences are files present in both trees with different content
	Differences []string
	// Missing are files a fresh generation produces that the existing tree lacks
	Missing []string
	// Stale are generated-looking files in the existing tree that a fresh generation no longer produces
	Stale []string
}

// Err returns nil when the tree is up to date, ErrOutOfDate otherwise
func (r *CheckResult) Err() error {
	if r.UpToDate {
		return nil
	}
	return errors.WithDetailf(errors.ErrOutOfDate,
		"%d changed, %d missing, %d stale", len(r.Differences), len(r.Missing), len(r.Stale))
}

// CompareDirectories compares a freshly generated tree with an existing one.
// Paths in the result are relative to the tree roots, slash-separated.
//
// Only files carrying one of the artifact extensions in opts count as stale,
// so hand-written files living next to the generated ones are left alone.
func CompareDirectories(fs afero.Fs, freshDir, existingDir string, opts Options) (*CheckResult, error) {
	result := &CheckResult{}

	fresh, err := listFiles(fs, freshDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", freshDir)
	}
	existing, err := listFiles(fs, existingDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", existingDir)
	}

	for rel := range fresh {
		if !existing[rel] {
			result.Missing = append(result.Missing, rel)
			continue
		}
		different, err := filesAreDifferent(fs,
			filepath.Join(freshDir, filepath.FromSlash(rel)),
			filepath.Join(existingDir, filepath.FromSlash(rel)))
		if err != nil {
			return nil, err
		}
		if different {
			result.Differences = append(result.Differences, rel)
		}
	}

	artifactExt := map[string]bool{
		opts.HeaderExtension:  true,
		opts.SourceExtension:  true,
		opts.BindingExtension: true,
	}
	for rel := range existing {
		if !fresh[rel] && artifactExt[filepath.Ext(rel)] {
			result.Stale = append(result.Stale, rel)
		}
	}

	sort.Strings(result.Differences)
	sort.Strings(result.Missing)
	sort.Strings(result.Stale)
	result.UpToDate = len(result.Differences) == 0 && len(result.Missing) == 0 && len(result.Stale) == 0
	return result, nil
}

// listFiles returns the slash-separated relative paths of all regular files under dir.
// A directory that does not exist yields an empty set.
func listFiles(fs afero.Fs, dir string) (map[string]bool, error) {
	files := make(map[string]bool)
	if _, err := fs.Stat(dir); os.IsNotExist(err) {
		return files, nil
	}
	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = true
		return nil
	})
	return files, err
}

// filesAreDifferent compares two files byte for byte
func filesAreDifferent(fs afero.Fs, file1, file2 string) (bool, error) {
	content1, err := afero.ReadFile(fs, file1)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", file1)
	}
	content2, err := afero.ReadFile(fs, file2)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", file2)
	}
	return !bytes.Equal(content1, content2), nil
}

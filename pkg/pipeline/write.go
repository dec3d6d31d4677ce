package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pyrolayout/boardplan/pkg/errors"
)

// WriteArtifacts writes every artifact of res into dir and returns the
// written paths in format order. All artifacts are staged as temp files in
// dir first and renamed into place only once every one of them was written.
func WriteArtifacts(dir string, res *Result) ([]string, error) {
	if err := errors.ValidateOutputDir(dir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	phased := res.Phase != 0
	type staged struct{ tmp, path string }
	var files []staged
	cleanup := func() {
		for _, f := range files {
			os.Remove(f.tmp)
		}
	}

	for _, format := range sortedFormats(res.Artifacts) {
		path := filepath.Join(dir, OutputName(format, phased))
		tmp, err := writeTemp(dir, res.Artifacts[format])
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		files = append(files, staged{tmp: tmp, path: path})
	}

	paths := make([]string, 0, len(files))
	for i, f := range files {
		if err := os.Rename(f.tmp, f.path); err != nil {
			for _, rest := range files[i:] {
				os.Remove(rest.tmp)
			}
			return paths, fmt.Errorf("rename %s: %w", f.path, err)
		}
		paths = append(paths, f.path)
	}
	return paths, nil
}

// writeTemp writes data to a synced temp file in dir and returns its name.
func writeTemp(dir string, data []byte) (string, error) {
	tmp, err := os.CreateTemp(dir, ".boardplan-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	name := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(name)
		return "", fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	return name, nil
}

// workspace.go — source file discovery and the optional workspace manifest.
//
// A workspace is a directory of ".ta" source files with an optional
// "tortuga.yaml" manifest at its root. The manifest can name the workspace,
// pick an entry file, and add extra directories to scan. A directory without
// a manifest is still a valid workspace; it takes its name from the
// directory.
package tortuga

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ManifestFile is the workspace manifest's file name.
	ManifestFile = "tortuga.yaml"
	// SourceExtension is the extension of source files.
	SourceExtension = ".ta"
)

// Manifest is the parsed workspace manifest.
type Manifest struct {
	// Name of the workspace; defaults to the root directory's base name.
	Name string `yaml:"name"`
	// Version is an informational version string.
	Version string `yaml:"version,omitempty"`
	// Entry is the main source file, relative to the workspace root.
	Entry string `yaml:"entry,omitempty"`
	// Include lists extra directories to scan for sources, relative to the
	// workspace root.
	Include []string `yaml:"include,omitempty"`
}

// Workspace is an opened source directory.
type Workspace struct {
	root     string
	manifest Manifest
}

// OpenWorkspace opens root as a workspace, reading its manifest when one
// exists.
func OpenWorkspace(root string) (*Workspace, error) {
	absolute, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	workspace := &Workspace{root: absolute}

	data, err := os.ReadFile(filepath.Join(absolute, ManifestFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &workspace.manifest); err != nil {
			return nil, fmt.Errorf("%s: %w", ManifestFile, err)
		}
	}

	if workspace.manifest.Name == "" {
		workspace.manifest.Name = filepath.Base(absolute)
	}

	return workspace, nil
}

// Root returns the workspace's absolute root directory.
func (w *Workspace) Root() string { return w.root }

// Manifest returns the manifest, with defaults applied.
func (w *Workspace) Manifest() Manifest { return w.manifest }

// Entry resolves the manifest's entry file; ok is false when none is set.
func (w *Workspace) Entry() (string, bool) {
	if w.manifest.Entry == "" {
		return "", false
	}
	return filepath.Join(w.root, w.manifest.Entry), true
}

// Sources lists every source file under the root and the manifest's include
// directories, sorted and deduplicated. Dot-directories and dot-files are
// skipped.
func (w *Workspace) Sources() ([]string, error) {
	directories := []string{w.root}
	for _, include := range w.manifest.Include {
		directories = append(directories, filepath.Join(w.root, include))
	}

	seen := make(map[string]bool)
	var sources []string

	for _, directory := range directories {
		err := filepath.WalkDir(directory, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			name := entry.Name()
			if entry.IsDir() {
				if path != directory && strings.HasPrefix(name, ".") {
					return filepath.SkipDir
				}
				return nil
			}

			if strings.HasPrefix(name, ".") || filepath.Ext(name) != SourceExtension {
				return nil
			}
			if !seen[path] {
				seen[path] = true
				sources = append(sources, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(sources)
	return sources, nil
}

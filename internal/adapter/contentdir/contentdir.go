// Package contentdir reads and writes the curated content directory: one
// subdirectory per category, each holding JSON array files. Definitions
// are aggregated per source file; sentences and similar words are stored
// per word; templates per context; distractor pools per key (a word or a
// context_word composite). The file base name is the map key.
package contentdir

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

// Category subdirectory names under the content root.
const (
	DefinitionsDir = "definitions"
	SentencesDir   = "sentences"
	SimilarDir     = "similar"
	TemplatesDir   = "templates"
	DistractorsDir = "distractors"
)

// Dir is a content directory rooted at a single path.
type Dir struct {
	root string
}

// New creates a Dir rooted at the given path. The path is not touched
// until EnsureLayout or a read/write call.
func New(root string) *Dir {
	return &Dir{root: root}
}

// Root returns the content root path.
func (d *Dir) Root() string { return d.root }

// CategoryDirs returns the absolute paths of all category directories.
func (d *Dir) CategoryDirs() []string {
	names := []string{DefinitionsDir, SentencesDir, SimilarDir, TemplatesDir, DistractorsDir}
	dirs := make([]string, len(names))
	for i, n := range names {
		dirs[i] = filepath.Join(d.root, n)
	}
	return dirs
}

// EnsureLayout creates the content root and every category directory.
// Missing directories are treated as empty data sets, so this never
// invents content; it only makes the layout uniform for later writes.
func (d *Dir) EnsureLayout() error {
	for _, dir := range d.CategoryDirs() {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create category dir %s: %w", dir, err)
		}
	}
	return nil
}

// ReadDefinitions reads every definitions source file.
// The map key is the source file base name without the .json extension.
func (d *Dir) ReadDefinitions() (map[string][]domain.Definition, error) {
	return readCategory[domain.Definition](filepath.Join(d.root, DefinitionsDir))
}

// ReadSentences reads per-word sentence example files.
func (d *Dir) ReadSentences() (map[string][]domain.SentenceExample, error) {
	return readCategory[domain.SentenceExample](filepath.Join(d.root, SentencesDir))
}

// ReadSimilar reads per-word similar word files.
func (d *Dir) ReadSimilar() (map[string][]domain.SimilarWord, error) {
	return readCategory[domain.SimilarWord](filepath.Join(d.root, SimilarDir))
}

// ReadTemplates reads per-context exercise template files.
func (d *Dir) ReadTemplates() (map[string][]domain.ExerciseTemplate, error) {
	return readCategory[domain.ExerciseTemplate](filepath.Join(d.root, TemplatesDir))
}

// ReadDistractors reads distractor pool files. Keys are either a plain
// word or a context_word composite; the store resolves precedence.
func (d *Dir) ReadDistractors() (map[string][]string, error) {
	return readCategory[string](filepath.Join(d.root, DistractorsDir))
}

// WriteDefinitions replaces one definitions source file with the given
// entries. An empty slice removes the file.
func (d *Dir) WriteDefinitions(source string, defs []domain.Definition) error {
	return writeCategoryFile(filepath.Join(d.root, DefinitionsDir, source+".json"), defs)
}

// WriteSentences replaces one word's sentence example file.
// An empty slice removes the file.
func (d *Dir) WriteSentences(word string, examples []domain.SentenceExample) error {
	return writeCategoryFile(filepath.Join(d.root, SentencesDir, word+".json"), examples)
}

// readCategory decodes every *.json file in dir into a slice of T.
// A missing directory is an empty data set. A malformed file fails the
// whole read; the error names the offending path.
func readCategory[T any](dir string) (map[string][]T, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]T{}, nil
		}
		return nil, fmt.Errorf("read category dir %s: %w", dir, err)
	}

	out := make(map[string][]T, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		out[strings.TrimSuffix(name, ".json")] = items
	}
	return out, nil
}

// writeCategoryFile writes items as an indented JSON array, atomically:
// the payload goes to a temp file in the same directory, then replaces
// the target via rename. An empty item set removes the file instead.
func writeCategoryFile[T any](path string, items []T) error {
	if len(items) == 0 {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", path, err)
		}
		return nil
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s to %s: %w", tmpName, path, err)
	}
	return nil
}

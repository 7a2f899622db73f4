package level

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

//go:embed campaign/*.yaml
var campaignFS embed.FS

var fileNamePattern = regexp.MustCompile(`^level_(\d+)\.(yaml|yml|json)$`)

// Loader finds level_<n> documents in a directory or embedded tree.
type Loader struct {
	Root string
	fsys fs.FS
	disk bool
}

// Entry is one level file found by List.
type Entry struct {
	Number     int
	File       string
	Definition *Definition
	Err        error
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root), disk: true}
}

// Embedded returns a loader over the built-in campaign.
func Embedded() *Loader {
	sub, err := fs.Sub(campaignFS, "campaign")
	if err != nil {
		panic(fmt.Sprintf("level: embedded campaign: %v", err))
	}
	return &Loader{Root: "embedded", fsys: sub}
}

// Load parses and validates level number n.
func (l *Loader) Load(n int) (*Definition, error) {
	name, err := l.find(n)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", name, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return def, nil
}

// Path returns the on-disk path of level n. Embedded levels have none.
func (l *Loader) Path(n int) (string, bool) {
	if !l.disk {
		return "", false
	}
	name, err := l.find(n)
	if err != nil {
		return "", false
	}
	return filepath.Join(l.Root, filepath.FromSlash(name)), true
}

// OnDisk reports whether the loader reads from a real directory.
func (l *Loader) OnDisk() bool {
	return l.disk
}

// Count returns how many consecutive levels exist starting at 1.
func (l *Loader) Count() int {
	n := 0
	for {
		if _, err := l.find(n + 1); err != nil {
			return n
		}
		n++
	}
}

// List parses every level file, sorted by number. Files that fail to
// parse or validate are returned with Err set rather than skipped.
func (l *Loader) List() ([]Entry, error) {
	files, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("level: list %s: %w", l.Root, err)
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		n, ok := levelNumber(f.Name())
		if !ok {
			continue
		}
		e := Entry{Number: n, File: f.Name()}
		data, err := fs.ReadFile(l.fsys, f.Name())
		if err != nil {
			e.Err = err
		} else if e.Definition, e.Err = Parse(data); e.Err == nil {
			e.Err = e.Definition.Validate()
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Number != entries[j].Number {
			return entries[i].Number < entries[j].Number
		}
		return entries[i].File < entries[j].File
	})
	return entries, nil
}

func (l *Loader) find(n int) (string, error) {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		name := fmt.Sprintf("level_%d%s", n, ext)
		if _, err := fs.Stat(l.fsys, name); err == nil {
			return name, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("level: stat %s: %w", name, err)
		}
	}
	return "", fmt.Errorf("%w: level %d in %s", ErrNotFound, n, l.Root)
}

func levelNumber(name string) (int, bool) {
	m := fileNamePattern.FindStringSubmatch(strings.ToLower(path.Base(name)))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsLevelFile reports whether name looks like a level document.
func IsLevelFile(name string) bool {
	_, ok := levelNumber(name)
	return ok
}

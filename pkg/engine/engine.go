// Package engine keeps the set of font faces known to a process.
//
// Fonts are registered from individual files or by scanning directories.
// Every face found in a file is parsed with sfnt and recorded under its
// "family style" name; the first file to provide a name keeps it.
package engine

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/jmgilman/go/errors"
	"go.uber.org/zap"
)

// Face describes a single registered font face
type Face struct {
	Name   string // Registered name: family and style joined by a space
	Family string // Family name from the name table
	Style  string // Subfamily name from the name table, may be empty
	Path   string // File the face was read from
	Index  int    // Face index inside a collection file
}

// Engine owns the registry of font faces.
// It is safe for concurrent use.
type Engine struct {
	mu    sync.RWMutex
	faces map[string]Face

	fs      billy.Filesystem
	resolve func(string) (string, error)
	log     *zap.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithFilesystem reads fonts from fs instead of the local disk.
// Paths are used as given, only cleaned.
func WithFilesystem(fs billy.Filesystem) Option {
	return func(e *Engine) {
		e.fs = fs
		e.resolve = func(p string) (string, error) {
			return filepath.Clean(p), nil
		}
	}
}

// WithLogger sets the logger used for registration events.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New creates an empty engine reading from the local filesystem.
func New(opts ...Option) *Engine {
	e := &Engine{
		faces:   make(map[string]Face),
		fs:      osfs.New("/"),
		resolve: filepath.Abs,
		log:     Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RegisterFont registers every face found in the font file at path.
// It reports whether at least one face was found.
func (e *Engine) RegisterFont(path string) (bool, error) {
	name, err := e.resolve(path)
	if err != nil {
		return false, errors.Wrapf(err, errors.CodeInvalidInput, "resolving font path %q", path)
	}

	info, err := e.fs.Stat(name)
	if err != nil {
		return false, statError(err, path)
	}
	if info.IsDir() {
		return false, errors.Newf(errors.CodeInvalidInput, "font path %q is a directory", path)
	}

	return e.registerFile(name)
}

// RegisterFonts registers the font files inside dir. Subdirectories are
// scanned only when recurse is true. A path naming a regular file is
// registered as a single font.
//
// Files that fail to parse are logged and skipped. The result reports
// whether any file provided at least one face.
func (e *Engine) RegisterFonts(dir string, recurse bool) (bool, error) {
	name, err := e.resolve(dir)
	if err != nil {
		return false, errors.Wrapf(err, errors.CodeInvalidInput, "resolving font directory %q", dir)
	}

	info, err := e.fs.Stat(name)
	if err != nil {
		return false, statError(err, dir)
	}
	if !info.IsDir() {
		return e.registerFile(name)
	}

	return e.registerDir(name, recurse, []os.FileInfo{info})
}

// maxDirDepth bounds recursion on filesystems whose file info cannot be
// compared with os.SameFile.
const maxDirDepth = 40

// registerDir scans dir. ancestors holds the directories on the path from
// the scan root, used to stop at symlink loops.
func (e *Engine) registerDir(dir string, recurse bool, ancestors []os.FileInfo) (bool, error) {
	entries, err := e.fs.ReadDir(dir)
	if err != nil {
		return false, errors.Wrapf(err, errors.CodeNotFound, "reading font directory %q", dir)
	}

	found := false
	for _, entry := range entries {
		if isHidden(entry.Name()) {
			continue
		}
		path := e.fs.Join(dir, entry.Name())

		info := entry
		if entry.Mode()&os.ModeSymlink != 0 {
			info, err = e.fs.Stat(path)
			if err != nil {
				e.log.Warn("skipping broken font link", zap.String("path", path), zap.Error(err))
				continue
			}
		}

		if info.IsDir() {
			if !recurse {
				continue
			}
			if isAncestor(info, ancestors) || len(ancestors) >= maxDirDepth {
				e.log.Warn("skipping font directory loop", zap.String("path", path))
				continue
			}
			ok, err := e.registerDir(path, true, append(ancestors, info))
			if err != nil {
				e.log.Warn("skipping font directory", zap.String("path", path), zap.Error(err))
				continue
			}
			found = found || ok
			continue
		}

		if !info.Mode().IsRegular() || !isFontFile(entry.Name()) {
			continue
		}

		ok, err := e.registerFile(path)
		if err != nil {
			e.log.Warn("skipping font file", zap.String("path", path), zap.Error(err))
			continue
		}
		found = found || ok
	}

	return found, nil
}

func isAncestor(info os.FileInfo, ancestors []os.FileInfo) bool {
	for _, a := range ancestors {
		if os.SameFile(info, a) {
			return true
		}
	}
	return false
}

func (e *Engine) registerFile(path string) (bool, error) {
	data, err := util.ReadFile(e.fs, path)
	if err != nil {
		return false, statError(err, path)
	}

	faces, err := parseFaces(path, data)
	if err != nil {
		return false, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, face := range faces {
		if existing, ok := e.faces[face.Name]; ok {
			e.log.Debug("font face already registered",
				zap.String("face", face.Name),
				zap.String("path", path),
				zap.String("registered_path", existing.Path))
			continue
		}
		e.faces[face.Name] = face
		e.log.Debug("registered font face",
			zap.String("face", face.Name),
			zap.String("path", path),
			zap.Int("index", face.Index))
	}

	return len(faces) > 0, nil
}

// FaceNames returns the registered face names in ascending order.
// The slice is a copy owned by the caller.
func (e *Engine) FaceNames() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.faces))
	for name := range e.faces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the face registered under name.
func (e *Engine) Lookup(name string) (Face, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	face, ok := e.faces[name]
	return face, ok
}

// Mapping returns a copy of the name to face table.
func (e *Engine) Mapping() map[string]Face {
	e.mu.RLock()
	defer e.mu.RUnlock()

	mapping := make(map[string]Face, len(e.faces))
	for name, face := range e.faces {
		mapping[name] = face
	}
	return mapping
}

func statError(err error, path string) error {
	if os.IsNotExist(err) {
		return errors.Wrapf(err, errors.CodeNotFound, "font path %q does not exist", path)
	}
	return errors.Wrapf(err, errors.CodeNotFound, "opening font path %q", path)
}

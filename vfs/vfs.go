// Package vfs provides access to the files of an unpacked game.
//
// Paths are slash separated and relative to the root of the game data, as
// they appear in scenes and tapes.
package vfs

import (
	"bytes"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
)

// FileSystem opens files by path.
type FileSystem interface {
	Open(name string) (io.ReadCloser, error)
}

// Lister is implemented by file systems that can enumerate their files.
type Lister interface {
	// List returns the paths of the files below dir whose name ends with
	// suffix, sorted.
	List(dir, suffix string) ([]string, error)
}

// ErrOutsideRoot indicates a path that leaves the root of a file system.
var ErrOutsideRoot = errors.New("path leaves the root")

// Clean returns the canonical form of name, or ErrOutsideRoot.
func Clean(name string) (string, error) {
	name = path.Clean("/" + strings.ReplaceAll(name, "\\", "/"))[1:]
	if name == "" {
		return "", errors.Wrapf(ErrOutsideRoot, "empty path")
	}
	return name, nil
}

// CookPath returns the path of the cooked form of a file, as shipped for
// the release.
func CookPath(r ubiart.Release, name string) string {
	name, _ = Clean(name)
	return path.Join("cache/itf_cooked", r.Platform(), name) + ".ckd"
}

// ReadFile reads the whole of a file.
func ReadFile(fs FileSystem, name string) ([]byte, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return b, nil
}

// OpenCooked opens the cooked form of a file for the release.
func OpenCooked(fs FileSystem, r ubiart.Release, name string) (io.ReadCloser, error) {
	return fs.Open(CookPath(r, name))
}

////////////////////////////////////////////////////////////////

// Dir is a FileSystem backed by a directory of the host.
type Dir string

func (d Dir) path(name string) (string, error) {
	name, err := Clean(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(string(d), filepath.FromSlash(name)), nil
}

func (d Dir) Open(name string) (io.ReadCloser, error) {
	p, err := d.path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", name)
	}
	return f, nil
}

func (d Dir) List(dir, suffix string) ([]string, error) {
	root := string(d)
	if dir != "" && dir != "." {
		var err error
		if root, err = d.path(dir); err != nil {
			return nil, err
		}
	}
	var list []string
	err := filepath.WalkDir(root, func(p string, e os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			return nil
		}
		rel, err := filepath.Rel(string(d), p)
		if err != nil {
			return err
		}
		list = append(list, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", dir)
	}
	sort.Strings(list)
	return list, nil
}

////////////////////////////////////////////////////////////////

// Map is an in-memory FileSystem, keyed by clean path.
type Map map[string][]byte

func (m Map) Open(name string) (io.ReadCloser, error) {
	name, err := Clean(name)
	if err != nil {
		return nil, err
	}
	b, ok := m[name]
	if !ok {
		return nil, errors.Wrapf(os.ErrNotExist, "open %s", name)
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (m Map) List(dir, suffix string) ([]string, error) {
	prefix := ""
	if dir != "" && dir != "." {
		d, err := Clean(dir)
		if err != nil {
			return nil, err
		}
		prefix = d + "/"
	}
	var list []string
	for name := range m {
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, suffix) {
			list = append(list, name)
		}
	}
	sort.Strings(list)
	return list, nil
}

// Package assets serves the portal's static files and fingerprints their URLs
// so browsers can cache them forever.
package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/nfrund/gstportal/web"
	"github.com/spf13/afero"
)

// Prefix is the URL path the assets are mounted under.
const Prefix = "/static/"

const hashLen = 10

// Assets is a fingerprinted view over a static file tree.
type Assets struct {
	fs     afero.Fs
	dir    string
	logger *slog.Logger

	mu     sync.RWMutex
	hashes map[string]string
}

// Embedded returns the static files compiled into the binary.
func Embedded() (afero.Fs, error) {
	sub, err := fs.Sub(web.FS, "static")
	if err != nil {
		return nil, fmt.Errorf("embedded static dir: %w", err)
	}
	return afero.FromIOFS{FS: sub}, nil
}

// Dir returns a read-only filesystem rooted at dir on disk.
func Dir(dir string) afero.Fs {
	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

// New builds the asset set from the embedded files, or from dir when it is
// non-empty.
func New(dir string, logger *slog.Logger) (*Assets, error) {
	var (
		fsys afero.Fs
		err  error
	)
	if dir == "" {
		fsys, err = Embedded()
		if err != nil {
			return nil, err
		}
	} else {
		info, statErr := os.Stat(dir)
		if statErr != nil {
			return nil, fmt.Errorf("static dir: %w", statErr)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("static dir %q is not a directory", dir)
		}
		fsys = Dir(dir)
	}
	a := NewFromFs(fsys, logger)
	a.dir = dir
	if err := a.Refresh(); err != nil {
		return nil, err
	}
	return a, nil
}

// NewFromFs wraps fsys without hashing it. Call Refresh before use.
func NewFromFs(fsys afero.Fs, logger *slog.Logger) *Assets {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assets{fs: fsys, logger: logger, hashes: map[string]string{}}
}

// Refresh recomputes the fingerprint of every file.
func (a *Assets) Refresh() error {
	hashes := make(map[string]string)
	err := afero.Walk(a.fs, ".", func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		data, err := afero.ReadFile(a.fs, p)
		if err != nil {
			return err
		}
		sum := sha256.Sum256(data)
		hashes[normalize(p)] = hex.EncodeToString(sum[:])[:hashLen]
		return nil
	})
	if err != nil {
		return fmt.Errorf("hash static assets: %w", err)
	}

	a.mu.Lock()
	a.hashes = hashes
	a.mu.Unlock()
	a.logger.Debug("Static assets fingerprinted", "files", len(hashes))
	return nil
}

// Path returns the public URL of name with its fingerprint appended.
// Unknown names are returned without a version.
func (a *Assets) Path(name string) string {
	name = normalize(name)
	a.mu.RLock()
	hash, ok := a.hashes[name]
	a.mu.RUnlock()
	if !ok {
		return Prefix + name
	}
	return Prefix + name + "?v=" + hash
}

// Files lists the fingerprinted file names.
func (a *Assets) Files() map[string]string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make(map[string]string, len(a.hashes))
	for k, v := range a.hashes {
		out[k] = v
	}
	return out
}

// Handler serves the files under Prefix. Versioned requests are cached for a year.
func (a *Assets) Handler() http.Handler {
	files := http.FileServer(afero.NewHttpFs(a.fs).Dir("."))
	return http.StripPrefix(Prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("v") != "" {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			w.Header().Set("Cache-Control", "no-cache")
		}
		files.ServeHTTP(w, r)
	}))
}

func normalize(name string) string {
	return strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(name, "\\", "/")), "/")
}

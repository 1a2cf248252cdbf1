// internal/adapters/storage/local.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// maxUploadBytes caps a single stored object.
const maxUploadBytes = 5 << 20

var ErrTooLarge = errors.New("file is larger than 5 MB")

// LocalStore writes objects under a root directory and returns the public
// URL path they are served from.
type LocalStore struct {
	root      string
	urlPrefix string
}

func NewLocalStore(root, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{root: root, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

func (s *LocalStore) Root() string { return s.root }

func (s *LocalStore) Upload(ctx context.Context, name, contentType string, body io.Reader) (string, error) {
	clean := path.Clean("/" + name)
	if clean == "/" {
		return "", fmt.Errorf("invalid object name %q", name)
	}
	dst := filepath.Join(s.root, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, io.LimitReader(body, maxUploadBytes+1))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", err
	}
	if n > maxUploadBytes {
		return "", ErrTooLarge
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", err
	}
	return s.urlPrefix + clean, nil
}

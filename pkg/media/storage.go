package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const maxNameAttempts = 100

// Storage persists uploaded files and returns their name relative to the
// media root, always with forward slashes.
type Storage interface {
	Save(ctx context.Context, dir, filename string, content io.Reader) (string, error)
}

// LocalStorage keeps files on the local filesystem under Root.
type LocalStorage struct {
	Root string
}

func NewLocalStorage(root string) *LocalStorage {
	return &LocalStorage{Root: root}
}

// Save writes content to dir/filename. An existing file is never
// overwritten; a random suffix is appended to the name instead.
func (s *LocalStorage) Save(_ context.Context, dir, filename string, content io.Reader) (string, error) {
	name := path.Join(dir, ValidFilename(filename))

	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		candidate := name
		if attempt > 0 {
			candidate = withSuffix(name, uuid.NewString()[:7])
		}

		full := filepath.Join(s.Root, filepath.FromSlash(candidate))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return "", fmt.Errorf("create media directory: %w", err)
		}

		f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create media file: %w", err)
		}

		_, err = io.Copy(f, content)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			_ = os.Remove(full)
			return "", fmt.Errorf("write media file: %w", err)
		}

		return candidate, nil
	}

	return "", fmt.Errorf("no free file name for %s", name)
}

var invalidFilenameChars = regexp.MustCompile(`[^-\p{L}\p{N}_.]`)

// ValidFilename strips directories and anything that is not a letter,
// digit, dash, underscore or dot. Spaces become underscores.
func ValidFilename(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	name = invalidFilenameChars.ReplaceAllString(name, "")
	if name == "" || name == "." || name == ".." {
		return "upload"
	}
	return name
}

func withSuffix(name, suffix string) string {
	ext := path.Ext(name)
	return strings.TrimSuffix(name, ext) + "_" + suffix + ext
}

package assets

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Kind selects which asset subdirectory a file belongs to.
type Kind string

const (
	KindLogo       Kind = "uploads"
	KindBackground Kind = "backgrounds"
	KindAudio      Kind = "audio"
)

// ErrInvalidFilename is returned for filenames that could escape the asset
// directory.
var ErrInvalidFilename = errors.New("invalid filename")

// Manager saves and removes uploaded asset files under a static root. It
// owns the files only; which filenames are live is the settings store's
// business.
type Manager struct {
	root string
}

// NewManager creates a manager rooted at dir and ensures the per-kind
// subdirectories exist.
func NewManager(dir string) (*Manager, error) {
	for _, kind := range []Kind{KindLogo, KindBackground, KindAudio} {
		if err := os.MkdirAll(filepath.Join(dir, string(kind)), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create asset directory: %w", err)
		}
	}
	return &Manager{root: dir}, nil
}

// SanitizeName reduces a display name to filename-safe characters.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '-':
			b.WriteRune(c)
		case c == ' ':
			b.WriteRune('_')
		default:
			b.WriteRune('_')
		}
	}
	return strings.TrimRight(b.String(), "_")
}

// uniqueFilename builds a collision-free stored filename preserving the
// upload's extension (.png when absent).
func uniqueFilename(displayName, originalFilename string) string {
	ext := filepath.Ext(originalFilename)
	if ext == "" {
		ext = ".png"
	}
	return fmt.Sprintf("%s_%s_%s%s",
		time.Now().Format("20060102150405"),
		strings.ReplaceAll(uuid.NewString(), "-", "")[:6],
		SanitizeName(displayName),
		ext)
}

// Save writes an uploaded file under the kind's directory and returns the
// generated stored filename.
func (m *Manager) Save(kind Kind, displayName, originalFilename string, src io.Reader) (string, error) {
	name := uniqueFilename(displayName, originalFilename)
	path := filepath.Join(m.root, string(kind), name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create asset file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write asset file: %w", err)
	}

	log.Info().Str("kind", string(kind)).Str("filename", name).Msg("asset saved")
	return name, nil
}

// Remove deletes a stored asset file. A missing file is not an error; a
// filename that could traverse out of the asset directory is.
func (m *Manager) Remove(kind Kind, filename string) error {
	if filename == "" || filename != filepath.Base(filename) || strings.Contains(filename, "..") {
		return ErrInvalidFilename
	}
	path := filepath.Join(m.root, string(kind), filename)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("filename", filename).Msg("asset file already gone")
			return nil
		}
		return fmt.Errorf("failed to delete asset file: %w", err)
	}
	log.Info().Str("kind", string(kind)).Str("filename", filename).Msg("asset deleted")
	return nil
}

// Root returns the static asset root directory.
func (m *Manager) Root() string {
	return m.root
}

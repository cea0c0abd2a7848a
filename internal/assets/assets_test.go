package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "Acme_Corp", SanitizeName("Acme Corp"))
	assert.Equal(t, "band-2024", SanitizeName("band-2024"))
	assert.Equal(t, "a_b_c", SanitizeName("a/b\\c"))
	assert.Equal(t, "logo", SanitizeName("logo!!!"))
}

func TestUniqueFilename(t *testing.T) {
	first := uniqueFilename("Acme Corp", "logo.svg")
	second := uniqueFilename("Acme Corp", "logo.svg")

	assert.True(t, strings.HasSuffix(first, "_Acme_Corp.svg"))
	assert.NotEqual(t, first, second)

	// Missing extension falls back to .png.
	assert.True(t, strings.HasSuffix(uniqueFilename("Acme", "logo"), ".png"))
}

func TestManager_SaveAndRemove(t *testing.T) {
	m, err := NewManager(t.TempDir())
	require.NoError(t, err)

	name, err := m.Save(KindLogo, "Acme", "logo.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(m.Root(), string(KindLogo), name))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, m.Remove(KindLogo, name))
	_, err = os.Stat(filepath.Join(m.Root(), string(KindLogo), name))
	assert.True(t, os.IsNotExist(err))
}

func TestManager_RemoveMissingFileIsNotAnError(t *testing.T) {
	m, err := NewManager(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, m.Remove(KindAudio, "gone.mp3"))
}

func TestManager_RemoveRejectsTraversal(t *testing.T) {
	m, err := NewManager(t.TempDir())
	require.NoError(t, err)

	assert.ErrorIs(t, m.Remove(KindLogo, "../config.json"), ErrInvalidFilename)
	assert.ErrorIs(t, m.Remove(KindLogo, "/etc/passwd"), ErrInvalidFilename)
	assert.ErrorIs(t, m.Remove(KindLogo, ""), ErrInvalidFilename)
}

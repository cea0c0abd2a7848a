package settings

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyPIN_DefaultPINWorksAfterBootstrap(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "config.json"))

	assert.True(t, s.VerifyPIN(DefaultPIN))
	assert.False(t, s.VerifyPIN("wrong"))
}

func TestSetPIN_ReplacesCredential(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "config.json"))

	require.NoError(t, s.SetPIN("8080"))
	assert.True(t, s.VerifyPIN("8080"))
	assert.False(t, s.VerifyPIN(DefaultPIN))
}

func TestSetPIN_FreshSaltEachTime(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "config.json"))

	require.NoError(t, s.SetPIN("8080"))
	first := s.Load().AdminPINHashed
	require.NoError(t, s.SetPIN("8080"))
	second := s.Load().AdminPINHashed
	assert.NotEqual(t, first, second)
}

func TestVerifyPIN_MalformedCredentialFailsClosed(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "config.json"))
	_, err := s.Update(func(doc *Document) {
		doc.AdminPINHashed = "no-dollar-separator"
	})
	require.NoError(t, err)

	assert.False(t, s.VerifyPIN("12345"))
}

func TestVerifyPIN_NoCredentialFailsClosed(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "config.json"))
	_, err := s.Update(func(doc *Document) {
		doc.AdminPINHashed = ""
	})
	require.NoError(t, err)

	assert.False(t, s.VerifyPIN(""))
	assert.False(t, s.VerifyPIN("12345"))
}

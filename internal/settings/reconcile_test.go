package settings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile_EmptyDocumentGetsAllDefaults(t *testing.T) {
	var doc Document

	changed := Reconcile(&doc)
	assert.True(t, changed)
	assert.NotNil(t, doc.Logos)
	assert.Equal(t, "#000000", doc.Theme.Background)
	assert.Equal(t, "#FFFFFF", doc.Theme.FontColor)
	assert.Equal(t, "#FF0000", doc.Theme.LowTimeColor)
	assert.Equal(t, 5, doc.Theme.LowTimeMinutes)
	require.NotNil(t, doc.Theme.WarningEnabled)
	assert.True(t, *doc.Theme.WarningEnabled)
}

func TestReconcile_FilledDocumentUnchanged(t *testing.T) {
	warning := false
	doc := Document{
		AdminPINHashed: "abc$def",
		Logos:          []LogoEntry{{Name: "Acme", Filename: "acme.png"}},
		Theme: Theme{
			Background:     "#112233",
			FontColor:      "#445566",
			LowTimeColor:   "#778899",
			LowTimeMinutes: 2,
			WarningEnabled: &warning,
		},
	}
	before := doc

	changed := Reconcile(&doc)
	assert.False(t, changed)
	assert.Equal(t, before, doc)
}

func TestReconcile_PartialThemeBackfilled(t *testing.T) {
	doc := Document{
		Logos: []LogoEntry{},
		Theme: Theme{Background: "#123456", FontColor: "#FFFFFF"},
	}
	t1 := true
	doc.Theme.WarningEnabled = &t1

	changed := Reconcile(&doc)
	assert.True(t, changed)
	assert.Equal(t, "#123456", doc.Theme.Background, "explicit values kept")
	assert.Equal(t, "#FF0000", doc.Theme.LowTimeColor)
	assert.Equal(t, 5, doc.Theme.LowTimeMinutes)
}

func TestReconcile_MigratesPlaintextPIN(t *testing.T) {
	doc := Document{AdminPINPlain: "12345", Logos: []LogoEntry{}}

	changed := Reconcile(&doc)
	assert.True(t, changed)
	assert.Empty(t, doc.AdminPINPlain, "plaintext deleted")

	salt, hash, ok := strings.Cut(doc.AdminPINHashed, "$")
	require.True(t, ok)
	assert.Len(t, salt, 32)
	assert.Len(t, hash, 64)
	assert.Equal(t, hashPIN(salt, "12345"), doc.AdminPINHashed)
}

func TestReconcile_MigrationRunsExactlyOnce(t *testing.T) {
	doc := Document{AdminPINPlain: "12345", Logos: []LogoEntry{}}
	require.True(t, Reconcile(&doc))
	migrated := doc.AdminPINHashed

	changed := Reconcile(&doc)
	assert.False(t, changed)
	assert.Equal(t, migrated, doc.AdminPINHashed, "existing hash untouched")
}

func TestReconcile_ExistingHashNotOverwritten(t *testing.T) {
	doc := Document{AdminPINHashed: "salt$hash", AdminPINPlain: "9999", Logos: []LogoEntry{}}

	Reconcile(&doc)
	assert.Equal(t, "salt$hash", doc.AdminPINHashed)
}

package settings

// Reconcile heals a loaded document in place: absent fields are backfilled
// from defaults and a plaintext PIN, if present, is converted to salted-hash
// form. It reports whether anything changed so the caller knows to persist.
// Running it twice always reports false the second time.
func Reconcile(doc *Document) bool {
	changed := false

	if doc.Logos == nil {
		doc.Logos = []LogoEntry{}
		changed = true
	}
	if doc.Theme.Background == "" {
		doc.Theme.Background = defaultBackground
		changed = true
	}
	if doc.Theme.FontColor == "" {
		doc.Theme.FontColor = defaultFontColor
		changed = true
	}
	if doc.Theme.LowTimeColor == "" {
		doc.Theme.LowTimeColor = defaultLowTimeColor
		changed = true
	}
	if doc.Theme.LowTimeMinutes <= 0 {
		doc.Theme.LowTimeMinutes = defaultLowTimeMinutes
		changed = true
	}
	if doc.Theme.WarningEnabled == nil {
		enabled := true
		doc.Theme.WarningEnabled = &enabled
		changed = true
	}

	// One-time credential migration: hash the plaintext PIN and drop it.
	if doc.AdminPINPlain != "" && doc.AdminPINHashed == "" {
		doc.AdminPINHashed = hashPIN(newSalt(), doc.AdminPINPlain)
		doc.AdminPINPlain = ""
		changed = true
	}

	return changed
}

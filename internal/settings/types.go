package settings

// LogoEntry is one uploaded logo in the asset manifest.
type LogoEntry struct {
	Name     string `json:"name"`
	Filename string `json:"filename"`
}

// Theme holds the viewer presentation settings.
type Theme struct {
	Background     string `json:"background"`
	FontColor      string `json:"font_color"`
	LowTimeColor   string `json:"low_time_color"`
	LowTimeMinutes int    `json:"low_time_minutes"`
	WarningEnabled *bool  `json:"warning_enabled"`
}

// Document is the single persisted settings record: theme, asset manifest and
// admin credential. Timer runtime state is deliberately not part of it.
type Document struct {
	AdminPINHashed     string      `json:"admin_pin_hashed,omitempty"`
	AdminPINPlain      string      `json:"admin_pin_unhashed,omitempty"`
	Logos              []LogoEntry `json:"logos"`
	Theme              Theme       `json:"theme"`
	BackgroundFilename string      `json:"background_filename,omitempty"`
	TimesUpSound       string      `json:"times_up_sound,omitempty"`
	LowTimeSound       string      `json:"low_time_sound,omitempty"`
}

// Theme defaults. LowTimeMinutes at or below zero is treated as unset.
const (
	defaultBackground     = "#000000"
	defaultFontColor      = "#FFFFFF"
	defaultLowTimeColor   = "#FF0000"
	defaultLowTimeMinutes = 5
)

// DefaultPIN seeds a fresh document; the first load migrates it to salted
// hash form. Operators are expected to change it immediately.
const DefaultPIN = "12345"

// DefaultTheme returns the theme used when fields are absent.
func DefaultTheme() Theme {
	enabled := true
	return Theme{
		Background:     defaultBackground,
		FontColor:      defaultFontColor,
		LowTimeColor:   defaultLowTimeColor,
		LowTimeMinutes: defaultLowTimeMinutes,
		WarningEnabled: &enabled,
	}
}

// DefaultDocument returns the document written when none exists on disk.
func DefaultDocument() Document {
	return Document{
		AdminPINPlain: DefaultPIN,
		Logos:         []LogoEntry{},
		Theme:         DefaultTheme(),
	}
}

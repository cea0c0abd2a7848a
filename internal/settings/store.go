package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// Store persists the settings document as a single JSON file. All
// read-modify-write sequences are serialized behind one lock so concurrent
// logical updates never interleave, and every write goes through a temp file
// plus rename so readers never observe a partial document.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the given file path and performs the
// initial load so a missing or legacy file is healed at startup.
func NewStore(path string) *Store {
	s := &Store{path: path}
	s.Load()
	return s
}

// Load reads the persisted document, healing it as needed. A missing file is
// created with defaults; missing fields are backfilled and written back; a
// corrupt file degrades to the default document. Parse failures are never
// surfaced to the caller, only logged.
func (s *Store) Load() Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() Document {
	doc, healed := s.readLocked()
	if healed {
		if err := s.saveLocked(doc); err != nil {
			log.Error().Err(err).Str("path", s.path).Msg("failed to persist healed settings")
		}
	}
	return doc
}

// readLocked parses the file and reconciles the result, reporting whether
// the reconciled document needs to be written back.
func (s *Store) readLocked() (Document, bool) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Error().Err(err).Str("path", s.path).Msg("failed to read settings, using defaults")
		}
		doc := DefaultDocument()
		Reconcile(&doc)
		return doc, true
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Error().Err(err).Str("path", s.path).Msg("settings file corrupt, using defaults")
		doc = DefaultDocument()
		Reconcile(&doc)
		return doc, true
	}

	changed := Reconcile(&doc)
	return doc, changed
}

// Save overwrites the persisted document wholesale.
func (s *Store) Save(doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(doc)
}

func (s *Store) saveLocked(doc Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace settings: %w", err)
	}
	return nil
}

// Update runs one logical read-modify-write under the store lock and
// persists the result, returning the updated document.
func (s *Store) Update(fn func(*Document)) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadLocked()
	fn(&doc)
	if err := s.saveLocked(doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// AppendLogo adds an entry to the logo manifest.
func (s *Store) AppendLogo(name, filename string) error {
	_, err := s.Update(func(doc *Document) {
		doc.Logos = append(doc.Logos, LogoEntry{Name: name, Filename: filename})
	})
	return err
}

// RemoveLogo removes the manifest entry with the given filename. It reports
// whether an entry was found.
func (s *Store) RemoveLogo(filename string) (bool, error) {
	found := false
	_, err := s.Update(func(doc *Document) {
		kept := doc.Logos[:0]
		for _, l := range doc.Logos {
			if l.Filename == filename {
				found = true
				continue
			}
			kept = append(kept, l)
		}
		doc.Logos = kept
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// SetTheme replaces the theme block. The stored result is reconciled, so
// blank fields fall back to defaults rather than persisting empty.
func (s *Store) SetTheme(theme Theme) (Theme, error) {
	doc, err := s.Update(func(doc *Document) {
		doc.Theme = theme
		Reconcile(doc)
	})
	if err != nil {
		return Theme{}, err
	}
	return doc.Theme, nil
}

// SetBackground replaces the singleton background image filename and returns
// the previous one; empty clears it. The swap is one serialized update so a
// concurrent writer cannot observe the intermediate state.
func (s *Store) SetBackground(filename string) (string, error) {
	previous := ""
	_, err := s.Update(func(doc *Document) {
		previous = doc.BackgroundFilename
		doc.BackgroundFilename = filename
	})
	return previous, err
}

// Sound kinds accepted by SetSound.
const (
	SoundTimesUp = "times_up"
	SoundLowTime = "low_time"
)

// SetSound replaces one of the singleton alert sound filenames and returns
// the previous one; empty clears it. Unknown kinds are rejected.
func (s *Store) SetSound(kind, filename string) (string, error) {
	switch kind {
	case SoundTimesUp, SoundLowTime:
	default:
		return "", fmt.Errorf("unknown sound kind %q", kind)
	}
	previous := ""
	_, err := s.Update(func(doc *Document) {
		switch kind {
		case SoundTimesUp:
			previous = doc.TimesUpSound
			doc.TimesUpSound = filename
		case SoundLowTime:
			previous = doc.LowTimeSound
			doc.LowTimeSound = filename
		}
	})
	return previous, err
}

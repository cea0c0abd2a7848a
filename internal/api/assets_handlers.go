package api

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"stagetimer/internal/assets"
	"stagetimer/internal/settings"
)

const maxUploadBytes = 20 << 20 // 20 MiB

// UploadLogo handles POST /api/upload_logo: multipart form with the file
// under "logo_file" and a display name under "common_name".
func (h *Handlers) UploadLogo(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("logo_file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file part")
		return
	}
	defer file.Close()

	commonName := r.FormValue("common_name")
	if commonName == "" {
		writeError(w, http.StatusBadRequest, "common name for logo is required")
		return
	}

	filename, err := h.assets.Save(assets.KindLogo, commonName, header.Filename, file)
	if err != nil {
		log.Error().Err(err).Msg("logo upload failed")
		writeError(w, http.StatusInternalServerError, "could not save logo")
		return
	}

	if err := h.store.AppendLogo(commonName, filename); err != nil {
		writeError(w, http.StatusInternalServerError, "could not record logo")
		return
	}

	h.broadcast()
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "logo uploaded",
		"logo":    settings.LogoEntry{Name: commonName, Filename: filename},
	})
}

// ListLogos handles GET /api/get_logos.
func (h *Handlers) ListLogos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Load().Logos)
}

// DeleteLogo handles DELETE /api/delete_logo/{filename}. The manifest entry
// is removed first; a failed file deletion leaves the manifest change in
// place and reports a partial failure.
func (h *Handlers) DeleteLogo(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")

	found, err := h.store.RemoveLogo(filename)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not update logo list")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "logo not found")
		return
	}

	if err := h.assets.Remove(assets.KindLogo, filename); err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("logo file deletion failed")
		writeError(w, http.StatusInternalServerError, "logo removed from list, but file deletion failed")
		return
	}

	h.broadcast()
	writeJSON(w, http.StatusOK, map[string]string{"message": "logo deleted"})
}

// UploadBackground handles POST /api/upload_background. The previous image
// file, if any, is removed once the new one is recorded.
func (h *Handlers) UploadBackground(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("background_file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file part")
		return
	}
	defer file.Close()

	filename, err := h.assets.Save(assets.KindBackground, "background", header.Filename, file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not save background")
		return
	}

	previous, err := h.store.SetBackground(filename)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not record background")
		return
	}
	if previous != "" {
		if err := h.assets.Remove(assets.KindBackground, previous); err != nil {
			log.Warn().Err(err).Str("filename", previous).Msg("stale background not removed")
		}
	}

	h.broadcast()
	writeJSON(w, http.StatusOK, map[string]string{
		"message":  "background uploaded",
		"filename": filename,
	})
}

// DeleteBackground handles DELETE /api/delete_background.
func (h *Handlers) DeleteBackground(w http.ResponseWriter, r *http.Request) {
	previous, err := h.store.SetBackground("")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not clear background")
		return
	}
	if previous == "" {
		writeError(w, http.StatusNotFound, "no background configured")
		return
	}
	if err := h.assets.Remove(assets.KindBackground, previous); err != nil {
		log.Warn().Err(err).Str("filename", previous).Msg("background file not removed")
	}
	h.broadcast()
	writeJSON(w, http.StatusOK, map[string]string{"message": "background deleted"})
}

// UploadSound handles POST /api/upload_sound/{type} for the times_up and
// low_time alert sounds.
func (h *Handlers) UploadSound(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("type")
	if kind != settings.SoundTimesUp && kind != settings.SoundLowTime {
		writeError(w, http.StatusBadRequest, "unknown sound type")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("sound_file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file part")
		return
	}
	defer file.Close()

	filename, err := h.assets.Save(assets.KindAudio, kind, header.Filename, file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not save sound")
		return
	}

	previous, err := h.store.SetSound(kind, filename)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not record sound")
		return
	}
	if previous != "" {
		if err := h.assets.Remove(assets.KindAudio, previous); err != nil {
			log.Warn().Err(err).Str("filename", previous).Msg("stale sound not removed")
		}
	}

	h.broadcast()
	writeJSON(w, http.StatusOK, map[string]string{
		"message":  "sound uploaded",
		"filename": filename,
	})
}

// DeleteSound handles DELETE /api/delete_sound/{type}; the viewer reverts to
// its built-in tone.
func (h *Handlers) DeleteSound(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("type")
	if kind != settings.SoundTimesUp && kind != settings.SoundLowTime {
		writeError(w, http.StatusBadRequest, "unknown sound type")
		return
	}

	previous, err := h.store.SetSound(kind, "")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not clear sound")
		return
	}
	if previous == "" {
		writeError(w, http.StatusNotFound, "no custom sound configured")
		return
	}
	if err := h.assets.Remove(assets.KindAudio, previous); err != nil {
		log.Warn().Err(err).Str("filename", previous).Msg("sound file not removed")
	}
	h.broadcast()
	writeJSON(w, http.StatusOK, map[string]string{"message": "sound deleted"})
}

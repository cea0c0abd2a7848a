package api

import (
	"net/http"

	"github.com/rs/cors"
)

// NewRouter builds the HTTP surface. Viewer endpoints are public; every
// mutating endpoint sits behind the admin session guard.
func NewRouter(h *Handlers) http.Handler {
	mux := http.NewServeMux()

	// Viewer surface.
	mux.HandleFunc("GET /api/timer_status", h.TimerStatus)
	mux.Handle("GET /ws/status", h.hub)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(h.assets.Root()))))

	// Auth.
	mux.HandleFunc("POST /api/login", h.Login)
	mux.HandleFunc("POST /api/logout", h.Logout)

	// Admin surface.
	admin := http.NewServeMux()
	admin.HandleFunc("POST /api/control_timer/{id}", h.ControlTimer)
	admin.HandleFunc("GET /api/theme", h.GetTheme)
	admin.HandleFunc("POST /api/theme", h.SetTheme)
	admin.HandleFunc("POST /api/change_pin", h.ChangePIN)
	admin.HandleFunc("POST /api/upload_logo", h.UploadLogo)
	admin.HandleFunc("GET /api/get_logos", h.ListLogos)
	admin.HandleFunc("DELETE /api/delete_logo/{filename}", h.DeleteLogo)
	admin.HandleFunc("POST /api/upload_background", h.UploadBackground)
	admin.HandleFunc("DELETE /api/delete_background", h.DeleteBackground)
	admin.HandleFunc("POST /api/upload_sound/{type}", h.UploadSound)
	admin.HandleFunc("DELETE /api/delete_sound/{type}", h.DeleteSound)
	mux.Handle("/api/", h.sessions.RequireAdmin(admin))

	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(mux)
}

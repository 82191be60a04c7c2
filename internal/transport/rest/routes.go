package rest

import "net/http"

// NewMux registers all routes on a fresh ServeMux.
func NewMux(health *HealthHandler, companions *CompanionHandler, bookmarks *BookmarkHandler, history *HistoryHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /companions", companions.List)
	mux.HandleFunc("POST /companions", companions.Create)
	mux.HandleFunc("GET /companions/quota", companions.Quota)
	mux.HandleFunc("GET /companions/{id}", companions.Get)
	mux.HandleFunc("GET /me/companions", companions.Mine)

	mux.HandleFunc("POST /companions/{id}/bookmark", bookmarks.Add)
	mux.HandleFunc("DELETE /companions/{id}/bookmark", bookmarks.Remove)
	mux.HandleFunc("GET /me/bookmarks", bookmarks.List)

	mux.HandleFunc("POST /companions/{id}/sessions", history.Append)
	mux.HandleFunc("GET /sessions/recent", history.Recent)
	mux.HandleFunc("GET /me/sessions", history.Mine)

	return mux
}

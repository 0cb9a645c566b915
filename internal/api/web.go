package api

import "net/http"

// HomeHandler handles GET / for the web template.
func HomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteText(w, http.StatusOK, "Hello World from Go!")
	}
}

// WebHealthHandler handles GET /health/ for the web template.
func WebHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteText(w, http.StatusOK, "ok")
	}
}

// AdminHandler handles GET /admin/. The router wraps it in the admin token
// middleware; the scaffolded project replaces the placeholder body with its
// own admin surface.
func AdminHandler(appName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteText(w, http.StatusOK, appName+" administration")
	}
}

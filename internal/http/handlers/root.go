package handlers

import "net/http"

// Root is the service banner with the endpoint map, kept for quick smoke
// checks from a browser.
func (a *App) Root(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"service": "surplus-sync - map-based allocation",
		"status":  "operational",
		"endpoints": map[string]string{
			"donations":           "/api/donations",
			"available_donations": "/api/donations/available",
			"map_markers":         "/api/map/markers",
			"websocket":           "/ws",
		},
	})
}

package handlers

import "net/http"

// MapMarkers returns the lightweight marker projection for every AVAILABLE
// listing, soonest expiry first.
func (a *App) MapMarkers(w http.ResponseWriter, r *http.Request) {
	markers, err := a.Core.MapMarkers(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, markers)
}

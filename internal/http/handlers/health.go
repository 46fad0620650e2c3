package handlers

import (
	"net/http"
)

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	if err := a.DB.Ping(r.Context()); err != nil {
		a.Logger.Error().Err(err).Msg("health check failed")
		a.json(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "database": "unreachable"})
		return
	}
	a.json(w, http.StatusOK, map[string]string{"status": "healthy", "database": "connected"})
}

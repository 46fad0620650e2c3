package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Esw4r/surplus-sync/internal/domain"
)

// Core is the lifecycle surface the HTTP layer depends on.
type Core interface {
	CreateDonation(ctx context.Context, in domain.CreateInput) (domain.Donation, error)
	SetStatus(ctx context.Context, id int64, next domain.Status, volunteerID *int64) (domain.Donation, error)
	GetDonation(ctx context.Context, id int64) (domain.Donation, error)
	ListDonations(ctx context.Context, limit, offset int) ([]domain.Donation, error)
	ListAvailable(ctx context.Context) ([]domain.Donation, error)
	MapMarkers(ctx context.Context) ([]domain.MarkerView, error)
	SweepExpired(ctx context.Context) (int, error)
}

// Pinger reports store connectivity for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	Core   Core
	DB     Pinger
	Logger zerolog.Logger
}

func NewApp(core Core, db Pinger, logger zerolog.Logger) *App {
	return &App{Core: core, DB: db, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, slug, message string) {
	a.json(w, code, map[string]any{"error": map[string]string{"code": slug, "message": message}})
}

// domainError maps lifecycle errors onto the HTTP taxonomy.
func (a *App) domainError(w http.ResponseWriter, err error) {
	var v *domain.ValidationError
	switch {
	case errors.As(err, &v):
		a.json(w, http.StatusBadRequest, map[string]any{"error": map[string]any{
			"code":    "validation_failed",
			"message": v.Error(),
			"fields":  v.Fields,
		}})
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "donation not found")
	case errors.Is(err, domain.ErrIllegalTransition):
		a.error(w, http.StatusConflict, "illegal_transition", err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		a.Logger.Error().Err(err).Msg("store unavailable")
		a.error(w, http.StatusServiceUnavailable, "store_unavailable", "storage temporarily unavailable")
	default:
		a.Logger.Error().Err(err).Msg("unhandled error")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Esw4r/surplus-sync/internal/domain"
)

type donationResponse struct {
	ID                  int64           `json:"id"`
	DonorName           string          `json:"donor_name"`
	FoodType            domain.FoodType `json:"food_type"`
	QuantityKg          float64         `json:"quantity_kg"`
	Description         string          `json:"description,omitempty"`
	Latitude            float64         `json:"latitude"`
	Longitude           float64         `json:"longitude"`
	Address             string          `json:"address"`
	Status              domain.Status   `json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
	ExpiresAt           time.Time       `json:"expires_at"`
	AssignedVolunteerID *int64          `json:"assigned_volunteer_id,omitempty"`
	AssignedAt          *time.Time      `json:"assigned_at,omitempty"`
}

func toDonationResponse(d domain.Donation) donationResponse {
	return donationResponse{
		ID:                  d.ID,
		DonorName:           d.DonorName,
		FoodType:            d.FoodType,
		QuantityKg:          d.QuantityKg,
		Description:         d.Description,
		Latitude:            d.Latitude,
		Longitude:           d.Longitude,
		Address:             d.Address,
		Status:              d.Status,
		CreatedAt:           d.CreatedAt,
		ExpiresAt:           d.ExpiresAt,
		AssignedVolunteerID: d.AssignedVolunteerID,
		AssignedAt:          d.AssignedAt,
	}
}

func toDonationResponses(items []domain.Donation) []donationResponse {
	out := make([]donationResponse, 0, len(items))
	for _, d := range items {
		out = append(out, toDonationResponse(d))
	}
	return out
}

// DonationsCreate publishes a new listing and triggers a NEW_DONATION
// broadcast to every connected map client.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	d, err := a.Core.CreateDonation(r.Context(), in)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusCreated, toDonationResponse(d))
}

// DonationsList returns all donations with skip/limit pagination.
func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	skip := queryInt(r, "skip", 0)
	limit := queryInt(r, "limit", 100)
	if limit < 1 || limit > 500 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}
	items, err := a.Core.ListDonations(r.Context(), limit, skip)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toDonationResponses(items))
}

// DonationsAvailable is the dispatcher map view: AVAILABLE listings ordered
// by soonest expiry first.
func (a *App) DonationsAvailable(w http.ResponseWriter, r *http.Request) {
	items, err := a.Core.ListAvailable(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toDonationResponses(items))
}

// DonationGet returns a single listing.
func (a *App) DonationGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid donation id")
		return
	}
	d, err := a.Core.GetDonation(r.Context(), id)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toDonationResponse(d))
}

type statusUpdateRequest struct {
	Status              domain.Status `json:"status"`
	AssignedVolunteerID *int64        `json:"assigned_volunteer_id"`
}

// DonationStatusUpdate applies a lifecycle transition and broadcasts
// STATUS_UPDATE on success. Illegal edges return 409.
func (a *App) DonationStatusUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid donation id")
		return
	}
	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	d, err := a.Core.SetStatus(r.Context(), id, req.Status, req.AssignedVolunteerID)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"message":     "status updated",
		"donation_id": d.ID,
		"new_status":  d.Status,
	})
}

// DonationsCleanup runs an on-demand expiry sweep.
func (a *App) DonationsCleanup(w http.ResponseWriter, r *http.Request) {
	count, err := a.Core.SweepExpired(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"removed": count})
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

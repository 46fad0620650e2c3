package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error { return p.err }

func TestHealthReportsConnected(t *testing.T) {
	app := NewApp(&fakeCore{}, fakePinger{}, zerolog.Nop())

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	app.Health(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "healthy" || resp["database"] != "connected" {
		t.Errorf("unexpected body %v", resp)
	}
}

func TestHealthReportsUnreachableStore(t *testing.T) {
	app := NewApp(&fakeCore{}, fakePinger{err: errors.New("dial tcp: refused")}, zerolog.Nop())

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	app.Health(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "unhealthy" {
		t.Errorf("unexpected body %v", resp)
	}
}

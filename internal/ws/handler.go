package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/websocket"

	"github.com/Esw4r/surplus-sync/internal/domain"
	"github.com/Esw4r/surplus-sync/internal/middleware"
)

// pong answers any inbound client message so map clients can verify the
// connection is alive.
type pong struct {
	Timestamp time.Time `json:"timestamp"`
}

// Handler upgrades map clients to WebSocket, registers them with the hub,
// and keeps them registered until the transport signals closure.
type Handler struct {
	hub         *Hub
	logger      zerolog.Logger
	sendTimeout time.Duration
}

// NewHandler creates the /ws endpoint handler.
func NewHandler(hub *Hub, logger zerolog.Logger, sendTimeout time.Duration) *Handler {
	return &Handler{hub: hub, logger: logger, sendTimeout: sendTimeout}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(h.serve).ServeHTTP(w, r)
}

func (h *Handler) serve(conn *websocket.Conn) {
	// The server's request read deadline still applies to the hijacked
	// connection and would cut idle clients off mid-session.
	_ = conn.SetReadDeadline(time.Time{})

	sender := &connSender{conn: conn, timeout: h.sendTimeout}
	observer := h.hub.Register(sender)
	defer h.hub.Unregister(observer)

	if req := conn.Request(); req != nil {
		if country := middleware.CountryFromContext(req.Context()); country != "" {
			h.logger.Debug().Str("conn_id", observer.ID()).Str("country", country).Msg("map client origin")
		}
	}

	for {
		var msg string
		if err := websocket.Message.Receive(conn, &msg); err != nil {
			return
		}
		// Inbound traffic is only keepalive pings; echo a PONG so the
		// client can verify liveness.
		if err := sender.Send(domain.Event{Kind: "PONG", Data: pong{Timestamp: time.Now().UTC()}}); err != nil {
			return
		}
	}
}

// connSender serializes writes to one WebSocket connection. Each write is
// bounded by the configured deadline; an expired deadline surfaces as a
// failed send and the hub drops the observer.
type connSender struct {
	mu      sync.Mutex
	conn    *websocket.Conn
	timeout time.Duration
}

func (s *connSender) Send(event domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timeout > 0 {
		if err := s.conn.SetWriteDeadline(time.Now().Add(s.timeout)); err != nil {
			return err
		}
	}
	return websocket.JSON.Send(s.conn, event)
}

func (s *connSender) Close() error {
	return s.conn.Close()
}

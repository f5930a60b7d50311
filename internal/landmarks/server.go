package landmarks

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

const maxFrameBytes = 64 << 10

// StateFunc reports whatever the host wants to expose on /state.
type StateFunc func() any

// Server ingests detector frames over a websocket (/ws) or plain POSTs
// (/frame) and publishes them into a Latest cell.
type Server struct {
	latest   *Latest
	state    StateFunc
	upgrader websocket.Upgrader
	start    time.Time
	frames   atomic.Uint64
	rejected atomic.Uint64
}

func NewServer(latest *Latest, state StateFunc) *Server {
	return &Server{
		latest: latest,
		state:  state,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 1024,
			// detectors run in a local page or process, not a trusted origin
			CheckOrigin: func(*http.Request) bool { return true },
		},
		start: time.Now(),
	}
}

// Stats returns accepted and rejected frame counts.
func (s *Server) Stats() (accepted, rejected uint64) {
	return s.frames.Load(), s.rejected.Load()
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/ws", s.handleWS)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Logger)
		r.Use(middleware.Timeout(10 * time.Second))
		r.Post("/frame", s.handleFrame)
		r.Get("/state", s.handleState)
		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})
	return r
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Printf("landmark ingest listening on %s", addr)
		errc <- server.ListenAndServe()
	}()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// stamp gives frames without a timestamp field one from the server clock
// so duplicate detection still works for clients that do not send one.
func (s *Server) stamp(f Frame, hasTS bool) Frame {
	if !hasTS {
		f.Timestamp = float64(time.Since(s.start).Microseconds()) / 1000
	}
	return f
}

func (s *Server) accept(data []byte) error {
	f, hasTS, err := decode(data)
	if err != nil {
		s.rejected.Add(1)
		return err
	}
	s.latest.Publish(s.stamp(f, hasTS))
	s.frames.Add(1)
	return nil
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxFrameBytes)
	log.Printf("detector connected from %s", r.RemoteAddr)

	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("ws read: %v", err)
			}
			return
		}
		if kind != websocket.TextMessage && kind != websocket.BinaryMessage {
			continue
		}
		if err := s.accept(data); err != nil {
			log.Printf("ws frame: %v", err)
			msg, _ := json.Marshal(map[string]string{"error": err.Error()})
			conn.SetWriteDeadline(time.Now().Add(time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
	}
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxFrameBytes))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.accept(data); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	var body any = struct{}{}
	if s.state != nil {
		body = s.state()
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("state encode: %v", err)
	}
}

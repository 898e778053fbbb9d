// gateway is the public-facing HTTP service.
// It accepts topology generation requests, publishes them to RabbitMQ
// (topology.requested), and relays topology.generated / topology.failed
// messages to connected clients over WebSocket.
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lft-ai/lftgen/shared/config"
	"github.com/lft-ai/lftgen/shared/events"
	"github.com/lft-ai/lftgen/shared/mq"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	broker, err := mq.New(cfg.AMQPURL)
	if err != nil {
		log.Fatal().Err(err).Msg("mq connect")
	}
	defer broker.Close()

	gw := &gateway{broker: broker, hub: newHub()}

	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() { <-sigs; cancel() }()

	go gw.hub.run(ctx)
	go gw.relayEvents(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/topologies", gw.createJob)
	mux.HandleFunc("GET /api/status", gw.status)
	mux.HandleFunc("/ws", gw.serveWS)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: cors(mux),
	}

	log.Info().Str("port", cfg.Port).Msg("gateway online")

	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutCtx)
	}()

	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}

// ── Gateway ───────────────────────────────────────────────────────────────────

type gateway struct {
	broker *mq.Broker
	hub    *hub
}

func (gw *gateway) createJob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description string `json:"description"`
		OutputPath  string `json:"output_path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonErr(w, "invalid body", 400)
		return
	}
	if req.Description == "" {
		jsonErr(w, "description required", 400)
		return
	}

	jobID := uuid.New().String()
	b, _ := events.Wrap(events.TopologyRequested, events.TopologyRequestedPayload{
		JobID:       jobID,
		Description: req.Description,
		OutputPath:  req.OutputPath,
	})
	if err := gw.broker.Publish(r.Context(), events.TopologyRequested, b); err != nil {
		jsonErr(w, "queue publish failed", 500)
		return
	}

	jsonOK(w, map[string]any{
		"job_id": jobID,
		"status": "queued",
	}, 201)
}

func (gw *gateway) status(w http.ResponseWriter, _ *http.Request) {
	jsonOK(w, map[string]any{
		"status":  "online",
		"clients": gw.hub.clientCount(),
	}, 200)
}

// relayEvents forwards generation outcomes to WebSocket clients.
func (gw *gateway) relayEvents(ctx context.Context) {
	deliveries, err := gw.broker.Subscribe("gw.topology.relay", "topology.#")
	if err != nil {
		log.Error().Err(err).Msg("subscribe failed")
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			gw.hub.broadcast(d.Body)
			d.Ack(false)
		}
	}
}

// ── WebSocket hub ─────────────────────────────────────────────────────────────

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

func (gw *gateway) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	c := gw.hub.add(conn)

	log.Debug().Str("remote", r.RemoteAddr).Msg("WS connected")

	// Write pump
	go func() {
		defer func() {
			conn.Close()
			gw.hub.remove(c)
		}()
		for msg := range c.send {
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
	}()

	// Ping/pong keepalive
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})
	go func() {
		t := time.NewTicker(30 * time.Second)
		defer t.Stop()
		for range t.C {
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if conn.WriteMessage(websocket.PingMessage, nil) != nil {
				return
			}
		}
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func jsonOK(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonErr(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(204)
			return
		}
		next.ServeHTTP(w, r)
	})
}

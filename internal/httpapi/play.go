package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/klokkia/internal/core"
	"github.com/vovakirdan/klokkia/internal/events"
	"github.com/vovakirdan/klokkia/internal/session"
	"github.com/vovakirdan/klokkia/internal/storage"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Maximum message size allowed from peer.
	maxMessageSize = 1024
	// Longest frame delta accepted from the browser.
	maxFrameDelta = 250 * time.Millisecond
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ClientMessage is a command sent by the browser.
//
//	{"type":"frame","x":1.5,"z":-3,"dt_ms":33}
//	{"type":"submit","answer":"kwart voor vier"}
//
// Other types are start, pause, resume, hint and snapshot.
type ClientMessage struct {
	Type   string  `json:"type"`
	X      float64 `json:"x,omitempty"`
	Z      float64 `json:"z,omitempty"`
	DtMS   int64   `json:"dt_ms,omitempty"`
	Answer string  `json:"answer,omitempty"`
}

// ServerMessage wraps every session event and reply sent to the browser.
type ServerMessage struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

func handlePlay(opts Options, logger *log.Logger, rng *lockedRand) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error("websocket upgrade failed", "err", err)
			return
		}

		player := strings.TrimSpace(r.URL.Query().Get("player"))
		if player == "" {
			player = "web"
		}

		c := &playClient{
			conn:       conn,
			send:       make(chan []byte, 256),
			logger:     logger.With("player", player, "request_id", middleware.GetReqID(r.Context())),
			store:      opts.Store,
			player:     player,
			difficulty: opts.Difficulty,
			bound:      opts.Bound,
		}
		c.sess = session.New(opts.Session, session.Deps{
			Speaker: clientSpeaker{c},
			Seed:    rng.Int63(),
			Logger:  c.logger,
		})

		c.logger.Info("play session opened")
		go c.writePump()
		c.readPump()
	}
}

// playClient is one browser connection with its own session. The browser is
// the movement collaborator: it reports positions and frame deltas and must
// apply player_reset events. All session calls happen on the read goroutine.
type playClient struct {
	conn   *websocket.Conn
	send   chan []byte
	logger *log.Logger
	store  *storage.Store

	player     string
	difficulty string
	bound      float64

	sess  *session.Session
	saved bool
}

// clientSpeaker forwards pronunciation to the browser, which owns the audio.
type clientSpeaker struct {
	c *playClient
}

func (s clientSpeaker) Speak(text string) error {
	s.c.enqueue(ServerMessage{Type: "speak", Data: map[string]string{"text": text}})
	return nil
}

// readPump reads commands until the connection closes.
func (c *playClient) readPump() {
	defer func() {
		c.finish()
		close(c.send)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("websocket read failed", "err", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			c.enqueue(ServerMessage{Type: "error", Data: "invalid message"})
			continue
		}
		c.handle(msg)
	}
}

// writePump sends queued messages and keeps the connection alive with pings.
func (c *playClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *playClient) handle(msg ClientMessage) {
	switch msg.Type {
	case "start":
		c.sess.Start()
		c.saved = false
	case "pause":
		c.sess.Pause()
	case "resume":
		c.sess.Resume()
	case "frame":
		dt := min(max(time.Duration(msg.DtMS)*time.Millisecond, 0), maxFrameDelta)
		c.emit(c.sess.Step(session.Frame{
			Player: core.V(msg.X, msg.Z).ClampBox(c.bound),
			Delta:  dt,
		}))
		return
	case "submit":
		out := c.sess.Submit(msg.Answer)
		c.enqueue(ServerMessage{Type: "outcome", Data: map[string]string{"outcome": out.String()}})
	case "hint":
		c.sess.RequestHint()
	case "snapshot":
		c.enqueue(ServerMessage{Type: "snapshot", Data: c.sess.Snapshot()})
		return
	default:
		c.enqueue(ServerMessage{Type: "error", Data: "unknown message type " + msg.Type})
		return
	}
	c.emit(c.sess.Events())
}

func (c *playClient) emit(evts []events.Event) {
	for _, e := range evts {
		c.enqueue(ServerMessage{Type: e.Type(), Data: e})
		if p, ok := e.(events.PhaseEvent); ok && p.Phase == core.PhaseWon.String() {
			c.save()
		}
	}
}

func (c *playClient) enqueue(msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		c.logger.Error("encoding message", "type", msg.Type, "err", err)
		return
	}
	select {
	case c.send <- data:
	default:
		c.logger.Warn("send buffer full, dropping message", "type", msg.Type)
	}
}

// finish records an abandoned session that made progress.
func (c *playClient) finish() {
	if c.sess.State().Phase == core.PhasePlaying && c.sess.Elapsed() > 0 {
		c.save()
	}
	c.logger.Info("play session closed", "score", c.sess.State().Score)
}

func (c *playClient) save() {
	if c.store == nil || c.saved {
		return
	}
	rec := storage.RecordFromResult(c.player, "web", c.difficulty, c.sess.Result())
	if _, err := c.store.SaveSession(rec); err != nil {
		c.logger.Error("saving session", "err", err)
		return
	}
	c.saved = true
}

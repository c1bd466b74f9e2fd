package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"github.com/abhisek/mindgym/internal/session"
	"github.com/abhisek/mindgym/internal/store"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4 << 10
	sendBuffer     = 8
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// socketMessage is every frame the server sends.
type socketMessage struct {
	Type     string            `json:"type"` // "snapshot" or "error"
	Snapshot *session.Snapshot `json:"snapshot,omitempty"`
	Error    string            `json:"error,omitempty"`
}

func snapshotMessage(snap session.Snapshot) socketMessage {
	return socketMessage{Type: "snapshot", Snapshot: &snap}
}

func errorMessage(err string) socketMessage {
	return socketMessage{Type: "error", Error: err}
}

// serveSocket upgrades to a websocket bound to the caller's session.
// Each client frame is a JSON action and gets exactly one reply on the
// same connection: a snapshot frame or an error frame. Successful actions
// also reach every other connection on the session.
func (s *Server) serveSocket() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		e, created := s.lookup(r)

		var header http.Header
		if created {
			header = http.Header{"Set-Cookie": {s.sessionCookie(e.ID).String()}}
		}

		conn, err := upgrader.Upgrade(w, r, header)
		if err != nil {
			s.logger.Debug("websocket upgrade failed", "session", e.ID, "err", err)
			return
		}
		conn.SetReadLimit(maxMessageSize)

		updates, cancel := e.Watch()
		send := make(chan socketMessage, sendBuffer)
		send <- snapshotMessage(e.Snapshot())

		writerDone := make(chan struct{})
		go s.writePump(conn, send, updates, writerDone)

		s.readPump(conn, e, updates, send, writerDone)

		cancel()
		close(send)
		<-writerDone
	}
}

func (s *Server) readPump(conn *websocket.Conn, e *store.Entry, updates <-chan session.Snapshot, send chan<- socketMessage, writerDone <-chan struct{}) {
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg socketMessage
		var a session.Action
		if err := json.Unmarshal(data, &a); err != nil {
			msg = errorMessage("invalid JSON: " + err.Error())
		} else {
			a = normalizeAction(a)
			snap, err := e.DoFrom(updates, a)
			if err != nil {
				s.logAction(e.ID, a, err, statusFor(err))
				msg = errorMessage(err.Error())
			} else {
				msg = snapshotMessage(snap)
			}
		}

		select {
		case send <- msg:
		case <-writerDone:
			return
		}
	}
}

func (s *Server) writePump(conn *websocket.Conn, send <-chan socketMessage, updates <-chan session.Snapshot, done chan<- struct{}) {
	defer close(done)
	defer conn.Close()

	write := func(msg socketMessage) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(msg) == nil
	}

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return
			}
			if !write(msg) {
				return
			}
		case snap, ok := <-updates:
			if !ok {
				// Session removed.
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "session ended"),
					time.Now().Add(writeWait))
				return
			}
			if !write(snapshotMessage(snap)) {
				return
			}
		}
	}
}

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/iphase-tech/iphase-site/internal/contact"
	"github.com/iphase-tech/iphase-site/internal/content"
	"github.com/iphase-tech/iphase-site/internal/scrollspy"
	"github.com/iphase-tech/iphase-site/internal/view"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 64 << 10
)

// clientMessage is the incoming WebSocket message format.
type clientMessage struct {
	Type    string              `json:"type"` // scroll, toggle_dark, toggle_menu, navigate, input, submit
	Offset  float64             `json:"offset"`
	Layout  scrollspy.LayoutMap `json:"layout"`
	Section string              `json:"section"`
	Field   string              `json:"field"`
	Value   string              `json:"value"`
}

// serverMessage is the outgoing WebSocket message format.
type serverMessage struct {
	Type      string      `json:"type"` // "state" or "error"
	SessionID string      `json:"session_id,omitempty"`
	State     *view.State `json:"state,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// session is one page view. The reader loop runs on the handler goroutine;
// a single writer goroutine owns every write to conn.
type session struct {
	id     string
	conn   *websocket.Conn
	page   *view.Page
	feed   *scrollspy.Feed
	logger *zap.Logger

	dirty chan struct{}
	errs  chan string
	done  chan struct{}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{}
	if s.cfg.Server.AllowAllOrigins {
		upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("websocket upgrade", zap.Error(err))
		return
	}

	sess, err := s.newSession(conn, s.store.Get())
	if err != nil {
		s.logger.Error("creating session", zap.Error(err))
		conn.Close()
		return
	}
	if !s.track(sess) {
		conn.Close()
		return
	}
	defer s.untrack(sess)

	if r.URL.Query().Get("sent") == "1" {
		_ = sess.page.Acknowledge()
	}
	sess.run()
}

func (s *Server) newSession(conn *websocket.Conn, c *content.Site) (*session, error) {
	sess := &session{
		id:     uuid.NewString(),
		conn:   conn,
		feed:   scrollspy.NewFeed(),
		logger: s.logger,
		dirty:  make(chan struct{}, 1),
		errs:   make(chan string, 8),
		done:   make(chan struct{}),
	}
	sess.logger = s.logger.With(zap.String("session", sess.id))

	page, err := view.New(view.Options{
		Sections:        content.Sections,
		Margin:          s.cfg.Spy.Margin,
		Stats:           c.Impact.Stats,
		CounterDuration: s.cfg.Counter.Duration,
		CounterTick:     s.cfg.Counter.Tick,
		ResetDelay:      s.cfg.Contact.ResetDelay,
	}, sess.markDirty)
	if err != nil {
		return nil, err
	}
	sess.page = page
	return sess, nil
}

// markDirty schedules a state push. Pending pushes coalesce: the writer
// always sends the latest snapshot.
func (sess *session) markDirty() {
	select {
	case sess.dirty <- struct{}{}:
	default:
	}
}

func (sess *session) sendError(msg string) {
	select {
	case sess.errs <- msg:
	default:
		sess.logger.Debug("dropping session error", zap.String("error", msg))
	}
}

func (sess *session) run() {
	sess.logger.Debug("session opened")
	sess.conn.SetReadLimit(maxMessageSize)

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		sess.writeLoop()
	}()

	if err := sess.page.Mount(sess.feed); err != nil {
		sess.logger.Error("mounting page", zap.Error(err))
	} else {
		sess.markDirty()
		sess.readLoop()
	}

	// Unmount first so no counter or timer fires into a closed session.
	sess.page.Unmount()
	close(sess.done)
	<-writerDone
	sess.conn.Close()
	sess.logger.Debug("session closed")
}

func (sess *session) readLoop() {
	for {
		_, data, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				sess.logger.Debug("websocket read", zap.Error(err))
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			sess.sendError("invalid message format")
			continue
		}
		if err := sess.dispatch(msg); err != nil {
			sess.sendError(err.Error())
		}
	}
}

func (sess *session) dispatch(msg clientMessage) error {
	switch msg.Type {
	case "scroll":
		sess.feed.Publish(scrollspy.ScrollEvent{Offset: msg.Offset, Layout: msg.Layout})
	case "toggle_dark":
		sess.page.ToggleDarkMode()
	case "toggle_menu":
		sess.page.ToggleMenu()
	case "navigate":
		return sess.page.Navigate(msg.Section)
	case "input":
		return sess.page.SetField(contact.Field(msg.Field), msg.Value)
	case "submit":
		d, err := sess.page.Submit()
		if err != nil {
			if errors.Is(err, contact.ErrMissingField) {
				return errors.New("name, email and message are required")
			}
			return err
		}
		contact.LogAccepted(sess.logger, "session", d)
	default:
		return errors.New("unknown message type: " + msg.Type)
	}
	return nil
}

func (sess *session) writeLoop() {
	for {
		select {
		case <-sess.done:
			return
		case <-sess.dirty:
			st := sess.page.Snapshot()
			if !sess.write(serverMessage{Type: "state", SessionID: sess.id, State: &st}) {
				return
			}
		case msg := <-sess.errs:
			if !sess.write(serverMessage{Type: "error", SessionID: sess.id, Error: msg}) {
				return
			}
		}
	}
}

func (sess *session) write(msg serverMessage) bool {
	sess.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := sess.conn.WriteJSON(msg); err != nil {
		sess.logger.Debug("websocket write", zap.Error(err))
		// Unblock the reader so the session tears down.
		sess.conn.Close()
		return false
	}
	return true
}

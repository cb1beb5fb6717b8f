package app

import (
	"net/http"
	"time"

	"github.com/frudas24/multiscreen/internal/view"
	"github.com/gorilla/websocket"
)

// writeWait bounds a single websocket write.
const writeWait = 2 * time.Second

// FeedMessage is a screens websocket payload.
type FeedMessage struct {
	T    string     `json:"t"`
	Rows []view.Row `json:"rows"`
}

// Feed streams the screen list to websocket clients.
type Feed struct {
	model    *view.Model
	upgrader websocket.Upgrader
}

// NewFeed creates a feed over model.
func NewFeed(model *view.Model) *Feed {
	return &Feed{
		model: model,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the request, sends the current rows and then every change.
// Each client keeps only the newest pending rows, so a slow client never
// blocks a refresh.
func (f *Feed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	send := func(rows []view.Row) error {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(FeedMessage{T: "screens", Rows: rows})
	}

	pending := make(chan []view.Row, 1)
	cancel := f.model.Subscribe(func(rows []view.Row) {
		select {
		case <-pending:
		default:
		}
		pending <- rows
	})
	defer cancel()

	if err := send(f.model.Rows()); err != nil {
		return
	}

	// Client messages are ignored; reading detects the close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case rows := <-pending:
			if err := send(rows); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}

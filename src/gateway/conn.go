package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
)

// Conn is a message-oriented duplex transport. *websocket.Conn satisfies
// it.
type Conn interface {
	ReadMessage() (messageType int, data []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Dialer opens a Conn.
type Dialer interface {
	Dial(ctx context.Context, url string, header http.Header) (Conn, error)
}

type websocketDialer struct {
	dialer *websocket.Dialer
}

// NewDialer wraps a gorilla dialer. A nil dialer means
// websocket.DefaultDialer.
func NewDialer(d *websocket.Dialer) Dialer {
	if d == nil {
		d = websocket.DefaultDialer
	}
	return websocketDialer{dialer: d}
}

func (d websocketDialer) Dial(ctx context.Context, url string, header http.Header) (Conn, error) {
	conn, res, err := d.dialer.DialContext(ctx, url, header)
	if err != nil {
		if res != nil {
			return nil, fmt.Errorf("%w (status %d)", err, res.StatusCode)
		}
		return nil, err
	}
	return conn, nil
}

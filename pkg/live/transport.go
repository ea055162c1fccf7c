package live

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// DefaultEndpoint is the bidirectional streaming endpoint of the v1beta API.
const DefaultEndpoint = "wss://generativelanguage.googleapis.com/ws/google.ai.generativelanguage.v1beta.GenerativeService.BidiGenerateContent"

const closeGracePeriod = 2 * time.Second

// Conn is a duplex connection carrying discrete frames. ReadFrame returns
// io.EOF once the peer signals a clean shutdown; all other errors are
// transport failures. Implementations must allow one concurrent reader and
// serialize writers internally.
type Conn interface {
	ReadFrame() ([]byte, error)
	WriteFrame(payload []byte) error
	SetReadDeadline(t time.Time) error
	Close() error
}

// Dialer opens Conns. It exists so tests can substitute a local server or a
// scripted double for the production websocket dialer.
type Dialer interface {
	DialContext(ctx context.Context, endpoint string, header http.Header) (Conn, error)
}

// wsDialer dials the API over websocket.
type wsDialer struct {
	dialer *websocket.Dialer
}

func newWSDialer() *wsDialer {
	return &wsDialer{dialer: &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: 45 * time.Second,
	}}
}

func (d *wsDialer) DialContext(ctx context.Context, endpoint string, header http.Header) (Conn, error) {
	conn, resp, err := d.dialer.DialContext(ctx, endpoint, header)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, err
	}
	return newWSConn(conn), nil
}

// wsConn adapts a gorilla websocket connection to Conn. The server frames
// its JSON as binary messages, so both text and binary frames decode.
type wsConn struct {
	conn      *websocket.Conn
	writeMu   sync.Mutex
	closeOnce sync.Once
	closeErr  error
}

func newWSConn(conn *websocket.Conn) *wsConn {
	return &wsConn{conn: conn}
}

func (c *wsConn) ReadFrame() ([]byte, error) {
	for {
		msgType, data, err := c.conn.ReadMessage()
		if err != nil {
			if isPeerGone(err) {
				return nil, io.EOF
			}
			return nil, err
		}
		switch msgType {
		case websocket.TextMessage, websocket.BinaryMessage:
			return data, nil
		default:
			// control frames are handled by gorilla; skip anything else
		}
	}
}

func (c *wsConn) WriteFrame(payload []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

func (c *wsConn) SetReadDeadline(t time.Time) error {
	return c.conn.SetReadDeadline(t)
}

// Close sends a close frame, gives the peer a moment to echo it, then tears
// down the socket. Safe to call more than once.
func (c *wsConn) Close() error {
	c.closeOnce.Do(func() {
		c.writeMu.Lock()
		_ = c.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(closeGracePeriod),
		)
		c.writeMu.Unlock()
		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}

// isPeerGone reports whether err means the peer ended the connection rather
// than the connection failing.
func isPeerGone(err error) bool {
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		return true
	}
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
		return true
	}
	return false
}

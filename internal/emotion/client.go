package emotion

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

// Client pushes samples to a feed stream, as an external detector would.
type Client struct {
	conn   *websocket.Conn
	binary bool
}

// Dial connects to a feed stream URL such as ws://127.0.0.1:7788/v1/emotion/ws.
// With binary set, samples are sent as msgpack instead of JSON.
func Dial(ctx context.Context, url string, binary bool) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("emotion: dial %s: %w", url, err)
	}
	return &Client{conn: conn, binary: binary}, nil
}

// Send writes one sample. Invalid samples are rejected locally.
func (c *Client) Send(p Probabilities) error {
	if err := p.Validate(); err != nil {
		return err
	}
	messageType, data, err := EncodeSample(p, c.binary)
	if err != nil {
		return fmt.Errorf("emotion: encode sample: %w", err)
	}
	if err := c.conn.WriteMessage(messageType, data); err != nil {
		return fmt.Errorf("emotion: send sample: %w", err)
	}
	return nil
}

// Close says goodbye to the feed and closes the connection.
func (c *Client) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	//nolint:errcheck // Best-effort close frame, the connection is closed regardless
	c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	return c.conn.Close()
}

package emotion

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

// DecodeSample parses one feed frame. Text frames carry JSON, binary frames
// carry msgpack; both use the Probabilities field names. The sample is
// validated before it is returned.
func DecodeSample(messageType int, data []byte) (Probabilities, error) {
	var p Probabilities
	switch messageType {
	case websocket.TextMessage:
		if err := json.Unmarshal(data, &p); err != nil {
			return p, fmt.Errorf("%w: json: %v", ErrInvalidSample, err)
		}
	case websocket.BinaryMessage:
		if err := msgpack.Unmarshal(data, &p); err != nil {
			return p, fmt.Errorf("%w: msgpack: %v", ErrInvalidSample, err)
		}
	default:
		return p, fmt.Errorf("%w: unsupported frame type %d", ErrInvalidSample, messageType)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// EncodeSample is the inverse of DecodeSample.
func EncodeSample(p Probabilities, binary bool) (messageType int, data []byte, err error) {
	if binary {
		data, err = msgpack.Marshal(&p)
		return websocket.BinaryMessage, data, err
	}
	data, err = json.Marshal(p)
	return websocket.TextMessage, data, err
}

package emotion

import (
	"errors"
	"testing"

	"github.com/gorilla/websocket"
)

func TestSampleCodec(t *testing.T) {
	in := Probabilities{Smile: 0.75, LeftEyeOpen: 0.25, RightEyeOpen: 1}

	for _, binary := range []bool{false, true} {
		messageType, data, err := EncodeSample(in, binary)
		if err != nil {
			t.Fatalf("EncodeSample(binary=%v) failed: %v", binary, err)
		}
		if binary && messageType != websocket.BinaryMessage {
			t.Errorf("binary sample should use a binary frame, got %d", messageType)
		}
		if !binary && messageType != websocket.TextMessage {
			t.Errorf("JSON sample should use a text frame, got %d", messageType)
		}

		out, err := DecodeSample(messageType, data)
		if err != nil {
			t.Fatalf("DecodeSample(binary=%v) failed: %v", binary, err)
		}
		if out != in {
			t.Errorf("DecodeSample(binary=%v) = %+v, expected %+v", binary, out, in)
		}
	}
}

func TestDecodeSampleRejects(t *testing.T) {
	tests := []struct {
		name        string
		messageType int
		data        []byte
	}{
		{"malformed json", websocket.TextMessage, []byte(`{"smile":`)},
		{"out of range", websocket.TextMessage, []byte(`{"smile":2,"left_eye_open":0,"right_eye_open":0}`)},
		{"garbage msgpack", websocket.BinaryMessage, []byte{0xc1}},
		{"ping frame", websocket.PingMessage, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeSample(tc.messageType, tc.data)
			if !errors.Is(err, ErrInvalidSample) {
				t.Errorf("DecodeSample() = %v, expected ErrInvalidSample", err)
			}
		})
	}
}

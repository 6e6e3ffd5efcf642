package emotion

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func newTestFeed(t *testing.T) (*Signal, *httptest.Server) {
	t.Helper()
	sig := NewSignal()
	feed := NewFeed(sig, log.New(io.Discard))
	srv := httptest.NewServer(feed.Routes())
	t.Cleanup(func() {
		feed.Close()
		srv.Close()
	})
	return sig, srv
}

// waitFor polls the signal until it reports want or the deadline passes.
func waitFor(t *testing.T, sig *Signal, want Flags) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if sig.Load() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("signal = %+v, expected %+v", sig.Load(), want)
}

func TestFeedPostSample(t *testing.T) {
	sig, srv := newTestFeed(t)

	body := `{"smile":0.9,"left_eye_open":0.2,"right_eye_open":0.8}`
	resp, err := http.Post(srv.URL+"/v1/emotion", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, expected %d", resp.StatusCode, http.StatusNoContent)
	}
	want := Flags{Smile: true, RightEyeOpen: true}
	if got := sig.Load(); got != want {
		t.Errorf("signal = %+v, expected %+v", got, want)
	}
}

func TestFeedPostRejectsInvalid(t *testing.T) {
	sig, srv := newTestFeed(t)
	sig.Publish(Flags{Smile: true})

	bodies := []string{
		`{"smile":1.5,"left_eye_open":0,"right_eye_open":0}`,
		`not json`,
	}
	for _, body := range bodies {
		resp, err := http.Post(srv.URL+"/v1/emotion", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("POST failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("POST %q status = %d, expected %d", body, resp.StatusCode, http.StatusBadRequest)
		}
	}

	// Rejected samples leave the previous flags in place
	if got := sig.Load(); got != (Flags{Smile: true}) {
		t.Errorf("signal = %+v, expected previous flags", got)
	}
}

func TestFeedGetFlags(t *testing.T) {
	sig, srv := newTestFeed(t)
	sig.Publish(Flags{LeftEyeOpen: true})

	resp, err := http.Get(srv.URL + "/v1/emotion")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	var got Flags
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got != (Flags{LeftEyeOpen: true}) {
		t.Errorf("GET flags = %+v, expected left eye open only", got)
	}
}

func TestFeedStream(t *testing.T) {
	for _, binary := range []bool{false, true} {
		name := "json"
		if binary {
			name = "msgpack"
		}
		t.Run(name, func(t *testing.T) {
			sig, srv := newTestFeed(t)
			url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/emotion/ws"

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			client, err := Dial(ctx, url, binary)
			if err != nil {
				t.Fatalf("Dial() failed: %v", err)
			}
			defer client.Close()

			if err := client.Send(Probabilities{Smile: 0.8, LeftEyeOpen: 0.9, RightEyeOpen: 0.9}); err != nil {
				t.Fatalf("Send() failed: %v", err)
			}
			waitFor(t, sig, Flags{Smile: true, LeftEyeOpen: true, RightEyeOpen: true})

			if err := client.Send(Probabilities{Smile: 0.1, LeftEyeOpen: 0.9, RightEyeOpen: 0.3}); err != nil {
				t.Fatalf("Send() failed: %v", err)
			}
			waitFor(t, sig, Flags{LeftEyeOpen: true})
		})
	}
}

func TestClientRejectsInvalidSample(t *testing.T) {
	_, srv := newTestFeed(t)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/emotion/ws"

	client, err := Dial(context.Background(), url, false)
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	defer client.Close()

	if err := client.Send(Probabilities{Smile: -1}); err == nil {
		t.Error("Send() should reject out-of-range samples")
	}
}

func TestFeedServeStopsOnCancel(t *testing.T) {
	feed := NewFeed(NewSignal(), log.New(io.Discard))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- feed.ListenAndServe(ctx, "127.0.0.1:0")
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() = %v, expected nil after cancel", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("ListenAndServe did not return after cancel")
	}
}

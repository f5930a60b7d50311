package landmarks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/san-kum/gesturefx/internal/fx"
)

func TestDecode(t *testing.T) {
	hand := handJSON(t)
	tests := []struct {
		name    string
		data    string
		hands   int
		wantErr bool
	}{
		{"no hand", `{"timestamp": 12.5, "landmarks": []}`, 0, false},
		{"one hand", `{"timestamp": 13, "landmarks": [` + hand + `]}`, 1, false},
		{"short hand", `{"timestamp": 13, "landmarks": [[{"x":0.1,"y":0.2,"z":0}]]}`, 0, true},
		{"negative time", `{"timestamp": -1, "landmarks": []}`, 0, true},
		{"not json", `timestamp=3`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Decode([]byte(tt.data))
			if tt.wantErr {
				if !errors.Is(err, fx.ErrBadFrame) {
					t.Fatalf("Decode() error = %v, want ErrBadFrame", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if len(f.Hands) != tt.hands {
				t.Errorf("hands = %d, want %d", len(f.Hands), tt.hands)
			}
		})
	}
}

func handJSON(t *testing.T) string {
	t.Helper()
	b, err := json.Marshal(Synth(Open, 0.5, 0.5, 0))
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestLatest(t *testing.T) {
	var l Latest
	if _, seq := l.Snapshot(); seq != 0 {
		t.Fatalf("empty seq = %d", seq)
	}
	l.Publish(Frame{Timestamp: 1})
	l.Publish(Frame{Timestamp: 2})
	f, seq := l.Snapshot()
	if seq != 2 || f.Timestamp != 2 {
		t.Errorf("Snapshot() = %v, %d; want ts 2, seq 2", f.Timestamp, seq)
	}
}

func TestSynth(t *testing.T) {
	for _, shape := range []Shape{Open, Pinch, OK, Fist} {
		t.Run(shape.String(), func(t *testing.T) {
			pts := Synth(shape, 0.3, 0.6, 0)
			if len(pts) != fx.NumLandmarks {
				t.Fatalf("len = %d", len(pts))
			}
			var cx, cy float64
			for _, i := range fx.PalmIndices {
				cx += pts[i].X
				cy += pts[i].Y
			}
			cx, cy = 1-cx/5, cy/5
			if math.Abs(cx-0.3) > 1e-9 || math.Abs(cy-0.6) > 1e-9 {
				t.Errorf("palm centroid = (%v, %v), want (0.3, 0.6)", cx, cy)
			}
		})
	}

	pts := Synth(Open, 0.5, 0.5, 0.1)
	if d := fx.Dist2D(pts[fx.ThumbTip], pts[fx.IndexTip]); math.Abs(d-0.1) > 1e-9 {
		t.Errorf("open spread = %v, want 0.1", d)
	}
}

func TestParseShape(t *testing.T) {
	s, err := ParseShape(" OK ")
	if err != nil || s != OK {
		t.Errorf("ParseShape(OK) = %v, %v", s, err)
	}
	if _, err := ParseShape("peace"); !errors.Is(err, fx.ErrUnknownShape) {
		t.Errorf("ParseShape(peace) error = %v", err)
	}
}

func TestReadReplay(t *testing.T) {
	open, pinch := Open, Pinch
	frames := []Frame{
		SynthFrame(10, &open, 0.5, 0.5, 0),
		SynthFrame(20, nil, 0, 0, 0),
		SynthFrame(30, &pinch, 0.4, 0.4, 0),
	}
	var buf bytes.Buffer
	if err := Write(&buf, frames); err != nil {
		t.Fatal(err)
	}

	var dst Latest
	n, err := Replay(context.Background(), &buf, &dst, false)
	if err != nil || n != 3 {
		t.Fatalf("Replay() = %d, %v", n, err)
	}
	f, seq := dst.Snapshot()
	if seq != 3 || f.Timestamp != 30 || len(f.Hands) != 1 {
		t.Errorf("last frame = %+v seq %d", f.Timestamp, seq)
	}

	bad := strings.NewReader(`{"timestamp": 1, "landmarks": []}` + "\n" + `{"timestamp": 2, "landmarks": [[]]}`)
	err = Read(context.Background(), bad, func(Frame) error { return nil })
	if !errors.Is(err, fx.ErrBadFrame) || !strings.Contains(err.Error(), "frame 2") {
		t.Errorf("Read(bad) error = %v", err)
	}
}

func TestServer_Frame(t *testing.T) {
	var l Latest
	srv := NewServer(&l, func() any { return map[string]int{"ok": 1} })
	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/frame", "application/json", strings.NewReader(`{"landmarks": []}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("POST /frame status = %d", resp.StatusCode)
	}
	if f, seq := l.Snapshot(); seq != 1 || f.Timestamp <= 0 {
		t.Errorf("frame not stamped: ts %v seq %d", f.Timestamp, seq)
	}

	resp, err = http.Post(ts.URL+"/frame", "application/json", strings.NewReader(`{"landmarks": [[]]}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad frame status = %d", resp.StatusCode)
	}
	if acc, rej := srv.Stats(); acc != 1 || rej != 1 {
		t.Errorf("Stats() = %d, %d", acc, rej)
	}

	resp, err = http.Get(ts.URL + "/state")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.Header.Get("Content-Type") != "application/json" {
		t.Errorf("state content type = %q", resp.Header.Get("Content-Type"))
	}
}

func TestServer_KeepsZeroTimestamp(t *testing.T) {
	var l Latest
	srv := NewServer(&l, nil)
	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	time.Sleep(2 * time.Millisecond)
	resp, err := http.Post(ts.URL+"/frame", "application/json", strings.NewReader(`{"timestamp": 0, "landmarks": []}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("POST /frame status = %d", resp.StatusCode)
	}
	if f, seq := l.Snapshot(); seq != 1 || f.Timestamp != 0 {
		t.Errorf("explicit zero timestamp replaced: ts %v seq %d", f.Timestamp, seq)
	}
}

func TestServer_Websocket(t *testing.T) {
	var l Latest
	ts := httptest.NewServer(NewServer(&l, nil).Routes())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	ok := OK
	frame := SynthFrame(42, &ok, 0.5, 0.5, 0)
	if err := conn.WriteJSON(frame); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for {
		if f, seq := l.Snapshot(); seq == 1 {
			if f.Timestamp != 42 || len(f.Hands) != 1 {
				t.Errorf("published %+v", f)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("frame never published")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"timestamp": 43, "landmarks": [[]]}`)); err != nil {
		t.Fatal(err)
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read error reply: %v", err)
	}
	if !strings.Contains(string(msg), "error") {
		t.Errorf("reply = %s, want an error message", msg)
	}
}

package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/trc-server/internal/config"
	"github.com/vovakirdan/trc-server/internal/core"
)

func startTestServer(t *testing.T) (*httptest.Server, *core.Hub) {
	t.Helper()

	logger := zerolog.Nop()
	hub := core.NewHub(&logger)
	server := NewServer(hub, config.Default(), &logger)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)
	return ts, hub
}

func TestHealthEndpoint(t *testing.T) {
	ts, _ := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestStatsEndpoint(t *testing.T) {
	ts, _ := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/api/stats")
	if err != nil {
		t.Fatalf("stats request failed: %v", err)
	}
	defer resp.Body.Close()

	var stats StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.Sessions != 0 || stats.Rooms != 0 {
		t.Fatalf("expected empty stats, got %+v", stats)
	}
}

// wsReadUntil accumulates text frames until the output contains want.
func wsReadUntil(t *testing.T, ctx context.Context, conn *websocket.Conn, want string) string {
	t.Helper()

	var b strings.Builder
	for !strings.Contains(b.String(), want) {
		_, data, err := conn.Read(ctx)
		if err != nil {
			t.Fatalf("did not see %q, got %q (read error: %v)", want, b.String(), err)
		}
		b.Write(data)
	}
	return b.String()
}

func wsSendLine(t *testing.T, ctx context.Context, conn *websocket.Conn, line string) {
	t.Helper()
	if err := conn.Write(ctx, websocket.MessageText, []byte(line)); err != nil {
		t.Fatalf("write %q: %v", line, err)
	}
}

func TestWebSocketLineBridge(t *testing.T) {
	ts, hub := startTestServer(t)
	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("ws dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "done")

	wsReadUntil(t, ctx, conn, "<Please enter username>")
	wsSendLine(t, ctx, conn, "alice")
	wsReadUntil(t, ctx, conn, "Welcome alice!")

	wsSendLine(t, ctx, conn, "/create lobby")
	wsReadUntil(t, ctx, conn, "-> You created and joined the room 'lobby'")

	rooms := hub.Rooms()
	if len(rooms) != 1 || rooms[0].Name != "lobby" || rooms[0].Members != 1 {
		t.Fatalf("unexpected hub state after ws create: %+v", rooms)
	}

	resp, err := ts.Client().Get(ts.URL + "/api/rooms")
	if err != nil {
		t.Fatalf("rooms request failed: %v", err)
	}
	defer resp.Body.Close()

	var listed []core.RoomInfo
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode rooms: %v", err)
	}
	if len(listed) != 1 || listed[0].Name != "lobby" || listed[0].Members != 1 {
		t.Fatalf("unexpected /api/rooms payload: %+v", listed)
	}
}

func TestWebSocketQuit(t *testing.T) {
	ts, _ := startTestServer(t)
	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("ws dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "done")

	wsReadUntil(t, ctx, conn, "<Please enter username>")
	wsSendLine(t, ctx, conn, "alice")
	wsReadUntil(t, ctx, conn, "Welcome alice!")
	wsSendLine(t, ctx, conn, "/quit")
	wsReadUntil(t, ctx, conn, "-> See You Space Cowboy!")
}

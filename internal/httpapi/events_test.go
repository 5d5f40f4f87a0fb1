package httpapi

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"applydesk-engine/internal/events"
)

// readEvent scans one "data:" line off an SSE stream.
func readEvent(t *testing.T, sc *bufio.Scanner) events.Event {
	t.Helper()
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var e events.Event
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &e); err != nil {
			t.Fatalf("bad event payload %q: %v", line, err)
		}
		return e
	}
	t.Fatalf("stream ended without an event: %v", sc.Err())
	return events.Event{}
}

func TestEventsStream(t *testing.T) {
	e := newEnv(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.srv.URL+"/events", nil)
	if err != nil {
		t.Fatal(err)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	if ct := res.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content-type = %q", ct)
	}

	sc := bufio.NewScanner(res.Body)

	// connection opens with a ping envelope
	ping := readEvent(t, sc)
	if ping.Type != events.TypePing {
		t.Fatalf("first event = %q, want ping", ping.Type)
	}

	// a successful application is fanned out to the stream
	e.login(t)
	e.get(t, "/jobs", nil)
	e.post(t, "/jobs/j1/apply", map[string]string{"repoUrl": "https://github.com/jane/repo"}, nil)

	for {
		evt := readEvent(t, sc)
		if evt.Type == events.TypeApplicationSubmitted {
			var data map[string]string
			if err := json.Unmarshal(evt.Data, &data); err != nil || data["jobId"] != "j1" {
				t.Errorf("event data = %s (%v)", evt.Data, err)
			}
			return
		}
		// session_changed and jobs_loaded arrive first; skip past them
	}
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"psy211-course-service/internal/app"
	"psy211-course-service/internal/content"
	"psy211-course-service/internal/infra/memory"
)

func newTestHandler(t *testing.T) *WSHandler {
	t.Helper()
	units := memory.NewUnitRepository(memory.NewStaticUnitLoader(content.Units()), time.Minute)
	store := memory.NewContentStore()
	course := content.Course()
	factory := func(ctx context.Context) (*app.CourseService, error) {
		return app.NewCourseService(ctx, course, units, store, nil, nil)
	}
	return NewWSHandler(factory)
}

func TestWebSocketQuizFlow(t *testing.T) {
	wsHandler := newTestHandler(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	server := httptest.NewServer(mux)
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// The first frame is always a full snapshot of the home screen.
	view := waitForView(conn, t, func(v viewFrame) bool { return v.Screen == "HOME" })
	if len(view.Units) == 0 {
		t.Fatalf("expected unit catalog on home screen")
	}

	firstUnit := content.Units()[0]
	writeIntent(conn, t, "openUnit", map[string]any{"unitId": firstUnit.ID})
	view = waitForView(conn, t, func(v viewFrame) bool { return v.Screen == "UNIT_VIEW" && v.Unit != nil })
	if view.Unit.ID != firstUnit.ID {
		t.Fatalf("expected unit %d open, got %d", firstUnit.ID, view.Unit.ID)
	}

	writeIntent(conn, t, "startQuiz", nil)
	view = waitForView(conn, t, func(v viewFrame) bool { return v.Quiz != nil && v.Quiz.Phase == "RUNNING" })
	if view.Quiz.Question == nil {
		t.Fatalf("expected a current question while running")
	}
	if view.Quiz.Question.Answer != "" {
		t.Fatalf("answer must be withheld before submission")
	}

	writeIntent(conn, t, "answer", map[string]any{"choice": firstUnit.Questions[0].Answer})
	view = waitForView(conn, t, func(v viewFrame) bool { return v.Quiz != nil && v.Quiz.Answered })
	if view.Quiz.LastCorrect == nil || !*view.Quiz.LastCorrect {
		t.Fatalf("expected correct verdict for the model answer")
	}
	if view.Quiz.Question.Answer == "" {
		t.Fatalf("answer must be revealed after submission")
	}
}

func TestWebSocketUnsupportedIntent(t *testing.T) {
	wsHandler := newTestHandler(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	server := httptest.NewServer(mux)
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitForView(conn, t, func(v viewFrame) bool { return v.Screen == "HOME" })

	writeIntent(conn, t, "teleport", nil)
	typ, raw := readNext(conn, t)
	if typ != "error" {
		t.Fatalf("expected error frame, got %s", typ)
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	if payload.Message == "" {
		t.Fatalf("expected error message")
	}
}

type viewFrame struct {
	Screen string `json:"screen"`
	Units  []struct {
		ID int `json:"id"`
	} `json:"units"`
	Unit *struct {
		ID     int    `json:"id"`
		SubTab string `json:"subTab"`
	} `json:"unit"`
	Quiz *struct {
		Phase    string `json:"phase"`
		Answered bool   `json:"answered"`
		Question *struct {
			ID     string `json:"id"`
			Answer string `json:"answer"`
		} `json:"question"`
		LastCorrect *bool `json:"lastCorrect"`
	} `json:"quiz"`
}

func writeIntent(conn *websocket.Conn, t *testing.T, typ string, payload map[string]any) {
	t.Helper()
	if err := conn.WriteJSON(map[string]any{"type": typ, "payload": payload}); err != nil {
		t.Fatalf("write %s: %v", typ, err)
	}
}

func readNext(conn *websocket.Conn, t *testing.T) (string, json.RawMessage) {
	t.Helper()
	var msg struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	return msg.Type, msg.Payload
}

// waitForView drains frames until one matches; intermediate snapshots such as
// busy-flag flips are expected and skipped.
func waitForView(conn *websocket.Conn, t *testing.T, match func(viewFrame) bool) viewFrame {
	t.Helper()
	for i := 0; i < 20; i++ {
		typ, raw := readNext(conn, t)
		if typ != "view" {
			continue
		}
		var view viewFrame
		if err := json.Unmarshal(raw, &view); err != nil {
			t.Fatalf("decode view: %v", err)
		}
		if match(view) {
			return view
		}
	}
	t.Fatalf("no matching view frame received")
	return viewFrame{}
}

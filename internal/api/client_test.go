package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/joe192839/Mindduel/internal/question"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, zerolog.Nop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c, srv
}

func TestNew_EmptyBaseURL(t *testing.T) {
	_, err := New("", zerolog.Nop())
	var cfgErr *ErrConfig
	if !errors.As(err, &cfgErr) {
		t.Fatalf("New(\"\") error = %v, want *ErrConfig", err)
	}
}

func TestStartSession(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/quickplay/api/start-game/" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Categories []string   `json:"selected_categories"`
			Device     DeviceInfo `json:"device_info"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		if len(body.Categories) != 2 || body.Device.InstallID != "inst-1" {
			t.Errorf("unexpected request body: %+v", body)
		}
		json.NewEncoder(w).Encode(map[string]string{"session_id": "s-99"})
	}))

	id, err := c.StartSession(context.Background(), []string{"science", "history"}, DeviceInfo{InstallID: "inst-1"})
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	if id != "s-99" {
		t.Errorf("session id = %q, want s-99", id)
	}
}

func TestStartSession_MissingSessionID(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))

	_, err := c.StartSession(context.Background(), nil, DeviceInfo{})
	var protoErr *ErrProtocol
	if !errors.As(err, &protoErr) {
		t.Fatalf("error = %v, want *ErrProtocol", err)
	}
}

func TestNextQuestion(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("session_id"); got != "s-1" {
			t.Errorf("session_id = %q, want s-1", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":            417,
			"question_text": "Which planet is known as the Red Planet?",
			"option_1":      "Mars",
			"option_2":      "Venus",
			"option_3":      "Jupiter",
			"option_4":      "Saturn",
			"category":      "science",
		})
	}))

	q, err := c.NextQuestion(context.Background(), "s-1")
	if err != nil {
		t.Fatalf("NextQuestion failed: %v", err)
	}
	if q.ID != "417" {
		t.Errorf("ID = %q, want 417", q.ID)
	}
	if len(q.Options) != 4 || q.Options[0] != "Mars" {
		t.Errorf("options = %v", q.Options)
	}
	if q.AIGenerated {
		t.Error("standard question marked AI generated")
	}
}

func TestNextQuestion_GameOver(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "game_over"})
	}))

	_, err := c.NextQuestion(context.Background(), "s-1")
	if !errors.Is(err, question.ErrExhausted) {
		t.Fatalf("error = %v, want question.ErrExhausted", err)
	}
}

func TestGenerateQuestion(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			SessionID string `json:"session_id"`
			Score     int    `json:"score"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.SessionID != "s-1" || body.Score != 7 {
			t.Errorf("unexpected request body: %+v", body)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"question": map[string]any{
				"id":             "gen-5",
				"text":           "Which gas makes up most of Earth's atmosphere?",
				"answers":        []string{"Nitrogen", "Oxygen", "Carbon dioxide", "Argon"},
				"correct_answer": "Nitrogen",
				"category":       "science",
			},
		})
	}))

	q, err := c.GenerateQuestion(context.Background(), "s-1", 7)
	if err != nil {
		t.Fatalf("GenerateQuestion failed: %v", err)
	}
	if !q.AIGenerated {
		t.Error("generated question not marked AI generated")
	}
	if q.CorrectAnswer != "Nitrogen" {
		t.Errorf("CorrectAnswer = %q", q.CorrectAnswer)
	}
}

func TestGenerateQuestion_MalformedShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"wrong status", `{"status": "error"}`},
		{"three answers", `{"status":"success","question":{"id":"g","text":"Q?","answers":["a","b","c"],"correct_answer":"a"}}`},
		{"answer not in set", `{"status":"success","question":{"id":"g","text":"Q?","answers":["a","b","c","d"],"correct_answer":"e"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			_, err := c.GenerateQuestion(context.Background(), "s-1", 0)
			var protoErr *ErrProtocol
			if !errors.As(err, &protoErr) {
				t.Fatalf("error = %v, want *ErrProtocol", err)
			}
		})
	}
}

func TestSubmitAnswer(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/quickplay/api/submit-answer/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"correct": true, "score": 4, "lives": 2})
	}))

	res, err := c.SubmitAnswer(context.Background(), "s-1", "417", "Mars", 3.2)
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if !res.Correct || res.Score != 4 || res.Lives != 2 {
		t.Errorf("result = %+v", res)
	}
}

func TestEndSession_Paths(t *testing.T) {
	var gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]string{"redirect": "/quickplay/results/9/"})
	})

	c, _ := newTestClient(t, handler)

	res, err := c.EndSession(context.Background(), EndRequest{SessionID: "9", Reason: "lives"})
	if err != nil {
		t.Fatalf("EndSession failed: %v", err)
	}
	if gotPath != "/quickplay/api/end-game/9/" {
		t.Errorf("identified path = %s", gotPath)
	}
	if res.Redirect != "/quickplay/results/9/" {
		t.Errorf("redirect = %q", res.Redirect)
	}

	if _, err := c.EndSession(context.Background(), EndRequest{SessionID: "anonymous", Reason: "lives"}); err != nil {
		t.Fatalf("anonymous EndSession failed: %v", err)
	}
	if gotPath != "/quickplay/api/end-game/" {
		t.Errorf("anonymous path = %s", gotPath)
	}
}

func TestDo_HTTPErrorStatus(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := c.NextQuestion(context.Background(), "s-1")
	var protoErr *ErrProtocol
	if !errors.As(err, &protoErr) {
		t.Fatalf("error = %v, want *ErrProtocol", err)
	}
	if protoErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d", protoErr.StatusCode)
	}
}

func TestDo_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c, err := New(srv.URL, zerolog.Nop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	srv.Close()

	_, err = c.NextQuestion(context.Background(), "s-1")
	var netErr *ErrNetwork
	if !errors.As(err, &netErr) {
		t.Fatalf("error = %v, want *ErrNetwork", err)
	}
}

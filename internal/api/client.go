// Package api is the HTTP client for the quickplay service. It speaks the
// four-step session protocol (start, question, answer, end) plus the
// generated-question endpoint, and normalizes the service's wire shapes into
// the internal question model.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/joe192839/Mindduel/internal/question"
)

const defaultTimeout = 15 * time.Second

// DeviceInfo is the client metadata reported at session start and end.
type DeviceInfo struct {
	InstallID  string `json:"install_id"`
	Platform   string `json:"platform"`
	AppVersion string `json:"app_version"`
	Terminal   string `json:"terminal,omitempty"`
	Locale     string `json:"locale,omitempty"`
	Timezone   string `json:"timezone,omitempty"`
}

// CollectDeviceInfo fills DeviceInfo from the running environment.
func CollectDeviceInfo(installID, appVersion string) DeviceInfo {
	zone, _ := time.Now().Zone()
	return DeviceInfo{
		InstallID:  installID,
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		AppVersion: appVersion,
		Terminal:   os.Getenv("TERM"),
		Locale:     os.Getenv("LANG"),
		Timezone:   zone,
	}
}

// SubmitResult is the service's verdict on one answer. Score and Lives are
// authoritative and overwrite any locally tracked values.
type SubmitResult struct {
	Correct bool `json:"correct"`
	Score   int  `json:"score"`
	Lives   int  `json:"lives"`
}

// EndRequest is the final report for a session.
type EndRequest struct {
	SessionID         string     `json:"-"`
	Reason            string     `json:"reason"`
	Score             int        `json:"score"`
	Lives             int        `json:"lives"`
	HighestSpeedLevel int        `json:"highest_speed_level"`
	UsedAIQuestions   bool       `json:"used_ai_questions"`
	SessionDuration   float64    `json:"session_duration"`
	Device            DeviceInfo `json:"device_info"`
}

// EndResult carries the service's post-game navigation hint, if any.
type EndResult struct {
	Redirect string `json:"redirect"`
}

// Client talks to one quickplay service instance. Methods are safe for
// concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New creates a Client for the service at baseURL.
func New(baseURL string, log zerolog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, &ErrConfig{Field: "base URL", Reason: "is empty"}
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, &ErrConfig{Field: "base URL", Reason: "is not a valid URL"}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		log:     log,
	}, nil
}

// SetHTTPClient replaces the underlying HTTP client. Used by tests and by
// callers that need custom transports.
func (c *Client) SetHTTPClient(hc *http.Client) { c.http = hc }

// StartSession opens a new session and returns its id.
func (c *Client) StartSession(ctx context.Context, categories []string, device DeviceInfo) (string, error) {
	payload := struct {
		Categories []string   `json:"selected_categories"`
		Device     DeviceInfo `json:"device_info"`
	}{Categories: categories, Device: device}

	var resp struct {
		SessionID string `json:"session_id"`
	}
	if err := c.do(ctx, "start session", http.MethodPost, "/quickplay/api/start-game/", payload, &resp); err != nil {
		return "", err
	}
	if resp.SessionID == "" {
		return "", &ErrProtocol{Op: "start session", Err: fmt.Errorf("response has no session_id")}
	}
	c.log.Info().Str("session_id", resp.SessionID).Msg("session started")
	return resp.SessionID, nil
}

// standardQuestion is the pre-authored question wire shape.
type standardQuestion struct {
	Status   string      `json:"status"`
	ID       json.Number `json:"id"`
	Text     string      `json:"question_text"`
	Option1  string      `json:"option_1"`
	Option2  string      `json:"option_2"`
	Option3  string      `json:"option_3"`
	Option4  string      `json:"option_4"`
	Category string      `json:"category"`
}

// NextQuestion fetches the next pre-authored question for the session.
// Returns question.ErrExhausted when the service reports the pool is done.
func (c *Client) NextQuestion(ctx context.Context, sessionID string) (question.Question, error) {
	path := "/quickplay/api/get-question/?session_id=" + url.QueryEscape(sessionID)

	var resp standardQuestion
	if err := c.do(ctx, "fetch question", http.MethodGet, path, nil, &resp); err != nil {
		return question.Question{}, err
	}
	if resp.Status == "game_over" {
		return question.Question{}, question.ErrExhausted
	}
	q := question.Question{
		ID:       resp.ID.String(),
		Text:     resp.Text,
		Options:  []string{resp.Option1, resp.Option2, resp.Option3, resp.Option4},
		Category: resp.Category,
	}
	if q.Text == "" {
		return question.Question{}, &ErrProtocol{Op: "fetch question", Err: fmt.Errorf("response has no question text")}
	}
	return q, nil
}

// generatedQuestion is the AI question wire shape.
type generatedQuestion struct {
	Status   string `json:"status"`
	Question struct {
		ID            json.Number `json:"id"`
		Text          string      `json:"text"`
		Answers       []string    `json:"answers"`
		CorrectAnswer string      `json:"correct_answer"`
		Category      string      `json:"category"`
	} `json:"question"`
}

// GenerateQuestion asks the service for a freshly generated question tuned
// to the current score. Any response outside the agreed shape is an
// ErrProtocol, which the caller treats as a signal to fall back to the
// standard pool.
func (c *Client) GenerateQuestion(ctx context.Context, sessionID string, score int) (question.Question, error) {
	payload := struct {
		SessionID string `json:"session_id"`
		Score     int    `json:"score"`
	}{SessionID: sessionID, Score: score}

	var resp generatedQuestion
	if err := c.do(ctx, "generate question", http.MethodPost, "/api/questions/generate/", payload, &resp); err != nil {
		return question.Question{}, err
	}
	if resp.Status != "success" {
		return question.Question{}, &ErrProtocol{Op: "generate question", Err: fmt.Errorf("status %q", resp.Status)}
	}
	q := question.Question{
		ID:            resp.Question.ID.String(),
		Text:          resp.Question.Text,
		Options:       resp.Question.Answers,
		CorrectAnswer: resp.Question.CorrectAnswer,
		Category:      resp.Question.Category,
		AIGenerated:   true,
	}
	if err := q.Validate(); err != nil {
		return question.Question{}, &ErrProtocol{Op: "generate question", Err: err}
	}
	return q, nil
}

// SubmitAnswer reports the player's answer and returns the service's verdict.
func (c *Client) SubmitAnswer(ctx context.Context, sessionID, questionID, answer string, responseTime float64) (SubmitResult, error) {
	payload := struct {
		SessionID    string  `json:"session_id"`
		QuestionID   string  `json:"question_id"`
		Answer       string  `json:"answer"`
		ResponseTime float64 `json:"response_time"`
	}{SessionID: sessionID, QuestionID: questionID, Answer: answer, ResponseTime: responseTime}

	var resp SubmitResult
	if err := c.do(ctx, "submit answer", http.MethodPost, "/quickplay/api/submit-answer/", payload, &resp); err != nil {
		return SubmitResult{}, err
	}
	return resp, nil
}

// EndSession reports the session outcome. Anonymous sessions post to the
// bare end-game path; identified sessions address their own record.
func (c *Client) EndSession(ctx context.Context, req EndRequest) (EndResult, error) {
	path := "/quickplay/api/end-game/"
	if req.SessionID != "" && req.SessionID != "anonymous" {
		path += url.PathEscape(req.SessionID) + "/"
	}

	var resp EndResult
	if err := c.do(ctx, "end session", http.MethodPost, path, req, &resp); err != nil {
		return EndResult{}, err
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return &ErrProtocol{Op: op, Err: err}
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &ErrNetwork{Op: op, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("op", op).Msg("request failed")
		return &ErrNetwork{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ErrNetwork{Op: op, Err: err}
	}

	c.log.Debug().
		Str("op", op).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request done")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ErrProtocol{Op: op, StatusCode: resp.StatusCode, Body: raw}
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &ErrProtocol{Op: op, Body: raw, Err: err}
		}
	}
	return nil
}

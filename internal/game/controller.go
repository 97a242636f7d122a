package game

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/joe192839/Mindduel/internal/api"
	"github.com/joe192839/Mindduel/internal/countdown"
	"github.com/joe192839/Mindduel/internal/question"
	"github.com/joe192839/Mindduel/internal/schedule"
	"github.com/joe192839/Mindduel/internal/transition"
)

const endReportTimeout = 10 * time.Second

// Service is the slice of the quickplay API the controller drives directly.
// Question fetching goes through question.Source instead.
type Service interface {
	StartSession(ctx context.Context, categories []string, device api.DeviceInfo) (string, error)
	SubmitAnswer(ctx context.Context, sessionID, questionID, answer string, responseTime float64) (api.SubmitResult, error)
	EndSession(ctx context.Context, req api.EndRequest) (api.EndResult, error)
}

// Preferences persists the settings that outlive a session.
type Preferences interface {
	SoundEnabled() (bool, error)
	SetSoundEnabled(enabled bool) error
}

// MatchRecord is one finished session, kept locally for the stats view.
type MatchRecord struct {
	SessionID         string
	Score             int
	Lives             int
	HighestSpeedLevel int
	UsedAIQuestions   bool
	Reason            string
	Duration          time.Duration
	PlayedAt          time.Time
}

// Recorder stores finished sessions.
type Recorder interface {
	RecordMatch(m MatchRecord) error
}

// Config wires a Controller. Service and Sources are required; Clock
// defaults to the real clock, and Prefs/History are optional.
type Config struct {
	Service    Service
	Sources    func(sessionID string) question.Source
	Clock      clockwork.Clock
	Sink       Sink
	Logger     zerolog.Logger
	Prefs      Preferences
	History    Recorder
	Categories []string
	Device     api.DeviceInfo
}

// Controller runs one quickplay session at a time. Blocking methods are
// meant to be called from their own goroutines (the TUI runs them as
// commands); internal state is guarded by a mutex, and the Starting and
// Submitting phases double as mutual-exclusion guards so only one request
// of each kind is ever in flight.
type Controller struct {
	svc        Service
	newSource  func(sessionID string) question.Source
	clock      clockwork.Clock
	sink       Sink
	log        zerolog.Logger
	prefs      Preferences
	history    Recorder
	categories []string
	device     api.DeviceInfo

	timer *countdown.Timer
	trans *transition.Transition

	mu         sync.Mutex
	st         State
	src        question.Source
	gen        int
	starting   bool
	submitting bool
	ctx        context.Context
	cancel     context.CancelFunc
}

// New creates an idle Controller.
func New(cfg Config) *Controller {
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	c := &Controller{
		svc:        cfg.Service,
		newSource:  cfg.Sources,
		clock:      clock,
		sink:       cfg.Sink,
		log:        cfg.Logger,
		prefs:      cfg.Prefs,
		history:    cfg.History,
		categories: cfg.Categories,
		device:     cfg.Device,
		timer:      countdown.New(clock),
		trans:      transition.New(clock),
	}
	// A transition in flight owns the timer.
	c.timer.SetGate(c.trans.Announcing)

	reset(&c.st)
	c.st.SoundEnabled = true
	if cfg.Prefs != nil {
		if enabled, err := cfg.Prefs.SoundEnabled(); err == nil {
			c.st.SoundEnabled = enabled
		}
	}
	return c
}

func (c *Controller) emit(ev Event) {
	if c.sink != nil {
		c.sink(ev)
	}
}

// Snapshot returns a copy of the current state for rendering.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.st
	if c.st.Current != nil {
		q := *c.st.Current
		st.Current = &q
	}
	return st
}

// StartSession opens a session with the service, then fetches the first
// question. A call while another start is in flight is ignored; a call
// while a session is active is a state error.
func (c *Controller) StartSession(ctx context.Context) error {
	c.mu.Lock()
	if c.starting {
		c.mu.Unlock()
		return nil
	}
	if c.st.Active {
		c.mu.Unlock()
		return &ErrState{Op: "start session", Reason: "session already active"}
	}
	c.starting = true
	gen := c.gen
	c.mu.Unlock()

	id, err := c.svc.StartSession(ctx, c.categories, c.device)

	c.mu.Lock()
	c.starting = false
	if gen != c.gen {
		c.mu.Unlock()
		return nil
	}
	if err != nil {
		c.mu.Unlock()
		c.emit(Failure{Op: "start session", Err: err})
		return err
	}

	initialize(&c.st, id, c.clock.Now())
	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.src = c.newSource(id)
	c.mu.Unlock()

	c.log.Info().Str("session_id", id).Msg("session started")
	c.emit(SessionStarted{SessionID: id})
	return c.AdvanceQuestion(ctx)
}

// AdvanceQuestion computes the time limit for the current score, plays the
// difficulty announcement if the tier changed, fetches the next question,
// and starts the countdown. Exhaustion of the question pool ends the
// session with reason complete; any other fetch failure deactivates the
// session and is surfaced as a Failure.
func (c *Controller) AdvanceQuestion(ctx context.Context) error {
	c.mu.Lock()
	if !c.st.Active || c.submitting {
		c.mu.Unlock()
		return nil
	}
	tr := schedule.TransitionForScore(c.st.Score)
	gen := c.gen
	src := c.src
	score := c.st.Score
	c.mu.Unlock()

	if tr.Changed {
		c.timer.Stop()
		c.emit(TransitionStarted{OldLimit: tr.OldLimit, NewLimit: tr.NewLimit})
		if _, err := c.trans.Run(ctx, tr.OldLimit, tr.NewLimit); err != nil {
			if errors.Is(err, transition.ErrInFlight) {
				return nil
			}
			return err
		}
		c.emit(TransitionEnded{Limit: tr.NewLimit})
	}

	q, err := src.Next(ctx, score)
	if err != nil {
		if errors.Is(err, question.ErrExhausted) {
			return c.EndSession(ctx, ReasonComplete)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return c.failSession(gen, "fetch question", err)
	}

	c.mu.Lock()
	if gen != c.gen || !c.st.Active {
		c.mu.Unlock()
		return nil
	}
	setCurrentQuestion(&c.st, q, c.clock.Now())
	trackSpeedLevel(&c.st, tr.NewLimit)
	idx := c.st.QuestionIndex
	c.mu.Unlock()

	c.timer.Start(time.Duration(tr.NewLimit)*time.Second, c.handleExpiry)
	c.emit(QuestionReady{Question: q, Index: idx, Limit: tr.NewLimit})
	return nil
}

// SubmitAnswer reports the player's answer. It is a no-op when no session
// is active, no question is shown, or another submit is in flight. The
// service's score and lives overwrite the local values.
func (c *Controller) SubmitAnswer(ctx context.Context, answer string) error {
	c.mu.Lock()
	if !c.st.Active || c.submitting || c.st.Current == nil {
		c.mu.Unlock()
		return nil
	}
	c.submitting = true
	q := *c.st.Current
	sid := c.st.SessionID
	responseTime := c.clock.Since(c.st.questionShownAt).Seconds()
	gen := c.gen
	c.mu.Unlock()

	res, err := c.svc.SubmitAnswer(ctx, sid, q.ID, answer, responseTime)

	c.mu.Lock()
	c.submitting = false
	if gen != c.gen || !c.st.Active {
		c.mu.Unlock()
		return nil
	}
	if err != nil {
		c.mu.Unlock()
		// The countdown keeps running; the player may answer again.
		c.emit(Failure{Op: "submit answer", Err: err})
		return err
	}
	c.st.Score = res.Score
	c.st.Lives = res.Lives
	c.mu.Unlock()

	c.timer.Stop()
	c.emit(AnswerResult{Correct: res.Correct, Score: res.Score, Lives: res.Lives})

	if res.Lives <= 0 {
		return c.EndSession(ctx, ReasonLives)
	}
	return c.AdvanceQuestion(ctx)
}

// failSession deactivates the session after a question fetch fails
// mid-session: the countdown stops, pending work is cancelled, and later
// submits against the stale question are no-ops. The error is surfaced as a
// Failure; no end-of-session report is attempted.
func (c *Controller) failSession(gen int, op string, err error) error {
	c.mu.Lock()
	if gen != c.gen || !c.st.Active {
		c.mu.Unlock()
		return err
	}
	c.st.Active = false
	c.gen++
	cancel := c.cancel
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.timer.Stop()

	c.log.Error().Err(err).Str("op", op).Msg("session failed")
	c.emit(Failure{Op: op, Err: err})
	return err
}

// handleExpiry treats a run-out countdown as an incorrect answer with no
// answer round-trip. A submit already in flight wins over the expiry.
func (c *Controller) handleExpiry() {
	c.mu.Lock()
	if !c.st.Active || c.submitting {
		c.mu.Unlock()
		return
	}
	c.st.Lives--
	lives := c.st.Lives
	score := c.st.Score
	ctx := c.ctx
	c.mu.Unlock()

	c.emit(AnswerResult{Expired: true, Score: score, Lives: lives})

	// The expiry fires inside the tick loop; the follow-up network work
	// must not block it.
	go func() {
		if lives <= 0 {
			_ = c.EndSession(ctx, ReasonLives)
			return
		}
		_ = c.AdvanceQuestion(ctx)
	}()
}

// EndSession terminates the session and reports the outcome to the service.
// Idempotent: an inactive session is a no-op. The report is best effort; a
// results target is always computed and emitted, so a network failure never
// strands the player.
func (c *Controller) EndSession(ctx context.Context, reason EndReason) error {
	c.mu.Lock()
	if !c.st.Active {
		c.mu.Unlock()
		return nil
	}
	c.st.Active = false
	c.gen++
	cancel := c.cancel
	snap := c.st
	duration := c.clock.Since(c.st.startedAt)
	c.mu.Unlock()

	c.timer.Stop()
	if cancel != nil {
		cancel()
	}

	endCtx, done := context.WithTimeout(context.WithoutCancel(ctx), endReportTimeout)
	defer done()

	redirect := resultsPath(snap.SessionID)
	res, err := c.svc.EndSession(endCtx, api.EndRequest{
		SessionID:         snap.SessionID,
		Reason:            string(reason),
		Score:             snap.Score,
		Lives:             snap.Lives,
		HighestSpeedLevel: snap.HighestSpeedLevel,
		UsedAIQuestions:   snap.usedAIQuestions,
		SessionDuration:   duration.Seconds(),
		Device:            c.device,
	})
	if err != nil {
		c.log.Warn().Err(err).Str("session_id", snap.SessionID).Msg("end-of-session report failed")
	} else if res.Redirect != "" {
		redirect = res.Redirect
	}

	if c.history != nil {
		rec := MatchRecord{
			SessionID:         snap.SessionID,
			Score:             snap.Score,
			Lives:             snap.Lives,
			HighestSpeedLevel: snap.HighestSpeedLevel,
			UsedAIQuestions:   snap.usedAIQuestions,
			Reason:            string(reason),
			Duration:          duration,
			PlayedAt:          c.clock.Now(),
		}
		if err := c.history.RecordMatch(rec); err != nil {
			c.log.Warn().Err(err).Msg("recording match failed")
		}
	}

	c.log.Info().
		Str("session_id", snap.SessionID).
		Str("reason", string(reason)).
		Int("score", snap.Score).
		Msg("session ended")
	c.emit(SessionEnded{Reason: reason, Redirect: redirect, Score: snap.Score, Lives: snap.Lives})
	return nil
}

// Teardown abandons the session without the end-of-session report. Pending
// timers are cancelled and any in-flight response will be discarded.
func (c *Controller) Teardown() {
	c.mu.Lock()
	c.gen++
	c.st.Active = false
	cancel := c.cancel
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.timer.Stop()
}

// TickTimer recomputes the countdown from wall time. The tick loop calls
// this on every rendering opportunity; expiry is detected here.
func (c *Controller) TickTimer() (remaining int, running bool) {
	remaining, running = c.timer.Tick()
	if running {
		c.emit(TimerTick{Remaining: remaining})
	}
	return remaining, running
}

// ToggleSound flips the sound preference and persists it.
func (c *Controller) ToggleSound() bool {
	c.mu.Lock()
	c.st.SoundEnabled = !c.st.SoundEnabled
	enabled := c.st.SoundEnabled
	c.mu.Unlock()

	if c.prefs != nil {
		if err := c.prefs.SetSoundEnabled(enabled); err != nil {
			c.log.Warn().Err(err).Msg("saving sound preference failed")
		}
	}
	return enabled
}

// SetFullscreen records the terminal's fullscreen state.
func (c *Controller) SetFullscreen(on bool) {
	c.mu.Lock()
	c.st.Fullscreen = on
	c.mu.Unlock()
}

// resultsPath is the fallback results target when the service does not
// name one.
func resultsPath(sessionID string) string {
	if sessionID == AnonymousSessionID || sessionID == "" {
		return "/quickplay/results/"
	}
	return "/quickplay/results/" + sessionID + "/"
}

package game

import (
	"context"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	gamectl "github.com/joe192839/Mindduel/internal/game"
	"github.com/joe192839/Mindduel/internal/question"
	"github.com/joe192839/Mindduel/internal/router"
	"github.com/joe192839/Mindduel/internal/screen"
	"github.com/joe192839/Mindduel/internal/screens/results"
	"github.com/joe192839/Mindduel/internal/ui/components"
	"github.com/joe192839/Mindduel/internal/ui/layout"
)

const (
	// warmupStepDuration paces the pre-game warmup animation.
	warmupStepDuration = time.Second

	// feedbackDuration is how long the correct/wrong flash stays up before
	// the next question replaces it.
	feedbackDuration = 900 * time.Millisecond

	// tickInterval drives countdown recomputation. The countdown itself is
	// wall-clock based, so a missed tick never costs time accuracy.
	tickInterval = 250 * time.Millisecond

	eventBuffer = 64
)

// warmupSteps are the pre-game focus prompts, shown one per second.
var warmupSteps = []string{"Initializing...", "Brain Engaged", "Synapses Firing", "Ready For Challenge"}

type phase int

const (
	phaseWarmup phase = iota
	phaseStarting
	phasePlaying
	phaseLoading
	phaseAnnouncing
	phaseFeedback
)

// Config wires a GameScreen.
type Config struct {
	// NewController builds the session controller around the screen's
	// event sink.
	NewController func(sink gamectl.Sink) *gamectl.Controller

	// Stats feeds the results screen's lifetime numbers. Optional.
	Stats results.Stats

	// Replay builds a fresh game screen for the play-again flow.
	Replay func() screen.Screen
}

// GameScreen runs one quickplay session from warmup to game over.
type GameScreen struct {
	cfg    Config
	ctrl   *gamectl.Controller
	events chan gamectl.Event

	phase       phase
	warmupStep  int
	quitConfirm bool

	score     int
	lives     int
	index     int
	limit     int
	remaining int

	current     *question.Question
	options     components.Options
	pending     *gamectl.QuestionReady
	feedbackSeq int

	lastCorrect bool
	lastExpired bool

	announceOld int
	announceNew int

	soundOn  bool
	spin     spinner.Model
	errMsg   string
	errFlash string
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)
var _ screen.StatusProvider = (*GameScreen)(nil)

// New creates a GameScreen. The controller is not built until Init so an
// abandoned screen never opens a session.
func New(cfg Config) *GameScreen {
	return &GameScreen{
		cfg:   cfg,
		lives: gamectl.LivesStart,
		spin:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (s *GameScreen) Init() tea.Cmd {
	s.events = make(chan gamectl.Event, eventBuffer)
	s.ctrl = s.cfg.NewController(func(ev gamectl.Event) {
		s.events <- ev
	})
	s.soundOn = s.ctrl.Snapshot().SoundEnabled

	return tea.Batch(warmupTick(), s.spin.Tick)
}

func (s *GameScreen) Title() string {
	return "Quickplay"
}

// Status reports the running score and lives for the header.
func (s *GameScreen) Status() (score, lives int) {
	return s.score, s.lives
}

func (s *GameScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End game"},
			{Key: "N", Description: "Keep playing"},
		}
	}
	switch s.phase {
	case phasePlaying:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "↑↓ Enter", Description: "Pick"},
			{Key: "S", Description: "Sound"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "S", Description: "Sound"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case warmupTickMsg:
		return s.handleWarmupTick()

	case controllerEventMsg:
		scr, cmd := s.handleEvent(msg.Event)
		return scr, tea.Batch(cmd, s.waitForEvent())

	case timerTickMsg:
		s.ctrl.TickTimer()
		return s, tickCmd()

	case feedbackDoneMsg:
		return s.handleFeedbackDone(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *GameScreen) handleWarmupTick() (screen.Screen, tea.Cmd) {
	s.warmupStep++
	if s.warmupStep < len(warmupSteps) {
		return s, warmupTick()
	}

	s.phase = phaseStarting
	ctrl := s.ctrl
	start := func() tea.Msg {
		// Failures surface as events.
		_ = ctrl.StartSession(context.Background())
		return nil
	}
	return s, tea.Batch(start, s.waitForEvent(), tickCmd())
}

func (s *GameScreen) handleEvent(ev gamectl.Event) (screen.Screen, tea.Cmd) {
	switch ev := ev.(type) {
	case gamectl.SessionStarted:
		s.phase = phaseLoading
		return s, nil

	case gamectl.QuestionReady:
		if s.phase == phaseFeedback {
			// Hold the next question until the flash clears.
			pending := ev
			s.pending = &pending
			return s, nil
		}
		s.applyQuestion(ev)
		return s, nil

	case gamectl.TimerTick:
		s.remaining = ev.Remaining
		return s, nil

	case gamectl.AnswerResult:
		s.score = ev.Score
		s.lives = ev.Lives
		s.lastCorrect = ev.Correct
		s.lastExpired = ev.Expired
		s.options.Reveal(ev.Correct && !ev.Expired)
		s.phase = phaseFeedback
		s.feedbackSeq++
		return s, feedbackTimeout(s.feedbackSeq)

	case gamectl.TransitionStarted:
		s.phase = phaseAnnouncing
		s.pending = nil
		s.announceOld = ev.OldLimit
		s.announceNew = ev.NewLimit
		return s, nil

	case gamectl.TransitionEnded:
		s.phase = phaseLoading
		s.limit = ev.Limit
		return s, nil

	case gamectl.SessionEnded:
		return s.handleEnded(ev)

	case gamectl.Failure:
		return s.handleFailure(ev)
	}
	return s, nil
}

func (s *GameScreen) handleFailure(ev gamectl.Failure) (screen.Screen, tea.Cmd) {
	switch ev.Op {
	case "submit answer":
		// The countdown is still running; let the player try again.
		s.options.Locked = false
		s.errFlash = "Couldn't reach the server, answer again"
		return s, nil
	default:
		s.errMsg = ev.Err.Error()
		return s, nil
	}
}

func (s *GameScreen) handleEnded(ev gamectl.SessionEnded) (screen.Screen, tea.Cmd) {
	snap := s.ctrl.Snapshot()
	sum := results.Summary{
		Score:        ev.Score,
		Lives:        ev.Lives,
		Reason:       ev.Reason,
		Redirect:     ev.Redirect,
		FastestLevel: snap.HighestSpeedLevel,
		Questions:    snap.QuestionIndex,
	}
	replay := s.cfg.Replay
	stats := s.cfg.Stats
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: results.New(sum, stats, replay),
		}
	}
}

func (s *GameScreen) handleFeedbackDone(msg feedbackDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.seq != s.feedbackSeq || s.phase != phaseFeedback {
		return s, nil
	}
	if s.pending != nil {
		ev := *s.pending
		s.pending = nil
		s.applyQuestion(ev)
		return s, nil
	}
	s.phase = phaseLoading
	return s, nil
}

func (s *GameScreen) applyQuestion(ev gamectl.QuestionReady) {
	q := ev.Question
	s.current = &q
	s.index = ev.Index
	s.limit = ev.Limit
	s.remaining = ev.Limit
	s.options = components.NewOptions(q.Options)
	s.errFlash = ""
	s.phase = phasePlaying
}

func (s *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		s.ctrl.Teardown()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			ctrl := s.ctrl
			return s, func() tea.Msg {
				_ = ctrl.EndSession(context.Background(), gamectl.ReasonQuit)
				return nil
			}
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		if s.phase == phaseWarmup {
			s.ctrl.Teardown()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.quitConfirm = true
		return s, nil
	case "s":
		s.soundOn = s.ctrl.ToggleSound()
		return s, nil
	}

	if s.phase != phasePlaying {
		return s, nil
	}

	switch key {
	case "1", "2", "3", "4":
		var cmd tea.Cmd
		s.options, cmd = s.options.Update(msg)
		return s.submit(cmd)
	case "enter":
		return s.submit(nil)
	default:
		var cmd tea.Cmd
		s.options, cmd = s.options.Update(msg)
		return s, cmd
	}
}

// submit locks the selector and sends the chosen answer.
func (s *GameScreen) submit(extra tea.Cmd) (screen.Screen, tea.Cmd) {
	if s.options.Locked || s.current == nil {
		return s, extra
	}
	answer := s.options.Value()
	if answer == "" {
		return s, extra
	}
	s.options.Lock()

	ctrl := s.ctrl
	send := func() tea.Msg {
		_ = ctrl.SubmitAnswer(context.Background(), answer)
		return nil
	}
	return s, tea.Batch(extra, send)
}

// waitForEvent blocks on the controller's event channel.
func (s *GameScreen) waitForEvent() tea.Cmd {
	ch := s.events
	return func() tea.Msg {
		return controllerEventMsg{Event: <-ch}
	}
}

func warmupTick() tea.Cmd {
	return tea.Tick(warmupStepDuration, func(t time.Time) tea.Msg {
		return warmupTickMsg(t)
	})
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func feedbackTimeout(seq int) tea.Cmd {
	return tea.Tick(feedbackDuration, func(time.Time) tea.Msg {
		return feedbackDoneMsg{seq: seq}
	})
}

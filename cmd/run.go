package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joe192839/Mindduel/internal/api"
	"github.com/joe192839/Mindduel/internal/app"
	"github.com/joe192839/Mindduel/internal/game"
	"github.com/joe192839/Mindduel/internal/llm"
	"github.com/joe192839/Mindduel/internal/question"
	"github.com/joe192839/Mindduel/internal/questiongen"
	"github.com/joe192839/Mindduel/internal/screen"
	gamescreen "github.com/joe192839/Mindduel/internal/screens/game"
	"github.com/joe192839/Mindduel/internal/screens/home"
	statsscreen "github.com/joe192839/Mindduel/internal/screens/stats"
	"github.com/joe192839/Mindduel/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	prefs := st.Prefs()
	matches := st.Matches()

	installID, err := prefs.InstallID()
	if err != nil {
		logger.Warn().Err(err).Msg("install id unavailable")
	}
	device := api.CollectDeviceInfo(installID, version)

	client, err := api.New(cfg.ServerURL, logger)
	if err != nil {
		return fmt.Errorf("quickplay client: %w", err)
	}

	// Generated questions come from a local provider when an API key is in
	// the environment, otherwise from the service. Either way a failure
	// falls back to the standard pool mid-session.
	var provider llm.Provider
	if cfg.AIQuestions {
		if llmCfg, ok := llm.DiscoverConfig(); ok {
			provider, err = llm.NewProvider(ctx, llmCfg, logger)
			if err != nil {
				logger.Warn().Err(err).Msg("LLM provider unavailable, using service-side generation")
				provider = nil
			}
		}
	}

	sources := func(sessionID string) question.Source {
		var ai question.AIService
		switch {
		case !cfg.AIQuestions:
		case provider != nil:
			gen := questiongen.New(provider, questiongen.DefaultConfig())
			ai = questiongen.NewService(gen, cfg.Categories)
		default:
			ai = client
		}
		if ai == nil {
			return question.NewStandardSource(client, sessionID)
		}
		return question.NewFallbackSource(client, ai, sessionID, logger)
	}

	var newGame func() screen.Screen
	newGame = func() screen.Screen {
		return gamescreen.New(gamescreen.Config{
			NewController: func(sink game.Sink) *game.Controller {
				return game.New(game.Config{
					Service:    client,
					Sources:    sources,
					Sink:       sink,
					Logger:     logger,
					Prefs:      prefs,
					History:    matches,
					Categories: cfg.Categories,
					Device:     device,
				})
			},
			Stats:  matches,
			Replay: newGame,
		})
	}

	return app.Run(home.New(home.Config{
		NewGame:    newGame,
		NewStats:   func() screen.Screen { return statsscreen.New(matches) },
		Stats:      matches,
		Categories: cfg.Categories,
	}))
}

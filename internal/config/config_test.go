package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ServerURL == "" {
		t.Error("ServerURL default is empty")
	}
	if !cfg.AIQuestions {
		t.Error("AIQuestions default = false, want true")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel default = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MINDDUEL_SERVER_URL", "http://localhost:8000")
	t.Setenv("MINDDUEL_CATEGORIES", "science,history")
	t.Setenv("MINDDUEL_AI_QUESTIONS", "false")
	t.Setenv("MINDDUEL_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ServerURL != "http://localhost:8000" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
	if len(cfg.Categories) != 2 || cfg.Categories[0] != "science" {
		t.Errorf("Categories = %v", cfg.Categories)
	}
	if cfg.AIQuestions {
		t.Error("AIQuestions = true, want false")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

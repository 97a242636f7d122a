package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/joe192839/Mindduel/internal/game"
)

// MatchRepo stores finished sessions.
type MatchRepo struct {
	db *sql.DB
}

// RecordMatch appends one finished session to the history.
func (r *MatchRepo) RecordMatch(m game.MatchRecord) error {
	_, err := r.db.Exec(
		`INSERT INTO matches
			(session_id, score, lives, highest_speed_level, used_ai_questions, reason, duration_seconds, played_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.SessionID, m.Score, m.Lives, m.HighestSpeedLevel, m.UsedAIQuestions,
		m.Reason, m.Duration.Seconds(), m.PlayedAt)
	if err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

// Recent returns up to limit matches, newest first.
func (r *MatchRepo) Recent(limit int) ([]game.MatchRecord, error) {
	rows, err := r.db.Query(
		`SELECT session_id, score, lives, highest_speed_level, used_ai_questions, reason, duration_seconds, played_at
		 FROM matches ORDER BY played_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	var out []game.MatchRecord
	for rows.Next() {
		var m game.MatchRecord
		var seconds float64
		if err := rows.Scan(&m.SessionID, &m.Score, &m.Lives, &m.HighestSpeedLevel,
			&m.UsedAIQuestions, &m.Reason, &seconds, &m.PlayedAt); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		m.Duration = time.Duration(seconds * float64(time.Second))
		out = append(out, m)
	}
	return out, rows.Err()
}

// Summary aggregates the stored history.
type Summary struct {
	Games        int
	BestScore    int
	AverageScore float64
	FastestLevel int
}

// Summarize computes aggregate stats over all recorded matches.
func (r *MatchRepo) Summarize() (Summary, error) {
	var s Summary
	err := r.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0),
		        COALESCE(MIN(highest_speed_level), 60)
		 FROM matches`).
		Scan(&s.Games, &s.BestScore, &s.AverageScore, &s.FastestLevel)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize matches: %w", err)
	}
	return s, nil
}

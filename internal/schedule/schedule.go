// Package schedule maps the running score of a quickplay session to the
// per-question time limit. The mapping is a step function over score tiers:
// every three correct answers the session moves into the next tier and the
// budget shrinks, down to a floor of five seconds.
package schedule

// InitialLimit is the time limit (seconds) for the first tier.
const InitialLimit = 60

// MinLimit is the floor the schedule never goes below.
const MinLimit = 5

// QuestionsPerTier is the number of correct answers that make up one tier.
const QuestionsPerTier = 3

// tierLimits is the canonical twelve-tier table. Scores beyond the table
// fall through to MinLimit.
var tierLimits = []int{60, 50, 40, 30, 25, 20, 15, 10, 9, 8, 7, 6}

// TierForScore returns the tier index for a score. Negative scores are
// treated as zero.
func TierForScore(score int) int {
	if score < 0 {
		return 0
	}
	return score / QuestionsPerTier
}

// LimitForScore returns the time limit in seconds for the given score.
func LimitForScore(score int) int {
	return limitForTier(TierForScore(score))
}

func limitForTier(tier int) int {
	if tier < 0 {
		tier = 0
	}
	if tier >= len(tierLimits) {
		return MinLimit
	}
	return tierLimits[tier]
}

// Transition describes a possible difficulty change at the current score.
type Transition struct {
	// OldLimit is the time limit of the previous tier (score-1).
	OldLimit int

	// NewLimit is the time limit for the current score.
	NewLimit int

	// Changed reports whether the tier boundary was just crossed. The very
	// first question (score <= 1) never reports a change, so the player is
	// not shown a transition before they have answered anything.
	Changed bool
}

// TransitionForScore computes the transition info for the given score.
// It is pure: calling it any number of times has no effect on anything.
func TransitionForScore(score int) Transition {
	currentTier := TierForScore(score)
	previousTier := TierForScore(score - 1)
	return Transition{
		OldLimit: limitForTier(previousTier),
		NewLimit: limitForTier(currentTier),
		Changed:  currentTier != previousTier && score > 1,
	}
}

package sse

// SSE event type constants
const (
	EventScores        = "scores"
	EventResult        = "result"
	EventStreak        = "streak"
	EventBattle        = "battle"
	EventBattleVisible = "battle-visible"
	EventLock          = "lock"
	EventAudio         = "audio"
)

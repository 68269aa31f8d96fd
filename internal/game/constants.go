package game

import "time"

const (
	// DefaultClipMaxDuration is the length of the longest bundled result clip
	DefaultClipMaxDuration = 3000 * time.Millisecond

	// DefaultFallbackTimeout releases the input lock when a clip never reports completion
	DefaultFallbackTimeout = 3500 * time.Millisecond

	// StreakMessageThreshold is the streak length at which a streak message is shown
	StreakMessageThreshold = 2
)

const (
	// SSEBufferSize is the buffer size for SSE message channels
	SSEBufferSize = 10

	// SSETimeout is the timeout for sending messages to SSE clients
	SSETimeout = 1 * time.Second
)

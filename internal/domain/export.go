package domain

import (
	"encoding/json"
	"time"
)

// Skip records a candidate node that could not be turned into a Post. Keeping
// these around makes the skip rate observable instead of silently discarding.
type Skip struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// Export is the result of one fetch, regardless of which source produced it.
// The api source fills Raw with the upstream payload verbatim; the browser
// source fills Posts and Skips.
type Export struct {
	Source    string
	FetchedAt time.Time
	Raw       json.RawMessage
	Posts     []Post
	Skips     []Skip
}

// Payload returns what gets serialized to the output file: the raw upstream
// payload when present, otherwise the normalized post array.
func (e *Export) Payload() any {
	if len(e.Raw) > 0 {
		return e.Raw
	}
	if e.Posts == nil {
		return []Post{}
	}
	return e.Posts
}

func (e *Export) PostCount() int {
	return len(e.Posts)
}

// SPDX-License-Identifier: MIT

package ranking

import (
	"errors"
	"sync"
)

// ErrBadCapacity indicates a negative capacity passed to New.
var ErrBadCapacity = errors.New("ranking: capacity must be non-negative")

// Entry is one admitted (score, graph id) pair.
type Entry struct {
	Score   uint64
	GraphID int
}

// worse reports whether a ranks after b: higher score, or equal score and later arrival.
func (a Entry) worse(b Entry) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}

	return a.GraphID > b.GraphID
}

// Ranking is the bounded leaderboard. Use New.
type Ranking struct {
	mu    sync.RWMutex
	k     int
	items []Entry // max-heap under worse
}

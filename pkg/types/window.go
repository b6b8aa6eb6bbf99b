// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// Window is a half-open [Start, End) publication window in UTC. Windows
// produced by the cycle package are aligned to the 19:00 UTC boundary at
// which arXiv closes a day's submissions.
type Window struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

// Duration returns the length of the window.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Contains reports whether t falls inside [Start, End).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Valid reports whether Start is strictly before End.
func (w Window) Valid() bool {
	return w.Start.Before(w.End)
}

func (w Window) String() string {
	return fmt.Sprintf("%s to %s", w.Start.Format("2006-01-02 15:04"), w.End.Format("2006-01-02 15:04"))
}

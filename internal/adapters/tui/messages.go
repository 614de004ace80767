package tui

import "time"

// MsgPhaseStart is sent when an analysis phase begins.
type MsgPhaseStart struct {
	SpanID    string
	Name      string
	StartTime time.Time
}

// MsgPhaseComplete is sent when an analysis phase ends.
type MsgPhaseComplete struct {
	SpanID  string
	EndTime time.Time
	Err     error
}

// MsgProgress carries the scan progress.
type MsgProgress struct {
	Completed int
	Total     int
}

// MsgStatus carries a status line.
type MsgStatus struct {
	Text string
}

package tui

import (
	"time"

	"github.com/garrettladley/ouraface/internal/companion"
)

type PostMsg struct {
	Fn func()
}

type TickMsg struct {
	Gen  int
	Time time.Time
}

type FeedEntryMsg struct {
	Entry companion.Entry
}

type FeedDoneMsg struct {
	Err error
}

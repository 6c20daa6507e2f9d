package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/ouraface/internal/companion"
)

// StartFeedCmd runs the feed in a goroutine and pushes entries to ch,
// honoring wait lines. The channel bridges the blocking reader with
// bubbletea's message loop.
func StartFeedCmd(ctx context.Context, feed *companion.Feed, ch chan<- companion.Entry) tea.Cmd {
	return func() tea.Msg {
		err := feed.Run(ctx, func(e companion.Entry) error {
			if e.Wait > 0 {
				timer := time.NewTimer(e.Wait)
				defer timer.Stop()
				select {
				case <-timer.C:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			select {
			case ch <- e:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		close(ch)
		return FeedDoneMsg{Err: err}
	}
}

// ListenFeedCmd reads one entry. Re-issue it after each FeedEntryMsg.
func ListenFeedCmd(ctx context.Context, ch <-chan companion.Entry) tea.Cmd {
	return func() tea.Msg {
		select {
		case e, ok := <-ch:
			if !ok {
				return nil
			}
			return FeedEntryMsg{Entry: e}
		case <-ctx.Done():
			return nil
		}
	}
}

// ListenPostsCmd waits for one timer callback. Re-issue it after each
// PostMsg.
func ListenPostsCmd(ctx context.Context, posts <-chan func()) tea.Cmd {
	return func() tea.Msg {
		select {
		case fn, ok := <-posts:
			if !ok {
				return nil
			}
			return PostMsg{Fn: fn}
		case <-ctx.Done():
			return nil
		}
	}
}

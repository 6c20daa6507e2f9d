// Package companion is the stand-in for the phone-side companion: it reads
// inbound messages as JSON lines and writes outbound requests the same way.
package companion

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/ouraface/internal/message"
	"github.com/garrettladley/ouraface/internal/xslog"
)

const maxLineSize = 64 * 1024

// Entry is one feed line: either a message or a pause.
type Entry struct {
	Line    int
	Message message.Message
	// Wait is set for "wait <duration>" lines.
	Wait time.Duration
}

type Feed struct {
	r      io.Reader
	logger *slog.Logger
}

func NewFeed(r io.Reader, logger *slog.Logger) *Feed {
	if logger == nil {
		logger = slog.Default()
	}
	return &Feed{r: r, logger: logger}
}

// Run calls fn for every entry until the reader is exhausted, fn fails or
// ctx is cancelled. Blank lines and lines starting with "#" are skipped;
// malformed lines are logged and skipped.
func (f *Feed) Run(ctx context.Context, fn func(Entry) error) error {
	scanner := bufio.NewScanner(f.r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	n := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		n++
		entry, ok, err := parseLine(n, scanner.Text())
		if err != nil {
			f.logger.WarnContext(ctx, "skipping malformed feed line", xslog.Line(n), xslog.Error(err))
			continue
		}
		if !ok {
			continue
		}
		if err := fn(entry); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read feed: %w", err)
	}
	return nil
}

// ReadAll collects every entry of r.
func ReadAll(ctx context.Context, r io.Reader, logger *slog.Logger) ([]Entry, error) {
	var entries []Entry
	err := NewFeed(r, logger).Run(ctx, func(e Entry) error {
		entries = append(entries, e)
		return nil
	})
	return entries, err
}

func parseLine(n int, line string) (Entry, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Entry{}, false, nil
	}

	if rest, ok := strings.CutPrefix(line, "wait "); ok {
		d, err := time.ParseDuration(strings.TrimSpace(rest))
		if err != nil {
			return Entry{}, false, fmt.Errorf("failed to parse wait: %w", err)
		}
		if d < 0 {
			return Entry{}, false, fmt.Errorf("negative wait %s", d)
		}
		return Entry{Line: n, Wait: d}, true, nil
	}

	dec := go_json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()
	var m message.Message
	if err := dec.Decode(&m); err != nil {
		return Entry{}, false, fmt.Errorf("failed to decode message: %w", err)
	}
	if m == nil {
		return Entry{}, false, fmt.Errorf("message is not an object")
	}
	return Entry{Line: n, Message: m}, true, nil
}

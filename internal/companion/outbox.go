package companion

import (
	"context"
	"fmt"
	"io"
	"sync"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/ouraface/internal/message"
)

// Outbox writes outbound messages as JSON lines.
type Outbox struct {
	mu sync.Mutex
	w  io.Writer
}

func NewOutbox(w io.Writer) *Outbox {
	return &Outbox{w: w}
}

func (o *Outbox) Send(ctx context.Context, m message.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := go_json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	data = append(data, '\n')

	o.mu.Lock()
	defer o.mu.Unlock()
	if _, err := o.w.Write(data); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

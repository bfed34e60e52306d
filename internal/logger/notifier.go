package logger

import (
	"context"

	"github.com/rs/zerolog"
)

// Notifier reports session I/O (fetch, copy) as structured log events
type Notifier struct {
	log zerolog.Logger
}

// NewNotifier wraps a component logger, usually one from WithSource
func NewNotifier(log zerolog.Logger) *Notifier {
	return &Notifier{log: log}
}

func (n *Notifier) Loading(ctx context.Context, op string) {
	n.log.Debug().Ctx(ctx).Str("operation", op).Msg("Started")
}

func (n *Notifier) Succeeded(ctx context.Context, op string, detail string) {
	n.log.Info().Ctx(ctx).Str("operation", op).Str("detail", detail).Msg("Succeeded")
}

func (n *Notifier) Failed(ctx context.Context, op string, err error) {
	n.log.Error().Ctx(ctx).Err(err).Str("operation", op).Msg("Failed")
}

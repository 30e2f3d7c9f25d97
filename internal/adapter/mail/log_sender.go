package mail

import (
	"context"
	"log/slog"
)

// LogSender writes messages to the log instead of sending them.
// Used when no SMTP host is configured.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{log: logger.With("component", "mail.log_sender")}
}

// Send logs the message envelope and body.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.log.InfoContext(ctx, "mail not sent (smtp disabled)",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("html", msg.HTML),
	)
	return nil
}

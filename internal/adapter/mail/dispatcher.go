package mail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/typespeed-backend/internal/config"
	"github.com/heartmarshall/typespeed-backend/internal/domain"
)

// ErrQueueFull is returned by Enqueue when the queue has no free slot.
var ErrQueueFull = errors.New("mail queue full")

// Dispatch outcomes recorded in mail_dispatch_total.
const (
	resultSent    = "sent"
	resultRetried = "retried"
	resultFailed  = "failed"
	resultDropped = "dropped"
)

// Dispatcher owns the outgoing mail queue and the worker that drains it.
type Dispatcher struct {
	sender      Sender
	queue       chan Message
	maxAttempts int
	backoff     time.Duration
	sendTimeout time.Duration
	log         *slog.Logger
	dispatched  *prometheus.CounterVec
}

// NewDispatcher creates a Dispatcher and registers its counter with reg.
func NewDispatcher(sender Sender, cfg config.MailConfig, logger *slog.Logger, reg prometheus.Registerer) (*Dispatcher, error) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mail_dispatch_total",
		Help: "Outgoing mail dispatch attempts by result.",
	}, []string{"result"})
	if err := reg.Register(counter); err != nil {
		return nil, fmt.Errorf("register mail metrics: %w", err)
	}

	return &Dispatcher{
		sender:      sender,
		queue:       make(chan Message, cfg.QueueSize),
		maxAttempts: cfg.MaxAttempts,
		backoff:     cfg.RetryBackoff,
		sendTimeout: cfg.SendTimeout,
		log:         logger.With("component", "mail.dispatcher"),
		dispatched:  counter,
	}, nil
}

// Enqueue schedules msg for delivery without blocking.
func (d *Dispatcher) Enqueue(msg Message) error {
	select {
	case d.queue <- msg:
		return nil
	default:
		d.dispatched.WithLabelValues(resultDropped).Inc()
		return ErrQueueFull
	}
}

// SendPasswordReset renders the reset email for user and enqueues it.
func (d *Dispatcher) SendPasswordReset(ctx context.Context, user *domain.User, resetLink string) error {
	msg, err := PasswordResetMessage(user, resetLink)
	if err != nil {
		return err
	}
	if err := d.Enqueue(msg); err != nil {
		return err
	}
	d.log.DebugContext(ctx, "password reset email queued", slog.String("user_id", user.ID.String()))
	return nil
}

// Run drains the queue until ctx is cancelled. Messages still queued at that
// point get a single delivery attempt each before Run returns.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.log.InfoContext(ctx, "mail dispatcher started")
	for {
		select {
		case <-ctx.Done():
			d.drain()
			d.log.Info("mail dispatcher stopped")
			return nil
		case msg := <-d.queue:
			d.deliver(ctx, msg, d.maxAttempts)
		}
	}
}

func (d *Dispatcher) drain() {
	for {
		select {
		case msg := <-d.queue:
			d.deliver(context.Background(), msg, 1)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, msg Message, attempts int) {
	wait := d.backoff
	for attempt := 1; ; attempt++ {
		err := d.sendOnce(ctx, msg)
		if err == nil {
			d.dispatched.WithLabelValues(resultSent).Inc()
			return
		}

		if attempt >= attempts || ctx.Err() != nil {
			d.dispatched.WithLabelValues(resultFailed).Inc()
			d.log.ErrorContext(ctx, "mail delivery failed",
				slog.String("to", msg.To),
				slog.String("subject", msg.Subject),
				slog.Int("attempts", attempt),
				slog.String("error", err.Error()),
			)
			return
		}

		d.dispatched.WithLabelValues(resultRetried).Inc()
		d.log.WarnContext(ctx, "mail delivery failed, retrying",
			slog.String("to", msg.To),
			slog.Int("attempt", attempt),
			slog.Duration("backoff", wait),
			slog.String("error", err.Error()),
		)

		select {
		case <-ctx.Done():
		case <-time.After(wait):
		}
		wait *= 2
	}
}

func (d *Dispatcher) sendOnce(ctx context.Context, msg Message) error {
	if d.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.sendTimeout)
		defer cancel()
	}
	return d.sender.Send(ctx, msg)
}

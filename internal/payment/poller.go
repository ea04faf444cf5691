package payment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/orderdesk/internal/gateway"
	"github.com/wellywell/orderdesk/internal/metrics"
)

type LinkClient interface {
	GetPaymentLink(ctx context.Context, code string) (*gateway.LinkResponse, error)
}

var ErrEmptyCode = errors.New("payment code cannot be empty")

type RejectedCodeError struct {
	Code string
}

func (e *RejectedCodeError) Error() string {
	return fmt.Sprintf("Payment code %s was rejected by gateway", e.Code)
}

type PollerOptions struct {
	// Timeout bounds a single check; the session is completed when it runs out.
	Timeout         time.Duration
	InitialInterval time.Duration
	MaxInterval     time.Duration
	// ThrottleUnit scales the gateway's Retry-After value.
	ThrottleUnit time.Duration
}

func DefaultPollerOptions() PollerOptions {
	return PollerOptions{
		Timeout:         10 * time.Minute,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     15 * time.Second,
		ThrottleUnit:    time.Second,
	}
}

func normalizeOptions(opts PollerOptions) PollerOptions {
	def := DefaultPollerOptions()
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.InitialInterval <= 0 {
		opts.InitialInterval = def.InitialInterval
	}
	if opts.MaxInterval <= 0 {
		opts.MaxInterval = def.MaxInterval
	}
	if opts.ThrottleUnit <= 0 {
		opts.ThrottleUnit = def.ThrottleUnit
	}
	return opts
}

// Poller drives LinkSessions: it arms a session when a code is issued and
// keeps asking the gateway until a link is ready, the code is rejected, the
// check times out or the user abandons it.
type Poller struct {
	ctx      context.Context
	client   LinkClient
	registry *Registry
	opts     PollerOptions
	wg       sync.WaitGroup
}

// NewPoller binds polls to ctx; cancelling it abandons every running check.
func NewPoller(ctx context.Context, client LinkClient, registry *Registry, opts PollerOptions) *Poller {
	return &Poller{
		ctx:      ctx,
		client:   client,
		registry: registry,
		opts:     normalizeOptions(opts),
	}
}

// Begin arms the owner's session for code and starts checking it in the
// background. A running check for the same owner is cancelled.
func (p *Poller) Begin(owner int, code string) (*LinkSession, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}

	f := p.registry.flow(owner)
	gen := f.session.arm(code)

	ctx, cancel := context.WithTimeout(p.ctx, p.opts.Timeout)
	f.replaceCancel(cancel)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer cancel()
		p.poll(ctx, owner, f.session, code, gen)
	}()

	logger.Infof("Started payment link check for user %d", owner)
	return f.session, nil
}

// Abandon stops the owner's check and resets their session.
func (p *Poller) Abandon(owner int) {
	f, ok := p.registry.lookup(owner)
	if !ok {
		return
	}
	f.stop()
	if f.session.reset() {
		metrics.PaymentChecks.WithLabelValues("abandoned").Inc()
	}
}

// Wait blocks until every background check has returned.
func (p *Poller) Wait() {
	p.wg.Wait()
}

func (p *Poller) poll(ctx context.Context, owner int, session *LinkSession, code string, gen uint64) {
	link, err := p.waitForLink(ctx, owner, code)
	if err != nil {
		if session.completeFor(gen) {
			logger.Warningf("Payment link check for %s stopped: %s", code, err.Error())
			metrics.PaymentChecks.WithLabelValues(outcome(err)).Inc()
		}
		return
	}
	if !session.setLinkFor(gen, link) {
		logger.Infof("Dropping link for superseded payment code %s", code)
		return
	}
	metrics.PaymentChecks.WithLabelValues("ready").Inc()
	logger.Infof("Payment link for %s is ready", code)
}

func outcome(err error) string {
	var rejected *RejectedCodeError
	switch {
	case errors.As(err, &rejected):
		return "rejected"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	default:
		return "failed"
	}
}

func (p *Poller) waitForLink(ctx context.Context, owner int, code string) (*Link, error) {

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.opts.InitialInterval
	b.MaxInterval = p.opts.MaxInterval
	b.MaxElapsedTime = 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// a running check keeps its flow from going idle
		p.registry.touch(owner)

		result, err := p.client.GetPaymentLink(ctx, code)
		if err == nil && result == nil {
			err = gateway.ErrUnknown
		}

		var wait time.Duration
		if err != nil {
			var errThrottle *gateway.ErrThrottle
			switch {
			case errors.As(err, &errThrottle):
				wait = time.Duration(errThrottle.RetryAfter) * p.opts.ThrottleUnit
				logger.Warningf("Payment gateway too many requests, will retry in %d seconds", errThrottle.RetryAfter)
			case errors.Is(err, gateway.ErrCodeNotExists), errors.Is(err, gateway.ErrUnknown):
				wait = b.NextBackOff()
			case ctx.Err() != nil:
				return nil, ctx.Err()
			default:
				return nil, err
			}
		} else {
			switch result.Status {
			case gateway.LinkReady:
				return &Link{URL: result.URL, ExpiresAt: result.ExpiresAt}, nil
			case gateway.LinkInvalid:
				return nil, fmt.Errorf("%w", &RejectedCodeError{Code: code})
			default:
				wait = b.NextBackOff()
			}
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

package qrsession

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"maya-connect/internal/domain/qr"
	"maya-connect/internal/domain/session"
	"maya-connect/internal/pkg/clock"
	"maya-connect/internal/pkg/usermsg"

	"github.com/google/uuid"
)

// maxImmediateRefreshes bounds back-to-back refreshes triggered by a token that
// is already inside the lead window, so a backend handing out short-lived
// tokens cannot spin the controller.
const maxImmediateRefreshes = 1

// minRearm is the shortest timer armed once the immediate refresh budget is spent.
const minRearm = time.Second

type Options struct {
	Lead     time.Duration
	Renderer qr.Renderer
	Clock    clock.Clock
	Logger   *slog.Logger
}

// Controller drives one QR display session: Loading -> Displaying -> Error,
// with a single cancellable refresh timer armed at expiresAt - lead.
//
// Every load carries a generation number. A response that is older than the
// latest started load, or that arrives after Close, is discarded.
type Controller struct {
	id       string
	src      Source
	lead     time.Duration
	renderer qr.Renderer
	clock    clock.Clock
	logger   *slog.Logger

	base   context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	snap      Snapshot
	lastErr   error
	gen       uint64
	timer     clock.Timer
	immediate int
	closed    bool
	subs      map[int]chan Snapshot
	nextSub   int
	detach    func()
}

func New(src Source, opts Options) *Controller {
	if opts.Lead <= 0 {
		opts.Lead = qr.DefaultRefreshLead
	}
	if opts.Renderer == (qr.Renderer{}) {
		opts.Renderer = qr.DefaultRenderer()
	}
	if opts.Clock == nil {
		opts.Clock = clock.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	id := uuid.NewString()
	base, cancel := context.WithCancel(context.Background())
	return &Controller{
		id:       id,
		src:      src,
		lead:     opts.Lead,
		renderer: opts.Renderer,
		clock:    opts.Clock,
		logger:   opts.Logger.With(slog.String("qr_session_id", id)),
		base:     base,
		cancel:   cancel,
		snap:     Snapshot{SessionID: id, State: StateLoading},
		subs:     make(map[int]chan Snapshot),
	}
}

func (c *Controller) ID() string { return c.id }

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Err is the error behind the current Error state, nil otherwise.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Load fetches the current code, falling back to issuing a new token once.
// It returns the snapshot after the load, which may belong to a newer load
// if this one was superseded.
func (c *Controller) Load(ctx context.Context, forceRefresh bool) Snapshot {
	c.mu.Lock()
	c.immediate = 0
	c.mu.Unlock()
	return c.load(ctx, forceRefresh)
}

// Refresh is the manual refresh: a forced load through the same path.
func (c *Controller) Refresh(ctx context.Context) Snapshot {
	return c.Load(ctx, true)
}

func (c *Controller) load(ctx context.Context, forceRefresh bool) Snapshot {
	for {
		gen, ok := c.begin()
		if !ok {
			return c.Snapshot()
		}

		resp, err := c.fetch(ctx, forceRefresh)

		snap, again := c.finish(gen, resp, err)
		if !again {
			return snap
		}
		c.logger.Debug("QR token inside refresh lead, refreshing immediately")
	}
}

// begin cancels any armed timer and enters Loading under a new generation.
func (c *Controller) begin() (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0, false
	}
	c.stopTimerLocked()
	c.gen++

	next := c.snap
	next.State = StateLoading
	next.Error = ""
	next.RefreshAt = nil
	next.Generation = c.gen
	c.setLocked(next)
	return c.gen, true
}

func (c *Controller) fetch(ctx context.Context, forceRefresh bool) (qr.CodeResponse, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(c.base, cancel)
	defer stop()

	resp, err := c.src.GetCurrentQrCode(ctx)
	if err == nil && resp.Token.ExpiredAt(c.clock.Now()) {
		err = errExpiredCurrent
	}
	if err == nil {
		return resp, nil
	}
	if ctx.Err() != nil {
		return qr.CodeResponse{}, err
	}
	c.logger.Warn("Current QR code unavailable, issuing a new token", slog.String("error", err.Error()))

	tok, issueErr := c.src.IssueQrToken(ctx, forceRefresh)
	if issueErr != nil {
		return qr.CodeResponse{}, issueErr
	}
	return qr.CodeResponse{Token: tok}, nil
}

// finish applies a load result unless it is stale. It reports whether the new
// token needs an immediate refresh.
func (c *Controller) finish(gen uint64, resp qr.CodeResponse, err error) (Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || gen != c.gen {
		c.logger.Debug("Discarding stale QR load", slog.Uint64("generation", gen), slog.Uint64("latest", c.gen))
		return c.snap, false
	}

	if err != nil {
		c.lastErr = err
		c.setLocked(Snapshot{
			SessionID:  c.id,
			State:      StateError,
			Error:      usermsg.For(err),
			Generation: gen,
		})
		c.logger.Warn("QR load failed", slog.String("error", err.Error()))
		return c.snap, false
	}
	c.lastErr = nil

	now := c.clock.Now()
	delay := resp.Token.RefreshDelay(now, c.lead)
	if delay == 0 {
		if c.immediate < maxImmediateRefreshes {
			c.immediate++
			c.setLocked(displaying(c.id, gen, resp, c.renderer, now))
			return c.snap, true
		}
		// Still inside the lead window after an immediate refresh: keep the
		// token until it actually expires.
		delay = max(resp.Token.ExpiresAt().Sub(now), minRearm)
	} else {
		c.immediate = 0
	}

	c.timer = c.clock.AfterFunc(delay, func() { c.onTimer(gen) })
	c.setLocked(displaying(c.id, gen, resp, c.renderer, now.Add(delay)))
	return c.snap, false
}

func (c *Controller) onTimer(gen uint64) {
	c.mu.Lock()
	stale := c.closed || gen != c.gen
	c.mu.Unlock()
	if stale {
		return
	}
	c.load(c.base, false)
}

// Subscribe returns a channel that always holds the latest snapshot. Slow
// readers miss intermediate states, never the last one. The channel is
// closed by Close or by the returned cancel func.
func (c *Controller) Subscribe() (<-chan Snapshot, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan Snapshot, 1)
	if c.closed {
		ch <- c.snap
		close(ch)
		return ch, func() {}
	}

	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	ch <- c.snap

	return ch, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
	}
}

// Close tears the session down: the timer is stopped, in-flight loads are
// cancelled and their results dropped. Subscriber channels are closed without
// a final update.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.stopTimerLocked()
	c.cancel()

	c.snap = Snapshot{SessionID: c.id, State: StateClosed, Generation: c.gen}
	for id, ch := range c.subs {
		delete(c.subs, id)
		close(ch)
	}
	detach := c.detach
	c.detach = nil
	c.mu.Unlock()

	if detach != nil {
		detach()
	}
}

// bindTo closes c when sess is invalidated and drops that hook again when c
// is closed first.
func (c *Controller) bindTo(sess *session.Session) {
	unregister := sess.OnInvalidate(c.Close)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		unregister()
		return
	}
	c.detach = unregister
	c.mu.Unlock()
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) setLocked(s Snapshot) {
	c.snap = s
	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
}

// Fetch runs a single load without keeping a refresh timer. It backs the
// plain HTTP endpoints where the client owns the refresh cadence.
func Fetch(ctx context.Context, src Source, opts Options, forceRefresh bool) (Snapshot, error) {
	c := New(src, opts)
	defer c.Close()

	snap := c.Load(ctx, forceRefresh)
	return snap, c.Err()
}

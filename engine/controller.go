package engine

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"refute/board"
)

// Reporter receives the output of a search worker. BestMove is called at
// most once per worker and never when the root has no legal move.
type Reporter interface {
	Info(Info)
	BestMove(Result)
}

// Controller owns at most one search worker. Start and Stop must be called
// from a single goroutine; Active may be called from anywhere.
type Controller struct {
	logger   *zap.Logger
	reporter Reporter

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	id     string
}

func NewController(logger *zap.Logger, reporter Reporter) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{logger: logger, reporter: reporter}
}

// Start stops any running worker and launches a new one searching b. The
// worker owns b and p until it exits. The returned id tags its log lines
// and info reports.
func (c *Controller) Start(b board.Board, p Params, opts Options) string {
	c.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	id := uuid.NewString()

	c.mu.Lock()
	c.cancel, c.done, c.id = cancel, done, id
	c.mu.Unlock()

	c.logger.Debug("search started",
		zap.String("search_id", id),
		zap.String("fen", b.FEN()),
		zap.Int("depth", p.Depth),
		zap.Uint64("nodes", p.Nodes),
		zap.Duration("movetime", p.MoveTime),
		zap.Bool("infinite", p.Infinite),
	)
	go c.run(ctx, id, b, p, opts, done)
	return id
}

func (c *Controller) run(ctx context.Context, id string, b board.Board, p Params, opts Options, done chan struct{}) {
	defer close(done)
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("search worker panicked", zap.String("search_id", id), zap.Any("panic", r))
		}
	}()

	result, ok := Search(ctx, b, p, opts, func(info Info) {
		info.SearchID = id
		c.reporter.Info(info)
	})
	if !ok {
		c.logger.Info("no legal move", zap.String("search_id", id), zap.String("fen", b.FEN()))
		return
	}
	if p.Infinite {
		// An infinite search reports only once it has been told to stop.
		<-ctx.Done()
	}
	c.logger.Debug("search finished",
		zap.String("search_id", id),
		zap.Stringer("best", result.Best),
		zap.Int("depth", result.Depth),
		zap.Uint64("nodes", result.Nodes),
	)
	c.reporter.BestMove(result)
}

// Stop cancels the running worker and blocks until it has exited. It is a
// no-op when no worker exists.
func (c *Controller) Stop() {
	c.mu.Lock()
	cancel, done, id := c.cancel, c.done, c.id
	c.cancel, c.done, c.id = nil, nil, ""
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	c.logger.Debug("search joined", zap.String("search_id", id))
}

// Wait blocks until the running worker finishes on its own.
func (c *Controller) Wait() {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Active reports whether a worker is still running.
func (c *Controller) Active() bool {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()
	if done == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}

// Close stops the worker. The controller may be reused afterwards.
func (c *Controller) Close() {
	c.Stop()
}

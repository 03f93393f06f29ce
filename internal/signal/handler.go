// Package signal cancels the command context of tows when the process is
// asked to stop, so a running picker releases the terminal before exit.
//
// Import rules:
//   - CAN import: std lib only
//   - MUST NOT import: internal packages
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// exitCodeBase is added to the signal number in the exit code of a stopped run.
const exitCodeBase = 128

// Handler cancels its context on the first SIGINT, SIGTERM or SIGHUP.
//
// While the picker holds the terminal in raw mode Ctrl+C arrives as a key,
// not as SIGINT; the signals handled here come from outside (kill, a closed
// terminal) or from Ctrl+C during the ancestor walk.
type Handler struct {
	ctx      context.Context //nolint:containedctx // the handler owns the context lifecycle
	cancel   context.CancelFunc
	sigChan  chan os.Signal
	done     chan struct{}
	mu       sync.Mutex
	received os.Signal
	stopOnce sync.Once
}

// NewHandler starts listening for termination signals.
//
//	h := signal.NewHandler(ctx)
//	defer h.Stop()
//	err := run(h.Context())
func NewHandler(parent context.Context) *Handler {
	ctx, cancel := context.WithCancel(parent)
	h := &Handler{
		ctx:     ctx,
		cancel:  cancel,
		sigChan: make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}

	signal.Notify(h.sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go h.listen()

	return h
}

// Context returns the context canceled by the first signal.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Received returns the first signal received, or nil.
func (h *Handler) Received() os.Signal {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.received
}

// ExitCode returns the process exit code for a run that ended with code.
// A failed run that was stopped by a signal exits with 128 plus the signal
// number, as a shell reports it. Other runs keep code.
func (h *Handler) ExitCode(code int) int {
	sig, ok := h.Received().(syscall.Signal)
	if code == 0 || !ok {
		return code
	}
	return exitCodeBase + int(sig)
}

// Stop stops listening and cancels the context. It is safe to call more than once.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
		h.cancel()
	})
}

// handle records sig if it is the first one and cancels the context.
func (h *Handler) handle(sig os.Signal) {
	h.mu.Lock()
	if h.received == nil {
		h.received = sig
	}
	h.mu.Unlock()
	h.cancel()
}

func (h *Handler) listen() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case <-h.done:
			return
		case sig := <-h.sigChan:
			h.handle(sig)
		}
	}
}

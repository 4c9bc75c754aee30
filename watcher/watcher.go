// Package watcher polls a node for TangleGovernor logs and hands the decoded
// events to a handler, a confirmed block range at a time.
//
// Each round reads the chain head, holds back the configured confirmation
// depth, and queries the blocks between the checkpoint and that safe head in
// chunks of at most step blocks. The checkpoint advances only after every
// log of a chunk was delivered, so delivery is at-least-once across restarts.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"

	governor "github.com/tangle-network/go-governor"
)

var (
	// ErrNoHandler indicates a Watcher created without an event handler.
	ErrNoHandler = errors.New("watcher: nil handler")

	// ErrInvalidStep indicates a zero block step.
	ErrInvalidStep = errors.New("watcher: step must be positive")
)

// Backend is the subset of ethclient.Client a Watcher needs.
type Backend interface {
	ethereum.LogFilterer
	ethereum.BlockNumberReader
}

// Handler receives each decoded event in chain order. Returning an error
// stops Run without advancing the checkpoint past the failing range.
type Handler func(ctx context.Context, ev governor.EventLog) error

// Watcher delivers the events of one governor deployment.
type Watcher struct {
	backend Backend
	address common.Address
	handler Handler
	cfg     *config
	store   CheckpointStore
	metrics *Metrics
	logger  zerolog.Logger

	// initial retry delay; tests shorten it.
	retryInitial time.Duration
}

// New creates a Watcher for the governor at address.
func New(backend Backend, address common.Address, handler Handler, opts ...Option) (*Watcher, error) {
	if handler == nil {
		return nil, ErrNoHandler
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.step == 0 {
		return nil, ErrInvalidStep
	}

	w := &Watcher{
		backend:      backend,
		address:      address,
		handler:      handler,
		cfg:          cfg,
		store:        cfg.store,
		metrics:      cfg.metrics,
		logger:       cfg.logger.With().Stringer("governor", address).Logger(),
		retryInitial: backoff.DefaultInitialInterval,
	}
	if w.store == nil {
		w.store = NewMemoryStore()
	}
	if w.metrics == nil {
		w.metrics = NewMetrics(nil)
	}
	return w, nil
}

// Run polls until ctx is canceled, which is not an error, or until an RPC
// keeps failing past the retry budget, the checkpoint store fails, or the
// handler returns an error.
func (w *Watcher) Run(ctx context.Context) error {
	next, err := w.resume(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	w.logger.Info().
		Uint64("next", next).
		Uint64("confirmations", w.cfg.confirmations).
		Uint64("step", w.cfg.step).
		Dur("interval", w.cfg.pollInterval).
		Msg("watching governor")

	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		next, err = w.poll(ctx, next)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		timer.Reset(w.cfg.pollInterval)
	}
}

// resume returns the first block to query: the stored checkpoint, or the
// configured start when none exists.
func (w *Watcher) resume(ctx context.Context) (uint64, error) {
	next, ok, err := w.store.Load(w.address)
	if err != nil {
		return 0, fmt.Errorf("load checkpoint: %w", err)
	}
	if ok {
		w.logger.Debug().Uint64("next", next).Msg("resuming from checkpoint")
		return next, nil
	}

	switch w.cfg.start.kind {
	case startGenesis:
		return 0, nil
	case startCustom:
		return w.cfg.start.number, nil
	}
	head, err := w.blockNumber(ctx)
	if err != nil {
		return 0, err
	}
	return saturatingSub(head, w.cfg.confirmations), nil
}

// poll processes every confirmed block from next on and returns the new
// checkpoint.
func (w *Watcher) poll(ctx context.Context, next uint64) (uint64, error) {
	head, err := w.blockNumber(ctx)
	if err != nil {
		return next, err
	}
	if head < w.cfg.confirmations {
		w.metrics.Polls.Inc()
		return next, nil
	}
	safe := head - w.cfg.confirmations

	for next <= safe {
		if err := ctx.Err(); err != nil {
			return next, err
		}
		to := min(next+w.cfg.step-1, safe)

		logs, err := w.filterLogs(ctx, next, to)
		if err != nil {
			return next, err
		}
		if err := w.deliver(ctx, logs); err != nil {
			return next, err
		}

		if err := w.store.Save(w.address, to+1); err != nil {
			return next, fmt.Errorf("save checkpoint: %w", err)
		}
		w.metrics.LastBlock.Set(float64(to))
		w.logger.Debug().
			Uint64("from", next).
			Uint64("to", to).
			Int("logs", len(logs)).
			Msg("processed block range")
		next = to + 1
	}
	w.metrics.Polls.Inc()
	return next, nil
}

func (w *Watcher) deliver(ctx context.Context, logs []types.Log) error {
	for _, log := range logs {
		if log.Removed {
			continue
		}
		ev, err := governor.DecodeEvent(log, w.cfg.strict)
		if err != nil {
			w.metrics.DecodeFailures.Inc()
			w.logger.Warn().Err(err).
				Uint64("block", log.BlockNumber).
				Stringer("tx", log.TxHash).
				Uint("index", log.Index).
				Msg("skipping undecodable log")
			continue
		}
		if err := w.handler(ctx, governor.EventLog{Event: ev, Log: log}); err != nil {
			return fmt.Errorf("handle %s at block %d: %w", ev.Name(), log.BlockNumber, err)
		}
		w.metrics.Events.WithLabelValues(ev.Name()).Inc()
	}
	return nil
}

func (w *Watcher) blockNumber(ctx context.Context) (uint64, error) {
	var head uint64
	err := w.retry(ctx, "eth_blockNumber", func() error {
		var err error
		head, err = w.backend.BlockNumber(ctx)
		return err
	})
	return head, err
}

func (w *Watcher) filterLogs(ctx context.Context, from, to uint64) ([]types.Log, error) {
	q := governor.FilterQuery(w.address, new(big.Int).SetUint64(from), new(big.Int).SetUint64(to), w.cfg.topics...)
	var logs []types.Log
	err := w.retry(ctx, "eth_getLogs", func() error {
		var err error
		logs, err = w.backend.FilterLogs(ctx, q)
		return err
	})
	return logs, err
}

// retry runs op on an exponential schedule until it succeeds, the elapsed
// budget runs out, or ctx is done.
func (w *Watcher) retry(ctx context.Context, method string, op func() error) error {
	expb := backoff.NewExponentialBackOff()
	expb.InitialInterval = w.retryInitial
	expb.MaxElapsedTime = w.cfg.retryMaxElapse
	expb.Reset()

	var timer *time.Timer
	for {
		err := op()
		if err == nil {
			return nil
		}
		next := expb.NextBackOff()
		if next == backoff.Stop {
			return fmt.Errorf("%s: %w", method, err)
		}

		w.metrics.RPCRetries.WithLabelValues(method).Inc()
		w.logger.Warn().Err(err).Str("method", method).Dur("retry_in", next).Msg("rpc request failed")

		if timer == nil {
			timer = time.NewTimer(next)
			defer timer.Stop()
		} else {
			timer.Reset(next)
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%s: %w (last error: %v)", method, ctx.Err(), err)
		case <-timer.C:
		}
	}
}

func saturatingSub(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}

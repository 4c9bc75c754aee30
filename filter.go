package governor

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

// EventLog is a decoded governor event together with the log it came from.
type EventLog struct {
	Event Event
	Log   types.Log
}

// FilterQuery returns the log query for governor events at address in
// [from, to]. A nil bound is open. An empty topics list matches every event.
func FilterQuery(address common.Address, from, to *big.Int, topics ...common.Hash) ethereum.FilterQuery {
	q := ethereum.FilterQuery{
		FromBlock: from,
		ToBlock:   to,
		Addresses: []common.Address{address},
	}
	if len(topics) > 0 {
		q.Topics = [][]common.Hash{topics}
	}
	return q
}

// DecodeLogs decodes logs in order. Logs that fail to decode are skipped and
// their errors joined into the returned error.
func DecodeLogs(logs []types.Log, validate bool) ([]EventLog, error) {
	out := make([]EventLog, 0, len(logs))
	var errs []error
	for _, log := range logs {
		ev, err := DecodeEvent(log, validate)
		if err != nil {
			errs = append(errs, fmt.Errorf("log %d of tx %s: %w", log.Index, log.TxHash, err))
			continue
		}
		out = append(out, EventLog{Event: ev, Log: log})
	}
	return out, errors.Join(errs...)
}

// FilterEvents runs eth_getLogs for the governor and decodes the result.
// Decoded events are returned even when some logs fail to decode.
func (g *Governor) FilterEvents(ctx context.Context, from, to *big.Int, topics ...common.Hash) ([]EventLog, error) {
	logs, err := g.backend.FilterLogs(ctx, FilterQuery(g.address, from, to, topics...))
	if err != nil {
		return nil, err
	}
	g.logger.Debug().
		Str("from", blockLabel(from)).
		Str("to", blockLabel(to)).
		Int("logs", len(logs)).
		Msg("eth_getLogs")
	return DecodeLogs(logs, g.strict)
}

// WatchEvents subscribes to new governor logs and forwards decoded events to
// sink. Logs that fail to decode are logged and dropped.
func (g *Governor) WatchEvents(ctx context.Context, sink chan<- EventLog, topics ...common.Hash) (event.Subscription, error) {
	logs := make(chan types.Log)
	sub, err := g.backend.SubscribeFilterLogs(ctx, FilterQuery(g.address, nil, nil, topics...), logs)
	if err != nil {
		return nil, err
	}
	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer sub.Unsubscribe()
		for {
			select {
			case log := <-logs:
				ev, err := DecodeEvent(log, g.strict)
				if err != nil {
					g.logger.Warn().Err(err).
						Uint64("block", log.BlockNumber).
						Stringer("tx", log.TxHash).
						Msg("dropping undecodable log")
					continue
				}
				select {
				case sink <- EventLog{Event: ev, Log: log}:
				case err := <-sub.Err():
					return err
				case <-quit:
					return nil
				}
			case err := <-sub.Err():
				return err
			case <-quit:
				return nil
			}
		}
	}), nil
}

package main

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	governor "github.com/tangle-network/go-governor"
	"github.com/tangle-network/go-governor/internal/logging"
	"github.com/tangle-network/go-governor/watcher"
)

type watchFlags struct {
	From          string
	Confirmations uint64
	Step          uint64
	Interval      time.Duration
	RetryFor      time.Duration
	Events        []string
	Strict        bool
	DB            string
	MetricsAddr   string
}

func newWatchCmd(a *app) *cobra.Command {
	var f watchFlags
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow governor events and log them as they are confirmed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), a, f)
		},
	}
	addWatchFlags(cmd.Flags(), &f)
	return cmd
}

func addWatchFlags(fs *pflag.FlagSet, f *watchFlags) {
	fs.SortFlags = false
	fs.StringVar(&f.From, "from", "current", "first block when no checkpoint exists: genesis, current or a block number")
	fs.Uint64Var(&f.Confirmations, "confirmations", watcher.DefaultConfirmations, "blocks a log must be buried under before delivery")
	fs.Uint64Var(&f.Step, "step", watcher.DefaultStep, "maximum blocks per eth_getLogs query")
	fs.DurationVar(&f.Interval, "interval", watcher.DefaultPollInterval, "delay between polls once caught up")
	fs.DurationVar(&f.RetryFor, "retry-for", watcher.DefaultRetryMaxElapse, "how long to retry a failing RPC, 0 for forever")
	fs.StringSliceVar(&f.Events, "event", nil, "only follow these events, by name (e.g. VoteCast,ProposalCreated)")
	fs.BoolVar(&f.Strict, "strict", false, "skip logs that are not canonically encoded")
	fs.StringVar(&f.DB, "db", "", "checkpoint database path; progress is kept in memory when empty")
	fs.StringVar(&f.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
}

// watchOptions turns the flags into watcher options. It does not touch the
// network or the filesystem.
func watchOptions(f watchFlags, logger zerolog.Logger) ([]watcher.Option, error) {
	start, err := parseStart(f.From)
	if err != nil {
		return nil, err
	}
	topics, err := eventTopics(f.Events)
	if err != nil {
		return nil, err
	}
	return []watcher.Option{
		watcher.WithStart(start),
		watcher.WithConfirmations(f.Confirmations),
		watcher.WithStep(f.Step),
		watcher.WithPollInterval(f.Interval),
		watcher.WithRetryMaxElapsed(f.RetryFor),
		watcher.WithStrictDecoding(f.Strict),
		watcher.WithTopics(topics...),
		watcher.WithLogger(logger),
	}, nil
}

func runWatch(ctx context.Context, a *app, f watchFlags) error {
	logger := logging.Component(a.logger, "watcher")
	opts, err := watchOptions(f, logger)
	if err != nil {
		return err
	}
	address, err := a.governorAddress()
	if err != nil {
		return err
	}

	if f.DB != "" {
		store, err := watcher.OpenBoltStore(f.DB)
		if err != nil {
			return errors.Wrap(err, "checkpoint store")
		}
		defer store.Close()
		opts = append(opts, watcher.WithCheckpointStore(store))
	}

	if f.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		opts = append(opts, watcher.WithMetrics(watcher.NewMetrics(reg)))

		srv := &http.Server{
			Addr:              f.MetricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("metrics server failed")
			}
		}()
		defer srv.Close()
		logger.Info().Str("addr", f.MetricsAddr).Msg("serving metrics")
	}

	client, err := a.dial(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	w, err := watcher.New(client, address, logEvent(logger), opts...)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}

func logEvent(logger zerolog.Logger) watcher.Handler {
	return func(_ context.Context, ev governor.EventLog) error {
		logger.Info().
			Str("event", ev.Event.Name()).
			Uint64("block", ev.Log.BlockNumber).
			Stringer("tx", ev.Log.TxHash).
			Uint("index", ev.Log.Index).
			Msg(governor.Format(ev.Event))
		return nil
	}
}

func parseStart(s string) (watcher.StartBlock, error) {
	switch s {
	case "genesis":
		return watcher.FromGenesis(), nil
	case "current", "":
		return watcher.FromCurrent(), nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return watcher.StartBlock{}, errors.Errorf("invalid --from %q: want genesis, current or a block number", s)
	}
	return watcher.FromBlock(n), nil
}

func eventTopics(names []string) ([]common.Hash, error) {
	parsed := governor.GovernorABI()
	topics := make([]common.Hash, 0, len(names))
	for _, name := range names {
		ev, ok := parsed.Events[name]
		if !ok {
			return nil, errors.Errorf("unknown governor event %q", name)
		}
		topics = append(topics, ev.ID)
	}
	return topics, nil
}

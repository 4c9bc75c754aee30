package main

import (
	"context"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	governor "github.com/tangle-network/go-governor"
	"github.com/tangle-network/go-governor/internal/logging"
)

// globalFlags are shared by every subcommand. Each has a GOVCTL_* environment
// fallback.
type globalFlags struct {
	RPC       string
	Address   string
	LogLevel  string
	LogFormat string
}

// app carries the state built from the global flags.
type app struct {
	flags  globalFlags
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "govctl",
		Short:         "Inspect and follow a TangleGovernor deployment",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			format, err := logging.ParseFormat(a.flags.LogFormat)
			if err != nil {
				return err
			}
			logger, err := logging.New(cmd.ErrOrStderr(), a.flags.LogLevel, format)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}
	addGlobalFlags(root.PersistentFlags(), &a.flags)

	root.AddCommand(
		newSelectorsCmd(),
		newDecodeCmd(),
		newProposalCmd(a),
		newWatchCmd(a),
	)
	return root
}

func addGlobalFlags(fs *pflag.FlagSet, f *globalFlags) {
	fs.SortFlags = false
	fs.StringVar(&f.RPC, "rpc", envOr("GOVCTL_RPC", "http://localhost:8545"), "JSON-RPC endpoint (env GOVCTL_RPC)")
	fs.StringVar(&f.Address, "address", os.Getenv("GOVCTL_ADDRESS"), "governor contract address (env GOVCTL_ADDRESS)")
	fs.StringVar(&f.LogLevel, "log-level", envOr("GOVCTL_LOG_LEVEL", "info"), "log level: debug, info, warn, error (env GOVCTL_LOG_LEVEL)")
	fs.StringVar(&f.LogFormat, "log-format", envOr("GOVCTL_LOG_FORMAT", string(logging.FormatConsole)), "log format: console or json (env GOVCTL_LOG_FORMAT)")
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// governorAddress validates the --address flag.
func (a *app) governorAddress() (common.Address, error) {
	if a.flags.Address == "" {
		return common.Address{}, errors.New("--address (or GOVCTL_ADDRESS) is required")
	}
	if !common.IsHexAddress(a.flags.Address) {
		return common.Address{}, errors.Errorf("invalid governor address %q", a.flags.Address)
	}
	return common.HexToAddress(a.flags.Address), nil
}

// dial connects to --rpc.
func (a *app) dial(ctx context.Context) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, a.flags.RPC)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", a.flags.RPC)
	}
	a.logger.Debug().Str("rpc", a.flags.RPC).Msg("connected")
	return client, nil
}

// bind connects to --rpc and binds the governor at --address.
func (a *app) bind(ctx context.Context) (*governor.Governor, *ethclient.Client, error) {
	address, err := a.governorAddress()
	if err != nil {
		return nil, nil, err
	}
	client, err := a.dial(ctx)
	if err != nil {
		return nil, nil, err
	}
	gov := governor.NewGovernor(address, client, governor.WithLogger(logging.Component(a.logger, "governor")))
	return gov, client, nil
}

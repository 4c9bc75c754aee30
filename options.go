package governor

import "github.com/rs/zerolog"

// Option configures a Governor.
type Option func(*Governor)

// WithLogger sets the logger used for RPC activity. The default discards
// everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Governor) {
		g.logger = logger
	}
}

// WithStrictDecoding enables or disables canonical-encoding checks when
// decoding return values and logs. Disabled by default.
func WithStrictDecoding(enabled bool) Option {
	return func(g *Governor) {
		g.strict = enabled
	}
}

// ProposalOption configures a ProposalBuilder.
type ProposalOption func(*proposalConfig)

// proposalConfig holds configuration for a ProposalBuilder.
type proposalConfig struct {
	maxActions int
}

// defaultProposalConfig returns the default proposal configuration.
func defaultProposalConfig() *proposalConfig {
	return &proposalConfig{
		maxActions: DefaultMaxActions,
	}
}

// WithMaxActions caps the number of actions a proposal may hold.
// Default is 64 (DefaultMaxActions). Non-positive values remove the cap.
func WithMaxActions(max int) ProposalOption {
	return func(c *proposalConfig) {
		c.maxActions = max
	}
}

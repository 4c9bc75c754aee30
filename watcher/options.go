package watcher

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

// Defaults of a Watcher.
const (
	DefaultPollInterval   = time.Second
	DefaultConfirmations  = 12
	DefaultStep           = 100
	DefaultRetryMaxElapse = time.Minute
)

type startKind uint8

const (
	startCurrent startKind = iota
	startGenesis
	startCustom
)

// StartBlock selects the first block a Watcher queries when no checkpoint
// has been stored for the governor.
type StartBlock struct {
	kind   startKind
	number uint64
}

// FromGenesis starts at block 0.
func FromGenesis() StartBlock { return StartBlock{kind: startGenesis} }

// FromCurrent starts at the current head minus the confirmation depth.
// This is the default.
func FromCurrent() StartBlock { return StartBlock{kind: startCurrent} }

// FromBlock starts at the given block. Unlike FromCurrent, the number is not
// reduced by the confirmation depth.
func FromBlock(number uint64) StartBlock { return StartBlock{kind: startCustom, number: number} }

func (s StartBlock) String() string {
	switch s.kind {
	case startGenesis:
		return "genesis"
	case startCustom:
		return "custom"
	}
	return "current"
}

// Option configures a Watcher.
type Option func(*config)

type config struct {
	start          StartBlock
	pollInterval   time.Duration
	confirmations  uint64
	step           uint64
	retryMaxElapse time.Duration
	strict         bool
	topics         []common.Hash
	store          CheckpointStore
	metrics        *Metrics
	logger         zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		start:          FromCurrent(),
		pollInterval:   DefaultPollInterval,
		confirmations:  DefaultConfirmations,
		step:           DefaultStep,
		retryMaxElapse: DefaultRetryMaxElapse,
		logger:         zerolog.Nop(),
	}
}

// WithStart sets where to begin when no checkpoint exists.
func WithStart(start StartBlock) Option {
	return func(c *config) {
		c.start = start
	}
}

// WithPollInterval sets the delay between polls once the watcher has caught up.
func WithPollInterval(interval time.Duration) Option {
	return func(c *config) {
		c.pollInterval = interval
	}
}

// WithConfirmations sets how many blocks behind the head a log must be
// before it is delivered.
func WithConfirmations(confirmations uint64) Option {
	return func(c *config) {
		c.confirmations = confirmations
	}
}

// WithStep sets the maximum number of blocks per eth_getLogs query.
func WithStep(step uint64) Option {
	return func(c *config) {
		c.step = step
	}
}

// WithRetryMaxElapsed bounds how long a failing RPC is retried before Run
// gives up. Zero retries forever.
func WithRetryMaxElapsed(d time.Duration) Option {
	return func(c *config) {
		c.retryMaxElapse = d
	}
}

// WithStrictDecoding rejects logs that are not canonically encoded.
func WithStrictDecoding(enabled bool) Option {
	return func(c *config) {
		c.strict = enabled
	}
}

// WithTopics restricts the query to the given event topics.
func WithTopics(topics ...common.Hash) Option {
	return func(c *config) {
		c.topics = append([]common.Hash(nil), topics...)
	}
}

// WithCheckpointStore persists progress so a restarted watcher resumes
// where it stopped. Without one, progress lives in memory.
func WithCheckpointStore(store CheckpointStore) Option {
	return func(c *config) {
		c.store = store
	}
}

// WithMetrics records watcher activity in m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

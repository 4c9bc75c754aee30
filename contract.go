package governor

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

// Governor is a TangleGovernor deployment: an address paired with the
// backend used to reach it. Every ABI function is exposed as a method
// returning a *CallBuilder.
type Governor struct {
	address common.Address
	backend bind.ContractBackend
	bound   *bind.BoundContract
	logger  zerolog.Logger
	strict  bool
}

// NewGovernor binds the governor deployed at address. ethclient.Client
// satisfies bind.ContractBackend.
func NewGovernor(address common.Address, backend bind.ContractBackend, opts ...Option) *Governor {
	g := &Governor{
		address: address,
		backend: backend,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.bound = bind.NewBoundContract(address, GovernorABI(), backend, backend, backend)
	g.logger = g.logger.With().Stringer("governor", address).Logger()
	return g
}

// Address returns the governor address.
func (g *Governor) Address() common.Address {
	return g.address
}

// ABI returns the governor ABI.
func (g *Governor) ABI() abi.ABI {
	return GovernorABI()
}

// StrictDecoding reports whether returns and logs are decoded with validation.
func (g *Governor) StrictDecoding() bool {
	return g.strict
}

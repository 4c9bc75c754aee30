package governor

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// fakeBackend records requests and serves canned responses. Methods the
// tests do not override panic through the nil embedded interface.
type fakeBackend struct {
	bind.ContractBackend

	mu sync.Mutex

	code       []byte
	callResult []byte
	callErr    error
	calls      []ethereum.CallMsg
	callBlocks []*big.Int

	gas    uint64
	gasErr error

	sendErr error
	sent    []*types.Transaction

	logs    []types.Log
	queries []ethereum.FilterQuery

	subLogs chan<- types.Log
	sub     *fakeSubscription
}

func (b *fakeBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return b.code, nil
}

func (b *fakeBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, call)
	b.callBlocks = append(b.callBlocks, blockNumber)
	return b.callResult, b.callErr
}

func (b *fakeBackend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, call)
	return b.gas, b.gasErr
}

func (b *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sendErr != nil {
		return b.sendErr
	}
	b.sent = append(b.sent, tx)
	return nil
}

func (b *fakeBackend) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queries = append(b.queries, q)
	return b.logs, nil
}

func (b *fakeBackend) SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queries = append(b.queries, q)
	b.subLogs = ch
	b.sub = &fakeSubscription{err: make(chan error, 1), done: make(chan struct{})}
	return b.sub, nil
}

type fakeSubscription struct {
	once sync.Once
	err  chan error
	done chan struct{}
}

func (s *fakeSubscription) Unsubscribe() {
	s.once.Do(func() { close(s.done) })
}

func (s *fakeSubscription) Err() <-chan error {
	return s.err
}

// rpcError mimics the JSON-RPC error ethclient returns for a reverted call.
type rpcError struct {
	msg  string
	data any
}

func (e *rpcError) Error() string  { return e.msg }
func (e *rpcError) ErrorCode() int { return 3 }
func (e *rpcError) ErrorData() any { return e.data }

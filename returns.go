package governor

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ProposalVotes is the return value of proposalVotes(uint256).
type ProposalVotes struct {
	AgainstVotes *big.Int `abi:"againstVotes"`
	ForVotes     *big.Int `abi:"forVotes"`
	AbstainVotes *big.Int `abi:"abstainVotes"`
}

// Total returns the sum of all three tallies.
func (v ProposalVotes) Total() *big.Int {
	total := new(big.Int).Add(bigOrZero(v.AgainstVotes), bigOrZero(v.ForVotes))
	return total.Add(total, bigOrZero(v.AbstainVotes))
}

// EIP712Domain is the ERC-5267 return value of eip712Domain().
type EIP712Domain struct {
	Fields            [1]byte        `abi:"fields"`
	Name              string         `abi:"name"`
	Version           string         `abi:"version"`
	ChainID           *big.Int       `abi:"chainId"`
	VerifyingContract common.Address `abi:"verifyingContract"`
	Salt              common.Hash    `abi:"salt"`
	Extensions        []*big.Int     `abi:"extensions"`
}

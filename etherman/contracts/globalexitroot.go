package contracts

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// GlobalExitRootManager binds the global exit root map of L1 and L2 managers
type GlobalExitRootManager struct {
	*boundContract
}

func NewGlobalExitRootManager(address common.Address, backend bind.ContractBackend) (*GlobalExitRootManager, error) {
	b, err := newBoundContract(GlobalExitRootManagerABI, address, backend)
	if err != nil {
		return nil, err
	}

	return &GlobalExitRootManager{boundContract: b}, nil
}

type GlobalExitRootType = ContractBase[GlobalExitRootManager]

func NewGlobalExitRoot(address common.Address, backend bind.ContractBackend) (*GlobalExitRootType, error) {
	return NewContractBase(NewGlobalExitRootManager, address, backend, ContractNameGlobalExitRoot, VersionBridgeV2)
}

// GlobalExitRootMap returns the timestamp (L1) or block number (L2) at which the
// root was added, zero when it is unknown to the chain
func (g *GlobalExitRootManager) GlobalExitRootMap(opts *bind.CallOpts, ger common.Hash) (*big.Int, error) {
	out, err := g.call(opts, "globalExitRootMap", ger)
	if err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

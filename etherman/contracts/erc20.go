package contracts

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

type ERC20Metadata struct {
	*boundContract
}

func NewERC20Metadata(address common.Address, backend bind.ContractBackend) (*ERC20Metadata, error) {
	b, err := newBoundContract(ERC20MetadataABI, address, backend)
	if err != nil {
		return nil, err
	}

	return &ERC20Metadata{boundContract: b}, nil
}

type ERC20Type = ContractBase[ERC20Metadata]

func NewERC20(address common.Address, backend bind.ContractBackend) (*ERC20Type, error) {
	return NewContractBase(NewERC20Metadata, address, backend, ContractNameERC20, VersionERC20)
}

func (e *ERC20Metadata) Name(opts *bind.CallOpts) (string, error) {
	return e.stringCall(opts, "name")
}

func (e *ERC20Metadata) Symbol(opts *bind.CallOpts) (string, error) {
	return e.stringCall(opts, "symbol")
}

func (e *ERC20Metadata) Decimals(opts *bind.CallOpts) (uint8, error) {
	out, err := e.call(opts, "decimals")
	if err != nil {
		return 0, err
	}

	return *abi.ConvertType(out[0], new(uint8)).(*uint8), nil
}

func (e *ERC20Metadata) stringCall(opts *bind.CallOpts, method string) (string, error) {
	out, err := e.call(opts, method)
	if err != nil {
		return "", err
	}

	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

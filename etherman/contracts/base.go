package contracts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

type ContractBase[T any] struct {
	contractBind *T
	address      common.Address
	contractName NameType
	version      VersionType
}

type contractConstructorFunc[T any] func(address common.Address, backend bind.ContractBackend) (*T, error)

func NewContractBase[T any](constructor contractConstructorFunc[T], address common.Address, backend bind.ContractBackend,
	name NameType, version VersionType) (*ContractBase[T], error) {
	contractBind, err := constructor(address, backend)
	if err != nil {
		return nil, err
	}

	return &ContractBase[T]{
		contractBind: contractBind,
		address:      address,
		contractName: name,
		version:      version,
	}, nil
}

func (e *ContractBase[T]) GetContract() *T {
	return e.contractBind
}

func (e *ContractBase[T]) GetAddress() common.Address {
	return e.address
}

func (e *ContractBase[T]) GetName() string {
	return string(e.contractName)
}

func (e *ContractBase[T]) GetVersion() string {
	return string(e.version)
}

func (e *ContractBase[T]) String() string {
	return e.GetVersion() + "/" + e.GetName() + "@" + e.address.String()
}

// boundContract is the part every binding shares: the parsed ABI and the
// contract bound to a backend
type boundContract struct {
	abi      abi.ABI
	contract *bind.BoundContract
}

func newBoundContract(rawABI string, address common.Address, backend bind.ContractBackend) (*boundContract, error) {
	parsed, err := abi.JSON(strings.NewReader(rawABI))
	if err != nil {
		return nil, err
	}

	return &boundContract{
		abi:      parsed,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
	}, nil
}

func (b *boundContract) call(opts *bind.CallOpts, method string, params ...interface{}) ([]interface{}, error) {
	var out []interface{}
	err := b.contract.Call(opts, &out, method, params...)

	return out, err
}

// ABI returns the parsed ABI of the contract
func (b *boundContract) ABI() *abi.ABI {
	return &b.abi
}

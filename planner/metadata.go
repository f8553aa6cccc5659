package planner

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// CallMetadata is the header the bridge-and-call extension puts in the metadata
// of the message leaf
type CallMetadata struct {
	DependsOnIndex       *big.Int
	CallAddress          common.Address
	FallbackAddress      common.Address
	AssetOriginalNetwork uint32
	AssetOriginalAddress common.Address
	CallData             []byte
}

var callMetadataArgs = mustArguments("uint256", "address", "address", "uint32", "address", "bytes")

var tokenMetadataArgs = mustArguments("string", "string", "uint8")

func mustArguments(typeNames ...string) abi.Arguments {
	args := make(abi.Arguments, 0, len(typeNames))
	for _, name := range typeNames {
		ty, err := abi.NewType(name, "", nil)
		if err != nil {
			panic(err)
		}
		args = append(args, abi.Argument{Type: ty})
	}

	return args
}

// DecodeCallMetadata decodes
// abi.encode(dependsOnIndex, callAddress, fallbackAddress, assetOriginalNetwork, assetOriginalAddress, callData)
func DecodeCallMetadata(metadata []byte) (*CallMetadata, error) {
	values, err := callMetadataArgs.Unpack(metadata)
	if err != nil {
		return nil, fmt.Errorf("decode bridge-and-call metadata: %w", err)
	}

	return &CallMetadata{
		DependsOnIndex:       values[0].(*big.Int),
		CallAddress:          values[1].(common.Address),
		FallbackAddress:      values[2].(common.Address),
		AssetOriginalNetwork: values[3].(uint32),
		AssetOriginalAddress: values[4].(common.Address),
		CallData:             values[5].([]byte),
	}, nil
}

// Encode is the inverse of DecodeCallMetadata
func (m *CallMetadata) Encode() ([]byte, error) {
	dependsOn := m.DependsOnIndex
	if dependsOn == nil {
		dependsOn = big.NewInt(0)
	}
	callData := m.CallData
	if callData == nil {
		callData = []byte{}
	}

	return callMetadataArgs.Pack(dependsOn, m.CallAddress, m.FallbackAddress,
		m.AssetOriginalNetwork, m.AssetOriginalAddress, callData)
}

// DependsOn returns the deposit count the message waits for, false when it
// does not fit a deposit count
func (m *CallMetadata) DependsOn() (uint32, bool) {
	if m.DependsOnIndex == nil || !m.DependsOnIndex.IsUint64() || m.DependsOnIndex.Uint64() > uint64(^uint32(0)) {
		return 0, false
	}

	return uint32(m.DependsOnIndex.Uint64()), true
}

// TokenMetadata is the (name, symbol, decimals) metadata of ERC20 asset leaves
type TokenMetadata struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// DefaultTokenMetadata is used when the origin token can not be read
var DefaultTokenMetadata = TokenMetadata{Name: "AggERC20", Symbol: "AGGERC20", Decimals: 18}

// DecodeTokenMetadata decodes abi.encode(string name, string symbol, uint8 decimals)
func DecodeTokenMetadata(metadata []byte) (TokenMetadata, error) {
	values, err := tokenMetadataArgs.Unpack(metadata)
	if err != nil {
		return TokenMetadata{}, fmt.Errorf("decode token metadata: %w", err)
	}

	return TokenMetadata{
		Name:     values[0].(string),
		Symbol:   values[1].(string),
		Decimals: values[2].(uint8),
	}, nil
}

// Encode is the inverse of DecodeTokenMetadata
func (m TokenMetadata) Encode() ([]byte, error) {
	return tokenMetadataArgs.Pack(m.Name, m.Symbol, m.Decimals)
}

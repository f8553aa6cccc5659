package contracts

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

type NameType string

const (
	ContractNameBridge         NameType = "bridge"
	ContractNameGlobalExitRoot NameType = "globalexitroot"
	ContractNameERC20          NameType = "erc20"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	// ErrProofTooLong is returned when a SMT path has more siblings than the tree height
	ErrProofTooLong = errors.New("smt proof longer than the tree height")
)

type VersionType string

const (
	// VersionBridgeV2 is the PolygonZkEVMBridgeV2 family (etrog onwards)
	VersionBridgeV2 VersionType = "v2"
	VersionERC20    VersionType = "erc20"
)

// TreeHeight is the height of the exit trees, i.e. the length of a SMT proof
const TreeHeight = 32

// TokenInfo is the origin of a wrapped token
type TokenInfo struct {
	OriginNetwork      uint32
	OriginTokenAddress common.Address
}

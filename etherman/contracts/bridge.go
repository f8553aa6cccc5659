package contracts

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/agglayer/aggsandbox/types"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// PolygonZkEVMBridgeV2 binds the claim side of the bridge
type PolygonZkEVMBridgeV2 struct {
	*boundContract
	sandboxClaim abi.ABI
}

func NewPolygonZkEVMBridgeV2(address common.Address, backend bind.ContractBackend) (*PolygonZkEVMBridgeV2, error) {
	b, err := newBoundContract(PolygonZkEVMBridgeV2ABI, address, backend)
	if err != nil {
		return nil, err
	}
	sandboxClaim, err := abi.JSON(strings.NewReader(SandboxClaimABI))
	if err != nil {
		return nil, err
	}

	return &PolygonZkEVMBridgeV2{boundContract: b, sandboxClaim: sandboxClaim}, nil
}

// SandboxClaimABI returns the parsed proofless claim methods
func (b *PolygonZkEVMBridgeV2) SandboxClaimABI() abi.ABI {
	return b.sandboxClaim
}

type BridgeV2Type = ContractBase[PolygonZkEVMBridgeV2]

// NewBridgeV2 returns the bridge deployed at address
func NewBridgeV2(address common.Address, backend bind.ContractBackend) (*BridgeV2Type, error) {
	return NewContractBase(NewPolygonZkEVMBridgeV2, address, backend, ContractNameBridge, VersionBridgeV2)
}

// IsClaimed reads the claimed bitmap. leafIndex is the deposit count and
// sourceBridgeNetwork the network the deposit was made on.
func (b *PolygonZkEVMBridgeV2) IsClaimed(opts *bind.CallOpts, leafIndex, sourceBridgeNetwork uint32) (bool, error) {
	out, err := b.call(opts, "isClaimed", leafIndex, sourceBridgeNetwork)
	if err != nil {
		return false, err
	}

	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (b *PolygonZkEVMBridgeV2) GetTokenWrappedAddress(
	opts *bind.CallOpts, originNetwork uint32, originTokenAddress common.Address,
) (common.Address, error) {
	out, err := b.call(opts, "getTokenWrappedAddress", originNetwork, originTokenAddress)
	if err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

func (b *PolygonZkEVMBridgeV2) PrecalculatedWrapperAddress(
	opts *bind.CallOpts, originNetwork uint32, originTokenAddress common.Address,
	name, symbol string, decimals uint8,
) (common.Address, error) {
	out, err := b.call(opts, "precalculatedWrapperAddress", originNetwork, originTokenAddress, name, symbol, decimals)
	if err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

func (b *PolygonZkEVMBridgeV2) WrappedTokenToTokenInfo(opts *bind.CallOpts, wrapped common.Address) (TokenInfo, error) {
	out, err := b.call(opts, "wrappedTokenToTokenInfo", wrapped)
	if err != nil {
		return TokenInfo{}, err
	}

	return TokenInfo{
		OriginNetwork:      *abi.ConvertType(out[0], new(uint32)).(*uint32),
		OriginTokenAddress: *abi.ConvertType(out[1], new(common.Address)).(*common.Address),
	}, nil
}

// PackClaim builds the calldata of claimAsset or claimMessage for the sandbox
// bridge, which verifies the leaf against the exit roots without SMT proofs
func (b *PolygonZkEVMBridgeV2) PackClaim(req *types.ClaimRequest) ([]byte, error) {
	amount, metadata := claimValue(req)

	return b.sandboxClaim.Pack(
		req.Method(),
		req.GlobalIndex,        // uint256 globalIndex
		req.MainnetExitRoot,    // bytes32 mainnetExitRoot
		req.RollupExitRoot,     // bytes32 rollupExitRoot
		req.OriginNetwork,      // uint32 originNetwork
		req.OriginAddress,      // address originTokenAddress / originAddress
		req.DestinationNetwork, // uint32 destinationNetwork
		req.DestinationAddress, // address destinationAddress
		amount,                 // uint256 amount
		metadata,               // bytes metadata
	)
}

// PackClaimWithProofs builds the calldata of the upstream claim methods, which
// take the local and rollup SMT proofs first
func (b *PolygonZkEVMBridgeV2) PackClaimWithProofs(req *types.ClaimRequest) ([]byte, error) {
	localProof, err := ProofToArray(req.SMTProofLocalExitRoot)
	if err != nil {
		return nil, fmt.Errorf("smtProofLocalExitRoot: %w", err)
	}
	rollupProof, err := ProofToArray(req.SMTProofRollupExitRoot)
	if err != nil {
		return nil, fmt.Errorf("smtProofRollupExitRoot: %w", err)
	}
	amount, metadata := claimValue(req)

	return b.abi.Pack(
		req.Method(),
		localProof,             // bytes32[32] smtProofLocalExitRoot
		rollupProof,            // bytes32[32] smtProofRollupExitRoot
		req.GlobalIndex,        // uint256 globalIndex
		req.MainnetExitRoot,    // bytes32 mainnetExitRoot
		req.RollupExitRoot,     // bytes32 rollupExitRoot
		req.OriginNetwork,      // uint32 originNetwork
		req.OriginAddress,      // address originTokenAddress / originAddress
		req.DestinationNetwork, // uint32 destinationNetwork
		req.DestinationAddress, // address destinationAddress
		amount,                 // uint256 amount
		metadata,               // bytes metadata
	)
}

func claimValue(req *types.ClaimRequest) (*big.Int, []byte) {
	amount := req.Amount
	if amount == nil {
		amount = big.NewInt(0)
	}
	metadata := req.Metadata
	if metadata == nil {
		metadata = []byte{}
	}

	return amount, metadata
}

// ProofToArray converts a SMT path to the fixed size argument of the claim
// methods, missing siblings are zero
func ProofToArray(proof []common.Hash) ([TreeHeight][32]byte, error) {
	var res [TreeHeight][32]byte
	if len(proof) > TreeHeight {
		return res, fmt.Errorf("%w: %d siblings", ErrProofTooLong, len(proof))
	}
	for i, h := range proof {
		res[i] = h
	}

	return res, nil
}

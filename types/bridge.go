package types

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/iden3/go-iden3-crypto/keccak256"
)

// LeafType distinguishes token transfers from arbitrary call payloads
type LeafType uint8

const (
	// LeafTypeAsset represents a bridge asset
	LeafTypeAsset LeafType = 0
	// LeafTypeMessage represents a bridge message
	LeafTypeMessage LeafType = 1
)

func (l LeafType) String() string {
	switch l {
	case LeafTypeAsset:
		return "asset"
	case LeafTypeMessage:
		return "message"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(l))
	}
}

// BridgeDeposit is one leaf emitted by a source chain bridge call
type BridgeDeposit struct {
	TxHash             common.Hash
	SourceNetworkID    uint32
	DepositCount       uint32
	LeafType           LeafType
	OriginNetwork      uint32
	OriginAddress      common.Address
	DestinationNetwork uint32
	DestinationAddress common.Address
	Amount             *big.Int
	Metadata           []byte
	ReadyForClaim      bool
}

func (b BridgeDeposit) String() string {
	return fmt.Sprintf("%s deposit %d from network %d (tx %s)",
		b.LeafType, b.DepositCount, b.SourceNetworkID, b.TxHash.Hex())
}

// ClaimProof is the exit roots summary for one (network, deposit count) pair.
// LeafIndex is the position of the deposit in the shared L1 info tree.
type ClaimProof struct {
	NetworkID       uint32
	DepositCount    uint32
	LeafIndex       uint32
	MainnetExitRoot common.Hash
	RollupExitRoot  common.Hash
	GlobalExitRoot  common.Hash
	// SMT paths as returned by the indexer, only used to build claim payloads
	SMTProofLocalExitRoot  []common.Hash
	SMTProofRollupExitRoot []common.Hash
}

// CalculateGER returns keccak256(mainnetExitRoot, rollupExitRoot)
func CalculateGER(mainnetExitRoot, rollupExitRoot common.Hash) common.Hash {
	return common.BytesToHash(keccak256.Hash(mainnetExitRoot.Bytes(), rollupExitRoot.Bytes()))
}

// ClaimRequest is the resolved argument tuple of claimAsset / claimMessage
type ClaimRequest struct {
	LeafType           LeafType
	GlobalIndex        *big.Int
	MainnetExitRoot    common.Hash
	RollupExitRoot     common.Hash
	OriginNetwork      uint32
	OriginAddress      common.Address
	DestinationNetwork uint32
	DestinationAddress common.Address
	Amount             *big.Int
	Metadata           []byte
	// SMT paths of the deposit, zero filled when missing
	SMTProofLocalExitRoot  []common.Hash
	SMTProofRollupExitRoot []common.Hash

	// DepositCount and SourceNetworkID identify the deposit for isClaimed
	DepositCount    uint32
	SourceNetworkID uint32
	// Value is sent along with the claim tx, nil means zero
	Value *big.Int
}

// Method returns the bridge method that claims the request
func (c *ClaimRequest) Method() string {
	if c.LeafType == LeafTypeMessage {
		return "claimMessage"
	}

	return "claimAsset"
}

func (c *ClaimRequest) String() string {
	return fmt.Sprintf("%s(globalIndex=%s, depositCount=%d, sourceNetwork=%d)",
		c.Method(), c.GlobalIndex.String(), c.DepositCount, c.SourceNetworkID)
}

// NoDependency marks a plan step that does not wait on any other step
const NoDependency = -1

// PlanStep is one claim of a plan. Request is filled once the proof is resolved.
type PlanStep struct {
	Deposit BridgeDeposit
	// DependsOn is the index of the step that must reach Confirmed or
	// AlreadyClaimed before this one is submitted, NoDependency when none
	DependsOn int
	Request   *ClaimRequest
}

// ClaimPlan is an ordered list of claims to execute on one destination network
type ClaimPlan struct {
	DestinationNetwork uint32
	Steps              []PlanStep
}

// ClaimStatus is the state of a claim request in the submission engine
type ClaimStatus string

const (
	PendingClaimStatus   ClaimStatus = "pending"
	SubmittedClaimStatus ClaimStatus = "submitted"
	ConfirmedClaimStatus ClaimStatus = "confirmed"
	RevertedClaimStatus  ClaimStatus = "reverted"
)

// Outcome of a finished claim step
type Outcome string

const (
	OutcomeConfirmed      Outcome = "confirmed"
	OutcomeAlreadyClaimed Outcome = "already-claimed"
)

// ClaimResult is what the engine reports for one successful step
type ClaimResult struct {
	DepositCount    uint32
	SourceNetworkID uint32
	GlobalIndex     *big.Int
	Outcome         Outcome
	// TxHash is zero when the claim short circuited on isClaimed
	TxHash   common.Hash
	Attempts int
}

package bridgeservice

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/agglayer/aggsandbox/types"
	"github.com/ethereum/go-ethereum/common"
)

// Bridge is a deposit as listed by GET /bridge/v1/bridges
type Bridge struct {
	BlockNum           uint64         `json:"block_num"`
	TxHash             common.Hash    `json:"tx_hash"`
	NetworkID          uint32         `json:"network_id"`
	DepositCount       uint32         `json:"deposit_count"`
	LeafType           uint8          `json:"leaf_type"`
	OriginNetwork      uint32         `json:"origin_network"`
	OriginAddress      common.Address `json:"origin_address"`
	DestinationNetwork uint32         `json:"destination_network"`
	DestinationAddress common.Address `json:"destination_address"`
	Amount             json.Number    `json:"amount"`
	Metadata           string         `json:"metadata"`
	// ReadyForClaim is nil when the service does not report readiness
	ReadyForClaim *bool `json:"ready_for_claim,omitempty"`
}

// BridgesResponse is the body of GET /bridge/v1/bridges
type BridgesResponse struct {
	Bridges []Bridge `json:"bridges"`
	Count   int      `json:"count"`
}

// Deposit converts the listed bridge, sourceNetworkID is the network the listing was asked for
func (b Bridge) Deposit(sourceNetworkID uint32) (types.BridgeDeposit, error) {
	amount := big.NewInt(0)
	if b.Amount != "" {
		var ok bool
		amount, ok = new(big.Int).SetString(b.Amount.String(), 10)
		if !ok {
			return types.BridgeDeposit{}, fmt.Errorf("invalid amount %q on deposit %d", b.Amount, b.DepositCount)
		}
	}
	if b.LeafType > uint8(types.LeafTypeMessage) {
		return types.BridgeDeposit{}, fmt.Errorf("invalid leaf type %d on deposit %d", b.LeafType, b.DepositCount)
	}

	return types.BridgeDeposit{
		TxHash:             b.TxHash,
		SourceNetworkID:    sourceNetworkID,
		DepositCount:       b.DepositCount,
		LeafType:           types.LeafType(b.LeafType),
		OriginNetwork:      b.OriginNetwork,
		OriginAddress:      b.OriginAddress,
		DestinationNetwork: b.DestinationNetwork,
		DestinationAddress: b.DestinationAddress,
		Amount:             amount,
		Metadata:           common.FromHex(b.Metadata),
		ReadyForClaim:      b.ReadyForClaim == nil || *b.ReadyForClaim,
	}, nil
}

// L1InfoTreeLeaf is the leaf of the L1 info tree a claim is proven against
type L1InfoTreeLeaf struct {
	BlockNum          uint64      `json:"block_num"`
	BlockPos          uint64      `json:"block_pos"`
	L1InfoTreeIndex   uint32      `json:"l1_info_tree_index"`
	PreviousBlockHash common.Hash `json:"previous_block_hash"`
	Timestamp         uint64      `json:"timestamp"`
	MainnetExitRoot   common.Hash `json:"mainnet_exit_root"`
	RollupExitRoot    common.Hash `json:"rollup_exit_root"`
	GlobalExitRoot    common.Hash `json:"global_exit_root"`
	Hash              common.Hash `json:"hash"`
}

// ClaimProofResponse is the body of GET /bridge/v1/claim-proof
type ClaimProofResponse struct {
	ProofLocalExitRoot  []common.Hash  `json:"proof_local_exit_root"`
	ProofRollupExitRoot []common.Hash  `json:"proof_rollup_exit_root"`
	SMTProof            []common.Hash  `json:"smt_proof"`
	SMTProofRollup      []common.Hash  `json:"smt_proof_rollup"`
	L1InfoTreeLeaf      L1InfoTreeLeaf `json:"l1_info_tree_leaf"`
}

// ClaimProof converts the response. The global exit root is derived from the
// exit roots when the indexer does not report it.
func (r ClaimProofResponse) ClaimProof(networkID, depositCount, leafIndex uint32) *types.ClaimProof {
	ger := r.L1InfoTreeLeaf.GlobalExitRoot
	if ger == (common.Hash{}) {
		ger = types.CalculateGER(r.L1InfoTreeLeaf.MainnetExitRoot, r.L1InfoTreeLeaf.RollupExitRoot)
	}
	local, rollup := r.ProofLocalExitRoot, r.ProofRollupExitRoot
	if len(local) == 0 {
		local = r.SMTProof
	}
	if len(rollup) == 0 {
		rollup = r.SMTProofRollup
	}

	return &types.ClaimProof{
		NetworkID:              networkID,
		DepositCount:           depositCount,
		LeafIndex:              leafIndex,
		MainnetExitRoot:        r.L1InfoTreeLeaf.MainnetExitRoot,
		RollupExitRoot:         r.L1InfoTreeLeaf.RollupExitRoot,
		GlobalExitRoot:         ger,
		SMTProofLocalExitRoot:  local,
		SMTProofRollupExitRoot: rollup,
	}
}

// l1InfoTreeIndexResponse accepts both a bare number and {"l1_info_tree_index": n}
type l1InfoTreeIndexResponse struct {
	Index uint32
}

func (r *l1InfoTreeIndexResponse) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &r.Index); err == nil {
		return nil
	}
	var wrapped struct {
		Index *uint32 `json:"l1_info_tree_index"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	if wrapped.Index == nil {
		return fmt.Errorf("missing l1_info_tree_index in %s", string(data))
	}
	r.Index = *wrapped.Index

	return nil
}

// Claim is an executed claim as listed by GET /bridge/v1/claims
type Claim struct {
	BlockNum           uint64         `json:"block_num"`
	TxHash             common.Hash    `json:"tx_hash"`
	GlobalIndex        json.Number    `json:"global_index"`
	OriginNetwork      uint32         `json:"origin_network"`
	OriginAddress      common.Address `json:"origin_address"`
	DestinationNetwork uint32         `json:"destination_network"`
	DestinationAddress common.Address `json:"destination_address"`
	Amount             json.Number    `json:"amount"`
}

// ClaimsResponse is the body of GET /bridge/v1/claims
type ClaimsResponse struct {
	Claims []Claim `json:"claims"`
	Count  int     `json:"count"`
}

// GlobalIndexInt parses the claim global index
func (c Claim) GlobalIndexInt() (*big.Int, error) {
	gi, ok := new(big.Int).SetString(c.GlobalIndex.String(), 10)
	if !ok {
		return nil, fmt.Errorf("invalid global index %q", c.GlobalIndex)
	}

	return gi, nil
}

// SponsorClaimRequest is the body of POST /bridge/v1/sponsor-claim
type SponsorClaimRequest struct {
	LeafType           uint8          `json:"leaf_type"`
	GlobalIndex        string         `json:"global_index"`
	MainnetExitRoot    common.Hash    `json:"mainnet_exit_root"`
	RollupExitRoot     common.Hash    `json:"rollup_exit_root"`
	OriginNetwork      uint32         `json:"origin_network"`
	OriginTokenAddress common.Address `json:"origin_token_address"`
	DestinationNetwork uint32         `json:"destination_network"`
	DestinationAddress common.Address `json:"destination_address"`
	Amount             string         `json:"amount"`
	Metadata           string         `json:"metadata"`
}

// NewSponsorClaimRequest builds the sponsor request of a resolved claim
func NewSponsorClaimRequest(req *types.ClaimRequest) SponsorClaimRequest {
	amount := "0"
	if req.Amount != nil {
		amount = req.Amount.String()
	}

	return SponsorClaimRequest{
		LeafType:           uint8(req.LeafType),
		GlobalIndex:        req.GlobalIndex.String(),
		MainnetExitRoot:    req.MainnetExitRoot,
		RollupExitRoot:     req.RollupExitRoot,
		OriginNetwork:      req.OriginNetwork,
		OriginTokenAddress: req.OriginAddress,
		DestinationNetwork: req.DestinationNetwork,
		DestinationAddress: req.DestinationAddress,
		Amount:             amount,
		Metadata:           fmt.Sprintf("0x%x", req.Metadata),
	}
}

// SponsoredClaimStatus is the status the bridge service reports for a sponsored claim
type SponsoredClaimStatus string

const (
	PendingSponsoredClaimStatus SponsoredClaimStatus = "pending"
	WIPSponsoredClaimStatus     SponsoredClaimStatus = "WIP"
	SuccessSponsoredClaimStatus SponsoredClaimStatus = "success"
	FailedSponsoredClaimStatus  SponsoredClaimStatus = "failed"
)

type sponsoredClaimStatusResponse struct {
	Status SponsoredClaimStatus `json:"status"`
}

func (r *sponsoredClaimStatusResponse) UnmarshalJSON(data []byte) error {
	var status string
	if err := json.Unmarshal(data, &status); err == nil {
		r.Status = SponsoredClaimStatus(status)
		return nil
	}
	type plain sponsoredClaimStatusResponse
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	r.Status = p.Status

	return nil
}

package bridgeservice

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/agglayer/aggsandbox/types"
	"github.com/ethereum/go-ethereum/common"
)

// rpcL1InfoTreeLeaf is the leaf as encoded by the JSON-RPC namespace, field names untagged
type rpcL1InfoTreeLeaf struct {
	L1InfoTreeIndex   uint32
	PreviousBlockHash common.Hash
	BlockNumber       uint64
	Timestamp         uint64
	MainnetExitRoot   common.Hash
	RollupExitRoot    common.Hash
	GlobalExitRoot    common.Hash
}

func (l rpcL1InfoTreeLeaf) leaf() L1InfoTreeLeaf {
	return L1InfoTreeLeaf{
		BlockNum:          l.BlockNumber,
		L1InfoTreeIndex:   l.L1InfoTreeIndex,
		PreviousBlockHash: l.PreviousBlockHash,
		Timestamp:         l.Timestamp,
		MainnetExitRoot:   l.MainnetExitRoot,
		RollupExitRoot:    l.RollupExitRoot,
		GlobalExitRoot:    l.GlobalExitRoot,
	}
}

type rpcClaimProof struct {
	ProofLocalExitRoot  []common.Hash
	ProofRollupExitRoot []common.Hash
	L1InfoTreeLeaf      rpcL1InfoTreeLeaf
}

type rpcSponsorClaim struct {
	LeafType           uint8
	GlobalIndex        *big.Int
	MainnetExitRoot    common.Hash
	RollupExitRoot     common.Hash
	OriginNetwork      uint32
	OriginTokenAddress common.Address
	DestinationNetwork uint32
	DestinationAddress common.Address
	Amount             *big.Int
	Metadata           []byte
}

// JSONRPCClient calls the "bridge" JSON-RPC namespace served by aggkit nodes
type JSONRPCClient struct {
	url string
}

// NewJSONRPCClient returns a client ready to be used
func NewJSONRPCClient(url string) *JSONRPCClient {
	return &JSONRPCClient{url: url}
}

func (c *JSONRPCClient) call(op string, notReady types.ErrorKind, result interface{},
	method string, params ...interface{}) error {
	response, err := rpc.JSONRPCCall(c.url, method, params...)
	if err != nil {
		return types.NewError(types.KindChainRPCError, op, err)
	}
	if response.Error != nil {
		return types.NewError(notReady, op, fmt.Errorf("%v %v", response.Error.Code, response.Error.Message))
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(response.Result, result); err != nil {
		return types.NewError(types.KindOther, op, err)
	}

	return nil
}

// L1InfoTreeIndexForBridge returns the first L1 Info Tree index in which the bridge was included.
// networkID represents the origin network.
func (c *JSONRPCClient) L1InfoTreeIndexForBridge(networkID uint32, depositCount uint32) (uint32, error) {
	var result uint32
	err := c.call("bridgeservice.L1InfoTreeIndexForBridge", types.KindProofNotReady, &result,
		"bridge_l1InfoTreeIndexForBridge", networkID, depositCount)

	return result, err
}

// ClaimProof returns the proofs needed to claim a bridge. networkID and depositCount refer to the bridge origin
func (c *JSONRPCClient) ClaimProof(
	networkID uint32, depositCount uint32, l1InfoTreeIndex uint32,
) (*ClaimProofResponse, error) {
	var result rpcClaimProof
	if err := c.call("bridgeservice.ClaimProof", types.KindProofNotReady, &result,
		"bridge_claimProof", networkID, depositCount, l1InfoTreeIndex); err != nil {
		return nil, err
	}

	return &ClaimProofResponse{
		ProofLocalExitRoot:  result.ProofLocalExitRoot,
		ProofRollupExitRoot: result.ProofRollupExitRoot,
		L1InfoTreeLeaf:      result.L1InfoTreeLeaf.leaf(),
	}, nil
}

// SponsorClaim sends a claim tx on behalf of the user
func (c *JSONRPCClient) SponsorClaim(claim SponsorClaimRequest) error {
	const op = "bridgeservice.SponsorClaim"
	globalIndex, ok := new(big.Int).SetString(claim.GlobalIndex, 10)
	if !ok {
		return types.Errorf(types.KindOther, op, "invalid global index %q", claim.GlobalIndex)
	}
	amount, ok := new(big.Int).SetString(claim.Amount, 10)
	if !ok {
		return types.Errorf(types.KindOther, op, "invalid amount %q", claim.Amount)
	}

	return c.call(op, types.KindOther, nil, "bridge_sponsorClaim", rpcSponsorClaim{
		LeafType:           claim.LeafType,
		GlobalIndex:        globalIndex,
		MainnetExitRoot:    claim.MainnetExitRoot,
		RollupExitRoot:     claim.RollupExitRoot,
		OriginNetwork:      claim.OriginNetwork,
		OriginTokenAddress: claim.OriginTokenAddress,
		DestinationNetwork: claim.DestinationNetwork,
		DestinationAddress: claim.DestinationAddress,
		Amount:             amount,
		Metadata:           common.FromHex(claim.Metadata),
	})
}

// GetSponsoredClaimStatus returns the status of a claim that has been previously requested to be sponsored
func (c *JSONRPCClient) GetSponsoredClaimStatus(globalIndex *big.Int) (SponsoredClaimStatus, error) {
	var result SponsoredClaimStatus
	err := c.call("bridgeservice.GetSponsoredClaimStatus", types.KindOther, &result,
		"bridge_getSponsoredClaimStatus", globalIndex)

	return result, err
}

package bridgeservice

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/agglayer/aggsandbox/log"
	"github.com/agglayer/aggsandbox/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

type rpcRequest struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
	ID     json.RawMessage   `json:"id"`
}

// newRPCServer answers every call with the result or the error returned by handle
func newRPCServer(t *testing.T, handle func(req rpcRequest) (interface{}, *rpcErrorObject)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		result, rpcErr := handle(req)
		res := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
		if rpcErr != nil {
			res["error"] = rpcErr
		} else {
			res["result"] = result
		}
		writeJSON(t, w, res)
	}))
	t.Cleanup(srv.Close)

	return srv
}

type rpcErrorObject struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func TestJSONRPCClient(t *testing.T) {
	var notIncluded atomic.Bool
	notIncluded.Store(true)
	srv := newRPCServer(t, func(req rpcRequest) (interface{}, *rpcErrorObject) {
		switch req.Method {
		case "bridge_l1InfoTreeIndexForBridge":
			require.Len(t, req.Params, 2)
			if notIncluded.Load() {
				return nil, &rpcErrorObject{Code: -32000, Message: "this bridge has not been included on the L1 Info Tree yet"}
			}
			return 9, nil
		case "bridge_claimProof":
			require.Len(t, req.Params, 3)
			return map[string]interface{}{
				"ProofLocalExitRoot": []common.Hash{common.HexToHash("0x05")},
				"L1InfoTreeLeaf": map[string]interface{}{
					"L1InfoTreeIndex": 9,
					"BlockNumber":     100,
					"MainnetExitRoot": testMER,
					"RollupExitRoot":  testRER,
					"GlobalExitRoot":  types.CalculateGER(testMER, testRER),
				},
			}, nil
		case "bridge_sponsorClaim":
			var claim map[string]interface{}
			require.NoError(t, json.Unmarshal(req.Params[0], &claim))
			require.Equal(t, float64(5), claim["GlobalIndex"])
			return nil, nil
		case "bridge_getSponsoredClaimStatus":
			return "pending", nil
		default:
			return nil, &rpcErrorObject{Code: -32601, Message: "method not found"}
		}
	})
	c := NewJSONRPCClient(srv.URL)

	_, err := c.L1InfoTreeIndexForBridge(0, 3)
	require.ErrorIs(t, err, types.ErrProofNotReady)

	notIncluded.Store(false)
	idx, err := c.L1InfoTreeIndexForBridge(0, 3)
	require.NoError(t, err)
	require.Equal(t, uint32(9), idx)

	res, err := c.ClaimProof(0, 3, 9)
	require.NoError(t, err)
	proof := res.ClaimProof(0, 3, 9)
	require.Equal(t, testMER, proof.MainnetExitRoot)
	require.Equal(t, types.CalculateGER(testMER, testRER), proof.GlobalExitRoot)
	require.Equal(t, uint64(100), res.L1InfoTreeLeaf.BlockNum)

	require.NoError(t, c.SponsorClaim(SponsorClaimRequest{GlobalIndex: "5", Amount: "0"}))
	require.Error(t, c.SponsorClaim(SponsorClaimRequest{GlobalIndex: "x", Amount: "0"}))

	status, err := c.GetSponsoredClaimStatus(big.NewInt(5))
	require.NoError(t, err)
	require.Equal(t, PendingSponsoredClaimStatus, status)
}

func TestJSONRPCClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	_, err := NewJSONRPCClient(srv.URL).L1InfoTreeIndexForBridge(0, 0)
	require.ErrorIs(t, err, types.ErrChainRPC)
}

func TestClientUsesJSONRPCForProofs(t *testing.T) {
	srv := newRPCServer(t, func(req rpcRequest) (interface{}, *rpcErrorObject) {
		switch req.Method {
		case "bridge_l1InfoTreeIndexForBridge":
			return 4, nil
		case "bridge_claimProof":
			return map[string]interface{}{
				"L1InfoTreeLeaf": map[string]interface{}{"MainnetExitRoot": testMER, "RollupExitRoot": testRER},
			}, nil
		}
		return nil, &rpcErrorObject{Code: -32601, Message: "method not found"}
	})
	cfg := testConfig()
	cfg.API = APIJSONRPC
	c, err := NewClient(cfg, []types.NetworkConfig{{NetworkID: 1, BridgeServiceURL: srv.URL}}, log.GetDefaultLogger())
	require.NoError(t, err)

	idx, err := c.L1InfoTreeIndex(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Equal(t, uint32(4), idx)

	proof, err := c.ClaimProof(context.Background(), 1, idx, 2)
	require.NoError(t, err)
	require.Equal(t, uint32(4), proof.LeafIndex)
	require.Equal(t, types.CalculateGER(testMER, testRER), proof.GlobalExitRoot)
}

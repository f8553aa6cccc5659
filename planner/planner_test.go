package planner

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/agglayer/aggsandbox/globalindex"
	"github.com/agglayer/aggsandbox/log"
	"github.com/agglayer/aggsandbox/planner/mocks"
	"github.com/agglayer/aggsandbox/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	txHash    = common.HexToHash("0xabc1")
	token     = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	extension = common.HexToAddress("0x2279B7A0a67DB372996a5FaB50D91eAA73d2eBe6")
	target    = common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
)

func newTestPlanner() *Planner {
	return New(log.GetDefaultLogger())
}

func assetDeposit(count uint32) types.BridgeDeposit {
	return types.BridgeDeposit{
		TxHash:             txHash,
		SourceNetworkID:    1,
		DepositCount:       count,
		LeafType:           types.LeafTypeAsset,
		OriginNetwork:      1,
		OriginAddress:      token,
		DestinationNetwork: 2,
		DestinationAddress: extension,
		Amount:             big.NewInt(10),
	}
}

func messageDeposit(t *testing.T, count uint32, dependsOn int64) types.BridgeDeposit {
	t.Helper()
	meta := &CallMetadata{
		DependsOnIndex:       big.NewInt(dependsOn),
		CallAddress:          target,
		FallbackAddress:      common.HexToAddress("0x01"),
		AssetOriginalNetwork: 1,
		AssetOriginalAddress: token,
		CallData:             []byte{0xde, 0xad},
	}
	encoded, err := meta.Encode()
	require.NoError(t, err)

	return types.BridgeDeposit{
		TxHash:             txHash,
		SourceNetworkID:    1,
		DepositCount:       count,
		LeafType:           types.LeafTypeMessage,
		OriginNetwork:      1,
		OriginAddress:      extension,
		DestinationNetwork: 2,
		DestinationAddress: extension,
		Amount:             big.NewInt(0),
		Metadata:           encoded,
	}
}

func TestPlanSingleton(t *testing.T) {
	p := newTestPlanner()
	plan, err := p.Plan([]types.BridgeDeposit{assetDeposit(3)}, 2)
	require.NoError(t, err)
	require.Len(t, plan.Steps, 1)
	require.Equal(t, uint32(3), plan.Steps[0].Deposit.DepositCount)
	require.Equal(t, types.NoDependency, plan.Steps[0].DependsOn)

	// a lone message is claimed as is, whatever its metadata
	lone := messageDeposit(t, 4, 99)
	plan, err = p.Plan([]types.BridgeDeposit{lone}, 2)
	require.NoError(t, err)
	require.Len(t, plan.Steps, 1)
}

func TestPlanBundle(t *testing.T) {
	p := newTestPlanner()
	// indexer order does not matter
	deposits := []types.BridgeDeposit{messageDeposit(t, 6, 5), assetDeposit(5)}
	plan, err := p.Plan(deposits, 2)
	require.NoError(t, err)
	require.Len(t, plan.Steps, 2)
	require.Equal(t, types.LeafTypeAsset, plan.Steps[0].Deposit.LeafType)
	require.Equal(t, types.NoDependency, plan.Steps[0].DependsOn)
	require.Equal(t, types.LeafTypeMessage, plan.Steps[1].Deposit.LeafType)
	require.Equal(t, 0, plan.Steps[1].DependsOn)
}

func TestPlanFiltersDestination(t *testing.T) {
	p := newTestPlanner()
	other := assetDeposit(7)
	other.DestinationNetwork = 0
	plan, err := p.Plan([]types.BridgeDeposit{assetDeposit(5), other}, 2)
	require.NoError(t, err)
	require.Len(t, plan.Steps, 1)
	require.Equal(t, uint32(5), plan.Steps[0].Deposit.DepositCount)

	_, err = p.Plan([]types.BridgeDeposit{other}, 2)
	require.ErrorIs(t, err, types.ErrPlanInvalid)
}

func TestPlanInvalid(t *testing.T) {
	p := newTestPlanner()
	garbage := messageDeposit(t, 6, 5)
	garbage.Metadata = []byte{0x01, 0x02}

	tests := []struct {
		name     string
		deposits []types.BridgeDeposit
	}{
		{"depends on a missing asset", []types.BridgeDeposit{assetDeposit(5), messageDeposit(t, 6, 4)}},
		{"depends on a message", []types.BridgeDeposit{messageDeposit(t, 5, 6), messageDeposit(t, 6, 5)}},
		{"undecodable metadata", []types.BridgeDeposit{assetDeposit(5), garbage}},
		{"depends on index out of range", []types.BridgeDeposit{assetDeposit(5), messageDeposit(t, 6, 1<<40)}},
		{"duplicated deposit", []types.BridgeDeposit{assetDeposit(5), assetDeposit(5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Plan(tt.deposits, 2)
			require.ErrorIs(t, err, types.ErrPlanInvalid)
			require.Equal(t, types.KindPlanInvalid, types.KindOf(err))
		})
	}
}

func TestSelect(t *testing.T) {
	p := newTestPlanner()
	plan, err := p.Plan([]types.BridgeDeposit{assetDeposit(5), messageDeposit(t, 6, 5), assetDeposit(8)}, 2)
	require.NoError(t, err)

	selected, err := p.Select(plan, 6)
	require.NoError(t, err)
	require.Len(t, selected.Steps, 2)
	require.Equal(t, uint32(5), selected.Steps[0].Deposit.DepositCount)
	require.Equal(t, 0, selected.Steps[1].DependsOn)

	selected, err = p.Select(plan, 8)
	require.NoError(t, err)
	require.Len(t, selected.Steps, 1)

	_, err = p.Select(plan, 42)
	require.Error(t, err)
}

func TestOrder(t *testing.T) {
	p := newTestPlanner()
	plan, err := p.Plan([]types.BridgeDeposit{assetDeposit(5), messageDeposit(t, 6, 5)}, 2)
	require.NoError(t, err)

	_, err = p.Order(plan, []uint32{6, 5})
	require.ErrorIs(t, err, types.ErrUnclaimedAssetDependency)
	var claimErr *types.ClaimError
	require.True(t, errors.As(err, &claimErr))
	require.Contains(t, claimErr.Remediation(), "asset deposit before the message")

	ordered, err := p.Order(plan, []uint32{5, 6})
	require.NoError(t, err)
	require.Equal(t, plan.Steps, ordered.Steps)

	_, err = p.Order(plan, []uint32{5})
	require.ErrorIs(t, err, types.ErrPlanInvalid)
	_, err = p.Order(plan, []uint32{5, 9})
	require.ErrorIs(t, err, types.ErrPlanInvalid)
}

func testProof(d types.BridgeDeposit) *types.ClaimProof {
	return &types.ClaimProof{
		NetworkID:             d.SourceNetworkID,
		DepositCount:          d.DepositCount,
		MainnetExitRoot:       common.HexToHash("0x11"),
		RollupExitRoot:        common.HexToHash("0x22"),
		SMTProofLocalExitRoot: []common.Hash{common.HexToHash("0x33")},
	}
}

func TestBuildRequest(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	msg := messageDeposit(t, 6, 5)

	req, err := p.BuildRequest(ctx, msg, testProof(msg), RequestOptions{Value: big.NewInt(3)})
	require.NoError(t, err)
	expectedIndex, err := globalindex.LayoutBridgeV2.Encode(6, 1)
	require.NoError(t, err)
	require.Equal(t, expectedIndex, req.GlobalIndex)
	require.Equal(t, "claimMessage", req.Method())
	require.Equal(t, msg.Metadata, req.Metadata)
	require.Equal(t, extension, req.OriginAddress)
	require.Equal(t, big.NewInt(3), req.Value)
	require.Equal(t, common.HexToHash("0x11"), req.MainnetExitRoot)

	req, err = p.BuildRequest(ctx, msg, testProof(msg), RequestOptions{
		Layout:     globalindex.LayoutLxlyJS,
		CustomData: []byte{0x12, 0x34},
	})
	require.NoError(t, err)
	require.Equal(t, []byte{0x12, 0x34}, req.Metadata)
	expectedIndex, err = globalindex.LayoutLxlyJS.Encode(6, 1)
	require.NoError(t, err)
	require.Equal(t, expectedIndex, req.GlobalIndex)

	mismatch := testProof(msg)
	mismatch.DepositCount = 7
	_, err = p.BuildRequest(ctx, msg, mismatch, RequestOptions{})
	require.Error(t, err)

	huge := assetDeposit(1 << 31)
	_, err = p.BuildRequest(ctx, huge, testProof(huge), RequestOptions{Layout: globalindex.LayoutLxlyJS})
	require.ErrorIs(t, err, types.ErrEncodingOverflow)
}

func TestBuildRequestTokenMetadata(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	asset := assetDeposit(5)

	tokens := mocks.NewTokenMetadataReader(t)
	tokens.EXPECT().TokenMetadata(mock.Anything, uint32(1), token).Return("Test", "TST", uint8(6), nil).Once()
	req, err := p.BuildRequest(ctx, asset, testProof(asset), RequestOptions{Tokens: tokens})
	require.NoError(t, err)
	meta, err := DecodeTokenMetadata(req.Metadata)
	require.NoError(t, err)
	require.Equal(t, TokenMetadata{Name: "Test", Symbol: "TST", Decimals: 6}, meta)

	unreadable := mocks.NewTokenMetadataReader(t)
	unreadable.EXPECT().TokenMetadata(mock.Anything, uint32(1), token).Return("", "", uint8(0), errors.New("no code")).Once()
	req, err = p.BuildRequest(ctx, asset, testProof(asset), RequestOptions{Tokens: unreadable})
	require.NoError(t, err)
	meta, err = DecodeTokenMetadata(req.Metadata)
	require.NoError(t, err)
	require.Equal(t, DefaultTokenMetadata, meta)

	// wrapped tokens and native gas token keep their metadata untouched
	untouched := mocks.NewTokenMetadataReader(t)
	wrapped := assetDeposit(5)
	wrapped.OriginNetwork = 0
	req, err = p.BuildRequest(ctx, wrapped, testProof(wrapped), RequestOptions{Tokens: untouched})
	require.NoError(t, err)
	require.Empty(t, req.Metadata)
	native := assetDeposit(5)
	native.OriginAddress = common.Address{}
	req, err = p.BuildRequest(ctx, native, testProof(native), RequestOptions{Tokens: untouched})
	require.NoError(t, err)
	require.Empty(t, req.Metadata)
}

func TestCallMetadataDependsOn(t *testing.T) {
	meta := &CallMetadata{DependsOnIndex: new(big.Int).Lsh(big.NewInt(1), 40)}
	_, ok := meta.DependsOn()
	require.False(t, ok)

	meta.DependsOnIndex = big.NewInt(12)
	count, ok := meta.DependsOn()
	require.True(t, ok)
	require.Equal(t, uint32(12), count)

	encoded, err := meta.Encode()
	require.NoError(t, err)
	decoded, err := DecodeCallMetadata(encoded)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(12), decoded.DependsOnIndex)
	require.Empty(t, decoded.CallData)
}

func TestApplyProof(t *testing.T) {
	p := newTestPlanner()
	deposit := assetDeposit(3)
	proof := &types.ClaimProof{NetworkID: 1, DepositCount: 3, MainnetExitRoot: common.HexToHash("0x01")}
	req, err := p.BuildRequest(context.Background(), deposit, proof, RequestOptions{CustomData: []byte{}})
	require.NoError(t, err)

	newer := &types.ClaimProof{
		NetworkID:             1,
		DepositCount:          3,
		MainnetExitRoot:       common.HexToHash("0x02"),
		RollupExitRoot:        common.HexToHash("0x03"),
		SMTProofLocalExitRoot: []common.Hash{common.HexToHash("0x04")},
	}
	refreshed, err := ApplyProof(req, newer)
	require.NoError(t, err)
	require.Equal(t, newer.MainnetExitRoot, refreshed.MainnetExitRoot)
	require.Equal(t, newer.RollupExitRoot, refreshed.RollupExitRoot)
	require.Equal(t, newer.SMTProofLocalExitRoot, refreshed.SMTProofLocalExitRoot)
	require.Equal(t, req.GlobalIndex, refreshed.GlobalIndex)
	// the original request is left untouched
	require.Equal(t, common.HexToHash("0x01"), req.MainnetExitRoot)

	_, err = ApplyProof(req, &types.ClaimProof{NetworkID: 1, DepositCount: 4})
	require.ErrorIs(t, err, types.ErrOther)
}

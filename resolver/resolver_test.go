package resolver

import (
	"context"
	"testing"
	"time"

	"github.com/agglayer/aggsandbox/bridgeservice"
	aggcommon "github.com/agglayer/aggsandbox/common"
	configtypes "github.com/agglayer/aggsandbox/config/types"
	"github.com/agglayer/aggsandbox/log"
	"github.com/agglayer/aggsandbox/resolver/mocks"
	"github.com/agglayer/aggsandbox/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	txA = common.HexToHash("0xaaaa")
	txB = common.HexToHash("0xbbbb")
	mer = common.HexToHash("0x01")
	rer = common.HexToHash("0x02")
)

func testConfig() Config {
	return Config{
		PageSize: 2,
		MaxPages: 5,
		Retry: aggcommon.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: configtypes.NewDuration(time.Millisecond),
			MaxInterval:     configtypes.NewDuration(2 * time.Millisecond),
		},
	}
}

func newTestResolver(t *testing.T, cfg Config) (*Resolver, *mocks.Indexer, *mocks.GERChecker) {
	t.Helper()
	indexer := mocks.NewIndexer(t)
	ger := mocks.NewGERChecker(t)
	r, err := New(cfg, indexer, ger, log.GetDefaultLogger())
	require.NoError(t, err)

	return r, indexer, ger
}

func bridge(tx common.Hash, depositCount uint32, leafType types.LeafType) bridgeservice.Bridge {
	return bridgeservice.Bridge{TxHash: tx, DepositCount: depositCount, LeafType: uint8(leafType), Amount: "10"}
}

func TestResolveDepositsSortsAndCaches(t *testing.T) {
	r, indexer, _ := newTestResolver(t, testConfig())
	ctx := context.Background()

	// newest first, as listed by the bridge service
	indexer.EXPECT().Bridges(mock.Anything, uint32(1), uint32(1), uint32(2)).Return(&bridgeservice.BridgesResponse{
		Bridges: []bridgeservice.Bridge{bridge(txB, 2, types.LeafTypeAsset), bridge(txA, 1, types.LeafTypeMessage)},
		Count:   4,
	}, nil).Once()
	indexer.EXPECT().Bridges(mock.Anything, uint32(1), uint32(2), uint32(2)).Return(&bridgeservice.BridgesResponse{
		Bridges: []bridgeservice.Bridge{bridge(txA, 0, types.LeafTypeAsset), bridge(txB, 7, types.LeafTypeAsset)},
		Count:   4,
	}, nil).Once()

	deposits, err := r.ResolveDeposits(ctx, 1, txA)
	require.NoError(t, err)
	require.Len(t, deposits, 2)
	require.Equal(t, uint32(0), deposits[0].DepositCount)
	require.Equal(t, types.LeafTypeAsset, deposits[0].LeafType)
	require.Equal(t, uint32(1), deposits[1].DepositCount)
	require.Equal(t, types.LeafTypeMessage, deposits[1].LeafType)
	require.Equal(t, uint32(1), deposits[1].SourceNetworkID)

	// served from the cache, the mock would fail on a third Bridges call
	again, err := r.ResolveDeposits(ctx, 1, txA)
	require.NoError(t, err)
	require.Equal(t, deposits, again)
}

func TestResolveDepositsNotIndexed(t *testing.T) {
	r, indexer, _ := newTestResolver(t, testConfig())

	indexer.EXPECT().Bridges(mock.Anything, uint32(0), uint32(1), uint32(2)).Return(&bridgeservice.BridgesResponse{
		Bridges: []bridgeservice.Bridge{bridge(txB, 3, types.LeafTypeAsset), bridge(txB, 2, types.LeafTypeAsset)},
	}, nil).Once()
	indexer.EXPECT().Bridges(mock.Anything, uint32(0), uint32(2), uint32(2)).Return(&bridgeservice.BridgesResponse{
		Bridges: []bridgeservice.Bridge{bridge(txB, 1, types.LeafTypeAsset)},
	}, nil).Once()

	_, err := r.ResolveDeposits(context.Background(), 0, txA)
	require.ErrorIs(t, err, types.ErrDepositNotIndexed)
	require.True(t, types.IsRetryable(err))
}

func TestResolveDepositsStopsAtMaxPages(t *testing.T) {
	cfg := testConfig()
	cfg.MaxPages = 2
	r, indexer, _ := newTestResolver(t, cfg)

	full := &bridgeservice.BridgesResponse{
		Bridges: []bridgeservice.Bridge{bridge(txB, 3, types.LeafTypeAsset), bridge(txB, 2, types.LeafTypeAsset)},
	}
	indexer.EXPECT().Bridges(mock.Anything, uint32(0), mock.Anything, uint32(2)).Return(full, nil).Times(2)

	_, err := r.ResolveDeposits(context.Background(), 0, txA)
	require.ErrorIs(t, err, types.ErrDepositNotIndexed)
}

func TestResolveDepositsPropagatesIndexerErrors(t *testing.T) {
	r, indexer, _ := newTestResolver(t, testConfig())
	indexer.EXPECT().Bridges(mock.Anything, uint32(0), uint32(1), uint32(2)).
		Return(nil, types.Errorf(types.KindChainRPCError, "bridges", "503")).Once()

	_, err := r.ResolveDeposits(context.Background(), 0, txA)
	require.ErrorIs(t, err, types.ErrChainRPC)
}

func TestLocateDepositsBridgeBack(t *testing.T) {
	r, indexer, _ := newTestResolver(t, testConfig())
	ctx := context.Background()

	indexer.EXPECT().Bridges(mock.Anything, uint32(0), uint32(1), uint32(2)).
		Return(&bridgeservice.BridgesResponse{}, nil)
	indexer.EXPECT().Bridges(mock.Anything, uint32(1), uint32(1), uint32(2)).Return(&bridgeservice.BridgesResponse{
		Bridges: []bridgeservice.Bridge{bridge(txA, 4, types.LeafTypeAsset)},
	}, nil).Once()

	network, deposits, err := r.LocateDeposits(ctx, 0, 0, txA)
	require.NoError(t, err)
	require.Equal(t, uint32(1), network)
	require.Len(t, deposits, 1)
	require.Equal(t, uint32(1), deposits[0].SourceNetworkID)

	// only claims on L1 fall back to network 1
	_, _, err = r.LocateDeposits(ctx, 1, 0, txA)
	require.ErrorIs(t, err, types.ErrDepositNotIndexed)
}

// A proof asked for right after the source tx is mined is not ready; the same
// call succeeds once the global exit root has propagated.
func TestGetProofNotReadyThenReady(t *testing.T) {
	r, indexer, _ := newTestResolver(t, testConfig())
	ctx := context.Background()

	indexer.EXPECT().L1InfoTreeIndex(mock.Anything, uint32(0), uint32(0)).
		Return(0, types.Errorf(types.KindProofNotReady, "l1InfoTreeIndex", "404")).Once()
	_, err := r.GetProof(ctx, 1, 0, 0)
	require.ErrorIs(t, err, types.ErrProofNotReady)

	indexer.EXPECT().L1InfoTreeIndex(mock.Anything, uint32(0), uint32(0)).Return(6, nil).Once()
	indexer.EXPECT().ClaimProof(mock.Anything, uint32(0), uint32(6), uint32(0)).Return(&types.ClaimProof{
		NetworkID: 0, DepositCount: 0, LeafIndex: 6, MainnetExitRoot: mer, RollupExitRoot: rer,
	}, nil).Once()

	proof, err := r.GetProof(ctx, 1, 0, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(6), proof.LeafIndex)
	require.Equal(t, types.CalculateGER(mer, rer), proof.GlobalExitRoot)

	// cached by (network, deposit count)
	cached, err := r.GetProof(ctx, 1, 0, 0)
	require.NoError(t, err)
	require.Equal(t, proof, cached)

	r.InvalidateProof(0, 0)
	indexer.EXPECT().L1InfoTreeIndex(mock.Anything, uint32(0), uint32(0)).Return(7, nil).Once()
	indexer.EXPECT().ClaimProof(mock.Anything, uint32(0), uint32(7), uint32(0)).
		Return(&types.ClaimProof{LeafIndex: 7, MainnetExitRoot: mer, RollupExitRoot: rer}, nil).Once()
	proof, err = r.GetProof(ctx, 1, 0, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(7), proof.LeafIndex)
}

func TestGetProofSkipsDepositsNotReadyForClaim(t *testing.T) {
	r, indexer, _ := newTestResolver(t, testConfig())
	ctx := context.Background()
	notReady, ready := false, true
	pending := bridge(txA, 4, types.LeafTypeAsset)
	pending.ReadyForClaim = &notReady

	indexer.EXPECT().Bridges(mock.Anything, uint32(1), uint32(1), uint32(2)).Return(&bridgeservice.BridgesResponse{
		Bridges: []bridgeservice.Bridge{pending},
	}, nil).Once()
	deposits, err := r.ResolveDeposits(ctx, 1, txA)
	require.NoError(t, err)
	require.False(t, deposits[0].ReadyForClaim)

	// no L1InfoTreeIndex or ClaimProof call is expected
	_, err = r.GetProof(ctx, 0, 1, 4)
	require.ErrorIs(t, err, types.ErrProofNotReady)

	// a fresh listing clears the hint
	r.deposits.DeleteAll()
	pending.ReadyForClaim = &ready
	indexer.EXPECT().Bridges(mock.Anything, uint32(1), uint32(1), uint32(2)).Return(&bridgeservice.BridgesResponse{
		Bridges: []bridgeservice.Bridge{pending},
	}, nil).Once()
	_, err = r.ResolveDeposits(ctx, 1, txA)
	require.NoError(t, err)

	indexer.EXPECT().L1InfoTreeIndex(mock.Anything, uint32(1), uint32(4)).Return(2, nil).Once()
	indexer.EXPECT().ClaimProof(mock.Anything, uint32(1), uint32(2), uint32(4)).
		Return(&types.ClaimProof{NetworkID: 1, DepositCount: 4, LeafIndex: 2, MainnetExitRoot: mer, RollupExitRoot: rer}, nil).Once()
	proof, err := r.GetProof(ctx, 0, 1, 4)
	require.NoError(t, err)
	require.Equal(t, uint32(2), proof.LeafIndex)
}

func TestGetProofChecksGERInjected(t *testing.T) {
	cfg := testConfig()
	cfg.CheckGERInjected = true
	r, indexer, ger := newTestResolver(t, cfg)
	ctx := context.Background()
	expectedGER := types.CalculateGER(mer, rer)

	indexer.EXPECT().L1InfoTreeIndex(mock.Anything, uint32(1), uint32(3)).Return(2, nil).Once()
	indexer.EXPECT().ClaimProof(mock.Anything, uint32(1), uint32(2), uint32(3)).
		Return(&types.ClaimProof{NetworkID: 1, DepositCount: 3, LeafIndex: 2, MainnetExitRoot: mer, RollupExitRoot: rer}, nil).Once()
	ger.EXPECT().GERInjected(mock.Anything, uint32(0), expectedGER).Return(false, nil).Once()

	_, err := r.GetProof(ctx, 0, 1, 3)
	require.ErrorIs(t, err, types.ErrProofNotReady)

	ger.EXPECT().GERInjected(mock.Anything, uint32(0), expectedGER).Return(true, nil).Once()
	proof, err := r.GetProof(ctx, 0, 1, 3)
	require.NoError(t, err)
	require.Equal(t, expectedGER, proof.GlobalExitRoot)
}

func TestNewRequiresGERChecker(t *testing.T) {
	_, err := New(Config{CheckGERInjected: true}, mocks.NewIndexer(t), nil, nil)
	require.Error(t, err)

	_, err = New(Config{}, nil, nil, nil)
	require.Error(t, err)
}

func TestWaitForProof(t *testing.T) {
	r, indexer, _ := newTestResolver(t, testConfig())
	ctx := context.Background()

	notReady := types.Errorf(types.KindProofNotReady, "l1InfoTreeIndex", "404")
	indexer.EXPECT().L1InfoTreeIndex(mock.Anything, uint32(1), uint32(9)).Return(0, notReady).Twice()
	indexer.EXPECT().L1InfoTreeIndex(mock.Anything, uint32(1), uint32(9)).Return(1, nil).Once()
	indexer.EXPECT().ClaimProof(mock.Anything, uint32(1), uint32(1), uint32(9)).
		Return(&types.ClaimProof{LeafIndex: 1, MainnetExitRoot: mer, RollupExitRoot: rer}, nil).Once()

	proof, err := r.WaitForProof(ctx, 0, 1, 9)
	require.NoError(t, err)
	require.Equal(t, uint32(1), proof.LeafIndex)
}

func TestWaitForProofExhausted(t *testing.T) {
	r, indexer, _ := newTestResolver(t, testConfig())

	indexer.EXPECT().L1InfoTreeIndex(mock.Anything, uint32(1), uint32(9)).
		Return(0, types.Errorf(types.KindProofNotReady, "l1InfoTreeIndex", "404")).Times(3)

	_, err := r.WaitForProof(context.Background(), 0, 1, 9)
	require.ErrorIs(t, err, types.ErrRetriesExhausted)
	require.ErrorIs(t, err, types.ErrProofNotReady)
}

func TestWaitForProofStopsOnPermanentError(t *testing.T) {
	r, indexer, _ := newTestResolver(t, testConfig())

	indexer.EXPECT().L1InfoTreeIndex(mock.Anything, uint32(1), uint32(9)).
		Return(0, types.Errorf(types.KindOther, "l1InfoTreeIndex", "400")).Once()

	_, err := r.WaitForProof(context.Background(), 0, 1, 9)
	require.ErrorIs(t, err, types.ErrOther)
	require.NotErrorIs(t, err, types.ErrRetriesExhausted)
}

func TestWaitForDeposits(t *testing.T) {
	r, indexer, _ := newTestResolver(t, testConfig())

	indexer.EXPECT().Bridges(mock.Anything, uint32(1), uint32(1), uint32(2)).
		Return(&bridgeservice.BridgesResponse{}, nil).Once()
	indexer.EXPECT().Bridges(mock.Anything, uint32(1), uint32(1), uint32(2)).Return(&bridgeservice.BridgesResponse{
		Bridges: []bridgeservice.Bridge{bridge(txA, 0, types.LeafTypeAsset)},
	}, nil).Once()

	network, deposits, err := r.WaitForDeposits(context.Background(), 0, 1, txA)
	require.NoError(t, err)
	require.Equal(t, uint32(1), network)
	require.Len(t, deposits, 1)
}

func TestDisabledCache(t *testing.T) {
	cfg := testConfig()
	cfg.ProofCacheTTL = configtypes.NewDuration(-1)
	r, indexer, _ := newTestResolver(t, cfg)

	indexer.EXPECT().L1InfoTreeIndex(mock.Anything, uint32(1), uint32(0)).Return(0, nil).Twice()
	indexer.EXPECT().ClaimProof(mock.Anything, uint32(1), uint32(0), uint32(0)).
		Return(&types.ClaimProof{MainnetExitRoot: mer}, nil).Twice()

	for i := 0; i < 2; i++ {
		_, err := r.GetProof(context.Background(), 0, 1, 0)
		require.NoError(t, err)
	}
}

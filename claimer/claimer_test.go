package claimer

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/agglayer/aggsandbox/claimer/mocks"
	aggcommon "github.com/agglayer/aggsandbox/common"
	configtypes "github.com/agglayer/aggsandbox/config/types"
	"github.com/agglayer/aggsandbox/etherman/contracts"
	"github.com/agglayer/aggsandbox/globalindex"
	"github.com/agglayer/aggsandbox/journal"
	"github.com/agglayer/aggsandbox/log"
	"github.com/agglayer/aggsandbox/planner"
	"github.com/agglayer/aggsandbox/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	sender      = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	bridgeAddr  = common.HexToAddress("0x1348947e282138d8f377b467F7D9c2EB0F335d1f")
	testNetwork = types.NetworkConfig{Name: "L2", NetworkID: 1, ChainID: 1101, BridgeAddr: bridgeAddr}
	gwei        = big.NewInt(1_000_000_000)
)

// revertError mimics the json-rpc error a node returns for a reverted call
type revertError struct {
	data []byte
}

func (e revertError) Error() string          { return "execution reverted" }
func (e revertError) ErrorCode() int         { return 3 }
func (e revertError) ErrorData() interface{} { return hexutil.Encode(e.data) }

func selector(t *testing.T, name string) []byte {
	t.Helper()
	sel, err := contracts.ErrorSelector(name)
	require.NoError(t, err)

	return sel[:]
}

func testConfig() Config {
	return Config{
		ConfirmationTimeout: configtypes.NewDuration(100 * time.Millisecond),
		ReceiptPollInterval: configtypes.NewDuration(5 * time.Millisecond),
		GasOffset:           1000,
		Retry: aggcommon.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: configtypes.NewDuration(time.Millisecond),
			MaxInterval:     configtypes.NewDuration(time.Millisecond),
		},
	}
}

func newTestEngine(t *testing.T, cfg Config, opts ...Option) (*Engine, *mocks.ChainClient) {
	t.Helper()
	client := mocks.NewChainClient(t)
	client.EXPECT().Network().Return(testNetwork).Once()
	e, err := New(cfg, client, sender, log.GetDefaultLogger(), opts...)
	require.NoError(t, err)

	return e, client
}

func testRequest(t *testing.T, leafType types.LeafType, depositCount uint32) *types.ClaimRequest {
	t.Helper()
	gi, err := globalindex.Encode(depositCount, 0)
	require.NoError(t, err)

	return &types.ClaimRequest{
		LeafType:           leafType,
		GlobalIndex:        gi,
		DestinationNetwork: 1,
		Amount:             big.NewInt(1),
		DepositCount:       depositCount,
		SourceNetworkID:    0,
	}
}

// broadcaster records every tx sent by the engine
type broadcaster struct {
	mu   sync.Mutex
	sent []*ethtypes.Transaction
}

func (b *broadcaster) expect(client *mocks.ChainClient) {
	client.EXPECT().SignTx(mock.Anything, sender, mock.Anything).RunAndReturn(
		func(_ context.Context, _ common.Address, tx *ethtypes.Transaction) (*ethtypes.Transaction, error) {
			return tx, nil
		}).Maybe()
	client.EXPECT().SendTx(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, tx *ethtypes.Transaction) error {
			b.mu.Lock()
			defer b.mu.Unlock()
			b.sent = append(b.sent, tx)
			return nil
		}).Maybe()
}

func (b *broadcaster) txs() []*ethtypes.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]*ethtypes.Transaction(nil), b.sent...)
}

func (b *broadcaster) isSent(h common.Hash, idx int) bool {
	txs := b.txs()
	return len(txs) > idx && txs[idx].Hash() == h
}

func successReceipt() *ethtypes.Receipt {
	return &ethtypes.Receipt{Status: ethtypes.ReceiptStatusSuccessful, BlockNumber: big.NewInt(10), GasUsed: 50_000}
}

func revertedReceipt(gasUsed uint64) *ethtypes.Receipt {
	return &ethtypes.Receipt{Status: ethtypes.ReceiptStatusFailed, BlockNumber: big.NewInt(10), GasUsed: gasUsed}
}

func expectBuild(client *mocks.ChainClient, gas uint64) {
	client.EXPECT().BuildClaimTxData(mock.Anything).Return([]byte{0x01, 0x02}, nil).Maybe()
	client.EXPECT().EstimateGas(mock.Anything, sender, &bridgeAddr, mock.Anything, []byte{0x01, 0x02}).
		Return(gas, nil).Maybe()
	client.EXPECT().SuggestGasPrice(mock.Anything).Return(gwei, nil).Maybe()
}

func TestClaimConfirmed(t *testing.T) {
	e, client := newTestEngine(t, testConfig())
	req := testRequest(t, types.LeafTypeAsset, 3)
	b := &broadcaster{}
	b.expect(client)
	expectBuild(client, 100_000)
	client.EXPECT().IsClaimed(mock.Anything, uint32(3), uint32(0)).Return(false, nil).Once()
	client.EXPECT().PendingNonce(mock.Anything, sender).Return(uint64(5), nil).Once()
	polls := 0
	client.EXPECT().CheckTxWasMined(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, h common.Hash) (bool, *ethtypes.Receipt, error) {
			polls++
			if polls < 3 {
				return false, nil, nil
			}
			return true, successReceipt(), nil
		})

	res, err := e.Claim(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, types.OutcomeConfirmed, res.Outcome)
	require.Equal(t, 1, res.Attempts)
	require.Equal(t, req.GlobalIndex, res.GlobalIndex)

	txs := b.txs()
	require.Len(t, txs, 1)
	require.Equal(t, txs[0].Hash(), res.TxHash)
	require.Equal(t, uint64(5), txs[0].Nonce())
	require.Equal(t, uint64(101_000), txs[0].Gas())
	require.Equal(t, bridgeAddr, *txs[0].To())
	require.Equal(t, gwei, txs[0].GasPrice())
}

func TestClaimAlreadyClaimedOnChain(t *testing.T) {
	e, client := newTestEngine(t, testConfig())
	req := testRequest(t, types.LeafTypeAsset, 3)
	client.EXPECT().IsClaimed(mock.Anything, uint32(3), uint32(0)).Return(true, nil).Twice()

	// claiming twice never builds a tx
	for i := 0; i < 2; i++ {
		res, err := e.Claim(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, types.OutcomeAlreadyClaimed, res.Outcome)
		require.Equal(t, common.Hash{}, res.TxHash)
	}
}

func TestClaimEstimationReverts(t *testing.T) {
	t.Run("already claimed", func(t *testing.T) {
		e, client := newTestEngine(t, testConfig())
		req := testRequest(t, types.LeafTypeAsset, 3)
		client.EXPECT().IsClaimed(mock.Anything, uint32(3), uint32(0)).Return(false, nil).Once()
		client.EXPECT().BuildClaimTxData(req).Return([]byte{0x01}, nil).Once()
		client.EXPECT().EstimateGas(mock.Anything, sender, &bridgeAddr, mock.Anything, []byte{0x01}).
			Return(uint64(0), revertError{data: selector(t, contracts.ErrNameAlreadyClaimed)}).Once()

		res, err := e.Claim(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, types.OutcomeAlreadyClaimed, res.Outcome)
	})

	t.Run("ger invalid is retried until exhausted", func(t *testing.T) {
		e, client := newTestEngine(t, testConfig())
		req := testRequest(t, types.LeafTypeAsset, 3)
		client.EXPECT().IsClaimed(mock.Anything, uint32(3), uint32(0)).Return(false, nil).Times(3)
		client.EXPECT().BuildClaimTxData(req).Return([]byte{0x01}, nil).Times(3)
		client.EXPECT().EstimateGas(mock.Anything, sender, &bridgeAddr, mock.Anything, []byte{0x01}).
			Return(uint64(0), revertError{data: selector(t, contracts.ErrNameGlobalExitRootInvalid)}).Times(3)

		_, err := e.Claim(context.Background(), req)
		require.ErrorIs(t, err, types.ErrRetriesExhausted)
		require.ErrorIs(t, err, types.ErrGlobalExitRootInvalid)
	})

	t.Run("allowance", func(t *testing.T) {
		e, client := newTestEngine(t, testConfig())
		req := testRequest(t, types.LeafTypeAsset, 3)
		client.EXPECT().IsClaimed(mock.Anything, uint32(3), uint32(0)).Return(false, nil).Once()
		client.EXPECT().BuildClaimTxData(req).Return([]byte{0x01}, nil).Once()
		client.EXPECT().EstimateGas(mock.Anything, sender, &bridgeAddr, mock.Anything, []byte{0x01}).
			Return(uint64(0), revertError{data: append(selector(t, contracts.ErrNameERC20InsufficientAllowance),
				make([]byte, 96)...)}).Once()

		_, err := e.Claim(context.Background(), req)
		require.ErrorIs(t, err, types.ErrInsufficientAllowance)
		var claimErr *types.ClaimError
		require.True(t, errors.As(err, &claimErr))
		require.NotEmpty(t, claimErr.Remediation())
	})

	t.Run("unknown error surfaces the selector", func(t *testing.T) {
		e, client := newTestEngine(t, testConfig())
		req := testRequest(t, types.LeafTypeAsset, 3)
		client.EXPECT().IsClaimed(mock.Anything, uint32(3), uint32(0)).Return(false, nil).Once()
		client.EXPECT().BuildClaimTxData(req).Return([]byte{0x01}, nil).Once()
		client.EXPECT().EstimateGas(mock.Anything, sender, &bridgeAddr, mock.Anything, []byte{0x01}).
			Return(uint64(0), revertError{data: selector(t, contracts.ErrNameInvalidSmtProof)}).Once()

		_, err := e.Claim(context.Background(), req)
		require.ErrorIs(t, err, types.ErrOther)
		var claimErr *types.ClaimError
		require.True(t, errors.As(err, &claimErr))
		require.Equal(t, selector(t, contracts.ErrNameInvalidSmtProof), claimErr.Selector[:])
	})
}

func TestClaimMessageBeforeAsset(t *testing.T) {
	e, client := newTestEngine(t, testConfig())
	meta := &planner.CallMetadata{DependsOnIndex: big.NewInt(5), CallAddress: common.HexToAddress("0x01")}
	encoded, err := meta.Encode()
	require.NoError(t, err)
	req := testRequest(t, types.LeafTypeMessage, 6)
	req.Metadata = encoded

	client.EXPECT().IsClaimed(mock.Anything, uint32(6), uint32(0)).Return(false, nil).Once()
	client.EXPECT().IsClaimed(mock.Anything, uint32(5), uint32(0)).Return(false, nil).Once()
	client.EXPECT().BuildClaimTxData(req).Return([]byte{0x01}, nil).Once()
	client.EXPECT().EstimateGas(mock.Anything, sender, &bridgeAddr, mock.Anything, []byte{0x01}).
		Return(uint64(0), revertError{data: selector(t, contracts.ErrNameMessageFailed)}).Once()

	_, err = e.Claim(context.Background(), req)
	require.ErrorIs(t, err, types.ErrUnclaimedAssetDependency)
}

func TestClaimRevertedGERInvalidRefreshesProof(t *testing.T) {
	refresher := mocks.NewProofRefresher(t)
	e, client := newTestEngine(t, testConfig(), WithProofRefresher(refresher))
	req := testRequest(t, types.LeafTypeAsset, 3)
	refreshed := *req
	refreshed.MainnetExitRoot = common.HexToHash("0x99")

	b := &broadcaster{}
	b.expect(client)
	expectBuild(client, 100_000)
	client.EXPECT().IsClaimed(mock.Anything, uint32(3), uint32(0)).Return(false, nil).Twice()
	client.EXPECT().PendingNonce(mock.Anything, sender).Return(uint64(5), nil).Once()
	client.EXPECT().CheckTxWasMined(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, h common.Hash) (bool, *ethtypes.Receipt, error) {
			if b.isSent(h, 0) {
				return true, revertedReceipt(40_000), nil
			}
			return true, successReceipt(), nil
		})
	client.EXPECT().GetRevertData(mock.Anything, mock.Anything, mock.Anything).
		Return(selector(t, contracts.ErrNameGlobalExitRootInvalid), nil).Once()
	refresher.EXPECT().RefreshRequest(mock.Anything, req).Return(&refreshed, nil).Once()

	res, err := e.Claim(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, types.OutcomeConfirmed, res.Outcome)
	require.Equal(t, 2, res.Attempts)

	txs := b.txs()
	require.Len(t, txs, 2)
	require.Equal(t, uint64(5), txs[0].Nonce())
	require.Equal(t, uint64(6), txs[1].Nonce())
}

func TestClaimOutOfGas(t *testing.T) {
	cfg := testConfig()
	cfg.GasLimit = 60_000
	e, client := newTestEngine(t, cfg)
	req := testRequest(t, types.LeafTypeAsset, 3)
	b := &broadcaster{}
	b.expect(client)
	client.EXPECT().BuildClaimTxData(req).Return([]byte{0x01}, nil).Once()
	client.EXPECT().SuggestGasPrice(mock.Anything).Return(gwei, nil).Once()
	client.EXPECT().IsClaimed(mock.Anything, uint32(3), uint32(0)).Return(false, nil).Once()
	client.EXPECT().PendingNonce(mock.Anything, sender).Return(uint64(0), nil).Once()
	client.EXPECT().CheckTxWasMined(mock.Anything, mock.Anything).Return(true, revertedReceipt(60_000), nil).Once()
	client.EXPECT().GetRevertData(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()

	_, err := e.Claim(context.Background(), req)
	require.ErrorIs(t, err, types.ErrInsufficientGas)
	require.Len(t, b.txs(), 1)
	require.Equal(t, uint64(60_000), b.txs()[0].Gas())
}

func TestClaimEstimationFailureUsesDefaultGas(t *testing.T) {
	e, client := newTestEngine(t, testConfig())
	req := testRequest(t, types.LeafTypeAsset, 3)
	b := &broadcaster{}
	b.expect(client)
	client.EXPECT().BuildClaimTxData(req).Return([]byte{0x01}, nil).Once()
	client.EXPECT().EstimateGas(mock.Anything, sender, &bridgeAddr, mock.Anything, []byte{0x01}).
		Return(uint64(0), errors.New("connection reset")).Once()
	client.EXPECT().SuggestGasPrice(mock.Anything).Return(gwei, nil).Once()
	client.EXPECT().IsClaimed(mock.Anything, uint32(3), uint32(0)).Return(false, nil).Once()
	client.EXPECT().PendingNonce(mock.Anything, sender).Return(uint64(0), nil).Once()
	client.EXPECT().CheckTxWasMined(mock.Anything, mock.Anything).Return(true, successReceipt(), nil).Once()

	_, err := e.Claim(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, DefaultGasLimit, b.txs()[0].Gas())
}

func TestClaimConfirmationTimeout(t *testing.T) {
	t.Run("replaced with the same nonce", func(t *testing.T) {
		e, client := newTestEngine(t, testConfig())
		req := testRequest(t, types.LeafTypeAsset, 3)
		b := &broadcaster{}
		b.expect(client)
		expectBuild(client, 100_000)
		client.EXPECT().IsClaimed(mock.Anything, uint32(3), uint32(0)).Return(false, nil).Twice()
		client.EXPECT().PendingNonce(mock.Anything, sender).Return(uint64(9), nil).Once()
		client.EXPECT().CheckTxWasMined(mock.Anything, mock.Anything).RunAndReturn(
			func(_ context.Context, h common.Hash) (bool, *ethtypes.Receipt, error) {
				if b.isSent(h, 1) {
					return true, successReceipt(), nil
				}
				return false, nil, nil
			})

		res, err := e.Claim(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, types.OutcomeConfirmed, res.Outcome)

		txs := b.txs()
		require.Len(t, txs, 2)
		require.Equal(t, txs[0].Nonce(), txs[1].Nonce())
		require.Equal(t, big.NewInt(1_100_000_000), txs[1].GasPrice())
		require.Equal(t, txs[1].Hash(), res.TxHash)
	})

	t.Run("claimed while waiting", func(t *testing.T) {
		e, client := newTestEngine(t, testConfig())
		req := testRequest(t, types.LeafTypeAsset, 3)
		b := &broadcaster{}
		b.expect(client)
		expectBuild(client, 100_000)
		client.EXPECT().IsClaimed(mock.Anything, uint32(3), uint32(0)).Return(false, nil).Once()
		client.EXPECT().IsClaimed(mock.Anything, uint32(3), uint32(0)).Return(true, nil).Once()
		client.EXPECT().PendingNonce(mock.Anything, sender).Return(uint64(9), nil).Once()
		client.EXPECT().CheckTxWasMined(mock.Anything, mock.Anything).Return(false, nil, nil)

		res, err := e.Claim(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, types.OutcomeAlreadyClaimed, res.Outcome)
		require.Len(t, b.txs(), 1)
	})

	t.Run("never mined", func(t *testing.T) {
		cfg := testConfig()
		cfg.MaxReplacements = -1
		cfg.Retry.MaxAttempts = 2
		e, client := newTestEngine(t, cfg)
		req := testRequest(t, types.LeafTypeAsset, 3)
		b := &broadcaster{}
		b.expect(client)
		expectBuild(client, 100_000)
		client.EXPECT().IsClaimed(mock.Anything, uint32(3), uint32(0)).Return(false, nil)
		client.EXPECT().PendingNonce(mock.Anything, sender).Return(uint64(9), nil).Once()
		client.EXPECT().CheckTxWasMined(mock.Anything, mock.Anything).Return(false, nil, nil)

		_, err := e.Claim(context.Background(), req)
		require.ErrorIs(t, err, types.ErrRetriesExhausted)
		require.ErrorIs(t, err, types.ErrChainRPC)
		// the second attempt waits on the first tx instead of sending another
		require.Len(t, b.txs(), 1)
	})
}

func TestExecute(t *testing.T) {
	asset := testRequest(t, types.LeafTypeAsset, 5)
	message := testRequest(t, types.LeafTypeMessage, 6)
	plan := &types.ClaimPlan{
		DestinationNetwork: 1,
		Steps: []types.PlanStep{
			{Deposit: types.BridgeDeposit{DepositCount: 5}, DependsOn: types.NoDependency, Request: asset},
			{Deposit: types.BridgeDeposit{DepositCount: 6}, DependsOn: 0, Request: message},
		},
	}

	t.Run("in order", func(t *testing.T) {
		e, client := newTestEngine(t, testConfig())
		b := &broadcaster{}
		b.expect(client)
		expectBuild(client, 100_000)
		client.EXPECT().IsClaimed(mock.Anything, uint32(5), uint32(0)).Return(false, nil).Once()
		client.EXPECT().IsClaimed(mock.Anything, uint32(6), uint32(0)).Return(false, nil).Once()
		client.EXPECT().PendingNonce(mock.Anything, sender).Return(uint64(0), nil).Once()
		client.EXPECT().CheckTxWasMined(mock.Anything, mock.Anything).Return(true, successReceipt(), nil)

		results, err := e.Execute(context.Background(), plan)
		require.NoError(t, err)
		require.Len(t, results, 2)
		require.Equal(t, uint32(5), results[0].DepositCount)
		require.Equal(t, uint32(6), results[1].DepositCount)
		txs := b.txs()
		require.Equal(t, uint64(0), txs[0].Nonce())
		require.Equal(t, uint64(1), txs[1].Nonce())
	})

	t.Run("halts on failure", func(t *testing.T) {
		e, client := newTestEngine(t, testConfig())
		client.EXPECT().IsClaimed(mock.Anything, uint32(5), uint32(0)).Return(false, nil).Once()
		client.EXPECT().BuildClaimTxData(asset).Return([]byte{0x01}, nil).Once()
		client.EXPECT().EstimateGas(mock.Anything, sender, &bridgeAddr, mock.Anything, []byte{0x01}).
			Return(uint64(0), revertError{data: selector(t, contracts.ErrNameInvalidSmtProof)}).Once()

		results, err := e.Execute(context.Background(), plan)
		require.ErrorIs(t, err, types.ErrOther)
		require.Empty(t, results)
	})

	t.Run("dependency after the step", func(t *testing.T) {
		e, _ := newTestEngine(t, testConfig())
		reversed := &types.ClaimPlan{DestinationNetwork: 1, Steps: []types.PlanStep{
			{DependsOn: 1, Request: message},
			{DependsOn: types.NoDependency, Request: asset},
		}}
		_, err := e.Execute(context.Background(), reversed)
		require.ErrorIs(t, err, types.ErrUnclaimedAssetDependency)
	})

	t.Run("other network", func(t *testing.T) {
		e, _ := newTestEngine(t, testConfig())
		_, err := e.Execute(context.Background(), &types.ClaimPlan{DestinationNetwork: 2})
		require.ErrorIs(t, err, types.ErrPlanInvalid)
	})
}

func TestClaimResumesJournaledTx(t *testing.T) {
	j := mocks.NewJournal(t)
	e, client := newTestEngine(t, testConfig(), WithJournal(j))
	req := testRequest(t, types.LeafTypeAsset, 3)
	journaled := common.HexToHash("0xfeed")

	client.EXPECT().IsClaimed(mock.Anything, uint32(3), uint32(0)).Return(false, nil).Once()
	j.EXPECT().LastSubmitted(mock.Anything, uint32(1), req.GlobalIndex).Return(&journal.Entry{
		NetworkID: 1, GlobalIndex: req.GlobalIndex, TxHash: journaled, Status: types.SubmittedClaimStatus,
	}, nil).Once()
	client.EXPECT().CheckTxWasMined(mock.Anything, journaled).Return(true, successReceipt(), nil).Once()
	j.EXPECT().UpdateStatus(mock.Anything, uint32(1), journaled, types.ConfirmedClaimStatus, "").Return(nil).Once()

	res, err := e.Claim(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, types.OutcomeConfirmed, res.Outcome)
	require.Equal(t, journaled, res.TxHash)
}

func TestClaimReplacesUnminedJournaledTx(t *testing.T) {
	cfg := testConfig()
	cfg.GasPriceBumpPercent = 10
	j := mocks.NewJournal(t)
	e, client := newTestEngine(t, cfg, WithJournal(j))
	req := testRequest(t, types.LeafTypeAsset, 3)
	journaled := common.HexToHash("0xfeed")
	journaledPrice := new(big.Int).Mul(gwei, big.NewInt(2))
	b := &broadcaster{}
	b.expect(client)
	expectBuild(client, 100_000)

	client.EXPECT().IsClaimed(mock.Anything, uint32(3), uint32(0)).Return(false, nil).Once()
	j.EXPECT().LastSubmitted(mock.Anything, uint32(1), req.GlobalIndex).Return(&journal.Entry{
		NetworkID: 1, GlobalIndex: req.GlobalIndex, TxHash: journaled, Nonce: 7, GasPrice: journaledPrice,
		Status: types.SubmittedClaimStatus,
	}, nil).Once()
	client.EXPECT().CheckTxWasMined(mock.Anything, journaled).Return(false, nil, nil).Once()
	client.EXPECT().CheckTxWasMined(mock.Anything, mock.MatchedBy(func(h common.Hash) bool {
		return h != journaled
	})).Return(true, successReceipt(), nil).Once()
	j.EXPECT().Record(mock.Anything, mock.MatchedBy(func(entry *journal.Entry) bool {
		return entry.Nonce == 7
	})).Return(nil).Once()
	j.EXPECT().UpdateStatus(mock.Anything, uint32(1), mock.Anything, types.ConfirmedClaimStatus, "").Return(nil).Once()

	res, err := e.Claim(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, types.OutcomeConfirmed, res.Outcome)

	// PendingNonce is never asked: the pending journaled nonce is reused
	txs := b.txs()
	require.Len(t, txs, 1)
	require.Equal(t, uint64(7), txs[0].Nonce())
	require.Equal(t, big.NewInt(2_200_000_000), txs[0].GasPrice())
	require.Equal(t, txs[0].Hash(), res.TxHash)
}

func TestClaimJournaledTxMinedDuringReplacement(t *testing.T) {
	j := mocks.NewJournal(t)
	e, client := newTestEngine(t, testConfig(), WithJournal(j))
	req := testRequest(t, types.LeafTypeAsset, 3)
	journaled := common.HexToHash("0xfeed")
	expectBuild(client, 100_000)

	client.EXPECT().IsClaimed(mock.Anything, uint32(3), uint32(0)).Return(false, nil).Once()
	j.EXPECT().LastSubmitted(mock.Anything, uint32(1), req.GlobalIndex).Return(&journal.Entry{
		NetworkID: 1, GlobalIndex: req.GlobalIndex, TxHash: journaled, Nonce: 7, GasPrice: gwei,
		Status: types.SubmittedClaimStatus,
	}, nil).Once()
	client.EXPECT().CheckTxWasMined(mock.Anything, journaled).Return(false, nil, nil).Once()
	client.EXPECT().SignTx(mock.Anything, sender, mock.Anything).RunAndReturn(
		func(_ context.Context, _ common.Address, tx *ethtypes.Transaction) (*ethtypes.Transaction, error) {
			require.Equal(t, uint64(7), tx.Nonce())
			return tx, nil
		}).Once()
	client.EXPECT().SendTx(mock.Anything, mock.Anything).Return(errors.New("nonce too low")).Once()
	client.EXPECT().CheckTxWasMined(mock.Anything, journaled).Return(true, successReceipt(), nil).Once()
	j.EXPECT().UpdateStatus(mock.Anything, uint32(1), journaled, types.ConfirmedClaimStatus, "").Return(nil).Once()

	res, err := e.Claim(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, types.OutcomeConfirmed, res.Outcome)
	require.Equal(t, journaled, res.TxHash)
}

func TestClaimJournalsBroadcast(t *testing.T) {
	j := mocks.NewJournal(t)
	e, client := newTestEngine(t, testConfig(), WithJournal(j))
	req := testRequest(t, types.LeafTypeAsset, 3)
	b := &broadcaster{}
	b.expect(client)
	expectBuild(client, 100_000)
	client.EXPECT().IsClaimed(mock.Anything, uint32(3), uint32(0)).Return(false, nil).Once()
	client.EXPECT().PendingNonce(mock.Anything, sender).Return(uint64(2), nil).Once()
	client.EXPECT().CheckTxWasMined(mock.Anything, mock.Anything).Return(true, successReceipt(), nil).Once()
	j.EXPECT().LastSubmitted(mock.Anything, uint32(1), req.GlobalIndex).Return(nil, errors.New("not found")).Once()
	j.EXPECT().Record(mock.Anything, mock.MatchedBy(func(entry *journal.Entry) bool {
		return entry.Nonce == 2 && entry.Status == types.SubmittedClaimStatus && entry.DepositCount == 3
	})).Return(nil).Once()
	j.EXPECT().UpdateStatus(mock.Anything, uint32(1), mock.Anything, types.ConfirmedClaimStatus, "").Return(nil).Once()

	res, err := e.Claim(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, b.txs()[0].Hash(), res.TxHash)
}

func TestNonceManager(t *testing.T) {
	client := mocks.NewChainClient(t)
	client.EXPECT().PendingNonce(mock.Anything, sender).Return(uint64(10), nil).Twice()
	n := NewNonceManager()
	ctx := context.Background()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		nonces = map[uint64]bool{}
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			nonce, err := n.Next(ctx, 1, sender, client)
			require.NoError(t, err)
			mu.Lock()
			nonces[nonce] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	require.Len(t, nonces, 20)
	require.True(t, nonces[10])
	require.True(t, nonces[29])

	n.Reset(1, sender)
	nonce, err := n.Next(ctx, 1, sender, client)
	require.NoError(t, err)
	require.Equal(t, uint64(10), nonce)
}

func TestConfig(t *testing.T) {
	cfg := Config{}.withDefaults()
	require.Equal(t, DefaultGasLimit, cfg.DefaultGasLimit)
	require.Equal(t, uint64(defaultGasPriceBumpPercent), cfg.GasPriceBumpPercent)
	layout, err := cfg.Layout()
	require.NoError(t, err)
	require.Equal(t, globalindex.LayoutBridgeV2, layout)

	require.Error(t, Config{GlobalIndexLayout: "nope"}.validate())
	require.Error(t, Config{GasPrice: "ten"}.validate())
	require.NoError(t, Config{GasPrice: "0x3b9aca00"}.validate())
}

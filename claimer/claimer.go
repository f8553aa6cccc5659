// Package claimer submits the claims of a plan to the destination network and
// drives every request to Confirmed or AlreadyClaimed, or to a classified failure.
package claimer

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	aggcommon "github.com/agglayer/aggsandbox/common"
	"github.com/agglayer/aggsandbox/journal"
	"github.com/agglayer/aggsandbox/log"
	"github.com/agglayer/aggsandbox/types"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

const opExecute = "claimer.Execute"

// ChainClient is the destination network as seen by the engine
type ChainClient interface {
	Network() types.NetworkConfig
	IsClaimed(ctx context.Context, depositCount, sourceNetworkID uint32) (bool, error)
	BuildClaimTxData(req *types.ClaimRequest) ([]byte, error)
	EstimateGas(ctx context.Context, from common.Address, to *common.Address, value *big.Int, data []byte) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	PendingNonce(ctx context.Context, account common.Address) (uint64, error)
	SignTx(ctx context.Context, sender common.Address, tx *ethtypes.Transaction) (*ethtypes.Transaction, error)
	SendTx(ctx context.Context, tx *ethtypes.Transaction) error
	CheckTxWasMined(ctx context.Context, txHash common.Hash) (bool, *ethtypes.Receipt, error)
	GetRevertData(ctx context.Context, tx *ethtypes.Transaction, receipt *ethtypes.Receipt) ([]byte, error)
}

// Journal records the broadcast claim txs
type Journal interface {
	Record(ctx context.Context, entry *journal.Entry) error
	UpdateStatus(ctx context.Context, networkID uint32, txHash common.Hash, status types.ClaimStatus, reason string) error
	LastSubmitted(ctx context.Context, networkID uint32, globalIndex *big.Int) (*journal.Entry, error)
}

// ProofRefresher rebuilds a request with a fresh proof after the destination
// rejected its exit roots
type ProofRefresher interface {
	RefreshRequest(ctx context.Context, req *types.ClaimRequest) (*types.ClaimRequest, error)
}

// Option configures an Engine
type Option func(*Engine)

// WithJournal records every broadcast tx in j
func WithJournal(j Journal) Option {
	return func(e *Engine) { e.journal = j }
}

// WithProofRefresher refreshes the proof of a request before retrying a GlobalExitRootInvalid revert
func WithProofRefresher(r ProofRefresher) Option {
	return func(e *Engine) { e.refresher = r }
}

// WithNonceManager shares a nonce manager between engines signing with the same key
func WithNonceManager(n *NonceManager) Option {
	return func(e *Engine) { e.nonces = n }
}

// Engine executes claim plans on one destination network with one signing key
type Engine struct {
	cfg       Config
	client    ChainClient
	network   types.NetworkConfig
	sender    common.Address
	policy    aggcommon.RetryPolicy
	gasPrice  *big.Int
	nonces    *NonceManager
	journal   Journal
	refresher ProofRefresher
	logger    *log.Logger
	metrics   *metrics

	// txs broadcast by a previous attempt that were not mined in time, by global index
	inflightMu sync.Mutex
	inflight   map[string]*ethtypes.Transaction
}

// New builds an engine. The sender key must be registered in the client.
func New(cfg Config, client ChainClient, sender common.Address, logger *log.Logger, opts ...Option) (*Engine, error) {
	if client == nil {
		return nil, errors.New("claimer: nil chain client")
	}
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	network := client.Network()
	if logger == nil {
		logger = log.WithFields("module", "claimer", "network", network.NetworkID)
	}
	e := &Engine{
		cfg:      cfg,
		client:   client,
		network:  network,
		sender:   sender,
		policy:   cfg.Retry.Policy(),
		logger:   logger,
		metrics:  newMetrics(logger),
		inflight: map[string]*ethtypes.Transaction{},
	}
	if cfg.GasPrice != "" {
		e.gasPrice, _ = aggcommon.ParseBigInt(cfg.GasPrice)
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.nonces == nil {
		e.nonces = NewNonceManager()
	}

	return e, nil
}

// Sender is the account paying for the claims
func (e *Engine) Sender() common.Address {
	return e.sender
}

// Execute claims the steps of the plan in order. A step only starts once the
// step it depends on succeeded, the first failure halts the plan and is
// returned together with the results of the steps that succeeded.
func (e *Engine) Execute(ctx context.Context, plan *types.ClaimPlan) ([]types.ClaimResult, error) {
	if plan.DestinationNetwork != e.network.NetworkID {
		return nil, types.Errorf(types.KindPlanInvalid, opExecute,
			"plan targets network %d, engine runs on %s", plan.DestinationNetwork, e.network)
	}
	results := make([]types.ClaimResult, 0, len(plan.Steps))
	for i, step := range plan.Steps {
		if step.Request == nil {
			return results, types.Errorf(types.KindOther, opExecute, "step %d (%s) has no claim request", i, step.Deposit)
		}
		if step.DependsOn != types.NoDependency && step.DependsOn >= i {
			return results, types.Errorf(types.KindUnclaimedAssetDependency, opExecute,
				"step %d runs before the step %d it depends on", i, step.DependsOn)
		}
		res, err := e.Claim(ctx, step.Request)
		if err != nil {
			if remaining := len(plan.Steps) - i - 1; remaining > 0 {
				e.logger.Warnf("%s failed, %d claim(s) of the plan not attempted", step.Request, remaining)
			}

			return results, err
		}
		results = append(results, *res)
	}

	return results, nil
}

// Claim drives one request to a final state, retrying transient failures
// within the retry policy
func (e *Engine) Claim(ctx context.Context, req *types.ClaimRequest) (*types.ClaimResult, error) {
	var (
		result   *types.ClaimResult
		lastKind types.ErrorKind
		current  = req
	)
	err := e.policy.Do(ctx, e.logger, current.Method(), func(attempt int) error {
		if attempt > 1 && lastKind == types.KindGlobalExitRootInvalid && e.refresher != nil {
			refreshed, err := e.refresher.RefreshRequest(ctx, current)
			if err != nil {
				lastKind = types.KindOf(err)
				return err
			}
			current = refreshed
		}
		res, err := e.attempt(ctx, current)
		if err != nil {
			lastKind = types.KindOf(err)
			e.metrics.failure(ctx, current.Method(), lastKind)
			return err
		}
		res.Attempts = attempt
		result = res

		return nil
	})
	if err != nil {
		return nil, err
	}
	e.metrics.outcome(ctx, current.Method(), string(result.Outcome))

	return result, nil
}

func (e *Engine) attempt(ctx context.Context, req *types.ClaimRequest) (*types.ClaimResult, error) {
	claimed, err := e.client.IsClaimed(ctx, req.DepositCount, req.SourceNetworkID)
	if err != nil {
		return nil, err
	}
	if claimed {
		e.logger.Infof("%s is already claimed on %s", req, e.network)
		e.clearInflight(req)
		return e.result(req, types.OutcomeAlreadyClaimed, common.Hash{}), nil
	}

	if res, handled, err := e.resume(ctx, req); handled {
		return res, err
	}

	data, err := e.client.BuildClaimTxData(req)
	if err != nil {
		return nil, types.NewError(types.KindOther, req.Method(), err)
	}
	gas, err := e.gasLimit(ctx, req, data)
	if err != nil {
		if types.KindOf(err) == types.KindAlreadyClaimed {
			e.logger.Infof("%s: estimation reverted with AlreadyClaimed", req)
			return e.result(req, types.OutcomeAlreadyClaimed, common.Hash{}), nil
		}
		return nil, err
	}
	gasPrice, err := e.suggestedGasPrice(ctx, req)
	if err != nil {
		return nil, err
	}
	nonce, err := e.nonces.Next(ctx, e.network.NetworkID, e.sender, e.client)
	if err != nil {
		return nil, types.NewError(types.KindChainRPCError, req.Method(), fmt.Errorf("nonce: %w", err))
	}
	to := e.network.BridgeAddr
	tx := ethtypes.NewTx(&ethtypes.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &to,
		Value:    value(req),
		Data:     data,
	})
	signed, err := e.send(ctx, req, tx, false)
	if err != nil {
		e.nonces.Reset(e.network.NetworkID, e.sender)
		return nil, err
	}

	return e.await(ctx, req, signed)
}

// resume waits on a tx broadcast by an earlier attempt, or by an earlier run
// when journaling is enabled, before anything new is built
func (e *Engine) resume(ctx context.Context, req *types.ClaimRequest) (*types.ClaimResult, bool, error) {
	if tx := e.inflightTx(req); tx != nil {
		e.logger.Infof("%s: waiting again for tx %s", req, tx.Hash().Hex())
		res, err := e.await(ctx, req, tx)
		return res, true, err
	}
	if e.journal == nil {
		return nil, false, nil
	}
	entry, err := e.journal.LastSubmitted(ctx, e.network.NetworkID, req.GlobalIndex)
	if err != nil || entry.Status != types.SubmittedClaimStatus {
		return nil, false, nil
	}
	mined, receipt, err := e.client.CheckTxWasMined(ctx, entry.TxHash)
	if err != nil {
		return nil, true, types.NewError(types.KindChainRPCError, req.Method(), err)
	}
	if !mined {
		e.logger.Warnf("%s: journaled tx %s (nonce %d) is not mined, replacing it", req, entry.TxHash.Hex(), entry.Nonce)
		res, err := e.replaceJournaled(ctx, req, entry)
		return res, true, err
	}
	if receipt.Status == ethtypes.ReceiptStatusSuccessful {
		e.updateJournal(ctx, entry.TxHash, types.ConfirmedClaimStatus, "")
		return e.result(req, types.OutcomeConfirmed, entry.TxHash), true, nil
	}
	// isClaimed is still false, the old tx reverted for a reason that may be gone
	e.updateJournal(ctx, entry.TxHash, types.RevertedClaimStatus, "reverted")
	e.logger.Warnf("%s: journaled tx %s reverted, submitting a new one", req, entry.TxHash.Hex())

	return nil, false, nil
}

// replaceJournaled resends the claim with the nonce of a journaled tx that may
// still be pending, so that at most one of them can be mined
func (e *Engine) replaceJournaled(
	ctx context.Context, req *types.ClaimRequest, entry *journal.Entry,
) (*types.ClaimResult, error) {
	data, err := e.client.BuildClaimTxData(req)
	if err != nil {
		return nil, types.NewError(types.KindOther, req.Method(), err)
	}
	gas, err := e.gasLimit(ctx, req, data)
	if err != nil {
		if types.KindOf(err) == types.KindAlreadyClaimed {
			return e.result(req, types.OutcomeAlreadyClaimed, common.Hash{}), nil
		}
		return nil, err
	}
	gasPrice := entry.GasPrice
	if gasPrice == nil {
		gasPrice = big.NewInt(0)
	}
	to := e.network.BridgeAddr
	journaled := ethtypes.NewTx(&ethtypes.LegacyTx{
		Nonce:    entry.Nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &to,
		Value:    value(req),
		Data:     data,
	})
	signed, err := e.send(ctx, req, e.replacement(ctx, req, journaled), true)
	if err != nil {
		// the journaled tx can be mined between the check and the replacement
		mined, receipt, mErr := e.client.CheckTxWasMined(ctx, entry.TxHash)
		if mErr == nil && mined && receipt.Status == ethtypes.ReceiptStatusSuccessful {
			e.updateJournal(ctx, entry.TxHash, types.ConfirmedClaimStatus, "")
			return e.result(req, types.OutcomeConfirmed, entry.TxHash), nil
		}
		return nil, err
	}

	return e.await(ctx, req, signed)
}

// await waits for the receipt of tx, replacing it with the same nonce and a
// higher gas price when it is not mined in time. The chain is queried again
// before every replacement.
func (e *Engine) await(ctx context.Context, req *types.ClaimRequest, tx *ethtypes.Transaction) (*types.ClaimResult, error) {
	for replacements := 0; ; replacements++ {
		receipt, err := e.waitReceipt(ctx, tx.Hash())
		if err != nil {
			return nil, err
		}
		if receipt != nil {
			e.clearInflight(req)
			return e.classifyReceipt(ctx, req, tx, receipt)
		}

		e.logger.Warnf("%s: tx %s not mined after %s", req, tx.Hash().Hex(), e.cfg.ConfirmationTimeout)
		claimed, err := e.client.IsClaimed(ctx, req.DepositCount, req.SourceNetworkID)
		if err != nil {
			return nil, err
		}
		if claimed {
			e.clearInflight(req)
			if mined, receipt, err := e.client.CheckTxWasMined(ctx, tx.Hash()); err == nil && mined {
				return e.classifyReceipt(ctx, req, tx, receipt)
			}
			return e.result(req, types.OutcomeAlreadyClaimed, common.Hash{}), nil
		}
		if replacements >= e.cfg.MaxReplacements {
			return nil, types.Errorf(types.KindChainRPCError, req.Method(),
				"tx %s not mined after %d replacement(s)", tx.Hash().Hex(), replacements)
		}

		tx, err = e.send(ctx, req, e.replacement(ctx, req, tx), true)
		if err != nil {
			return nil, err
		}
	}
}

func (e *Engine) replacement(
	ctx context.Context, req *types.ClaimRequest, old *ethtypes.Transaction,
) *ethtypes.Transaction {
	bumped := new(big.Int).Mul(old.GasPrice(), new(big.Int).SetUint64(100+e.cfg.GasPriceBumpPercent)) //nolint:mnd
	bumped.Div(bumped, big.NewInt(100))                                                            //nolint:mnd
	if suggested, err := e.suggestedGasPrice(ctx, req); err == nil && suggested.Cmp(bumped) > 0 {
		bumped = suggested
	}
	e.logger.Infof("%s: replacing tx %s (nonce %d) with gas price %s", req, old.Hash().Hex(), old.Nonce(), bumped)

	return ethtypes.NewTx(&ethtypes.LegacyTx{
		Nonce:    old.Nonce(),
		GasPrice: bumped,
		Gas:      old.Gas(),
		To:       old.To(),
		Value:    old.Value(),
		Data:     old.Data(),
	})
}

func (e *Engine) send(
	ctx context.Context, req *types.ClaimRequest, tx *ethtypes.Transaction, replacement bool,
) (*ethtypes.Transaction, error) {
	signed, err := e.client.SignTx(ctx, e.sender, tx)
	if err != nil {
		return nil, types.NewError(types.KindOther, req.Method(), fmt.Errorf("sign tx: %w", err))
	}
	if err := e.client.SendTx(ctx, signed); err != nil {
		return nil, types.NewError(types.KindChainRPCError, req.Method(), fmt.Errorf("send tx: %w", err))
	}
	e.metrics.txSubmitted(ctx, req.Method(), replacement)
	e.setInflight(req, signed)
	e.logger.Infof("%s: sent tx %s nonce %d gas %d gasPrice %s",
		req, signed.Hash().Hex(), signed.Nonce(), signed.Gas(), signed.GasPrice())

	if e.journal != nil {
		entry := &journal.Entry{
			NetworkID:     e.network.NetworkID,
			GlobalIndex:   req.GlobalIndex,
			SourceNetwork: req.SourceNetworkID,
			DepositCount:  req.DepositCount,
			LeafType:      uint8(req.LeafType),
			TxHash:        signed.Hash(),
			Nonce:         signed.Nonce(),
			GasPrice:      signed.GasPrice(),
			Status:        types.SubmittedClaimStatus,
		}
		if err := e.journal.Record(ctx, entry); err != nil {
			e.logger.Warnf("failed to journal tx %s: %v", signed.Hash().Hex(), err)
		}
	}

	return signed, nil
}

func (e *Engine) classifyReceipt(
	ctx context.Context, req *types.ClaimRequest, tx *ethtypes.Transaction, receipt *ethtypes.Receipt,
) (*types.ClaimResult, error) {
	if receipt.Status == ethtypes.ReceiptStatusSuccessful {
		e.updateJournal(ctx, tx.Hash(), types.ConfirmedClaimStatus, "")
		e.logger.Infof("%s confirmed in block %s, tx %s", req, receipt.BlockNumber, tx.Hash().Hex())
		return e.result(req, types.OutcomeConfirmed, tx.Hash()), nil
	}

	revertData, err := e.client.GetRevertData(ctx, tx, receipt)
	if err != nil {
		e.logger.Warnf("%s: replaying reverted tx %s: %v", req, tx.Hash().Hex(), err)
	}
	var claimErr error
	if len(revertData) == 0 && receipt.GasUsed >= tx.Gas() {
		claimErr = types.Errorf(types.KindInsufficientGas, req.Method(),
			"tx %s used all of its %d gas", tx.Hash().Hex(), tx.Gas())
	} else {
		claimErr = e.classifyRevert(ctx, req, revertData)
	}
	e.updateJournal(ctx, tx.Hash(), types.RevertedClaimStatus, claimErr.Error())

	if types.KindOf(claimErr) == types.KindAlreadyClaimed {
		e.logger.Infof("%s: tx %s reverted with AlreadyClaimed", req, tx.Hash().Hex())
		return e.result(req, types.OutcomeAlreadyClaimed, common.Hash{}), nil
	}

	return nil, claimErr
}

func (e *Engine) result(req *types.ClaimRequest, outcome types.Outcome, txHash common.Hash) *types.ClaimResult {
	return &types.ClaimResult{
		DepositCount:    req.DepositCount,
		SourceNetworkID: req.SourceNetworkID,
		GlobalIndex:     req.GlobalIndex,
		Outcome:         outcome,
		TxHash:          txHash,
	}
}

func (e *Engine) updateJournal(ctx context.Context, txHash common.Hash, status types.ClaimStatus, reason string) {
	if e.journal == nil {
		return
	}
	if err := e.journal.UpdateStatus(ctx, e.network.NetworkID, txHash, status, reason); err != nil {
		e.logger.Debugf("journal update of tx %s: %v", txHash.Hex(), err)
	}
}

func (e *Engine) inflightTx(req *types.ClaimRequest) *ethtypes.Transaction {
	e.inflightMu.Lock()
	defer e.inflightMu.Unlock()

	return e.inflight[req.GlobalIndex.String()]
}

func (e *Engine) setInflight(req *types.ClaimRequest, tx *ethtypes.Transaction) {
	e.inflightMu.Lock()
	defer e.inflightMu.Unlock()

	e.inflight[req.GlobalIndex.String()] = tx
}

func (e *Engine) clearInflight(req *types.ClaimRequest) {
	e.inflightMu.Lock()
	defer e.inflightMu.Unlock()

	delete(e.inflight, req.GlobalIndex.String())
}

func value(req *types.ClaimRequest) *big.Int {
	if req.Value == nil {
		return big.NewInt(0)
	}

	return req.Value
}

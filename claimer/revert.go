package claimer

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/agglayer/aggsandbox/etherman"
	"github.com/agglayer/aggsandbox/etherman/contracts"
	"github.com/agglayer/aggsandbox/planner"
	"github.com/agglayer/aggsandbox/types"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// gasLimit returns the configured gas limit or the estimation. An estimation
// that reverts is classified right away, before anything is broadcast. Any
// other estimation failure falls back to the default gas limit.
func (e *Engine) gasLimit(ctx context.Context, req *types.ClaimRequest, data []byte) (uint64, error) {
	if e.cfg.GasLimit > 0 {
		return e.cfg.GasLimit, nil
	}
	to := e.network.BridgeAddr
	gas, err := e.client.EstimateGas(ctx, e.sender, &to, value(req), data)
	if err == nil {
		return gas + e.cfg.GasOffset, nil
	}
	if revertData, ok := etherman.RevertData(err); ok {
		return 0, e.classifyRevert(ctx, req, revertData)
	}
	if ctx.Err() != nil {
		return 0, ctx.Err()
	}
	e.logger.Warnf("%s: gas estimation failed: %v, using gas limit %d", req, err, e.cfg.DefaultGasLimit)

	return e.cfg.DefaultGasLimit, nil
}

func (e *Engine) suggestedGasPrice(ctx context.Context, req *types.ClaimRequest) (*big.Int, error) {
	if e.gasPrice != nil {
		return new(big.Int).Set(e.gasPrice), nil
	}
	price, err := e.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, types.NewError(types.KindChainRPCError, req.Method(), fmt.Errorf("gas price: %w", err))
	}

	return price, nil
}

// classifyRevert maps the revert payload of a claim to its error kind.
// AlreadyClaimed is returned as an error too, callers turn it into a success.
func (e *Engine) classifyRevert(ctx context.Context, req *types.ClaimRequest, data []byte) error {
	rev, ok := contracts.DecodeRevert(data)
	if !ok {
		return &types.ClaimError{
			Kind:   types.KindOther,
			Op:     req.Method(),
			Reason: fmt.Sprintf("reverted with undecodable data 0x%x", data),
		}
	}
	claimErr := &types.ClaimError{
		Kind:     types.KindOther,
		Op:       req.Method(),
		Selector: rev.Selector,
		Reason:   rev.String(),
	}
	switch rev.Name {
	case contracts.ErrNameAlreadyClaimed:
		claimErr.Kind = types.KindAlreadyClaimed
	case contracts.ErrNameGlobalExitRootInvalid:
		claimErr.Kind = types.KindGlobalExitRootInvalid
	case contracts.ErrNameERC20InsufficientAllowance:
		claimErr.Kind = types.KindInsufficientAllowance
	case contracts.ErrNameMessageFailed:
		if e.waitsForUnclaimedAsset(ctx, req) {
			claimErr.Kind = types.KindUnclaimedAssetDependency
		}
	}

	return claimErr
}

// waitsForUnclaimedAsset reports whether req is a bridge-and-call message
// whose asset deposit is not claimed on the destination yet
func (e *Engine) waitsForUnclaimedAsset(ctx context.Context, req *types.ClaimRequest) bool {
	if req.LeafType != types.LeafTypeMessage {
		return false
	}
	meta, err := planner.DecodeCallMetadata(req.Metadata)
	if err != nil {
		return false
	}
	assetCount, ok := meta.DependsOn()
	if !ok {
		return false
	}
	claimed, err := e.client.IsClaimed(ctx, assetCount, req.SourceNetworkID)
	if err != nil {
		e.logger.Warnf("%s: checking asset deposit %d: %v", req, assetCount, err)
		return false
	}

	return !claimed
}

// waitReceipt polls the receipt of txHash. It returns a nil receipt when the
// tx is not mined within the confirmation timeout.
func (e *Engine) waitReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
	timeout := time.NewTimer(e.cfg.ConfirmationTimeout.Duration)
	defer timeout.Stop()
	ticker := time.NewTicker(e.cfg.ReceiptPollInterval.Duration)
	defer ticker.Stop()

	for {
		mined, receipt, err := e.client.CheckTxWasMined(ctx, txHash)
		switch {
		case err != nil && ctx.Err() != nil:
			return nil, ctx.Err()
		case err != nil:
			e.logger.Debugf("receipt of tx %s: %v", txHash.Hex(), err)
		case mined:
			return receipt, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timeout.C:
			return nil, nil
		case <-ticker.C:
		}
	}
}

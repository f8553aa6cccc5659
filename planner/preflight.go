package planner

import (
	"context"
	"fmt"

	"github.com/agglayer/aggsandbox/types"
	"github.com/ethereum/go-ethereum/common"
)

const opPreflight = "planner.Preflight"

// TargetResolver answers the read only bridge calls used by the pre-flight check
type TargetResolver interface {
	GetTokenWrappedAddress(
		ctx context.Context, networkID, originNetwork uint32, originToken common.Address,
	) (common.Address, error)
	PrecalculatedWrapperAddress(ctx context.Context, networkID, originNetwork uint32,
		originToken common.Address, name, symbol string, decimals uint8) (common.Address, error)
}

// PreflightOptions tunes Preflight
type PreflightOptions struct {
	// ExpectedToken is the wrapped token the caller expects on the destination, zero skips the check
	ExpectedToken common.Address
}

// Preflight compares the addresses a plan will touch on the destination with
// what the bridge derives for them, so that a mismatch fails before any gas is
// spent. Requests must be built.
func (p *Planner) Preflight(
	ctx context.Context, plan *types.ClaimPlan, targets TargetResolver, opts PreflightOptions,
) error {
	for i, step := range plan.Steps {
		if step.Request == nil {
			return types.Errorf(types.KindOther, opPreflight, "step %d has no claim request", i)
		}
		switch step.Deposit.LeafType {
		case types.LeafTypeAsset:
			if err := p.checkWrapper(ctx, plan.DestinationNetwork, step.Request, targets, opts); err != nil {
				return err
			}
		case types.LeafTypeMessage:
			if step.DependsOn == types.NoDependency {
				continue
			}
			if err := checkCallTarget(step.Deposit, plan.Steps[step.DependsOn].Deposit); err != nil {
				return err
			}
		}
	}

	return nil
}

// checkCallTarget checks that the asset a bridge-and-call message describes
// is the asset deposit it waits for
func checkCallTarget(message, asset types.BridgeDeposit) error {
	meta, err := DecodeCallMetadata(message.Metadata)
	if err != nil {
		return types.NewError(types.KindPlanInvalid, opPreflight, err)
	}
	if meta.CallAddress == (common.Address{}) {
		return types.Errorf(types.KindTargetAddressMismatch, opPreflight,
			"message deposit %d calls the zero address", message.DepositCount)
	}
	if meta.AssetOriginalNetwork != asset.OriginNetwork || meta.AssetOriginalAddress != asset.OriginAddress {
		return types.Errorf(types.KindTargetAddressMismatch, opPreflight,
			"message deposit %d expects asset %s on network %d, asset deposit %d bridges %s on network %d",
			message.DepositCount, meta.AssetOriginalAddress.Hex(), meta.AssetOriginalNetwork,
			asset.DepositCount, asset.OriginAddress.Hex(), asset.OriginNetwork)
	}

	return nil
}

// checkWrapper compares the wrapper of the claimed token with the address the
// bridge will deploy it at. Native gas token and tokens native to the
// destination have no wrapper.
func (p *Planner) checkWrapper(ctx context.Context, destination uint32, req *types.ClaimRequest,
	targets TargetResolver, opts PreflightOptions) error {
	if req.OriginAddress == (common.Address{}) || req.OriginNetwork == destination {
		return nil
	}
	meta := DefaultTokenMetadata
	if len(req.Metadata) > 0 {
		decoded, err := DecodeTokenMetadata(req.Metadata)
		if err != nil {
			return types.NewError(types.KindOther, opPreflight,
				fmt.Errorf("asset deposit %d: %w", req.DepositCount, err))
		}
		meta = decoded
	}

	expected, err := targets.PrecalculatedWrapperAddress(ctx, destination, req.OriginNetwork,
		req.OriginAddress, meta.Name, meta.Symbol, meta.Decimals)
	if err != nil {
		return err
	}
	deployed, err := targets.GetTokenWrappedAddress(ctx, destination, req.OriginNetwork, req.OriginAddress)
	if err != nil {
		return err
	}
	p.logger.Debugf("wrapper of %s from network %d: deployed %s, precalculated %s",
		req.OriginAddress.Hex(), req.OriginNetwork, deployed.Hex(), expected.Hex())

	if deployed != (common.Address{}) && deployed != expected {
		return types.Errorf(types.KindTargetAddressMismatch, opPreflight,
			"wrapper of %s is deployed at %s, metadata derives %s",
			req.OriginAddress.Hex(), deployed.Hex(), expected.Hex())
	}
	if opts.ExpectedToken != (common.Address{}) && opts.ExpectedToken != expected {
		return types.Errorf(types.KindTargetAddressMismatch, opPreflight,
			"expected token %s, the claim mints %s", opts.ExpectedToken.Hex(), expected.Hex())
	}

	return nil
}

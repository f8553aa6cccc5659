package planner

import (
	"context"
	"testing"

	"github.com/agglayer/aggsandbox/planner/mocks"
	"github.com/agglayer/aggsandbox/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func builtBundle(t *testing.T, p *Planner, message types.BridgeDeposit) *types.ClaimPlan {
	t.Helper()
	plan, err := p.Plan([]types.BridgeDeposit{assetDeposit(5), message}, 2)
	require.NoError(t, err)
	for i := range plan.Steps {
		d := plan.Steps[i].Deposit
		plan.Steps[i].Request, err = p.BuildRequest(context.Background(), d, testProof(d), RequestOptions{})
		require.NoError(t, err)
	}

	return plan
}

func TestPreflight(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	wrapper := common.HexToAddress("0xc0ffee")

	t.Run("wrapper not deployed yet", func(t *testing.T) {
		targets := mocks.NewTargetResolver(t)
		targets.EXPECT().PrecalculatedWrapperAddress(mock.Anything, uint32(2), uint32(1), token,
			DefaultTokenMetadata.Name, DefaultTokenMetadata.Symbol, DefaultTokenMetadata.Decimals).Return(wrapper, nil).Once()
		targets.EXPECT().GetTokenWrappedAddress(mock.Anything, uint32(2), uint32(1), token).Return(common.Address{}, nil).Once()

		plan := builtBundle(t, p, messageDeposit(t, 6, 5))
		require.NoError(t, p.Preflight(ctx, plan, targets, PreflightOptions{ExpectedToken: wrapper}))
	})

	t.Run("deployed wrapper differs", func(t *testing.T) {
		targets := mocks.NewTargetResolver(t)
		targets.EXPECT().PrecalculatedWrapperAddress(mock.Anything, uint32(2), uint32(1), token,
			mock.Anything, mock.Anything, mock.Anything).Return(wrapper, nil).Once()
		targets.EXPECT().GetTokenWrappedAddress(mock.Anything, uint32(2), uint32(1), token).
			Return(common.HexToAddress("0xbad"), nil).Once()

		plan := builtBundle(t, p, messageDeposit(t, 6, 5))
		err := p.Preflight(ctx, plan, targets, PreflightOptions{})
		require.ErrorIs(t, err, types.ErrTargetAddressMismatch)
	})

	t.Run("expected token differs", func(t *testing.T) {
		targets := mocks.NewTargetResolver(t)
		targets.EXPECT().PrecalculatedWrapperAddress(mock.Anything, uint32(2), uint32(1), token,
			mock.Anything, mock.Anything, mock.Anything).Return(wrapper, nil).Once()
		targets.EXPECT().GetTokenWrappedAddress(mock.Anything, uint32(2), uint32(1), token).Return(wrapper, nil).Once()

		plan := builtBundle(t, p, messageDeposit(t, 6, 5))
		err := p.Preflight(ctx, plan, targets, PreflightOptions{ExpectedToken: common.HexToAddress("0x02")})
		require.ErrorIs(t, err, types.ErrTargetAddressMismatch)
	})

	t.Run("message describes another asset", func(t *testing.T) {
		targets := mocks.NewTargetResolver(t)
		targets.EXPECT().PrecalculatedWrapperAddress(mock.Anything, uint32(2), uint32(1), token,
			mock.Anything, mock.Anything, mock.Anything).Return(wrapper, nil).Once()
		targets.EXPECT().GetTokenWrappedAddress(mock.Anything, uint32(2), uint32(1), token).Return(wrapper, nil).Once()

		msg := messageDeposit(t, 6, 5)
		meta, err := DecodeCallMetadata(msg.Metadata)
		require.NoError(t, err)
		meta.AssetOriginalAddress = common.HexToAddress("0x03")
		msg.Metadata, err = meta.Encode()
		require.NoError(t, err)

		err = p.Preflight(ctx, builtBundle(t, p, msg), targets, PreflightOptions{})
		require.ErrorIs(t, err, types.ErrTargetAddressMismatch)
	})

	t.Run("native gas token has no wrapper", func(t *testing.T) {
		targets := mocks.NewTargetResolver(t)
		native := assetDeposit(1)
		native.OriginAddress = common.Address{}
		plan, err := p.Plan([]types.BridgeDeposit{native}, 2)
		require.NoError(t, err)
		plan.Steps[0].Request, err = p.BuildRequest(ctx, native, testProof(native), RequestOptions{})
		require.NoError(t, err)
		require.NoError(t, p.Preflight(ctx, plan, targets, PreflightOptions{}))
	})

	t.Run("requests not built", func(t *testing.T) {
		plan, err := p.Plan([]types.BridgeDeposit{assetDeposit(1)}, 2)
		require.NoError(t, err)
		require.Error(t, p.Preflight(ctx, plan, mocks.NewTargetResolver(t), PreflightOptions{}))
	})
}

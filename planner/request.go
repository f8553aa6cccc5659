package planner

import (
	"context"
	"math/big"

	"github.com/agglayer/aggsandbox/globalindex"
	"github.com/agglayer/aggsandbox/types"
	"github.com/ethereum/go-ethereum/common"
)

const opBuildRequest = "planner.BuildRequest"

// TokenMetadataReader reads the ERC20 metadata of a token on a network
type TokenMetadataReader interface {
	TokenMetadata(ctx context.Context, networkID uint32, token common.Address) (string, string, uint8, error)
}

// RequestOptions tunes how a claim request is built
type RequestOptions struct {
	Layout globalindex.Layout
	// CustomData replaces the metadata of the deposit when not nil
	CustomData []byte
	// Value is sent with the claim tx
	Value *big.Int
	// Tokens is used to fill the metadata of first time ERC20 bridges, nil disables it
	Tokens TokenMetadataReader
}

// BuildRequest resolves the claim arguments of a deposit from its proof
func (p *Planner) BuildRequest(
	ctx context.Context, deposit types.BridgeDeposit, proof *types.ClaimProof, opts RequestOptions,
) (*types.ClaimRequest, error) {
	if proof == nil {
		return nil, types.Errorf(types.KindOther, opBuildRequest, "no proof for %s", deposit)
	}
	if proof.DepositCount != deposit.DepositCount || proof.NetworkID != deposit.SourceNetworkID {
		return nil, types.Errorf(types.KindOther, opBuildRequest,
			"proof of deposit %d on network %d does not match %s",
			proof.DepositCount, proof.NetworkID, deposit)
	}
	layout := opts.Layout
	if layout.Name() == "" {
		layout = globalindex.DefaultLayout
	}
	globalIndex, err := layout.Encode(deposit.DepositCount, deposit.SourceNetworkID)
	if err != nil {
		return nil, err
	}

	amount := deposit.Amount
	if amount == nil {
		amount = big.NewInt(0)
	}
	req := &types.ClaimRequest{
		LeafType:               deposit.LeafType,
		GlobalIndex:            globalIndex,
		MainnetExitRoot:        proof.MainnetExitRoot,
		RollupExitRoot:         proof.RollupExitRoot,
		OriginNetwork:          deposit.OriginNetwork,
		OriginAddress:          deposit.OriginAddress,
		DestinationNetwork:     deposit.DestinationNetwork,
		DestinationAddress:     deposit.DestinationAddress,
		Amount:                 new(big.Int).Set(amount),
		Metadata:               common.CopyBytes(deposit.Metadata),
		SMTProofLocalExitRoot:  append([]common.Hash(nil), proof.SMTProofLocalExitRoot...),
		SMTProofRollupExitRoot: append([]common.Hash(nil), proof.SMTProofRollupExitRoot...),
		DepositCount:           deposit.DepositCount,
		SourceNetworkID:        deposit.SourceNetworkID,
	}
	if opts.Value != nil {
		req.Value = new(big.Int).Set(opts.Value)
	}

	switch {
	case opts.CustomData != nil:
		req.Metadata = common.CopyBytes(opts.CustomData)
	case opts.Tokens != nil && needsTokenMetadata(deposit):
		req.Metadata, err = p.tokenMetadata(ctx, opts.Tokens, deposit)
		if err != nil {
			return nil, err
		}
	}

	return req, nil
}

// needsTokenMetadata is true for the first bridge of an ERC20 native to the
// source network, the indexer leaves the metadata empty for those
func needsTokenMetadata(d types.BridgeDeposit) bool {
	return d.LeafType == types.LeafTypeAsset &&
		len(d.Metadata) == 0 &&
		d.OriginAddress != (common.Address{}) &&
		d.OriginNetwork == d.SourceNetworkID
}

func (p *Planner) tokenMetadata(
	ctx context.Context, tokens TokenMetadataReader, d types.BridgeDeposit,
) ([]byte, error) {
	meta := DefaultTokenMetadata
	name, symbol, decimals, err := tokens.TokenMetadata(ctx, d.SourceNetworkID, d.OriginAddress)
	if err != nil {
		if ctx.Err() != nil {
			return nil, types.NewError(types.KindOther, opBuildRequest, ctx.Err())
		}
		p.logger.Warnf("reading metadata of token %s on network %d: %v, using %s/%s/%d",
			d.OriginAddress.Hex(), d.SourceNetworkID, err, meta.Name, meta.Symbol, meta.Decimals)
	} else {
		meta = TokenMetadata{Name: name, Symbol: symbol, Decimals: decimals}
	}
	p.logger.Infof("encoding ERC20 metadata name=%s symbol=%s decimals=%d", meta.Name, meta.Symbol, meta.Decimals)

	encoded, err := meta.Encode()
	if err != nil {
		return nil, types.NewError(types.KindOther, opBuildRequest, err)
	}

	return encoded, nil
}

// ApplyProof returns a copy of req carrying the exit roots and paths of a
// newer proof of the same deposit
func ApplyProof(req *types.ClaimRequest, proof *types.ClaimProof) (*types.ClaimRequest, error) {
	if proof == nil || proof.DepositCount != req.DepositCount || proof.NetworkID != req.SourceNetworkID {
		return nil, types.Errorf(types.KindOther, opBuildRequest, "proof does not match %s", req)
	}
	cp := *req
	cp.MainnetExitRoot = proof.MainnetExitRoot
	cp.RollupExitRoot = proof.RollupExitRoot
	cp.SMTProofLocalExitRoot = append([]common.Hash(nil), proof.SMTProofLocalExitRoot...)
	cp.SMTProofRollupExitRoot = append([]common.Hash(nil), proof.SMTProofRollupExitRoot...)

	return &cp, nil
}

// Package resolver turns a source transaction into its bridge deposits and a
// deposit into the exit roots needed to claim it on the destination network.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/agglayer/aggsandbox/bridgeservice"
	aggcommon "github.com/agglayer/aggsandbox/common"
	"github.com/agglayer/aggsandbox/log"
	"github.com/agglayer/aggsandbox/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/ttlcache/v3"
)

// bridgeBackNetworkID is the network checked when a tx claimed on L1 is not found on L1
const bridgeBackNetworkID uint32 = 1

// Indexer is the bridge service as seen by the resolver
type Indexer interface {
	Bridges(ctx context.Context, networkID, page, pageSize uint32) (*bridgeservice.BridgesResponse, error)
	L1InfoTreeIndex(ctx context.Context, networkID, depositCount uint32) (uint32, error)
	ClaimProof(ctx context.Context, networkID, leafIndex, depositCount uint32) (*types.ClaimProof, error)
}

// GERChecker reports whether a global exit root has landed on a network
type GERChecker interface {
	GERInjected(ctx context.Context, networkID uint32, ger common.Hash) (bool, error)
}

type depositsKey struct {
	networkID uint32
	txHash    common.Hash
}

type proofKey struct {
	networkID    uint32
	depositCount uint32
}

// Resolver resolves deposits and proofs through an Indexer. Results are kept in
// time bounded caches since readiness and exit roots change over time.
type Resolver struct {
	cfg        Config
	indexer    Indexer
	gerChecker GERChecker
	policy     aggcommon.RetryPolicy
	logger     *log.Logger

	deposits *ttlcache.Cache[depositsKey, []types.BridgeDeposit]
	proofs   *ttlcache.Cache[proofKey, *types.ClaimProof]
	// deposits listed as not ready for claim, kept as long as the listing
	notReady *ttlcache.Cache[proofKey, struct{}]
}

// New returns a resolver. gerChecker may be nil when cfg.CheckGERInjected is false.
func New(cfg Config, indexer Indexer, gerChecker GERChecker, logger *log.Logger) (*Resolver, error) {
	if indexer == nil {
		return nil, errors.New("resolver: nil indexer")
	}
	if cfg.CheckGERInjected && gerChecker == nil {
		return nil, errors.New("resolver: CheckGERInjected requires a GER checker")
	}
	if logger == nil {
		logger = log.WithFields("module", "resolver")
	}
	cfg = cfg.withDefaults()

	return &Resolver{
		cfg:        cfg,
		indexer:    indexer,
		gerChecker: gerChecker,
		policy:     cfg.Retry.Policy(),
		logger:     logger,
		deposits: ttlcache.New[depositsKey, []types.BridgeDeposit](
			ttlcache.WithTTL[depositsKey, []types.BridgeDeposit](cfg.BridgesCacheTTL.Duration),
			ttlcache.WithDisableTouchOnHit[depositsKey, []types.BridgeDeposit](),
		),
		proofs: ttlcache.New[proofKey, *types.ClaimProof](
			ttlcache.WithTTL[proofKey, *types.ClaimProof](cfg.ProofCacheTTL.Duration),
			ttlcache.WithDisableTouchOnHit[proofKey, *types.ClaimProof](),
		),
		notReady: ttlcache.New[proofKey, struct{}](
			ttlcache.WithTTL[proofKey, struct{}](cfg.BridgesCacheTTL.Duration),
			ttlcache.WithDisableTouchOnHit[proofKey, struct{}](),
		),
	}, nil
}

// ResolveDeposits returns the deposits emitted by txHash on the source network,
// ascending by deposit count. It fails with DepositNotIndexed when the bridge
// service has no record carrying the hash.
func (r *Resolver) ResolveDeposits(
	ctx context.Context, sourceNetworkID uint32, txHash common.Hash,
) ([]types.BridgeDeposit, error) {
	const op = "resolver.ResolveDeposits"
	key := depositsKey{networkID: sourceNetworkID, txHash: txHash}
	if cached, ok := cacheGet(r.deposits, key); ok {
		return cloneDeposits(cached), nil
	}

	found := make(map[uint32]types.BridgeDeposit)
	for page := uint32(1); page <= r.cfg.MaxPages; page++ {
		res, err := r.indexer.Bridges(ctx, sourceNetworkID, page, r.cfg.PageSize)
		if err != nil {
			return nil, err
		}
		matchedOnPage := false
		lastMatches := false
		for _, b := range res.Bridges {
			lastMatches = b.TxHash == txHash
			if !lastMatches {
				continue
			}
			d, err := b.Deposit(sourceNetworkID)
			if err != nil {
				return nil, types.NewError(types.KindOther, op, err)
			}
			found[d.DepositCount] = d
			matchedOnPage = true
		}
		// the deposits of one tx are contiguous in the listing
		if matchedOnPage && !lastMatches {
			break
		}
		if len(found) > 0 && !matchedOnPage {
			break
		}
		if uint32(len(res.Bridges)) < r.cfg.PageSize ||
			(res.Count > 0 && int(page*r.cfg.PageSize) >= res.Count) {
			break
		}
	}
	if len(found) == 0 {
		return nil, types.Errorf(types.KindDepositNotIndexed, op,
			"tx %s not found on network %d", txHash.Hex(), sourceNetworkID)
	}

	deposits := make([]types.BridgeDeposit, 0, len(found))
	for _, d := range found {
		deposits = append(deposits, d)
	}
	sort.Slice(deposits, func(i, j int) bool {
		return deposits[i].DepositCount < deposits[j].DepositCount
	})
	r.logger.Debugf("tx %s on network %d has %d deposit(s)", txHash.Hex(), sourceNetworkID, len(deposits))
	cacheSet(r.deposits, r.cfg.BridgesCacheTTL.Duration, key, deposits)
	for _, d := range deposits {
		pk := proofKey{networkID: d.SourceNetworkID, depositCount: d.DepositCount}
		if d.ReadyForClaim {
			r.notReady.Delete(pk)
		} else {
			cacheSet(r.notReady, r.cfg.BridgesCacheTTL.Duration, pk, struct{}{})
		}
	}

	return cloneDeposits(deposits), nil
}

// LocateDeposits resolves txHash like ResolveDeposits. A tx claimed on L1 with
// L1 as source that is not found there is looked up on network 1, since bridging
// back to L1 starts on the rollup. The network the deposits were found on is returned.
func (r *Resolver) LocateDeposits(
	ctx context.Context, destinationNetworkID, sourceNetworkID uint32, txHash common.Hash,
) (uint32, []types.BridgeDeposit, error) {
	deposits, err := r.ResolveDeposits(ctx, sourceNetworkID, txHash)
	if err == nil {
		return sourceNetworkID, deposits, nil
	}
	if destinationNetworkID != 0 || sourceNetworkID != 0 || !errors.Is(err, types.ErrDepositNotIndexed) {
		return sourceNetworkID, nil, err
	}

	back, backErr := r.ResolveDeposits(ctx, bridgeBackNetworkID, txHash)
	if backErr != nil {
		// report the original lookup
		return sourceNetworkID, nil, err
	}
	r.logger.Infof("tx %s not found on L1, bridging back from network %d", txHash.Hex(), bridgeBackNetworkID)

	return bridgeBackNetworkID, back, nil
}

// GetProof returns the exit roots to claim a deposit of the source network on the
// destination network. The leaf index lookup and the proof lookup run as one
// operation; ProofNotReady is returned while either is not available yet, or,
// with CheckGERInjected, while the destination has not synced the global exit root.
// A deposit the last listing reported as not ready for claim fails with
// ProofNotReady without querying the bridge service.
func (r *Resolver) GetProof(
	ctx context.Context, destinationNetworkID, sourceNetworkID, depositCount uint32,
) (*types.ClaimProof, error) {
	const op = "resolver.GetProof"
	key := proofKey{networkID: sourceNetworkID, depositCount: depositCount}
	proof, ok := cacheGet(r.proofs, key)
	if !ok {
		if _, pending := cacheGet(r.notReady, key); pending {
			return nil, types.Errorf(types.KindProofNotReady, op,
				"deposit %d of network %d is not ready for claim yet", depositCount, sourceNetworkID)
		}
		leafIndex, err := r.indexer.L1InfoTreeIndex(ctx, sourceNetworkID, depositCount)
		if err != nil {
			return nil, err
		}
		proof, err = r.indexer.ClaimProof(ctx, sourceNetworkID, leafIndex, depositCount)
		if err != nil {
			return nil, err
		}
		if proof.GlobalExitRoot == (common.Hash{}) {
			proof.GlobalExitRoot = types.CalculateGER(proof.MainnetExitRoot, proof.RollupExitRoot)
		}
		cacheSet(r.proofs, r.cfg.ProofCacheTTL.Duration, key, proof)
	}

	if r.cfg.CheckGERInjected {
		injected, err := r.gerChecker.GERInjected(ctx, destinationNetworkID, proof.GlobalExitRoot)
		if err != nil {
			return nil, err
		}
		if !injected {
			return nil, types.Errorf(types.KindProofNotReady, op,
				"global exit root %s not injected on network %d yet", proof.GlobalExitRoot.Hex(), destinationNetworkID)
		}
	}
	cp := *proof

	return &cp, nil
}

// InvalidateProof drops the cached proof of a deposit, used once the destination
// rejected its global exit root
func (r *Resolver) InvalidateProof(sourceNetworkID, depositCount uint32) {
	r.proofs.Delete(proofKey{networkID: sourceNetworkID, depositCount: depositCount})
}

// WaitForDeposits retries LocateDeposits while the tx is not indexed, bounded by
// the retry policy and ctx
func (r *Resolver) WaitForDeposits(
	ctx context.Context, destinationNetworkID, sourceNetworkID uint32, txHash common.Hash,
) (uint32, []types.BridgeDeposit, error) {
	var (
		network  uint32
		deposits []types.BridgeDeposit
	)
	err := r.policy.Do(ctx, r.logger, "waitForDeposits", func(int) error {
		var err error
		network, deposits, err = r.LocateDeposits(ctx, destinationNetworkID, sourceNetworkID, txHash)

		return err
	})
	if err != nil {
		return 0, nil, fmt.Errorf("tx %s: %w", txHash.Hex(), err)
	}

	return network, deposits, nil
}

// WaitForProof retries GetProof while the proof is not ready, bounded by the
// retry policy and ctx
func (r *Resolver) WaitForProof(
	ctx context.Context, destinationNetworkID, sourceNetworkID, depositCount uint32,
) (*types.ClaimProof, error) {
	var proof *types.ClaimProof
	err := r.policy.Do(ctx, r.logger, "waitForProof", func(int) error {
		var err error
		proof, err = r.GetProof(ctx, destinationNetworkID, sourceNetworkID, depositCount)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("deposit %d of network %d: %w", depositCount, sourceNetworkID, err)
	}

	return proof, nil
}

func cacheGet[K comparable, V any](c *ttlcache.Cache[K, V], key K) (V, bool) {
	item := c.Get(key)
	if item == nil || item.IsExpired() {
		var zero V
		return zero, false
	}

	return item.Value(), true
}

// cacheSet stores value unless the cache is disabled by a negative ttl
func cacheSet[K comparable, V any](c *ttlcache.Cache[K, V], ttl time.Duration, key K, value V) {
	if ttl < 0 {
		return
	}
	c.Set(key, value, ttlcache.DefaultTTL)
}

func cloneDeposits(in []types.BridgeDeposit) []types.BridgeDeposit {
	out := make([]types.BridgeDeposit, len(in))
	copy(out, in)

	return out
}

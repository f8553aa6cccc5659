// Package orchestrator runs the claim pipeline end to end: it locates the
// deposits of a source tx, plans them, waits for their proofs and hands the
// plan to the submission engine of the destination network.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/agglayer/aggsandbox/globalindex"
	"github.com/agglayer/aggsandbox/log"
	"github.com/agglayer/aggsandbox/planner"
	"github.com/agglayer/aggsandbox/types"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"
)

const (
	opClaim = "orchestrator.Claim"
)

// Resolver locates deposits and their proofs
type Resolver interface {
	WaitForDeposits(
		ctx context.Context, destinationNetworkID, sourceNetworkID uint32, txHash common.Hash,
	) (uint32, []types.BridgeDeposit, error)
	WaitForProof(ctx context.Context, destinationNetworkID, sourceNetworkID, depositCount uint32) (*types.ClaimProof, error)
	InvalidateProof(sourceNetworkID, depositCount uint32)
}

// Chain answers the read only calls used to build and check claim requests
type Chain interface {
	planner.TokenMetadataReader
	planner.TargetResolver
}

// Executor submits a plan on one destination network
type Executor interface {
	Execute(ctx context.Context, plan *types.ClaimPlan) ([]types.ClaimResult, error)
}

// ClaimArgs identifies the deposits to claim
type ClaimArgs struct {
	DestinationNetwork uint32
	SourceNetwork      uint32
	TxHash             common.Hash
	// DepositCount selects one deposit of the tx, nil claims all of them
	DepositCount *uint32
	// Order claims the deposits in the given deposit count order instead of
	// the planned one, it must list every deposit of the plan
	Order []uint32
	// CustomData replaces the metadata of the claimed deposit
	CustomData []byte
	// Value is sent along with the claim of the claimed deposit
	Value *big.Int
	// ExpectedToken is the wrapped token the caller expects on the destination
	ExpectedToken common.Address
}

func (a ClaimArgs) String() string {
	s := fmt.Sprintf("tx %s from network %d to network %d", a.TxHash.Hex(), a.SourceNetwork, a.DestinationNetwork)
	if a.DepositCount != nil {
		s += fmt.Sprintf(" (deposit %d)", *a.DepositCount)
	}

	return s
}

// Result is the outcome of one claimed tx
type Result struct {
	Args ClaimArgs
	Plan *types.ClaimPlan
	// Claims holds the steps that succeeded, in plan order
	Claims []types.ClaimResult
}

// Orchestrator drives claims through the resolver, the planner and the engines
type Orchestrator struct {
	cfg      Config
	layout   globalindex.Layout
	resolver Resolver
	chain    Chain
	planner  *planner.Planner
	logger   *log.Logger

	mu        sync.RWMutex
	executors map[uint32]Executor
}

// New builds an orchestrator. chain may be nil, then the token metadata
// fill and the pre-flight checks are skipped.
func New(cfg Config, layout globalindex.Layout, resolver Resolver, chain Chain, logger *log.Logger) (*Orchestrator, error) {
	if resolver == nil {
		return nil, errors.New("orchestrator: nil resolver")
	}
	if logger == nil {
		logger = log.WithFields("module", "orchestrator")
	}
	if layout.Name() == "" {
		layout = globalindex.DefaultLayout
	}

	return &Orchestrator{
		cfg:       cfg,
		layout:    layout,
		resolver:  resolver,
		chain:     chain,
		planner:   planner.New(logger),
		logger:    logger,
		executors: map[uint32]Executor{},
	}, nil
}

// Register sets the executor of a destination network
func (o *Orchestrator) Register(networkID uint32, exec Executor) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.executors[networkID] = exec
}

func (o *Orchestrator) executor(networkID uint32) (Executor, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	exec, ok := o.executors[networkID]
	if !ok {
		return nil, types.Errorf(types.KindOther, opClaim, "no claimer for network %d", networkID)
	}

	return exec, nil
}

// Plan resolves the deposits and proofs of a tx and returns the validated
// plan with its requests built, without submitting anything
func (o *Orchestrator) Plan(ctx context.Context, args ClaimArgs) (*types.ClaimPlan, error) {
	depositsCtx, cancel := withTimeout(ctx, o.cfg.DepositTimeout.Duration)
	source, deposits, err := o.resolver.WaitForDeposits(depositsCtx, args.DestinationNetwork, args.SourceNetwork, args.TxHash)
	cancel()
	if err != nil {
		return nil, err
	}
	if source != args.SourceNetwork {
		o.logger.Infof("%s: deposits found on network %d", args, source)
	}

	plan, err := o.planner.Plan(deposits, args.DestinationNetwork)
	if err != nil {
		return nil, err
	}
	switch {
	case args.DepositCount != nil:
		if plan, err = o.planner.Select(plan, *args.DepositCount); err != nil {
			return nil, err
		}
	case len(args.Order) > 0:
		if plan, err = o.planner.Order(plan, args.Order); err != nil {
			return nil, err
		}
	}

	proofsCtx, cancel := withTimeout(ctx, o.cfg.ProofTimeout.Duration)
	defer cancel()
	for i := range plan.Steps {
		deposit := plan.Steps[i].Deposit
		proof, err := o.resolver.WaitForProof(proofsCtx, plan.DestinationNetwork, deposit.SourceNetworkID, deposit.DepositCount)
		if err != nil {
			return nil, err
		}
		opts := planner.RequestOptions{Layout: o.layout}
		if o.cfg.FillTokenMetadata && o.chain != nil {
			opts.Tokens = o.chain
		}
		// the claimed deposit is the last step, its dependency comes first
		if i == len(plan.Steps)-1 {
			opts.CustomData = args.CustomData
			opts.Value = args.Value
		}
		req, err := o.planner.BuildRequest(ctx, deposit, proof, opts)
		if err != nil {
			return nil, err
		}
		plan.Steps[i].Request = req
	}

	if !o.cfg.SkipPreflight && o.chain != nil {
		preflight := planner.PreflightOptions{ExpectedToken: args.ExpectedToken}
		if err := o.planner.Preflight(ctx, plan, o.chain, preflight); err != nil {
			return nil, err
		}
	}
	o.logger.Debugf("%s: planned %d claim(s)", args, len(plan.Steps))

	return plan, nil
}

// Claim plans the deposits of a tx and executes the plan. On failure the
// result holds the steps that succeeded before the failing one.
func (o *Orchestrator) Claim(ctx context.Context, args ClaimArgs) (*Result, error) {
	exec, err := o.executor(args.DestinationNetwork)
	if err != nil {
		return nil, err
	}
	plan, err := o.Plan(ctx, args)
	if err != nil {
		return nil, err
	}

	return o.execute(ctx, exec, args, plan)
}

// ClaimMany claims independent txs concurrently. The first failure stops the
// bundles still waiting on deposits or proofs, bundles already executing keep
// going since their txs may be broadcast. Results are in args order, nil for
// the bundles that did not execute.
func (o *Orchestrator) ClaimMany(ctx context.Context, args []ClaimArgs) ([]*Result, error) {
	results := make([]*Result, len(args))
	g, waitCtx := errgroup.WithContext(ctx)
	if o.cfg.MaxConcurrentBundles > 0 {
		g.SetLimit(o.cfg.MaxConcurrentBundles)
	}
	for i, a := range args {
		i, a := i, a
		g.Go(func() error {
			exec, err := o.executor(a.DestinationNetwork)
			if err != nil {
				return err
			}
			plan, err := o.Plan(waitCtx, a)
			if err != nil {
				return fmt.Errorf("%s: %w", a, err)
			}
			if err := waitCtx.Err(); err != nil {
				o.logger.Warnf("%s: not executed, another bundle failed", a)
				return err
			}
			res, err := o.execute(ctx, exec, a, plan)
			results[i] = res
			if err != nil {
				return fmt.Errorf("%s: %w", a, err)
			}

			return nil
		})
	}

	return results, g.Wait()
}

func (o *Orchestrator) execute(
	ctx context.Context, exec Executor, args ClaimArgs, plan *types.ClaimPlan,
) (*Result, error) {
	start := time.Now()
	claims, err := exec.Execute(ctx, plan)
	res := &Result{Args: args, Plan: plan, Claims: claims}
	if err != nil {
		return res, err
	}
	o.logger.Infof("%s: %d claim(s) done in %s", args, len(claims), time.Since(start).Round(time.Millisecond))

	return res, nil
}

// RefreshRequest drops the cached proof of the request and rebuilds it from
// a new one. It lets the engines recover from a GlobalExitRootInvalid revert.
func (o *Orchestrator) RefreshRequest(ctx context.Context, req *types.ClaimRequest) (*types.ClaimRequest, error) {
	o.resolver.InvalidateProof(req.SourceNetworkID, req.DepositCount)
	proof, err := o.resolver.WaitForProof(ctx, req.DestinationNetwork, req.SourceNetworkID, req.DepositCount)
	if err != nil {
		return nil, err
	}
	o.logger.Debugf("%s: refreshed proof, mainnet exit root %s rollup exit root %s",
		req, proof.MainnetExitRoot.Hex(), proof.RollupExitRoot.Hex())

	return planner.ApplyProof(req, proof)
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}

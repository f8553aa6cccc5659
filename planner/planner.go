// Package planner orders the deposits of a source transaction into a claim
// plan. A bridge-and-call message can only be claimed once the asset it
// depends on has been claimed, the plan encodes that edge.
package planner

import (
	"fmt"
	"sort"

	"github.com/agglayer/aggsandbox/log"
	"github.com/agglayer/aggsandbox/types"
)

const (
	opPlan   = "planner.Plan"
	opSelect = "planner.Select"
	opOrder  = "planner.Order"
)

// Planner builds claim plans. It performs no I/O.
type Planner struct {
	logger *log.Logger
}

// New returns a planner
func New(logger *log.Logger) *Planner {
	if logger == nil {
		logger = log.WithFields("module", "planner")
	}

	return &Planner{logger: logger}
}

// Plan validates the deposits of one source transaction that target
// destinationNetworkID and returns them in claim order. A single deposit is
// claimed alone. With several deposits every message must carry a
// bridge-and-call header whose dependsOnIndex names an asset of the same set,
// otherwise the plan fails with PlanInvalid.
func (p *Planner) Plan(deposits []types.BridgeDeposit, destinationNetworkID uint32) (*types.ClaimPlan, error) {
	targeted := make([]types.BridgeDeposit, 0, len(deposits))
	seen := make(map[uint32]bool, len(deposits))
	for _, d := range deposits {
		if seen[d.DepositCount] {
			return nil, types.Errorf(types.KindPlanInvalid, opPlan, "deposit count %d listed twice", d.DepositCount)
		}
		seen[d.DepositCount] = true
		if d.DestinationNetwork == destinationNetworkID {
			targeted = append(targeted, d)
		}
	}
	if len(targeted) == 0 {
		return nil, types.Errorf(types.KindPlanInvalid, opPlan,
			"none of the %d deposit(s) targets network %d", len(deposits), destinationNetworkID)
	}
	sort.Slice(targeted, func(i, j int) bool { return targeted[i].DepositCount < targeted[j].DepositCount })

	plan := &types.ClaimPlan{DestinationNetwork: destinationNetworkID}
	if len(targeted) == 1 {
		plan.Steps = []types.PlanStep{{Deposit: targeted[0], DependsOn: types.NoDependency}}
		return plan, nil
	}

	assets := make(map[uint32]types.BridgeDeposit)
	for _, d := range targeted {
		if d.LeafType == types.LeafTypeAsset {
			assets[d.DepositCount] = d
		}
	}
	// deposit count of the message -> deposit count of the asset it waits for
	dependsOn := make(map[uint32]uint32)
	for _, d := range targeted {
		if d.LeafType != types.LeafTypeMessage {
			continue
		}
		meta, err := DecodeCallMetadata(d.Metadata)
		if err != nil {
			return nil, types.NewError(types.KindPlanInvalid, opPlan,
				fmt.Errorf("message deposit %d: %w", d.DepositCount, err))
		}
		assetCount, ok := meta.DependsOn()
		if !ok {
			return nil, types.Errorf(types.KindPlanInvalid, opPlan,
				"message deposit %d depends on index %s", d.DepositCount, meta.DependsOnIndex.String())
		}
		if _, ok := assets[assetCount]; !ok {
			return nil, types.Errorf(types.KindPlanInvalid, opPlan,
				"message deposit %d depends on index %d but no asset deposit %d was resolved",
				d.DepositCount, assetCount, assetCount)
		}
		dependsOn[d.DepositCount] = assetCount
	}

	positions := make(map[uint32]int, len(targeted))
	add := func(d types.BridgeDeposit) {
		if _, ok := positions[d.DepositCount]; ok {
			return
		}
		step := types.PlanStep{Deposit: d, DependsOn: types.NoDependency}
		if assetCount, ok := dependsOn[d.DepositCount]; ok {
			step.DependsOn = positions[assetCount]
		}
		positions[d.DepositCount] = len(plan.Steps)
		plan.Steps = append(plan.Steps, step)
	}
	for _, d := range targeted {
		if assetCount, ok := dependsOn[d.DepositCount]; ok {
			add(assets[assetCount])
		}
		add(d)
	}
	p.logger.Debugf("planned %d claim(s) on network %d", len(plan.Steps), destinationNetworkID)

	return plan, nil
}

// Select keeps the step of depositCount and the step it depends on, if any
func (p *Planner) Select(plan *types.ClaimPlan, depositCount uint32) (*types.ClaimPlan, error) {
	idx := stepIndex(plan, depositCount)
	if idx < 0 {
		return nil, types.Errorf(types.KindOther, opSelect,
			"deposit count %d is not part of the transaction", depositCount)
	}
	selected := &types.ClaimPlan{DestinationNetwork: plan.DestinationNetwork}
	step := plan.Steps[idx]
	if step.DependsOn != types.NoDependency {
		dep := plan.Steps[step.DependsOn]
		dep.DependsOn = types.NoDependency
		selected.Steps = append(selected.Steps, dep)
		step.DependsOn = 0
	}
	selected.Steps = append(selected.Steps, step)

	return selected, nil
}

// Order rearranges the plan in the caller's order of deposit counts. An order
// that puts a message before the asset it depends on is rejected with
// UnclaimedAssetDependency, no transaction is built for it.
func (p *Planner) Order(plan *types.ClaimPlan, depositCounts []uint32) (*types.ClaimPlan, error) {
	if len(depositCounts) != len(plan.Steps) {
		return nil, types.Errorf(types.KindPlanInvalid, opOrder,
			"order has %d deposit(s), plan has %d", len(depositCounts), len(plan.Steps))
	}
	ordered := &types.ClaimPlan{DestinationNetwork: plan.DestinationNetwork}
	newPos := make(map[uint32]int, len(depositCounts))
	for i, count := range depositCounts {
		idx := stepIndex(plan, count)
		if idx < 0 {
			return nil, types.Errorf(types.KindPlanInvalid, opOrder, "deposit count %d is not part of the plan", count)
		}
		if _, dup := newPos[count]; dup {
			return nil, types.Errorf(types.KindPlanInvalid, opOrder, "deposit count %d ordered twice", count)
		}
		step := plan.Steps[idx]
		if step.DependsOn != types.NoDependency {
			assetCount := plan.Steps[step.DependsOn].Deposit.DepositCount
			pos, claimedBefore := newPos[assetCount]
			if !claimedBefore {
				return nil, types.Errorf(types.KindUnclaimedAssetDependency, opOrder,
					"message deposit %d is ordered before asset deposit %d", count, assetCount)
			}
			step.DependsOn = pos
		}
		newPos[count] = i
		ordered.Steps = append(ordered.Steps, step)
	}

	return ordered, nil
}

func stepIndex(plan *types.ClaimPlan, depositCount uint32) int {
	for i, s := range plan.Steps {
		if s.Deposit.DepositCount == depositCount {
			return i
		}
	}

	return -1
}

package main

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/agglayer/aggsandbox/orchestrator"
	"github.com/agglayer/aggsandbox/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newCLIApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{appName}, args...))

	return out.String(), err
}

func TestComputeIndex(t *testing.T) {
	out, err := run(t, "utils", "compute-index", "--local-index", "5", "--source-network", "0")
	require.NoError(t, err)
	require.Equal(t, "18446744073709551621\n", out)

	out, err = run(t, "utils", "compute-index", "--local-index", "5", "--source-network", "2")
	require.NoError(t, err)
	require.Equal(t, "4294967301\n", out)

	out, err = run(t, "utils", "compute-index", "--local-index", "5", "--source-network", "0", "--layout", "lxlyjs")
	require.NoError(t, err)
	require.Equal(t, "2147483653\n", out)

	_, err = run(t, "utils", "compute-index", "--local-index", "5", "--source-network", "0", "--layout", "v3")
	require.Error(t, err)
}

func TestDecodeIndex(t *testing.T) {
	out, err := run(t, "utils", "decode-index", "--global-index", "0x100000005")
	require.NoError(t, err)
	require.Equal(t, "deposit count: 5\nsource network: 2\nmainnet: false\n", out)

	_, err = run(t, "utils", "decode-index", "--global-index", "-1")
	require.Error(t, err)
}

func TestConfigCmd(t *testing.T) {
	out, err := run(t, "config")
	require.NoError(t, err)
	require.Contains(t, out, "[Claimer]")
	require.Contains(t, out, "L1URL")

	out, err = run(t, "config", "--schema")
	require.NoError(t, err)
	require.Contains(t, out, "\"Networks\"")
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "Version:")
}

func TestClaimArgsValidation(t *testing.T) {
	_, err := run(t, "plan", "--network", "1", "--source-network", "0", "--tx-hash", "0x1234")
	require.ErrorContains(t, err, "--tx-hash")

	txHash := common.HexToHash("0xabc").Hex()
	_, err = run(t, "plan", "--network", "1", "--source-network", "0", "--tx-hash", txHash,
		"--token-address", "nope")
	require.ErrorContains(t, err, "--token-address")

	_, err = run(t, "claim", "--network", "1", "--source-network", "0", "--tx-hash", txHash,
		"--msg-value", "ten")
	require.ErrorContains(t, err, "--msg-value")
}

func TestPrintError(t *testing.T) {
	var out bytes.Buffer
	printError(&out, fmt.Errorf("claim: %w",
		types.Errorf(types.KindUnclaimedAssetDependency, "claimer.Claim", "message needs its asset")))
	require.Contains(t, out.String(), "error: claim:")
	require.Contains(t, out.String(), "hint: claim the asset deposit before the message deposit")

	out.Reset()
	printError(&out, fmt.Errorf("plain"))
	require.Equal(t, "error: plain\n", out.String())
}

func TestPrintPlanAndResult(t *testing.T) {
	plan := &types.ClaimPlan{
		DestinationNetwork: 1,
		Steps: []types.PlanStep{
			{
				Deposit:   types.BridgeDeposit{DepositCount: 7, LeafType: types.LeafTypeAsset, Amount: big.NewInt(10)},
				DependsOn: types.NoDependency,
				Request:   &types.ClaimRequest{GlobalIndex: big.NewInt(7)},
			},
			{
				Deposit:   types.BridgeDeposit{DepositCount: 8, LeafType: types.LeafTypeMessage},
				DependsOn: 0,
			},
		},
	}
	var out bytes.Buffer
	printPlan(&out, plan)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[1], "claimAsset")
	require.Contains(t, lines[2], "claimMessage")
	require.Regexp(t, `\s0\s`, lines[2])

	out.Reset()
	printResult(&out, &orchestrator.Result{
		Plan: plan,
		Claims: []types.ClaimResult{
			{DepositCount: 7, GlobalIndex: big.NewInt(7), Outcome: types.OutcomeAlreadyClaimed},
		},
	})
	require.Contains(t, out.String(), "deposit 7 from network 0 (global index 7): already claimed")
	require.Contains(t, out.String(), "1 of 2 claims")
}

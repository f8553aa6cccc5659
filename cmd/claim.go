package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/agglayer/aggsandbox/orchestrator"
	"github.com/agglayer/aggsandbox/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"
)

func claimCommand() *cli.Command {
	flags := []cli.Flag{
		&networkFlag, &sourceNetworkFlag, &txHashFlag, &depositCountFlag, &orderFlag,
		&tokenAddressFlag, &dataFlag, &msgValueFlag, &skipPreflightFlag, &layoutFlag,
	}
	flags = append(flags, gasFlags()...)
	flags = append(flags, signerFlags()...)

	return &cli.Command{
		Name:   "claim",
		Usage:  "Claim the deposits of a bridge tx on the destination network",
		Action: claimCmd,
		Flags:  flags,
	}
}

func claimAllCommand() *cli.Command {
	flags := []cli.Flag{
		&networkFlag,
		&sourceNetworkFlag,
		&cli.StringSliceFlag{
			Name:     flagTxHash,
			Usage:    "Hashes of the bridge txs on the source network, claimed concurrently",
			Required: true,
		},
		&skipPreflightFlag,
		&layoutFlag,
	}
	flags = append(flags, gasFlags()...)
	flags = append(flags, signerFlags()...)

	return &cli.Command{
		Name:   "claim-all",
		Usage:  "Claim the deposits of several independent bridge txs",
		Action: claimAllCmd,
		Flags:  flags,
	}
}

func planCommand() *cli.Command {
	return &cli.Command{
		Name:   "plan",
		Usage:  "Print the claims a bridge tx needs without submitting them",
		Action: planCmd,
		Flags: []cli.Flag{
			&networkFlag, &sourceNetworkFlag, &txHashFlag, &depositCountFlag, &orderFlag,
			&tokenAddressFlag, &skipPreflightFlag, &layoutFlag, &jsonFlag,
		},
	}
}

// claimArgs reads the deposit selection flags
func claimArgs(cliCtx *cli.Context) (orchestrator.ClaimArgs, error) {
	var args orchestrator.ClaimArgs
	var err error
	if args.DestinationNetwork, err = uint32Flag(cliCtx, flagNetwork); err != nil {
		return args, err
	}
	if args.SourceNetwork, err = uint32Flag(cliCtx, flagSourceNetwork); err != nil {
		return args, err
	}
	if args.TxHash, err = parseHash(flagTxHash, cliCtx.String(flagTxHash)); err != nil {
		return args, err
	}
	if cliCtx.IsSet(flagDepositCount) {
		count, err := uint32Flag(cliCtx, flagDepositCount)
		if err != nil {
			return args, err
		}
		args.DepositCount = &count
	}
	for _, count := range cliCtx.UintSlice(flagOrder) {
		args.Order = append(args.Order, uint32(count))
	}
	if cliCtx.IsSet(flagTokenAddress) {
		if args.ExpectedToken, err = parseAddress(flagTokenAddress, cliCtx.String(flagTokenAddress)); err != nil {
			return args, err
		}
	}
	if cliCtx.IsSet(flagData) {
		if args.CustomData, err = hexutil.Decode(cliCtx.String(flagData)); err != nil {
			return args, fmt.Errorf("--%s: %w", flagData, err)
		}
	}
	if cliCtx.IsSet(flagMsgValue) {
		if args.Value, err = parseBigInt(flagMsgValue, cliCtx.String(flagMsgValue)); err != nil {
			return args, err
		}
	}

	return args, nil
}

func claimCmd(cliCtx *cli.Context) error {
	args, err := claimArgs(cliCtx)
	if err != nil {
		return err
	}
	a, err := newApp(cliCtx)
	if err != nil {
		return err
	}
	defer a.close()
	o, err := a.claimingOrchestrator(args.DestinationNetwork)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(cliCtx)
	defer cancel()

	res, err := o.Claim(ctx, args)
	if res != nil {
		printResult(cliCtx.App.Writer, res)
	}

	return err
}

func claimAllCmd(cliCtx *cli.Context) error {
	destination, err := uint32Flag(cliCtx, flagNetwork)
	if err != nil {
		return err
	}
	source, err := uint32Flag(cliCtx, flagSourceNetwork)
	if err != nil {
		return err
	}
	hashes := cliCtx.StringSlice(flagTxHash)
	args := make([]orchestrator.ClaimArgs, 0, len(hashes))
	for _, h := range hashes {
		txHash, err := parseHash(flagTxHash, h)
		if err != nil {
			return err
		}
		args = append(args, orchestrator.ClaimArgs{
			DestinationNetwork: destination,
			SourceNetwork:      source,
			TxHash:             txHash,
		})
	}
	a, err := newApp(cliCtx)
	if err != nil {
		return err
	}
	defer a.close()
	o, err := a.claimingOrchestrator(destination)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(cliCtx)
	defer cancel()

	results, err := o.ClaimMany(ctx, args)
	for _, res := range results {
		if res != nil {
			printResult(cliCtx.App.Writer, res)
		}
	}

	return err
}

func planCmd(cliCtx *cli.Context) error {
	args, err := claimArgs(cliCtx)
	if err != nil {
		return err
	}
	a, err := newApp(cliCtx)
	if err != nil {
		return err
	}
	defer a.close()
	o, err := a.orchestrator()
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(cliCtx)
	defer cancel()

	plan, err := o.Plan(ctx, args)
	if err != nil {
		return err
	}
	if cliCtx.Bool(flagJSON) {
		return writeJSON(cliCtx.App.Writer, plan)
	}
	printPlan(cliCtx.App.Writer, plan)

	return nil
}

func printResult(w io.Writer, res *orchestrator.Result) {
	for _, c := range res.Claims {
		if c.Outcome == types.OutcomeAlreadyClaimed {
			fmt.Fprintf(w, "deposit %d from network %d (global index %s): already claimed\n",
				c.DepositCount, c.SourceNetworkID, c.GlobalIndex.String())
			continue
		}
		fmt.Fprintf(w, "deposit %d from network %d (global index %s): claimed in tx %s after %d attempt(s)\n",
			c.DepositCount, c.SourceNetworkID, c.GlobalIndex.String(), c.TxHash.Hex(), c.Attempts)
	}
	if res.Plan != nil && len(res.Claims) < len(res.Plan.Steps) {
		fmt.Fprintf(w, "%d of %d claims of %s were not executed\n",
			len(res.Plan.Steps)-len(res.Claims), len(res.Plan.Steps), res.Args.String())
	}
}

func printPlan(w io.Writer, plan *types.ClaimPlan) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd
	fmt.Fprintln(tw, "STEP\tMETHOD\tDEPOSIT\tGLOBAL INDEX\tDEPENDS ON\tAMOUNT")
	for i, step := range plan.Steps {
		dependsOn := "-"
		if step.DependsOn != types.NoDependency {
			dependsOn = fmt.Sprintf("%d", step.DependsOn)
		}
		method, globalIndex, amount := "claimAsset", "-", "-"
		if step.Deposit.LeafType == types.LeafTypeMessage {
			method = "claimMessage"
		}
		if step.Request != nil {
			globalIndex = step.Request.GlobalIndex.String()
		}
		if step.Deposit.Amount != nil {
			amount = step.Deposit.Amount.String()
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\n",
			i, method, step.Deposit.DepositCount, globalIndex, dependsOn, amount)
	}
	_ = tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

package main

import (
	"fmt"
	"math/big"

	"github.com/agglayer/aggsandbox/bridgeservice"
	"github.com/agglayer/aggsandbox/orchestrator"
	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"
)

const (
	flagLocalIndex    = "local-index"
	flagGlobalIndex   = "global-index"
	flagIndex         = "index"
	flagOriginNetwork = "origin-network"
	flagOriginToken   = "origin-token"
	flagWrappedToken  = "wrapped-token"
	flagName          = "name"
	flagSymbol        = "symbol"
	flagDecimals      = "decimals"
	flagWait          = "wait"
)

var (
	globalIndexFlag = cli.StringFlag{
		Name:     flagGlobalIndex,
		Usage:    "Global index, decimal or 0x prefixed hex",
		Required: true,
	}
	originNetworkFlag = cli.UintFlag{
		Name:     flagOriginNetwork,
		Usage:    "Network id where the token was created",
		Required: true,
	}
	originTokenFlag = cli.StringFlag{
		Name:     flagOriginToken,
		Usage:    "Token address on its origin network",
		Required: true,
	}
)

func proofCommand() *cli.Command {
	return &cli.Command{
		Name:   "proof",
		Usage:  "Print the exit roots and SMT paths to claim a deposit",
		Action: proofCmd,
		Flags: []cli.Flag{
			&networkFlag,
			&sourceNetworkFlag,
			&cli.UintFlag{Name: flagDepositCount, Usage: "Deposit count of the deposit", Required: true},
			&cli.BoolFlag{Name: flagWait, Usage: "Poll until the proof is available"},
		},
	}
}

func utilsCommand() *cli.Command {
	return &cli.Command{
		Name:  "utils",
		Usage: "Global index and token mapping helpers",
		Subcommands: []*cli.Command{
			{
				Name:   "compute-index",
				Usage:  "Compute the global index of a deposit",
				Action: computeIndexCmd,
				Flags: []cli.Flag{
					&cli.UintFlag{Name: flagLocalIndex, Usage: "Deposit count on the source network", Required: true},
					&sourceNetworkFlag,
					&layoutFlag,
				},
			},
			{
				Name:   "decode-index",
				Usage:  "Split a global index into deposit count and source network",
				Action: decodeIndexCmd,
				Flags:  []cli.Flag{&globalIndexFlag, &layoutFlag},
			},
			{
				Name:   "is-claimed",
				Usage:  "Ask the destination bridge whether a deposit is claimed",
				Action: isClaimedCmd,
				Flags: []cli.Flag{
					&networkFlag,
					&cli.UintFlag{Name: flagIndex, Usage: "Deposit count of the deposit", Required: true},
					&sourceNetworkFlag,
				},
			},
			{
				Name:   "get-mapped",
				Usage:  "Print the wrapped token of an origin token on a network",
				Action: getMappedCmd,
				Flags:  []cli.Flag{&networkFlag, &originNetworkFlag, &originTokenFlag},
			},
			{
				Name:   "precalculate",
				Usage:  "Print the address the wrapped token of an origin token will have",
				Action: precalculateCmd,
				Flags: []cli.Flag{
					&networkFlag, &originNetworkFlag, &originTokenFlag,
					&cli.StringFlag{Name: flagName, Usage: "Token name, read from the origin network when not set"},
					&cli.StringFlag{Name: flagSymbol, Usage: "Token symbol, read from the origin network when not set"},
					&cli.UintFlag{Name: flagDecimals, Usage: "Token decimals, read from the origin network when not set"},
				},
			},
			{
				Name:   "get-origin",
				Usage:  "Print the origin network and token of a wrapped token",
				Action: getOriginCmd,
				Flags: []cli.Flag{
					&networkFlag,
					&cli.StringFlag{Name: flagWrappedToken, Usage: "Wrapped token address", Required: true},
				},
			},
			{
				Name:   "build-payload",
				Usage:  "Print the claim payloads of a bridge tx as sent to the sponsor endpoint",
				Action: buildPayloadCmd,
				Flags:  []cli.Flag{&networkFlag, &sourceNetworkFlag, &txHashFlag, &depositCountFlag, &layoutFlag},
			},
		},
	}
}

func proofCmd(cliCtx *cli.Context) error {
	destination, err := uint32Flag(cliCtx, flagNetwork)
	if err != nil {
		return err
	}
	source, err := uint32Flag(cliCtx, flagSourceNetwork)
	if err != nil {
		return err
	}
	depositCount, err := uint32Flag(cliCtx, flagDepositCount)
	if err != nil {
		return err
	}
	a, err := newApp(cliCtx)
	if err != nil {
		return err
	}
	defer a.close()
	ctx, cancel := signalContext(cliCtx)
	defer cancel()

	getProof := a.resolver.GetProof
	if cliCtx.Bool(flagWait) {
		getProof = a.resolver.WaitForProof
	}
	proof, err := getProof(ctx, destination, source, depositCount)
	if err != nil {
		return err
	}

	return writeJSON(cliCtx.App.Writer, proof)
}

func computeIndexCmd(cliCtx *cli.Context) error {
	layout, err := parseLayout(cliCtx)
	if err != nil {
		return err
	}
	depositCount, err := uint32Flag(cliCtx, flagLocalIndex)
	if err != nil {
		return err
	}
	source, err := uint32Flag(cliCtx, flagSourceNetwork)
	if err != nil {
		return err
	}
	globalIndex, err := layout.Encode(depositCount, source)
	if err != nil {
		return err
	}
	fmt.Fprintln(cliCtx.App.Writer, globalIndex.String())

	return nil
}

func decodeIndexCmd(cliCtx *cli.Context) error {
	layout, err := parseLayout(cliCtx)
	if err != nil {
		return err
	}
	globalIndex, err := parseBigInt(flagGlobalIndex, cliCtx.String(flagGlobalIndex))
	if err != nil {
		return err
	}
	depositCount, source, mainnet, err := layout.Decode(globalIndex)
	if err != nil {
		return err
	}
	fmt.Fprintf(cliCtx.App.Writer, "deposit count: %d\nsource network: %d\nmainnet: %t\n", depositCount, source, mainnet)

	return nil
}

func isClaimedCmd(cliCtx *cli.Context) error {
	destination, err := uint32Flag(cliCtx, flagNetwork)
	if err != nil {
		return err
	}
	depositCount, err := uint32Flag(cliCtx, flagIndex)
	if err != nil {
		return err
	}
	source, err := uint32Flag(cliCtx, flagSourceNetwork)
	if err != nil {
		return err
	}
	a, err := newApp(cliCtx)
	if err != nil {
		return err
	}
	defer a.close()
	client, err := a.networks.Get(destination)
	if err != nil {
		return err
	}
	claimed, err := client.IsClaimed(cliCtx.Context, depositCount, source)
	if err != nil {
		return err
	}
	fmt.Fprintln(cliCtx.App.Writer, claimed)

	return nil
}

func originArgs(cliCtx *cli.Context) (uint32, uint32, common.Address, error) {
	network, err := uint32Flag(cliCtx, flagNetwork)
	if err != nil {
		return 0, 0, common.Address{}, err
	}
	originNetwork, err := uint32Flag(cliCtx, flagOriginNetwork)
	if err != nil {
		return 0, 0, common.Address{}, err
	}
	originToken, err := parseAddress(flagOriginToken, cliCtx.String(flagOriginToken))
	if err != nil {
		return 0, 0, common.Address{}, err
	}

	return network, originNetwork, originToken, nil
}

func getMappedCmd(cliCtx *cli.Context) error {
	network, originNetwork, originToken, err := originArgs(cliCtx)
	if err != nil {
		return err
	}
	a, err := newApp(cliCtx)
	if err != nil {
		return err
	}
	defer a.close()
	wrapped, err := a.networks.GetTokenWrappedAddress(cliCtx.Context, network, originNetwork, originToken)
	if err != nil {
		return err
	}
	fmt.Fprintln(cliCtx.App.Writer, wrapped.Hex())

	return nil
}

func precalculateCmd(cliCtx *cli.Context) error {
	network, originNetwork, originToken, err := originArgs(cliCtx)
	if err != nil {
		return err
	}
	a, err := newApp(cliCtx)
	if err != nil {
		return err
	}
	defer a.close()
	name, symbol, decimals := cliCtx.String(flagName), cliCtx.String(flagSymbol), uint8(cliCtx.Uint(flagDecimals))
	if !cliCtx.IsSet(flagName) || !cliCtx.IsSet(flagSymbol) || !cliCtx.IsSet(flagDecimals) {
		n, s, d, err := a.networks.TokenMetadata(cliCtx.Context, originNetwork, originToken)
		if err != nil {
			return err
		}
		if !cliCtx.IsSet(flagName) {
			name = n
		}
		if !cliCtx.IsSet(flagSymbol) {
			symbol = s
		}
		if !cliCtx.IsSet(flagDecimals) {
			decimals = d
		}
	}
	addr, err := a.networks.PrecalculatedWrapperAddress(cliCtx.Context, network, originNetwork, originToken,
		name, symbol, decimals)
	if err != nil {
		return err
	}
	fmt.Fprintln(cliCtx.App.Writer, addr.Hex())

	return nil
}

func getOriginCmd(cliCtx *cli.Context) error {
	network, err := uint32Flag(cliCtx, flagNetwork)
	if err != nil {
		return err
	}
	wrapped, err := parseAddress(flagWrappedToken, cliCtx.String(flagWrappedToken))
	if err != nil {
		return err
	}
	a, err := newApp(cliCtx)
	if err != nil {
		return err
	}
	defer a.close()
	client, err := a.networks.Get(network)
	if err != nil {
		return err
	}
	info, err := client.WrappedTokenToTokenInfo(cliCtx.Context, wrapped)
	if err != nil {
		return err
	}
	fmt.Fprintf(cliCtx.App.Writer, "origin network: %d\norigin token: %s\n",
		info.OriginNetwork, info.OriginTokenAddress.Hex())

	return nil
}

// sponsorRequests plans a bridge tx and returns the payloads of its claims
func sponsorRequests(cliCtx *cli.Context, a *app) (orchestrator.ClaimArgs, []bridgeservice.SponsorClaimRequest, error) {
	args, err := claimArgs(cliCtx)
	if err != nil {
		return args, nil, err
	}
	o, err := a.orchestrator()
	if err != nil {
		return args, nil, err
	}
	ctx, cancel := signalContext(cliCtx)
	defer cancel()
	plan, err := o.Plan(ctx, args)
	if err != nil {
		return args, nil, err
	}
	payloads := make([]bridgeservice.SponsorClaimRequest, 0, len(plan.Steps))
	for _, step := range plan.Steps {
		payloads = append(payloads, bridgeservice.NewSponsorClaimRequest(step.Request))
	}

	return args, payloads, nil
}

func buildPayloadCmd(cliCtx *cli.Context) error {
	a, err := newApp(cliCtx)
	if err != nil {
		return err
	}
	defer a.close()
	_, payloads, err := sponsorRequests(cliCtx, a)
	if err != nil {
		return err
	}

	return writeJSON(cliCtx.App.Writer, payloads)
}

func bigIntFlag(cliCtx *cli.Context, name string) (*big.Int, error) {
	return parseBigInt(name, cliCtx.String(name))
}

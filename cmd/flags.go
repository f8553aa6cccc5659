package main

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	aggcommon "github.com/agglayer/aggsandbox/common"
	"github.com/agglayer/aggsandbox/config"
	"github.com/agglayer/aggsandbox/globalindex"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"
)

const (
	flagNetwork       = "network"
	flagSourceNetwork = "source-network"
	flagTxHash        = "tx-hash"
	flagDepositCount  = "deposit-count"
	flagOrder         = "order"
	flagGasLimit      = "gas-limit"
	flagGasPrice      = "gas-price"
	flagPrivateKey    = "private-key"
	flagKeystore      = "keystore"
	flagPassword      = "password"
	flagTokenAddress  = "token-address"
	flagData          = "data"
	flagMsgValue      = "msg-value"
	flagSkipPreflight = "skip-preflight"
	flagLayout        = "layout"
	flagJSON          = "json"
)

var (
	networkFlag = cli.UintFlag{
		Name:     flagNetwork,
		Aliases:  []string{"n"},
		Usage:    "Destination network id, where the claim is executed",
		Required: true,
	}
	sourceNetworkFlag = cli.UintFlag{
		Name:     flagSourceNetwork,
		Usage:    "Network id where the bridge tx was sent",
		Required: true,
	}
	txHashFlag = cli.StringFlag{
		Name:     flagTxHash,
		Usage:    "Hash of the bridge tx on the source network",
		Required: true,
	}
	depositCountFlag = cli.UintFlag{
		Name:  flagDepositCount,
		Usage: "Deposit count of the deposit to claim, all the deposits of the tx when not set",
	}
	orderFlag = cli.UintSliceFlag{
		Name:  flagOrder,
		Usage: "Claim the deposits in this deposit count order instead of the planned one",
	}
	gasLimitFlag = cli.Uint64Flag{
		Name:  flagGasLimit,
		Usage: "Gas limit of the claim txs, estimated when not set",
	}
	gasPriceFlag = cli.StringFlag{
		Name:  flagGasPrice,
		Usage: "Gas price of the claim txs in wei, suggested by the node when not set",
	}
	privateKeyFlag = cli.StringFlag{
		Name:    flagPrivateKey,
		Usage:   "Hex private key signing the claims",
		EnvVars: []string{config.EnvVarPrefix + "_PRIVATE_KEY"},
	}
	keystoreFlag = cli.StringFlag{
		Name:  flagKeystore,
		Usage: "Keystore file signing the claims, used when no private key is given",
	}
	passwordFlag = cli.StringFlag{
		Name:    flagPassword,
		Usage:   "Password of the keystore file",
		EnvVars: []string{config.EnvVarPrefix + "_KEYSTORE_PASSWORD"},
	}
	tokenAddressFlag = cli.StringFlag{
		Name:  flagTokenAddress,
		Usage: "Wrapped token expected on the destination network",
	}
	dataFlag = cli.StringFlag{
		Name:  flagData,
		Usage: "Hex metadata replacing the one of the claimed deposit",
	}
	msgValueFlag = cli.StringFlag{
		Name:  flagMsgValue,
		Usage: "Value in wei sent along with the claim",
	}
	skipPreflightFlag = cli.BoolFlag{
		Name:  flagSkipPreflight,
		Usage: "Do not check the token and call targets before claiming",
	}
	layoutFlag = cli.StringFlag{
		Name:  flagLayout,
		Usage: "Global index layout: " + globalindex.LayoutBridgeV2.Name() + " or " + globalindex.LayoutLxlyJS.Name(),
	}
	jsonFlag = cli.BoolFlag{
		Name:  flagJSON,
		Usage: "Print the output as JSON",
	}
)

func signerFlags() []cli.Flag {
	return []cli.Flag{&privateKeyFlag, &keystoreFlag, &passwordFlag}
}

func gasFlags() []cli.Flag {
	return []cli.Flag{&gasLimitFlag, &gasPriceFlag}
}

// applyOverrides copies the command line flags that have a config counterpart
func applyOverrides(cliCtx *cli.Context, cfg *config.Config) {
	if cliCtx.IsSet(flagGasLimit) {
		cfg.Claimer.GasLimit = cliCtx.Uint64(flagGasLimit)
	}
	if cliCtx.IsSet(flagGasPrice) {
		cfg.Claimer.GasPrice = cliCtx.String(flagGasPrice)
	}
	if cliCtx.IsSet(flagPrivateKey) {
		cfg.Claimer.Signer.PrivateKey = cliCtx.String(flagPrivateKey)
	}
	if cliCtx.IsSet(flagKeystore) {
		cfg.Claimer.Signer.PrivateKey = ""
		cfg.Claimer.Signer.Keystore.Path = cliCtx.String(flagKeystore)
		cfg.Claimer.Signer.Keystore.Password = cliCtx.String(flagPassword)
	}
	if cliCtx.IsSet(flagSkipPreflight) {
		cfg.Orchestrator.SkipPreflight = cliCtx.Bool(flagSkipPreflight)
	}
	if cliCtx.IsSet(flagLayout) {
		cfg.Claimer.GlobalIndexLayout = cliCtx.String(flagLayout)
	}
}

func uint32Flag(cliCtx *cli.Context, name string) (uint32, error) {
	v := cliCtx.Uint(name)
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("--%s: %d does not fit in 32 bits", name, v)
	}

	return uint32(v), nil
}

func parseHash(name, s string) (common.Hash, error) {
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("--%s: %q is not a 32 bytes hex hash", name, s)
	}

	return common.BytesToHash(b), nil
}

func parseAddress(name, s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("--%s: %q is not an address", name, s)
	}

	return common.HexToAddress(s), nil
}

func parseBigInt(name, s string) (*big.Int, error) {
	v, ok := aggcommon.ParseBigInt(strings.TrimSpace(s))
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("--%s: %q is not a positive integer", name, s)
	}

	return v, nil
}

func parseLayout(cliCtx *cli.Context) (globalindex.Layout, error) {
	if !cliCtx.IsSet(flagLayout) {
		return globalindex.DefaultLayout, nil
	}

	return globalindex.ParseLayout(cliCtx.String(flagLayout))
}

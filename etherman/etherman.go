package etherman

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	configtypes "github.com/agglayer/aggsandbox/config/types"
	"github.com/agglayer/aggsandbox/etherman/contracts"
	"github.com/agglayer/aggsandbox/log"
	aggtypes "github.com/agglayer/aggsandbox/types"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

var (
	// ErrNotFound is used when the object is not found
	ErrNotFound = errors.New("not found")
	// ErrPrivateKeyNotFound used when the provided sender does not have a private key registered to be used
	ErrPrivateKeyNotFound = errors.New("can't find sender private key to sign tx")
	// ErrNoGERManager is returned when the network has no global exit root manager configured
	ErrNoGERManager = errors.New("global exit root manager address not configured")
)

type ethereumClient interface {
	bind.ContractBackend
	bind.DeployBackend
	ethereum.ChainStateReader
	ethereum.TransactionReader

	ChainID(ctx context.Context) (*big.Int, error)
}

// Client talks to the bridge of one network
type Client struct {
	EthClient      ethereumClient
	Bridge         *contracts.BridgeV2Type
	GlobalExitRoot *contracts.GlobalExitRootType // nil when the network has no GER manager configured

	network aggtypes.NetworkConfig
	logger  *log.Logger
	auth    map[common.Address]bind.TransactOpts // empty in case of read-only client
}

// NewClient dials the RPC of the network and binds its contracts
func NewClient(network aggtypes.NetworkConfig, logger *log.Logger) (*Client, error) {
	// Connect to ethereum node
	ethClient, err := ethclient.Dial(network.RPCURL)
	if err != nil {
		log.Errorf("error connecting to %s: %+v", network.RPCURL, err)
		return nil, err
	}

	return NewClientWithBackend(network, ethClient, logger)
}

// NewClientWithBackend binds the contracts of the network on an existing backend
func NewClientWithBackend(network aggtypes.NetworkConfig, backend ethereumClient, logger *log.Logger) (*Client, error) {
	if logger == nil {
		logger = log.WithFields("module", "etherman", "network", network.NetworkID)
	}
	bridge, err := contracts.NewBridgeV2(network.BridgeAddr, backend)
	if err != nil {
		return nil, err
	}
	client := &Client{
		EthClient: backend,
		Bridge:    bridge,
		network:   network,
		logger:    logger,
		auth:      map[common.Address]bind.TransactOpts{},
	}
	if network.GERManagerAddr != (common.Address{}) {
		client.GlobalExitRoot, err = contracts.NewGlobalExitRoot(network.GERManagerAddr, backend)
		if err != nil {
			return nil, err
		}
	}
	logger.Debugf("bound %s", bridge.String())

	return client, nil
}

// Network returns the configuration the client was built with
func (etherMan *Client) Network() aggtypes.NetworkConfig {
	return etherMan.network
}

// IsClaimed reads the claimed bitmap of the bridge
func (etherMan *Client) IsClaimed(ctx context.Context, depositCount, sourceNetworkID uint32) (bool, error) {
	claimed, err := etherMan.Bridge.GetContract().IsClaimed(&bind.CallOpts{Context: ctx}, depositCount, sourceNetworkID)
	if err != nil {
		return false, callError("isClaimed", err)
	}

	return claimed, nil
}

// GERInjected reports whether the global exit root is known by the GER manager of the network
func (etherMan *Client) GERInjected(ctx context.Context, ger common.Hash) (bool, error) {
	if etherMan.GlobalExitRoot == nil {
		return false, aggtypes.NewError(aggtypes.KindOther, "globalExitRootMap", ErrNoGERManager)
	}
	value, err := etherMan.GlobalExitRoot.GetContract().GlobalExitRootMap(&bind.CallOpts{Context: ctx}, ger)
	if err != nil {
		return false, callError("globalExitRootMap", err)
	}

	return value != nil && value.Sign() != 0, nil
}

// TokenMetadata reads name, symbol and decimals of an ERC20
func (etherMan *Client) TokenMetadata(ctx context.Context, token common.Address) (string, string, uint8, error) {
	erc20, err := contracts.NewERC20(token, etherMan.EthClient)
	if err != nil {
		return "", "", 0, err
	}
	opts := &bind.CallOpts{Context: ctx}
	name, err := erc20.GetContract().Name(opts)
	if err != nil {
		return "", "", 0, callError("name", err)
	}
	symbol, err := erc20.GetContract().Symbol(opts)
	if err != nil {
		return "", "", 0, callError("symbol", err)
	}
	decimals, err := erc20.GetContract().Decimals(opts)
	if err != nil {
		return "", "", 0, callError("decimals", err)
	}

	return name, symbol, decimals, nil
}

// GetTokenWrappedAddress returns the wrapper of an origin token on this network, zero when not deployed yet
func (etherMan *Client) GetTokenWrappedAddress(
	ctx context.Context, originNetwork uint32, originToken common.Address,
) (common.Address, error) {
	addr, err := etherMan.Bridge.GetContract().GetTokenWrappedAddress(&bind.CallOpts{Context: ctx}, originNetwork, originToken)
	if err != nil {
		return common.Address{}, callError("getTokenWrappedAddress", err)
	}

	return addr, nil
}

// PrecalculatedWrapperAddress returns the address the wrapper of the token will be deployed at
func (etherMan *Client) PrecalculatedWrapperAddress(ctx context.Context, originNetwork uint32,
	originToken common.Address, name, symbol string, decimals uint8) (common.Address, error) {
	addr, err := etherMan.Bridge.GetContract().PrecalculatedWrapperAddress(
		&bind.CallOpts{Context: ctx}, originNetwork, originToken, name, symbol, decimals)
	if err != nil {
		return common.Address{}, callError("precalculatedWrapperAddress", err)
	}

	return addr, nil
}

// WrappedTokenToTokenInfo returns the origin of a wrapped token
func (etherMan *Client) WrappedTokenToTokenInfo(ctx context.Context, wrapped common.Address) (contracts.TokenInfo, error) {
	info, err := etherMan.Bridge.GetContract().WrappedTokenToTokenInfo(&bind.CallOpts{Context: ctx}, wrapped)
	if err != nil {
		return contracts.TokenInfo{}, callError("wrappedTokenToTokenInfo", err)
	}

	return info, nil
}

// BuildClaimTxData returns the calldata of the claim in the signature the bridge
// of the network was configured with
func (etherMan *Client) BuildClaimTxData(req *aggtypes.ClaimRequest) ([]byte, error) {
	if etherMan.network.ClaimWithProofs() {
		return etherMan.Bridge.GetContract().PackClaimWithProofs(req)
	}

	return etherMan.Bridge.GetContract().PackClaim(req)
}

// SendTx sends a tx to the network
func (etherMan *Client) SendTx(ctx context.Context, tx *types.Transaction) error {
	return etherMan.EthClient.SendTransaction(ctx, tx)
}

// PendingNonce returns the nonce including the pending txs of the account
func (etherMan *Client) PendingNonce(ctx context.Context, account common.Address) (uint64, error) {
	return etherMan.EthClient.PendingNonceAt(ctx, account)
}

// SuggestGasPrice returns the legacy gas price suggested by the node
func (etherMan *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return etherMan.EthClient.SuggestGasPrice(ctx)
}

// EstimateGas returns the estimated gas for the tx
func (etherMan *Client) EstimateGas(
	ctx context.Context, from common.Address, to *common.Address, value *big.Int, data []byte,
) (uint64, error) {
	return etherMan.EthClient.EstimateGas(ctx, ethereum.CallMsg{
		From:  from,
		To:    to,
		Value: value,
		Data:  data,
	})
}

// CheckTxWasMined check if a tx was already mined
func (etherMan *Client) CheckTxWasMined(ctx context.Context, txHash common.Hash) (bool, *types.Receipt, error) {
	receipt, err := etherMan.EthClient.TransactionReceipt(ctx, txHash)
	if errors.Is(err, ethereum.NotFound) {
		return false, nil, nil
	} else if err != nil {
		return false, nil, err
	}

	return true, receipt, nil
}

// SignTx tries to sign a transaction accordingly to the provided sender
func (etherMan *Client) SignTx(ctx context.Context, sender common.Address, tx *types.Transaction) (*types.Transaction, error) {
	auth, err := etherMan.getAuthByAddress(sender)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrPrivateKeyNotFound
	}
	signedTx, err := auth.Signer(auth.From, tx)
	if err != nil {
		return nil, err
	}

	return signedTx, nil
}

// GetRevertData replays a mined tx at its block and returns the revert payload.
// It returns nil when the replay does not revert.
func (etherMan *Client) GetRevertData(ctx context.Context, tx *types.Transaction, receipt *types.Receipt) ([]byte, error) {
	if tx == nil || receipt == nil {
		return nil, nil
	}
	from, err := types.Sender(types.LatestSignerForChainID(tx.ChainId()), tx)
	if err != nil {
		return nil, err
	}
	msg := ethereum.CallMsg{
		From:     from,
		To:       tx.To(),
		Gas:      tx.Gas(),
		GasPrice: tx.GasPrice(),
		Value:    tx.Value(),
		Data:     tx.Data(),
	}
	_, err = etherMan.EthClient.CallContract(ctx, msg, receipt.BlockNumber)
	if err == nil {
		return nil, nil
	}
	if data, ok := RevertData(err); ok {
		return data, nil
	}

	return nil, err
}

// RevertData extracts the revert payload the node attaches to a failed call or estimation
func RevertData(err error) ([]byte, bool) {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return nil, false
	}
	switch data := dataErr.ErrorData().(type) {
	case string:
		decoded := common.FromHex(data)
		return decoded, len(decoded) > 0
	case []byte:
		return data, len(data) > 0
	default:
		return nil, false
	}
}

// LoadAuth loads the signer key and registers it for the chain id of the network
func (etherMan *Client) LoadAuth(signer configtypes.SignerConfig) (*bind.TransactOpts, *ecdsa.PrivateKey, error) {
	key, err := signer.Key()
	if err != nil {
		return nil, nil, err
	}
	auth, err := bind.NewKeyedTransactorWithChainID(key, new(big.Int).SetUint64(etherMan.network.ChainID))
	if err != nil {
		return nil, nil, err
	}
	etherMan.logger.Infof("loaded authorization for address: %v", auth.From.String())
	etherMan.auth[auth.From] = *auth

	return auth, key, nil
}

// getAuthByAddress tries to get an authorization from the authorizations map
func (etherMan *Client) getAuthByAddress(addr common.Address) (bind.TransactOpts, error) {
	auth, found := etherMan.auth[addr]
	if !found {
		return bind.TransactOpts{}, ErrNotFound
	}

	return auth, nil
}

// callError classifies a failed view call: a missing contract or a revert are
// final, anything else is the node
func callError(op string, err error) error {
	if errors.Is(err, bind.ErrNoCode) {
		return aggtypes.NewError(aggtypes.KindOther, op, err)
	}
	if data, ok := RevertData(err); ok {
		ce := aggtypes.NewError(aggtypes.KindOther, op, err)
		if rev, ok := contracts.DecodeRevert(data); ok {
			ce.Selector = rev.Selector
			ce.Reason = rev.String()
		}

		return ce
	}

	return aggtypes.NewError(aggtypes.KindChainRPCError, op, fmt.Errorf("view call: %w", err))
}

package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// ClaimABISandbox is the claim signature of the sandbox bridge
	ClaimABISandbox = "sandbox"
	// ClaimABIProofs is the claim signature taking the local and rollup SMT proofs
	ClaimABIProofs = "proofs"
)

// NetworkConfig describes one chain of the sandbox and the endpoints serving it.
// It is passed explicitly to every component that talks to the chain.
type NetworkConfig struct {
	// Name is a label used in logs, e.g. "L1"
	Name string `mapstructure:"Name"`
	// NetworkID is the LxLy network id (0 is L1)
	NetworkID uint32 `mapstructure:"NetworkID"`
	// ChainID is the EVM chain id used to sign transactions
	ChainID uint64 `mapstructure:"ChainID"`
	// RPCURL is the JSON-RPC endpoint of the chain
	RPCURL string `mapstructure:"RPCURL"`
	// BridgeAddr is the PolygonZkEVMBridgeV2 deployment
	BridgeAddr common.Address `mapstructure:"BridgeAddr"`
	// BridgeExtensionAddr is the bridge-and-call extension deployment
	BridgeExtensionAddr common.Address `mapstructure:"BridgeExtensionAddr"`
	// ClaimABI selects the claimAsset/claimMessage signature of the bridge:
	// "sandbox" (default) takes no proofs, "proofs" is the upstream form with SMT proofs
	ClaimABI string `mapstructure:"ClaimABI"`
	// GERManagerAddr is the global exit root manager of the chain
	GERManagerAddr common.Address `mapstructure:"GERManagerAddr"`
	// BridgeServiceURL is the base URL of the indexer serving this network
	BridgeServiceURL string `mapstructure:"BridgeServiceURL"`
	// RequestsPerSecond limits the calls to the bridge service for this network, 0 disables it
	RequestsPerSecond float64 `mapstructure:"RequestsPerSecond"`
	// Burst of the rate limiter
	Burst int `mapstructure:"Burst"`
}

func (n NetworkConfig) String() string {
	if n.Name != "" {
		return fmt.Sprintf("%s(%d)", n.Name, n.NetworkID)
	}

	return fmt.Sprintf("network(%d)", n.NetworkID)
}

// Validate checks the fields every component needs
func (n NetworkConfig) Validate() error {
	if n.RPCURL == "" {
		return fmt.Errorf("%s: RPCURL is empty", n)
	}
	if n.BridgeServiceURL == "" {
		return fmt.Errorf("%s: BridgeServiceURL is empty", n)
	}
	if n.BridgeAddr == (common.Address{}) {
		return fmt.Errorf("%s: BridgeAddr is not set", n)
	}
	switch n.ClaimABI {
	case "", ClaimABISandbox, ClaimABIProofs:
	default:
		return fmt.Errorf("%s: unknown ClaimABI %q, expected %q or %q", n, n.ClaimABI, ClaimABISandbox, ClaimABIProofs)
	}
	if n.RequestsPerSecond < 0 || n.Burst < 0 {
		return fmt.Errorf("%s: negative rate limit", n)
	}

	return nil
}

// ClaimWithProofs reports whether the claim calls of the bridge carry the SMT proofs
func (n NetworkConfig) ClaimWithProofs() bool {
	return n.ClaimABI == ClaimABIProofs
}

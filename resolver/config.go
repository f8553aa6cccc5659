package resolver

import (
	"time"

	"github.com/agglayer/aggsandbox/common"
	"github.com/agglayer/aggsandbox/config/types"
)

const (
	defaultBridgesCacheTTL = 5 * time.Second
	defaultProofCacheTTL   = 30 * time.Second
	defaultMaxPages        = 10
	defaultPageSize        = 100
)

// Config is the configuration of the deposit and proof resolver
type Config struct {
	// BridgesCacheTTL is how long the deposits of a tx are reused, 0 uses the default and a negative value disables the cache
	BridgesCacheTTL types.Duration `mapstructure:"BridgesCacheTTL"`
	// ProofCacheTTL is how long a proof for (network, deposit count) is reused, same rules as BridgesCacheTTL
	ProofCacheTTL types.Duration `mapstructure:"ProofCacheTTL"`
	// MaxPages bounds the number of bridge listing pages scanned to find a tx
	MaxPages uint32 `mapstructure:"MaxPages"`
	// PageSize is the page size of the bridge listing
	PageSize uint32 `mapstructure:"PageSize"`
	// CheckGERInjected makes GetProof confirm on the destination chain that the
	// global exit root of the proof has been injected
	CheckGERInjected bool `mapstructure:"CheckGERInjected"`
	// Retry bounds WaitForDeposits and WaitForProof
	Retry common.RetryConfig `mapstructure:"Retry"`
}

func (c Config) withDefaults() Config {
	if c.BridgesCacheTTL.Duration == 0 {
		c.BridgesCacheTTL = types.NewDuration(defaultBridgesCacheTTL)
	}
	if c.ProofCacheTTL.Duration == 0 {
		c.ProofCacheTTL = types.NewDuration(defaultProofCacheTTL)
	}
	if c.MaxPages == 0 {
		c.MaxPages = defaultMaxPages
	}
	if c.PageSize == 0 {
		c.PageSize = defaultPageSize
	}

	return c
}

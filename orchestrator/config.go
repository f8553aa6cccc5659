package orchestrator

import (
	"github.com/agglayer/aggsandbox/config/types"
)

// Config of the claim orchestrator
type Config struct {
	// DepositTimeout bounds the wait for the deposits of a tx to be indexed, 0 leaves it to the resolver retry policy
	DepositTimeout types.Duration `mapstructure:"DepositTimeout"`
	// ProofTimeout bounds the wait for the proofs of a plan, 0 leaves it to the resolver retry policy
	ProofTimeout types.Duration `mapstructure:"ProofTimeout"`
	// MaxConcurrentBundles bounds the bundles prepared and executed at the same time by ClaimMany, 0 is unbounded
	MaxConcurrentBundles int `mapstructure:"MaxConcurrentBundles"`
	// SkipPreflight disables the destination address checks run before a plan is executed
	SkipPreflight bool `mapstructure:"SkipPreflight"`
	// FillTokenMetadata reads the ERC20 metadata of first time token bridges that the indexer left empty
	FillTokenMetadata bool `mapstructure:"FillTokenMetadata"`
}

package claimer

import (
	"fmt"
	"time"

	aggcommon "github.com/agglayer/aggsandbox/common"
	configtypes "github.com/agglayer/aggsandbox/config/types"
	"github.com/agglayer/aggsandbox/globalindex"
)

const (
	// DefaultGasLimit is used when estimation fails and no gas limit is configured
	DefaultGasLimit uint64 = 3_000_000

	defaultConfirmationTimeout = 60 * time.Second
	defaultReceiptPollInterval = time.Second
	defaultGasPriceBumpPercent = 10
	defaultMaxReplacements     = 3
)

// Config of the claim submission engine
type Config struct {
	// GlobalIndexLayout is the global index layout of the bridge deployment: "bridgev2" or "lxlyjs"
	GlobalIndexLayout string `mapstructure:"GlobalIndexLayout"`
	// GasLimit forces the gas limit of the claim txs, 0 estimates it
	GasLimit uint64 `mapstructure:"GasLimit"`
	// DefaultGasLimit is used when the estimation fails without a revert
	DefaultGasLimit uint64 `mapstructure:"DefaultGasLimit"`
	// GasOffset is added on top of the estimated gas
	GasOffset uint64 `mapstructure:"GasOffset"`
	// GasPrice forces the gas price in wei, empty uses the price suggested by the node
	GasPrice string `mapstructure:"GasPrice"`
	// ConfirmationTimeout is how long a broadcast tx is waited for before checking the chain again
	ConfirmationTimeout configtypes.Duration `mapstructure:"ConfirmationTimeout"`
	// ReceiptPollInterval is the period used to ask for the receipt of a broadcast tx
	ReceiptPollInterval configtypes.Duration `mapstructure:"ReceiptPollInterval"`
	// GasPriceBumpPercent raises the gas price of a replacement tx, at least 10 as nodes require
	GasPriceBumpPercent uint64 `mapstructure:"GasPriceBumpPercent"`
	// MaxReplacements bounds the same nonce replacements of a tx that is not mined in time
	MaxReplacements int `mapstructure:"MaxReplacements"`
	// Retry bounds the attempts of a claim failing with a transient error
	Retry aggcommon.RetryConfig `mapstructure:"Retry"`
	// Signer is the key paying for the claims
	Signer configtypes.SignerConfig `mapstructure:"Signer"`
}

// Layout returns the configured global index layout
func (c Config) Layout() (globalindex.Layout, error) {
	return globalindex.ParseLayout(c.GlobalIndexLayout)
}

func (c Config) withDefaults() Config {
	if c.DefaultGasLimit == 0 {
		c.DefaultGasLimit = DefaultGasLimit
	}
	if c.ConfirmationTimeout.Duration <= 0 {
		c.ConfirmationTimeout = configtypes.NewDuration(defaultConfirmationTimeout)
	}
	if c.ReceiptPollInterval.Duration <= 0 {
		c.ReceiptPollInterval = configtypes.NewDuration(defaultReceiptPollInterval)
	}
	if c.GasPriceBumpPercent < defaultGasPriceBumpPercent {
		c.GasPriceBumpPercent = defaultGasPriceBumpPercent
	}
	if c.MaxReplacements < 0 {
		c.MaxReplacements = 0
	} else if c.MaxReplacements == 0 {
		c.MaxReplacements = defaultMaxReplacements
	}

	return c
}

func (c Config) validate() error {
	if _, err := c.Layout(); err != nil {
		return err
	}
	if c.GasPrice != "" {
		if _, ok := aggcommon.ParseBigInt(c.GasPrice); !ok {
			return fmt.Errorf("invalid GasPrice %q", c.GasPrice)
		}
	}

	return nil
}

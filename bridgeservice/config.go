package bridgeservice

import (
	"fmt"
	"strings"
	"time"

	"github.com/agglayer/aggsandbox/config/types"
)

const (
	// APIRest serves bridges, proofs and claims from /bridge/v1
	APIRest = "rest"
	// APIJSONRPC serves the proofs from the "bridge" JSON-RPC namespace, listings stay on REST
	APIJSONRPC = "jsonrpc"

	defaultRequestTimeout = 30 * time.Second
	defaultPageSize       = 100
)

// Config is the configuration of the bridge service client
type Config struct {
	// API selects the protocol of the proof endpoints: "rest" or "jsonrpc"
	API string `mapstructure:"API"`
	// RequestTimeout bounds every HTTP request
	RequestTimeout types.Duration `mapstructure:"RequestTimeout"`
	// RetryMax is the number of transport level retries (connection errors, 5xx, 429)
	RetryMax int `mapstructure:"RetryMax"`
	// RetryWaitMin is the minimum wait between transport retries
	RetryWaitMin types.Duration `mapstructure:"RetryWaitMin"`
	// RetryWaitMax is the maximum wait between transport retries
	RetryWaitMax types.Duration `mapstructure:"RetryWaitMax"`
	// PageSize is the page size requested when listing bridges or claims
	PageSize uint32 `mapstructure:"PageSize"`
}

func (c Config) withDefaults() Config {
	c.API = strings.ToLower(c.API)
	if c.API == "" {
		c.API = APIRest
	}
	if c.RequestTimeout.Duration <= 0 {
		c.RequestTimeout = types.NewDuration(defaultRequestTimeout)
	}
	if c.RetryMax < 0 {
		c.RetryMax = 0
	}
	if c.PageSize == 0 {
		c.PageSize = defaultPageSize
	}

	return c
}

// Validate checks the configured API
func (c Config) Validate() error {
	switch strings.ToLower(c.API) {
	case "", APIRest, APIJSONRPC:
		return nil
	default:
		return fmt.Errorf("unknown bridge service API %q, expected %q or %q", c.API, APIRest, APIJSONRPC)
	}
}

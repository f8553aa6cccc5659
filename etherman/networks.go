package etherman

import (
	"context"
	"fmt"
	"sort"

	"github.com/agglayer/aggsandbox/log"
	aggtypes "github.com/agglayer/aggsandbox/types"
	"github.com/ethereum/go-ethereum/common"
)

// Networks holds one client per configured network
type Networks struct {
	clients map[uint32]*Client
}

// NewNetworks dials every configured network
func NewNetworks(networks []aggtypes.NetworkConfig, logger *log.Logger) (*Networks, error) {
	clients := make(map[uint32]*Client, len(networks))
	for _, n := range networks {
		if _, ok := clients[n.NetworkID]; ok {
			return nil, fmt.Errorf("network %d configured twice", n.NetworkID)
		}
		var l *log.Logger
		if logger != nil {
			l = logger.WithFields("network", n.NetworkID)
		}
		c, err := NewClient(n, l)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", n, err)
		}
		clients[n.NetworkID] = c
	}

	return &Networks{clients: clients}, nil
}

// NewNetworksFromClients wraps already built clients
func NewNetworksFromClients(clients ...*Client) *Networks {
	m := make(map[uint32]*Client, len(clients))
	for _, c := range clients {
		m[c.Network().NetworkID] = c
	}

	return &Networks{clients: m}
}

// Get returns the client of the network
func (n *Networks) Get(networkID uint32) (*Client, error) {
	c, ok := n.clients[networkID]
	if !ok {
		return nil, aggtypes.Errorf(aggtypes.KindOther, "etherman", "network %d is not configured", networkID)
	}

	return c, nil
}

// IDs returns the configured network ids in ascending order
func (n *Networks) IDs() []uint32 {
	ids := make([]uint32, 0, len(n.clients))
	for id := range n.clients {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// GERInjected reports whether the global exit root landed on the network
func (n *Networks) GERInjected(ctx context.Context, networkID uint32, ger common.Hash) (bool, error) {
	c, err := n.Get(networkID)
	if err != nil {
		return false, err
	}

	return c.GERInjected(ctx, ger)
}

// TokenMetadata reads name, symbol and decimals of a token deployed on the network
func (n *Networks) TokenMetadata(
	ctx context.Context, networkID uint32, token common.Address,
) (string, string, uint8, error) {
	c, err := n.Get(networkID)
	if err != nil {
		return "", "", 0, err
	}

	return c.TokenMetadata(ctx, token)
}

// GetTokenWrappedAddress returns the wrapper deployed on the network, zero when none
func (n *Networks) GetTokenWrappedAddress(
	ctx context.Context, networkID, originNetwork uint32, originToken common.Address,
) (common.Address, error) {
	c, err := n.Get(networkID)
	if err != nil {
		return common.Address{}, err
	}

	return c.GetTokenWrappedAddress(ctx, originNetwork, originToken)
}

// PrecalculatedWrapperAddress returns the address the wrapper will be deployed at on the network
func (n *Networks) PrecalculatedWrapperAddress(ctx context.Context, networkID, originNetwork uint32,
	originToken common.Address, name, symbol string, decimals uint8) (common.Address, error) {
	c, err := n.Get(networkID)
	if err != nil {
		return common.Address{}, err
	}

	return c.PrecalculatedWrapperAddress(ctx, originNetwork, originToken, name, symbol, decimals)
}

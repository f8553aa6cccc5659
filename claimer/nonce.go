package claimer

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// NonceSource returns the next nonce of an account as seen by the node
type NonceSource interface {
	PendingNonce(ctx context.Context, account common.Address) (uint64, error)
}

type nonceKey struct {
	networkID uint32
	account   common.Address
}

// NonceManager hands out nonces per (network, account) so that concurrent
// claims signed by the same key never reuse one. The node is only asked once,
// after that the manager counts locally until Reset.
type NonceManager struct {
	mu   sync.Mutex
	next map[nonceKey]uint64
}

// NewNonceManager returns an empty manager
func NewNonceManager() *NonceManager {
	return &NonceManager{next: map[nonceKey]uint64{}}
}

// Next reserves the next nonce of the account
func (n *NonceManager) Next(
	ctx context.Context, networkID uint32, account common.Address, source NonceSource,
) (uint64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	key := nonceKey{networkID: networkID, account: account}
	nonce, ok := n.next[key]
	if !ok {
		var err error
		nonce, err = source.PendingNonce(ctx, account)
		if err != nil {
			return 0, err
		}
	}
	n.next[key] = nonce + 1

	return nonce, nil
}

// Reset drops the local count, the next call asks the node again. Used
// after a broadcast fails and the reserved nonce may be left unused.
func (n *NonceManager) Reset(networkID uint32, account common.Address) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.next, nonceKey{networkID: networkID, account: account})
}

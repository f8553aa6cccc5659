// Package globalindex encodes and decodes the replay protection key that the
// bridge uses for every claim and for its isClaimed bitmap.
package globalindex

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/agglayer/aggsandbox/types"
)

const (
	// MainnetFlagBit is the bit that flags a mainnet origin deposit on PolygonZkEVMBridgeV2
	MainnetFlagBit = 64
	// LxlyJSMainnetFlagBit is the bit that flags a mainnet origin deposit on the lxly.js layout
	LxlyJSMainnetFlagBit = 31
	// RollupIndexShift is the offset of the rollup index (network id - 1) in both layouts
	RollupIndexShift = 32

	// MainnetNetworkID is the network id of L1
	MainnetNetworkID uint32 = 0

	opEncode = "globalindex.Encode"
	opDecode = "globalindex.Decode"
)

// Layout describes how deposit count and source network are packed into a global index
type Layout struct {
	name string
	// mainnetFlagBit is the bit set for mainnet origin deposits
	mainnetFlagBit uint
	// depositCountBits is the bit budget of the deposit count
	depositCountBits uint
}

var (
	// LayoutBridgeV2 is the layout decoded by PolygonZkEVMBridgeV2:
	// mainnet origin: 2^64 + depositCount,
	// rollup origin n: (n-1)*2^32 + depositCount
	LayoutBridgeV2 = Layout{name: "bridgev2", mainnetFlagBit: MainnetFlagBit, depositCountBits: 32}
	// LayoutLxlyJS is the layout documented by lxly.js:
	// mainnet origin: 2^31 + depositCount, rollup origin n: (n-1)*2^32 + depositCount,
	// depositCount below 2^31 in both cases
	LayoutLxlyJS = Layout{name: "lxlyjs", mainnetFlagBit: LxlyJSMainnetFlagBit, depositCountBits: 31}

	// DefaultLayout is the layout used unless configured otherwise
	DefaultLayout = LayoutBridgeV2
)

var one = big.NewInt(1)

// ParseLayout returns the layout with the given name
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", LayoutBridgeV2.name:
		return LayoutBridgeV2, nil
	case LayoutLxlyJS.name:
		return LayoutLxlyJS, nil
	default:
		return Layout{}, fmt.Errorf("unknown global index layout %q, expected %q or %q",
			name, LayoutBridgeV2.name, LayoutLxlyJS.name)
	}
}

// Name of the layout
func (l Layout) Name() string {
	return l.name
}

func (l Layout) String() string {
	return l.name
}

func (l Layout) maxDepositCount() uint64 {
	return 1<<l.depositCountBits - 1
}

// bitBudget is the widest global index the layout can produce
func (l Layout) bitBudget() int {
	if l.mainnetFlagBit >= 2*RollupIndexShift {
		return int(l.mainnetFlagBit) + 1
	}

	return 2 * RollupIndexShift
}

// Encode computes the global index of a deposit. It only fails when a value
// does not fit the bit budget of the layout.
func (l Layout) Encode(depositCount, sourceNetwork uint32) (*big.Int, error) {
	if uint64(depositCount) > l.maxDepositCount() {
		return nil, types.Errorf(types.KindEncodingOverflow, opEncode,
			"deposit count %d exceeds %d bits", depositCount, l.depositCountBits)
	}
	gi := new(big.Int).SetUint64(uint64(depositCount))
	if sourceNetwork == MainnetNetworkID {
		return gi.Or(gi, new(big.Int).Lsh(one, l.mainnetFlagBit)), nil
	}
	rollupIndex := new(big.Int).SetUint64(uint64(sourceNetwork - 1))

	return gi.Or(gi, rollupIndex.Lsh(rollupIndex, RollupIndexShift)), nil
}

// EncodeUint64 is Encode for values coming from user input, wider than the
// uint32 fields of a deposit.
func (l Layout) EncodeUint64(depositCount, sourceNetwork uint64) (*big.Int, error) {
	if depositCount > math.MaxUint32 {
		return nil, types.Errorf(types.KindEncodingOverflow, opEncode, "deposit count %d exceeds 32 bits", depositCount)
	}
	if sourceNetwork > math.MaxUint32 {
		return nil, types.Errorf(types.KindEncodingOverflow, opEncode, "network id %d exceeds 32 bits", sourceNetwork)
	}

	return l.Encode(uint32(depositCount), uint32(sourceNetwork))
}

// Decode is the exact inverse of Encode. Values that Encode can not produce
// fail with EncodingOverflow.
func (l Layout) Decode(globalIndex *big.Int) (depositCount, sourceNetwork uint32, mainnet bool, err error) {
	if globalIndex == nil || globalIndex.Sign() < 0 {
		return 0, 0, false, types.Errorf(types.KindEncodingOverflow, opDecode, "invalid global index %v", globalIndex)
	}
	if globalIndex.BitLen() > l.bitBudget() {
		return 0, 0, false, types.Errorf(types.KindEncodingOverflow, opDecode,
			"global index %s exceeds %d bits", globalIndex.String(), l.bitBudget())
	}

	mainnet = globalIndex.Bit(int(l.mainnetFlagBit)) == 1
	low := new(big.Int).And(globalIndex, new(big.Int).SetUint64(l.maxDepositCount())).Uint64()
	rest := new(big.Int).Rsh(globalIndex, l.depositCountBits)

	if mainnet {
		// only the flag may be set above the deposit count
		flagOnly := new(big.Int).Lsh(one, l.mainnetFlagBit-l.depositCountBits)
		if rest.Cmp(flagOnly) != 0 {
			return 0, 0, false, types.Errorf(types.KindEncodingOverflow, opDecode,
				"global index %s flags mainnet but carries a rollup index", globalIndex.String())
		}

		return uint32(low), MainnetNetworkID, true, nil
	}

	rollupIndex := new(big.Int).Rsh(globalIndex, RollupIndexShift)
	if l.depositCountBits < RollupIndexShift {
		// bits between the deposit count and the rollup index must be clear
		gap := new(big.Int).Rsh(globalIndex, l.depositCountBits)
		gap.And(gap, new(big.Int).SetUint64(1<<(RollupIndexShift-l.depositCountBits)-1))
		if gap.Sign() != 0 {
			return 0, 0, false, types.Errorf(types.KindEncodingOverflow, opDecode,
				"global index %s has bits set outside the layout", globalIndex.String())
		}
	}
	if !rollupIndex.IsUint64() || rollupIndex.Uint64() >= 1<<32-1 {
		return 0, 0, false, types.Errorf(types.KindEncodingOverflow, opDecode,
			"rollup index of global index %s does not fit a network id", globalIndex.String())
	}

	return uint32(low), uint32(rollupIndex.Uint64() + 1), false, nil
}

// Encode uses DefaultLayout
func Encode(depositCount, sourceNetwork uint32) (*big.Int, error) {
	return DefaultLayout.Encode(depositCount, sourceNetwork)
}

// Decode uses DefaultLayout
func Decode(globalIndex *big.Int) (depositCount, sourceNetwork uint32, mainnet bool, err error) {
	return DefaultLayout.Decode(globalIndex)
}

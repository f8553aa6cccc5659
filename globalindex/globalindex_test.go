package globalindex

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/agglayer/aggsandbox/types"
	"github.com/stretchr/testify/require"
)

func bigFromString(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)

	return n
}

func TestEncodeKnownValues(t *testing.T) {
	tests := []struct {
		name          string
		layout        Layout
		depositCount  uint32
		sourceNetwork uint32
		expected      string
	}{
		{name: "bridgev2 mainnet first deposit", layout: LayoutBridgeV2, depositCount: 0, sourceNetwork: 0, expected: "18446744073709551616"},
		{name: "bridgev2 mainnet", layout: LayoutBridgeV2, depositCount: 42, sourceNetwork: 0, expected: "18446744073709551658"},
		{name: "bridgev2 first rollup", layout: LayoutBridgeV2, depositCount: 5, sourceNetwork: 1, expected: "5"},
		{name: "bridgev2 second rollup", layout: LayoutBridgeV2, depositCount: 3, sourceNetwork: 2, expected: "4294967299"},
		{name: "bridgev2 max deposit count", layout: LayoutBridgeV2, depositCount: math.MaxUint32, sourceNetwork: 1, expected: "4294967295"},
		{name: "lxlyjs mainnet", layout: LayoutLxlyJS, depositCount: 0, sourceNetwork: 0, expected: "2147483648"},
		{name: "lxlyjs mainnet deposit 10", layout: LayoutLxlyJS, depositCount: 10, sourceNetwork: 0, expected: "2147483658"},
		{name: "lxlyjs third rollup", layout: LayoutLxlyJS, depositCount: 7, sourceNetwork: 3, expected: "8589934599"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gi, err := tt.layout.Encode(tt.depositCount, tt.sourceNetwork)
			require.NoError(t, err)
			require.Equal(t, bigFromString(t, tt.expected), gi)
		})
	}
}

func TestEncodeOverflow(t *testing.T) {
	_, err := LayoutLxlyJS.Encode(1<<31, 0)
	require.ErrorIs(t, err, types.ErrEncodingOverflow)

	_, err = LayoutLxlyJS.Encode(1<<31, 2)
	require.ErrorIs(t, err, types.ErrEncodingOverflow)

	_, err = LayoutBridgeV2.EncodeUint64(math.MaxUint32+1, 1)
	require.ErrorIs(t, err, types.ErrEncodingOverflow)

	_, err = LayoutBridgeV2.EncodeUint64(1, math.MaxUint32+1)
	require.ErrorIs(t, err, types.ErrEncodingOverflow)

	gi, err := LayoutBridgeV2.EncodeUint64(1, 0)
	require.NoError(t, err)
	require.Equal(t, bigFromString(t, "18446744073709551617"), gi)
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1)) //nolint:gosec
	edges := []uint32{0, 1, 2, 1<<31 - 1, 1 << 31, math.MaxUint32 - 1, math.MaxUint32}

	check := func(t *testing.T, layout Layout, d, n uint32) {
		t.Helper()
		gi, err := layout.Encode(d, n)
		if layout == LayoutLxlyJS && d >= 1<<31 {
			require.ErrorIs(t, err, types.ErrEncodingOverflow)
			return
		}
		require.NoError(t, err)
		gotD, gotN, mainnet, err := layout.Decode(gi)
		require.NoError(t, err)
		require.Equal(t, d, gotD)
		require.Equal(t, n, gotN)
		require.Equal(t, n == MainnetNetworkID, mainnet)
	}

	for _, layout := range []Layout{LayoutBridgeV2, LayoutLxlyJS} {
		t.Run(layout.Name(), func(t *testing.T) {
			for _, d := range edges {
				for _, n := range edges {
					check(t, layout, d, n)
				}
			}
			for i := 0; i < 1000; i++ {
				check(t, layout, r.Uint32(), r.Uint32())
			}
		})
	}
}

func TestDecodeRejectsValuesEncodeCannotProduce(t *testing.T) {
	twoPow := func(n uint) *big.Int { return new(big.Int).Lsh(big.NewInt(1), n) }
	sum := func(vals ...*big.Int) *big.Int {
		out := new(big.Int)
		for _, v := range vals {
			out.Add(out, v)
		}
		return out
	}

	tests := []struct {
		name   string
		layout Layout
		gi     *big.Int
	}{
		{name: "nil", layout: LayoutBridgeV2, gi: nil},
		{name: "negative", layout: LayoutBridgeV2, gi: big.NewInt(-1)},
		{name: "bridgev2 above flag", layout: LayoutBridgeV2, gi: twoPow(65)},
		{name: "bridgev2 mainnet with rollup index", layout: LayoutBridgeV2, gi: sum(twoPow(64), twoPow(32))},
		{name: "bridgev2 rollup index out of network range", layout: LayoutBridgeV2, gi: new(big.Int).Lsh(big.NewInt(math.MaxUint32), 32)},
		{name: "lxlyjs above 64 bits", layout: LayoutLxlyJS, gi: twoPow(64)},
		{name: "lxlyjs mainnet with rollup index", layout: LayoutLxlyJS, gi: sum(twoPow(31), twoPow(32))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := tt.layout.Decode(tt.gi)
			require.ErrorIs(t, err, types.ErrEncodingOverflow)
		})
	}
}

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout("")
	require.NoError(t, err)
	require.Equal(t, LayoutBridgeV2, l)

	l, err = ParseLayout("LxlyJS")
	require.NoError(t, err)
	require.Equal(t, LayoutLxlyJS, l)

	_, err = ParseLayout("v1")
	require.Error(t, err)
}

func TestPackageLevelUsesDefaultLayout(t *testing.T) {
	gi, err := Encode(9, 0)
	require.NoError(t, err)
	d, n, mainnet, err := Decode(gi)
	require.NoError(t, err)
	require.Equal(t, uint32(9), d)
	require.Equal(t, uint32(0), n)
	require.True(t, mainnet)
}

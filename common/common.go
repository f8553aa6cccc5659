package common

import (
	"math/big"
)

// ParseBigInt parses a decimal or 0x prefixed hex integer
func ParseBigInt(s string) (*big.Int, bool) {
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return new(big.Int).SetString(s[2:], 16) //nolint:mnd
	}

	return new(big.Int).SetString(s, 10) //nolint:mnd
}

package ethfmt

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// IsAddress reports whether s is a 20-byte hex address, with or without 0x.
func IsAddress(s string) bool { return common.IsHexAddress(s) }

// ToChecksumAddress returns the EIP-55 mixed-case form of s.
func ToChecksumAddress(s string) (string, error) {
	if !common.IsHexAddress(s) {
		return "", fmt.Errorf("invalid address %q", s)
	}
	return common.HexToAddress(s).Hex(), nil
}

package wallet

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// ChecksumAddress converts addr to EIP-55 mixed-case form. The input
// may be any casing but must be 0x-prefixed 40-hex-char.
func ChecksumAddress(addr string) (string, error) {
	clean := strings.TrimPrefix(strings.TrimPrefix(addr, "0x"), "0X")
	if len(clean) != 40 {
		return "", fmt.Errorf("invalid address length: expected 40 hex chars, got %d", len(clean))
	}
	if _, err := hex.DecodeString(clean); err != nil {
		return "", fmt.Errorf("invalid hex address: %w", err)
	}

	lower := strings.ToLower(clean)
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	digest := h.Sum(nil)

	out := make([]byte, 40)
	for i, c := range []byte(lower) {
		if c >= 'a' && c <= 'f' {
			// Uppercase when the corresponding hash nibble is >= 8.
			nibble := digest[i/2]
			if i%2 == 0 {
				nibble >>= 4
			}
			if nibble&0x0f >= 8 {
				c -= 'a' - 'A'
			}
		}
		out[i] = c
	}
	return "0x" + string(out), nil
}

// NormalizeAddress validates addr and returns its checksummed form.
// Mixed-case inputs must carry a correct EIP-55 checksum; all-lower or
// all-upper inputs are accepted and converted.
func NormalizeAddress(addr string) (string, error) {
	sum, err := ChecksumAddress(addr)
	if err != nil {
		return "", err
	}
	clean := strings.TrimPrefix(strings.TrimPrefix(addr, "0x"), "0X")
	if clean != strings.ToLower(clean) && clean != strings.ToUpper(clean) && "0x"+clean != sum {
		return "", fmt.Errorf("address checksum mismatch: %s", addr)
	}
	return sum, nil
}

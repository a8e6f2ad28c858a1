package common

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// BTCDecimals: BTC has 8 decimals (satoshi)
const BTCDecimals = 8

// DataFromBase16 decodes a hex string, ignoring surrounding and embedded whitespace.
// An empty string decodes to an empty slice.
func DataFromBase16(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex string: %w", err)
	}
	return b, nil
}

// Base16FromData encodes data as lower-case hex
func Base16FromData(data []byte) string {
	return hex.EncodeToString(data)
}

// XORPair XORs two equal-length byte slices into a fresh buffer
func XORPair(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("xor length mismatch: %d != %d", len(a), len(b))
	}
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}

// SplitInTwo splits data into two halves; the first half gets the extra byte on odd input.
func SplitInTwo(data []byte) ([]byte, []byte) {
	mid := (len(data) + 1) / 2
	first := append([]byte{}, data[:mid]...)
	second := append([]byte{}, data[mid:]...)
	return first, second
}

// SatoshiToBTC converts satoshi to BTC string without float precision loss
func SatoshiToBTC(satoshi int64) string {
	if satoshi < 0 {
		return "-" + formatWithDecimals(uint64(-satoshi), BTCDecimals)
	}
	return formatWithDecimals(uint64(satoshi), BTCDecimals)
}

// BTCToSatoshi converts BTC string to satoshi without float precision loss
func BTCToSatoshi(btc string) (uint64, error) {
	return parseWithDecimals(btc, BTCDecimals)
}

// formatWithDecimals converts integer to decimal string by inserting decimal point
// Example: formatWithDecimals(24981836, 8) = "0.24981836"
func formatWithDecimals(value uint64, decimals int) string {
	s := strconv.FormatUint(value, 10)

	// Pad with leading zeros if needed
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}

	// Insert decimal point
	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}

// parseWithDecimals converts decimal string to integer by removing decimal point
// Example: parseWithDecimals("0.24981836", 8) = 24981836
func parseWithDecimals(s string, decimals int) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty string")
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("invalid decimal format")
	}

	whole := parts[0]
	frac := ""
	if len(parts) == 2 {
		frac = parts[1]
	}

	// Pad or truncate fractional part to exact decimals
	if len(frac) < decimals {
		frac += strings.Repeat("0", decimals-len(frac))
	} else if len(frac) > decimals {
		frac = frac[:decimals]
	}

	if whole == "" {
		whole = "0"
	}
	return strconv.ParseUint(whole+frac, 10, 64)
}

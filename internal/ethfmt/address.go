package ethfmt

import "strings"

// DefaultShortChars is the number of hex chars kept on each side by Shorten.
const DefaultShortChars = 4

// AddressesEqual compares two optional addresses ignoring case.
// A nil address is compared as nil, so (nil, nil) is equal and (nil, "") is not.
func AddressesEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return strings.EqualFold(*a, *b)
}

// AddressesEqualStr is AddressesEqual for plain strings.
func AddressesEqualStr(a, b string) bool { return strings.EqualFold(a, b) }

// ShortenAddress keeps the 0x prefix plus chars hex digits on the left and
// chars digits on the right: "0x1973…1271". Short input is returned as is.
func ShortenAddress(address string, chars int) string {
	if address == "" {
		return ""
	}
	if chars < 0 {
		chars = 0
	}
	if len(address) < chars*2+2 {
		return address
	}
	return address[:chars+2] + "…" + address[len(address)-chars:]
}

// Shorten is ShortenAddress with DefaultShortChars.
func Shorten(address string) string { return ShortenAddress(address, DefaultShortChars) }

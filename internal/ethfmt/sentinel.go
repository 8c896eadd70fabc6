package ethfmt

// Well-known sentinel addresses, in checksum case.
const (
	AnyAddress   = "0xFFfFfFffFFfffFFfFFfFFFFFffFFFffffFfFFFfF" // matches any account
	EmptyAddress = "0x0000000000000000000000000000000000000000" // no account
)

func GetAnyAddress() string   { return AnyAddress }
func GetEmptyAddress() string { return EmptyAddress }

// IsAnyAddress is an exact, case-sensitive comparison.
func IsAnyAddress(s string) bool { return s == AnyAddress }

// IsEmptyAddress is an exact, case-sensitive comparison.
func IsEmptyAddress(s string) bool { return s == EmptyAddress }

// SentinelKind returns "any", "empty" or "" for a regular address.
func SentinelKind(s string) string {
	switch {
	case IsAnyAddress(s):
		return "any"
	case IsEmptyAddress(s):
		return "empty"
	}
	return ""
}

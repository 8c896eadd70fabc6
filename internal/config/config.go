package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings keeps all configuration options.
type Settings struct {
	RPCURL     string
	Digits     int
	Unit       string
	ShortChars int
	LogLevel   string
	RPCTimeout time.Duration
}

// Load reads settings from environment supporting both UPPER_CASE and lower_case keys.
func Load() Settings {
	return LoadFrom(os.Getenv)
}

// LoadFrom is Load over an arbitrary lookup, e.g. a map in tests.
func LoadFrom(getenv func(string) string) Settings {
	get := func(keys []string, def string) string {
		for _, k := range keys {
			if v := strings.TrimSpace(getenv(k)); v != "" {
				return v
			}
		}
		return def
	}
	getInt := func(keys []string, def int) int {
		s := get(keys, "")
		if s == "" {
			return def
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		return def
	}

	st := Settings{}
	st.RPCURL = get([]string{"rpc_url", "RPC_URL"}, "https://eth.llamarpc.com")
	st.Digits = getInt([]string{"digits", "DIGITS"}, 2)
	st.Unit = strings.ToLower(get([]string{"unit", "UNIT"}, "ether"))
	st.ShortChars = getInt([]string{"short_chars", "SHORT_CHARS"}, 4)
	st.LogLevel = strings.ToLower(get([]string{"log_level", "LOG_LEVEL"}, "info"))
	st.RPCTimeout = time.Duration(getInt([]string{"rpc_timeout", "RPC_TIMEOUT"}, 10)) * time.Second
	return st
}

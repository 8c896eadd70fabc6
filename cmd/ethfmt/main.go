package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ligun0805/ethfmt/internal/clientcache"
	"github.com/ligun0805/ethfmt/internal/config"
)

type app struct {
	cfg   config.Settings
	log   *zap.SugaredLogger
	cache *clientcache.Cache
	out   io.Writer
}

func main() {
	_ = godotenv.Load()
	_ = godotenv.Overload(".env.local")

	cfg := config.Load()
	log := newLogger(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	a := &app{
		cfg:   cfg,
		log:   log,
		cache: clientcache.New(clientcache.WithLogf(log.Debugf)),
		out:   os.Stdout,
	}
	defer a.cache.Close()

	if err := a.run(context.Background(), os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			usage(os.Stderr)
		}
		die(err.Error())
	}
}

func newLogger(level string) *zap.SugaredLogger {
	zc := zap.NewDevelopmentConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		lvl = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zc.Level = lvl
	zc.OutputPaths = []string{"stderr"}
	l, err := zc.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `usage: ethfmt <command> [flags] args

  eq A B              case-insensitive address comparison
  short ADDR [-n N]   0x1234…abcd form
  fromwei WEI         [-d DIGITS] [-u UNIT]
  towei AMOUNT        [-u UNIT]
  checksum ADDR       EIP-55 form
  valid ADDR          hex address check
  sentinel ADDR       any / empty / none
  balance ADDR        [-d DIGITS] [-u UNIT] [--rpc URL]
  basefee             latest base fee in gwei [--rpc URL]`)
}

func die(msg string) { fmt.Fprintln(os.Stderr, "Error:", msg); os.Exit(1) }

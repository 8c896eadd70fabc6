package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ligun0805/ethfmt/internal/ethfmt"
)

var errUsage = errors.New("bad usage")

type flags struct {
	digits int
	unit   string
	chars  int
	rpc    string
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]

	var f flags
	fs := pflag.NewFlagSet(cmd, pflag.ContinueOnError)
	fs.SetOutput(a.out)
	fs.IntVarP(&f.digits, "digits", "d", a.cfg.Digits, "fractional digits")
	fs.StringVarP(&f.unit, "unit", "u", a.cfg.Unit, "display unit")
	fs.IntVarP(&f.chars, "chars", "n", a.cfg.ShortChars, "chars kept on each side")
	fs.StringVar(&f.rpc, "rpc", a.cfg.RPCURL, "JSON-RPC endpoint")
	if err := fs.Parse(args); err != nil {
		return err
	}
	args = fs.Args()

	need := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%s: expected %d argument(s), got %d", cmd, n, len(args))
		}
		return nil
	}
	unit := func() (ethfmt.Unit, error) { return ethfmt.ParseUnit(f.unit) }

	switch cmd {
	case "eq":
		if err := need(2); err != nil {
			return err
		}
		a.println(ethfmt.AddressesEqualStr(args[0], args[1]))
	case "short":
		if err := need(1); err != nil {
			return err
		}
		a.println(ethfmt.ShortenAddress(args[0], f.chars))
	case "fromwei":
		if err := need(1); err != nil {
			return err
		}
		u, err := unit()
		if err != nil {
			return err
		}
		s, err := ethfmt.FromWeiRounded(args[0], f.digits, u)
		if err != nil {
			return err
		}
		a.println(s)
	case "towei":
		if err := need(1); err != nil {
			return err
		}
		u, err := unit()
		if err != nil {
			return err
		}
		v, err := ethfmt.ToWei(args[0], u)
		if err != nil {
			return err
		}
		a.println(v.String())
	case "checksum":
		if err := need(1); err != nil {
			return err
		}
		s, err := ethfmt.ToChecksumAddress(args[0])
		if err != nil {
			return err
		}
		a.println(s)
	case "valid":
		if err := need(1); err != nil {
			return err
		}
		a.println(ethfmt.IsAddress(args[0]))
	case "sentinel":
		if err := need(1); err != nil {
			return err
		}
		kind := ethfmt.SentinelKind(args[0])
		if kind == "" {
			kind = "none"
		}
		a.println(kind)
	case "balance":
		if err := need(1); err != nil {
			return err
		}
		u, err := unit()
		if err != nil {
			return err
		}
		return a.balance(ctx, f.rpc, args[0], f.digits, f.chars, u)
	case "basefee":
		if err := need(0); err != nil {
			return err
		}
		return a.baseFee(ctx, f.rpc, f.digits)
	default:
		return errUsage
	}
	return nil
}

func (a *app) println(v ...any) { fmt.Fprintln(a.out, v...) }

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/ligun0805/ethfmt/internal/ethfmt"
)

// client dials url and returns the cached ethclient bound to it.
func (a *app) client(ctx context.Context, url string) (*ethclient.Client, error) {
	p, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}
	ec, err := a.cache.Get(p)
	if err != nil {
		p.Close()
		return nil, err
	}
	return ec, nil
}

func (a *app) balance(ctx context.Context, url, addr string, digits, chars int, unit ethfmt.Unit) error {
	if !ethfmt.IsAddress(addr) {
		return fmt.Errorf("invalid address %q", addr)
	}
	ctx, cancel := context.WithTimeout(ctx, a.cfg.RPCTimeout)
	defer cancel()

	ec, err := a.client(ctx, url)
	if err != nil {
		return err
	}
	account := common.HexToAddress(addr)
	a.log.Debugf("eth_getBalance %s via %s", account.Hex(), url)
	bal, err := ec.BalanceAt(ctx, account, nil)
	if err != nil {
		return fmt.Errorf("balance: %w", err)
	}
	s, err := ethfmt.FromWeiRoundedBig(bal, digits, unit)
	if err != nil {
		return err
	}
	a.println(ethfmt.ShortenAddress(account.Hex(), chars), s, string(unit))
	return nil
}

func (a *app) baseFee(ctx context.Context, url string, digits int) error {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.RPCTimeout)
	defer cancel()

	ec, err := a.client(ctx, url)
	if err != nil {
		return err
	}
	h, err := ec.HeaderByNumber(ctx, nil)
	if err != nil {
		return fmt.Errorf("head: %w", err)
	}
	if h.BaseFee == nil {
		return errors.New("no baseFee (pre-1559?)")
	}
	s, err := ethfmt.FromWeiRoundedBig(h.BaseFee, digits, ethfmt.Gwei)
	if err != nil {
		return err
	}
	a.println(fmt.Sprintf("block=%d baseFee=%s gwei", h.Number.Uint64(), s))
	return nil
}

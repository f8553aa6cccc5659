package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/agglayer/aggsandbox/bridgeservice"
	"github.com/agglayer/aggsandbox/claimer"
	"github.com/agglayer/aggsandbox/config"
	"github.com/agglayer/aggsandbox/etherman"
	"github.com/agglayer/aggsandbox/journal"
	"github.com/agglayer/aggsandbox/log"
	"github.com/agglayer/aggsandbox/orchestrator"
	"github.com/agglayer/aggsandbox/resolver"
	"github.com/urfave/cli/v2"
)

// app holds the components shared by the commands
type app struct {
	cfg      *config.Config
	networks *etherman.Networks
	bridge   *bridgeservice.Client
	resolver *resolver.Resolver
	journal  *journal.Journal
}

// newApp loads the configuration, applies the command line overrides and
// connects to every configured network
func newApp(cliCtx *cli.Context) (*app, error) {
	cfg, err := config.Load(cliCtx)
	if err != nil {
		return nil, err
	}
	applyOverrides(cliCtx, cfg)
	log.Init(cfg.Log)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	networks, err := etherman.NewNetworks(cfg.Networks, nil)
	if err != nil {
		return nil, err
	}
	bridge, err := bridgeservice.NewClient(cfg.BridgeService, cfg.Networks, nil)
	if err != nil {
		return nil, err
	}
	res, err := resolver.New(cfg.Resolver, bridge, networks, nil)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, networks: networks, bridge: bridge, resolver: res}
	if cfg.Journal.DBPath != "" {
		a.journal, err = journal.New(nil, cfg.Journal)
		if err != nil {
			return nil, err
		}
	}

	return a, nil
}

func (a *app) close() {
	if a.journal != nil {
		if err := a.journal.Close(); err != nil {
			log.Warnf("error closing the journal: %v", err)
		}
	}
}

// orchestrator builds an orchestrator without engines, enough to plan claims
func (a *app) orchestrator() (*orchestrator.Orchestrator, error) {
	layout, err := a.cfg.Claimer.Layout()
	if err != nil {
		return nil, err
	}

	return orchestrator.New(a.cfg.Orchestrator, layout, a.resolver, a.networks, nil)
}

// claimingOrchestrator builds an orchestrator with one claim engine per
// destination network, all signing with the configured key and sharing nonces
func (a *app) claimingOrchestrator(destinations ...uint32) (*orchestrator.Orchestrator, error) {
	o, err := a.orchestrator()
	if err != nil {
		return nil, err
	}
	if !a.cfg.Claimer.Signer.IsSet() {
		return nil, fmt.Errorf("no signer configured, use --private-key or --keystore")
	}
	nonces := claimer.NewNonceManager()
	registered := map[uint32]bool{}
	for _, id := range destinations {
		if registered[id] {
			continue
		}
		client, err := a.networks.Get(id)
		if err != nil {
			return nil, err
		}
		auth, _, err := client.LoadAuth(a.cfg.Claimer.Signer)
		if err != nil {
			return nil, err
		}
		opts := []claimer.Option{claimer.WithProofRefresher(o), claimer.WithNonceManager(nonces)}
		if a.journal != nil {
			opts = append(opts, claimer.WithJournal(a.journal))
		}
		engine, err := claimer.New(a.cfg.Claimer, client, auth.From, nil, opts...)
		if err != nil {
			return nil, err
		}
		o.Register(id, engine)
		registered[id] = true
	}

	return o, nil
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext(cliCtx *cli.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cliCtx.Context, os.Interrupt, syscall.SIGTERM)
}

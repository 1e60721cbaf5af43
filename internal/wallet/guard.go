package wallet

import (
	"context"
	"errors"
	"fmt"
)

// GuardState is a NetworkGuard phase.
type GuardState int

const (
	StateUnchecked GuardState = iota
	StateChecking
	StateSwitching
	StateRegistering
	StateMatched
	StateFailed
)

func (s GuardState) String() string {
	switch s {
	case StateUnchecked:
		return "unchecked"
	case StateChecking:
		return "checking"
	case StateSwitching:
		return "switching"
	case StateRegistering:
		return "registering"
	case StateMatched:
		return "matched"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("guardstate(%d)", int(s))
	}
}

// NetworkGuard validates that a provider's active chain matches the
// marketplace's deployment chain, switching (and registering the chain if the
// provider does not know it) when it does not. The register→switch retry
// happens at most once per Ensure call, and Ensure only runs on explicit
// connect, never passively.
type NetworkGuard struct {
	required ChainParams
	state    GuardState
}

// NewNetworkGuard creates a guard for the given required chain.
func NewNetworkGuard(required ChainParams) *NetworkGuard {
	return &NetworkGuard{required: required, state: StateUnchecked}
}

// State returns the phase the last Ensure call ended in.
func (g *NetworkGuard) State() GuardState { return g.state }

// Required returns the chain the guard enforces.
func (g *NetworkGuard) Required() ChainParams { return g.required }

// Ensure drives the provider to the required chain. On any failure other
// than the single chain-unrecognized register+retry, the attempt is terminal
// and the error wraps ErrNetworkSwitch.
func (g *NetworkGuard) Ensure(ctx context.Context, p Provider) error {
	g.state = StateChecking
	active, err := p.ChainID(ctx)
	if err != nil {
		g.state = StateFailed
		return fmt.Errorf("%w: reading active chain: %v", ErrNetworkSwitch, err)
	}
	if active == g.required.ChainID {
		g.state = StateMatched
		return nil
	}

	g.state = StateSwitching
	err = p.SwitchChain(ctx, g.required.ChainID)
	if err == nil {
		g.state = StateMatched
		return nil
	}
	if !errors.Is(err, ErrChainUnrecognized) {
		g.state = StateFailed
		return fmt.Errorf("%w: %v", ErrNetworkSwitch, err)
	}

	g.state = StateRegistering
	if err := p.AddChain(ctx, g.required); err != nil {
		g.state = StateFailed
		return fmt.Errorf("%w: registering chain %s: %v", ErrNetworkSwitch, g.required.ChainID, err)
	}
	// One retried switch after registration, never more.
	if err := p.SwitchChain(ctx, g.required.ChainID); err != nil {
		g.state = StateFailed
		return fmt.Errorf("%w: switch after registration: %v", ErrNetworkSwitch, err)
	}
	g.state = StateMatched
	return nil
}

package rpc

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/novanft/mktcli/internal/chain"
	"github.com/novanft/mktcli/internal/config"
)

// ErrNoHealthyRPC is returned when no configured endpoint answers.
var ErrNoHealthyRPC = errors.New("no healthy RPC endpoint available")

// Discard nodes more than this many blocks behind the best.
const staleBlockThreshold = 3

// Endpoint is a single RPC endpoint with its measured attributes.
type Endpoint struct {
	URL         string
	Latency     time.Duration
	BlockNumber uint64
	Healthy     bool
	Err         error
}

// Check pings one endpoint and reports whether it is healthy. A node is
// healthy when it responds within the timeout and, given bestBlock > 0, its
// block is within staleBlockThreshold of it.
func Check(ctx context.Context, url string, bestBlock uint64) Endpoint {
	timeoutCtx, cancel := context.WithTimeout(ctx, config.RPCPingTimeout)
	defer cancel()

	c := chain.NewClient(url)
	latency, blockNum, err := c.Ping(timeoutCtx)

	ep := Endpoint{
		URL:         url,
		Latency:     latency,
		BlockNumber: blockNum,
		Healthy:     err == nil,
		Err:         err,
	}
	if err == nil && bestBlock > 0 && bestBlock-blockNum > staleBlockThreshold {
		ep.Healthy = false
	}
	return ep
}

// CheckAll pings every URL in parallel. Results keep the input order.
func CheckAll(ctx context.Context, urls []string) []Endpoint {
	results := make([]Endpoint, len(urls))
	var wg sync.WaitGroup

	for i, url := range urls {
		wg.Add(1)
		go func(idx int, u string) {
			defer wg.Done()
			results[idx] = Check(ctx, u, 0)
		}(i, url)
	}

	wg.Wait()
	return results
}

// Best pings all URLs and returns the fastest healthy one that is not
// lagging the highest observed block.
func Best(ctx context.Context, urls []string) (string, error) {
	endpoints := CheckAll(ctx, urls)

	var bestBlock uint64
	for _, ep := range endpoints {
		if ep.Healthy && ep.BlockNumber > bestBlock {
			bestBlock = ep.BlockNumber
		}
	}

	var winner *Endpoint
	for i := range endpoints {
		ep := &endpoints[i]
		if !ep.Healthy {
			continue
		}
		if bestBlock > 0 && bestBlock-ep.BlockNumber > staleBlockThreshold {
			continue
		}
		if winner == nil || ep.Latency < winner.Latency {
			winner = ep
		}
	}
	if winner == nil {
		return "", ErrNoHealthyRPC
	}
	return winner.URL, nil
}

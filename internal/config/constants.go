package config

import "time"

// Gas limits used as EstimateGas fallbacks when the node cannot simulate the tx.
// Conservative upper bounds; actual gas used will be lower.
const (
	GasLimitListing  = uint64(250_000) // listToken / list1155
	GasLimitBuy      = uint64(300_000) // buy (includes asset transfer)
	GasLimitWithdraw = uint64(80_000)  // withdrawProceeds
)

// Timeout constants used across cmd and internal packages.
const (
	RPCPingTimeout   = 5 * time.Second // network ping health check
	TxConfirmTimeout = 3 * time.Minute // transaction confirmation wait
)

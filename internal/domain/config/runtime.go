package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into adapters and use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	OutDir      string // Foundry artifact directory, absolute

	// Context settings
	NetworkName string // empty if not specified

	// Deployer key, hex encoded. Never logged.
	PrivateKey string

	// Execution settings
	Debug          bool
	NonInteractive bool
	SkipBuild      bool
	Timeout        time.Duration // 0 disables the command deadline

	// Resolved configurations
	FoundryConfig *FoundryConfig
}

// Network represents network configuration
type Network struct {
	ChainID     uint64 `json:"chainId"`
	Name        string `json:"name"`
	RPCURL      string `json:"rpcUrl"`
	ExplorerURL string `json:"explorerUrl,omitempty"`
}

package models

import (
	"errors"
)

// ErrEmptyAddress is returned when a confirmed deployment reports neither address field
var ErrEmptyAddress = errors.New("deployment result carries no address")

// AddressFields holds the address of a deployed instance as reported by the deployment
// backend. Target is the canonical identifier; Address is the legacy field kept for
// backends that predate it. Both are only meaningful once the deployment is confirmed.
type AddressFields struct {
	Target  string `json:"target,omitempty"`
	Address string `json:"address,omitempty"`
}

// Resolve returns the deployed address. A non-empty Target always wins, even when it is
// the zero address; the legacy Address is used only when Target is empty.
func (f AddressFields) Resolve() (string, error) {
	if f.Target != "" {
		return f.Target, nil
	}
	if f.Address != "" {
		return f.Address, nil
	}
	return "", ErrEmptyAddress
}

// DeploymentResult is the outcome of a single successful deployment run
type DeploymentResult struct {
	Contract ContractReference `json:"contract"`
	Address  string            `json:"address"`
	TxHash   string            `json:"txHash,omitempty"`
}

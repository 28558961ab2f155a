package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/trebuchet-org/crowdtank-deploy/internal/domain/models"
)

// Sentinel errors for domain operations
var (
	// ErrContractNotFound is returned when no artifact matches a contract name
	ErrContractNotFound = errors.New("contract not found")

	// ErrNetworkNotSpecified is returned when no network was given and none can be picked
	ErrNetworkNotSpecified = errors.New("network not specified")

	// ErrUnknownNetwork is returned when a network is missing from [rpc_endpoints]
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrNetworkMismatch is returned when the RPC reports a different chain ID than expected
	ErrNetworkMismatch = errors.New("network mismatch")

	// ErrMissingPrivateKey is returned when no deployer key is configured
	ErrMissingPrivateKey = errors.New("deployer private key not configured")

	// ErrInvalidPrivateKey is returned when the deployer key cannot be parsed
	ErrInvalidPrivateKey = errors.New("invalid deployer private key")

	// ErrNonInteractive is returned when a prompt would be needed in non-interactive mode
	ErrNonInteractive = errors.New("interactive selection not available in non-interactive mode")
)

// AmbiguousContractErr is returned when several artifacts share the requested name
type AmbiguousContractErr struct {
	Name    string
	Matches []*models.Contract
}

func (e AmbiguousContractErr) Error() string {
	names := make([]string, 0, len(e.Matches))
	for _, c := range e.Matches {
		names = append(names, "  - "+c.FullName())
	}
	sort.Strings(names)

	return fmt.Sprintf("multiple contracts named %s found:\n%s", e.Name, strings.Join(names, "\n"))
}

// ResolutionError is returned when the contract factory cannot be obtained
type ResolutionError struct {
	Contract string
	Err      error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve %s factory: %v", e.Contract, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// SubmissionError is returned when the deployment transaction cannot be built, signed or sent
type SubmissionError struct {
	Contract string
	Err      error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("failed to submit %s deployment: %v", e.Contract, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// ConfirmationError is returned when waiting for the deployment to land fails
type ConfirmationError struct {
	Contract string
	TxHash   string
	Err      error
}

func (e *ConfirmationError) Error() string {
	if e.TxHash != "" {
		return fmt.Sprintf("failed to confirm %s deployment (tx %s): %v", e.Contract, e.TxHash, e.Err)
	}
	return fmt.Sprintf("failed to confirm %s deployment: %v", e.Contract, e.Err)
}

func (e *ConfirmationError) Unwrap() error { return e.Err }

// NewResolutionError wraps err as a ResolutionError carrying a stack trace
func NewResolutionError(contract string, err error) error {
	return pkgerrors.WithStack(&ResolutionError{Contract: contract, Err: err})
}

// NewSubmissionError wraps err as a SubmissionError carrying a stack trace
func NewSubmissionError(contract string, err error) error {
	return pkgerrors.WithStack(&SubmissionError{Contract: contract, Err: err})
}

// NewConfirmationError wraps err as a ConfirmationError carrying a stack trace
func NewConfirmationError(contract, txHash string, err error) error {
	return pkgerrors.WithStack(&ConfirmationError{Contract: contract, TxHash: txHash, Err: err})
}

package usecase

import (
	"context"

	"github.com/trebuchet-org/crowdtank-deploy/internal/domain/config"
	"github.com/trebuchet-org/crowdtank-deploy/internal/domain/models"
)

// Deployment ports

// FactoryProvider resolves contract names to deployable factories
type FactoryProvider interface {
	GetFactory(ctx context.Context, name string) (Factory, error)
}

// Factory deploys one contract definition
type Factory interface {
	// Deploy builds, signs and submits the creation transaction with no constructor arguments
	Deploy(ctx context.Context) (DeploymentHandle, error)
}

// DeploymentHandle tracks a submitted deployment until it is confirmed
type DeploymentHandle interface {
	// WaitForDeployment blocks until the deployment is mined and the instance address is known
	WaitForDeployment(ctx context.Context) error
	// AddressFields is only valid after WaitForDeployment returned nil
	AddressFields() models.AddressFields
	// TxHash returns the creation transaction hash, empty when the backend has none
	TxHash() string
}

// ContractRepository provides access to compiled contracts
type ContractRepository interface {
	GetContractByName(ctx context.Context, name string) (*models.Contract, error)
}

// NetworkResolver handles network configuration resolution
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	ResolveNetwork(ctx context.Context, networkName string) (*config.Network, error)
}

// NetworkSelector picks a network interactively
type NetworkSelector interface {
	SelectNetwork(ctx context.Context, networks []string, prompt string) (string, error)
}

// Progress tracking interfaces

// ExecutionStage names a step of a deployment run
type ExecutionStage string

const (
	StageResolving  ExecutionStage = "resolving"
	StageSubmitting ExecutionStage = "submitting"
	StageConfirming ExecutionStage = "confirming"
	StageCompleted  ExecutionStage = "completed"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   ExecutionStage
	Message string
	Spinner bool
}

// ProgressSink receives progress events. An event with Spinner false stops any
// running spinner, which callers use before handing the terminal to a prompt.
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
}

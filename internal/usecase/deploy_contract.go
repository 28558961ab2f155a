package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/crowdtank-deploy/internal/domain"
	"github.com/trebuchet-org/crowdtank-deploy/internal/domain/models"
)

// CrowdTankContract is the contract this tool deploys
const CrowdTankContract = "CrowdTank"

// DeployContract deploys a single contract and reports its address.
// Each call to Run is an independent attempt; nothing is cached between runs.
type DeployContract struct {
	contract models.ContractReference
	provider FactoryProvider
	progress ProgressSink
	log      *slog.Logger
}

// NewDeployContract creates a use case that deploys the CrowdTank contract
func NewDeployContract(provider FactoryProvider, progress ProgressSink, log *slog.Logger) *DeployContract {
	return &DeployContract{
		contract: models.ContractReference{Name: CrowdTankContract},
		provider: provider,
		progress: progress,
		log:      log.With("component", "DeployContract"),
	}
}

// Run resolves the factory, submits the deployment and waits for confirmation.
// The steps are strictly sequential and a failed step ends the run.
func (uc *DeployContract) Run(ctx context.Context) (*models.DeploymentResult, error) {
	name := uc.contract.Name

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageResolving,
		Message: fmt.Sprintf("Resolving %s...", name),
		Spinner: true,
	})
	uc.log.Debug("resolving contract factory", "contract", name)
	factory, err := uc.provider.GetFactory(ctx, name)
	if err != nil {
		return nil, uc.fail(ctx, domain.NewResolutionError(name, err))
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageSubmitting,
		Message: fmt.Sprintf("Deploying %s...", name),
		Spinner: true,
	})
	handle, err := factory.Deploy(ctx)
	if err != nil {
		return nil, uc.fail(ctx, domain.NewSubmissionError(name, err))
	}
	txHash := handle.TxHash()
	uc.log.Debug("deployment submitted", "contract", name, "tx", txHash)

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageConfirming,
		Message: fmt.Sprintf("Waiting for %s deployment to be mined...", name),
		Spinner: true,
	})
	if err := handle.WaitForDeployment(ctx); err != nil {
		return nil, uc.fail(ctx, domain.NewConfirmationError(name, txHash, err))
	}

	// Address fields are only read once the deployment is confirmed
	address, err := handle.AddressFields().Resolve()
	if err != nil {
		return nil, uc.fail(ctx, domain.NewConfirmationError(name, txHash, err))
	}
	uc.log.Debug("deployment confirmed", "contract", name, "address", address)

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})

	return &models.DeploymentResult{
		Contract: uc.contract,
		Address:  address,
		TxHash:   txHash,
	}, nil
}

func (uc *DeployContract) fail(ctx context.Context, err error) error {
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	return err
}

package app

import (
	"io"

	"github.com/trebuchet-org/crowdtank-deploy/internal/domain/config"
	"github.com/trebuchet-org/crowdtank-deploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	DeployContract *usecase.DeployContract
	ListNetworks   *usecase.ListNetworks

	// closer releases the chain connection
	closer io.Closer
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	deployContract *usecase.DeployContract,
	listNetworks *usecase.ListNetworks,
	closer io.Closer,
) *App {
	return &App{
		Config:         cfg,
		DeployContract: deployContract,
		ListNetworks:   listNetworks,
		closer:         closer,
	}
}

// Close releases resources held by the adapters
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

package adapters

import (
	"io"

	"github.com/google/wire"
	internalconfig "github.com/trebuchet-org/crowdtank-deploy/internal/adapters/config"
	"github.com/trebuchet-org/crowdtank-deploy/internal/adapters/contracts"
	"github.com/trebuchet-org/crowdtank-deploy/internal/adapters/evm"
	"github.com/trebuchet-org/crowdtank-deploy/internal/adapters/interactive"
	"github.com/trebuchet-org/crowdtank-deploy/internal/config"
	"github.com/trebuchet-org/crowdtank-deploy/internal/usecase"
)

// ContractsSet provides the Foundry artifact repository
var ContractsSet = wire.NewSet(
	contracts.NewRepository,
	wire.Bind(new(usecase.ContractRepository), new(*contracts.Repository)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	config.ProvideNetworkResolver,
	internalconfig.NewNetworkResolverAdapter,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolverAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.NetworkSelector), new(*interactive.SelectorAdapter)),
)

// EVMSet provides go-ethereum backed deployment
var EVMSet = wire.NewSet(
	evm.NewFactoryProvider,
	wire.Bind(new(usecase.FactoryProvider), new(*evm.FactoryProvider)),
	wire.Bind(new(io.Closer), new(*evm.FactoryProvider)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ContractsSet,
	ConfigSet,
	InteractiveSet,
	EVMSet,
)

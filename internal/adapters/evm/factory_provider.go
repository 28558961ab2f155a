package evm

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/crowdtank-deploy/internal/domain"
	"github.com/trebuchet-org/crowdtank-deploy/internal/domain/config"
	"github.com/trebuchet-org/crowdtank-deploy/internal/domain/models"
	"github.com/trebuchet-org/crowdtank-deploy/internal/usecase"
)

// Backend is the chain access a deployment needs
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// DialFunc connects to an RPC endpoint
type DialFunc func(ctx context.Context, rpcURL string) (Backend, error)

// DialEthclient is the default DialFunc
func DialEthclient(ctx context.Context, rpcURL string) (Backend, error) {
	return ethclient.DialContext(ctx, rpcURL)
}

// FactoryProvider resolves contract names to factories backed by Foundry artifacts
// and a go-ethereum client
type FactoryProvider struct {
	cfg       *config.RuntimeConfig
	contracts usecase.ContractRepository
	networks  usecase.NetworkResolver
	selector  usecase.NetworkSelector
	progress  usecase.ProgressSink
	dial      DialFunc
	log       *slog.Logger

	mu      sync.Mutex
	backend Backend
	chainID *big.Int
}

// NewFactoryProvider creates a provider; no connection is made until GetFactory
func NewFactoryProvider(
	cfg *config.RuntimeConfig,
	contracts usecase.ContractRepository,
	networks usecase.NetworkResolver,
	selector usecase.NetworkSelector,
	progress usecase.ProgressSink,
	log *slog.Logger,
) *FactoryProvider {
	return &FactoryProvider{
		cfg:       cfg,
		contracts: contracts,
		networks:  networks,
		selector:  selector,
		progress:  progress,
		dial:      DialEthclient,
		log:       log.With("component", "FactoryProvider"),
	}
}

// GetFactory loads the artifact for name and binds it to the configured network and signer
func (p *FactoryProvider) GetFactory(ctx context.Context, name string) (usecase.Factory, error) {
	contract, err := p.contracts.GetContractByName(ctx, name)
	if err != nil {
		return nil, err
	}

	parsedABI, bytecode, err := decodeArtifact(contract)
	if err != nil {
		return nil, err
	}

	signer, err := NewSigner(p.cfg.PrivateKey)
	if err != nil {
		return nil, err
	}

	backend, chainID, err := p.connect(ctx)
	if err != nil {
		return nil, err
	}

	p.log.Debug("factory ready",
		"contract", contract.FullName(),
		"artifact", contract.ArtifactPath,
		"deployer", signer.Address().Hex(),
		"chainId", chainID)

	return &Factory{
		contract: contract,
		abi:      parsedABI,
		bytecode: bytecode,
		signer:   signer,
		backend:  backend,
		chainID:  chainID,
		log:      p.log,
	}, nil
}

// connect dials the selected network once and checks that its chain ID matches
func (p *FactoryProvider) connect(ctx context.Context) (Backend, *big.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.backend != nil {
		return p.backend, p.chainID, nil
	}

	network, err := p.network(ctx)
	if err != nil {
		return nil, nil, err
	}

	backend, err := p.dial(ctx, network.RPCURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	// If chainID was 0, use the network's chain ID
	if network.ChainID != 0 && chainID.Uint64() != network.ChainID {
		return nil, nil, fmt.Errorf("%w: expected chain %d, RPC reports %d", domain.ErrNetworkMismatch, network.ChainID, chainID.Uint64())
	}

	p.log.Debug("connected", "network", network.Name, "chainId", chainID)
	p.backend = backend
	p.chainID = chainID
	return backend, chainID, nil
}

// network resolves the configured network, asking the user when none was given
func (p *FactoryProvider) network(ctx context.Context) (*config.Network, error) {
	name := p.cfg.NetworkName
	if name == "" {
		available := p.networks.GetNetworks(ctx)
		switch {
		case len(available) == 0:
			return nil, fmt.Errorf("%w: no networks in foundry.toml [rpc_endpoints]", domain.ErrNetworkNotSpecified)
		case len(available) == 1:
			name = available[0]
		case p.cfg.NonInteractive:
			return nil, fmt.Errorf("%w: use --network to pick one of %v", domain.ErrNetworkNotSpecified, available)
		default:
			selected, err := p.selectNetwork(ctx, available)
			if err != nil {
				return nil, err
			}
			name = selected
		}
	}

	return p.networks.ResolveNetwork(ctx, name)
}

// selectNetwork prompts for a network with the spinner stopped, so the prompt
// owns the terminal until it returns
func (p *FactoryProvider) selectNetwork(ctx context.Context, available []string) (string, error) {
	p.progress.OnProgress(ctx, usecase.ProgressEvent{
		Stage:   usecase.StageResolving,
		Message: "Selecting network...",
	})

	selected, err := p.selector.SelectNetwork(ctx, available, "Select network to deploy to")
	if err != nil {
		return "", err
	}

	p.progress.OnProgress(ctx, usecase.ProgressEvent{
		Stage:   usecase.StageResolving,
		Message: fmt.Sprintf("Connecting to %s...", selected),
		Spinner: true,
	})
	return selected, nil
}

// Close releases the RPC connection, if one was made. A later GetFactory dials again.
func (p *FactoryProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if closer, ok := p.backend.(interface{ Close() }); ok {
		closer.Close()
	}
	p.backend = nil
	p.chainID = nil
	return nil
}

// decodeArtifact parses the ABI and creation code of a contract
func decodeArtifact(contract *models.Contract) (abi.ABI, []byte, error) {
	artifact := contract.Artifact
	if artifact == nil || artifact.Bytecode.IsEmpty() {
		return abi.ABI{}, nil, fmt.Errorf("%s has no creation bytecode", contract.FullName())
	}
	if artifact.Bytecode.NeedsLinking() {
		return abi.ABI{}, nil, fmt.Errorf("%s references unlinked libraries", contract.FullName())
	}

	parsedABI, err := abi.JSON(bytes.NewReader(artifact.ABI))
	if err != nil {
		return abi.ABI{}, nil, fmt.Errorf("failed to parse ABI for %s: %w", contract.FullName(), err)
	}

	if n := len(parsedABI.Constructor.Inputs); n > 0 {
		return abi.ABI{}, nil, fmt.Errorf("%s constructor expects %d arguments, deployment passes none", contract.FullName(), n)
	}

	return parsedABI, common.FromHex(artifact.Bytecode.Object), nil
}

// Factory deploys a single contract artifact
type Factory struct {
	contract *models.Contract
	abi      abi.ABI
	bytecode []byte
	signer   *Signer
	backend  Backend
	chainID  *big.Int
	log      *slog.Logger
}

// Deploy signs and broadcasts the creation transaction
func (f *Factory) Deploy(ctx context.Context) (usecase.DeploymentHandle, error) {
	opts, err := f.signer.TransactOpts(ctx, f.chainID)
	if err != nil {
		return nil, err
	}

	predicted, tx, _, err := bind.DeployContract(opts, f.abi, f.bytecode, f.backend)
	if err != nil {
		return nil, err
	}

	f.log.Debug("creation transaction sent",
		"contract", f.contract.Name,
		"tx", tx.Hash().Hex(),
		"nonce", tx.Nonce(),
		"predicted", predicted.Hex())

	return &DeploymentHandle{
		backend:   f.backend,
		tx:        tx,
		predicted: predicted,
	}, nil
}

// DeploymentHandle tracks one submitted creation transaction
type DeploymentHandle struct {
	backend   bind.DeployBackend
	tx        *types.Transaction
	predicted common.Address

	confirmed bool
	target    common.Address
}

// WaitForDeployment blocks until the transaction is mined and code exists at the new address
func (h *DeploymentHandle) WaitForDeployment(ctx context.Context) error {
	address, err := bind.WaitDeployed(ctx, h.backend, h.tx)
	if err != nil {
		return err
	}
	h.target = address
	h.confirmed = true
	return nil
}

// AddressFields reports the confirmed address as Target and the CREATE address
// predicted at submission as the legacy Address
func (h *DeploymentHandle) AddressFields() models.AddressFields {
	fields := models.AddressFields{Address: h.predicted.Hex()}
	if h.confirmed {
		fields.Target = h.target.Hex()
	}
	return fields
}

// TxHash returns the creation transaction hash
func (h *DeploymentHandle) TxHash() string {
	return h.tx.Hash().Hex()
}

// Ensure the adapters implement the interfaces
var (
	_ usecase.FactoryProvider  = (*FactoryProvider)(nil)
	_ usecase.Factory          = (*Factory)(nil)
	_ usecase.DeploymentHandle = (*DeploymentHandle)(nil)
)

package contracts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/trebuchet-org/crowdtank-deploy/internal/domain"
	"github.com/trebuchet-org/crowdtank-deploy/internal/domain/config"
	"github.com/trebuchet-org/crowdtank-deploy/internal/domain/models"
	"github.com/trebuchet-org/crowdtank-deploy/internal/usecase"
)

// BuildFunc compiles the project so the artifact directory is current
type BuildFunc func(ctx context.Context, projectRoot string) error

// Repository discovers and indexes contracts from Foundry artifacts
type Repository struct {
	projectRoot   string
	outDir        string
	skipBuild     bool
	build         BuildFunc
	contractNames map[string][]*models.Contract // key: contract name, value: all contracts with that name
	log           *slog.Logger
	mu            sync.Mutex
}

// NewRepository creates a new contract repository
func NewRepository(cfg *config.RuntimeConfig, log *slog.Logger) *Repository {
	return &Repository{
		projectRoot: cfg.ProjectRoot,
		outDir:      cfg.OutDir,
		skipBuild:   cfg.SkipBuild,
		build:       ForgeBuild,
		log:         log.With("component", "ContractRepository"),
	}
}

// GetContractByName returns the single artifact compiled for name. Scripts and
// tests are ignored; several matching sources are an error.
func (r *Repository) GetContractByName(ctx context.Context, name string) (*models.Contract, error) {
	if err := r.index(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	matches := lo.Filter(r.contractNames[name], func(c *models.Contract, _ int) bool {
		return !isAuxiliarySource(c.Path)
	})

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: no artifact for %s in %s", domain.ErrContractNotFound, name, r.outDir)
	case 1:
		return matches[0], nil
	default:
		return nil, domain.AmbiguousContractErr{Name: name, Matches: matches}
	}
}

// index builds the project (unless disabled) and walks the artifact directory once
func (r *Repository) index(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.contractNames != nil {
		return nil
	}

	if !r.skipBuild {
		r.log.Debug("building contracts", "root", r.projectRoot)
		if err := r.build(ctx, r.projectRoot); err != nil {
			return fmt.Errorf("failed to build contracts: %w", err)
		}
	}

	if _, err := os.Stat(r.outDir); os.IsNotExist(err) {
		return fmt.Errorf("artifact directory %s not found", r.outDir)
	}

	contractNames := make(map[string][]*models.Contract)
	err := filepath.Walk(r.outDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".json" {
			return nil
		}

		contract, err := r.processArtifact(path)
		if err != nil {
			return err
		}
		if contract != nil {
			contractNames[contract.Name] = append(contractNames[contract.Name], contract)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to index artifacts: %w", err)
	}

	r.contractNames = contractNames
	return nil
}

// processArtifact parses a single artifact file; nil means the file is not a deployable contract
func (r *Repository) processArtifact(artifactPath string) (*models.Contract, error) {
	data, err := os.ReadFile(artifactPath)
	if err != nil {
		return nil, err
	}

	var artifact models.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		// Skip invalid artifacts
		return nil, nil
	}

	if artifact.Bytecode.IsEmpty() {
		return nil, nil
	}

	// There should only be one compilation target per artifact
	var contractName, sourceName string
	for source, contract := range artifact.Metadata.Settings.CompilationTarget {
		sourceName = source
		contractName = contract
		break
	}
	if contractName == "" || sourceName == "" {
		return nil, nil
	}

	relArtifactPath, _ := filepath.Rel(r.projectRoot, artifactPath)
	r.log.Debug("indexed artifact", "contract", contractName, "source", sourceName, "artifact", relArtifactPath)

	return &models.Contract{
		Name:         contractName,
		Path:         sourceName,
		ArtifactPath: relArtifactPath,
		Artifact:     &artifact,
	}, nil
}

// isAuxiliarySource reports whether a source belongs to Foundry scripts or tests
func isAuxiliarySource(path string) bool {
	return strings.HasPrefix(path, "script/") ||
		strings.HasPrefix(path, "test/") ||
		strings.HasSuffix(path, ".s.sol") ||
		strings.HasSuffix(path, ".t.sol")
}

// ForgeBuild runs forge build in the project root
func ForgeBuild(ctx context.Context, projectRoot string) error {
	cmd := exec.CommandContext(ctx, "forge", "build")
	cmd.Dir = projectRoot

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("forge build failed: %w\nOutput: %s", err, string(output))
	}

	return nil
}

// Ensure the repository implements the interface
var _ usecase.ContractRepository = (*Repository)(nil)

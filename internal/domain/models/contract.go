package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ContractReference identifies the contract definition a run deploys
type ContractReference struct {
	Name string `json:"name"`
}

func (r ContractReference) String() string {
	return r.Name
}

// Contract represents a compiled contract discovered in the Foundry output directory
type Contract struct {
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	ArtifactPath string    `json:"artifactPath,omitempty"`
	Artifact     *Artifact `json:"artifact,omitempty"`
}

// FullName returns the "path:name" form used to disambiguate contracts
func (c *Contract) FullName() string {
	return fmt.Sprintf("%s:%s", c.Path, c.Name)
}

// BytecodeObject represents bytecode information in a Foundry artifact
type BytecodeObject struct {
	Object         string         `json:"object"`
	LinkReferences map[string]any `json:"linkReferences"`
}

// IsEmpty reports whether the artifact carries no creation code (interfaces, abstract contracts)
func (b BytecodeObject) IsEmpty() bool {
	return b.Object == "" || b.Object == "0x"
}

// NeedsLinking reports whether the bytecode still holds library placeholders
func (b BytecodeObject) NeedsLinking() bool {
	return len(b.LinkReferences) > 0 || strings.Contains(b.Object, "__$")
}

// Artifact represents a Foundry compilation artifact
type Artifact struct {
	ABI      json.RawMessage  `json:"abi"`
	Bytecode BytecodeObject   `json:"bytecode"`
	Metadata ArtifactMetadata `json:"metadata"`
}

// ArtifactMetadata represents the metadata section of a Foundry artifact
type ArtifactMetadata struct {
	Compiler struct {
		Version string `json:"version"`
	} `json:"compiler"`
	Language string `json:"language"`
	Settings struct {
		CompilationTarget map[string]string `json:"compilationTarget"`
	} `json:"settings"`
}

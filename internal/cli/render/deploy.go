package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/crowdtank-deploy/internal/domain/models"
)

// DeployRenderer prints the single success line of a deployment
type DeployRenderer struct {
	out io.Writer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out}
}

// Render writes "<Contract> deployed to: <address>"
func (r *DeployRenderer) Render(result *models.DeploymentResult) error {
	_, err := fmt.Fprintf(r.out, "%s deployed to: %s\n", result.Contract, result.Address)
	return err
}

var _ Renderer[*models.DeploymentResult] = (*DeployRenderer)(nil)

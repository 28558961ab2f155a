package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/crowdtank-deploy/internal/domain/models"
	"github.com/trebuchet-org/crowdtank-deploy/internal/usecase"
)

func init() {
	color.NoColor = true
}

func TestDeployRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewDeployRenderer(&buf)

	err := r.Render(&models.DeploymentResult{
		Contract: models.ContractReference{Name: "CrowdTank"},
		Address:  "0xABC123",
	})
	require.NoError(t, err)
	assert.Equal(t, "CrowdTank deployed to: 0xABC123\n", buf.String())
}

func TestNetworksRenderer(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewNetworksRenderer(&buf, false).Render(&usecase.ListNetworksResult{}))
		assert.Equal(t, "No networks configured in foundry.toml [rpc_endpoints]\n", buf.String())
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		result := &usecase.ListNetworksResult{Networks: []usecase.NetworkStatus{
			{Name: "mainnet", ChainID: 1, ExplorerURL: "https://etherscan.io"},
			{Name: "broken", Error: errors.New("connection refused")},
		}}

		require.NoError(t, NewNetworksRenderer(&buf, false).Render(result))
		out := buf.String()
		assert.Contains(t, out, "NETWORK")
		assert.Contains(t, out, "mainnet")
		assert.Contains(t, out, "https://etherscan.io")
		assert.Contains(t, out, "Error: connection refused")
	})
}

func TestFormatError(t *testing.T) {
	err := pkgerrors.WithStack(errors.New("failed to resolve CrowdTank factory: boom"))

	out := FormatError(err)
	assert.True(t, strings.HasPrefix(out, "Error: failed to resolve CrowdTank factory: boom\n"))
	assert.Contains(t, out, "TestFormatError")

	// Errors without a stack stay on one line
	assert.Equal(t, "Error: unknown command", FormatError(errors.New("unknown command")))
}

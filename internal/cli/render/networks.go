package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/crowdtank-deploy/internal/usecase"
)

var (
	networkNameStyle  = color.New(color.Bold)
	networkErrorStyle = color.New(color.FgRed)
	explorerStyle     = color.New(color.Faint)
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out   io.Writer
	color bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, color bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:   out,
		color: color,
	}
}

// Render renders the configured networks as a table
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		_, err := fmt.Fprintln(r.out, "No networks configured in foundry.toml [rpc_endpoints]")
		return err
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignLeft},
	})
	t.AppendHeader(table.Row{"NETWORK", "CHAIN ID", "EXPLORER"})

	for _, network := range result.Networks {
		if network.Error != nil {
			t.AppendRow(table.Row{r.style(networkNameStyle, network.Name), "-", r.style(networkErrorStyle, "Error: "+network.Error.Error())})
			continue
		}
		t.AppendRow(table.Row{
			r.style(networkNameStyle, network.Name),
			strconv.FormatUint(network.ChainID, 10),
			r.style(explorerStyle, network.ExplorerURL),
		})
	}

	_, err := fmt.Fprintln(r.out, t.Render())
	return err
}

func (r *NetworksRenderer) style(c *color.Color, s string) string {
	if !r.color || s == "" {
		return s
	}
	return c.Sprint(s)
}

var _ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/crowdtank-deploy/internal/adapters/progress"
	"github.com/trebuchet-org/crowdtank-deploy/internal/app"
	"github.com/trebuchet-org/crowdtank-deploy/internal/cli/render"
	"github.com/trebuchet-org/crowdtank-deploy/internal/config"
	"github.com/trebuchet-org/crowdtank-deploy/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// AppFactory builds the application for one invocation
type AppFactory func(v *viper.Viper, sink usecase.ProgressSink) (*app.App, error)

// Execute runs the CLI and returns the process exit code
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, NewRootCmd(), os.Stderr)
}

func run(ctx context.Context, rootCmd *cobra.Command, stderr io.Writer) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, render.FormatError(err))
		return 1
	}
	return 0
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(app.InitApp)
}

func newRootCmd(initApp AppFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "crowdtank-deploy",
		Short: "Deploy the CrowdTank contract",
		Long: `Deploys the CrowdTank contract from the Foundry artifacts of the current project.

The contract is compiled with forge, deployed with no constructor arguments and the
command waits for the creation transaction to be mined. On success a single line
"CrowdTank deployed to: <address>" is printed to stdout.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			v := config.SetupViper(cmd)

			appInstance, err := initApp(v, newProgressSink(v))
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
		RunE: runDeploy,
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network from foundry.toml [rpc_endpoints] to deploy to")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.Flags().Bool("skip-build", false, "Use existing artifacts instead of running forge build")
	rootCmd.Flags().Duration("timeout", 0, "Abort the deployment after this long (0 waits indefinitely)")

	rootCmd.AddCommand(NewNetworksCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

func runDeploy(cmd *cobra.Command, args []string) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	result, err := app.DeployContract.Run(cmd.Context())
	if err != nil {
		return err
	}

	return render.NewDeployRenderer(cmd.OutOrStdout()).Render(result)
}

// newProgressSink shows a spinner only for interactive terminals
func newProgressSink(v *viper.Viper) usecase.ProgressSink {
	if v.GetBool("non_interactive") || !config.IsTerminal() {
		return progress.NewNopSink()
	}
	return progress.NewSpinnerProgressReporter(os.Stderr)
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	if cmd.Context() == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

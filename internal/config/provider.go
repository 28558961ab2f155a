package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/crowdtank-deploy/internal/domain/config"
)

// DataDirName is the per-project directory holding local settings
const DataDirName = ".crowdtank"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}
	if !filepath.IsAbs(projectRoot) {
		abs, err := filepath.Abs(projectRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve project root: %w", err)
		}
		projectRoot = abs
	}

	dataDir := filepath.Join(projectRoot, DataDirName)
	if err := readLocalConfig(v, dataDir); err != nil {
		return nil, err
	}

	// .env must be loaded before foundry.toml so ${VAR} references expand
	LoadEnvFiles(projectRoot)

	foundryConfig, err := LoadFoundryConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundry config: %w", err)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		OutDir:         filepath.Join(projectRoot, foundryConfig.OutPath()),
		NetworkName:    v.GetString("network"),
		PrivateKey:     privateKey(v),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive") || !IsTerminal(),
		SkipBuild:      v.GetBool("skip_build"),
		Timeout:        v.GetDuration("timeout"),
		FoundryConfig:  foundryConfig,
	}

	return cfg, nil
}

// FindProjectRoot walks up from current directory to find foundry.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		foundryToml := filepath.Join(dir, "foundry.toml")
		if _, err := os.Stat(foundryToml); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Foundry project (foundry.toml not found)")
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("CROWDTANK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("timeout", "0s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("skip_build", false)

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})

	return v
}

// IsTerminal reports whether both stdin and stderr are attached to a terminal
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stderr.Fd())
}

// readLocalConfig merges .crowdtank/config.local.json into v when present
func readLocalConfig(v *viper.Viper, dataDir string) error {
	v.SetConfigFile(filepath.Join(dataDir, "config.local.json"))
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read local config: %w", err)
	}
	return nil
}

// privateKey returns the deployer key, falling back to PRIVATE_KEY which Foundry
// projects commonly keep in .env
func privateKey(v *viper.Viper) string {
	if key := v.GetString("private_key"); key != "" {
		return key
	}
	return os.Getenv("PRIVATE_KEY")
}

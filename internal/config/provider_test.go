package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestProvider(t *testing.T) {
	t.Run("builds runtime config from project files", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "foundry.toml"), `[profile.default]
src = "src"
out = "artifacts"

[rpc_endpoints]
sepolia = "${CROWDTANK_TEST_SEPOLIA_RPC}"
local = "http://127.0.0.1:8545"
`)
		writeFile(t, filepath.Join(root, ".env"), "CROWDTANK_TEST_SEPOLIA_RPC=https://rpc.sepolia.example\n")
		t.Cleanup(func() { os.Unsetenv("CROWDTANK_TEST_SEPOLIA_RPC") })

		v := viper.New()
		v.Set("project_root", root)
		v.Set("network", "sepolia")
		v.Set("private_key", "0xabc")
		v.Set("timeout", "90s")
		v.Set("non_interactive", true)

		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, root, cfg.ProjectRoot)
		assert.Equal(t, filepath.Join(root, "artifacts"), cfg.OutDir)
		assert.Equal(t, "sepolia", cfg.NetworkName)
		assert.Equal(t, "0xabc", cfg.PrivateKey)
		assert.Equal(t, 90*time.Second, cfg.Timeout)
		assert.True(t, cfg.NonInteractive)
		assert.Equal(t, "https://rpc.sepolia.example", cfg.FoundryConfig.RpcEndpoints["sepolia"])
		assert.Equal(t, "${CROWDTANK_TEST_SEPOLIA_RPC}", cfg.FoundryConfig.RawRpcEndpoints["sepolia"])
	})

	t.Run("reads local config file", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "foundry.toml"), "[rpc_endpoints]\nlocal = \"http://127.0.0.1:8545\"\n")
		writeFile(t, filepath.Join(root, DataDirName, "config.local.json"), `{"network": "local", "skip_build": true}`)

		v := viper.New()
		v.Set("project_root", root)

		cfg, err := Provider(v)
		require.NoError(t, err)
		assert.Equal(t, "local", cfg.NetworkName)
		assert.True(t, cfg.SkipBuild)
		assert.Equal(t, filepath.Join(root, "out"), cfg.OutDir)
	})

	t.Run("falls back to PRIVATE_KEY", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "foundry.toml"), "")
		t.Setenv("PRIVATE_KEY", "0xfeed")

		v := viper.New()
		v.Set("project_root", root)

		cfg, err := Provider(v)
		require.NoError(t, err)
		assert.Equal(t, "0xfeed", cfg.PrivateKey)
		assert.Empty(t, cfg.FoundryConfig.RpcEndpoints)
	})

	t.Run("fails without foundry.toml", func(t *testing.T) {
		v := viper.New()
		v.Set("project_root", t.TempDir())

		_, err := Provider(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load foundry config")
	})
}

package interactive

import (
	"context"
	"errors"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/crowdtank-deploy/internal/domain"
	"github.com/trebuchet-org/crowdtank-deploy/internal/domain/config"
)

func TestSelectNetwork(t *testing.T) {
	ctx := context.Background()
	networks := []string{"anvil", "mainnet", "sepolia"}

	t.Run("non-interactive refuses to prompt", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{NonInteractive: true})
		_, err := s.SelectNetwork(ctx, networks, "pick")
		assert.ErrorIs(t, err, domain.ErrNonInteractive)
	})

	t.Run("single option is returned without prompting", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{})
		s.run = func(promptui.Select) (int, error) {
			t.Fatal("prompt should not run")
			return 0, nil
		}
		name, err := s.SelectNetwork(ctx, []string{"anvil"}, "pick")
		require.NoError(t, err)
		assert.Equal(t, "anvil", name)
	})

	t.Run("empty list", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{})
		_, err := s.SelectNetwork(ctx, nil, "pick")
		assert.Error(t, err)
	})

	t.Run("returns the chosen network", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{})
		s.run = func(p promptui.Select) (int, error) {
			assert.Equal(t, "pick", p.Label)
			return 2, nil
		}
		name, err := s.SelectNetwork(ctx, networks, "pick")
		require.NoError(t, err)
		assert.Equal(t, "sepolia", name)
	})

	t.Run("cancelled prompt", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{})
		s.run = func(promptui.Select) (int, error) {
			return -1, promptui.ErrInterrupt
		}
		_, err := s.SelectNetwork(ctx, networks, "pick")
		require.Error(t, err)
		assert.True(t, errors.Is(err, promptui.ErrInterrupt))
		assert.Contains(t, err.Error(), "selection cancelled")
	})
}

func TestFuzzySearch(t *testing.T) {
	items := []string{"mainnet", "sepolia", "base-sepolia"}
	search := createFuzzySearchFunc(items)

	assert.True(t, search("", 0))
	assert.True(t, search("MAIN", 0))
	assert.True(t, search("spl", 1))
	assert.False(t, search("xyz", 2))
}

package cli

import (
	"fmt"
	"strings"

	"github.com/hossam-labs/hossam-react-app/internal/config"
	"github.com/spf13/cobra"
)

// Settings live in ~/.hossam/config.yaml; see the config package for keys.

func runConfigList(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	for _, key := range config.Keys() {
		fmt.Fprintf(out, "%s = %s\n", key, config.Get(key))
	}
	return nil
}

func runConfigGet(cmd *cobra.Command) error {
	key, _ := cmd.Flags().GetString("config-get")
	if !config.IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(config.Keys(), ", "))
	}
	fmt.Fprintln(cmd.OutOrStdout(), config.Get(key))
	return nil
}

func runConfigSet(cmd *cobra.Command) error {
	pair, _ := cmd.Flags().GetString("config-set")
	key, value, ok := strings.Cut(pair, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("--config-set expects KEY=VALUE, got %q", pair)
	}
	if err := config.Set(key, value); err != nil {
		return fmt.Errorf("setting config key %q: %w", key, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command) error {
	fmt.Fprintln(cmd.OutOrStdout(), config.FilePath())
	return nil
}

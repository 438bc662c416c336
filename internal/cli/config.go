package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/gradtop/internal/config"
	"github.com/rileyhilliard/gradtop/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Print the configuration gradtop would run with, after the config file
and GRADTOP_* environment overrides are applied.

Config is looked up in this order:
  1. --config
  2. .gradtop.yaml in this directory or a parent (up to the git root)
  3. ~/.config/gradtop/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig(cmd.OutOrStdout(), configFlag)
	},
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List config keys and their current values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listConfigKeys(cmd.OutOrStdout(), configFlag)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Long: `Write one value into the config file, keeping the rest of the file
(comments included) as it is. The result must validate before it's saved.

Without a config file, .gradtop.yaml is created in the current directory.

Examples:
  gradtop config set window.capacity 60
  gradtop config set render.interval 33ms
  gradtop config set chart.value_title "Val loss"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setConfigValue(cmd.OutOrStdout(), configFlag, args[0], args[1])
	},
}

func init() {
	configCmd.AddCommand(configKeysCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func showConfig(w io.Writer, explicit string) error {
	cfg, path, err := config.LoadOrDefault(explicit)
	if err != nil {
		return err
	}

	source := path
	if source == "" {
		source = "defaults (no config file found)"
	}
	fmt.Fprintln(w, ui.MutedStyle().Render("# source: "+source))

	out, err := config.Encode(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	if err != nil {
		return err
	}

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintln(w)
		fmt.Fprint(w, err.Error())
	}
	return nil
}

func listConfigKeys(w io.Writer, explicit string) error {
	cfg, _, err := config.LoadOrDefault(explicit)
	if err != nil {
		return err
	}

	settings, err := config.Settings(cfg)
	if err != nil {
		return err
	}

	rows := make([][]string, len(settings))
	keyWidth, valueWidth := len("KEY"), len("VALUE")
	for i, s := range settings {
		rows[i] = []string{s.Key, s.Value}
		keyWidth = max(keyWidth, len(s.Key))
		valueWidth = max(valueWidth, len(s.Value))
	}

	fmt.Fprintln(w, ui.RenderSimpleTable([]ui.TableColumn{
		{Title: "KEY", Width: keyWidth},
		{Title: "VALUE", Width: valueWidth},
	}, rows))
	return nil
}

func setConfigValue(w io.Writer, explicit, key, value string) error {
	path, err := config.Find(explicit)
	if err != nil {
		return err
	}
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		path = filepath.Join(cwd, config.ConfigFileName)
	}

	if err := config.SetValue(path, key, value); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s %s = %s %s\n",
		ui.SuccessStyle().Render(ui.SymbolSuccess), key, value,
		ui.MutedStyle().Render("("+path+")"))
	return nil
}

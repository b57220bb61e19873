package evalgrid

import (
	"github.com/k0kubun/pp"
	"github.com/mwiater/evalgrid/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var showConfigRaw bool

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overriden by flags accordingly. With --raw, the config file is dumped as read from disk, before flags are applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showConfigRaw {
			cfg, err := appconfig.Load(cfgFile)
			if err != nil {
				return err
			}
			_, err = pp.Fprintln(cmd.OutOrStdout(), cfg)
			return err
		}

		fallback := appconfig.Config{
			Input:          viper.GetString("input"),
			Title:          viper.GetString("title"),
			TimeoutSeconds: viper.GetInt("timeout"),
			LogFile:        viper.GetString("logFile"),
			Debug:          viper.GetBool("debug"),
			Strict:         viper.GetBool("strict"),
		}
		file := ""
		if currentConfig != nil {
			file = currentConfig.ConfigPath
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), file, currentConfig, fallback)
		return nil
	},
}

func init() {
	showConfigCmd.Flags().BoolVar(&showConfigRaw, "raw", false, "dump the config file as read from disk")
	showCmd.AddCommand(showConfigCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jacksliwoski/anti-ai-ai-club/internal/config"
	"github.com/jacksliwoski/anti-ai-ai-club/internal/logger"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "antiai",
		Short: "antiai - adversarial audio watermarking",
		Long:  "antiai: protect audio against ML training scrapes and verify existing protection.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				viper.SetConfigFile(cfgFile)
			} else {
				viper.SetConfigFile("config.yaml")
			}
			if err := viper.ReadInConfig(); err != nil {
				// Config is optional for CLI flows; defaults and flags cover it.
				if cfgFile != "" {
					fmt.Fprintf(os.Stderr, "Warning: could not read config (%v). Using defaults and flags.\n", err)
				}
			}
			if err := config.Load(viper.GetViper()); err != nil {
				return err
			}
			if err := logger.InitLogger(config.Get().Logging.Level); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			return nil
		},
	}
)

func init() {
	cobra.OnInitialize()
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.AddCommand(protectCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

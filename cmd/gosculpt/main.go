package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gosculpt/internal/config"
	"github.com/philipparndt/gosculpt/internal/logger"
	"github.com/philipparndt/gosculpt/version"
)

var (
	cfg      *config.Config
	cfgFile  string
	logLevel string
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:   "gosculpt",
	Short: "Soft-selection mesh deformation for STL files",
	Long: `gosculpt applies proximity-weighted soft-selection deformation to STL
meshes: dragging an anchor vertex pulls a smooth, distance-attenuated
neighborhood of geometry along with it. Supports single drags, recorded
drag scripts, and a watch mode that re-runs the pipeline on file changes.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if logFile != "" {
			cfg.Logging.LogFile = logFile
		}
		logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./gosculpt.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file (rotated)")
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"
	tmos "github.com/tendermint/tendermint/libs/os"

	"github.com/dymensionxyz/tonshard/config"
)

var InitFilesCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default tonshard config to the home directory",
	Args:  cobra.NoArgs,
	RunE:  initFiles,
}

func initFiles(cmd *cobra.Command, args []string) error {
	homeDir := viper.GetString(cli.HomeFlag)
	path := config.ConfigFilePath(homeDir)
	if tmos.FileExists(path) {
		logger.Info("Found config file.", "path", path)
		return nil
	}

	config.EnsureRoot(homeDir, config.DefaultConfig(homeDir))
	logger.Info("Generated config file.", "path", path)
	return nil
}

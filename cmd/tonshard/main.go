package main

import (
	"os"
	"path/filepath"

	"github.com/tendermint/tendermint/libs/cli"

	"github.com/dymensionxyz/tonshard/cmd/tonshard/commands"
	"github.com/dymensionxyz/tonshard/config"
)

func main() {
	rootCmd := commands.NewRootCmd()
	rootCmd.AddCommand(cli.NewCompletionCmd(rootCmd, true))

	cmd := cli.PrepareBaseCmd(rootCmd, "TS", os.ExpandEnv(filepath.Join("$HOME", config.DefaultTonshardDir)))
	// cobra has already printed the error
	if err := cmd.Command.Execute(); err != nil {
		os.Exit(commands.ExitCode(err))
	}
}

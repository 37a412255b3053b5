/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package slang

import (
	"fmt"
	"os"

	"github.com/kylebrw/slang/cmd/slang/check"
	"github.com/kylebrw/slang/cmd/slang/expand"
	"github.com/kylebrw/slang/cmd/slang/repl"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "slang",
		Short: "Slang is a macro expander for simple language abstractions",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		Version: Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the slang config file (default ./config.toml)")

	// Bind viper config to the root flags
	viper.BindPFlag("slang.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("slang.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("slang version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	// Bind viper flags to ENV variables
	viper.AutomaticEnv()

	// Register commands on the root binary command
	expand.Command.Version = rootCmd.Version
	check.Command.Version = rootCmd.Version
	repl.Command.Version = rootCmd.Version
	rootCmd.AddCommand(expand.Command)
	rootCmd.AddCommand(check.Command)
	rootCmd.AddCommand(repl.Command)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}

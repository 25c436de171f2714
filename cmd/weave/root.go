// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/weave-lang/weave/internal/config"
)

var argsRoot struct {
	logFile struct {
		name string
		fd   *os.File
	}
	showVersion bool
	triviaMode  string
	cacheDB     string
	noColor     bool
}

var cmdRoot = &cobra.Command{
	Use:   "weave",
	Short: "Root command for the weave tokenizer",
	Long:  `Tokenize source files and report their tokens and diagnostics.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if argsRoot.triviaMode != "" {
			globalConfig.TriviaMode = argsRoot.triviaMode
		}
		if argsRoot.cacheDB != "" {
			globalConfig.Cache.Path = argsRoot.cacheDB
		}
		if argsRoot.logFile.name != "" {
			fd, err := os.OpenFile(argsRoot.logFile.name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
			if err != nil {
				return err
			}
			argsRoot.logFile.fd = fd
			log.SetOutput(argsRoot.logFile.fd)
			argsRoot.showVersion = true
		}
		if argsRoot.showVersion {
			log.Printf("version: %s\n", version)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if argsRoot.logFile.fd != nil {
			if err := argsRoot.logFile.fd.Close(); err != nil {
				return err
			}
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute wires the subcommand tree and runs the root command.
func Execute(cfg *config.Config) error {
	cmdRoot.PersistentFlags().BoolVar(&argsRoot.showVersion, "show-version", false, "show version")
	cmdRoot.PersistentFlags().StringVar(&argsRoot.logFile.name, "log-file", "", "set log file")
	cmdRoot.PersistentFlags().StringVar(&argsRoot.triviaMode, "trivia", "", "override trivia mode (none, documentation, all)")
	cmdRoot.PersistentFlags().StringVar(&argsRoot.cacheDB, "cache", "", "override lex-result cache path")
	cmdRoot.PersistentFlags().BoolVar(&argsRoot.noColor, "no-color", false, "disable colorized diagnostic output")

	cmdRoot.AddCommand(cmdTokenize)
	cmdTokenize.Flags().BoolVar(&argsTokenize.showTrivia, "show-trivia", false, "print leading and trailing trivia for each token")
	cmdTokenize.Flags().BoolVar(&argsTokenize.noCache, "no-cache", false, "skip the lex-result cache")

	cmdRoot.AddCommand(cmdVersion)

	if cfg == nil {
		globalConfig = config.Default()
	} else {
		globalConfig = cfg
	}

	return cmdRoot.Execute()
}

// Copyright 2025 The SeedCheck Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the passphrase validation server and CLI [DBG] application.

SeedCheck decides whether a typed secret phrase is a valid mnemonic: it has
the expected number of words, every word is on the word list and the BIP39
checksum holds. When a word is not on the list, the closest listed word is
suggested. It can operate as a MessagePack IPC server for integration with
wallet frontends, or as a CLI application for testing and debugging.

# Usage

Start the server with default settings:

	seedcheck

Use a custom word list and enable debug mode:

	seedcheck -list /path/to/words.txt -d

Run in CLI mode for interactive testing:

	seedcheck -c

Print a freshly generated passphrase:

	seedcheck -gen

# Configuration

Runtime configuration is managed through a TOML file:

	[validator]
	word_count = 12
	min_suggest_len = 2
	max_suggest_len = 8
	checksum = true

	[dict]
	path = ""
	max_distance = 3

	[server]
	max_phrase_len = 512
	max_limit = 64

	[cli]
	default_limit = 8

The config file is automatically created with defaults if it doesn't exist.
Server mode reloads configuration periodically without restart.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout, one response per
request. See package server for the message shapes:

	{"id": "req1", "action": "validate", "p": "legal winner thank ..."}
	{"id": "req1", "v": true, "k": "valid", "t": 42}

# Command Line Flags

	-config string
	    Path to a config file (default [UserConfigDir]/seedcheck/config.toml)
	-list string
	    Plain text word list, one word per line (default: BIP39 English)
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-gen
	    Print a generated passphrase and exit
	-copy
	    With -gen, copy the passphrase to the clipboard instead of printing it
	-version
	    Show current version

Logs go to stderr; stdout carries only protocol messages or CLI output.
*/
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/bastiangx/seedcheck/internal/cli"
	"github.com/bastiangx/seedcheck/pkg/config"
	"github.com/bastiangx/seedcheck/pkg/mnemonic"
	"github.com/bastiangx/seedcheck/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0-beta"
	AppName = "seedcheck"
	gh      = "https://github.com/bastiangx/seedcheck"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary and validator, then hands off to the server or CLI.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configFile := flag.String("config", "", "Path to a custom config file")
	listFile := flag.String("list", "", "Plain text word list (overrides [dict] path)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	genMode := flag.Bool("gen", false, "Print a generated passphrase and exit")
	copyMode := flag.Bool("copy", false, "With -gen, copy the passphrase to the clipboard instead of printing it")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, configPath, err := config.LoadConfigWithPriority(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(configPath))

	if *listFile != "" {
		appConfig.Dict.Path = *listFile
		resolved, err := appConfig.ResolveListPath()
		if err != nil {
			log.Fatalf("Failed to resolve word list: %v", err)
		}
		appConfig.Dict.Path = resolved
	}

	validator, err := appConfig.NewValidator()
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	log.Debug("Validator ready",
		"words", validator.Dictionary().Len(),
		"word_count", validator.WordCount(),
		"checksum", appConfig.Validator.Checksum)

	if *genMode {
		phrase, err := mnemonic.Generate(validator.Dictionary(), validator.WordCount(), rand.Reader)
		if err != nil {
			log.Fatalf("Failed to generate passphrase: %v", err)
		}
		if *copyMode {
			if err := clipboard.WriteAll(phrase); err != nil {
				log.Fatalf("Failed to copy passphrase to clipboard: %v", err)
			}
			fmt.Fprintf(os.Stderr, "%d word passphrase copied to clipboard\n", validator.WordCount())
			return
		}
		fmt.Println(phrase)
		return
	}

	// CLI would be mainly used for testing and dbg purposes.
	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(validator, appConfig.CLI.DefaultLimit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(validator, appConfig, configPath)
	if *listFile != "" {
		srv.SetListOverride(appConfig.Dict.Path)
	}

	showStartupInfo(appConfig.Dict.Path, validator.Dictionary().Len())

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// printVersion shows the styled version banner on stderr.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ SeedCheck ] Checks mnemonic passphrases before they are used")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(listPath string, words int) {
	if listPath == "" {
		listPath = "builtin BIP39 English"
	}
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" SeedCheck ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("word list: ( %s, %d words )", listPath, words)
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/bethropolis/kilo/internal/app"
	"github.com/bethropolis/kilo/internal/config"
	"github.com/bethropolis/kilo/internal/logger"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := config.NewFlags(config.AppName)
	rest, err := flags.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return 0
	}

	cfg, cfgErr := config.Load(*flags.ConfigFilePath, flags)

	out, closeLog, err := logger.OpenOutput(cfg.Logger.LogFilePath, config.DefaultLogFileName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeLog()
	logger.Init(cfg.Logger, out)
	if cfgErr != nil {
		logger.Warnf("using default configuration: %v", cfgErr)
	}

	filePath := ""
	if len(rest) > 0 {
		filePath = rest[0]
	}
	logger.Infof("starting %s %s, file %q", config.AppName, version, filePath)

	editorApp, err := app.NewApp(cfg, filePath)
	if err != nil {
		logger.Errorf("error initializing application: %v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := editorApp.Run(); err != nil {
		logger.Errorf("application exited with error: %v", err)
		return 1
	}
	return 0
}

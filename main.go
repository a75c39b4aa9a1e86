package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ogier/pflag"

	"github.com/juruen/sketchpad/config"
	"github.com/juruen/sketchpad/log"
	"github.com/juruen/sketchpad/process"
	"github.com/juruen/sketchpad/shell"
)

const usageText = `Usage: sketchpad [options] [command] [args]

Commands:
  shell [cmd args]        interactive drawing shell (default), or run one shell command
  batch [-o dir] files... submit stroke files and write <name>_matrix.png
  serve                   host the browser page and forward submissions

Options:
`

func usage() {
	fmt.Fprint(os.Stderr, usageText)
	pflag.PrintDefaults()
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		var err error
		if path, err = config.ConfigPath(); err != nil {
			return config.Config{}, err
		}
	}
	return config.Load(path)
}

func newClient(cfg config.Config) (*process.Client, error) {
	return process.NewClient(cfg.Server, nil,
		process.WithEndpoint(cfg.Endpoint),
		process.WithSecret(cfg.Secret),
		process.WithTimeout(cfg.Timeout),
	)
}

func main() {
	log.InitLog()

	cfgPath := pflag.StringP("config", "c", "", "config file (default $SKETCHPAD_CONFIG or ~/.sketchpad.yaml)")
	server := pflag.StringP("server", "s", "", "processing service base url")
	listen := pflag.StringP("listen", "l", "", "listen address for serve")
	jobs := pflag.Int64P("jobs", "j", 0, "concurrent submissions for batch")
	outDir := pflag.StringP("output", "o", ".", "output directory for batch")
	pflag.Usage = usage
	pflag.CommandLine.SetInterspersed(false)
	pflag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Error.Fatalln(err)
	}
	if *server != "" {
		cfg.Server = *server
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *jobs > 0 {
		cfg.BatchSize = *jobs
	}

	command := "shell"
	args := pflag.Args()
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch command {
	case "shell", "batch":
		var client *process.Client
		if client, err = newClient(cfg); err != nil {
			break
		}
		if command == "shell" {
			err = shell.RunShell(shell.NewShellCtxt(cfg, client), args)
		} else {
			err = runBatch(ctx, cfg, client, args, *outDir)
		}
	case "serve":
		err = runServerMode(ctx, cfg)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

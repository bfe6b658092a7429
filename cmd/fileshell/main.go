package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/GriffinCanCode/fileshell/internal/codec"
	"github.com/GriffinCanCode/fileshell/internal/config"
	"github.com/GriffinCanCode/fileshell/internal/logging"
	"github.com/GriffinCanCode/fileshell/internal/providers/filesystem"
	"github.com/GriffinCanCode/fileshell/internal/providers/system"
	"github.com/GriffinCanCode/fileshell/internal/shared/paths"
	"github.com/GriffinCanCode/fileshell/internal/shared/types"
	"github.com/GriffinCanCode/fileshell/internal/shell"
	"github.com/GriffinCanCode/fileshell/internal/transfer"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func main() {
	dir := flag.String("dir", "", "Start directory (default: home directory)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fileshell: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{cfg.Logging.Output},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "fileshell: failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	requested := *dir
	if requested == "" {
		requested = cfg.Shell.StartDir
	}
	start, err := paths.StartDirectory(requested)
	if err != nil {
		log.Error("Failed to determine start directory", zap.Error(err))
		os.Exit(1)
	}

	fs := afero.NewOsFs()
	if info, err := fs.Stat(start); err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "fileshell: %s is not a directory\n", start)
		os.Exit(1)
	}

	tr := transfer.New(fs, cfg.Transfer.BufferSize, log.Named("transfer"))
	ops := filesystem.NewOps(fs, tr, codec.NewRegistry(cfg.Levels()), log)

	sh := shell.New(shell.Options{
		In:       os.Stdin,
		Out:      os.Stdout,
		StartDir: start,
		Prompt:   cfg.Shell.Prompt,
		Logger:   log,
	})
	for _, p := range []types.Provider{filesystem.NewProvider(ops), system.NewProvider(nil)} {
		if err := sh.Register(p); err != nil {
			log.Error("Failed to register provider", zap.Error(err))
			os.Exit(1)
		}
	}

	// Ctrl+C cancels the running command, which cleans up after itself,
	// and then ends the session the same way .exit does.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sh.Run(ctx); err != nil {
		log.Error("Shell stopped", zap.Error(err))
		os.Exit(1)
	}
}

// Command respkvd is the process entry point: argument parsing, wiring the
// datastore actor to the connection pipeline, and graceful shutdown.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ridgewood-io/respkv/internal/applog"
	"github.com/ridgewood-io/respkv/internal/config"
	"github.com/ridgewood-io/respkv/internal/opstats"
	"github.com/ridgewood-io/respkv/internal/respcmd"
	"github.com/ridgewood-io/respkv/internal/server"
	"github.com/ridgewood-io/respkv/internal/store"
)

const banner = `
 ____  _____ ____  ____  _  ____     __
|  _ \| ____/ ___||  _ \| |/ /\ \   / /
| |_) |  _| \___ \| |_) | ' /  \ \ / /
|  _ <| |___ ___) |  __/| . \   \ V /
|_| \_\_____|____/|_|   |_|\_\   \_/
`

var log = applog.New()

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		addr       string
		dir        string
		dbfilename string
	)

	cmd := &cobra.Command{
		Use:   "respkvd",
		Short: "respkvd is an in-memory key-value server speaking a RESP subset",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(addr, config.New(dir, dbfilename))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:6379", "TCP address to listen on")
	cmd.Flags().StringVar(&dir, "dir", "", "value reported by CONFIG GET dir")
	cmd.Flags().StringVar(&dbfilename, "dbfilename", "", "value reported by CONFIG GET dbfilename")

	return cmd
}

func run(addr string, snapshot config.Snapshot) error {
	fmt.Println(banner)
	log.Info("respkvd starting up")

	actor := store.New(log, nil, store.DefaultInboxSize, store.DefaultSweepInterval)
	go actor.Run()

	sender := actor.Sender()
	registry := respcmd.NewDefault(sender, snapshot)

	srv, err := server.Listen(addr, registry, log)
	if err != nil {
		log.Error("failed to listen on %s: %v", addr, err)
		return err
	}
	log.Info("listening on %s", srv.Addr())

	statsCtx, cancelStats := context.WithCancel(context.Background())
	reporter := opstats.New(log, opstats.DefaultInterval, sender.KeyCount)
	go reporter.Run(statsCtx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("shutdown signal received, draining connections")
		if err := srv.Close(); err != nil {
			log.Warn("error closing listener: %v", err)
		}
	}()

	err = srv.Serve()

	cancelStats()
	actor.Stop()

	log.Warn("shutdown complete")

	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

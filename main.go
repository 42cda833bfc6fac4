package main

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/websocket"

	"github.com/Gao0602-kimi/gopong/game"
	"github.com/Gao0602-kimi/gopong/server"
	"github.com/Gao0602-kimi/gopong/utils"
)

func main() {
	addr := flag.String("addr", "", "listen address, overrides the config file")
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("configuration rejected")
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	loop := game.NewLoop(cfg, game.NewRand(time.Now().UnixNano()), logger)
	loop.Start()

	wsServer := server.New(loop, logger)
	http.Handle("/subscribe", websocket.Handler(wsServer.HandleSubscribe()))
	http.HandleFunc("/state", wsServer.HandleState())

	go func() {
		logger.Info().Str("addr", cfg.Addr).Int("tickRate", cfg.TickRate).Msg("listening")
		if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case <-interrupt:
		logger.Info().Msg("interrupt received, stopping match")
		loop.Stop()
		<-loop.Done()
	case <-loop.Done():
		// The match quit on its own.
	}
	logger.Info().Msg("goodbye")
}

// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// main.go - Entry point for the technical support chatbot. Reads problems
// typed by the user and answers with canned responses from the chatbot
// package, either in the terminal or over HTTP.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/christimahu/dev/blueprints/techsupport/src/chatbot"
	"github.com/christimahu/dev/blueprints/techsupport/src/config"
	"github.com/christimahu/dev/blueprints/techsupport/src/input"
	"github.com/christimahu/dev/blueprints/techsupport/src/logger"
	"github.com/christimahu/dev/blueprints/techsupport/src/metrics"
	"github.com/christimahu/dev/blueprints/techsupport/src/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, closer, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}

	opts := []chatbot.Option{
		chatbot.WithResponseMapFile(cfg.ResponseMapFile),
		chatbot.WithDefaultsFile(cfg.DefaultsFile),
		chatbot.WithSeed(cfg.Seed),
		chatbot.WithLogger(log),
		chatbot.WithRecorder(rec),
	}
	if cfg.TrailingRecords {
		opts = append(opts, chatbot.WithParseOptions(chatbot.WithTrailingRecords()))
	}
	bot := chatbot.NewResponder(opts...)
	rec.ObserveStores(bot.Stats())

	if cfg.IsServer() {
		serve(cfg.ServeAddr, bot, reg, log)
		return
	}

	conv, err := config.LoadConversation(cfg.ConfigFile, cfg.BotName)
	if err != nil {
		log.Warn().Err(err).Str("file", cfg.ConfigFile).Msg("using default conversation texts")
	}

	prompt := ""
	if term.IsTerminal(int(os.Stdin.Fd())) {
		prompt = conv.Prompt
	}
	converse(os.Stdin, os.Stdout, bot, conv, prompt)
}

// converse runs the terminal dialog until an exit word or the end of input.
func converse(in io.Reader, out io.Writer, bot *chatbot.Responder, conv config.Conversation, prompt string) {
	fmt.Fprintln(out, conv.Greeting)
	reader := input.NewReader(in)

	for {
		fmt.Fprint(out, prompt)
		_, words, ok := reader.Next()
		if !ok {
			break
		}
		if conv.IsExit(words) {
			break
		}
		fmt.Fprintln(out, bot.GenerateResponse(words))
	}

	fmt.Fprintln(out, conv.Farewell)
}

// serve runs the HTTP front end until SIGINT or SIGTERM.
func serve(addr string, bot *chatbot.Responder, reg *prometheus.Registry, log zerolog.Logger) {
	srv := server.New(bot, reg, log)

	go func() {
		if err := srv.Start(addr); err != nil {
			log.Error().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	if err := srv.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited")
}

// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// server.go - An HTTP front end for the responder. It plays the same role as
// the terminal loop: turn input into words and return the response.

package server

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/christimahu/dev/blueprints/techsupport/src/chatbot"
	"github.com/christimahu/dev/blueprints/techsupport/src/input"
)

// Responder is the part of *chatbot.Responder the server needs.
type Responder interface {
	Respond(words chatbot.WordSet) chatbot.Reply
	Stats() chatbot.Stats
}

// RespondRequest is the body of POST /respond. Words from Text and Words are
// combined; Text is tokenized the same way as terminal input, Words are used
// as given.
type RespondRequest struct {
	Text  string   `json:"text"`
	Words []string `json:"words"`
}

// RespondResponse is the body returned by POST /respond.
type RespondResponse struct {
	Response string `json:"response"`
	Keyword  string `json:"keyword,omitempty"`
	Outcome  string `json:"outcome"`
}

// HealthResponse is the body returned by GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Keywords int    `json:"keywords"`
	Defaults int    `json:"defaults"`
}

// Server wraps the Fiber app.
type Server struct {
	App       *fiber.App
	responder Responder
	log       zerolog.Logger
}

// New creates a server answering with responder. Metrics are served from
// gatherer; a nil gatherer disables GET /metrics.
func New(responder Responder, gatherer prometheus.Gatherer, log zerolog.Logger) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
				message = e.Message
			} else {
				log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{App: app, responder: responder, log: log}

	app.Post("/respond", s.Respond)
	app.Get("/health", s.Health)
	if gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	return s
}

// Respond handles POST /respond.
func (s *Server) Respond(c fiber.Ctx) error {
	var req RespondRequest
	if err := c.Bind().JSON(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	words := input.Words(req.Text)
	for _, w := range req.Words {
		if w != "" {
			words[w] = struct{}{}
		}
	}
	if req.Text == "" && len(words) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "text or words is required")
	}

	reply := s.responder.Respond(words)
	return c.JSON(RespondResponse{
		Response: reply.Text,
		Keyword:  reply.Keyword,
		Outcome:  reply.Outcome,
	})
}

// Health handles GET /health.
func (s *Server) Health(c fiber.Ctx) error {
	stats := s.responder.Stats()
	return c.JSON(HealthResponse{
		Status:   "ok",
		Keywords: stats.Keywords,
		Defaults: stats.Defaults,
	})
}

// Start listens on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.log.Info().Str("addr", addr).Msg("server started")
	return s.App.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown stops the server, letting in-flight requests finish.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}

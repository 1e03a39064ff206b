package web

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/sync/errgroup"
)

// Server serves the card art directory over HTTP so embeds can link to
// it when the catalog images are not hosted on Spaces.
type Server struct {
	addr string
	app  *fiber.App
}

func NewServer(addr string, cardsDir string) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
	})

	app.Use(recover.New())
	app.Use(compress.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Static("/cartes", cardsDir, fiber.Static{
		MaxAge: 86400,
	})

	return &Server{addr: addr, app: app}
}

// Run serves until ctx is canceled, then shuts the listener down.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Card art server listening",
			slog.String("type", "web"),
			slog.String("addr", s.addr))
		if err := s.app.Listen(s.addr); err != nil {
			return fmt.Errorf("web server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.app.ShutdownWithContext(shutdownCtx)
	})

	return g.Wait()
}

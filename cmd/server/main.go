package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mc4/chess-ai/internal/controller"
	"github.com/mc4/chess-ai/internal/service"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	defaultInterval, err := time.ParseDuration(envOr("CHESS_MATCH_INTERVAL", "1s"))
	if err != nil {
		log.Fatalf("invalid CHESS_MATCH_INTERVAL: %v", err)
	}

	addr := flag.String("addr", envOr("CHESS_ADDR", ":3000"), "listen address")
	origins := flag.String("origins", envOr("CHESS_ALLOWED_ORIGINS", "http://localhost:5173"), "comma separated allowed origins")
	interval := flag.Duration("match-interval", defaultInterval, "matchmaking poll interval")
	flag.Parse()

	app := fiber.New(fiber.Config{
		AppName: "chess",
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     *origins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	gameManager := service.NewGameManager(service.Config{MatchInterval: *interval})
	gameService := service.NewGameService(gameManager)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go gameManager.Run(ctx)

	controller.SetupRoutes(app, gameService, splitOrigins(*origins))

	go func() {
		<-ctx.Done()
		log.Println("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s", *addr)
	if err := app.Listen(*addr); err != nil {
		log.Fatal(err)
	}
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"

	"github.com/kollekbot/kollek/kollek"
	"github.com/kollekbot/kollek/kollek/commands"
	"github.com/kollekbot/kollek/kollek/database"
	"github.com/kollekbot/kollek/kollek/database/repositories"
	"github.com/kollekbot/kollek/kollek/gacha"
	"github.com/kollekbot/kollek/kollek/handlers"
	"github.com/kollekbot/kollek/kollek/logger"
	"github.com/kollekbot/kollek/kollek/services"
	"github.com/kollekbot/kollek/kollek/web"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	customHandler := logger.NewHandler()
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting Kollek Discord bot",
		slog.String("version", version),
		slog.String("commit", commit))

	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := kollek.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Configuration loaded successfully")

	catalog, err := gacha.LoadCatalog(cfg.Game.CatalogPathOrDefault())
	if err != nil {
		slog.Error("Failed to load card catalog", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Card catalog loaded",
		slog.String("type", "game"),
		slog.Int("cards", catalog.Size()))

	slog.Info("Initializing database connection...", slog.String("type", "db"))
	dbStartTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("type", "db"),
			slog.Any("error", err),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema",
			slog.String("type", "db"),
			slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Database ready",
		slog.String("type", "db"),
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	b := kollek.New(*cfg, version, commit)
	b.DB = db
	b.Catalog = catalog

	b.CooldownRepository = repositories.NewCooldownRepository(db.BunDB())
	b.WalletRepository = repositories.NewWalletRepository(db.BunDB())
	b.CollectionRepository = repositories.NewCollectionRepository(db.BunDB())

	engineCfg, err := cfg.Game.EngineConfig()
	if err != nil {
		slog.Error("Invalid game configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	engine, err := gacha.New(engineCfg, catalog, database.NewGachaStore(db))
	if err != nil {
		slog.Error("Failed to initialize draw engine", slog.Any("error", err))
		os.Exit(-1)
	}
	b.Engine = engine

	b.CollectionService = services.NewCollectionService(b.CollectionRepository, b.WalletRepository, catalog)
	b.CardSearchService = services.NewCardSearchService(catalog)

	if cfg.Spaces.Enabled {
		spaces, err := services.NewSpacesService(services.SpacesConfig{
			Key:      cfg.Spaces.Key,
			Secret:   cfg.Spaces.Secret,
			Region:   cfg.Spaces.Region,
			Bucket:   cfg.Spaces.Bucket,
			CardRoot: cfg.Spaces.CardRoot,
		})
		if err != nil {
			slog.Error("Failed to initialize Spaces service", slog.Any("error", err))
			os.Exit(-1)
		}

		verifyCtx, verifyCancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := services.VerifyCatalogImages(verifyCtx, spaces, catalog.All()); err != nil {
			slog.Warn("Card art missing from Spaces bucket",
				slog.String("type", "game"),
				slog.Any("error", err))
		}
		verifyCancel()

		b.ImageResolver = spaces
	} else {
		b.ImageResolver = services.NewLocalImageResolver(cfg.Web.PublicURL)
	}

	webCtx, webCancel := context.WithCancel(context.Background())
	defer webCancel()
	if cfg.Web.Enabled {
		server := web.NewServer(cfg.Web.Addr, cfg.Web.CardsDir)
		go func() {
			if err := server.Run(webCtx); err != nil {
				slog.Error("Card art server stopped",
					slog.String("type", "web"),
					slog.Any("error", err))
			}
		}()
	}

	h := handler.New()
	h.Command("/pioche", handlers.WrapWithLogging("pioche", commands.DrawHandler(b)))
	h.Command("/booster", handlers.WrapWithLogging("booster", commands.BoosterHandler(b)))
	h.Command("/bonus", handlers.WrapWithLogging("bonus", commands.BonusHandler(b)))
	h.Command("/de", handlers.WrapWithLogging("de", commands.RollHandler(b)))
	h.Command("/kollek", handlers.WrapWithLogging("kollek", commands.CollectionHandler(b)))
	h.Command("/carte", handlers.WrapWithLogging("carte", commands.CardHandler(b)))
	h.Autocomplete("/carte", commands.CardAutocompleteHandler(b))
	h.Command("/solde", handlers.WrapWithLogging("solde", commands.BalanceHandler(b)))
	h.Command("/aide", handlers.WrapWithLogging("aide", commands.HelpHandler(b)))

	if err = b.SetupBot(h, bot.NewListenerFunc(b.OnReady)); err != nil {
		slog.Error("Failed to setup bot",
			slog.Any("error", err),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer closeCancel()
		b.Client.Close(closeCtx)
	}()

	if *shouldSyncCommands {
		slog.Info("Syncing commands",
			slog.Any("guild_ids", cfg.Bot.DevGuilds),
		)
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands",
				slog.Any("error", err),
				slog.String("error_details", fmt.Sprintf("%+v", err)),
				slog.String("status", "failed"),
			)
		}
	}

	gatewayCtx, gatewayCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer gatewayCancel()
	if err = b.Client.OpenGateway(gatewayCtx); err != nil {
		slog.Error("Failed to open gateway",
			slog.Any("error", err),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	slog.Info("Bot is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	slog.Info("Shutting down bot...")
}

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"league-assets/core/loader"
	"league-assets/core/logger"
	"league-assets/core/middleware/auth"
	"league-assets/core/middleware/rayid"
	"league-assets/feature/staticdata"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "league-assets/docs/swagger"
)

// @title League Assets API
// @version 1.0
// @description Versioned static data cache with ranked search.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the static data server",
	Long: `Starts the HTTP server. Unless disabled, every cache is brought up to date
first and, when a refresh interval is set, kept up to date in the background.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer rt.Close(context.Background())
		logg := rt.logger
		zap.ReplaceGlobals(logg)

		if rt.cfg.Server.SyncOnStart {
			results, err := rt.service.SyncAll(ctx, false)
			if err != nil {
				// Stale data is still served.
				logg.Warn("Initial sync failed", zap.Error(err))
			}
			for _, r := range results {
				logg.Info("Initial sync", zap.String("kind", r.Kind), zap.String("version", r.Version), zap.Bool("updated", r.Updated))
			}
		}
		go rt.service.Watch(ctx, rt.cfg.Server.RefreshInterval(), false)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(staticdata.NewFeature(rt.service))

		// RayID first so every log line can be traced.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger stays public.
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(rt.cfg.Server.Address()); err != nil {
				logg.Error("Server stopped", zap.Error(err))
				cancel()
			}
		}()

		<-ctx.Done()
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

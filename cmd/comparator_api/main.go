// Package main Code List Comparator API
// @title Code List Comparator API
// @version 1.0
// @description Compares the codes found in two uploaded files
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/code-comparator/docs"
	"github.com/DjordjeVuckovic/code-comparator/internal/compare"
	"github.com/DjordjeVuckovic/code-comparator/internal/router"
	"github.com/DjordjeVuckovic/code-comparator/internal/server"
	"github.com/DjordjeVuckovic/code-comparator/internal/storage/in_mem"
	pkgserver "github.com/DjordjeVuckovic/code-comparator/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	var healthChecker pkgserver.HealthChecker = pkgserver.NewOkHealthChecker()
	if cfg.Profile.EnableOCR {
		healthChecker = pkgserver.NewBinaryHealthChecker(cfg.Profile.OCR.Binary)
	}

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Code List Comparator API is running")
	})

	service := compare.NewService(cfg.Profile.Options())

	routerOpts := []router.CompareRouterOption{router.WithLabels(cfg.Profile.Labels)}
	if cfg.Profile.EnableExport {
		routerOpts = append(routerOpts, router.WithResultStore(in_mem.NewResultStore(cfg.ResultStoreSize)))
		slog.Info("Result export enabled", "storeSize", cfg.ResultStoreSize)
	} else {
		slog.Info("Result export disabled")
	}

	compareRouter := router.NewCompareRouter(s.Echo, service, routerOpts...)
	compareRouter.Bind()

	slog.Info("Comparator configured",
		"profile", cfg.Profile.Metadata.Name,
		"caseSensitive", cfg.Profile.CaseSensitive,
		"ocr", cfg.Profile.EnableOCR,
		"csvHeader", cfg.Profile.HasHeader,
	)

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}

package server

import (
	"log/slog"

	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New はハンドラを束ねたechoインスタンスを返す。
// テストから差し替えやすいようにStartと分けている。
func New(cfg config.Config, authH *handler.AuthHandler, productH *handler.ProductHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	authH.RegisterRoutes(e)
	productH.RegisterRoutes(e, cfg)

	return e
}

// Start はサーバーを起動する。
func Start(cfg config.Config, authH *handler.AuthHandler, productH *handler.ProductHandler) error {
	e := New(cfg, authH, productH)

	addr := ":" + cfg.Port
	slog.Info("server starting", slog.String("addr", addr), slog.String("env", cfg.GoEnv))

	return e.Start(addr)
}

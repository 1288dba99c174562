package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "ggmap/docs"
	"ggmap/internal/bootstrap"
	"ggmap/internal/config"
	"ggmap/internal/handler"
	"ggmap/internal/logging"
	"ggmap/internal/metrics"
	"ggmap/internal/renderer"
	"ggmap/internal/repository"
	"ggmap/internal/scene"
	"ggmap/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := logging.New(config.LogLevel)
	log.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database connection
	conn, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Fatal().Err(err).Msg("cannot prepare schema")
	}

	m := metrics.New()
	mapRenderer := renderer.New(scene.New(), renderer.Options{
		LinkLabel:     config.LinkLabel,
		FilterHeading: config.FilterHeading,
	}, logger).WithSkipObserver(m)

	fetcher := bootstrap.NewHTTPFetcher(&http.Client{}, config.FetchTimeout).WithMaxBytes(config.MaxConfigBytes)
	bootstrapper := bootstrap.New(fetcher, mapRenderer, m, bootstrap.Options{
		ContainerClass: config.ContainerClass,
		MaxConcurrent:  config.MaxConcurrentFetches,
	}, logger)

	mapService := service.NewMapService(repo, mapRenderer)
	pageService := service.NewPageService(bootstrapper)

	mapHandler := handler.NewMapHandler(mapService)
	pageHandler := handler.NewPageHandler(pageService)

	r := gin.New()
	r.Use(gin.Recovery(), handler.Observe(logger, m))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/maps", mapHandler.List)
	r.GET("/maps/:slug", mapHandler.Document)
	r.GET("/maps/:slug/render", mapHandler.Render)
	r.GET("/maps/:slug/markers/:id/popup", mapHandler.Popup)
	r.POST("/pages/render", pageHandler.RenderPage)

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", config.ServerAddress).Msg("ggmap listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	logger.Info().Msg("shutdown complete")
}

package gpxitinerary

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ridgeline-labs/gpx-to-itinerary/config"
)

var server *http.Server

// NewRouter assembles the gin engine serving the upload form, the
// conversion endpoint, health, and metrics.
func NewRouter(cfg config.AppConfig, collector *Collector) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())
	if cfg.Server.RateLimit > 0 {
		r.Use(RateLimit(cfg.Server.RateLimit, time.Minute))
	}

	r.GET("/", handleIndex)
	r.POST("/", handleConvert(cfg, collector))
	r.GET("/healthz", handleHealth)
	r.GET("/metrics", gin.WrapH(collector.Handler()))
	return r
}

func StartServer() {
	collector := NewCollector()
	router := NewRouter(config.Config, collector)

	addr := fmt.Sprintf(":%d", config.Config.Server.Port)
	server = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}

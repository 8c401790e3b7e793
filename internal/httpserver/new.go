package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	suggestUC "wardrobe-ai/internal/suggest/usecase"
	"wardrobe-ai/internal/wardrobe/repository"
	"wardrobe-ai/pkg/log"
	"wardrobe-ai/pkg/vision"
	"wardrobe-ai/pkg/weather"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	jwtSecret   string

	// Wardrobe domain
	wardrobeRepo repository.Repository

	// Collaborators
	vision  vision.IVision // nil when no API key is configured
	weather weather.IWeather

	// Recommender tuning
	suggestCfg suggestUC.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	JWTSecret   string

	WardrobeRepo repository.Repository
	Vision       vision.IVision
	Weather      weather.IWeather
	SuggestCfg   suggestUC.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.Default(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		jwtSecret:    cfg.JWTSecret,
		wardrobeRepo: cfg.WardrobeRepo,
		vision:       cfg.Vision,
		weather:      cfg.Weather,
		suggestCfg:   cfg.SuggestCfg,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.wardrobeRepo == nil {
		return errors.New("wardrobe repository is required")
	}
	if srv.weather == nil {
		return errors.New("weather client is required")
	}
	return nil
}

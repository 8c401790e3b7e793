package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"wardrobe-ai/internal/suggest"
	"wardrobe-ai/pkg/log"
	"wardrobe-ai/pkg/weather"
)

const (
	defaultMaxSessions = 256
	defaultSessionTTL  = 30 * time.Minute
	defaultCity        = "San Francisco"
)

// Config tunes the session store and the strategy selection.
type Config struct {
	Strategy       string // weighted | random
	MaxSuggestions int
	MaxSessions    int
	SessionTTL     time.Duration
	DefaultCity    string // city used when a session supplies no weather
}

// sessionEntry wraps a session with its own lock and a generation counter.
// Every (re)generation bumps the counter; a strategy run commits its result
// only if the counter still matches, so superseded runs are discarded.
type sessionEntry struct {
	mu         sync.Mutex
	session    suggest.Session
	generation uint64
}

type implUseCase struct {
	l           log.Logger
	ledger      suggest.WearLedger
	weather     weather.IWeather
	strategy    suggest.Strategy
	fallback    suggest.Strategy
	sessions    *expirable.LRU[string, *sessionEntry]
	defaultCity string
	nowFunc     func() time.Time
	newID       func() string
}

// New creates the suggestion UseCase. The weather client may be nil; session
// creation then falls back to the default snapshot.
func New(l log.Logger, cfg Config, ledger suggest.WearLedger, wx weather.IWeather) *implUseCase {
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = defaultMaxSessions
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.DefaultCity == "" {
		cfg.DefaultCity = defaultCity
	}

	// Random sampling doubles as the degradation path: a failing primary
	// strategy never fails the whole request.
	fallback := NewRandomStrategy(cfg.MaxSuggestions, time.Now().UnixNano())

	var strategy suggest.Strategy
	switch cfg.Strategy {
	case "random":
		strategy = fallback
	default:
		strategy = NewWeightedStrategy(cfg.MaxSuggestions)
	}

	return &implUseCase{
		l:           l,
		ledger:      ledger,
		weather:     wx,
		strategy:    strategy,
		fallback:    fallback,
		sessions:    expirable.NewLRU[string, *sessionEntry](cfg.MaxSessions, nil, cfg.SessionTTL),
		defaultCity: cfg.DefaultCity,
		nowFunc:     time.Now,
		newID:       uuid.NewString,
	}
}

package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/golang-collections/collections/queue"
	"github.com/rs/zerolog/log"

	"pokedex/pokemon"
	"pokedex/store"
)

const (
	queuePollInterval = time.Second
	refreshTimeout    = 2 * time.Minute
)

// Fetcher retrieves the full catalog from the upstream API.
type Fetcher interface {
	FetchCatalog(ctx context.Context, limit int) ([]pokemon.Pokemon, error)
}

// Service keeps the cached catalog fresh. Refresh requests are queued and
// processed by a single background loop, so at most one fetch runs at a time
// and the cache is only ever replaced wholesale.
type Service struct {
	Fetcher Fetcher
	Store   *store.PersistentStore
	Limit   int
	Queue   *queue.Queue

	mu   sync.Mutex
	stop chan struct{}
	once sync.Once
}

func New(fetcher Fetcher, persistentStore *store.PersistentStore, limit int) *Service {
	return &Service{
		Fetcher: fetcher,
		Store:   persistentStore,
		Limit:   limit,
		Queue:   queue.New(),
		stop:    make(chan struct{}),
	}
}

// Refresh enqueues a catalog refresh without blocking the caller.
func (s *Service) Refresh() {
	s.mu.Lock()
	s.Queue.Enqueue(time.Now())
	s.mu.Unlock()
}

// RefreshNow fetches the catalog and replaces the cache synchronously. A
// failed fetch leaves the previous cache untouched.
func (s *Service) RefreshNow(ctx context.Context) ([]pokemon.Pokemon, error) {
	records, err := s.Fetcher.FetchCatalog(ctx, s.Limit)
	if err != nil {
		return nil, err
	}

	if !s.Store.SetPokemonData(records) {
		// Fail-soft store: the fetch succeeded, serve the records anyway.
		log.Error().Int("count", len(records)).Msg("failed to cache fetched catalog")
		return records, nil
	}

	log.Info().Int("count", len(records)).Msg("catalog cache refreshed")
	return records, nil
}

// ProcessRefreshes drains queued refresh requests until Stop is called.
func (s *Service) ProcessRefreshes() {
	log.Debug().Msg("starting catalog refresh processing")
	for {
		select {
		case <-s.stop:
			log.Debug().Msg("stop requested, refresh processing done")
			return
		default:
		}

		if !s.popRequest() {
			time.Sleep(queuePollInterval)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		if _, err := s.RefreshNow(ctx); err != nil {
			log.Err(err).Msg("catalog fetch failed, keeping previous cache")
		}
		cancel()
	}
}

// RunPeriodicRefresh enqueues a refresh on every tick until Stop is called.
func (s *Service) RunPeriodicRefresh(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.Refresh()
		}
	}
}

func (s *Service) Stop() {
	s.once.Do(func() {
		close(s.stop)
	})
}

func (s *Service) popRequest() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Queue.Len() == 0 {
		return false
	}
	s.Queue.Dequeue()
	return true
}

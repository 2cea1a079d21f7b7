package pulse

import (
	"context"
	"sync"

	"github.com/vesper-eve/token-pulse/internal/models"
	"github.com/vesper-eve/token-pulse/internal/observability"
)

// MaxBatchSize is the fixed cap on addresses per request.
const MaxBatchSize = 10

// PairFetcher fetches the current pair list for one token address
type PairFetcher interface {
	TokenPairs(ctx context.Context, address string) ([]models.Pair, error)
}

// Service runs the fetch → select → score → assemble pipeline
type Service struct {
	fetcher PairFetcher
	metrics *observability.Metrics
}

// NewService creates a Service. metrics may be nil.
func NewService(fetcher PairFetcher, metrics *observability.Metrics) *Service {
	return &Service{fetcher: fetcher, metrics: metrics}
}

// GetPulse runs the pipeline for a single address. Fetch and parse errors
// propagate to the caller.
func (s *Service) GetPulse(ctx context.Context, address string) (*models.PulseResult, error) {
	pairs, err := s.fetcher.TokenPairs(ctx, address)
	if err != nil {
		return nil, err
	}
	result := BuildResult(address, pairs)
	s.countLookup(result.Pulse)
	return result, nil
}

// GetPulseBatch runs the pipeline for each address concurrently.
// Each address writes its own result slot, so the output is index-aligned
// with the input regardless of completion order. A failing address becomes a
// pulse:"error" entry in place and never affects its siblings.
func (s *Service) GetPulseBatch(ctx context.Context, addresses []string) []*models.PulseResult {
	results := make([]*models.PulseResult, len(addresses))

	var wg sync.WaitGroup
	for i, addr := range addresses {
		wg.Add(1)
		go func(i int, addr string) {
			defer wg.Done()
			result, err := s.GetPulse(ctx, addr)
			if err != nil {
				result = &models.PulseResult{
					Address: addr,
					Found:   false,
					Pulse:   models.PulseError,
					Error:   err.Error(),
				}
				s.countLookup(models.PulseError)
			}
			results[i] = result
		}(i, addr)
	}
	wg.Wait()

	return results
}

func (s *Service) countLookup(p models.Pulse) {
	if s.metrics != nil {
		s.metrics.LookupsTotal.WithLabelValues(string(p)).Inc()
	}
}

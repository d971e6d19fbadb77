package services

import (
	"math/rand/v2"
	"sync"

	"github.com/xvierd/turskmind/internal/domain"
	"go.uber.org/zap"
)

// AffirmationService handles affirmation use cases. Nothing it is given
// is stored.
type AffirmationService struct {
	logger *zap.Logger

	mu  sync.Mutex
	rng domain.Intn
}

// NewAffirmationService creates a new affirmation service. A nil rng uses
// the process-wide random source.
func NewAffirmationService(rng domain.Intn, logger *zap.Logger) *AffirmationService {
	if rng == nil {
		rng = globalRand{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AffirmationService{rng: rng, logger: logger}
}

// List returns the affirmation catalog.
func (s *AffirmationService) List() []string {
	return domain.Affirmations()
}

// Random returns a catalog affirmation.
func (s *AffirmationService) Random() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.RandomAffirmation(s.rng)
}

// Save acknowledges a catalog affirmation.
func (s *AffirmationService) Save(text string) domain.Acknowledgment {
	s.logger.Debug("affirmation saved", zap.Bool("catalog", domain.IsAffirmation(text)))
	return domain.SaveAffirmation(text)
}

// SaveCustom acknowledges user text. Empty input yields a warning and
// domain.ErrEmptyAffirmation.
func (s *AffirmationService) SaveCustom(text string) (domain.Acknowledgment, error) {
	ack, err := domain.SaveCustomAffirmation(text)
	if err != nil {
		s.logger.Debug("custom affirmation rejected", zap.Error(err))
		return ack, err
	}
	s.logger.Debug("custom affirmation saved", zap.Int("length", len(text)))
	return ack, nil
}

// globalRand adapts the top-level math/rand/v2 functions, which are safe
// for concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

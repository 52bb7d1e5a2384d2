package ratesched

import (
	"context"
	"fmt"
	"sync"

	"github.com/ukaji3/ratesched-go/pkg/ratesched/models"
	"github.com/ukaji3/ratesched-go/pkg/ratesched/parser"
	"github.com/ukaji3/ratesched-go/pkg/ratesched/store"
	"go.uber.org/zap"
)

// Service inserts items into estimate workbooks kept in a repository.
// Insertions against the same document are serialized; different documents
// proceed in parallel.
type Service struct {
	repo   store.Repository
	logger *zap.Logger

	mu    sync.Mutex
	locks map[string]*docLock
}

type docLock struct {
	mu   sync.Mutex
	refs int
}

// NewService creates a Service backed by repo. A nil logger disables logging.
func NewService(repo store.Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: loggerOrNop(logger),
		locks:  make(map[string]*docLock),
	}
}

// Import stores buf under id after checking it decodes as a workbook.
func (s *Service) Import(ctx context.Context, id string, buf []byte) error {
	f, format, err := parser.OpenWorkbook(buf)
	if err != nil {
		return err
	}
	f.Close()

	unlock := s.lock(id)
	defer unlock()

	if err := s.repo.Save(ctx, id, buf); err != nil {
		return fmt.Errorf("save document %q: %w", id, err)
	}
	s.logger.Info("document imported", zap.String("id", id), zap.String("format", string(format)))
	return nil
}

// Export returns the current bytes of document id.
func (s *Service) Export(ctx context.Context, id string) ([]byte, error) {
	unlock := s.lock(id)
	defer unlock()

	return s.load(ctx, id)
}

// Documents lists stored document ids.
func (s *Service) Documents(ctx context.Context) ([]string, error) {
	return s.repo.List(ctx)
}

// Pairs reports the sheet pairs of document id.
func (s *Service) Pairs(ctx context.Context, id string) (*PairReport, error) {
	buf, err := s.Export(ctx, id)
	if err != nil {
		return nil, err
	}
	return LocatePairs(buf)
}

// Insert adds item to part of document id and saves the result.
func (s *Service) Insert(ctx context.Context, id string, part int, item models.CatalogItem, opts InsertOptions) (*models.InsertResult, error) {
	unlock := s.lock(id)
	defer unlock()

	buf, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if opts.Logger == nil {
		opts.Logger = s.logger
	}
	out, result, err := Insert(buf, part, item, opts)
	if err != nil {
		return nil, fmt.Errorf("document %q: %w", id, err)
	}

	if err := s.repo.Save(ctx, id, out); err != nil {
		return nil, fmt.Errorf("save document %q: %w", id, err)
	}
	return result, nil
}

func (s *Service) load(ctx context.Context, id string) ([]byte, error) {
	buf, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load document %q: %w", id, err)
	}
	return buf, nil
}

// lock acquires the mutex for id and returns its release function.
func (s *Service) lock(id string) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &docLock{}
		s.locks[id] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.mu.Unlock()
	}
}

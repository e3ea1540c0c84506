package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wordvault/wordvault-api/internal/domain"
	"github.com/wordvault/wordvault-api/internal/domain/srs"
	"github.com/wordvault/wordvault-api/internal/platform/logger"
	"github.com/wordvault/wordvault-api/internal/store"
)

// Common word service errors.
var (
	// ErrWordNotFound indicates the requested word is not registered.
	// API layer should map this to HTTP 404 Not Found.
	ErrWordNotFound = errors.New("word not found")

	// ErrTermExists indicates a word with the same term is already
	// registered. API layer should map this to HTTP 409 Conflict.
	ErrTermExists = errors.New("term already exists")
)

// WordService provides vocabulary management operations.
type WordService interface {
	// RegisterWord adds a new word to the vocabulary. The word and its
	// initial memory state are persisted atomically, so a registered word
	// is immediately schedulable.
	RegisterWord(ctx context.Context, term, definition string) (*domain.Word, error)

	// GetWord retrieves a word by its ID.
	GetWord(ctx context.Context, id uuid.UUID) (*domain.Word, error)

	// RemoveWord deletes a word and its memory state.
	RemoveWord(ctx context.Context, id uuid.UUID) error
}

// wordServiceImpl implements the WordService interface.
type wordServiceImpl struct {
	wordStore  store.WordStore
	srsService srs.Service
	timeFunc   func() time.Time // Injectable for testing
	logger     *slog.Logger
}

// NewWordService creates a new WordService.
func NewWordService(
	wordStore store.WordStore,
	srsService srs.Service,
	logger *slog.Logger,
) WordService {
	if wordStore == nil {
		panic("wordStore cannot be nil")
	}
	if srsService == nil {
		panic("srsService cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &wordServiceImpl{
		wordStore:  wordStore,
		srsService: srsService,
		timeFunc:   time.Now,
		logger:     logger.With(slog.String("component", "word_service")),
	}
}

// Ensure wordServiceImpl implements WordService interface
var _ WordService = (*wordServiceImpl)(nil)

// RegisterWord implements WordService.RegisterWord.
func (s *wordServiceImpl) RegisterWord(
	ctx context.Context,
	term, definition string,
) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	word, err := domain.NewWord(term, definition)
	if err != nil {
		return nil, err
	}

	state, err := s.srsService.InitialState(word.ID, s.timeFunc())
	if err != nil {
		return nil, fmt.Errorf("initial memory state: %w", err)
	}

	if err := s.wordStore.Create(ctx, word, state); err != nil {
		if errors.Is(err, store.ErrTermExists) {
			log.Debug("term already registered", slog.String("term", word.Term))
			return nil, ErrTermExists
		}
		log.Error("failed to register word",
			slog.String("error", err.Error()),
			slog.String("term", word.Term))
		return nil, fmt.Errorf("register word: %w", err)
	}

	log.Info("registered word",
		slog.String("word_id", word.ID.String()),
		slog.String("term", word.Term))
	return word, nil
}

// GetWord implements WordService.GetWord.
func (s *wordServiceImpl) GetWord(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	word, err := s.wordStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrWordNotFound) {
			return nil, ErrWordNotFound
		}
		return nil, fmt.Errorf("get word: %w", err)
	}
	return word, nil
}

// RemoveWord implements WordService.RemoveWord.
func (s *wordServiceImpl) RemoveWord(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.wordStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrWordNotFound) {
			return ErrWordNotFound
		}
		return fmt.Errorf("remove word: %w", err)
	}

	log.Info("removed word", slog.String("word_id", id.String()))
	return nil
}

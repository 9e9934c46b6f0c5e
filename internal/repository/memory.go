package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-dark/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-dark/internal/entity"
)

type memoryScore struct {
	mu     sync.Mutex
	scores map[string]*entity.Score
}

// NewMemoryScoreRepository - scores that live as long as the process.
func NewMemoryScoreRepository() ScoreRepository {
	return &memoryScore{
		scores: make(map[string]*entity.Score),
	}
}

func (that *memoryScore) AddWin(_ context.Context, sessionID string, symbol entity.Symbol) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.getOrCreate(sessionID).Wins[symbol]++

	return nil
}

func (that *memoryScore) AddDraw(_ context.Context, sessionID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.getOrCreate(sessionID).Draws++

	return nil
}

func (that *memoryScore) Get(_ context.Context, sessionID string) (*entity.Score, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	score, ok := that.scores[sessionID]
	if !ok {
		return nil, apperror.ErrScoreNotFound
	}

	copied := entity.NewScore(sessionID)
	copied.Draws = score.Draws
	for symbol, wins := range score.Wins {
		copied.Wins[symbol] = wins
	}

	return copied, nil
}

func (that *memoryScore) DeleteByID(_ context.Context, sessionID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.scores[sessionID]; !ok {
		return apperror.ErrScoreNotFound
	}

	delete(that.scores, sessionID)

	return nil
}

func (that *memoryScore) getOrCreate(sessionID string) *entity.Score {
	score, ok := that.scores[sessionID]
	if !ok {
		score = entity.NewScore(sessionID)
		that.scores[sessionID] = score
	}

	return score
}

package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-dark/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-dark/internal/entity"
)

const (
	scoreKeyPrefix = "score:"
	winFieldPrefix = "win:"
	drawField      = "draw"
)

type ScoreRepository interface {
	AddWin(ctx context.Context, sessionID string, symbol entity.Symbol) error
	AddDraw(ctx context.Context, sessionID string) error
	Get(ctx context.Context, sessionID string) (*entity.Score, error)
	DeleteByID(ctx context.Context, sessionID string) error
}

// dbScore keeps one hash per session: a "win:<symbol>" counter per player and a "draw" counter.
type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

func (that *dbScore) AddWin(ctx context.Context, sessionID string, symbol entity.Symbol) error {
	if err := that.client.HIncrBy(ctx, scoreKeyPrefix+sessionID, winFieldPrefix+string(symbol), 1).Err(); err != nil {
		return fmt.Errorf("failed to add win: %w", err)
	}

	return nil
}

func (that *dbScore) AddDraw(ctx context.Context, sessionID string) error {
	if err := that.client.HIncrBy(ctx, scoreKeyPrefix+sessionID, drawField, 1).Err(); err != nil {
		return fmt.Errorf("failed to add draw: %w", err)
	}

	return nil
}

func (that *dbScore) Get(ctx context.Context, sessionID string) (*entity.Score, error) {
	fields, err := that.client.HGetAll(ctx, scoreKeyPrefix+sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	if len(fields) == 0 {
		return nil, apperror.ErrScoreNotFound
	}

	score := entity.NewScore(sessionID)
	for field, value := range fields {
		count, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse score field %q: %w", field, err)
		}

		switch {
		case field == drawField:
			score.Draws = count
		case strings.HasPrefix(field, winFieldPrefix):
			score.Wins[entity.Symbol(strings.TrimPrefix(field, winFieldPrefix))] = count
		}
	}

	return score, nil
}

func (that *dbScore) DeleteByID(ctx context.Context, sessionID string) error {
	deleted, err := that.client.Del(ctx, scoreKeyPrefix+sessionID).Result()
	if err != nil {
		return fmt.Errorf("failed to delete score: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrScoreNotFound
	}

	return nil
}

package service

import (
	"context"

	"beautycrm_backend/internal/lifecycle/domain"
	"beautycrm_backend/internal/lifecycle/repository"

	"github.com/google/uuid"
)

const defaultRescoreBatch = 200

// RescoreResult summarizes a rescoring run.
type RescoreResult struct {
	Scanned int `json:"scanned"`
	Updated int `json:"updated"`
}

// Rescore recomputes the score of every non-terminal row and persists the
// ones that changed. Rows are visited in id order so a run can be resumed.
func Rescore(ctx context.Context, src repository.RescoreSource, batch int) (RescoreResult, error) {
	if batch <= 0 {
		batch = defaultRescoreBatch
	}

	var result RescoreResult
	cursor := uuid.Nil
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		rows, err := src.ListActiveAfter(ctx, cursor, batch)
		if err != nil {
			return result, err
		}
		for _, e := range rows {
			result.Scanned++
			score := domain.Score(e.ScoreInput())
			if e.Score != nil && *e.Score == score {
				continue
			}
			if err := src.UpdateScore(ctx, e.ID, score); err != nil {
				return result, err
			}
			result.Updated++
		}
		if len(rows) < batch {
			return result, nil
		}
		cursor = rows[len(rows)-1].ID
	}
}

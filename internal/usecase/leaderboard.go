package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/fourweek-cli/internal/apperror"
	"github.com/rocketscienceinc/fourweek-cli/internal/entity"
)

func (that *Operations) GetLeaderboard(ctx context.Context) (*entity.Leaderboard, error) {
	env, err := that.fetch(ctx, "getLeaderboard")
	if err != nil {
		return nil, err
	}

	rows := env.Rows()
	scores := make([]entity.TeamScore, 0, len(rows))

	for _, row := range rows {
		if len(row) != 2 {
			return nil, fmt.Errorf("%w: leaderboard record %v", apperror.ErrMalformedRecord, row)
		}

		score, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: score of %q: %w", apperror.ErrMalformedRecord, row[0], err)
		}

		scores = append(scores, entity.TeamScore{
			Name:  row[0],
			Score: score,
		})
	}

	return entity.RankTeams(scores), nil
}

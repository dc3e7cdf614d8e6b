package usecase

import (
	"context"

	"github.com/rocketscienceinc/fourweek-cli/internal/entity"
)

func (that *Operations) ListMaps(ctx context.Context) ([]entity.Map, error) {
	env, err := that.fetch(ctx, "getMaps")
	if err != nil {
		return nil, err
	}

	rows := env.Rows()
	maps := make([]entity.Map, 0, len(rows))

	for _, row := range rows {
		maps = append(maps, entity.Map{
			Name:   row[0],
			Rounds: row[1:],
		})
	}

	return maps, nil
}

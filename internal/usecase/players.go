package usecase

import (
	"context"
	"net/url"

	"github.com/rocketscienceinc/fourweek-cli/internal/entity"
)

// MakeMove - validates the ticket locally, then moves the player to destination.
func (that *Operations) MakeMove(ctx context.Context, destination, ticketColour string) error {
	ticket, err := entity.ParseTicket(ticketColour)
	if err != nil {
		return err
	}

	query := url.Values{}
	query.Set("destination", destination)
	query.Set("ticket", string(ticket))

	_, err = that.fetchAuthorized(ctx, "makeMove", query)

	return err
}

func (that *Operations) GetPosition(ctx context.Context) (string, error) {
	env, err := that.fetchAuthorized(ctx, "getPosition", nil)
	if err != nil {
		return "", err
	}

	row, err := firstRow(env, 1)
	if err != nil {
		return "", err
	}

	return row[0], nil
}

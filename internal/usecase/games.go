package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/fourweek-cli/internal/apperror"
	"github.com/rocketscienceinc/fourweek-cli/internal/entity"
)

const createGameQuestion = "Really create a new game?"

// CreateGame - asks for confirmation, then opens a new public game.
func (that *Operations) CreateGame(ctx context.Context, playerName, mapName string, numRounds int) (*entity.GameSession, error) {
	confirmed, err := that.confirm.Confirm(createGameQuestion, false)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm game creation: %w", err)
	}

	if !confirmed {
		return nil, apperror.ErrAborted
	}

	query := url.Values{}
	query.Set("playerName", playerName)
	query.Set("mapName", mapName)
	query.Set("numRounds", strconv.Itoa(numRounds))
	query.Set("appID", that.appID)

	env, err := that.fetch(ctx, buildPath("createGame", query))
	if err != nil {
		return nil, err
	}

	row, err := firstRow(env, 2)
	if err != nil {
		return nil, err
	}

	return &entity.GameSession{
		Token:    row[0],
		JoinCode: row[1],
	}, nil
}

func (that *Operations) GetGameState(ctx context.Context) (*entity.GameState, error) {
	env, err := that.fetchAuthorized(ctx, "getGameState", nil)
	if err != nil {
		return nil, err
	}

	row, err := firstRow(env, 2)
	if err != nil {
		return nil, err
	}

	state := &entity.GameState{
		State:   row[0],
		Round:   row[1],
		Message: entity.DefaultStateMessage,
	}

	// the message is the last column and may itself contain commas
	if len(row) >= 3 {
		state.Message = strings.Join(row[2:], ",")
	}

	return state, nil
}

// StartGame - closes the lobby of gameID. Success carries no data.
func (that *Operations) StartGame(ctx context.Context, gameID string) error {
	query := url.Values{}
	query.Set("gameID", gameID)

	_, err := that.fetchAuthorized(ctx, "startGame", query)

	return err
}

// JoinGame - joins an open game and returns the new session id.
func (that *Operations) JoinGame(ctx context.Context, gameID, playerName string) (string, error) {
	query := url.Values{}
	query.Set("playerName", playerName)
	query.Set("gameID", gameID)
	query.Set("appID", that.appID)

	env, err := that.fetch(ctx, buildPath("joinGame", query))
	if err != nil {
		return "", err
	}

	row, err := firstRow(env, 1)
	if err != nil {
		return "", err
	}

	return row[0], nil
}

// GetPlayers - lists players of gameID. An empty list is a valid answer.
func (that *Operations) GetPlayers(ctx context.Context, gameID string) ([]entity.Player, error) {
	query := url.Values{}
	query.Set("gameID", gameID)

	env, err := that.fetch(ctx, buildPath("getPlayers", query))
	if err != nil {
		return nil, err
	}

	rows := env.Rows()
	players := make([]entity.Player, 0, len(rows))

	for _, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("%w: player record %v", apperror.ErrMalformedRecord, row)
		}

		players = append(players, entity.Player{
			Name:   row[0],
			Colour: row[1],
		})
	}

	return players, nil
}

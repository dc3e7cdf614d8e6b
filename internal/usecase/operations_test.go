package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/fourweek-cli/internal/apperror"
	"github.com/rocketscienceinc/fourweek-cli/internal/entity"
	"github.com/rocketscienceinc/fourweek-cli/internal/transport/api"
	mockedUseCase "github.com/rocketscienceinc/fourweek-cli/mocks/usecase"
)

const testAppID = "8A-TestCLI"

var (
	errConnectionRefused = errors.New("connection refused")
	errStdinClosed       = errors.New("stdin closed")
	errDiskFull          = errors.New("disk full")
)

type deps struct {
	api         *mockedUseCase.MockapiClient
	credentials *mockedUseCase.MockcredentialProvider
	confirm     *mockedUseCase.Mockconfirmer
	calls       *mockedUseCase.MockcallReporter
}

func newOperations(t *testing.T) (*Operations, deps) {
	t.Helper()

	d := deps{
		api:         mockedUseCase.NewMockapiClient(t),
		credentials: mockedUseCase.NewMockcredentialProvider(t),
		confirm:     mockedUseCase.NewMockconfirmer(t),
		calls:       mockedUseCase.NewMockcallReporter(t),
	}

	d.calls.EXPECT().
		Fetched(mock.Anything, mock.Anything).
		Return().
		Maybe()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return NewOperations(logger, d.api, d.credentials, d.confirm, d.calls, testAppID), d
}

func body(raw string) *api.Response {
	return &api.Response{Body: raw}
}

func TestOperations_ListMaps(t *testing.T) {
	ctx := context.Background()

	t.Run("One map per record with its rounds", func(t *testing.T) {
		// Given: the service lists two maps
		ops, d := newOperations(t)

		d.api.EXPECT().
			Get(mock.Anything, "getMaps").
			Return(body("\"OK\",\"\"\n\"London\",\"4\",\"8\",\"12\"\n\"Preston\",\"6\""), nil).
			Once()

		// When: listing maps
		maps, err := ops.ListMaps(ctx)

		// Then: names and rounds are unquoted
		require.NoError(t, err)
		assert.Equal(t, []entity.Map{
			{Name: "London", Rounds: []string{"4", "8", "12"}},
			{Name: "Preston", Rounds: []string{"6"}},
		}, maps)
	})

	t.Run("Returns remote error on failure status", func(t *testing.T) {
		ops, d := newOperations(t)

		d.api.EXPECT().
			Get(mock.Anything, "getMaps").
			Return(body(`"ERR_DOWN","Maintenance, come back later"`), nil).
			Once()

		maps, err := ops.ListMaps(ctx)

		var remoteErr *apperror.RemoteError
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, "ERR_DOWN", remoteErr.Code)
		assert.Equal(t, "Maintenance, come back later", remoteErr.Description)
		assert.Nil(t, maps)
	})

	t.Run("Returns error on malformed payload", func(t *testing.T) {
		ops, d := newOperations(t)

		d.api.EXPECT().
			Get(mock.Anything, "getMaps").
			Return(body("<html>oops</html>"), nil).
			Once()

		_, err := ops.ListMaps(ctx)

		require.ErrorIs(t, err, apperror.ErrMalformedEnvelope)
	})

	t.Run("Returns transport error", func(t *testing.T) {
		ops, d := newOperations(t)

		d.api.EXPECT().
			Get(mock.Anything, "getMaps").
			Return((*api.Response)(nil), errConnectionRefused).
			Once()

		_, err := ops.ListMaps(ctx)

		require.ErrorIs(t, err, errConnectionRefused)
	})
}

func TestOperations_ReportsCalls(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("Reports url and elapsed time of each call", func(t *testing.T) {
		// Given: a transport that took 150ms to answer
		mockAPI := mockedUseCase.NewMockapiClient(t)
		mockCalls := mockedUseCase.NewMockcallReporter(t)
		ops := NewOperations(logger, mockAPI, mockedUseCase.NewMockcredentialProvider(t), mockedUseCase.NewMockconfirmer(t), mockCalls, testAppID)

		mockAPI.EXPECT().
			Get(mock.Anything, "getMaps").
			Return(&api.Response{
				URL:     "http://service/preston/getMaps",
				Body:    `"OK",""`,
				Elapsed: 150 * time.Millisecond,
			}, nil).
			Once()

		mockCalls.EXPECT().
			Fetched("http://service/preston/getMaps", 150*time.Millisecond).
			Return().
			Once()

		// When: listing maps
		_, err := ops.ListMaps(ctx)

		// Then: the call was reported with its url and latency
		require.NoError(t, err)
	})

	t.Run("Nothing reported when the transport fails", func(t *testing.T) {
		mockAPI := mockedUseCase.NewMockapiClient(t)
		mockCalls := mockedUseCase.NewMockcallReporter(t)
		ops := NewOperations(logger, mockAPI, mockedUseCase.NewMockcredentialProvider(t), mockedUseCase.NewMockconfirmer(t), mockCalls, testAppID)

		mockAPI.EXPECT().
			Get(mock.Anything, "getMaps").
			Return((*api.Response)(nil), errConnectionRefused).
			Once()

		_, err := ops.ListMaps(ctx)

		require.ErrorIs(t, err, errConnectionRefused)
		mockCalls.AssertNotCalled(t, "Fetched", mock.Anything, mock.Anything)
	})
}

func TestOperations_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates game after confirmation", func(t *testing.T) {
		// Given: the operator confirms and the service answers with a session
		ops, d := newOperations(t)

		d.confirm.EXPECT().
			Confirm(createGameQuestion, false).
			Return(true, nil).
			Once()

		d.api.EXPECT().
			Get(mock.Anything, "createGame?appID=8A-TestCLI&mapName=London&numRounds=8&playerName=Alice").
			Return(body("\"OK\",\"Game created\"\n\"tok-1\",\"JOIN42\""), nil).
			Once()

		// When: creating the game
		session, err := ops.CreateGame(ctx, "Alice", "London", 8)

		// Then: token and join code are returned
		require.NoError(t, err)
		assert.Equal(t, &entity.GameSession{Token: "tok-1", JoinCode: "JOIN42"}, session)
	})

	t.Run("Declined confirmation sends nothing", func(t *testing.T) {
		ops, d := newOperations(t)

		d.confirm.EXPECT().
			Confirm(createGameQuestion, false).
			Return(false, nil).
			Once()

		session, err := ops.CreateGame(ctx, "Alice", "London", 8)

		require.ErrorIs(t, err, apperror.ErrAborted)
		assert.Nil(t, session)
		d.api.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("Returns error if confirmation fails", func(t *testing.T) {
		ops, d := newOperations(t)

		d.confirm.EXPECT().
			Confirm(mock.Anything, mock.Anything).
			Return(false, errStdinClosed).
			Once()

		_, err := ops.CreateGame(ctx, "Alice", "London", 8)

		require.ErrorIs(t, err, errStdinClosed)
	})

	t.Run("Returns error on short record", func(t *testing.T) {
		ops, d := newOperations(t)

		d.confirm.EXPECT().
			Confirm(mock.Anything, mock.Anything).
			Return(true, nil).
			Once()

		d.api.EXPECT().
			Get(mock.Anything, mock.Anything).
			Return(body("\"OK\",\"\"\n\"tok-only\""), nil).
			Once()

		_, err := ops.CreateGame(ctx, "Alice", "London", 8)

		require.ErrorIs(t, err, apperror.ErrMalformedRecord)
	})
}

func TestOperations_PersistToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Saves when accepted", func(t *testing.T) {
		ops, d := newOperations(t)

		d.confirm.EXPECT().
			Confirm(mock.Anything, true).
			Return(true, nil).
			Once()

		d.credentials.EXPECT().
			Save(mock.Anything, "tok-1").
			Return(nil).
			Once()

		saved, err := ops.PersistToken(ctx, "tok-1")

		require.NoError(t, err)
		assert.True(t, saved)
	})

	t.Run("Skips save when declined", func(t *testing.T) {
		ops, d := newOperations(t)

		d.confirm.EXPECT().
			Confirm(mock.Anything, true).
			Return(false, nil).
			Once()

		saved, err := ops.PersistToken(ctx, "tok-1")

		require.NoError(t, err)
		assert.False(t, saved)
		d.credentials.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Returns error if store fails", func(t *testing.T) {
		ops, d := newOperations(t)

		d.confirm.EXPECT().
			Confirm(mock.Anything, true).
			Return(true, nil).
			Once()

		d.credentials.EXPECT().
			Save(mock.Anything, "tok-1").
			Return(errDiskFull).
			Once()

		saved, err := ops.PersistToken(ctx, "tok-1")

		require.ErrorIs(t, err, errDiskFull)
		assert.False(t, saved)
	})
}

func TestOperations_GetGameState(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults message when only two fields", func(t *testing.T) {
		// Given: a stored token and a two-field state record
		ops, d := newOperations(t)

		d.credentials.EXPECT().
			Resolve(mock.Anything).
			Return("tok-1", nil).
			Once()

		d.api.EXPECT().
			Get(mock.Anything, "getGameState;jsessionid=tok-1").
			Return(body("\"OK\",\"\"\n\"OPEN\",\"0\""), nil).
			Once()

		// When: fetching the state
		state, err := ops.GetGameState(ctx)

		// Then: the placeholder message is used
		require.NoError(t, err)
		assert.Equal(t, &entity.GameState{State: "OPEN", Round: "0", Message: entity.DefaultStateMessage}, state)
	})

	t.Run("Uses third field verbatim", func(t *testing.T) {
		ops, d := newOperations(t)

		d.credentials.EXPECT().
			Resolve(mock.Anything).
			Return("tok-1", nil).
			Once()

		d.api.EXPECT().
			Get(mock.Anything, "getGameState;jsessionid=tok-1").
			Return(body("\"OK\",\"\"\n\"RUNNING\",\"3\",\"Mr X was seen at Preston\""), nil).
			Once()

		state, err := ops.GetGameState(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Mr X was seen at Preston", state.Message)
		assert.Equal(t, "3", state.Round)
	})

	t.Run("Keeps commas inside the message", func(t *testing.T) {
		// Given: a state record whose message was split on its comma
		ops, d := newOperations(t)

		d.credentials.EXPECT().
			Resolve(mock.Anything).
			Return("tok-1", nil).
			Once()

		d.api.EXPECT().
			Get(mock.Anything, "getGameState;jsessionid=tok-1").
			Return(body("\"OK\",\"\"\n\"RUNNING\",\"3\",\"seen at A, B\""), nil).
			Once()

		// When: fetching the state
		state, err := ops.GetGameState(ctx)

		// Then: the whole message survives
		require.NoError(t, err)
		assert.Equal(t, "seen at A, B", state.Message)
	})

	t.Run("Returns error if token cannot be resolved", func(t *testing.T) {
		ops, d := newOperations(t)

		d.credentials.EXPECT().
			Resolve(mock.Anything).
			Return("", errStdinClosed).
			Once()

		_, err := ops.GetGameState(ctx)

		require.ErrorIs(t, err, errStdinClosed)
		d.api.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("Returns remote error for expired session", func(t *testing.T) {
		ops, d := newOperations(t)

		d.credentials.EXPECT().
			Resolve(mock.Anything).
			Return("old", nil).
			Once()

		d.api.EXPECT().
			Get(mock.Anything, "getGameState;jsessionid=old").
			Return(body(`"ERR_SESSION","Session expired"`), nil).
			Once()

		_, err := ops.GetGameState(ctx)

		var remoteErr *apperror.RemoteError
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, "ERR_SESSION", remoteErr.Code)
	})
}

func TestOperations_StartGame(t *testing.T) {
	ctx := context.Background()

	// Given: a stored token
	ops, d := newOperations(t)

	d.credentials.EXPECT().
		Resolve(mock.Anything).
		Return("tok-1", nil).
		Once()

	d.api.EXPECT().
		Get(mock.Anything, "startGame;jsessionid=tok-1?gameID=42").
		Return(body(`"OK","Game started"`), nil).
		Once()

	// When: starting the game
	err := ops.StartGame(ctx, "42")

	// Then: success carries no data
	require.NoError(t, err)
}

func TestOperations_JoinGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the session id", func(t *testing.T) {
		ops, d := newOperations(t)

		d.api.EXPECT().
			Get(mock.Anything, "joinGame?appID=8A-TestCLI&gameID=42&playerName=Bob").
			Return(body("\"OK\",\"\"\n\"sess-9\""), nil).
			Once()

		sessionID, err := ops.JoinGame(ctx, "42", "Bob")

		require.NoError(t, err)
		assert.Equal(t, "sess-9", sessionID)
		d.credentials.AssertNotCalled(t, "Resolve", mock.Anything)
	})

	t.Run("Returns error when no record", func(t *testing.T) {
		ops, d := newOperations(t)

		d.api.EXPECT().
			Get(mock.Anything, mock.Anything).
			Return(body(`"OK",""`), nil).
			Once()

		_, err := ops.JoinGame(ctx, "42", "Bob")

		require.ErrorIs(t, err, apperror.ErrMalformedRecord)
	})
}

func TestOperations_GetPlayers(t *testing.T) {
	ctx := context.Background()

	t.Run("Lists players", func(t *testing.T) {
		ops, d := newOperations(t)

		d.api.EXPECT().
			Get(mock.Anything, "getPlayers?gameID=42").
			Return(body("\"OK\",\"\"\n\"Alice\",\"red\"\n\"Bob\",\"blue\""), nil).
			Once()

		players, err := ops.GetPlayers(ctx, "42")

		require.NoError(t, err)
		assert.Equal(t, []entity.Player{{Name: "Alice", Colour: "red"}, {Name: "Bob", Colour: "blue"}}, players)
	})

	t.Run("No records is an empty list", func(t *testing.T) {
		// Given: a success status with no data lines
		ops, d := newOperations(t)

		d.api.EXPECT().
			Get(mock.Anything, "getPlayers?gameID=404").
			Return(body("\"OK\",\"\"\n"), nil).
			Once()

		// When: listing players
		players, err := ops.GetPlayers(ctx, "404")

		// Then: no error and no players
		require.NoError(t, err)
		assert.Empty(t, players)
	})

	t.Run("Returns error on short record", func(t *testing.T) {
		ops, d := newOperations(t)

		d.api.EXPECT().
			Get(mock.Anything, mock.Anything).
			Return(body("\"OK\",\"\"\n\"Alice\""), nil).
			Once()

		_, err := ops.GetPlayers(ctx, "42")

		require.ErrorIs(t, err, apperror.ErrMalformedRecord)
	})
}

func TestOperations_MakeMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Moves with a valid ticket", func(t *testing.T) {
		ops, d := newOperations(t)

		d.credentials.EXPECT().
			Resolve(mock.Anything).
			Return("tok-1", nil).
			Once()

		d.api.EXPECT().
			Get(mock.Anything, "makeMove;jsessionid=tok-1?destination=Preston&ticket=red").
			Return(body(`"OK","Moved"`), nil).
			Once()

		require.NoError(t, ops.MakeMove(ctx, "Preston", "red"))
	})

	t.Run("Invalid ticket makes no call", func(t *testing.T) {
		// Given: an operation with no expectations on its dependencies
		ops, d := newOperations(t)

		// When: moving with a blue ticket
		err := ops.MakeMove(ctx, "Preston", "blue")

		// Then: validation fails locally and nothing is resolved or sent
		require.ErrorIs(t, err, apperror.ErrInvalidTicket)
		d.api.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		d.credentials.AssertNotCalled(t, "Resolve", mock.Anything)
	})
}

func TestOperations_GetPosition(t *testing.T) {
	ctx := context.Background()

	ops, d := newOperations(t)

	d.credentials.EXPECT().
		Resolve(mock.Anything).
		Return("tok-1", nil).
		Once()

	d.api.EXPECT().
		Get(mock.Anything, "getPosition;jsessionid=tok-1").
		Return(body("\"OK\",\"\"\n\"Preston Bus Station\""), nil).
		Once()

	location, err := ops.GetPosition(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Preston Bus Station", location)
}

func TestOperations_GetLeaderboard(t *testing.T) {
	ctx := context.Background()

	t.Run("Ranks teams by score", func(t *testing.T) {
		// Given: two teams in ascending order
		ops, d := newOperations(t)

		d.api.EXPECT().
			Get(mock.Anything, "getLeaderboard").
			Return(body("\"OK\",\"All good\"\n\"TeamA\",\"10.5\"\n\"TeamB\",\"20.0\""), nil).
			Once()

		// When: fetching the leaderboard
		board, err := ops.GetLeaderboard(ctx)

		// Then: TeamB leads
		require.NoError(t, err)
		assert.Equal(t, []entity.TeamScore{{Name: "TeamB", Score: 20}, {Name: "TeamA", Score: 10.5}}, board.Teams)
		assert.Equal(t, "TeamB", board.Top.Name)
	})

	t.Run("Ties keep reversed order", func(t *testing.T) {
		ops, d := newOperations(t)

		d.api.EXPECT().
			Get(mock.Anything, "getLeaderboard").
			Return(body("\"OK\",\"\"\n\"TeamA\",\"5\"\n\"TeamB\",\"5\""), nil).
			Once()

		board, err := ops.GetLeaderboard(ctx)

		require.NoError(t, err)
		assert.Equal(t, "TeamB", board.Teams[0].Name)
		assert.Equal(t, "TeamA", board.Teams[1].Name)
		assert.Equal(t, "TeamB", board.Top.Name)
	})

	t.Run("Returns error on non-numeric score", func(t *testing.T) {
		ops, d := newOperations(t)

		d.api.EXPECT().
			Get(mock.Anything, "getLeaderboard").
			Return(body("\"OK\",\"\"\n\"TeamA\",\"lots\""), nil).
			Once()

		_, err := ops.GetLeaderboard(ctx)

		require.ErrorIs(t, err, apperror.ErrMalformedRecord)
	})

	t.Run("Returns error on extra fields", func(t *testing.T) {
		ops, d := newOperations(t)

		d.api.EXPECT().
			Get(mock.Anything, "getLeaderboard").
			Return(body("\"OK\",\"\"\n\"Team, A\",\"5\""), nil).
			Once()

		_, err := ops.GetLeaderboard(ctx)

		require.ErrorIs(t, err, apperror.ErrMalformedRecord)
	})
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/fourweek-cli/internal/apperror"
	"github.com/rocketscienceinc/fourweek-cli/internal/entity"
	"github.com/rocketscienceinc/fourweek-cli/internal/presenter"
	"github.com/rocketscienceinc/fourweek-cli/transport/rest"
)

type operations interface {
	ListMaps(ctx context.Context) ([]entity.Map, error)

	CreateGame(ctx context.Context, playerName, mapName string, numRounds int) (*entity.GameSession, error)
	PersistToken(ctx context.Context, token string) (bool, error)
	GetGameState(ctx context.Context) (*entity.GameState, error)
	StartGame(ctx context.Context, gameID string) error
	JoinGame(ctx context.Context, gameID, playerName string) (string, error)
	GetPlayers(ctx context.Context, gameID string) ([]entity.Player, error)

	MakeMove(ctx context.Context, destination, ticket string) error
	GetPosition(ctx context.Context) (string, error)

	GetLeaderboard(ctx context.Context) (*entity.Leaderboard, error)
}

type commands struct {
	logger *slog.Logger
	ops    operations
	view   *presenter.Presenter
}

// NewRootCommand - builds the grouped command tree: map, game, player, leaderboard and glass.
func NewRootCommand(logger *slog.Logger, ops operations, view *presenter.Presenter, glassPort string) *cobra.Command {
	that := &commands{
		logger: logger,
		ops:    ops,
		view:   view,
	}

	root := &cobra.Command{
		Use:           "fwcli",
		Short:         "A CLI tool for the UCLan computing challenge API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	mapCmd := &cobra.Command{Use: "map", Short: "Subcommands for interacting with the maps API"}
	mapCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Get list of available maps",
		Args:  cobra.NoArgs,
		RunE:  that.listMaps,
	})

	gameCmd := &cobra.Command{Use: "game", Short: "Subcommands for interacting with game instances (or creating new ones)"}
	gameCmd.AddCommand(
		&cobra.Command{
			Use:   "create <playerName> <mapName> <numRounds>",
			Short: "Create a new game, requires playerName, mapName and numRounds (see map list)",
			Args:  cobra.ExactArgs(3),
			RunE:  that.createGame,
		},
		&cobra.Command{
			Use:   "state",
			Short: "Get the state of the user's current game",
			Args:  cobra.NoArgs,
			RunE:  that.gameState,
		},
		&cobra.Command{
			Use:   "start <gameID>",
			Short: "Start an existing game, requires a session",
			Args:  cobra.ExactArgs(1),
			RunE:  that.startGame,
		},
		&cobra.Command{
			Use:   "join <gameID> <playerName>",
			Short: "Join an existing game, state must be OPEN",
			Args:  cobra.ExactArgs(2),
			RunE:  that.joinGame,
		},
		&cobra.Command{
			Use:   "players <gameID>",
			Short: "Get all players in a game",
			Args:  cobra.ExactArgs(1),
			RunE:  that.players,
		},
	)

	playerCmd := &cobra.Command{Use: "player", Short: "Subcommands for getting/controlling players in games"}
	playerCmd.AddCommand(
		&cobra.Command{
			Use:   "move <destination> <ticket>",
			Short: "Move your player to a new destination using a yellow, red or green ticket",
			Args:  cobra.ExactArgs(2),
			RunE:  that.move,
		},
		&cobra.Command{
			Use:   "position",
			Short: "Get your player's current position",
			Args:  cobra.NoArgs,
			RunE:  that.position,
		},
	)

	leaderboardCmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Get the current leaderboard",
		Args:  cobra.NoArgs,
		RunE:  that.leaderboard,
	}

	glassCmd := &cobra.Command{
		Use:   "glass",
		Short: "Serve a local page showing the maps of the service",
		Args:  cobra.NoArgs,
		RunE:  that.glass,
	}
	glassCmd.Flags().String("port", glassPort, "port to serve the looking glass on")

	root.AddCommand(mapCmd, gameCmd, playerCmd, leaderboardCmd, glassCmd)

	return root
}

func (that *commands) listMaps(cmd *cobra.Command, _ []string) error {
	that.view.Docs(presenter.DocsListMaps)

	maps, err := that.ops.ListMaps(cmd.Context())
	if err != nil {
		return err
	}

	that.view.Maps(maps)

	return nil
}

func (that *commands) createGame(cmd *cobra.Command, args []string) error {
	that.view.Docs(presenter.DocsCreateGame)

	numRounds, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("numRounds must be a number, got %q", args[2])
	}

	that.view.PublicGameNotice()

	session, err := that.ops.CreateGame(cmd.Context(), args[0], args[1], numRounds)
	if errors.Is(err, apperror.ErrAborted) {
		that.view.Aborted()
		return nil
	}

	if err != nil {
		return err
	}

	that.view.GameCreated(session)

	return that.persist(cmd.Context(), session.Token)
}

func (that *commands) gameState(cmd *cobra.Command, _ []string) error {
	that.view.Docs(presenter.DocsGameState)

	state, err := that.ops.GetGameState(cmd.Context())
	if err != nil {
		return err
	}

	that.view.GameState(state)

	return nil
}

func (that *commands) startGame(cmd *cobra.Command, args []string) error {
	that.view.Docs(presenter.DocsStartGame)

	if err := that.ops.StartGame(cmd.Context(), args[0]); err != nil {
		return err
	}

	that.view.GameStarted()

	return nil
}

func (that *commands) joinGame(cmd *cobra.Command, args []string) error {
	that.view.Docs(presenter.DocsJoinGame)

	gameID, playerName := args[0], args[1]

	sessionID, err := that.ops.JoinGame(cmd.Context(), gameID, playerName)
	if err != nil {
		return err
	}

	that.view.Joined(playerName, sessionID)

	return that.persist(cmd.Context(), sessionID)
}

func (that *commands) players(cmd *cobra.Command, args []string) error {
	that.view.Docs(presenter.DocsGetPlayers)

	players, err := that.ops.GetPlayers(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	that.view.Players(players)

	return nil
}

func (that *commands) move(cmd *cobra.Command, args []string) error {
	that.view.Docs(presenter.DocsMakeMove)

	if err := that.ops.MakeMove(cmd.Context(), args[0], args[1]); err != nil {
		return err
	}

	that.view.Moved()

	return nil
}

func (that *commands) position(cmd *cobra.Command, _ []string) error {
	that.view.Docs(presenter.DocsGetPosition)

	location, err := that.ops.GetPosition(cmd.Context())
	if err != nil {
		return err
	}

	that.view.Position(location)

	return nil
}

func (that *commands) leaderboard(cmd *cobra.Command, _ []string) error {
	board, err := that.ops.GetLeaderboard(cmd.Context())
	if err != nil {
		return err
	}

	that.view.Leaderboard(board)

	return nil
}

func (that *commands) glass(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetString("port")
	if err != nil {
		return fmt.Errorf("failed to read port flag: %w", err)
	}

	that.logger.Info("Starting looking glass", "port", port)

	return rest.Start(cmd.Context(), that.logger, port, that.ops)
}

func (that *commands) persist(ctx context.Context, token string) error {
	saved, err := that.ops.PersistToken(ctx, token)
	if err != nil {
		return err
	}

	that.view.TokenSaved(saved)

	return nil
}

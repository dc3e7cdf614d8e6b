package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/fourweek-cli/internal/config"
	"github.com/rocketscienceinc/fourweek-cli/internal/presenter"
	"github.com/rocketscienceinc/fourweek-cli/internal/repository"
	"github.com/rocketscienceinc/fourweek-cli/internal/repository/storage"
	"github.com/rocketscienceinc/fourweek-cli/internal/service"
	"github.com/rocketscienceinc/fourweek-cli/internal/terminal"
	"github.com/rocketscienceinc/fourweek-cli/internal/transport/api"
	"github.com/rocketscienceinc/fourweek-cli/internal/usecase"
	"github.com/rocketscienceinc/fourweek-cli/transport/cli"
)

var (
	ErrAddrNotFound      = errors.New("redis address string is empty")
	ErrUnknownTokenStore = errors.New("unknown session token store")
)

// RunApp - runs one command given by args, reading answers from in and writing results to out.
func RunApp(logger *slog.Logger, conf *config.Config, args []string, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	tokenRepo, closeStore, err := newTokenRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeStore(); err != nil {
			log.Error("could not close token store", "error", err)
		}
	}()

	term := terminal.New(in, out)
	view := presenter.New(out, conf.API.DocsURL, conf.Leaderboard.HighlightTeam)

	apiClient := api.New(logger, conf.API.BaseURL, conf.API.Timeout)
	credentials := service.NewCredentialService(logger, tokenRepo, term, view)
	ops := usecase.NewOperations(logger, apiClient, credentials, term, view, conf.API.AppID)

	view.Welcome()

	root := cli.NewRootCommand(logger, ops, view, conf.Glass.Port)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)

	if err = root.ExecuteContext(ctx); err != nil {
		view.Failure(err)
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}

func newTokenRepository(ctx context.Context, conf *config.Config) (repository.TokenRepository, func() error, error) {
	switch conf.Session.Store {
	case config.StoreFile:
		return repository.NewFileTokenRepository(conf.Session.TokenPath), func() error { return nil }, nil
	case config.StoreRedis:
		if conf.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisAddrString := conf.Redis.GetRedisAddr()

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisTokenRepository(redisStorage.Connection, conf.Session.RedisKey), redisStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownTokenStore, conf.Session.Store)
	}
}

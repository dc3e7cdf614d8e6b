package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/fourweek-cli/internal/apperror"
)

const tokenQuestion = "This command requires a token, if you have one please enter it now:"

type CredentialService interface {
	Resolve(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
}

type tokenRepo interface {
	Get(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
}

type tokenAsker interface {
	Ask(question string) (string, error)
}

type tokenReporter interface {
	TokenFromStore()
}

type credentialService struct {
	logger    *slog.Logger
	tokenRepo tokenRepo
	asker     tokenAsker
	reporter  tokenReporter
}

func NewCredentialService(logger *slog.Logger, tokenRepo tokenRepo, asker tokenAsker, reporter tokenReporter) CredentialService {
	return &credentialService{
		logger:    logger.With("component", "credentials"),
		tokenRepo: tokenRepo,
		asker:     asker,
		reporter:  reporter,
	}
}

// Resolve - returns the stored session token, or asks the operator for one when nothing is stored.
func (that *credentialService) Resolve(ctx context.Context) (string, error) {
	token, err := that.tokenRepo.Get(ctx)
	if err == nil {
		that.logger.Info("read session token from store")
		that.reporter.TokenFromStore()

		return token, nil
	}

	if !errors.Is(err, apperror.ErrTokenNotFound) {
		return "", fmt.Errorf("could not read session token: %w", err)
	}

	token, err = that.asker.Ask(tokenQuestion)
	if err != nil {
		return "", fmt.Errorf("could not ask for session token: %w", err)
	}

	return token, nil
}

func (that *credentialService) Save(ctx context.Context, token string) error {
	if err := that.tokenRepo.Save(ctx, token); err != nil {
		return fmt.Errorf("could not save session token: %w", err)
	}

	that.logger.Info("session token saved")

	return nil
}

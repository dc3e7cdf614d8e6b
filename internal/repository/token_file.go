package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rocketscienceinc/fourweek-cli/internal/apperror"
)

const tokenFileMode = 0o600

type fileToken struct {
	path string
}

func NewFileTokenRepository(path string) TokenRepository {
	return &fileToken{
		path: path,
	}
}

// Get - returns the whole file content, or apperror.ErrTokenNotFound when there is no file.
func (that *fileToken) Get(_ context.Context) (string, error) {
	content, err := os.ReadFile(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", apperror.ErrTokenNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}

	return string(content), nil
}

func (that *fileToken) Save(_ context.Context, token string) error {
	if err := os.WriteFile(that.path, []byte(token), tokenFileMode); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

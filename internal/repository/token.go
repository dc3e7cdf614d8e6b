package repository

import "context"

// TokenRepository keeps the single session token of the local operator.
type TokenRepository interface {
	Get(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
}

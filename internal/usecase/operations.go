package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/rocketscienceinc/fourweek-cli/internal/apperror"
	"github.com/rocketscienceinc/fourweek-cli/internal/envelope"
	"github.com/rocketscienceinc/fourweek-cli/internal/transport/api"
)

const sessionParam = ";jsessionid="

type apiClient interface {
	Get(ctx context.Context, path string) (*api.Response, error)
}

type credentialProvider interface {
	Resolve(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
}

type confirmer interface {
	Confirm(question string, defaultYes bool) (bool, error)
}

// callReporter is told about every call that reached the service.
type callReporter interface {
	Fetched(url string, elapsed time.Duration)
}

// Operations runs one remote call per method against the game service.
type Operations struct {
	logger      *slog.Logger
	api         apiClient
	credentials credentialProvider
	confirm     confirmer
	calls       callReporter
	appID       string
}

func NewOperations(logger *slog.Logger, api apiClient, credentials credentialProvider, confirm confirmer, calls callReporter, appID string) *Operations {
	return &Operations{
		logger:      logger.With("component", "operations"),
		api:         api,
		credentials: credentials,
		confirm:     confirm,
		calls:       calls,
		appID:       appID,
	}
}

// PersistToken - offers to keep token for later commands, reports whether it was saved.
func (that *Operations) PersistToken(ctx context.Context, token string) (bool, error) {
	save, err := that.confirm.Confirm("Save token to local machine?", true)
	if err != nil {
		return false, fmt.Errorf("failed to confirm token save: %w", err)
	}

	if !save {
		return false, nil
	}

	if err = that.credentials.Save(ctx, token); err != nil {
		return false, fmt.Errorf("failed to persist token: %w", err)
	}

	return true, nil
}

// fetch - calls the endpoint and decodes the payload, failing on any status other than OK.
func (that *Operations) fetch(ctx context.Context, path string) (*envelope.Envelope, error) {
	resp, err := that.api.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to call service: %w", err)
	}

	that.calls.Fetched(resp.URL, resp.Elapsed)

	env, err := envelope.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !env.OK() {
		that.logger.Warn("service rejected request", "code", env.Status.Code, "description", env.Status.Description)

		return nil, &apperror.RemoteError{
			Code:        env.Status.Code,
			Description: env.Status.Description,
		}
	}

	return env, nil
}

// fetchAuthorized - resolves the session token and calls endpoint;jsessionid=<token>?query.
func (that *Operations) fetchAuthorized(ctx context.Context, endpoint string, query url.Values) (*envelope.Envelope, error) {
	token, err := that.credentials.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session token: %w", err)
	}

	return that.fetch(ctx, buildPath(endpoint+sessionParam+token, query))
}

func buildPath(endpoint string, query url.Values) string {
	if len(query) == 0 {
		return endpoint
	}

	return endpoint + "?" + query.Encode()
}

// firstRow - returns the first data row, requiring at least minFields fields.
func firstRow(env *envelope.Envelope, minFields int) ([]string, error) {
	rows := env.Rows()
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no data records", apperror.ErrMalformedRecord)
	}

	if len(rows[0]) < minFields {
		return nil, fmt.Errorf("%w: want %d fields, got %d", apperror.ErrMalformedRecord, minFields, len(rows[0]))
	}

	return rows[0], nil
}

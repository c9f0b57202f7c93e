package client

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MrSnakeDoc/bookhive/internal/rpc/authv1"
)

// UserDirectory resolves user summaries from the auth service. Every call
// carries a bounded deadline so a stalled remote cannot hold a request
// hostage.
type UserDirectory struct {
	client  authv1.AuthServiceClient
	timeout time.Duration
	logger  logger.Logger
}

func NewUserDirectory(conn *grpc.ClientConn, timeout time.Duration, log logger.Logger) *UserDirectory {
	return &UserDirectory{
		client:  authv1.NewAuthServiceClient(conn),
		timeout: timeout,
		logger:  log,
	}
}

// Lookup fetches the summary for one user. A user the auth service does not
// know yields a NotFoundError; transport failures and every other remote
// status yield a RemoteUnavailableError so callers can tell "absent" from
// "unreachable".
func (d *UserDirectory) Lookup(ctx context.Context, userID uuid.UUID) (*domain.UserSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	resp, err := d.client.GetUserDetails(ctx, &authv1.GetUserDetailsRequest{UserId: userID.String()})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, &domain.NotFoundError{Entity: "user", ID: userID.String()}
		}
		d.logger.Warn("user lookup failed",
			logger.String("user_id", userID.String()),
			logger.Error(err),
		)
		return nil, &domain.RemoteUnavailableError{Service: "auth", Err: err}
	}

	id, err := uuid.Parse(resp.GetUserId())
	if err != nil {
		return nil, &domain.RemoteUnavailableError{Service: "auth", Err: err}
	}
	return &domain.UserSummary{
		UserID:    id,
		FirstName: resp.GetFirstName(),
		LastName:  resp.GetLastName(),
	}, nil
}

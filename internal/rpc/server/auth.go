package server

import (
	"context"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MrSnakeDoc/bookhive/internal/rpc/authv1"
)

// UserGetter is the slice of the user store the auth servicer needs.
type UserGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// AuthService serves user detail lookups to other services.
type AuthService struct {
	authv1.UnimplementedAuthServiceServer

	users  UserGetter
	logger logger.Logger
}

func NewAuthService(users UserGetter, log logger.Logger) *AuthService {
	return &AuthService{users: users, logger: log}
}

// GetUserDetails returns the public summary of one user. Malformed ids are
// the caller's fault (InvalidArgument); storage failures are reported as a
// bare Internal so no backend detail crosses the wire.
func (s *AuthService) GetUserDetails(ctx context.Context, req *authv1.GetUserDetailsRequest) (*authv1.UserDetailsResponse, error) {
	id, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid user id %q", req.GetUserId())
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, status.Errorf(codes.NotFound, "user %s not found", id)
		}
		s.logger.Error("user details lookup failed",
			logger.String("user_id", id.String()),
			logger.Error(err),
		)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &authv1.UserDetailsResponse{
		UserId:    user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

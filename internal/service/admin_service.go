package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
)

// AdminService implements the admin-only RPCs: user and group creation.
type AdminService struct {
	authenticator auth.Authenticator
	store         storage.Store
	logger        *slog.Logger
}

var _ api.AdminServiceHandler = (*AdminService)(nil)

// NewAdminService creates a new AdminService.
func NewAdminService(authenticator auth.Authenticator, store storage.Store, logger *slog.Logger) *AdminService {
	return &AdminService{
		authenticator: authenticator,
		store:         store,
		logger:        logger,
	}
}

// CreateUser registers a new account on behalf of an admin.
func (s *AdminService) CreateUser(ctx context.Context, req *connect.Request[api.CreateUserRequest]) (*connect.Response[api.CreateUserResponse], error) {
	email := strings.TrimSpace(req.Msg.Email)
	username := strings.TrimSpace(req.Msg.Username)
	s.logger.Info("CreateUser request received", "email", email, "admin_id", middleware.GetUserID(ctx))

	if err := models.ValidateNewUser(email, username, req.Msg.Password); err != nil {
		return nil, toConnectError(err)
	}

	user, err := s.authenticator.Register(ctx, email, username, req.Msg.Password, req.Msg.IsAdmin)
	if err != nil {
		s.logger.Error("CreateUser failed", "email", email, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("User created", "user_id", user.ID, "is_admin", user.IsAdmin)
	return connect.NewResponse(&api.CreateUserResponse{User: toAPIUser(user)}), nil
}

// ListUsers returns every account ordered by creation.
func (s *AdminService) ListUsers(ctx context.Context, req *connect.Request[api.ListUsersRequest]) (*connect.Response[api.ListUsersResponse], error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		s.logger.Error("ListUsers failed", "error", err)
		return nil, toConnectError(err)
	}

	resp := &api.ListUsersResponse{Users: make([]*api.User, len(users))}
	for i, u := range users {
		resp.Users[i] = toAPIUser(u)
	}

	s.logger.Info("ListUsers successful", "count", len(users))
	return connect.NewResponse(resp), nil
}

// CreateGroup creates a group with a fixed member list. The calling admin is
// recorded as the creator but only becomes a member if listed.
func (s *AdminService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	s.logger.Info("CreateGroup request received",
		"name", name,
		"members_count", len(req.Msg.UserIds),
	)

	if err := models.ValidateNewGroup(name, req.Msg.UserIds); err != nil {
		return nil, toConnectError(err)
	}

	group := &models.Group{
		Name:      name,
		CreatedBy: middleware.GetUserID(ctx),
	}
	if err := s.store.CreateGroup(ctx, group, req.Msg.UserIds); err != nil {
		s.logger.Error("CreateGroup failed", "error", err)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, toConnectError(&models.ValidationError{
				Field:   "user_ids",
				Message: fmt.Sprintf("unknown user: %v", err),
			})
		}
		return nil, toConnectError(err)
	}

	s.logger.Info("Group created", "group_id", group.ID, "members_count", len(group.Members))
	return connect.NewResponse(&api.CreateGroupResponse{Group: toAPIGroup(group)}), nil
}

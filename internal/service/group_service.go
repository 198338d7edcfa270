package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/membership"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
)

// GroupService implements the member-facing group RPCs. Every group-scoped
// call passes the membership gate before touching the ledger.
type GroupService struct {
	store  storage.Store
	gate   *membership.Gate
	logger *slog.Logger
	now    func() time.Time
}

var _ api.GroupServiceHandler = (*GroupService)(nil)

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store, logger *slog.Logger) *GroupService {
	return &GroupService{
		store:  store,
		gate:   membership.NewGate(store),
		logger: logger,
		now:    time.Now,
	}
}

// caller returns the verified identity placed in the context by the auth
// interceptor.
func caller(ctx context.Context) (middleware.Identity, error) {
	id, ok := middleware.IdentityFrom(ctx)
	if !ok {
		return middleware.Identity{}, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return id, nil
}

// authorize resolves the caller and checks they belong to groupID.
func (s *GroupService) authorize(ctx context.Context, groupID string) (middleware.Identity, error) {
	id, err := caller(ctx)
	if err != nil {
		return id, err
	}
	if groupID == "" {
		return id, toConnectError(&models.ValidationError{Field: "group_id", Message: "required"})
	}
	if err := s.gate.RequireMember(ctx, groupID, id.UserID); err != nil {
		s.logger.Warn("Membership check failed", "group_id", groupID, "user_id", id.UserID, "error", err)
		return id, toConnectError(err)
	}
	return id, nil
}

// ListGroups returns the groups the caller belongs to.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	groups, err := s.store.ListGroupsForUser(ctx, id.UserID)
	if err != nil {
		s.logger.Error("ListGroups failed", "user_id", id.UserID, "error", err)
		return nil, toConnectError(err)
	}

	resp := &api.ListGroupsResponse{Groups: make([]*api.Group, len(groups))}
	for i, g := range groups {
		resp.Groups[i] = toAPIGroup(g)
	}

	s.logger.Info("ListGroups successful", "user_id", id.UserID, "count", len(groups))
	return connect.NewResponse(resp), nil
}

// GetGroup retrieves a group with its members.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	if _, err := s.authorize(ctx, req.Msg.GroupId); err != nil {
		return nil, err
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		s.logger.Error("GetGroup failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("GetGroup successful", "group_id", group.ID, "name", group.Name)
	return connect.NewResponse(&api.GetGroupResponse{Group: toAPIGroup(group)}), nil
}

// AddExpense records an expense paid by the caller.
func (s *GroupService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	description := strings.TrimSpace(req.Msg.Description)
	if err := models.ValidateNewExpense(req.Msg.Amount, description); err != nil {
		return nil, toConnectError(err)
	}

	id, err := s.authorize(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		ID:             uuid.New().String(),
		GroupID:        req.Msg.GroupId,
		PaidBy:         id.UserID,
		PaidByUsername: id.Username,
		Amount:         req.Msg.Amount,
		Description:    description,
		CreatedAt:      s.now().Unix(),
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		s.logger.Error("AddExpense failed", "group_id", expense.GroupID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Expense added",
		"group_id", expense.GroupID,
		"expense_id", expense.ID,
		"paid_by", expense.PaidBy,
		"amount", expense.Amount,
	)
	return connect.NewResponse(&api.AddExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// ListExpenses returns the group's expenses, newest first.
func (s *GroupService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	if _, err := s.authorize(ctx, req.Msg.GroupId); err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpensesByGroup(ctx, req.Msg.GroupId)
	if err != nil {
		s.logger.Error("ListExpenses failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	resp := &api.ListExpensesResponse{Expenses: make([]*api.Expense, len(expenses))}
	for i, e := range expenses {
		resp.Expenses[i] = toAPIExpense(e)
	}

	s.logger.Info("ListExpenses successful", "group_id", req.Msg.GroupId, "count", len(expenses))
	return connect.NewResponse(resp), nil
}

// MakePayment records a payment from the caller to another member.
func (s *GroupService) MakePayment(ctx context.Context, req *connect.Request[api.MakePaymentRequest]) (*connect.Response[api.MakePaymentResponse], error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateNewPayment(id.UserID, req.Msg.ToUserId, req.Msg.Amount); err != nil {
		return nil, toConnectError(err)
	}
	if _, err := s.authorize(ctx, req.Msg.GroupId); err != nil {
		return nil, err
	}
	if err := s.gate.RequireMember(ctx, req.Msg.GroupId, req.Msg.ToUserId); err != nil {
		s.logger.Warn("Payee is not a member", "group_id", req.Msg.GroupId, "to_user_id", req.Msg.ToUserId)
		return nil, toConnectError(err)
	}

	payment := &models.Payment{
		ID:         uuid.New().String(),
		GroupID:    req.Msg.GroupId,
		FromUserID: id.UserID,
		ToUserID:   req.Msg.ToUserId,
		Amount:     req.Msg.Amount,
		CreatedAt:  s.now().Unix(),
	}
	if err := s.store.CreatePayment(ctx, payment); err != nil {
		s.logger.Error("MakePayment failed", "group_id", payment.GroupID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Payment recorded",
		"group_id", payment.GroupID,
		"payment_id", payment.ID,
		"from_user_id", payment.FromUserID,
		"to_user_id", payment.ToUserID,
		"amount", payment.Amount,
	)
	return connect.NewResponse(&api.MakePaymentResponse{Payment: toAPIPayment(payment)}), nil
}

// ListPayments returns the group's payments, newest first.
func (s *GroupService) ListPayments(ctx context.Context, req *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error) {
	if _, err := s.authorize(ctx, req.Msg.GroupId); err != nil {
		return nil, err
	}

	payments, err := s.store.ListPaymentsByGroup(ctx, req.Msg.GroupId)
	if err != nil {
		s.logger.Error("ListPayments failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	resp := &api.ListPaymentsResponse{Payments: make([]*api.Payment, len(payments))}
	for i, p := range payments {
		resp.Payments[i] = toAPIPayment(p)
	}

	s.logger.Info("ListPayments successful", "group_id", req.Msg.GroupId, "count", len(payments))
	return connect.NewResponse(resp), nil
}

// GetBalances computes every member's net balance from the full ledger and
// suggests transfers that would settle the group.
func (s *GroupService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	if _, err := s.authorize(ctx, req.Msg.GroupId); err != nil {
		return nil, err
	}

	snap, err := loadLedger(ctx, s.store, req.Msg.GroupId)
	if err != nil {
		s.logger.Error("GetBalances failed to load ledger", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	balances, err := calculator.ComputeBalances(snap.members(), snap.expenses(), snap.payments())
	if err != nil {
		s.logger.Error("GetBalances failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	resp := &api.GetBalancesResponse{
		Balances:          make([]*api.MemberBalance, len(balances)),
		TotalExpenses:     snap.total(),
		SuggestedPayments: []*api.Transfer{},
	}
	for i, b := range balances {
		resp.Balances[i] = toAPIBalance(b)
	}
	for _, t := range calculator.SuggestSettlements(balances) {
		resp.SuggestedPayments = append(resp.SuggestedPayments, toAPITransfer(t))
	}

	s.logger.Info("GetBalances successful",
		"group_id", req.Msg.GroupId,
		"members", len(balances),
		"expenses", len(snap.Expenses),
		"payments", len(snap.Payments),
	)
	return connect.NewResponse(resp), nil
}

package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{WithCodec()}, opts...)
}

// routes dispatches on the request path to one handler per procedure.
type routes map[string]*connect.Handler

func (rs routes) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h, ok := rs[r.URL.Path]; ok {
		h.ServeHTTP(w, r)
		return
	}
	http.NotFound(w, r)
}

// AuthServiceHandler is implemented by the AuthService server.
type AuthServiceHandler interface {
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[GetCurrentUserRequest]) (*connect.Response[GetCurrentUserResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler for the AuthService and
// returns the path on which to mount it.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + AuthServiceName + "/", routes{
		AuthServiceLoginProcedure:          connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...),
		AuthServiceGetCurrentUserProcedure: connect.NewUnaryHandler(AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts...),
	}
}

// AdminServiceHandler is implemented by the AdminService server.
type AdminServiceHandler interface {
	CreateUser(context.Context, *connect.Request[CreateUserRequest]) (*connect.Response[CreateUserResponse], error)
	ListUsers(context.Context, *connect.Request[ListUsersRequest]) (*connect.Response[ListUsersResponse], error)
	CreateGroup(context.Context, *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error)
}

// NewAdminServiceHandler builds an HTTP handler for the AdminService and
// returns the path on which to mount it.
func NewAdminServiceHandler(svc AdminServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + AdminServiceName + "/", routes{
		AdminServiceCreateUserProcedure:  connect.NewUnaryHandler(AdminServiceCreateUserProcedure, svc.CreateUser, opts...),
		AdminServiceListUsersProcedure:   connect.NewUnaryHandler(AdminServiceListUsersProcedure, svc.ListUsers, opts...),
		AdminServiceCreateGroupProcedure: connect.NewUnaryHandler(AdminServiceCreateGroupProcedure, svc.CreateGroup, opts...),
	}
}

// GroupServiceHandler is implemented by the GroupService server.
type GroupServiceHandler interface {
	ListGroups(context.Context, *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error)
	GetGroup(context.Context, *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error)
	AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error)
	MakePayment(context.Context, *connect.Request[MakePaymentRequest]) (*connect.Response[MakePaymentResponse], error)
	ListPayments(context.Context, *connect.Request[ListPaymentsRequest]) (*connect.Response[ListPaymentsResponse], error)
	GetBalances(context.Context, *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error)
}

// NewGroupServiceHandler builds an HTTP handler for the GroupService and
// returns the path on which to mount it.
func NewGroupServiceHandler(svc GroupServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + GroupServiceName + "/", routes{
		GroupServiceListGroupsProcedure:   connect.NewUnaryHandler(GroupServiceListGroupsProcedure, svc.ListGroups, opts...),
		GroupServiceGetGroupProcedure:     connect.NewUnaryHandler(GroupServiceGetGroupProcedure, svc.GetGroup, opts...),
		GroupServiceAddExpenseProcedure:   connect.NewUnaryHandler(GroupServiceAddExpenseProcedure, svc.AddExpense, opts...),
		GroupServiceListExpensesProcedure: connect.NewUnaryHandler(GroupServiceListExpensesProcedure, svc.ListExpenses, opts...),
		GroupServiceMakePaymentProcedure:  connect.NewUnaryHandler(GroupServiceMakePaymentProcedure, svc.MakePayment, opts...),
		GroupServiceListPaymentsProcedure: connect.NewUnaryHandler(GroupServiceListPaymentsProcedure, svc.ListPayments, opts...),
		GroupServiceGetBalancesProcedure:  connect.NewUnaryHandler(GroupServiceGetBalancesProcedure, svc.GetBalances, opts...),
	}
}

package api

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{WithCodec()}, opts...)
}

// AuthServiceClient is a client for the splitledger.v1.AuthService service.
type AuthServiceClient struct {
	login          *connect.Client[LoginRequest, LoginResponse]
	getCurrentUser *connect.Client[GetCurrentUserRequest, GetCurrentUserResponse]
}

// NewAuthServiceClient constructs a client for the splitledger.v1.AuthService service.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &AuthServiceClient{
		login:          connect.NewClient[LoginRequest, LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		getCurrentUser: connect.NewClient[GetCurrentUserRequest, GetCurrentUserResponse](httpClient, baseURL+AuthServiceGetCurrentUserProcedure, opts...),
	}
}

// Login calls splitledger.v1.AuthService.Login.
func (c *AuthServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

// GetCurrentUser calls splitledger.v1.AuthService.GetCurrentUser.
func (c *AuthServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[GetCurrentUserRequest]) (*connect.Response[GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

// AdminServiceClient is a client for the splitledger.v1.AdminService service.
type AdminServiceClient struct {
	createUser  *connect.Client[CreateUserRequest, CreateUserResponse]
	listUsers   *connect.Client[ListUsersRequest, ListUsersResponse]
	createGroup *connect.Client[CreateGroupRequest, CreateGroupResponse]
}

// NewAdminServiceClient constructs a client for the splitledger.v1.AdminService service.
func NewAdminServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AdminServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &AdminServiceClient{
		createUser:  connect.NewClient[CreateUserRequest, CreateUserResponse](httpClient, baseURL+AdminServiceCreateUserProcedure, opts...),
		listUsers:   connect.NewClient[ListUsersRequest, ListUsersResponse](httpClient, baseURL+AdminServiceListUsersProcedure, opts...),
		createGroup: connect.NewClient[CreateGroupRequest, CreateGroupResponse](httpClient, baseURL+AdminServiceCreateGroupProcedure, opts...),
	}
}

// CreateUser calls splitledger.v1.AdminService.CreateUser.
func (c *AdminServiceClient) CreateUser(ctx context.Context, req *connect.Request[CreateUserRequest]) (*connect.Response[CreateUserResponse], error) {
	return c.createUser.CallUnary(ctx, req)
}

// ListUsers calls splitledger.v1.AdminService.ListUsers.
func (c *AdminServiceClient) ListUsers(ctx context.Context, req *connect.Request[ListUsersRequest]) (*connect.Response[ListUsersResponse], error) {
	return c.listUsers.CallUnary(ctx, req)
}

// CreateGroup calls splitledger.v1.AdminService.CreateGroup.
func (c *AdminServiceClient) CreateGroup(ctx context.Context, req *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

// GroupServiceClient is a client for the splitledger.v1.GroupService service.
type GroupServiceClient struct {
	listGroups   *connect.Client[ListGroupsRequest, ListGroupsResponse]
	getGroup     *connect.Client[GetGroupRequest, GetGroupResponse]
	addExpense   *connect.Client[AddExpenseRequest, AddExpenseResponse]
	listExpenses *connect.Client[ListExpensesRequest, ListExpensesResponse]
	makePayment  *connect.Client[MakePaymentRequest, MakePaymentResponse]
	listPayments *connect.Client[ListPaymentsRequest, ListPaymentsResponse]
	getBalances  *connect.Client[GetBalancesRequest, GetBalancesResponse]
}

// NewGroupServiceClient constructs a client for the splitledger.v1.GroupService service.
func NewGroupServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *GroupServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &GroupServiceClient{
		listGroups:   connect.NewClient[ListGroupsRequest, ListGroupsResponse](httpClient, baseURL+GroupServiceListGroupsProcedure, opts...),
		getGroup:     connect.NewClient[GetGroupRequest, GetGroupResponse](httpClient, baseURL+GroupServiceGetGroupProcedure, opts...),
		addExpense:   connect.NewClient[AddExpenseRequest, AddExpenseResponse](httpClient, baseURL+GroupServiceAddExpenseProcedure, opts...),
		listExpenses: connect.NewClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL+GroupServiceListExpensesProcedure, opts...),
		makePayment:  connect.NewClient[MakePaymentRequest, MakePaymentResponse](httpClient, baseURL+GroupServiceMakePaymentProcedure, opts...),
		listPayments: connect.NewClient[ListPaymentsRequest, ListPaymentsResponse](httpClient, baseURL+GroupServiceListPaymentsProcedure, opts...),
		getBalances:  connect.NewClient[GetBalancesRequest, GetBalancesResponse](httpClient, baseURL+GroupServiceGetBalancesProcedure, opts...),
	}
}

// ListGroups calls splitledger.v1.GroupService.ListGroups.
func (c *GroupServiceClient) ListGroups(ctx context.Context, req *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

// GetGroup calls splitledger.v1.GroupService.GetGroup.
func (c *GroupServiceClient) GetGroup(ctx context.Context, req *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

// AddExpense calls splitledger.v1.GroupService.AddExpense.
func (c *GroupServiceClient) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

// ListExpenses calls splitledger.v1.GroupService.ListExpenses.
func (c *GroupServiceClient) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

// MakePayment calls splitledger.v1.GroupService.MakePayment.
func (c *GroupServiceClient) MakePayment(ctx context.Context, req *connect.Request[MakePaymentRequest]) (*connect.Response[MakePaymentResponse], error) {
	return c.makePayment.CallUnary(ctx, req)
}

// ListPayments calls splitledger.v1.GroupService.ListPayments.
func (c *GroupServiceClient) ListPayments(ctx context.Context, req *connect.Request[ListPaymentsRequest]) (*connect.Response[ListPaymentsResponse], error) {
	return c.listPayments.CallUnary(ctx, req)
}

// GetBalances calls splitledger.v1.GroupService.GetBalances.
func (c *GroupServiceClient) GetBalances(ctx context.Context, req *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

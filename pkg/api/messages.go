package api

import "github.com/shopspring/decimal"

// User is the public view of an account; it never carries the password hash.
type User struct {
	Id        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt int64  `json:"created_at"`
}

type Member struct {
	UserId   string `json:"user_id"`
	Username string `json:"username"`
}

type Group struct {
	Id        string   `json:"id"`
	Name      string   `json:"name"`
	CreatedBy string   `json:"created_by"`
	CreatedAt int64    `json:"created_at"`
	Members   []Member `json:"members,omitempty"`
}

type Expense struct {
	Id             string          `json:"id"`
	GroupId        string          `json:"group_id"`
	PaidBy         string          `json:"paid_by"`
	PaidByUsername string          `json:"username"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	CreatedAt      int64           `json:"created_at"`
}

type Payment struct {
	Id         string          `json:"id"`
	GroupId    string          `json:"group_id"`
	FromUserId string          `json:"from_user_id"`
	ToUserId   string          `json:"to_user_id"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  int64           `json:"created_at"`
}

// MemberBalance is one member's net position. Positive means the group owes
// the member; negative means the member owes the group.
type MemberBalance struct {
	UserId   string          `json:"user_id"`
	Username string          `json:"username"`
	Balance  decimal.Decimal `json:"balance"`
	Paid     decimal.Decimal `json:"paid"`
	Sent     decimal.Decimal `json:"sent"`
	Received decimal.Decimal `json:"received"`
	Share    decimal.Decimal `json:"share"`
}

// Transfer is a suggested payment that would help settle the group.
type Transfer struct {
	FromUserId string          `json:"from_user_id"`
	ToUserId   string          `json:"to_user_id"`
	Amount     decimal.Decimal `json:"amount"`
}

// AuthService

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}

// AdminService

type CreateUserRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin,omitempty"`
}

type CreateUserResponse struct {
	User *User `json:"user"`
}

type ListUsersRequest struct{}

type ListUsersResponse struct {
	Users []*User `json:"users"`
}

type CreateGroupRequest struct {
	Name    string   `json:"name"`
	UserIds []string `json:"user_ids"`
}

type CreateGroupResponse struct {
	Group *Group `json:"group"`
}

// GroupService

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

type GetGroupRequest struct {
	GroupId string `json:"group_id"`
}

type GetGroupResponse struct {
	Group *Group `json:"group"`
}

type AddExpenseRequest struct {
	GroupId     string          `json:"group_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type ListExpensesRequest struct {
	GroupId string `json:"group_id"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type MakePaymentRequest struct {
	GroupId  string          `json:"group_id"`
	ToUserId string          `json:"to_user_id"`
	Amount   decimal.Decimal `json:"amount"`
}

type MakePaymentResponse struct {
	Payment *Payment `json:"payment"`
}

type ListPaymentsRequest struct {
	GroupId string `json:"group_id"`
}

type ListPaymentsResponse struct {
	Payments []*Payment `json:"payments"`
}

type GetBalancesRequest struct {
	GroupId string `json:"group_id"`
}

type GetBalancesResponse struct {
	Balances          []*MemberBalance `json:"balances"`
	TotalExpenses     decimal.Decimal  `json:"total_expenses"`
	SuggestedPayments []*Transfer      `json:"suggested_payments"`
}

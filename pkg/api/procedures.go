package api

const (
	// AuthServiceName is the fully-qualified name of the AuthService service.
	AuthServiceName = "splitledger.v1.AuthService"
	// AdminServiceName is the fully-qualified name of the AdminService service.
	AdminServiceName = "splitledger.v1.AdminService"
	// GroupServiceName is the fully-qualified name of the GroupService service.
	GroupServiceName = "splitledger.v1.GroupService"
)

// Procedure paths, in the form "/Service/Method" that Connect routes on.
const (
	AuthServiceLoginProcedure          = "/" + AuthServiceName + "/Login"
	AuthServiceGetCurrentUserProcedure = "/" + AuthServiceName + "/GetCurrentUser"

	AdminServiceCreateUserProcedure  = "/" + AdminServiceName + "/CreateUser"
	AdminServiceListUsersProcedure   = "/" + AdminServiceName + "/ListUsers"
	AdminServiceCreateGroupProcedure = "/" + AdminServiceName + "/CreateGroup"

	GroupServiceListGroupsProcedure   = "/" + GroupServiceName + "/ListGroups"
	GroupServiceGetGroupProcedure     = "/" + GroupServiceName + "/GetGroup"
	GroupServiceAddExpenseProcedure   = "/" + GroupServiceName + "/AddExpense"
	GroupServiceListExpensesProcedure = "/" + GroupServiceName + "/ListExpenses"
	GroupServiceMakePaymentProcedure  = "/" + GroupServiceName + "/MakePayment"
	GroupServiceListPaymentsProcedure = "/" + GroupServiceName + "/ListPayments"
	GroupServiceGetBalancesProcedure  = "/" + GroupServiceName + "/GetBalances"
)

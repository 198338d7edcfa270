package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/membership"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// toConnectError maps domain errors to Connect status codes.
func toConnectError(err error) *connect.Error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	var (
		validationErr  *models.ValidationError
		referentialErr *calculator.ReferentialIntegrityError
		amountErr      *calculator.InvalidAmountError
		selfPaymentErr *calculator.SelfPaymentError
	)
	switch {
	case errors.As(err, &validationErr), errors.Is(err, auth.ErrWeakPassword):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, membership.ErrNotAMember), errors.Is(err, middleware.ErrAdminRequired):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrAlreadyExists), errors.Is(err, auth.ErrEmailExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, calculator.ErrEmptyGroup):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.As(err, &referentialErr), errors.As(err, &amountErr), errors.As(err, &selfPaymentErr),
		errors.Is(err, calculator.ErrDuplicateMember), errors.Is(err, calculator.ErrUnbalanced):
		return connect.NewError(connect.CodeDataLoss, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

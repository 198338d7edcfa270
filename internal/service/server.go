package service

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
)

// Options tunes the interceptor chain shared by every service.
type Options struct {
	RequestTimeout     time.Duration
	LoginRatePerMinute int
	// Metrics is optional; nil disables RPC metrics.
	Metrics *middleware.Metrics
}

// Register mounts the auth, admin and group services on mux.
//
// Interceptors run outermost first: metrics, login rate limit, token check,
// logging, request timeout. Login is the only procedure reachable without a
// token, and AdminService additionally requires the admin role.
func Register(mux *http.ServeMux, store storage.Store, authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger, opts Options) {
	var chain []connect.Interceptor
	if opts.Metrics != nil {
		chain = append(chain, opts.Metrics.Interceptor())
	}
	if opts.LoginRatePerMinute > 0 {
		chain = append(chain, middleware.NewRateLimiter(opts.LoginRatePerMinute, api.AuthServiceLoginProcedure).Interceptor())
	}
	chain = append(chain,
		middleware.RequireAuth(jwtManager, api.AuthServiceLoginProcedure),
		middleware.LoggingInterceptor(),
		middleware.Timeout(opts.RequestTimeout),
	)
	interceptors := connect.WithInterceptors(chain...)
	adminInterceptors := connect.WithInterceptors(append(slices.Clone(chain), middleware.RequireAdmin())...)

	mux.Handle(api.NewAuthServiceHandler(
		NewAuthService(authenticator, jwtManager, store, logger),
		interceptors,
	))
	mux.Handle(api.NewAdminServiceHandler(
		NewAdminService(authenticator, store, logger),
		adminInterceptors,
	))
	mux.Handle(api.NewGroupServiceHandler(
		NewGroupService(store, logger),
		interceptors,
	))
}

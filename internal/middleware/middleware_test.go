package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/pkg/api"
)

const (
	whoAmIProcedure = "/test.v1.TestService/WhoAmI"
	publicProcedure = "/test.v1.TestService/Public"
)

// whoAmI echoes the identity found in the context.
func whoAmI(ctx context.Context, _ *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error) {
	id, ok := IdentityFrom(ctx)
	if !ok {
		return connect.NewResponse(&api.GetCurrentUserResponse{}), nil
	}
	return connect.NewResponse(&api.GetCurrentUserResponse{User: &api.User{
		Id:       id.UserID,
		Email:    id.Email,
		Username: id.Username,
		IsAdmin:  id.IsAdmin,
	}}), nil
}

type testServer struct {
	whoAmI *connect.Client[api.GetCurrentUserRequest, api.GetCurrentUserResponse]
	public *connect.Client[api.GetCurrentUserRequest, api.GetCurrentUserResponse]
}

func newTestServer(t *testing.T, interceptors ...connect.Interceptor) *testServer {
	t.Helper()

	opts := []connect.HandlerOption{api.WithCodec(), connect.WithInterceptors(interceptors...)}
	mux := http.NewServeMux()
	mux.Handle(whoAmIProcedure, connect.NewUnaryHandler(whoAmIProcedure, whoAmI, opts...))
	mux.Handle(publicProcedure, connect.NewUnaryHandler(publicProcedure, whoAmI, opts...))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &testServer{
		whoAmI: connect.NewClient[api.GetCurrentUserRequest, api.GetCurrentUserResponse](srv.Client(), srv.URL+whoAmIProcedure, api.WithCodec()),
		public: connect.NewClient[api.GetCurrentUserRequest, api.GetCurrentUserResponse](srv.Client(), srv.URL+publicProcedure, api.WithCodec()),
	}
}

func call(client *connect.Client[api.GetCurrentUserRequest, api.GetCurrentUserResponse], token string) (*api.GetCurrentUserResponse, error) {
	req := connect.NewRequest(&api.GetCurrentUserRequest{})
	if token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}
	resp, err := client.CallUnary(context.Background(), req)
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

func newToken(t *testing.T, jwtManager *auth.JWTManager, isAdmin bool) string {
	t.Helper()
	token, err := jwtManager.Generate(&models.User{
		ID:       "5f0c5b8e-8f0e-4c53-9d59-4f1f8a7f3e21",
		Email:    "alice@example.com",
		Username: "alice",
		IsAdmin:  isAdmin,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return token
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret-that-is-long-enough-123", time.Hour)
	other := auth.NewJWTManager("another-secret-that-is-long-enough", time.Hour)
	srv := newTestServer(t, RequireAuth(jwtManager, publicProcedure))

	t.Run("valid token", func(t *testing.T) {
		msg, err := call(srv.whoAmI, newToken(t, jwtManager, false))
		if err != nil {
			t.Fatalf("call failed: %v", err)
		}
		if msg.User == nil || msg.User.Username != "alice" || msg.User.IsAdmin {
			t.Errorf("unexpected identity: %+v", msg.User)
		}
	})

	tests := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"garbage token", "not-a-jwt"},
		{"wrong signature", newToken(t, other, false)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := call(srv.whoAmI, tt.token)
			if connect.CodeOf(err) != connect.CodeUnauthenticated {
				t.Errorf("expected Unauthenticated, got %v", err)
			}
		})
	}

	t.Run("public procedure", func(t *testing.T) {
		msg, err := call(srv.public, "")
		if err != nil {
			t.Fatalf("public call failed: %v", err)
		}
		if msg.User != nil {
			t.Errorf("public call should carry no identity, got %+v", msg.User)
		}
	})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{"Bearer abc", "abc", nil},
		{"bearer abc", "abc", nil},
		{"", "", auth.ErrMissingToken},
		{"Basic abc", "", auth.ErrInvalidToken},
		{"Bearer", "", auth.ErrInvalidToken},
		{"Bearer ", "", auth.ErrInvalidToken},
	}
	for _, tt := range tests {
		got, err := bearerToken(tt.header)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("bearerToken(%q) error = %v, want %v", tt.header, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("bearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestRequireAdmin(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret-that-is-long-enough-123", time.Hour)
	srv := newTestServer(t, RequireAuth(jwtManager), RequireAdmin())

	if _, err := call(srv.whoAmI, newToken(t, jwtManager, true)); err != nil {
		t.Errorf("admin call failed: %v", err)
	}

	_, err := call(srv.whoAmI, newToken(t, jwtManager, false))
	if connect.CodeOf(err) != connect.CodePermissionDenied {
		t.Errorf("expected PermissionDenied for non-admin, got %v", err)
	}
}

func TestTimeout(t *testing.T) {
	var deadline time.Time
	probe := connect.UnaryInterceptorFunc(func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			deadline, _ = ctx.Deadline()
			return next(ctx, req)
		}
	})
	srv := newTestServer(t, Timeout(time.Minute), probe)

	before := time.Now()
	if _, err := call(srv.public, ""); err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if deadline.IsZero() {
		t.Fatal("expected a deadline on the handler context")
	}
	if deadline.Before(before) || deadline.After(before.Add(time.Minute+time.Second)) {
		t.Errorf("deadline %v not within a minute of %v", deadline, before)
	}
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(2, whoAmIProcedure)
	srv := newTestServer(t, limiter.Interceptor())

	for i := 0; i < 2; i++ {
		if _, err := call(srv.whoAmI, ""); err != nil {
			t.Fatalf("call %d failed: %v", i, err)
		}
	}
	_, err := call(srv.whoAmI, "")
	if connect.CodeOf(err) != connect.CodeResourceExhausted {
		t.Errorf("expected ResourceExhausted, got %v", err)
	}

	// Procedures outside the list are never limited.
	for i := 0; i < 5; i++ {
		if _, err := call(srv.public, ""); err != nil {
			t.Fatalf("public call %d failed: %v", i, err)
		}
	}
}

func TestRateLimiterRefills(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1)
	limiter.now = func() time.Time { return now }

	if !limiter.Allow("10.0.0.1") {
		t.Fatal("first call should be allowed")
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatal("second call should be limited")
	}
	if !limiter.Allow("10.0.0.2") {
		t.Fatal("other clients have their own bucket")
	}

	now = now.Add(time.Minute)
	if !limiter.Allow("10.0.0.1") {
		t.Error("bucket should refill after a minute")
	}
}

func TestClientKey(t *testing.T) {
	if got := clientKey("192.0.2.1:52344"); got != "192.0.2.1" {
		t.Errorf("clientKey = %q", got)
	}
	if got := clientKey("[::1]:8080"); got != "::1" {
		t.Errorf("clientKey = %q", got)
	}
	if got := clientKey("pipe"); got != "pipe" {
		t.Errorf("clientKey = %q", got)
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	jwtManager := auth.NewJWTManager("test-secret-that-is-long-enough-123", time.Hour)
	srv := newTestServer(t, metrics.Interceptor(), RequireAuth(jwtManager))

	if _, err := call(srv.whoAmI, newToken(t, jwtManager, false)); err != nil {
		t.Fatalf("call failed: %v", err)
	}
	_, _ = call(srv.whoAmI, "")
	_, _ = call(srv.whoAmI, "")

	if got := testutil.ToFloat64(metrics.requests.WithLabelValues(whoAmIProcedure, "ok")); got != 1 {
		t.Errorf("ok count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.requests.WithLabelValues(whoAmIProcedure, connect.CodeUnauthenticated.String())); got != 2 {
		t.Errorf("unauthenticated count = %v, want 2", got)
	}
	if n := testutil.CollectAndCount(metrics.duration); n != 1 {
		t.Errorf("expected one duration series, got %d", n)
	}
}

package auth

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	pkgauth "github.com/voguelabs/storefront-backend/pkg/auth"
	"github.com/voguelabs/storefront-backend/pkg/config"
	"github.com/voguelabs/storefront-backend/pkg/enums"
	"github.com/voguelabs/storefront-backend/pkg/kv"
	"github.com/voguelabs/storefront-backend/pkg/logger"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "storefront-test",
		ExpirationMinutes: 60,
	}
}

func newTestService(t *testing.T, store kv.Store) Service {
	t.Helper()
	svc, err := NewService(context.Background(), ServiceParams{
		Store:     store,
		Logger:    logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
		JWTConfig: testJWTConfig(),
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestLoginAlwaysSucceedsWithValidInput(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "jamie.doe@example.com",
		Password: "whatever",
		Role:     "buyer",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("access token is empty")
	}
	if resp.Session.Email != "jamie.doe@example.com" {
		t.Fatalf("email = %q", resp.Session.Email)
	}
	if resp.Session.Role != enums.UserRoleBuyer {
		t.Fatalf("role = %q, want buyer", resp.Session.Role)
	}
	if resp.Session.Name != "Jamie Doe" {
		t.Fatalf("name = %q, want Jamie Doe", resp.Session.Name)
	}

	current := svc.Current()
	if current == nil || current.ID != resp.Session.ID {
		t.Fatal("Current() does not match the session from Login")
	}
}

func TestLoginMintsVerifiableToken(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "seller@example.com",
		Password: "pw",
		Role:     "seller",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := pkgauth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.UserID != resp.Session.ID {
		t.Fatalf("uid = %q, want %q", claims.UserID, resp.Session.ID)
	}
	if claims.Role != enums.UserRoleSeller {
		t.Fatalf("role = %q, want seller", claims.Role)
	}
}

func TestLoginRejectsInvalidRole(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())

	if _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "a@example.com",
		Password: "pw",
		Role:     "emperor",
	}); err == nil {
		t.Fatal("expected error for invalid role")
	}
	if svc.Current() != nil {
		t.Fatal("failed login must not create a session")
	}
}

func TestLoginNormalizesEmail(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "  Shopper@Example.COM ",
		Password: "pw",
		Role:     "buyer",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Session.Email != "shopper@example.com" {
		t.Fatalf("email = %q, want shopper@example.com", resp.Session.Email)
	}
}

func TestGuestDisplayName(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "anon@example.com",
		Password: "pw",
		Role:     "guest",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Session.Name != "Guest" {
		t.Fatalf("name = %q, want Guest", resp.Session.Name)
	}
}

func TestLogoutClearsSessionAndDurableCopy(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	if _, err := svc.Login(ctx, LoginRequest{Email: "a@example.com", Password: "pw", Role: "buyer"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	svc.Logout(ctx)

	if svc.Current() != nil {
		t.Fatal("Current() should be nil after logout")
	}
	if _, err := store.Get(ctx, config.StorageKeySession); err == nil {
		t.Fatal("durable session should be deleted after logout")
	}
}

func TestLogoutWhileSignedOutIsHarmless(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())
	svc.Logout(context.Background())
	if svc.Current() != nil {
		t.Fatal("Current() should stay nil")
	}
}

func TestSessionHydrationRoundTrip(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()

	first := newTestService(t, store)
	resp, err := first.Login(ctx, LoginRequest{Email: "a@example.com", Password: "pw", Role: "admin"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	second := newTestService(t, store)
	current := second.Current()
	if current == nil {
		t.Fatal("expected hydrated session")
	}
	if current.ID != resp.Session.ID || current.Role != enums.UserRoleAdmin {
		t.Fatalf("hydrated session = %+v", current)
	}
}

func TestMalformedStoredSessionStartsSignedOut(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()
	if err := store.Set(ctx, config.StorageKeySession, "{oops"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := newTestService(t, store)
	if svc.Current() != nil {
		t.Fatal("malformed stored session must start signed out")
	}
}

func TestIncompleteStoredSessionStartsSignedOut(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()

	raw, _ := json.Marshal(Session{Email: "a@example.com"})
	if err := store.Set(ctx, config.StorageKeySession, string(raw)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := newTestService(t, kv.Store(store))
	if svc.Current() != nil {
		t.Fatal("incomplete stored session must start signed out")
	}
}

func TestInProgressIsFalseAtRest(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())
	if svc.InProgress() {
		t.Fatal("InProgress() = true with no login running")
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		email string
		role  enums.UserRole
		want  string
	}{
		{"jamie.doe@example.com", enums.UserRoleBuyer, "Jamie Doe"},
		{"marta_lund@example.com", enums.UserRoleSeller, "Marta Lund"},
		{"ceo@example.com", enums.UserRoleAdmin, "Ceo"},
		{"a+promo@example.com", enums.UserRoleBuyer, "A Promo"},
		{"anyone@example.com", enums.UserRoleGuest, "Guest"},
	}
	for _, tc := range cases {
		if got := displayName(tc.email, tc.role); got != tc.want {
			t.Errorf("displayName(%q, %s) = %q, want %q", tc.email, tc.role, got, tc.want)
		}
	}
}

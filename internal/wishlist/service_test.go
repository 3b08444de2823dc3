package wishlist

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/voguelabs/storefront-backend/internal/catalog"
	"github.com/voguelabs/storefront-backend/pkg/config"
	"github.com/voguelabs/storefront-backend/pkg/enums"
	"github.com/voguelabs/storefront-backend/pkg/kv"
	"github.com/voguelabs/storefront-backend/pkg/logger"
)

func newTestService(t *testing.T, store kv.Store) Service {
	t.Helper()
	svc, err := NewService(context.Background(), ServiceParams{
		Store:  store,
		Logger: logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func product(id string) catalog.Product {
	return catalog.Product{
		ID:       id,
		Name:     "Product " + id,
		Brand:    "Test Brand",
		Price:    100,
		Image:    "https://img.example/" + id + ".jpg",
		Category: "knitwear",
		InStock:  true,
	}
}

func TestAddAndContains(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())
	ctx := context.Background()

	outcome := svc.Add(ctx, product("p-1"))
	if outcome != enums.OutcomeAdded {
		t.Fatalf("outcome = %q, want %q", outcome, enums.OutcomeAdded)
	}
	if !svc.Contains("p-1") {
		t.Fatal("Contains(p-1) = false, want true")
	}
	if svc.Contains("p-2") {
		t.Fatal("Contains(p-2) = true, want false")
	}
}

func TestDuplicateAddIsNoOp(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())
	ctx := context.Background()

	svc.Add(ctx, product("p-1"))
	outcome := svc.Add(ctx, product("p-1"))
	if outcome != enums.OutcomeAlreadyInWishlist {
		t.Fatalf("outcome = %q, want %q", outcome, enums.OutcomeAlreadyInWishlist)
	}
	if got := len(svc.Items()); got != 1 {
		t.Fatalf("len(items) = %d, want 1", got)
	}
}

func TestItemsPreserveInsertionOrder(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())
	ctx := context.Background()

	svc.Add(ctx, product("p-3"))
	svc.Add(ctx, product("p-1"))
	svc.Add(ctx, product("p-2"))

	items := svc.Items()
	want := []string{"p-3", "p-1", "p-2"}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("items[%d].ID = %q, want %q", i, items[i].ID, id)
		}
	}
}

func TestRemove(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())
	ctx := context.Background()

	svc.Add(ctx, product("p-1"))
	svc.Add(ctx, product("p-2"))

	outcome := svc.Remove(ctx, "p-1")
	if outcome != enums.OutcomeRemoved {
		t.Fatalf("outcome = %q, want %q", outcome, enums.OutcomeRemoved)
	}
	if svc.Contains("p-1") {
		t.Fatal("Contains(p-1) = true after remove")
	}
	if got := len(svc.Items()); got != 1 {
		t.Fatalf("len(items) = %d, want 1", got)
	}

	// Removing an absent id still reports removed.
	if outcome := svc.Remove(ctx, "p-404"); outcome != enums.OutcomeRemoved {
		t.Fatalf("outcome = %q, want %q", outcome, enums.OutcomeRemoved)
	}
}

func TestClear(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())
	ctx := context.Background()

	svc.Add(ctx, product("p-1"))
	svc.Add(ctx, product("p-2"))

	outcome := svc.Clear(ctx)
	if outcome != enums.OutcomeWishlistCleared {
		t.Fatalf("outcome = %q, want %q", outcome, enums.OutcomeWishlistCleared)
	}
	if got := len(svc.Items()); got != 0 {
		t.Fatalf("len(items) = %d, want 0", got)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()

	first := newTestService(t, store)
	first.Add(ctx, product("p-1"))
	first.Add(ctx, product("p-2"))

	second := newTestService(t, store)
	items := second.Items()
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if !second.Contains("p-1") || !second.Contains("p-2") {
		t.Fatal("rehydrated wishlist is missing saved products")
	}
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	store := kv.NewMemoryStore()
	store.FailWrites = errors.New("disk gone")
	svc := newTestService(t, store)
	ctx := context.Background()

	svc.Add(ctx, product("p-1"))
	if !svc.Contains("p-1") {
		t.Fatal("Contains(p-1) = false after failed durable write")
	}
	if _, err := store.Get(ctx, config.StorageKeyWishlist); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected nothing durable, got err %v", err)
	}
}

func TestMalformedStoredWishlistStartsEmpty(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()
	if err := store.Set(ctx, config.StorageKeyWishlist, "[[["); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := newTestService(t, store)
	if got := len(svc.Items()); got != 0 {
		t.Fatalf("len(items) = %d, want 0", got)
	}
}

// A shopper saves two products, toggles one off, and the saved badge
// state follows membership.
func TestSaveToggleScenario(t *testing.T) {
	svc := newTestService(t, kv.NewMemoryStore())
	ctx := context.Background()

	svc.Add(ctx, product("p-1"))
	svc.Add(ctx, product("p-2"))
	svc.Remove(ctx, "p-1")

	if svc.Contains("p-1") {
		t.Fatal("p-1 should be gone after toggle off")
	}
	if !svc.Contains("p-2") {
		t.Fatal("p-2 should remain saved")
	}

	svc.Add(ctx, product("p-1"))
	if !svc.Contains("p-1") {
		t.Fatal("p-1 should be saved again after toggle on")
	}
}

package shell

import (
	"context"
	"testing"

	"github.com/resourcespen/storefront/internal/core/domain"
)

func product(id string, price float64) domain.Product {
	return domain.Product{ID: id, Name: "Asset " + id, Price: price, Currency: "USD", Status: domain.ProductActive, EnableAddToCart: true}
}

func TestCartStore_AddTwice(t *testing.T) {
	ctx := context.Background()
	cart, _ := LoadCartStore(ctx, newMapStorage())

	_ = cart.Add(ctx, product("p-1", 149))
	_ = cart.Add(ctx, product("p-1", 149))

	items := cart.Items()
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("expected one entry with quantity 2, got %+v", items)
	}
	if !cart.IsOpen() {
		t.Fatal("adding must open the cart panel")
	}
}

func TestCartStore_RemoveUnknownIsNoop(t *testing.T) {
	ctx := context.Background()
	cart, _ := LoadCartStore(ctx, newMapStorage())
	_ = cart.Add(ctx, product("p-1", 10))

	if err := cart.Remove(ctx, "p-404"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if cart.Len() != 1 {
		t.Fatalf("expected length 1, got %d", cart.Len())
	}
}

func TestCartStore_UpdateQuantityAndClear(t *testing.T) {
	ctx := context.Background()
	cart, _ := LoadCartStore(ctx, newMapStorage())
	_ = cart.Add(ctx, product("p-1", 10))
	_ = cart.Add(ctx, product("p-2", 5))

	_ = cart.UpdateQuantity(ctx, "p-1", 4)
	if got := cart.Totals(); got.Items != 5 || got.Subtotal != 45 {
		t.Fatalf("unexpected totals %+v", got)
	}

	_ = cart.UpdateQuantity(ctx, "p-2", 0)
	if cart.Len() != 1 {
		t.Fatalf("quantity 0 must remove, got %d entries", cart.Len())
	}

	_ = cart.Clear(ctx)
	if cart.Len() != 0 || cart.IsOpen() {
		t.Fatalf("clear must empty and close the cart")
	}
}

func TestCartStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := newMapStorage()
	first, _ := LoadCartStore(ctx, storage)
	_ = first.Add(ctx, product("p-1", 149))
	_ = first.Add(ctx, product("p-2", 49))
	_ = first.Add(ctx, product("p-1", 149))

	second, err := LoadCartStore(ctx, storage)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	a, b := first.Items(), second.Items()
	if len(a) != len(b) {
		t.Fatalf("reloaded %d items, want %d", len(b), len(a))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Quantity != b[i].Quantity || a[i].Price != b[i].Price {
			t.Errorf("item %d: got %+v, want %+v", i, b[i], a[i])
		}
	}
	if second.IsOpen() != first.IsOpen() {
		t.Errorf("panel flag not restored")
	}
	if second.Totals() != first.Totals() {
		t.Errorf("totals differ after reload")
	}
}

func TestCartStore_CorruptBlob(t *testing.T) {
	storage := newMapStorage()
	storage.data[KeyCart] = []byte("[{]")

	cart, err := LoadCartStore(context.Background(), storage)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cart.Len() != 0 {
		t.Fatalf("corrupt cart must load empty, got %d", cart.Len())
	}
}

func TestCartStore_FailedPersistKeepsState(t *testing.T) {
	ctx := context.Background()
	storage := newMapStorage()
	cart, _ := LoadCartStore(ctx, storage)
	_ = cart.Add(ctx, product("p-1", 10))

	storage.saveErr = errStorageDown
	if err := cart.Add(ctx, product("p-2", 10)); err == nil {
		t.Fatal("expected error when storage fails")
	}
	if cart.Len() != 1 {
		t.Fatalf("failed mutation must not change state, got %d entries", cart.Len())
	}
}

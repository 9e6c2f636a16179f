package cart

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-client/internal/domain"
	cartrepo "storefront-client/internal/repository/cart"
)

// memStorage is an in-memory cartrepo.Storage for exercising store
// semantics without the embedded database.
type memStorage struct {
	mu   sync.Mutex
	rows []domain.CartRow
}

var _ cartrepo.Storage = (*memStorage)(nil)

func (m *memStorage) All(context.Context) ([]domain.CartRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.CartRow(nil), m.rows...), nil
}

func (m *memStorage) Upsert(_ context.Context, row domain.CartRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].Product.Code == row.Product.Code {
			m.rows[i] = row
			return nil
		}
	}
	m.rows = append(m.rows, row)
	return nil
}

func (m *memStorage) SetQuantity(_ context.Context, code string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].Product.Code == code {
			m.rows[i].Quantity = quantity
		}
	}
	return nil
}

func (m *memStorage) Delete(_ context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].Product.Code == code {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memStorage) DeleteAll(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = nil
	return nil
}

func newTestStore(t *testing.T) (*Store, *memStorage) {
	t.Helper()
	storage := &memStorage{}
	store, err := NewStore(context.Background(), storage, nil)
	require.NoError(t, err)
	return store, storage
}

func product(code string, cents int64) domain.Product {
	return domain.Product{Code: code, Name: "Product " + code, PriceCents: cents, Category: "Misc"}
}

func TestStore_AddItemMergesByCode(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	p := product("X1", 4999)

	require.NoError(t, store.AddItem(ctx, p))
	require.NoError(t, store.AddItem(ctx, p))

	rows := store.Rows().Get()
	require.Len(t, rows, 1)
	assert.Equal(t, "X1", rows[0].Product.Code)
	assert.Equal(t, 2, rows[0].Quantity)
	assert.Equal(t, int64(2*4999), rows[0].SubtotalCents())
}

func TestStore_AddItemQuantityEqualsAddCount(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	adds := map[string]int{"A": 3, "B": 1, "C": 5}
	for code, n := range adds {
		for i := 0; i < n; i++ {
			require.NoError(t, store.AddItem(ctx, product(code, 100)))
		}
	}

	rows := store.Rows().Get()
	require.Len(t, rows, len(adds))
	seen := map[string]int{}
	for _, row := range rows {
		seen[row.Product.Code] = row.Quantity
	}
	assert.Equal(t, adds, seen)
}

func TestStore_AddItemPreservesAppendOrder(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, product("A", 1)))
	require.NoError(t, store.AddItem(ctx, product("B", 1)))
	require.NoError(t, store.AddItem(ctx, product("A", 1)))
	require.NoError(t, store.AddItem(ctx, product("C", 1)))

	rows := store.Rows().Get()
	codes := make([]string, 0, len(rows))
	for _, row := range rows {
		codes = append(codes, row.Product.Code)
	}
	assert.Equal(t, []string{"A", "B", "C"}, codes)
}

func TestStore_DecreaseFloorsAtOne(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.AddItem(ctx, product("X1", 100)))
	}

	require.NoError(t, store.DecreaseQuantity(ctx, "X1"))
	require.NoError(t, store.DecreaseQuantity(ctx, "X1"))
	rows := store.Rows().Get()
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Quantity)

	// Decrementing the last unit is a no-op, not a removal.
	require.NoError(t, store.DecreaseQuantity(ctx, "X1"))
	rows = store.Rows().Get()
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Quantity)
}

func TestStore_QuantityOpsOnAbsentCodeAreNoOps(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.IncreaseQuantity(ctx, "missing"))
	require.NoError(t, store.DecreaseQuantity(ctx, "missing"))
	require.NoError(t, store.RemoveItem(ctx, "missing"))

	assert.Empty(t, store.Rows().Get())
}

func TestStore_RemoveAndClear(t *testing.T) {
	store, storage := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, product("A", 100)))
	require.NoError(t, store.AddItem(ctx, product("B", 200)))

	require.NoError(t, store.RemoveItem(ctx, "A"))
	rows := store.Rows().Get()
	require.Len(t, rows, 1)
	assert.Equal(t, "B", rows[0].Product.Code)

	require.NoError(t, store.Clear(ctx))
	assert.Empty(t, store.Rows().Get())

	persisted, err := storage.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestStore_MutationsNotifySubscribers(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	var emits int
	cancel := store.Rows().Subscribe(func([]domain.CartRow) { emits++ })
	defer cancel()

	require.NoError(t, store.AddItem(ctx, product("A", 100)))
	require.NoError(t, store.IncreaseQuantity(ctx, "A"))
	require.NoError(t, store.RemoveItem(ctx, "A"))

	// Initial emit plus one per mutation.
	assert.Equal(t, 4, emits)
}

func TestStore_ConcurrentIncrementsSameCodeLoseNoUpdates(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, product("X1", 100)))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.IncreaseQuantity(ctx, "X1")
		}()
	}
	wg.Wait()

	rows := store.Rows().Get()
	require.Len(t, rows, 1)
	assert.Equal(t, 51, rows[0].Quantity)
}

func TestStore_LoadsPersistedRowsOnStart(t *testing.T) {
	storage := &memStorage{rows: []domain.CartRow{
		{Product: product("A", 100), Quantity: 2},
	}}
	store, err := NewStore(context.Background(), storage, nil)
	require.NoError(t, err)

	rows := store.Rows().Get()
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Quantity)
}

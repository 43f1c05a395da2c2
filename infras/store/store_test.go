package store_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/infras/sqlite"
	"hotel/infras/store"
	"hotel/infras/store/mocks"
	"hotel/shared/constant"
	"hotel/shared/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func backends(t *testing.T) map[string]store.Store {
	t.Helper()

	file, err := store.NewFile(t.TempDir())
	require.NoError(t, err)

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "hotel.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqliteStore, err := store.NewSQLite(context.Background(), db)
	require.NoError(t, err)

	return map[string]store.Store{
		constant.StorageDriverMemory: store.NewMemory(0),
		constant.StorageDriverFile:   file,
		constant.StorageDriverSQLite: sqliteStore,
	}
}

func TestStoreContract(t *testing.T) {
	ctx := context.Background()

	for driver, s := range backends(t) {
		t.Run(driver, func(t *testing.T) {
			assert.Equal(t, driver, s.Driver())

			payload, found, err := s.Get(ctx, constant.CollectionGuests)
			require.NoError(t, err)
			assert.False(t, found)
			assert.Nil(t, payload)

			require.NoError(t, s.Put(ctx, constant.CollectionGuests, []byte(`[]`)))

			payload, found, err = s.Get(ctx, constant.CollectionGuests)
			require.NoError(t, err)
			assert.True(t, found)
			assert.JSONEq(t, `[]`, string(payload))

			require.NoError(t, s.Put(ctx, constant.CollectionGuests, []byte(`[{"_id":"1"}]`)))

			payload, found, err = s.Get(ctx, constant.CollectionGuests)
			require.NoError(t, err)
			assert.True(t, found)
			assert.JSONEq(t, `[{"_id":"1"}]`, string(payload))

			_, found, err = s.Get(ctx, constant.CollectionRooms)
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestStoreRejectsInvalidCollection(t *testing.T) {
	ctx := context.Background()

	for driver, s := range backends(t) {
		t.Run(driver, func(t *testing.T) {
			for _, name := range []string{"", "../etc", "Guests", "a/b"} {
				err := s.Put(ctx, name, []byte(`[]`))
				assert.ErrorIs(t, err, store.ErrInvalidCollection, name)

				_, _, err = s.Get(ctx, name)
				assert.ErrorIs(t, err, store.ErrInvalidCollection, name)
			}
		})
	}
}

func TestMemoryQuota(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory(10)

	require.NoError(t, s.Put(ctx, constant.CollectionGuests, []byte(`[1,2,3]`)))

	err := s.Put(ctx, constant.CollectionRooms, []byte(`[1,2,3,4]`))
	assert.ErrorIs(t, err, store.ErrQuotaExceeded)

	_, found, err := s.Get(ctx, constant.CollectionRooms)
	require.NoError(t, err)
	assert.False(t, found)

	// replacing a collection only counts its new size
	require.NoError(t, s.Put(ctx, constant.CollectionGuests, []byte(`[1,2,3,4]`)))
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory(0)

	input := []byte(`[1]`)
	require.NoError(t, s.Put(ctx, constant.CollectionGuests, input))
	input[1] = '9'

	out, _, err := s.Get(ctx, constant.CollectionGuests)
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(out))

	out[1] = '7'

	again, _, err := s.Get(ctx, constant.CollectionGuests)
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(again))
}

func TestFileLayout(t *testing.T) {
	dir := t.TempDir()

	s, err := store.NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, s.Put(context.Background(), constant.CollectionBookings, []byte(`[]`)))

	content, err := os.ReadFile(filepath.Join(dir, "bookings.json"))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		want    string
		wantErr bool
	}{
		{name: "default", driver: constant.Empty, want: constant.StorageDriverMemory},
		{name: "memory", driver: constant.StorageDriverMemory, want: constant.StorageDriverMemory},
		{name: "file", driver: constant.StorageDriverFile, want: constant.StorageDriverFile},
		{name: "sqlite", driver: constant.StorageDriverSQLite, want: constant.StorageDriverSQLite},
		{name: "unknown", driver: "floppy", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Storage.Driver = tt.driver
			cfg.Storage.File.Dir = t.TempDir()
			cfg.Storage.SQLite.Path = filepath.Join(t.TempDir(), "hotel.db")

			s, err := store.Open(cfg, otelMocks.NewOtel())
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Driver())
		})
	}
}

func TestInstrumentCountsOperations(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockStore(ctrl)
	m := metrics.New()
	ctx := context.Background()

	backend.EXPECT().Driver().Return("mock").AnyTimes()
	backend.EXPECT().Get(gomock.Any(), constant.CollectionRooms).Return([]byte(`[]`), true, nil)
	backend.EXPECT().Put(gomock.Any(), constant.CollectionRooms, []byte(`[]`)).Return(store.ErrQuotaExceeded)

	s := store.Instrument(backend, otelMocks.NewOtel(), m)
	assert.Equal(t, "mock", s.Driver())

	payload, found, err := s.Get(ctx, constant.CollectionRooms)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, string(payload))

	err = s.Put(ctx, constant.CollectionRooms, []byte(`[]`))
	assert.True(t, errors.Is(err, store.ErrQuotaExceeded))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `hotel_store_operations_total{driver="mock",operation="get",result="success"} 1`)
	assert.Contains(t, string(body), `hotel_store_operations_total{driver="mock",operation="put",result="error"} 1`)
}

package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"hostel/internal/domains/store"
	"hostel/internal/domains/store/mocks"
	"hostel/internal/domains/store/storetest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type room struct {
	ID        string   `json:"id"`
	Price     int      `json:"price"`
	Amenities []string `json:"amenities"`
}

func TestLoadMissingKey(t *testing.T) {
	s := storetest.New(t)

	_, err := s.Load(context.Background(), "hostel_rooms")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetReturnsDefaultWhenAbsent(t *testing.T) {
	s := storetest.New(t)
	def := []room{{ID: "r1", Price: 500}}

	got, err := store.Get(context.Background(), s, "hostel_rooms", def)
	require.NoError(t, err)
	assert.Equal(t, def, got)

	got[0].Price = 1
	assert.Equal(t, 500, def[0].Price)
}

func TestSetGetRoundTrip(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		key   string
		value any
		def   any
	}{
		{name: "collection", key: "hostel_rooms", value: []room{{ID: "r3", Price: 800, Amenities: []string{"WiFi"}}}, def: []room{}},
		{name: "string", key: "hostel_selected_food", value: "f2", def: ""},
		{name: "empty collection", key: "hostel_bookings", value: []room{}, def: []room{{ID: "x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := storetest.New(t)

			switch value := tt.value.(type) {
			case []room:
				require.NoError(t, store.Set(ctx, s, tt.key, value))
				got, err := store.Get(ctx, s, tt.key, tt.def.([]room))
				require.NoError(t, err)
				assert.Equal(t, value, got)
			case string:
				require.NoError(t, store.Set(ctx, s, tt.key, value))
				got, err := store.Get(ctx, s, tt.key, tt.def.(string))
				require.NoError(t, err)
				assert.Equal(t, value, got)
			}
		})
	}
}

func TestSetOverwritesWholeValue(t *testing.T) {
	ctx := context.Background()
	s := storetest.New(t)

	require.NoError(t, store.Set(ctx, s, "hostel_rooms", []room{{ID: "r1"}, {ID: "r2"}}))
	require.NoError(t, store.Set(ctx, s, "hostel_rooms", []room{{ID: "r9"}}))

	got, err := store.Get(ctx, s, "hostel_rooms", []room{})
	require.NoError(t, err)
	assert.Equal(t, []room{{ID: "r9"}}, got)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	s := storetest.New(t)

	require.NoError(t, store.Set(ctx, s, "hostel_current_user", room{ID: "u"}))
	require.NoError(t, store.Remove(ctx, s, "hostel_current_user"))
	require.NoError(t, store.Remove(ctx, s, "hostel_current_user"))

	got, err := store.Get[*room](ctx, s, "hostel_current_user", nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMutate(t *testing.T) {
	ctx := context.Background()
	s := storetest.New(t)

	err := store.Mutate(ctx, s, "hostel_rooms", []room{{ID: "r1"}}, func(rooms *[]room) error {
		*rooms = append(*rooms, room{ID: "r2"})

		return nil
	})
	require.NoError(t, err)

	got, err := store.Get(ctx, s, "hostel_rooms", []room{})
	require.NoError(t, err)
	assert.Equal(t, []room{{ID: "r1"}, {ID: "r2"}}, got)
}

func TestMutateNoChangeSkipsWrite(t *testing.T) {
	ctx := context.Background()
	s := storetest.New(t)

	err := store.Mutate(ctx, s, "hostel_rooms", []room{}, func(_ *[]room) error {
		return store.ErrNoChange
	})
	require.NoError(t, err)

	_, err = s.Load(ctx, "hostel_rooms")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMutatePropagatesError(t *testing.T) {
	ctx := context.Background()
	s := storetest.New(t)
	boom := errors.New("boom")

	require.NoError(t, store.Set(ctx, s, "hostel_rooms", []room{{ID: "r1"}}))

	err := store.Mutate(ctx, s, "hostel_rooms", []room{}, func(rooms *[]room) error {
		*rooms = nil

		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := store.Get(ctx, s, "hostel_rooms", []room{})
	require.NoError(t, err)
	assert.Equal(t, []room{{ID: "r1"}}, got)
}

func TestMutateConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	s := storetest.New(t)

	const writers = 8

	var wg sync.WaitGroup

	errs := make(chan error, writers)

	for i := range writers {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			var err error
			for range 5 {
				err = store.Mutate(ctx, s, "hostel_bookings", []int{}, func(ids *[]int) error {
					*ids = append(*ids, i)

					return nil
				})
				if err == nil {
					break
				}
			}

			errs <- err
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	got, err := store.Get(ctx, s, "hostel_bookings", []int{})
	require.NoError(t, err)
	assert.Len(t, got, writers)
}

func TestGetCorruptValue(t *testing.T) {
	ctx := context.Background()
	s := storetest.New(t)

	require.NoError(t, s.Save(ctx, "hostel_rooms", []byte("{not json")))

	_, err := store.Get(ctx, s, "hostel_rooms", []room{})
	assert.Error(t, err)
}

func TestSetUnsupportedValue(t *testing.T) {
	s := storetest.New(t)

	err := store.Set(context.Background(), s, "bad", make(chan int))
	assert.Error(t, err)
}

func TestKeysAndSnapshot(t *testing.T) {
	ctx := context.Background()
	s := storetest.New(t)

	require.NoError(t, store.Set(ctx, s, "hostel_rooms", []room{{ID: "r1"}}))
	require.NoError(t, store.Set(ctx, s, "hostel_selected_food", "f1"))
	require.NoError(t, s.Save(ctx, "garbage", []byte("not-json")))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"hostel_rooms", "hostel_selected_food", "garbage"}, keys)

	snapshot, err := store.Snapshot(ctx, s)
	require.NoError(t, err)
	assert.Len(t, snapshot, 2)
	assert.JSONEq(t, `"f1"`, string(snapshot["hostel_selected_food"]))

	var rooms []room
	require.NoError(t, json.Unmarshal(snapshot["hostel_rooms"], &rooms))
	assert.Equal(t, "r1", rooms[0].ID)
}

func TestGetLoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockStore(ctrl)
	boom := errors.New("connection reset")

	s.EXPECT().Load(gomock.Any(), "hostel_users").Return(nil, boom)

	_, err := store.Get(context.Background(), s, "hostel_users", []room{})
	assert.ErrorIs(t, err, boom)
}

func TestSnapshotKeysFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockStore(ctrl)
	boom := errors.New("connection reset")

	s.EXPECT().Keys(gomock.Any()).Return(nil, boom)

	_, err := store.Snapshot(context.Background(), s)
	assert.ErrorIs(t, err, boom)
}

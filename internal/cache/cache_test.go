package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/pkg/constants"
	"inventory-system/pkg/types"
)

func newTestStore() *Store {
	return NewStore(zap.NewNop())
}

func TestKey_Deterministic(t *testing.T) {
	k1 := Key("inventory/equipment", map[string]string{"building_id": "1", "status": "WORKING"})
	k2 := Key("inventory/equipment", map[string]string{"status": "WORKING", "building_id": "1"})
	assert.Equal(t, k1, k2, "порядок параметров не должен влиять на ключ")

	k3 := Key("inventory/equipment", map[string]string{"building_id": "2", "status": "WORKING"})
	assert.NotEqual(t, k1, k3)

	assert.Equal(t, "university/buildings", Key("university/buildings", nil))
}

func TestListKey_NormalizesMultiValues(t *testing.T) {
	f1 := types.Filter{Limit: 10, Filter: map[string]interface{}{"room_id": "3,1,2"}}
	f2 := types.Filter{Limit: 10, Filter: map[string]interface{}{"room_id": "1,2,3"}}
	assert.Equal(t, ListKey("inventory/equipment", f1), ListKey("inventory/equipment", f2))
}

func TestRead_CachesValue(t *testing.T) {
	s := newTestStore()
	var calls int32
	loader := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		return "buildings-v1", nil
	}

	for i := 0; i < 5; i++ {
		val, err := s.Read(context.Background(), "university/buildings", []Tag{TagBuilding}, loader)
		require.NoError(t, err)
		assert.Equal(t, "buildings-v1", val)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "повторные чтения должны идти из кеша")
}

// Свойство из контракта: N конкурентных чтений одного ключа — ровно один
// вызов loader, все читатели получают одно и то же значение.
func TestRead_DeduplicatesConcurrentReads(t *testing.T) {
	s := newTestStore()
	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})

	loader := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		close(started)
		<-release
		return uint64(42), nil
	}

	const readers = 25
	var wg sync.WaitGroup
	results := make([]interface{}, readers)
	errs := make([]error, readers)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = s.Read(context.Background(), "k", []Tag{TagEquipment}, loader)
	}()
	<-started

	for i := 1; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.Read(context.Background(), "k", []Tag{TagEquipment}, func(ctx context.Context) (interface{}, error) {
				atomic.AddInt32(&calls, 1)
				return nil, errors.New("второй loader не должен вызываться")
			})
		}(i)
	}

	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for i := 0; i < readers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, uint64(42), results[i])
	}
}

func TestWrite_InvalidatesIntersectingTags(t *testing.T) {
	s := newTestStore()
	var buildingLoads, facultyLoads int32

	readBuildings := func() (interface{}, error) {
		return s.Read(context.Background(), "university/buildings", []Tag{TagBuilding}, func(ctx context.Context) (interface{}, error) {
			return atomic.AddInt32(&buildingLoads, 1), nil
		})
	}
	readFaculties := func() (interface{}, error) {
		return s.Read(context.Background(), "university/faculties", []Tag{TagFaculty}, func(ctx context.Context) (interface{}, error) {
			return atomic.AddInt32(&facultyLoads, 1), nil
		})
	}

	_, err := readBuildings()
	require.NoError(t, err)
	_, err = readFaculties()
	require.NoError(t, err)

	err = s.Write(context.Background(), []Tag{TagBuilding}, func(ctx context.Context) error {
		return nil
	})
	require.NoError(t, err)

	val, err := readBuildings()
	require.NoError(t, err)
	assert.Equal(t, int32(2), val, "чтение зданий после записи должно перечитаться")

	_, err = readFaculties()
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&facultyLoads), "факультеты не должны перечитываться")
}

func TestWrite_FailedWriteDoesNotInvalidate(t *testing.T) {
	s := newTestStore()
	var loads int32
	read := func() (interface{}, error) {
		return s.Read(context.Background(), "rooms", []Tag{TagRoom}, func(ctx context.Context) (interface{}, error) {
			return atomic.AddInt32(&loads, 1), nil
		})
	}

	_, err := read()
	require.NoError(t, err)

	wantErr := errors.New("сервер отклонил запись")
	err = s.Write(context.Background(), []Tag{TagRoom}, func(ctx context.Context) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	_, err = read()
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&loads), "неудачная запись не должна сбрасывать кеш")
}

func TestRead_FailedReloadKeepsStaleValue(t *testing.T) {
	s := newTestStore()
	calls := 0
	loader := func(ctx context.Context) (interface{}, error) {
		calls++
		if calls == 1 {
			return "старое значение", nil
		}
		return nil, errors.New("сеть недоступна")
	}

	val, err := s.Read(context.Background(), "k", []Tag{TagEquipment}, loader)
	require.NoError(t, err)
	assert.Equal(t, "старое значение", val)

	s.Invalidate(TagEquipment)

	val, err = s.Read(context.Background(), "k", []Tag{TagEquipment}, loader)
	require.Error(t, err)
	assert.Equal(t, "старое значение", val, "при ошибке перечитывания прежнее значение остаётся доступным")

	// запись осталась устаревшей: следующее чтение снова пойдёт в loader
	val, err = s.Read(context.Background(), "k", []Tag{TagEquipment}, loader)
	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, "старое значение", val)
}

// Инвалидация во время выполнения loader: значение сохраняется, но
// помечается устаревшим — следующее чтение перечитает уже после записи.
func TestRead_InvalidationDuringFlightMarksStale(t *testing.T) {
	s := newTestStore()
	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})

	go func() {
		<-started
		s.Invalidate(TagEquipment)
		close(release)
	}()

	_, err := s.Read(context.Background(), "k", []Tag{TagEquipment}, func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		close(started)
		<-release
		return "до записи", nil
	})
	require.NoError(t, err)

	val, err := s.Read(context.Background(), "k", []Tag{TagEquipment}, func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		return "после записи", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "после записи", val)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

// Повторное «удаление» уже удалённой записи: соседние записи того же
// семейства переживают инвалидацию без порчи — просто перечитываются.
func TestWrite_RepeatedDeleteKeepsSiblingsConsistent(t *testing.T) {
	s := newTestStore()
	listVal := []string{"Аудитория 101", "Аудитория 102"}
	var loads int32

	read := func() (interface{}, error) {
		return s.Read(context.Background(), "rooms", []Tag{TagRoom}, func(ctx context.Context) (interface{}, error) {
			atomic.AddInt32(&loads, 1)
			return listVal, nil
		})
	}

	_, err := read()
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		err = s.Write(context.Background(), []Tag{TagRoom}, func(ctx context.Context) error {
			return nil // DELETE идемпотентен на стороне сервера
		})
		require.NoError(t, err)

		val, err := read()
		require.NoError(t, err)
		assert.Equal(t, listVal, val)
	}
	assert.Equal(t, int32(3), atomic.LoadInt32(&loads))
}

func TestSpecTags_PerVariantInvalidation(t *testing.T) {
	s := newTestStore()
	var computerLoads, printerLoads int32

	readComputer := func() (interface{}, error) {
		return s.Read(context.Background(), "inventory/computer-specification",
			SpecTags(constants.TypeComputer), func(ctx context.Context) (interface{}, error) {
				return atomic.AddInt32(&computerLoads, 1), nil
			})
	}
	readPrinter := func() (interface{}, error) {
		return s.Read(context.Background(), "inventory/printer-specification",
			SpecTags(constants.TypePrinter), func(ctx context.Context) (interface{}, error) {
				return atomic.AddInt32(&printerLoads, 1), nil
			})
	}

	_, _ = readComputer()
	_, _ = readPrinter()

	// запись в спецификации компьютеров не трогает принтеры
	require.NoError(t, s.Write(context.Background(), []Tag{SpecTag(constants.TypeComputer)}, func(ctx context.Context) error {
		return nil
	}))
	_, _ = readComputer()
	_, _ = readPrinter()
	assert.Equal(t, int32(2), atomic.LoadInt32(&computerLoads))
	assert.Equal(t, int32(1), atomic.LoadInt32(&printerLoads))

	// агрегатная метка сбрасывает все варианты
	s.Invalidate(TagSpecification)
	_, _ = readComputer()
	_, _ = readPrinter()
	assert.Equal(t, int32(3), atomic.LoadInt32(&computerLoads))
	assert.Equal(t, int32(2), atomic.LoadInt32(&printerLoads))
}

func TestRead_ContextCancelledWhileWaiting(t *testing.T) {
	s := newTestStore()
	started := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	go func() {
		_, _ = s.Read(context.Background(), "k", []Tag{TagUser}, func(ctx context.Context) (interface{}, error) {
			close(started)
			<-release
			return 1, nil
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Read(ctx, "k", []Tag{TagUser}, func(ctx context.Context) (interface{}, error) {
		t.Fatal("loader не должен вызываться")
		return nil, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

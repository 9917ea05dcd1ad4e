package memory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"psy211-course-service/internal/domain"
)

type countingLoader struct {
	inner UnitLoader
	loads int32
}

func (l *countingLoader) LoadUnit(ctx context.Context, unitID int) (domain.UnitData, error) {
	atomic.AddInt32(&l.loads, 1)
	return l.inner.LoadUnit(ctx, unitID)
}

func (l *countingLoader) ListUnitIDs(ctx context.Context) ([]int, error) {
	return l.inner.ListUnitIDs(ctx)
}

func loaderUnits() []domain.UnitData {
	return []domain.UnitData{
		{ID: 1, Title: "الوحدة الأولى"},
		{ID: 2, Title: "الوحدة الثانية"},
	}
}

func TestGetUnitCachesWithinTTL(t *testing.T) {
	loader := &countingLoader{inner: NewStaticUnitLoader(loaderUnits())}
	repo := NewUnitRepository(loader, time.Hour)

	for i := 0; i < 3; i++ {
		unit, err := repo.GetUnit(context.Background(), 1)
		if err != nil {
			t.Fatalf("get unit: %v", err)
		}
		if unit.Title != "الوحدة الأولى" {
			t.Fatalf("unexpected unit %+v", unit)
		}
	}
	if got := atomic.LoadInt32(&loader.loads); got != 1 {
		t.Fatalf("expected a single loader hit, got %d", got)
	}
}

func TestGetUnitReloadsAfterExpiry(t *testing.T) {
	loader := &countingLoader{inner: NewStaticUnitLoader(loaderUnits())}
	repo := NewUnitRepository(loader, time.Minute)

	now := time.Now()
	repo.clock = func() time.Time { return now }

	if _, err := repo.GetUnit(context.Background(), 1); err != nil {
		t.Fatalf("get unit: %v", err)
	}
	// Jitter adds at most 10%, so two TTLs are safely past expiry.
	now = now.Add(2 * time.Minute)
	if _, err := repo.GetUnit(context.Background(), 1); err != nil {
		t.Fatalf("get unit after expiry: %v", err)
	}
	if got := atomic.LoadInt32(&loader.loads); got != 2 {
		t.Fatalf("expected reload after expiry, got %d loads", got)
	}
}

func TestGetUnitUnknownID(t *testing.T) {
	repo := NewUnitRepository(NewStaticUnitLoader(loaderUnits()), time.Hour)
	if _, err := repo.GetUnit(context.Background(), 99); !errors.Is(err, domain.ErrUnitNotFound) {
		t.Fatalf("expected ErrUnitNotFound, got %v", err)
	}
}

func TestListUnitsKeepsOrder(t *testing.T) {
	repo := NewUnitRepository(NewStaticUnitLoader(loaderUnits()), time.Hour)
	units, err := repo.ListUnits(context.Background())
	if err != nil {
		t.Fatalf("list units: %v", err)
	}
	if len(units) != 2 || units[0].ID != 1 || units[1].ID != 2 {
		t.Fatalf("expected declaration order, got %+v", units)
	}
}

func TestConcurrentGetUnitSingleLoad(t *testing.T) {
	loader := &countingLoader{inner: NewStaticUnitLoader(loaderUnits())}
	repo := NewUnitRepository(loader, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.GetUnit(context.Background(), 2); err != nil {
				t.Errorf("get unit: %v", err)
			}
		}()
	}
	wg.Wait()
	if got := atomic.LoadInt32(&loader.loads); got != 1 {
		t.Fatalf("expected the flight shared, got %d loads", got)
	}
}

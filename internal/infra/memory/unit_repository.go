package memory

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"psy211-course-service/internal/domain"
)

// UnitLoader fetches unit content from a backing store (static tables, Postgres).
type UnitLoader interface {
	LoadUnit(ctx context.Context, unitID int) (domain.UnitData, error)
	ListUnitIDs(ctx context.Context) ([]int, error)
}

// UnitRepository caches units with TTL to avoid repeated loader hits.
type UnitRepository struct {
	loader UnitLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[int]cachedUnit
}

type cachedUnit struct {
	unit      domain.UnitData
	expiresAt time.Time
}

func NewUnitRepository(loader UnitLoader, ttl time.Duration) *UnitRepository {
	return &UnitRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[int]cachedUnit),
	}
}

func (r *UnitRepository) GetUnit(ctx context.Context, unitID int) (domain.UnitData, error) {
	now := r.clock()

	r.mu.RLock()
	if entry, ok := r.cache[unitID]; ok && entry.expiresAt.After(now) {
		r.mu.RUnlock()
		return entry.unit, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do(unitKey(unitID), func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if entry, ok := r.cache[unitID]; ok && entry.expiresAt.After(now) {
			r.mu.RUnlock()
			return entry.unit, nil
		}
		r.mu.RUnlock()

		unit, err := r.loader.LoadUnit(ctx, unitID)
		if err != nil {
			return domain.UnitData{}, err
		}

		r.mu.Lock()
		r.cache[unitID] = cachedUnit{
			unit:      unit,
			expiresAt: now.Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
		return unit, nil
	})
	if err != nil {
		return domain.UnitData{}, err
	}
	return result.(domain.UnitData), nil
}

// ListUnits returns every unit of the course in id order.
func (r *UnitRepository) ListUnits(ctx context.Context) ([]domain.UnitData, error) {
	ids, err := r.loader.ListUnitIDs(ctx)
	if err != nil {
		return nil, err
	}
	units := make([]domain.UnitData, 0, len(ids))
	for _, id := range ids {
		unit, err := r.GetUnit(ctx, id)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
	return units, nil
}

func (r *UnitRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

func unitKey(unitID int) string {
	return "unit-" + strconv.Itoa(unitID)
}

// StaticUnitLoader serves units from an in-memory slice (the course tables).
type StaticUnitLoader struct {
	units map[int]domain.UnitData
	order []int
}

func NewStaticUnitLoader(units []domain.UnitData) *StaticUnitLoader {
	l := &StaticUnitLoader{units: make(map[int]domain.UnitData, len(units))}
	for _, u := range units {
		l.units[u.ID] = u
		l.order = append(l.order, u.ID)
	}
	return l
}

func (l *StaticUnitLoader) LoadUnit(_ context.Context, unitID int) (domain.UnitData, error) {
	if unit, ok := l.units[unitID]; ok {
		return unit, nil
	}
	return domain.UnitData{}, domain.ErrUnitNotFound
}

func (l *StaticUnitLoader) ListUnitIDs(_ context.Context) ([]int, error) {
	ids := make([]int, len(l.order))
	copy(ids, l.order)
	return ids, nil
}

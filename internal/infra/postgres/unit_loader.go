package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"psy211-course-service/internal/domain"
)

// UnitLoader loads unit content JSONB from Postgres. Content in the database
// follows the same shape as the static course tables; the service treats both
// sources identically behind memory.UnitLoader.
type UnitLoader struct {
	pool *pgxpool.Pool
}

func NewUnitLoader(pool *pgxpool.Pool) *UnitLoader {
	return &UnitLoader{pool: pool}
}

func (l *UnitLoader) LoadUnit(ctx context.Context, unitID int) (domain.UnitData, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM course_units WHERE id=$1`, unitID).Scan(&raw)
	if err != nil {
		return domain.UnitData{}, fmt.Errorf("load unit %d: %w", unitID, err)
	}
	var unit domain.UnitData
	if err := json.Unmarshal(raw, &unit); err != nil {
		return domain.UnitData{}, fmt.Errorf("unmarshal unit %d: %w", unitID, err)
	}
	return unit, nil
}

func (l *UnitLoader) ListUnitIDs(ctx context.Context) ([]int, error) {
	rows, err := l.pool.Query(ctx, `SELECT id FROM course_units ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan unit id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

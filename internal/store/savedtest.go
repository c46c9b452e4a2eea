package store

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type savedTestModel struct {
	bun.BaseModel `bun:"table:saved_tests,alias:st"`

	Seq       int64     `bun:"seq,pk,autoincrement"`
	ID        string    `bun:"id,notnull,unique"`
	Title     string    `bun:"title,notnull"`
	Date      string    `bun:"date,notnull"`
	FileName  string    `bun:"file_name"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

type savedTestRepo struct {
	db *bun.DB
}

func (r *savedTestRepo) Append(ctx context.Context, t SavedTest) error {
	if t.ID == "" {
		return fmt.Errorf("saved test ID is required")
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	m := &savedTestModel{
		ID:        t.ID,
		Title:     t.Title,
		Date:      t.Date,
		FileName:  t.FileName,
		CreatedAt: t.CreatedAt.UTC(),
	}
	if _, err := r.db.NewInsert().Model(m).Exec(ctx); err != nil {
		return fmt.Errorf("save saved test %s: %w", t.ID, err)
	}
	return nil
}

func (r *savedTestRepo) List(ctx context.Context) ([]SavedTest, error) {
	var models []savedTestModel
	if err := r.db.NewSelect().Model(&models).Order("seq ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list saved tests: %w", err)
	}

	out := make([]SavedTest, len(models))
	for i, m := range models {
		out[i] = SavedTest{
			ID:        m.ID,
			Title:     m.Title,
			Date:      m.Date,
			FileName:  m.FileName,
			CreatedAt: m.CreatedAt,
		}
	}
	return out, nil
}

func (r *savedTestRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.NewDelete().Model((*savedTestModel)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("delete saved test %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete saved test %s: %w", id, err)
	}
	return n > 0, nil
}

package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCollection stores one record kind in a SQL table through GORM.
// The table comes from the model's TableName; ids are UUIDs.
type GormCollection[T Model[T]] struct {
	desc Descriptor[T]
	db   *gorm.DB
}

func NewGormCollection[T Model[T]](db *gorm.DB, desc Descriptor[T]) *GormCollection[T] {
	return &GormCollection[T]{desc: desc, db: db}
}

// Migrate creates or updates the table for the record kind.
func (g *GormCollection[T]) Migrate(ctx context.Context) error {
	return g.db.WithContext(ctx).AutoMigrate(g.desc.New())
}

func (g *GormCollection[T]) parseID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", &CastError{Kind: g.desc.Kind, Type: "UUID", Value: id, Err: err}
	}
	return u.String(), nil
}

func (g *GormCollection[T]) Find(ctx context.Context) ([]T, error) {
	out := make([]T, 0)
	if err := g.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (g *GormCollection[T]) FindByID(ctx context.Context, id string) (T, bool, error) {
	var zero T
	key, err := g.parseID(id)
	if err != nil {
		return zero, false, err
	}

	rec := g.desc.New()
	if err := g.db.WithContext(ctx).First(rec, "id = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, false, nil
		}
		return zero, false, err
	}
	return rec, true, nil
}

func (g *GormCollection[T]) Save(ctx context.Context, rec T) error {
	stamp(rec, now())
	if err := Validate(g.desc, rec); err != nil {
		return err
	}
	db := g.db.WithContext(ctx)

	if rec.GetID() == "" {
		rec.SetID(uuid.NewString())
		if err := db.Create(rec).Error; err != nil {
			rec.SetID("")
			return err
		}
		return nil
	}

	if _, err := g.parseID(rec.GetID()); err != nil {
		return err
	}
	// Select("*") writes zero values too: update is a full overwrite
	res := db.Model(rec).Select("*").Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return documentNotFound(g.desc.Kind, rec.GetID())
	}
	return nil
}

func (g *GormCollection[T]) FindByIDAndDelete(ctx context.Context, id string) (T, bool, error) {
	var zero T
	key, err := g.parseID(id)
	if err != nil {
		return zero, false, err
	}

	rec := g.desc.New()
	res := g.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", key).
		Delete(rec)
	if res.Error != nil {
		return zero, false, res.Error
	}
	if res.RowsAffected == 0 {
		return zero, false, nil
	}
	return rec, true, nil
}

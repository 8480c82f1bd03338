package store

import (
	"context"
	"fmt"

	database "bookstore_backend/internals/databases"
)

// Open returns the Collection for desc on the backend conn was opened for.
// SQL tables are created on first open.
func Open[T Model[T]](ctx context.Context, conn *database.Connection, desc Descriptor[T]) (Collection[T], error) {
	switch conn.Driver {
	case database.DriverMongo:
		return NewMongoCollection(conn.Mongo.Collection(desc.Collection), desc), nil
	case database.DriverPostgres, database.DriverSQLite:
		coll := NewGormCollection(conn.SQL, desc)
		if err := coll.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate %s: %w", desc.Collection, err)
		}
		return coll, nil
	case database.DriverMemory:
		return NewMemoryCollection(desc), nil
	default:
		return nil, fmt.Errorf("unknown driver %q", conn.Driver)
	}
}

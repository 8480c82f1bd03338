package store

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryCollection keeps records in memory. Data is lost on restart.
// Identifiers are ObjectID hex strings, like the MongoDB backend.
// Safe for concurrent use.
type MemoryCollection[T Model[T]] struct {
	desc Descriptor[T]

	mu      sync.RWMutex
	order   []string
	records map[string]T
}

func NewMemoryCollection[T Model[T]](desc Descriptor[T]) *MemoryCollection[T] {
	return &MemoryCollection[T]{
		desc:    desc,
		records: make(map[string]T),
	}
}

// clone returns a shallow copy of the record rec points to.
func clone[T any](rec T) T {
	v := reflect.ValueOf(rec)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return rec
	}
	cp := reflect.New(v.Elem().Type())
	cp.Elem().Set(v.Elem())
	return cp.Interface().(T)
}

func (m *MemoryCollection[T]) parseID(id string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", &CastError{Kind: m.desc.Kind, Type: "ObjectId", Value: id, Err: err}
	}
	return oid.Hex(), nil
}

func (m *MemoryCollection[T]) Find(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, clone(m.records[id]))
	}
	return out, nil
}

func (m *MemoryCollection[T]) FindByID(ctx context.Context, id string) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	key, err := m.parseID(id)
	if err != nil {
		return zero, false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[key]
	if !ok {
		return zero, false, nil
	}
	return clone(rec), true, nil
}

func (m *MemoryCollection[T]) Save(ctx context.Context, rec T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stamp(rec, now())
	if err := Validate(m.desc, rec); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if rec.GetID() == "" {
		key := primitive.NewObjectID().Hex()
		rec.SetID(key)
		m.records[key] = clone(rec)
		m.order = append(m.order, key)
		return nil
	}

	key, err := m.parseID(rec.GetID())
	if err != nil {
		return err
	}
	if _, ok := m.records[key]; !ok {
		return documentNotFound(m.desc.Kind, key)
	}
	m.records[key] = clone(rec)
	return nil
}

func (m *MemoryCollection[T]) FindByIDAndDelete(ctx context.Context, id string) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	key, err := m.parseID(id)
	if err != nil {
		return zero, false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[key]
	if !ok {
		return zero, false, nil
	}
	delete(m.records, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return rec, true, nil
}

// Package store is the persistence layer behind the resource handlers.
//
// Every record kind is described by a Descriptor and reached through a
// Collection. Backends: MongoDB, PostgreSQL (GORM) and an in-process map.
// Required fields are enforced here, on every write, not by the handlers.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Model is implemented by pointer record types (*BookStoreModel, ...).
type Model[T any] interface {
	GetID() string
	SetID(id string)
	// Overwrite replaces every client-writable field with the value from src.
	Overwrite(src T)
}

// Timestamped records get created/updated stamps from the persistence layer.
type Timestamped interface {
	Stamp(now time.Time)
}

// Descriptor is the record-shape of one resource kind.
type Descriptor[T Model[T]] struct {
	Kind       string // e.g. "BookStore"
	Collection string // collection or table name
	New        func() T
}

// Collection is the generic persistence collaborator for one record kind.
//
// FindByID and FindByIDAndDelete report a missing record with found=false
// and a nil error; a malformed id is a *CastError.
type Collection[T Model[T]] interface {
	Find(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (rec T, found bool, err error)
	// Save inserts rec when it has no id (assigning one) and replaces the
	// stored record otherwise.
	Save(ctx context.Context, rec T) error
	FindByIDAndDelete(ctx context.Context, id string) (rec T, found bool, err error)
}

// =======================
// ERRORS
// =======================

// CastError is returned for identifiers the backend cannot parse.
type CastError struct {
	Kind  string
	Type  string // "ObjectId" | "UUID"
	Value string
	Err   error
}

func (e *CastError) Error() string {
	return fmt.Sprintf(`Cast to %s failed for value "%s" (type string) at path "_id" for model "%s"`, e.Type, e.Value, e.Kind)
}

func (e *CastError) Unwrap() error { return e.Err }

// FieldError is a single failed field constraint.
type FieldError struct {
	Path string
	Tag  string
}

func (f FieldError) message() string {
	if f.Tag == "required" {
		return fmt.Sprintf("%s: Path `%s` is required.", f.Path, f.Path)
	}
	return fmt.Sprintf("%s: Path `%s` failed `%s` validation.", f.Path, f.Path, f.Tag)
}

// ValidationError is returned by Save when a record misses required fields.
type ValidationError struct {
	Kind   string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.message())
	}
	return fmt.Sprintf("%s validation failed: %s", e.Kind, strings.Join(msgs, ", "))
}

// ErrDocumentNotFound is returned by Save when replacing a record that no
// longer exists.
var ErrDocumentNotFound = errors.New("no document found")

func documentNotFound(kind, id string) error {
	return fmt.Errorf("%w for query {_id: %q} on model %q", ErrDocumentNotFound, id, kind)
}

// now is shared by the backends so every stamp has millisecond precision,
// the resolution MongoDB stores.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func stamp(rec any, at time.Time) {
	if ts, ok := rec.(Timestamped); ok {
		ts.Stamp(at)
	}
}

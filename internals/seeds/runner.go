package seeds

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"bookstore_backend/internals/features"
	bookstoreModel "bookstore_backend/internals/features/bookstores/model"
	documentModel "bookstore_backend/internals/features/documents/model"
	"bookstore_backend/internals/store"
)

// RunAllSeeds loads <dir>/bookstores.json and <dir>/documents.json into
// their collections. Missing files are skipped.
func RunAllSeeds(ctx context.Context, colls *features.Collections, dir string, log *zap.SugaredLogger) error {
	n, err := SeedFromJSON(ctx, colls.BookStores, bookstoreModel.Descriptor, filepath.Join(dir, "bookstores.json"))
	if err != nil {
		return err
	}
	log.Infow("📥 Seed selesai", "collection", bookstoreModel.Descriptor.Collection, "inserted", n)

	n, err = SeedFromJSON(ctx, colls.Documents, documentModel.Descriptor, filepath.Join(dir, "documents.json"))
	if err != nil {
		return err
	}
	log.Infow("📥 Seed selesai", "collection", documentModel.Descriptor.Collection, "inserted", n)
	return nil
}

// SeedFromJSON inserts every record of a JSON array file, but only into an
// empty collection so restarts do not duplicate data. The whole file is
// checked before the first write: a null or invalid element inserts
// nothing. It returns the number of records inserted.
func SeedFromJSON[T store.Model[T]](ctx context.Context, coll store.Collection[T], desc store.Descriptor[T], path string) (int, error) {
	file, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	var inputs []T
	if err := sonic.ConfigStd.Unmarshal(file, &inputs); err != nil {
		return 0, fmt.Errorf("decode %s: %w", path, err)
	}

	recs := make([]T, 0, len(inputs))
	for i, input := range inputs {
		if isNil(input) {
			return 0, fmt.Errorf("%s[%d]: null record", path, i)
		}
		rec := desc.New()
		rec.Overwrite(input)
		if err := store.Validate(desc, rec); err != nil {
			return 0, fmt.Errorf("%s[%d]: %w", path, i, err)
		}
		recs = append(recs, rec)
	}

	existing, err := coll.Find(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for i, rec := range recs {
		if err := coll.Save(ctx, rec); err != nil {
			return i, fmt.Errorf("%s[%d]: %w", path, i, err)
		}
	}
	return len(recs), nil
}

// isNil reports a JSON null decoded into a pointer record type.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

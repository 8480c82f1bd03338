package features

import (
	"context"

	database "bookstore_backend/internals/databases"
	bookstoreModel "bookstore_backend/internals/features/bookstores/model"
	documentModel "bookstore_backend/internals/features/documents/model"
	"bookstore_backend/internals/store"
)

// Collections holds one opened collection per resource kind.
type Collections struct {
	BookStores store.Collection[*bookstoreModel.BookStoreModel]
	Documents  store.Collection[*documentModel.DocumentModel]
}

func OpenCollections(ctx context.Context, conn *database.Connection) (*Collections, error) {
	bookstores, err := store.Open(ctx, conn, bookstoreModel.Descriptor)
	if err != nil {
		return nil, err
	}
	documents, err := store.Open(ctx, conn, documentModel.Descriptor)
	if err != nil {
		return nil, err
	}
	return &Collections{BookStores: bookstores, Documents: documents}, nil
}

// NewMemoryCollections is the in-process variant used by tests.
func NewMemoryCollections() *Collections {
	return &Collections{
		BookStores: store.NewMemoryCollection(bookstoreModel.Descriptor),
		Documents:  store.NewMemoryCollection(documentModel.Descriptor),
	}
}

package model

import "bookstore_backend/internals/store"

// BookStoreModel is one book entry. JSON keys are capitalised on the wire.
type BookStoreModel struct {
	ID     string `json:"_id"    bson:"-"      gorm:"column:id;type:uuid;primaryKey"`
	Title  string `json:"Title"  bson:"Title"  gorm:"column:title;not null"  validate:"required"`
	Author string `json:"Author" bson:"Author" gorm:"column:author;not null" validate:"required"`
	// pointer so that 0 pages is a value and a missing field is not
	Pages *int `json:"Pages" bson:"Pages" gorm:"column:pages;not null" validate:"required"`
}

func (BookStoreModel) TableName() string { return "bookstores" }

func (m *BookStoreModel) GetID() string   { return m.ID }
func (m *BookStoreModel) SetID(id string) { m.ID = id }

// Overwrite copies every writable field, absent ones included.
func (m *BookStoreModel) Overwrite(src *BookStoreModel) {
	m.Title = src.Title
	m.Author = src.Author
	m.Pages = src.Pages
}

var Descriptor = store.Descriptor[*BookStoreModel]{
	Kind:       "BookStore",
	Collection: "bookstores",
	New:        func() *BookStoreModel { return &BookStoreModel{} },
}

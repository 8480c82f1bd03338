package model

import (
	"time"

	"bookstore_backend/internals/store"
)

type DocumentModel struct {
	ID   string `json:"_id"  bson:"-"    gorm:"column:id;type:uuid;primaryKey"`
	Text string `json:"text" bson:"text" gorm:"column:text;not null" validate:"required"`

	// Timestamps: Stamp owns both, GORM's own tracking is switched off
	CreatedAt time.Time `json:"createdAt" bson:"createdAt" gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

func (DocumentModel) TableName() string { return "documents" }

func (m *DocumentModel) GetID() string   { return m.ID }
func (m *DocumentModel) SetID(id string) { m.ID = id }

func (m *DocumentModel) Overwrite(src *DocumentModel) {
	m.Text = src.Text
}

func (m *DocumentModel) Stamp(now time.Time) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}

var Descriptor = store.Descriptor[*DocumentModel]{
	Kind:       "Document",
	Collection: "documents",
	New:        func() *DocumentModel { return &DocumentModel{} },
}

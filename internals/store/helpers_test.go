package store

import "time"

type testBook struct {
	ID     string `json:"_id" bson:"-"`
	Title  string `json:"Title" bson:"Title" validate:"required"`
	Author string `json:"Author" bson:"Author" validate:"required"`
	Pages  *int   `json:"Pages" bson:"Pages" validate:"required"`
}

func (b *testBook) GetID() string { return b.ID }
func (b *testBook) SetID(id string) { b.ID = id }
func (b *testBook) Overwrite(src *testBook) {
	b.Title, b.Author, b.Pages = src.Title, src.Author, src.Pages
}

var testBookDesc = Descriptor[*testBook]{
	Kind:       "BookStore",
	Collection: "bookstores",
	New:        func() *testBook { return &testBook{} },
}

type testNote struct {
	ID        string    `json:"_id" bson:"-"`
	Text      string    `json:"text" bson:"text" validate:"required"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt" gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt" gorm:"autoUpdateTime:false"`
}

func (n *testNote) GetID() string { return n.ID }
func (n *testNote) SetID(id string) { n.ID = id }
func (n *testNote) Overwrite(src *testNote) { n.Text = src.Text }
func (n *testNote) Stamp(at time.Time) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = at
	}
	n.UpdatedAt = at
}

var testNoteDesc = Descriptor[*testNote]{
	Kind:       "Document",
	Collection: "documents",
	New:        func() *testNote { return &testNote{} },
}

func pages(n int) *int { return &n }

func newBook(title, author string, n int) *testBook {
	return &testBook{Title: title, Author: author, Pages: pages(n)}
}

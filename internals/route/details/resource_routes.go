package details

import (
	"github.com/gofiber/fiber/v2"

	"bookstore_backend/internals/features"
	bookstoreModel "bookstore_backend/internals/features/bookstores/model"
	documentModel "bookstore_backend/internals/features/documents/model"
	resRoute "bookstore_backend/internals/features/resources/route"
)

// BookStoreRoutes mounts /api/bookstores.
func BookStoreRoutes(app *fiber.App, colls *features.Collections) {
	resRoute.ResourceRoutes(app.Group("/api/bookstores"), colls.BookStores, bookstoreModel.Descriptor)
}

// DocumentRoutes mounts /api/documents.
func DocumentRoutes(app *fiber.App, colls *features.Collections) {
	resRoute.ResourceRoutes(app.Group("/api/documents"), colls.Documents, documentModel.Descriptor)
}

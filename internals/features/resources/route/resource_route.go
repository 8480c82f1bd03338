package route

import (
	"github.com/gofiber/fiber/v2"

	resController "bookstore_backend/internals/features/resources/controller"
	"bookstore_backend/internals/store"
)

// Call with: route.ResourceRoutes(app.Group("/api/bookstores"), coll, model.Descriptor)
// Endpoints:
//   GET    /            list
//   GET    /:id         get by id
//   POST   /add         add
//   PUT    /update/:id  update
//   DELETE /delete/:id  delete
func ResourceRoutes[T store.Model[T]](r fiber.Router, coll store.Collection[T], desc store.Descriptor[T]) {
	ctl := resController.NewResourceController(coll, desc)

	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/add", ctl.Add)
	r.Put("/update/:id", ctl.Update)
	r.Delete("/delete/:id", ctl.Delete)
}

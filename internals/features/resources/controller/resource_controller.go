package controller

import (
	"github.com/gofiber/fiber/v2"

	helper "bookstore_backend/internals/helpers"
	"bookstore_backend/internals/store"
)

// ResourceController serves the five CRUD operations of one record kind.
type ResourceController[T store.Model[T]] struct {
	Coll store.Collection[T]
	Desc store.Descriptor[T]
}

func NewResourceController[T store.Model[T]](coll store.Collection[T], desc store.Descriptor[T]) *ResourceController[T] {
	return &ResourceController[T]{Coll: coll, Desc: desc}
}

// bind reads the request body into a fresh record. An empty body yields an
// empty record and leaves the required-field check to the store.
func (h *ResourceController[T]) bind(c *fiber.Ctx) (T, error) {
	input := h.Desc.New()
	if len(c.Body()) == 0 {
		return input, nil
	}
	if err := c.BodyParser(input); err != nil {
		return input, err
	}
	return input, nil
}

// =========================================================
// LIST - GET /
// =========================================================
func (h *ResourceController[T]) List(c *fiber.Ctx) error {
	recs, err := h.Coll.Find(c.UserContext())
	if err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonOK(c, recs)
}

// =========================================================
// GET BY ID - GET /:id
// Data tidak ada → 200 dengan null (beda dengan update/delete).
// =========================================================
func (h *ResourceController[T]) GetByID(c *fiber.Ctx) error {
	rec, found, err := h.Coll.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.JsonFault(c, err)
	}
	if !found {
		return helper.JsonOK(c, nil)
	}
	return helper.JsonOK(c, rec)
}

// =========================================================
// ADD - POST /add
// =========================================================
func (h *ResourceController[T]) Add(c *fiber.Ctx) error {
	input, err := h.bind(c)
	if err != nil {
		return helper.JsonFault(c, err)
	}

	// hanya field yang boleh ditulis; _id & timestamp dari client dibuang
	rec := h.Desc.New()
	rec.Overwrite(input)
	if err := h.Coll.Save(c.UserContext(), rec); err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonMessage(c, fiber.StatusOK, h.Desc.Kind+" added!")
}

// =========================================================
// UPDATE - PUT /update/:id
// Full overwrite: field yang tidak dikirim ikut dikosongkan.
// =========================================================
func (h *ResourceController[T]) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()
	rec, found, err := h.Coll.FindByID(ctx, c.Params("id"))
	if err != nil {
		return helper.JsonFault(c, err)
	}
	if !found {
		return helper.JsonNotFound(c, h.Desc.Kind)
	}

	input, err := h.bind(c)
	if err != nil {
		return helper.JsonFault(c, err)
	}
	rec.Overwrite(input)

	if err := h.Coll.Save(ctx, rec); err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonMessage(c, fiber.StatusOK, h.Desc.Kind+" updated!")
}

// =========================================================
// DELETE - DELETE /delete/:id
// =========================================================
func (h *ResourceController[T]) Delete(c *fiber.Ctx) error {
	_, found, err := h.Coll.FindByIDAndDelete(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.JsonFault(c, err)
	}
	if !found {
		return helper.JsonNotFound(c, h.Desc.Kind)
	}
	return helper.JsonMessage(c, fiber.StatusOK, h.Desc.Kind+" deleted.")
}

package controller

import (
	"notely-be/internal/dto"
	"notely-be/internal/pkg/serverutils"
	"notely-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	ListTrash(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
	auth        fiber.Handler
}

func NewNoteController(noteService service.INoteService, auth fiber.Handler) INoteController {
	return &noteController{
		noteService: noteService,
		auth:        auth,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	// "/entries" is a legacy alias mounted onto the identical handlers.
	for _, prefix := range []string{"/notes", "/entries"} {
		h := r.Group(prefix)
		h.Use(c.auth)
		h.Get("", c.List)
		h.Get("/trash", c.ListTrash)
		h.Post("", c.Create)
		h.Patch("/restore/:id", c.Restore)
		h.Get("/:id", c.Show)
		h.Put("/:id", c.Update)
		h.Patch("/:id", c.Update)
		h.Delete("/:id", c.Delete)
	}
}

func noteId(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, serverutils.BadRequest("Invalid note ID")
	}
	return id, nil
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	notes, err := c.noteService.List(ctx.Context(), ctx.Query("search"))
	if err != nil {
		return err
	}
	return ctx.JSON(dto.NotesEnvelope{Message: "Notes retrieved successfully", Notes: notes})
}

func (c *noteController) ListTrash(ctx *fiber.Ctx) error {
	user := serverutils.CurrentUser(ctx)

	notes, err := c.noteService.ListTrash(ctx.Context(), user.Id)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.NotesEnvelope{Message: "Deleted notes retrieved successfully", Notes: notes})
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id, err := noteId(ctx)
	if err != nil {
		return err
	}

	note, err := c.noteService.Get(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.NoteEnvelope{Message: "Note retrieved successfully", Note: *note})
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	user := serverutils.CurrentUser(ctx)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	note, err := c.noteService.Create(ctx.Context(), user.Id, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(dto.NoteEnvelope{Message: "Note created successfully", Note: *note})
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	user := serverutils.CurrentUser(ctx)

	id, err := noteId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	note, err := c.noteService.Update(ctx.Context(), id, user.Id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.NoteEnvelope{Message: "Note updated successfully", Note: *note})
}

func (c *noteController) Restore(ctx *fiber.Ctx) error {
	user := serverutils.CurrentUser(ctx)

	id, err := noteId(ctx)
	if err != nil {
		return err
	}

	note, err := c.noteService.Restore(ctx.Context(), id, user.Id)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.NoteEnvelope{Message: "Note restored successfully", Note: *note})
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	user := serverutils.CurrentUser(ctx)

	id, err := noteId(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.SoftDelete(ctx.Context(), id, user.Id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"message": "Note deleted successfully"})
}

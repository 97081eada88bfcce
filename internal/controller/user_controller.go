package controller

import (
	"io"
	"strings"

	"notely-be/internal/dto"
	"notely-be/internal/pkg/serverutils"
	"notely-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const maxAvatarSize = 5 * 1024 * 1024

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetProfile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	UploadAvatar(ctx *fiber.Ctx) error
	UpdatePassword(ctx *fiber.Ctx) error
	ListNotes(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
	noteService service.INoteService
	auth        fiber.Handler
}

func NewUserController(userService service.IUserService, noteService service.INoteService, auth fiber.Handler) IUserController {
	return &userController{
		userService: userService,
		noteService: noteService,
		auth:        auth,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user")
	h.Use(c.auth)
	h.Get("/profile", c.GetProfile)
	h.Put("/profile", c.UpdateProfile)
	h.Patch("/profile", c.UpdateProfile)
	h.Post("/avatar", c.UploadAvatar)
	h.Put("/password", c.UpdatePassword)
	h.Get("/notes", c.ListNotes)

	// Legacy verbs kept for older clients.
	h.Patch("", c.UpdateProfile)
	h.Patch("/password", c.UpdatePassword)
}

func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	user := serverutils.CurrentUser(ctx)

	profile, err := c.userService.GetProfile(ctx.Context(), user.Id)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.ProfileResponse{Message: "Profile retrieved successfully", User: *profile})
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	user := serverutils.CurrentUser(ctx)

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	profile, err := c.userService.UpdateProfile(ctx.Context(), user.Id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.ProfileResponse{Message: "Profile updated successfully", User: *profile})
}

func (c *userController) UploadAvatar(ctx *fiber.Ctx) error {
	user := serverutils.CurrentUser(ctx)

	header, err := ctx.FormFile("avatar")
	if err != nil {
		return serverutils.BadRequest("No image file provided")
	}
	if header.Size > maxAvatarSize {
		return serverutils.BadRequest("File too large (max 5MB)")
	}
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return serverutils.BadRequest("Only image files are allowed")
	}

	file, err := header.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	profile, err := c.userService.UploadAvatar(ctx.Context(), user.Id, data, contentType)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.UploadAvatarResponse{
		Message:   "Avatar uploaded successfully",
		User:      *profile,
		AvatarUrl: derefString(profile.Avatar),
	})
}

func (c *userController) UpdatePassword(ctx *fiber.Ctx) error {
	user := serverutils.CurrentUser(ctx)

	var req dto.UpdatePasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.userService.UpdatePassword(ctx.Context(), user.Id, &req); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"message": "Password updated successfully"})
}

func (c *userController) ListNotes(ctx *fiber.Ctx) error {
	user := serverutils.CurrentUser(ctx)

	notes, err := c.noteService.ListByAuthor(ctx.Context(), user.Id)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.NotesEnvelope{Message: "User notes retrieved successfully", Notes: notes})
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

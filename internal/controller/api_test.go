package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"notely-be/internal/dto"
	"notely-be/internal/pkg/serverutils"
	"notely-be/internal/pkg/token"
	"notely-be/internal/repository/memory"
	"notely-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fakeAvatars struct{ removed []string }

func (f *fakeAvatars) Upload(ctx context.Context, ownerId uuid.UUID, data []byte, contentType string) (string, error) {
	return fmt.Sprintf("http://media.test/avatars/%s", ownerId), nil
}

func (f *fakeAvatars) Remove(ctx context.Context, objectURL string) error {
	f.removed = append(f.removed, objectURL)
	return nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	factory := memory.NewRepositoryFactory(memory.NewStore())
	tokens := token.NewManager("test-secret")

	authService := service.NewAuthService(factory, tokens)
	noteService := service.NewNoteService(factory)
	userService := service.NewUserService(factory, &fakeAvatars{}, nopLogger{})

	authMiddleware := serverutils.NewAuthMiddleware(tokens, factory)

	app := fiber.New(fiber.Config{BodyLimit: 10 * 1024 * 1024})
	app.Use(serverutils.ErrorHandlerMiddleware(nopLogger{}))

	api := app.Group("/api")
	NewAuthController(authService).RegisterRoutes(api)
	NewNoteController(noteService, authMiddleware).RegisterRoutes(api)
	NewUserController(userService, noteService, authMiddleware).RegisterRoutes(api)

	app.Use(func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Route not found"})
	})
	return app
}

func request(t *testing.T, app *fiber.App, method, path, bearer string, payload interface{}) (int, []byte) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func registerUser(t *testing.T, app *fiber.App, username string) (string, dto.UserDTO) {
	t.Helper()
	status, raw := request(t, app, "POST", "/api/auth/register", "", dto.RegisterRequest{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	})
	require.Equal(t, fiber.StatusCreated, status, string(raw))

	var res dto.AuthResponse
	require.NoError(t, json.Unmarshal(raw, &res))
	return res.Token, res.User
}

func TestNoteLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)
	bearer, _ := registerUser(t, app, "ada")

	// Create
	status, raw := request(t, app, "POST", "/api/notes", bearer, dto.CreateNoteRequest{
		Title:    "Meeting notes",
		Synopsis: "A synopsis long enough to pass",
		Content:  "Content with more than ten characters",
	})
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	var created dto.NoteEnvelope
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, "Note created successfully", created.Message)
	noteId := created.Note.Id

	// Listed while active
	status, raw = request(t, app, "GET", "/api/notes", bearer, nil)
	require.Equal(t, fiber.StatusOK, status)
	var listed dto.NotesEnvelope
	require.NoError(t, json.Unmarshal(raw, &listed))
	require.Len(t, listed.Notes, 1)
	require.NotNil(t, listed.Notes[0].Author)
	assert.Equal(t, "ada", listed.Notes[0].Author.Username)

	// Soft delete
	status, _ = request(t, app, "DELETE", "/api/notes/"+noteId.String(), bearer, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, raw = request(t, app, "GET", "/api/notes/"+noteId.String(), bearer, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, string(raw), "Note has been deleted")

	// Trash shows it, restore brings it back
	status, raw = request(t, app, "GET", "/api/notes/trash", bearer, nil)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(raw, &listed))
	require.Len(t, listed.Notes, 1)

	status, _ = request(t, app, "PATCH", "/api/notes/restore/"+noteId.String(), bearer, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, _ = request(t, app, "GET", "/api/notes/"+noteId.String(), bearer, nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestEntriesAliasServesSameHandlers(t *testing.T) {
	app := newTestApp(t)
	bearer, _ := registerUser(t, app, "ada")

	status, raw := request(t, app, "POST", "/api/entries", bearer, dto.CreateNoteRequest{
		Title:    "Via the alias",
		Synopsis: "A synopsis long enough to pass",
		Content:  "Content with more than ten characters",
	})
	require.Equal(t, fiber.StatusCreated, status, string(raw))

	status, raw = request(t, app, "GET", "/api/notes", bearer, nil)
	require.Equal(t, fiber.StatusOK, status)
	var listed dto.NotesEnvelope
	require.NoError(t, json.Unmarshal(raw, &listed))
	require.Len(t, listed.Notes, 1)
	assert.Equal(t, "Via the alias", listed.Notes[0].Title)
}

func TestNoteRoutesRequireAuth(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/notes", "/api/notes/trash", "/api/user/profile"} {
		status, raw := request(t, app, "GET", path, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, status, path)
		assert.Contains(t, string(raw), "No token provided")
	}
}

func TestInvalidNoteIdIsBadRequest(t *testing.T) {
	app := newTestApp(t)
	bearer, _ := registerUser(t, app, "ada")

	status, raw := request(t, app, "GET", "/api/notes/not-a-uuid", bearer, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(raw), "Invalid note ID")
}

func TestProfileAndPasswordFlow(t *testing.T) {
	app := newTestApp(t)
	bearer, user := registerUser(t, app, "ada")

	status, raw := request(t, app, "GET", "/api/user/profile", bearer, nil)
	require.Equal(t, fiber.StatusOK, status)
	var profile dto.ProfileResponse
	require.NoError(t, json.Unmarshal(raw, &profile))
	assert.Equal(t, user.Id, profile.User.Id)

	firstName := "Augusta"
	status, raw = request(t, app, "PUT", "/api/user/profile", bearer, dto.UpdateProfileRequest{
		FirstName: &firstName,
	})
	require.Equal(t, fiber.StatusOK, status, string(raw))
	require.NoError(t, json.Unmarshal(raw, &profile))
	assert.Equal(t, "Augusta", profile.User.FirstName)

	// Password change invalidates the old credential on the next login.
	status, raw = request(t, app, "PUT", "/api/user/password", bearer, dto.UpdatePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "changed456",
	})
	require.Equal(t, fiber.StatusOK, status, string(raw))

	status, _ = request(t, app, "POST", "/api/auth/login", "", dto.LoginRequest{
		EmailOrUsername: "ada",
		Password:        "password123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = request(t, app, "POST", "/api/auth/login", "", dto.LoginRequest{
		EmailOrUsername: "ada",
		Password:        "changed456",
	})
	assert.Equal(t, fiber.StatusOK, status)
}

func TestAvatarUploadValidation(t *testing.T) {
	app := newTestApp(t)
	bearer, _ := registerUser(t, app, "ada")

	// Missing file
	req := httptest.NewRequest("POST", "/api/user/avatar", nil)
	req.Header.Set("Authorization", "Bearer "+bearer)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Wrong content type
	status, raw := uploadAvatar(t, app, bearer, "notes.txt", "text/plain", []byte("hello"))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(raw), "Only image files are allowed")

	// Valid image
	status, raw = uploadAvatar(t, app, bearer, "me.png", "image/png", []byte("png-bytes"))
	require.Equal(t, fiber.StatusOK, status, string(raw))
	var res dto.UploadAvatarResponse
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.NotEmpty(t, res.AvatarUrl)
	require.NotNil(t, res.User.Avatar)
}

func uploadAvatar(t *testing.T, app *fiber.App, bearer, filename, contentType string, data []byte) (int, []byte) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="avatar"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/user/avatar", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+bearer)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

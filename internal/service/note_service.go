package service

import (
	"context"
	"strings"
	"time"

	"notely-be/internal/dto"
	"notely-be/internal/entity"
	"notely-be/internal/pkg/serverutils"
	"notely-be/internal/repository/specification"
	"notely-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INoteService interface {
	List(ctx context.Context, search string) ([]dto.NoteResponse, error)
	ListByAuthor(ctx context.Context, authorId uuid.UUID) ([]dto.NoteResponse, error)
	ListTrash(ctx context.Context, actorId uuid.UUID) ([]dto.NoteResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error)
	Create(ctx context.Context, authorId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, id, actorId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	SoftDelete(ctx context.Context, id, actorId uuid.UUID) error
	Restore(ctx context.Context, id, actorId uuid.UUID) (*dto.NoteResponse, error)
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory) INoteService {
	return &noteService{
		uowFactory: uowFactory,
	}
}

func (s *noteService) List(ctx context.Context, search string) ([]dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.NotDeleted{}}
	if search != "" {
		specs = append(specs, specification.MatchingSearch{Term: search})
	}
	specs = append(specs, specification.OrderBy{Field: "entries.created_at", Desc: true})

	entries, err := uow.EntryRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return toNoteResponses(entries), nil
}

func (s *noteService) ListByAuthor(ctx context.Context, authorId uuid.UUID) ([]dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.EntryRepository().FindAll(ctx,
		specification.NotDeleted{},
		specification.AuthoredBy{UserID: authorId},
		specification.OrderBy{Field: "entries.created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toNoteResponses(entries), nil
}

// ListTrash is private per-user, unlike the shared active listing.
func (s *noteService) ListTrash(ctx context.Context, actorId uuid.UUID) ([]dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.EntryRepository().FindAll(ctx,
		specification.Deleted{},
		specification.AuthoredBy{UserID: actorId},
		specification.OrderBy{Field: "entries.updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toNoteResponses(entries), nil
}

func (s *noteService) Get(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.EntryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, serverutils.NotFound("Note not found")
	}
	// A trashed note is invisible here, same as an absent one.
	if entry.IsDeleted {
		return nil, serverutils.NotFound("Note has been deleted")
	}

	res := toNoteResponse(entry)
	return &res, nil
}

func (s *noteService) Create(ctx context.Context, authorId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	title := strings.TrimSpace(req.Title)
	synopsis := strings.TrimSpace(req.Synopsis)
	content := strings.TrimSpace(req.Content)

	// Checked in order: title, synopsis, content.
	if title == "" {
		return nil, serverutils.BadRequest("Title is required")
	}
	if len([]rune(title)) < 3 || len([]rune(title)) > 100 {
		return nil, serverutils.BadRequest("Title must be between 3 and 100 characters")
	}
	if synopsis == "" {
		return nil, serverutils.BadRequest("Synopsis is required")
	}
	if len([]rune(synopsis)) < 10 || len([]rune(synopsis)) > 200 {
		return nil, serverutils.BadRequest("Synopsis must be between 10 and 200 characters")
	}
	if content == "" {
		return nil, serverutils.BadRequest("Content is required")
	}
	if len([]rune(content)) < 10 {
		return nil, serverutils.BadRequest("Content must be at least 10 characters long")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	entry := &entity.Entry{
		Id:        uuid.New(),
		Title:     title,
		Synopsis:  synopsis,
		Content:   content,
		AuthorId:  authorId,
		IsDeleted: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uow.EntryRepository().Create(ctx, entry); err != nil {
		return nil, err
	}

	created, err := uow.EntryRepository().FindOne(ctx, specification.ByID{ID: entry.Id})
	if err != nil {
		return nil, err
	}
	res := toNoteResponse(created)
	return &res, nil
}

// Update only requires fields to be non-empty after trimming; unlike
// Create it enforces no length bounds. The asymmetry is deliberate and
// matches the public API contract.
func (s *noteService) Update(ctx context.Context, id, actorId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.EntryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if entry == nil || entry.IsDeleted {
		return nil, serverutils.NotFound("Note not found or has been deleted")
	}
	if entry.AuthorId != actorId {
		return nil, serverutils.Forbidden("You do not have permission to update this note")
	}

	title := strings.TrimSpace(req.Title)
	synopsis := strings.TrimSpace(req.Synopsis)
	content := strings.TrimSpace(req.Content)
	if title == "" {
		return nil, serverutils.BadRequest("Title is required")
	}
	if synopsis == "" {
		return nil, serverutils.BadRequest("Synopsis is required")
	}
	if content == "" {
		return nil, serverutils.BadRequest("Content is required")
	}

	entry.Title = title
	entry.Synopsis = synopsis
	entry.Content = content
	entry.UpdatedAt = time.Now()

	if err := uow.EntryRepository().Update(ctx, entry); err != nil {
		return nil, err
	}
	res := toNoteResponse(entry)
	return &res, nil
}

func (s *noteService) SoftDelete(ctx context.Context, id, actorId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.EntryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if entry == nil || entry.IsDeleted {
		return serverutils.NotFound("Note not found or has been deleted")
	}
	if entry.AuthorId != actorId {
		return serverutils.Forbidden("You do not have permission to delete this note")
	}

	entry.IsDeleted = true
	entry.UpdatedAt = time.Now()
	return uow.EntryRepository().Update(ctx, entry)
}

func (s *noteService) Restore(ctx context.Context, id, actorId uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.EntryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, serverutils.NotFound("Note not found")
	}
	if entry.AuthorId != actorId {
		return nil, serverutils.Forbidden("You do not have permission to restore this note")
	}
	if !entry.IsDeleted {
		return nil, serverutils.BadRequest("Note is not deleted")
	}

	entry.IsDeleted = false
	entry.UpdatedAt = time.Now()
	if err := uow.EntryRepository().Update(ctx, entry); err != nil {
		return nil, err
	}
	res := toNoteResponse(entry)
	return &res, nil
}

package mapper

import (
	"notely-be/internal/entity"
	"notely-be/internal/model"
)

type EntryMapper struct {
	users *UserMapper
}

func NewEntryMapper() *EntryMapper {
	return &EntryMapper{users: NewUserMapper()}
}

func (m *EntryMapper) ToEntity(e *model.Entry) *entity.Entry {
	if e == nil {
		return nil
	}
	return &entity.Entry{
		Id:        e.Id,
		Title:     e.Title,
		Synopsis:  e.Synopsis,
		Content:   e.Content,
		AuthorId:  e.AuthorId,
		IsDeleted: e.IsDeleted,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		Author:    m.users.ToEntity(e.Author),
	}
}

func (m *EntryMapper) ToModel(e *entity.Entry) *model.Entry {
	if e == nil {
		return nil
	}
	// Author is read-only state; it is never written back through the
	// entries table.
	return &model.Entry{
		Id:        e.Id,
		Title:     e.Title,
		Synopsis:  e.Synopsis,
		Content:   e.Content,
		AuthorId:  e.AuthorId,
		IsDeleted: e.IsDeleted,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *EntryMapper) ToEntities(entries []*model.Entry) []*entity.Entry {
	entities := make([]*entity.Entry, len(entries))
	for i, e := range entries {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

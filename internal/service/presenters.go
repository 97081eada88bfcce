package service

import (
	"notely-be/internal/dto"
	"notely-be/internal/entity"
)

func toUserDTO(u *entity.User) dto.UserDTO {
	return dto.UserDTO{
		Id:                u.Id,
		Username:          u.Username,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Avatar:            u.Avatar,
		DateJoined:        u.DateJoined,
		LastProfileUpdate: u.LastProfileUpdate,
	}
}

func toNoteResponse(e *entity.Entry) dto.NoteResponse {
	res := dto.NoteResponse{
		Id:        e.Id,
		Title:     e.Title,
		Synopsis:  e.Synopsis,
		Content:   e.Content,
		AuthorId:  e.AuthorId,
		IsDeleted: e.IsDeleted,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.Author != nil {
		res.Author = &dto.AuthorDTO{
			Id:        e.Author.Id,
			Username:  e.Author.Username,
			FirstName: e.Author.FirstName,
			LastName:  e.Author.LastName,
		}
	}
	return res
}

func toNoteResponses(entries []*entity.Entry) []dto.NoteResponse {
	notes := make([]dto.NoteResponse, len(entries))
	for i, e := range entries {
		notes[i] = toNoteResponse(e)
	}
	return notes
}

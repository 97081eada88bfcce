package mapper

import (
	"notely-be/internal/entity"
	"notely-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:                u.Id,
		Username:          u.Username,
		Email:             u.Email,
		PasswordHash:      u.Password,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Avatar:            u.Avatar,
		DateJoined:        u.DateJoined,
		LastProfileUpdate: u.LastProfileUpdate,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:                u.Id,
		Username:          u.Username,
		Email:             u.Email,
		Password:          u.PasswordHash,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Avatar:            u.Avatar,
		DateJoined:        u.DateJoined,
		LastProfileUpdate: u.LastProfileUpdate,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

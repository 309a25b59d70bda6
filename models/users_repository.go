package models

import (
	"errors"
	"slices"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UsersRepository lists users in load order.
type UsersRepository struct {
	users []User
}

func NewUsersRepository(dataset Dataset) *UsersRepository {
	return &UsersRepository{
		users: slices.Clone(dataset.Users),
	}
}

func (r *UsersRepository) GetAllUsers() []User {
	return slices.Clone(r.users)
}

func (r *UsersRepository) GetByID(id uint) (*User, error) {
	for _, u := range r.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

package user

import (
	"time"
)

type User struct {
	ID             string    `json:"id"` // UUID
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CreateUserParams struct {
	Email          string
	HashedPassword string
}

package model

import "time"

// User is an account profile. Email and Number are unique. Credential
// handling (password hashing, history) belongs to the auth subsystem
// and is not part of this model.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Number       string    `json:"number"`
	Address      string    `json:"address"`
	Role         string    `json:"role"`
	ProfileImage string    `json:"profileImage"`
	Status       bool      `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type UserPatch struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Number       *string `json:"number"`
	Address      *string `json:"address"`
	Role         *string `json:"role"`
	ProfileImage *string `json:"profileImage"`
	Status       *bool   `json:"status"`
}

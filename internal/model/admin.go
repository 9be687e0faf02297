package model

import "time"

// Admin represents a course-selling admin account. Admins are created once
// at signup and never updated or deleted afterwards.
type Admin struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// SignupRequest is the payload for admin registration.
type SignupRequest struct {
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,min=4,max=15"`
	FirstName string `json:"firstName" binding:"required,min=3,max=15"`
	LastName  string `json:"lastName" binding:"required,min=3,max=15"`
}

// SigninRequest is the payload for admin authentication.
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=5,max=128"`
}

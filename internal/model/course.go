package model

import (
	"time"

	"github.com/google/uuid"
)

// Course represents a sellable course owned by exactly one admin.
type Course struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Price       float64   `json:"price"`
	CreatorID   int       `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCourseRequest is the payload for creating a new course.
type CreateCourseRequest struct {
	Title       string  `json:"title" binding:"required,min=3,max=255"`
	Description string  `json:"description" binding:"required,min=10"`
	ImageURL    string  `json:"imageUrl" binding:"required,url"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

// UpdateCourseRequest is the payload for partially updating a course.
// Optional fields are pointers so that a field is applied only when it is
// present in the request body, never based on whether its value is truthy.
type UpdateCourseRequest struct {
	CourseID    string   `json:"courseId" binding:"required,min=5"`
	Title       *string  `json:"title" binding:"omitempty,min=3,max=255"`
	Description *string  `json:"description" binding:"omitempty,min=10"`
	ImageURL    *string  `json:"imageUrl" binding:"omitempty,url"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
}

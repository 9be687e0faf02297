package repository

import (
	"context"

	"github.com/coursebay/coursebay-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CourseRepository handles course data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// Create inserts a new course.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO courses (title, description, image_url, price, creator_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		c.Title, c.Description, c.ImageURL, c.Price, c.CreatorID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// GetByIDAndCreator retrieves a course constrained by both its ID and the
// creator. A course owned by someone else is indistinguishable from one
// that does not exist (pgx.ErrNoRows either way).
func (r *CourseRepository) GetByIDAndCreator(ctx context.Context, id uuid.UUID, creatorID int) (*model.Course, error) {
	c := &model.Course{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, description, image_url, price, creator_id, created_at, updated_at
		 FROM courses WHERE id = $1 AND creator_id = $2`, id, creatorID,
	).Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL, &c.Price, &c.CreatorID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Update persists the full merged record, still constrained by creator.
func (r *CourseRepository) Update(ctx context.Context, c *model.Course) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE courses
		 SET title = $1, description = $2, image_url = $3, price = $4, updated_at = NOW()
		 WHERE id = $5 AND creator_id = $6`,
		c.Title, c.Description, c.ImageURL, c.Price, c.ID, c.CreatorID,
	)
	return err
}

// ListByCreator returns all courses created by the given admin.
func (r *CourseRepository) ListByCreator(ctx context.Context, creatorID int) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, image_url, price, creator_id, created_at, updated_at
		 FROM courses WHERE creator_id = $1 ORDER BY created_at ASC`, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL, &c.Price,
			&c.CreatorID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

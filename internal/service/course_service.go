package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coursebay/coursebay-backend/internal/config"
	"github.com/coursebay/coursebay-backend/internal/model"
	"github.com/coursebay/coursebay-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ErrCourseNotFound covers both a missing course and a course owned by a
// different admin. Callers must not be able to tell the two apart.
var ErrCourseNotFound = errors.New("course not found")

// CourseService handles course creation, ownership-checked updates and
// per-admin listing with a Redis read-through cache.
type CourseService struct {
	courseRepo *repository.CourseRepository
	rdb        *redis.Client
	cfg        *config.Config
	log        zerolog.Logger
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo *repository.CourseRepository, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		rdb:        rdb,
		cfg:        cfg,
		log:        log.With().Str("component", "course_service").Logger(),
	}
}

// Create stores a new course owned by creatorID.
func (s *CourseService) Create(ctx context.Context, course *model.Course) error {
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return err
	}
	s.invalidateListCache(ctx, course.CreatorID)
	return nil
}

// Update applies a partial update to a course owned by adminID. The lookup
// is constrained by (id, creator_id) so it authorizes and retrieves in one
// step; a foreign or absent course returns ErrCourseNotFound.
func (s *CourseService) Update(ctx context.Context, adminID int, courseID uuid.UUID, req *model.UpdateCourseRequest) (*model.Course, error) {
	existing, err := s.courseRepo.GetByIDAndCreator(ctx, courseID, adminID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("load course: %w", err)
	}

	mergeCourseUpdate(existing, req)

	if err := s.courseRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}
	s.invalidateListCache(ctx, adminID)
	return existing, nil
}

// ListByCreator returns all courses owned by adminID, served from Redis
// when a fresh copy exists. Cache failures degrade to the database query.
func (s *CourseService) ListByCreator(ctx context.Context, adminID int) ([]model.Course, error) {
	key := config.CacheKey.AdminCourseListKey(adminID)

	cached, err := s.rdb.Get(ctx, key).Result()
	if err == nil {
		var courses []model.Course
		if err := json.Unmarshal([]byte(cached), &courses); err == nil {
			return courses, nil
		}
		// Corrupt entry: drop it and fall through to the database.
		s.rdb.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Int("admin_id", adminID).Msg("course list cache read failed")
	}

	courses, err := s.courseRepo.ListByCreator(ctx, adminID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(courses); err == nil {
		if err := s.rdb.Set(ctx, key, payload, s.cfg.CourseCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Int("admin_id", adminID).Msg("course list cache write failed")
		}
	}

	return courses, nil
}

// mergeCourseUpdate overwrites each field of existing that is present in
// req and leaves omitted fields untouched. Presence is what matters, not
// truthiness: a provided value always wins, whatever it is.
func mergeCourseUpdate(existing *model.Course, req *model.UpdateCourseRequest) {
	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.ImageURL != nil {
		existing.ImageURL = *req.ImageURL
	}
	if req.Price != nil {
		existing.Price = *req.Price
	}
}

func (s *CourseService) invalidateListCache(ctx context.Context, adminID int) {
	key := config.CacheKey.AdminCourseListKey(adminID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.log.Warn().Err(err).Int("admin_id", adminID).Msg("course list cache invalidation failed")
	}
}

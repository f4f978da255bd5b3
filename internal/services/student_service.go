package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"kantinku/internal/common"
	"kantinku/internal/models"
	"kantinku/internal/repositories"

	"github.com/google/uuid"
)

// StudentServiceInterface covers the student profile operations: a student
// maintaining their own profile, and the administrative listing used by
// vendor accounts.
type StudentServiceInterface interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Student, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	List(ctx context.Context, limit, offset int) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id uuid.UUID) error
	UploadPhoto(ctx context.Context, studentID uuid.UUID, filename, contentType string, reader io.Reader, size int64) (string, error)
}

type studentService struct {
	studentRepo repositories.StudentRepository
	storage     MinioService
}

func NewStudentService(studentRepo repositories.StudentRepository, storage MinioService) StudentServiceInterface {
	return &studentService{studentRepo: studentRepo, storage: storage}
}

func (s *studentService) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Student, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrNotFound
	}
	return student, nil
}

func (s *studentService) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrNotFound
	}
	return student, nil
}

func (s *studentService) List(ctx context.Context, limit, offset int) ([]*models.Student, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.studentRepo.List(ctx, limit, offset)
}

func (s *studentService) Update(ctx context.Context, student *models.Student) error {
	if err := common.ValidateRequiredString(student.Name, "name"); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	existing, err := s.studentRepo.GetByID(ctx, student.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	student.Name = strings.TrimSpace(student.Name)
	return s.studentRepo.Update(ctx, student)
}

func (s *studentService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.studentRepo.Delete(ctx, id)
}

// UploadPhoto stores a profile photo in object storage, records the object
// name on the profile, and returns a presigned view URL.
func (s *studentService) UploadPhoto(ctx context.Context, studentID uuid.UUID, filename, contentType string, reader io.Reader, size int64) (string, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return "", err
	}
	if student == nil {
		return "", ErrNotFound
	}

	objectName := fmt.Sprintf("%s/%s", studentID, filename)
	if err := s.storage.Upload(ctx, BucketUserPhotos, objectName, contentType, reader, size); err != nil {
		return "", err
	}

	student.Photo = &objectName
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, BucketUserPhotos, objectName, 24*time.Hour)
}

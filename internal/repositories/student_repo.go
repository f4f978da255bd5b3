package repositories

import (
	"context"
	"errors"

	"kantinku/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Student, error)
	List(ctx context.Context, limit, offset int) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type studentRepo struct {
	db Database
}

func NewStudentRepo(db Database) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (id, user_id, name, address, phone, photo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, student.ID, student.UserID, student.Name, student.Address, student.Phone, student.Photo)
	return err
}

func (r *studentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	student := &models.Student{}
	query := `
		SELECT id, user_id, name, address, phone, photo, created_at, updated_at
		FROM students
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&student.ID, &student.UserID, &student.Name, &student.Address, &student.Phone, &student.Photo, &student.CreatedAt, &student.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return student, nil
}

func (r *studentRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Student, error) {
	student := &models.Student{}
	query := `
		SELECT id, user_id, name, address, phone, photo, created_at, updated_at
		FROM students
		WHERE user_id = $1
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(&student.ID, &student.UserID, &student.Name, &student.Address, &student.Phone, &student.Photo, &student.CreatedAt, &student.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return student, nil
}

func (r *studentRepo) List(ctx context.Context, limit, offset int) ([]*models.Student, error) {
	query := `
		SELECT id, user_id, name, address, phone, photo, created_at, updated_at
		FROM students
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(&student.ID, &student.UserID, &student.Name, &student.Address, &student.Phone, &student.Photo, &student.CreatedAt, &student.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

func (r *studentRepo) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, address = $2, phone = $3, photo = $4, updated_at = NOW()
		WHERE id = $5
	`
	_, err := r.db.Exec(ctx, query, student.Name, student.Address, student.Phone, student.Photo, student.ID)
	return err
}

// Delete removes a student profile together with its login account. Both
// rows go in one transaction so a failed user delete cannot orphan the
// profile.
func (r *studentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var userID uuid.UUID
	if err := tx.QueryRow(ctx, `SELECT user_id FROM students WHERE id = $1`, id).Scan(&userID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM students WHERE id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"projectassistant/backend/models"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUserExists         = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
)

type AssignmentPolicy int

const (
	// AssignmentDedupe keeps one row per (user, exercise type) across profile saves.
	AssignmentDedupe AssignmentPolicy = iota
	// AssignmentAppend inserts a fresh batch on every profile save.
	AssignmentAppend
)

const DefaultCacheTTL = 7 * 24 * time.Hour

// Store owns every persisted record. Each method is one logical operation with no
// transaction spanning calls.
type Store struct {
	db       *gorm.DB
	now      func() time.Time
	cacheTTL time.Duration
	policy   AssignmentPolicy
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

func WithAssignmentPolicy(p AssignmentPolicy) Option {
	return func(s *Store) { s.policy = p }
}

func New(db *gorm.DB, opts ...Option) *Store {
	s := &Store{
		db:       db,
		now:      time.Now,
		cacheTTL: DefaultCacheTTL,
		policy:   AssignmentDedupe,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Migrate creates the schema and seeds the default portfolio templates.
// Safe to run on every start.
func (s *Store) Migrate(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	err := db.AutoMigrate(
		&models.User{},
		&models.StudentProfile{},
		&models.ProjectHistoryEntry{},
		&models.SkillExercise{},
		&models.AIExerciseCache{},
		&models.PortfolioRecord{},
		&models.PortfolioTemplate{},
		&models.VersionControlRequest{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, tmpl := range defaultTemplates() {
		tmpl := tmpl
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&tmpl).Error
		if err != nil {
			return fmt.Errorf("seed template %q: %w", tmpl.Name, err)
		}
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// requireUser returns ErrNotFound unless the user row exists. Rows keyed by
// user id are only written for real users.
func (s *Store) requireUser(ctx context.Context, userID uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

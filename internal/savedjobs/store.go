// Package savedjobs persists the per-user saved-jobs bookmark list. It is
// the only client-owned entity with no server counterpart; semantics are
// plain add/remove/toggle with last write wins.
package savedjobs

import (
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"
)

// GuestKey is the owner key used before login.
const GuestKey = "guest"

// SavedJob is one bookmark row. OwnerKey is the user id rendered as a
// string, or GuestKey.
type SavedJob struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	OwnerKey string `gorm:"index:idx_owner_job,unique;not null"`
	JobID    int64  `gorm:"index:idx_owner_job,unique;not null"`
}

// Store wraps the sqlite-backed bookmark table.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the bookmark database at path. An empty
// path falls back to SAVED_JOBS_DB, then to a file in the working
// directory.
func Open(path string) (*Store, error) {
	if path == "" {
		path = os.Getenv("SAVED_JOBS_DB")
	}
	if path == "" {
		path = "saved_jobs.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open saved-jobs database: %w", err)
	}
	if err := db.AutoMigrate(&SavedJob{}); err != nil {
		return nil, fmt.Errorf("failed to migrate saved-jobs table: %w", err)
	}
	return &Store{db: db}, nil
}

// OwnerKey namespaces bookmarks by user id, with a guest fallback.
func OwnerKey(userID int64) string {
	if userID == 0 {
		return GuestKey
	}
	return fmt.Sprintf("user:%d", userID)
}

// List returns every saved job id for the owner, newest first.
func (s *Store) List(owner string) ([]int64, error) {
	var rows []SavedJob
	if err := s.db.Where("owner_key = ?", owner).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list saved jobs: %w", err)
	}
	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.JobID)
	}
	return ids, nil
}

// IsSaved reports whether jobID is bookmarked by the owner.
func (s *Store) IsSaved(owner string, jobID int64) (bool, error) {
	var count int64
	if err := s.db.Model(&SavedJob{}).
		Where("owner_key = ? AND job_id = ?", owner, jobID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check saved job: %w", err)
	}
	return count > 0, nil
}

// Add bookmarks jobID. Adding an existing bookmark is a no-op.
func (s *Store) Add(owner string, jobID int64) error {
	saved, err := s.IsSaved(owner, jobID)
	if err != nil {
		return err
	}
	if saved {
		return nil
	}
	if err := s.db.Create(&SavedJob{OwnerKey: owner, JobID: jobID}).Error; err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}
	return nil
}

// Remove drops the bookmark. Removing a missing bookmark is a no-op.
func (s *Store) Remove(owner string, jobID int64) error {
	if err := s.db.Where("owner_key = ? AND job_id = ?", owner, jobID).
		Delete(&SavedJob{}).Error; err != nil {
		return fmt.Errorf("failed to remove saved job: %w", err)
	}
	return nil
}

// Toggle flips the bookmark and reports the new state.
func (s *Store) Toggle(owner string, jobID int64) (bool, error) {
	saved, err := s.IsSaved(owner, jobID)
	if err != nil {
		return false, err
	}
	if saved {
		return false, s.Remove(owner, jobID)
	}
	return true, s.Add(owner, jobID)
}

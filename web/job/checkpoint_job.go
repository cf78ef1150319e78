// Package job contains the scheduled maintenance jobs run by the web server's
// cron instance.
package job

import (
	"jokes-web/database"
	"jokes-web/logger"

	"gorm.io/gorm"
)

// CheckpointJob flushes the sqlite WAL back into the main database file.
type CheckpointJob struct {
	db *gorm.DB
}

func NewCheckpointJob(db *gorm.DB) *CheckpointJob {
	return &CheckpointJob{db: db}
}

// Run implements cron.Job.
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(j.db); err != nil {
		logger.Warning("checkpoint job err:", err)
	}
}

package scheduler

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"property-analyst/internal/config"
	"property-analyst/internal/models"
	"property-analyst/internal/search"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Scheduler runs the nightly quick-search reindex job
type Scheduler struct {
	cron      *cron.Cron
	db        *gorm.DB
	quick     *search.QuickSearchClient
	config    *config.Config
	isRunning bool
}

// NewScheduler creates a new scheduler
func NewScheduler(db *gorm.DB, quick *search.QuickSearchClient, cfg *config.Config) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		db:     db,
		quick:  quick,
		config: cfg,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	if !s.config.Search.Meilisearch.DailyReindex {
		log.Println("Scheduler: Daily reindex is disabled in configuration")
		return nil
	}

	cronSpec := s.parseDailyRunTime(s.config.Search.Meilisearch.ReindexTime)

	_, err := s.cron.AddFunc(cronSpec, func() {
		log.Println("Scheduler: Starting nightly reindex...")
		if err := s.RunNow(); err != nil {
			log.Printf("Scheduler: Nightly reindex failed: %v", err)
		} else {
			log.Println("Scheduler: Nightly reindex completed successfully")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.isRunning = true
	log.Printf("Scheduler: Started with daily reindex at %s (cron: %s)",
		s.config.Search.Meilisearch.ReindexTime, cronSpec)

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	if s.isRunning {
		s.cron.Stop()
		s.isRunning = false
		log.Println("Scheduler: Stopped")
	}
}

// RunNow rebuilds the quick-search index from the property table
func (s *Scheduler) RunNow() error {
	var properties []models.Property
	if err := s.db.Find(&properties).Error; err != nil {
		return err
	}

	log.Printf("Scheduler: Reindexing %d properties", len(properties))
	return s.quick.IndexProperties(properties)
}

// parseDailyRunTime converts an HH:MM time to a cron spec, defaulting to
// 02:00 on malformed input.
func (s *Scheduler) parseDailyRunTime(t string) string {
	parts := strings.Split(t, ":")
	if len(parts) == 2 {
		hour, errH := strconv.Atoi(parts[0])
		minute, errM := strconv.Atoi(parts[1])
		if errH == nil && errM == nil && hour >= 0 && hour < 24 && minute >= 0 && minute < 60 {
			return fmt.Sprintf("%d %d * * *", minute, hour)
		}
	}
	return "0 2 * * *"
}

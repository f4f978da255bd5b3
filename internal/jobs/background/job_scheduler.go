package background

import (
	"context"
	"log"
	"time"

	"kantinku/internal/analytics"
	"kantinku/internal/caching"
	"kantinku/internal/repositories"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler runs the periodic maintenance jobs: warming the current-month
// sales report for every stall and checking cache health.
type JobScheduler struct {
	scheduler    gocron.Scheduler
	analyticsSvc analytics.Service
	cacheSvc     caching.CacheService
	vendorRepo   repositories.VendorRepository
}

func NewJobScheduler(analyticsSvc analytics.Service, cacheSvc caching.CacheService, vendorRepo repositories.VendorRepository) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler:    scheduler,
		analyticsSvc: analyticsSvc,
		cacheSvc:     cacheSvc,
		vendorRepo:   vendorRepo,
	}
	if err := js.registerJobs(); err != nil {
		return nil, err
	}
	return js, nil
}

func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() error {
	_, err := js.scheduler.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(js.refreshMonthlyReports, context.Background()),
		gocron.WithName("monthly-report-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	_, err = js.scheduler.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(js.checkCacheHealth, context.Background()),
		gocron.WithName("cache-health"),
	)
	return err
}

// refreshMonthlyReports recomputes the running month's report for every
// vendor so the report endpoint usually serves from cache.
func (js *JobScheduler) refreshMonthlyReports(ctx context.Context) {
	vendors, err := js.vendorRepo.List(ctx)
	if err != nil {
		log.Printf("report refresh: failed to list vendors: %v", err)
		return
	}

	now := time.Now()
	for _, vendor := range vendors {
		if _, err := js.analyticsSvc.RefreshVendorMonthlyReport(ctx, vendor.ID, int(now.Month()), now.Year()); err != nil {
			log.Printf("report refresh: vendor %s: %v", vendor.ID, err)
		}
	}
	log.Printf("report refresh: updated %d vendors", len(vendors))
}

func (js *JobScheduler) checkCacheHealth(ctx context.Context) {
	if err := js.cacheSvc.Ping(ctx); err != nil {
		log.Printf("cache health check failed: %v", err)
	}
}

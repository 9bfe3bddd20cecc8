package core

import (
	"log/slog"
	"time"

	"odooclient/entity"
	"odooclient/internal/lib/sl"
)

// Odoo is the RPC session to the remote instance.
type Odoo interface {
	Authenticate() (int64, error)
	Version() (string, error)
	Create(model string, values map[string]interface{}) (int64, error)
	SearchRead(model string, domain []interface{}, fields []string, limit int) ([]map[string]interface{}, error)
	Invoke(model, method string, ids ...int64) error
}

// Repository is the optional SQL ledger of created records.
type Repository interface {
	SaveRecord(record entity.SeedRecord) error
	RecordsByRun(runID string) ([]entity.SeedRecord, error)
	CountByModel() (map[string]int64, error)
}

// MongoRepository is the optional store for full run reports.
type MongoRepository interface {
	SaveReport(report *entity.SeedReport) error
	LastReport() (*entity.SeedReport, error)
	DeleteExpired() (int64, error)
}

// Notifier receives end-of-run summaries, typically the Telegram bot.
type Notifier interface {
	SendMessage(msg string)
}

type Core struct {
	odoo      Odoo
	repo      Repository
	mongoRepo MongoRepository
	notifier  Notifier
	extra     *entity.Dataset
	log       *slog.Logger
	stopCh    chan struct{}
}

func New(log *slog.Logger) *Core {
	return &Core{
		log:    log.With(sl.Module("core")),
		stopCh: make(chan struct{}),
	}
}

func (c *Core) Stop() {
	close(c.stopCh)
}

func (c *Core) SetOdoo(odoo Odoo) {
	c.odoo = odoo
}

func (c *Core) SetRepository(repo Repository) {
	c.repo = repo
}

func (c *Core) SetMongoRepository(mongoRepo MongoRepository) {
	c.mongoRepo = mongoRepo
}

func (c *Core) SetNotifier(notifier Notifier) {
	c.notifier = notifier
}

// SetExtraDataset merges a user-supplied dataset into the built-in
// sample records for the next run.
func (c *Core) SetExtraDataset(ds *entity.Dataset) {
	c.extra = ds
}

// StartCleanup runs the report retention sweep every 12 hours, once
// immediately at startup. Only meaningful in server mode.
func (c *Core) StartCleanup() {
	go func() {
		ticker := time.NewTicker(12 * time.Hour)
		defer ticker.Stop()

		c.cleanupExpiredReports()

		for {
			select {
			case <-c.stopCh:
				return
			case <-ticker.C:
				c.cleanupExpiredReports()
			}
		}
	}()
}

func (c *Core) cleanupExpiredReports() {
	if c.mongoRepo == nil {
		return
	}

	_, err := c.mongoRepo.DeleteExpired()
	if err != nil {
		c.log.With(sl.Err(err)).Warn("failed to cleanup expired seed reports")
	}
}

// recordCreated appends to the ledger, best effort.
func (c *Core) recordCreated(runID, model string, id int64, label string) {
	if c.repo == nil {
		return
	}
	err := c.repo.SaveRecord(entity.SeedRecord{
		RunID:   runID,
		Model:   model,
		Remote:  id,
		Label:   label,
		Created: time.Now(),
	})
	if err != nil {
		c.log.With(sl.Err(err)).Warn("failed to save ledger record")
	}
}

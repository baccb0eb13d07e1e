package clause

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Janitor periodically evicts idle indexed documents from a Store so the
// in-memory corpus does not grow without bound across uploads.
type Janitor struct {
	store *Store
	ttl   time.Duration
	cron  *cron.Cron
}

func NewJanitor(store *Store, ttl time.Duration) *Janitor {
	return &Janitor{
		store: store,
		ttl:   ttl,
		cron:  cron.New(),
	}
}

// Start schedules the hourly eviction pass.
func (j *Janitor) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		if n := j.store.EvictIdle(j.ttl); n > 0 {
			log.Printf("[info] operation=clause_janitor evicted=%d ttl=%s", n, j.ttl)
		}
	})
	if err != nil {
		return err
	}
	j.cron.Start()
	return nil
}

// Stop halts the schedule. Safe to call before Start.
func (j *Janitor) Stop() {
	j.cron.Stop()
}

package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"big_studio/internal/domain/entities"
	"big_studio/internal/usecase/interfaces"
)

var ErrCalendarNotConnected = errors.New("calendar not connected")

// ICalendarUseCase maintains the derived calendar: one entry per non-deleted
// job that asked for a calendar event, plus whatever external entries the
// connected calendar contributed. Job-sourced entries are regenerated by
// Sync, never authored.

type ICalendarUseCase interface {
	ListEvents(ctx context.Context, ownerID string) ([]entities.CalendarEvent, error)
	Sync(ctx context.Context, ownerID string) ([]entities.CalendarEvent, error)
	Connect(ctx context.Context, ownerID string) (entities.AppSettings, error)
	Disconnect(ctx context.Context, ownerID string) (entities.AppSettings, error)
}

type CalendarUseCase struct {
	store interfaces.IBlobStore
	now   func() time.Time
}

var _ ICalendarUseCase = (*CalendarUseCase)(nil)

func NewCalendarUseCase(store interfaces.IBlobStore) *CalendarUseCase {
	return &CalendarUseCase{store: store, now: time.Now}
}

func (u *CalendarUseCase) ListEvents(ctx context.Context, ownerID string) ([]entities.CalendarEvent, error) {
	return loadCalendarEvents(ctx, u.store, ownerID)
}

// Sync rebuilds job-sourced events: adds entries for jobs flagged
// createCalendarEvent that have none, drops entries whose job no longer
// qualifies, and backfills calendarEventId on the affected jobs.
func (u *CalendarUseCase) Sync(ctx context.Context, ownerID string) ([]entities.CalendarEvent, error) {
	settings, err := loadSettings(ctx, u.store, ownerID)
	if err != nil {
		return nil, err
	}
	if !settings.GoogleCalendarConnected {
		return nil, ErrCalendarNotConnected
	}

	jobs, err := loadJobs(ctx, u.store, ownerID)
	if err != nil {
		return nil, err
	}
	events, err := loadCalendarEvents(ctx, u.store, ownerID)
	if err != nil {
		return nil, err
	}

	wantEvent := map[string]entities.Job{}
	for _, j := range jobs {
		if !j.IsDeleted && j.CreateCalendarEvent {
			wantEvent[j.ID] = j
		}
	}

	next := make([]entities.CalendarEvent, 0, len(events))
	haveEvent := map[string]bool{}
	for _, e := range events {
		if e.Source == entities.CalendarSourceBig {
			if _, ok := wantEvent[e.JobID]; !ok {
				continue
			}
			haveEvent[e.JobID] = true
		}
		next = append(next, e)
	}

	jobsDirty := false
	for i := range jobs {
		job := jobs[i]
		if _, ok := wantEvent[job.ID]; !ok || haveEvent[job.ID] {
			continue
		}
		eventID := entities.JobCalendarEventID(job.ID)
		next = append(next, entities.CalendarEvent{
			ID:     eventID,
			Title:  "Entrega: " + job.Name,
			Start:  job.Deadline,
			End:    job.Deadline,
			AllDay: true,
			Source: entities.CalendarSourceBig,
			JobID:  job.ID,
		})
		jobs[i].CalendarEventID = eventID
		jobsDirty = true
	}

	if err := saveCalendarEvents(ctx, u.store, ownerID, next); err != nil {
		return nil, err
	}
	if jobsDirty {
		if err := saveJobs(ctx, u.store, ownerID, jobs); err != nil {
			return nil, err
		}
	}

	settings.GoogleCalendarLastSync = entities.FormatISOTime(u.now())
	if err := saveSettings(ctx, u.store, ownerID, settings); err != nil {
		return nil, err
	}
	log.Printf("[calendar][usecase] sync done owner=%s events=%d", ownerID, len(next))
	return next, nil
}

func (u *CalendarUseCase) Connect(ctx context.Context, ownerID string) (entities.AppSettings, error) {
	settings, err := loadSettings(ctx, u.store, ownerID)
	if err != nil {
		return entities.AppSettings{}, err
	}
	settings.GoogleCalendarConnected = true
	settings.GoogleCalendarLastSync = entities.FormatISOTime(u.now())
	if err := saveSettings(ctx, u.store, ownerID, settings); err != nil {
		return entities.AppSettings{}, err
	}
	return settings, nil
}

// Disconnect clears the connection flag and all derived calendar state,
// including the event back-references on jobs.
func (u *CalendarUseCase) Disconnect(ctx context.Context, ownerID string) (entities.AppSettings, error) {
	settings, err := loadSettings(ctx, u.store, ownerID)
	if err != nil {
		return entities.AppSettings{}, err
	}
	settings.GoogleCalendarConnected = false
	settings.GoogleCalendarLastSync = ""
	if err := saveSettings(ctx, u.store, ownerID, settings); err != nil {
		return entities.AppSettings{}, err
	}

	// Derived events are worthless without the connection; drop the whole
	// blob. Delete is best-effort, a stale blob is rebuilt on the next sync.
	if err := u.store.Delete(ctx, ownerID, interfaces.BlobKeyCalendarEvents); err != nil {
		log.Printf("[calendar][usecase] delete events blob failed owner=%s err=%v", ownerID, err)
	}

	jobs, err := loadJobs(ctx, u.store, ownerID)
	if err != nil {
		return entities.AppSettings{}, err
	}
	dirty := false
	for i := range jobs {
		if jobs[i].CalendarEventID != "" {
			jobs[i].CalendarEventID = ""
			dirty = true
		}
	}
	if dirty {
		if err := saveJobs(ctx, u.store, ownerID, jobs); err != nil {
			return entities.AppSettings{}, err
		}
	}
	return settings, nil
}

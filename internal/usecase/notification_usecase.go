package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"big_studio/internal/domain/entities"
	"big_studio/internal/usecase/interfaces"
)

var ErrInvalidNotificationID = errors.New("invalid notification id")

const clientInactivityDays = 60

// INotificationUseCase recomputes derived notifications from the job and
// client collections and tracks the persisted read-id set.

type INotificationUseCase interface {
	List(ctx context.Context, ownerID string) ([]entities.Notification, error)
	MarkAsRead(ctx context.Context, ownerID, notificationID string) error
}

type NotificationUseCase struct {
	store interfaces.IBlobStore
	now   func() time.Time
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(store interfaces.IBlobStore) *NotificationUseCase {
	return &NotificationUseCase{store: store, now: time.Now}
}

func (u *NotificationUseCase) List(ctx context.Context, ownerID string) ([]entities.Notification, error) {
	jobs, err := loadJobs(ctx, u.store, ownerID)
	if err != nil {
		return nil, err
	}
	clients, err := loadClients(ctx, u.store, ownerID)
	if err != nil {
		return nil, err
	}

	readIDs, err := u.loadReadIDs(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return DeriveNotifications(jobs, clients, u.now(), readIDs), nil
}

func (u *NotificationUseCase) MarkAsRead(ctx context.Context, ownerID, notificationID string) error {
	notificationID = strings.TrimSpace(notificationID)
	if notificationID == "" {
		return ErrInvalidNotificationID
	}
	ids, err := u.loadReadIDs(ctx, ownerID)
	if err != nil {
		return err
	}
	if _, ok := ids[notificationID]; ok {
		return nil
	}
	list := make([]string, 0, len(ids)+1)
	for id := range ids {
		list = append(list, id)
	}
	list = append(list, notificationID)

	payload, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode read notifications: %w", err)
	}
	if err := u.store.Set(ctx, ownerID, interfaces.BlobKeyReadNotifications, payload); err != nil {
		return fmt.Errorf("save read notifications: %w", err)
	}
	return nil
}

func (u *NotificationUseCase) loadReadIDs(ctx context.Context, ownerID string) (map[string]struct{}, error) {
	raw, err := u.store.Get(ctx, ownerID, interfaces.BlobKeyReadNotifications)
	if err != nil {
		return nil, fmt.Errorf("load read notifications: %w", err)
	}
	ids := map[string]struct{}{}
	if len(raw) == 0 {
		return ids, nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		// A corrupt read-id blob only costs read state, never the list itself.
		log.Printf("[notification][usecase] corrupt read-id blob owner=%s err=%v", ownerID, err)
		return ids, nil
	}
	for _, id := range list {
		ids[id] = struct{}{}
	}
	return ids, nil
}

// DeriveNotifications is a pure function of (jobs, clients, now, read ids).
//
// Rules, in order:
//  1. overdue: non-deleted, non-paid job with deadline before today
//  2. deadline: else, deadline within the next two days
//  3. inactive client: client whose most recent non-deleted job is older
//     than 60 days
//
// A job yields at most one deadline-class notification; the client rule is
// independent. Records with unparseable dates are skipped, never fatal.
func DeriveNotifications(jobs []entities.Job, clients []entities.Client, now time.Time, readIDs map[string]struct{}) []entities.Notification {
	today := dayStart(now)
	out := []entities.Notification{}

	for _, job := range jobs {
		if job.IsDeleted || job.Status == entities.JobStatusPaid {
			continue
		}
		deadline, err := entities.ParseISOTime(job.Deadline)
		if err != nil {
			log.Printf("[notification][usecase] skipping job with malformed deadline job_id=%s deadline=%q err=%v", job.ID, job.Deadline, err)
			continue
		}
		diffDays := int(dayStart(deadline).Sub(today).Hours() / 24)

		if diffDays < 0 {
			out = append(out, entities.Notification{
				ID:       entities.OverdueNotificationID(job.ID),
				Type:     entities.NotificationTypeOverdue,
				Message:  fmt.Sprintf("O job %q está atrasado há %d dia(s).", job.Name, -diffDays),
				LinkTo:   "/jobs",
				EntityID: job.ID,
			})
		} else if diffDays <= 2 {
			var day string
			switch diffDays {
			case 0:
				day = "hoje"
			case 1:
				day = "amanhã"
			default:
				day = fmt.Sprintf("em %d dias", diffDays)
			}
			out = append(out, entities.Notification{
				ID:       entities.DeadlineNotificationID(job.ID),
				Type:     entities.NotificationTypeDeadline,
				Message:  fmt.Sprintf("O prazo do job %q é %s.", job.Name, day),
				LinkTo:   "/jobs",
				EntityID: job.ID,
			})
		}
	}

	cutoff := today.AddDate(0, 0, -clientInactivityDays)
	for _, client := range clients {
		var latest time.Time
		hasJob := false
		for _, job := range jobs {
			if job.IsDeleted || job.ClientID != client.ID {
				continue
			}
			createdAt, err := entities.ParseISOTime(job.CreatedAt)
			if err != nil {
				log.Printf("[notification][usecase] skipping job with malformed createdAt job_id=%s created_at=%q err=%v", job.ID, job.CreatedAt, err)
				continue
			}
			hasJob = true
			if createdAt.After(latest) {
				latest = createdAt
			}
		}
		if hasJob && latest.Before(cutoff) {
			out = append(out, entities.Notification{
				ID:       entities.ClientNotificationID(client.ID),
				Type:     entities.NotificationTypeClient,
				Message:  fmt.Sprintf("O cliente %q não tem novos jobs há mais de %d dias.", client.Name, clientInactivityDays),
				LinkTo:   "/clients/" + client.ID,
				EntityID: client.ID,
			})
		}
	}

	for i := range out {
		_, read := readIDs[out[i].ID]
		out[i].IsRead = read
	}
	return out
}

func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package entities

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Legacy blob shapes are migrated field-by-field on decode instead of being
// rejected: early versions of the data store wrote jobs with a single
// "cloudLink" string and drafts without a type. Each transform below is the
// explicit migration for one legacy shape.

type jobRecord struct {
	Job
	LegacyCloudLink string `json:"cloudLink,omitempty"`
}

// DecodeJobs decodes a persisted jobs collection, applying legacy-shape
// migrations per record.
func DecodeJobs(data []byte) ([]Job, error) {
	if len(data) == 0 {
		return []Job{}, nil
	}
	var records []jobRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	jobs := make([]Job, 0, len(records))
	for _, rec := range records {
		jobs = append(jobs, migrateJob(rec))
	}
	return jobs, nil
}

func migrateJob(rec jobRecord) Job {
	j := rec.Job
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	if j.Payments == nil {
		j.Payments = []Payment{}
	}
	if j.ObservationsLog == nil {
		j.ObservationsLog = []string{}
	}
	if j.CloudLinks == nil {
		j.CloudLinks = []string{}
		if rec.LegacyCloudLink != "" {
			j.CloudLinks = append(j.CloudLinks, rec.LegacyCloudLink)
		}
	}
	return j
}

// DecodeDrafts decodes a persisted drafts collection, applying legacy-shape
// migrations per record.
func DecodeDrafts(data []byte) ([]DraftNote, error) {
	if len(data) == 0 {
		return []DraftNote{}, nil
	}
	var drafts []DraftNote
	if err := json.Unmarshal(data, &drafts); err != nil {
		return nil, err
	}
	for i := range drafts {
		drafts[i] = migrateDraft(drafts[i])
	}
	return drafts, nil
}

func migrateDraft(d DraftNote) DraftNote {
	if d.Type == "" {
		d.Type = DraftTypeScript
	}
	if d.ScriptLines == nil {
		d.ScriptLines = []ScriptLine{}
		if d.Content != "" {
			d.ScriptLines = append(d.ScriptLines, ScriptLine{
				ID:          uuid.NewString(),
				Scene:       "1",
				Description: d.Content,
			})
		}
	}
	if d.Attachments == nil {
		d.Attachments = []Attachment{}
	}
	return d
}

package interfaces

import "context"

// IBlobStore abstracts the per-user keyed JSON document store.
//
// Semantics:
//   - Get returns (nil, nil) when the key does not exist; other failures
//     propagate.
//   - Set is a full overwrite (upsert) of the document under (ownerID, key).
//     Collections are persisted whole, so concurrent sessions writing the
//     same key resolve last-writer-wins with no merge or conflict detection.
//   - Delete is best-effort; callers log and swallow its error.
type IBlobStore interface {
	Get(ctx context.Context, ownerID, key string) ([]byte, error)
	Set(ctx context.Context, ownerID, key string, payload []byte) error
	Delete(ctx context.Context, ownerID, key string) error
}

// Blob store keys used by the application. User collections live under the
// owning user's id; the users directory lives under the system owner.
const (
	BlobKeyJobs              = "jobs"
	BlobKeyClients           = "clients"
	BlobKeyDraftNotes        = "draftNotes"
	BlobKeySettings          = "settings"
	BlobKeyCalendarEvents    = "calendarEvents"
	BlobKeyReadNotifications = "readNotifications"
	BlobKeyUsers             = "users"

	SystemOwnerID = "system_data"
)

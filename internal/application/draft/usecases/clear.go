package usecases

import (
	"context"
	"fmt"

	"github.com/ticketdesk/ticketdesk/internal/domain/draft"
	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
)

// clearDrafts deletes every draft of owner along with their voice note
// records. It returns the number of drafts removed and the filenames the
// removed records pointed at. Must run inside a transaction.
func clearDrafts(
	ctx context.Context,
	drafts draft.Repository,
	voiceNotes voicenote.Repository,
	ownerID uint,
) (int, []string, error) {
	ids, err := drafts.ListIDsByUserID(ctx, ownerID)
	if err != nil {
		return 0, nil, err
	}
	if len(ids) == 0 {
		return 0, nil, nil
	}

	var filenames []string
	for _, draftID := range ids {
		names, err := voiceNotes.DeleteByDraftID(ctx, draftID)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to delete voice notes of draft %d: %w", draftID, err)
		}
		filenames = append(filenames, names...)
	}

	if err := drafts.DeleteByIDs(ctx, ids); err != nil {
		return 0, nil, err
	}
	return len(ids), filenames, nil
}

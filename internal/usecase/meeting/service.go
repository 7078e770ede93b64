package meeting

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-tracker/errors"
	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes-tracker/internal/usecase/extract"
	"github.com/johnquangdev/meeting-notes-tracker/pkg/textutil"
)

// CompletionClient is the LLM collaborator. Its return value is untrusted
// text; the extraction layer owns making sense of it.
type CompletionClient interface {
	ChatCompletion(ctx context.Context, system, user string) (string, error)
}

// Locker serializes processing runs per meeting. A nil Locker disables
// serialization.
type Locker interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// Archiver stores raw model responses for later inspection. A nil Archiver
// disables archiving.
type Archiver interface {
	ArchiveResponse(ctx context.Context, meetingID string, payload []byte) error
}

// CreateMeetingInput is the input for CreateMeeting
type CreateMeetingInput struct {
	Notes        string
	MeetingType  string
	Participants []string
	OwnerID      uuid.UUID
}

// ProcessResult is the caller-facing output of one processing run
type ProcessResult struct {
	Summary      string
	KeyDecisions []string
	ActionItems  []*entities.ActionItem
}

// Service defines the meeting use case
type Service interface {
	// CreateMeeting creates a pending meeting record
	CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error)

	// ProcessMeeting runs the extraction pipeline for a meeting and
	// reconciles the result against the stored action items
	ProcessMeeting(ctx context.Context, meetingID, ownerID uuid.UUID, notes string) (*ProcessResult, error)

	// ListMeetings returns all meetings owned by the caller
	ListMeetings(ctx context.Context, ownerID uuid.UUID) ([]*entities.Meeting, error)

	// DeleteMeeting deletes a meeting and its action items
	DeleteMeeting(ctx context.Context, meetingID, ownerID uuid.UUID) error
}

type meetingService struct {
	meetingRepo repositories.MeetingRepository
	actionRepo  repositories.ActionItemRepository
	llm         CompletionClient
	lock        Locker
	archiver    Archiver
	logger      *zap.Logger
}

// NewMeetingService constructs a new meeting service
func NewMeetingService(
	meetingRepo repositories.MeetingRepository,
	actionRepo repositories.ActionItemRepository,
	llm CompletionClient,
	lock Locker,
	archiver Archiver,
	logger *zap.Logger,
) Service {
	return &meetingService{
		meetingRepo: meetingRepo,
		actionRepo:  actionRepo,
		llm:         llm,
		lock:        lock,
		archiver:    archiver,
		logger:      logger,
	}
}

// CreateMeeting creates a pending meeting record
func (s *meetingService) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error) {
	if input.Notes == "" {
		return nil, errors.ErrInvalidArgument("Notes are required")
	}

	meeting := entities.NewMeeting(input.Notes, input.MeetingType, input.Participants, input.OwnerID)
	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, errors.ErrDBQueryFailed("create meeting", err)
	}

	s.logger.Info("meeting created",
		zap.String("meeting_id", meeting.ID.String()),
		zap.String("owner_id", input.OwnerID.String()),
	)
	return meeting, nil
}

// ProcessMeeting runs the full pipeline: LLM call, parse, per-item cleaning,
// decision consolidation, reconciliation against stored items, persistence.
func (s *meetingService) ProcessMeeting(ctx context.Context, meetingID, ownerID uuid.UUID, notes string) (*ProcessResult, error) {
	meeting, err := s.meetingRepo.FindByIDAndOwner(ctx, meetingID, ownerID)
	if err != nil {
		if err == entities.ErrMeetingNotFound {
			return nil, errors.ErrMeetingNotFound(meetingID.String())
		}
		return nil, errors.ErrDBQueryFailed("find meeting", err)
	}

	// Reprocessing takes fresh notes when provided; the stored notes field
	// itself stays immutable.
	if notes == "" {
		notes = meeting.Notes
	}

	if s.lock != nil {
		acquired, lockErr := s.lock.Acquire(ctx, meetingID.String())
		if lockErr != nil {
			// The lock is best-effort; a broken Redis must not take
			// processing down with it.
			s.logger.Warn("processing lock unavailable, continuing without it",
				zap.String("meeting_id", meetingID.String()),
				zap.Error(lockErr),
			)
		} else if !acquired {
			return nil, errors.ErrProcessingInProgress(meetingID.String())
		} else {
			defer func() {
				if releaseErr := s.lock.Release(context.WithoutCancel(ctx), meetingID.String()); releaseErr != nil {
					s.logger.Warn("failed to release processing lock", zap.Error(releaseErr))
				}
			}()
		}
	}

	raw, err := s.llm.ChatCompletion(ctx, systemPrompt, userPrompt(textutil.Canonicalize(notes)))
	if err != nil {
		return nil, errors.ErrAIServiceUnavailable(err)
	}

	if s.archiver != nil {
		if archiveErr := s.archiver.ArchiveResponse(ctx, meetingID.String(), []byte(raw)); archiveErr != nil {
			s.logger.Warn("failed to archive model response",
				zap.String("meeting_id", meetingID.String()),
				zap.Error(archiveErr),
			)
		}
	}

	// Malformed model output is a normal condition and degrades to the
	// zero-value structure, never to an error.
	parsed := extract.ParseModelResponse(raw)
	cleaned := extract.NormalizeItems(notes, parsed.ActionItems)
	decisions := extract.ConsolidateDecisions(parsed.KeyDecisions, cleaned)
	summary := textutil.Canonicalize(parsed.Summary)

	prior, err := s.actionRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("find action items", err)
	}

	diff, err := Reconcile(meetingID, meeting.OwnerID, cleaned, prior)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}

	if err := s.meetingRepo.UpdateAnalysis(ctx, meetingID, summary, decisions, diff.Snapshot); err != nil {
		return nil, errors.ErrDBQueryFailed("update meeting analysis", err)
	}

	if err := s.actionRepo.CreateBatch(ctx, diff.ToInsert); err != nil {
		return nil, errors.ErrDBQueryFailed("insert action items", err)
	}
	for _, upd := range diff.ToUpdate {
		fields := map[string]interface{}{
			"owner":    upd.Owner,
			"priority": upd.Priority,
			"deadline": upd.Deadline,
		}
		if _, err := s.actionRepo.UpdateFields(ctx, upd.ID, meeting.OwnerID, fields); err != nil {
			return nil, errors.ErrDBQueryFailed("update action item", err)
		}
	}
	if err := s.actionRepo.DeleteByIDs(ctx, diff.ToDelete); err != nil {
		return nil, errors.ErrDBQueryFailed("delete action items", err)
	}

	s.logger.Info("meeting processed",
		zap.String("meeting_id", meetingID.String()),
		zap.Int("inserted", len(diff.ToInsert)),
		zap.Int("updated", len(diff.ToUpdate)),
		zap.Int("deleted", len(diff.ToDelete)),
		zap.Int("decisions", len(decisions)),
	)

	return &ProcessResult{
		Summary:      summary,
		KeyDecisions: decisions,
		ActionItems:  diff.Snapshot,
	}, nil
}

// ListMeetings returns all meetings owned by the caller
func (s *meetingService) ListMeetings(ctx context.Context, ownerID uuid.UUID) ([]*entities.Meeting, error) {
	meetings, err := s.meetingRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("list meetings", err)
	}
	return meetings, nil
}

// DeleteMeeting deletes a meeting and its action items
func (s *meetingService) DeleteMeeting(ctx context.Context, meetingID, ownerID uuid.UUID) error {
	if err := s.meetingRepo.Delete(ctx, meetingID, ownerID); err != nil {
		if err == entities.ErrMeetingNotFound {
			return errors.ErrMeetingNotFound(meetingID.String())
		}
		return errors.ErrDBQueryFailed("delete meeting", err)
	}
	if err := s.actionRepo.DeleteByMeetingID(ctx, meetingID); err != nil {
		return errors.ErrDBQueryFailed("delete action items", err)
	}
	return nil
}

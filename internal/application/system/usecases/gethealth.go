package usecases

import (
	"context"

	"github.com/ticketdesk/ticketdesk/internal/application/common/dto"
	"github.com/ticketdesk/ticketdesk/internal/domain/draft"
	"github.com/ticketdesk/ticketdesk/internal/domain/ticket"
	"github.com/ticketdesk/ticketdesk/internal/domain/user"
	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
)

// Pinger checks connectivity to the backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type GetHealthExecutor interface {
	Execute(ctx context.Context) (*dto.SystemStatus, error)
}

type GetHealthUseCase struct {
	db            Pinger
	userRepo      user.Repository
	ticketRepo    ticket.Repository
	draftRepo     draft.Repository
	voiceNoteRepo voicenote.Repository
	version       string
	logger        logger.Interface
}

func NewGetHealthUseCase(
	db Pinger,
	userRepo user.Repository,
	ticketRepo ticket.Repository,
	draftRepo draft.Repository,
	voiceNoteRepo voicenote.Repository,
	version string,
	logger logger.Interface,
) *GetHealthUseCase {
	return &GetHealthUseCase{
		db:            db,
		userRepo:      userRepo,
		ticketRepo:    ticketRepo,
		draftRepo:     draftRepo,
		voiceNoteRepo: voiceNoteRepo,
		version:       version,
		logger:        logger,
	}
}

// Execute never fails; an unreachable or failing store is reported in the
// returned status instead.
func (uc *GetHealthUseCase) Execute(ctx context.Context) (*dto.SystemStatus, error) {
	status := &dto.SystemStatus{
		Status:   dto.StatusHealthy,
		Database: dto.DatabaseConnected,
		Version:  uc.version,
	}

	if err := uc.db.Ping(ctx); err != nil {
		uc.logger.Errorw("health check database ping failed", "error", err)
		return unhealthy(status, err), nil
	}

	counters := []struct {
		dst   *int64
		count func(context.Context) (int64, error)
	}{
		{&status.Counts.Users, uc.userRepo.Count},
		{&status.Counts.Tickets, uc.ticketRepo.Count},
		{&status.Counts.Drafts, uc.draftRepo.Count},
		{&status.Counts.VoiceNotes, uc.voiceNoteRepo.Count},
		{&status.Counts.StandaloneVoiceNotes, uc.voiceNoteRepo.CountStandalone},
	}
	for _, c := range counters {
		n, err := c.count(ctx)
		if err != nil {
			uc.logger.Errorw("health check count failed", "error", err)
			return unhealthy(status, err), nil
		}
		*c.dst = n
	}

	return status, nil
}

func unhealthy(status *dto.SystemStatus, err error) *dto.SystemStatus {
	status.Status = dto.StatusUnhealthy
	status.Database = dto.DatabaseDisconnected
	status.Error = err.Error()
	status.Counts = dto.EntityCounts{}
	return status
}

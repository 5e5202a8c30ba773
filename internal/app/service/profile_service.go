package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

const DefaultProfileTimeout = 3 * time.Second

type ProfileService struct {
	profileRepository ports.ProfileRepository
	store             ports.TaskStore
	events            ports.EventPublisher
	clock             ports.Clock
	profileTimeout    time.Duration
}

func NewProfileService(
	profileRepository ports.ProfileRepository,
	store ports.TaskStore,
	events ports.EventPublisher,
	clock ports.Clock,
	profileTimeout time.Duration,
) *ProfileService {
	if profileTimeout <= 0 {
		profileTimeout = DefaultProfileTimeout
	}
	return &ProfileService{
		profileRepository: profileRepository,
		store:             store,
		events:            events,
		clock:             nowFunc(clock),
		profileTimeout:    profileTimeout,
	}
}

var _ ports.ProfileService = (*ProfileService)(nil)

// Session loads the user's tasks into the store and returns the profile.
// The profile fetch is bounded by the profile timeout; when it fails or
// times out the session is returned without a profile.
func (s *ProfileService) Session(ctx context.Context, userID string) (domain.Session, error) {
	session := domain.Session{UserID: userID}

	if _, err := s.store.Tasks(ctx, userID); err != nil {
		zap.L().Warn("failed to load tasks for session", zap.String("user_id", userID), zap.Error(err))
	}

	profileCtx, cancel := context.WithTimeout(ctx, s.profileTimeout)
	defer cancel()

	profile, err := s.profileRepository.Get(profileCtx, userID)
	switch {
	case err == nil:
		session.Profile = &profile
	case errors.Is(err, domain.ErrProfileNotFound):
	default:
		zap.L().Warn("profile unavailable for session", zap.String("user_id", userID), zap.Error(err))
	}

	return session, nil
}

// EndSession tears down the user's in-memory state.
func (s *ProfileService) EndSession(_ context.Context, userID string) error {
	s.store.Evict(userID)
	return nil
}

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	return s.profileRepository.Get(ctx, userID)
}

func (s *ProfileService) UpsertProfile(ctx context.Context, userID string, input domain.UpsertProfileInput) (domain.Profile, error) {
	now := s.clock()
	profile := domain.Profile{
		UserID:     userID,
		FullName:   input.FullName,
		University: input.University,
		AvatarURL:  input.AvatarURL,
		UpdatedAt:  stamp(now),
	}
	if err := s.profileRepository.Upsert(ctx, profile); err != nil {
		return domain.Profile{}, fmt.Errorf("upsert profile: %w", err)
	}
	publish(ctx, s.events, domain.ChangeUpdated, domain.EntityProfile, userID, userID, now)

	return profile, nil
}

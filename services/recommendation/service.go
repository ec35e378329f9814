package recommendation

import (
	"context"
	"strings"

	"glowbook/config"
	providerRepo "glowbook/database/repository/provider"
	reviewRepo "glowbook/database/repository/review"
	schedulerRepo "glowbook/database/repository/scheduler"
	userRepo "glowbook/database/repository/user"
	"glowbook/models"
	"glowbook/utils"

	"go.uber.org/zap"
)

const (
	DefaultLimit           = 5
	DefaultRatingThreshold = 3.0
)

// RecommendationService ranks makeup artists for a customer.
type RecommendationService interface {
	Recommend(ctx context.Context, userID string) (*models.RecommendationResult, error)
}

// DefaultRecommendationService implements RecommendationService.
type DefaultRecommendationService struct {
	Profiler  *Profiler
	Providers providerRepo.ProviderRepository
	Limit     int
	Logger    *zap.Logger
}

// NewRecommendationService wires the profiler and ranker over the given stores.
func NewRecommendationService(
	bookings schedulerRepo.SchedulerRepository,
	reviews reviewRepo.ReviewRepository,
	users userRepo.UserRepository,
	providers providerRepo.ProviderRepository,
	cfg config.Config,
	logger *zap.Logger,
) *DefaultRecommendationService {
	threshold := cfg.RatingThreshold
	if threshold <= 0 {
		threshold = DefaultRatingThreshold
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultRecommendationService{
		Profiler: &Profiler{
			Bookings:        bookings,
			Reviews:         reviews,
			Users:           users,
			RatingThreshold: threshold,
		},
		Providers: providers,
		Limit:     cfg.RecommendationLimit,
		Logger:    logger,
	}
}

// Recommend returns content-based recommendations when the user has an
// affinity profile, and the top rated artists otherwise.
func (s *DefaultRecommendationService) Recommend(ctx context.Context, userID string) (*models.RecommendationResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, utils.NewAppError(utils.ErrInvalidArgument, "userId is required")
	}

	profile, err := s.Profiler.BuildProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	providers, err := s.Providers.GetApproved(ctx)
	if err != nil {
		return nil, utils.Upstream("Failed to load artists", err)
	}

	limit := s.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	result := &models.RecommendationResult{
		UserID:        userID,
		ProfileSource: profile.Source,
	}
	if len(profile.Affinity) == 0 {
		result.Source = models.SourceTopRated
		result.Recommendations = RankTopRated(providers, limit)
	} else {
		result.Source = models.SourceContentBased
		result.UserProfile = profile.Affinity
		result.Recommendations = RankByAffinity(providers, profile.Affinity, profile.Booked, limit)
	}
	result.TotalFound = len(result.Recommendations)

	s.logger().Debug("recommendations ranked",
		zap.String("userID", userID),
		zap.String("source", string(result.Source)),
		zap.String("profileSource", string(result.ProfileSource)),
		zap.Int("totalFound", result.TotalFound))
	return result, nil
}

func (s *DefaultRecommendationService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

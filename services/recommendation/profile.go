package recommendation

import (
	"context"

	reviewRepo "glowbook/database/repository/review"
	schedulerRepo "glowbook/database/repository/scheduler"
	userRepo "glowbook/database/repository/user"
	"glowbook/models"
	"glowbook/utils"
)

// Profile is a user's affinity profile together with how it was derived.
type Profile struct {
	Affinity models.AffinityProfile
	Source   models.ProfileSource
	// Booked holds the owner user ids of artists the user has already booked.
	Booked map[string]bool
}

// Profiler derives affinity profiles from booking history, reviews and
// stated preferences.
type Profiler struct {
	Bookings        schedulerRepo.SchedulerRepository
	Reviews         reviewRepo.ReviewRepository
	Users           userRepo.UserRepository
	RatingThreshold float64
}

// BuildProfile runs the history pass and, when it yields nothing, seeds the
// profile from the user's stored preferences.
func (p *Profiler) BuildProfile(ctx context.Context, userID string) (*Profile, error) {
	history, err := p.Bookings.FindByCustomer(ctx, userID, models.HistoryStatuses)
	if err != nil {
		return nil, utils.Upstream("Failed to load booking history", err)
	}

	var completedIDs []string
	for _, b := range history {
		if b.Status == models.StatusCompleted {
			completedIDs = append(completedIDs, b.ID)
		}
	}
	reviews := map[string][]models.Review{}
	if len(completedIDs) > 0 {
		reviews, err = p.Reviews.GetByAppointmentIDs(ctx, completedIDs)
		if err != nil {
			return nil, utils.Upstream("Failed to load reviews", err)
		}
	}

	profile := &Profile{
		Affinity: models.AffinityProfile{},
		Source:   models.ProfileFromNothing,
		Booked:   map[string]bool{},
	}
	for _, b := range history {
		if b.ArtistUserID != "" {
			profile.Booked[b.ArtistUserID] = true
		}
		key := models.NormalizeCategory(b.Category)
		if key == "" {
			continue
		}
		switch b.Status {
		case models.StatusInProgress:
			profile.Affinity[key]++
		case models.StatusCompleted:
			mean := meanRating(reviews[b.ID])
			// A completed booking without any usable rating still counts as
			// interest. Product decision, revisit with the ranking owners.
			if mean == 0 || mean > p.RatingThreshold {
				profile.Affinity[key]++
			}
		}
	}
	if len(profile.Affinity) > 0 {
		profile.Source = models.ProfileFromHistory
		return profile, nil
	}

	if p.Users == nil {
		return profile, nil
	}
	user, err := p.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.Upstream("Failed to load user preferences", err)
	}
	if user == nil {
		return profile, nil
	}
	for _, pref := range user.Preferences {
		if key := models.NormalizeCategory(pref); key != "" {
			profile.Affinity[key] = 1
		}
	}
	if len(profile.Affinity) > 0 {
		profile.Source = models.ProfileFromPreferences
	}
	return profile, nil
}

// meanRating averages the present, positive ratings; 0 when there are none.
func meanRating(reviews []models.Review) float64 {
	sum, n := 0.0, 0
	for _, r := range reviews {
		if r.Rating == nil || *r.Rating <= 0 {
			continue
		}
		sum += *r.Rating
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

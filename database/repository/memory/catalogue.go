package memory

import (
	"context"
	"sync"

	providerRepo "glowbook/database/repository/provider"
	reviewRepo "glowbook/database/repository/review"
	userRepo "glowbook/database/repository/user"
	"glowbook/models"
)

// ProviderStore is an in-memory ProviderRepository.
type ProviderStore struct {
	mu        sync.RWMutex
	providers []models.Provider
	Err       error
}

var _ providerRepo.ProviderRepository = (*ProviderStore)(nil)

func NewProviderStore(providers ...models.Provider) *ProviderStore {
	return &ProviderStore{providers: append([]models.Provider(nil), providers...)}
}

func (s *ProviderStore) GetByUserID(_ context.Context, userID string) (*models.Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.providers {
		if p.UserID == userID {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (s *ProviderStore) GetApproved(_ context.Context) ([]models.Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []models.Provider{}
	for _, p := range s.providers {
		if p.IsApproved() {
			out = append(out, p)
		}
	}
	return out, nil
}

// ReviewStore is an in-memory ReviewRepository.
type ReviewStore struct {
	mu      sync.RWMutex
	reviews []models.Review
	Err     error
}

var _ reviewRepo.ReviewRepository = (*ReviewStore)(nil)

func NewReviewStore(reviews ...models.Review) *ReviewStore {
	return &ReviewStore{reviews: append([]models.Review(nil), reviews...)}
}

func (s *ReviewStore) GetByAppointmentIDs(_ context.Context, appointmentIDs []string) (map[string][]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}
	wanted := make(map[string]bool, len(appointmentIDs))
	for _, id := range appointmentIDs {
		wanted[id] = true
	}
	grouped := make(map[string][]models.Review)
	for _, r := range s.reviews {
		if wanted[r.AppointmentID] {
			grouped[r.AppointmentID] = append(grouped[r.AppointmentID], r)
		}
	}
	return grouped, nil
}

// UserStore is an in-memory UserRepository.
type UserStore struct {
	mu    sync.RWMutex
	users []models.User
	Err   error
}

var _ userRepo.UserRepository = (*UserStore)(nil)

func NewUserStore(users ...models.User) *UserStore {
	return &UserStore{users: append([]models.User(nil), users...)}
}

func (s *UserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (s *UserStore) ExistsByUsername(_ context.Context, username string) (bool, error) {
	return s.any(func(u models.User) bool { return u.Username == username })
}

func (s *UserStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return s.any(func(u models.User) bool { return u.Email == email })
}

func (s *UserStore) any(match func(models.User) bool) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return false, s.Err
	}
	for _, u := range s.users {
		if match(u) {
			return true, nil
		}
	}
	return false, nil
}

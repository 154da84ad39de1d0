package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/prostaff/prostaff_backend/internal/apperrors"
	"github.com/prostaff/prostaff_backend/internal/core/domain"
	portsrepo "github.com/prostaff/prostaff_backend/internal/core/ports/repositories"
)

// fakeStore is an in-memory store whose RecordUnlock gives the same guarantees
// as the SQL implementation: one mutex plays the role of the ledger row lock.
type fakeStore struct {
	mu       sync.Mutex
	profiles map[string]domain.Profile
	views    map[string][]domain.ProfileView
	ledgers  map[string]*domain.ClubAccess
	now      func() time.Time

	recordUnlockCalls int
}

var (
	_ portsrepo.ProfileRepositoryFacade    = (*fakeStore)(nil)
	_ portsrepo.ProfileViewReader          = (*fakeStore)(nil)
	_ portsrepo.ClubAccessRepositoryFacade = (*fakeStore)(nil)
)

func newFakeStore(now func() time.Time) *fakeStore {
	return &fakeStore{
		profiles: map[string]domain.Profile{},
		views:    map[string][]domain.ProfileView{},
		ledgers:  map[string]*domain.ClubAccess{},
		now:      now,
	}
}

func (f *fakeStore) addProfile(id string, visibility domain.VisibilityLevel) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles[id] = domain.Profile{ProfileID: id, UserID: "owner-" + id, IsPublic: true, VisibilityLevel: visibility}
}

func (f *fakeStore) setLedger(ledger domain.ClubAccess) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ledgers[ledger.UserID] = &ledger
}

func (f *fakeStore) ledger(userID string) domain.ClubAccess {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.ledgers[userID]
}

func (f *fakeStore) viewCount(userID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.views[userID])
}

func (f *fakeStore) FindProfileByID(_ context.Context, profileID string) (*domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[profileID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (f *fakeStore) ListPublicProfiles(_ context.Context, visibilities []domain.VisibilityLevel, limit int, offset int) ([]domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	allowed := map[domain.VisibilityLevel]bool{}
	for _, v := range visibilities {
		allowed[v] = true
	}
	var out []domain.Profile
	for _, p := range f.profiles {
		if p.IsPublic && allowed[p.EffectiveVisibility()] {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProfileID < out[j].ProfileID })
	if offset >= len(out) {
		return []domain.Profile{}, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) FindRelatedRecords(_ context.Context, _ string) (*domain.RelatedRecords, error) {
	return &domain.RelatedRecords{}, nil
}

func (f *fakeStore) FindCardRecords(_ context.Context, profileIDs []string) (map[string]domain.CardRecords, error) {
	out := make(map[string]domain.CardRecords, len(profileIDs))
	for _, id := range profileIDs {
		out[id] = domain.CardRecords{}
	}
	return out, nil
}

func (f *fakeStore) HasViewed(_ context.Context, viewerUserID, profileID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasViewedLocked(viewerUserID, profileID), nil
}

func (f *fakeStore) hasViewedLocked(viewerUserID, profileID string) bool {
	for _, v := range f.views[viewerUserID] {
		if v.ProfileID == profileID {
			return true
		}
	}
	return false
}

func (f *fakeStore) FindViewedProfileIDs(_ context.Context, viewerUserID string, profileIDs []string) (map[string]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]bool{}
	for _, id := range profileIDs {
		if f.hasViewedLocked(viewerUserID, id) {
			out[id] = true
		}
	}
	return out, nil
}

func (f *fakeStore) CountViewsSince(_ context.Context, viewerUserID string, since time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.countSinceLocked(viewerUserID, since), nil
}

func (f *fakeStore) countSinceLocked(viewerUserID string, since time.Time) int {
	n := 0
	for _, v := range f.views[viewerUserID] {
		if v.ViewedAt.After(since) {
			n++
		}
	}
	return n
}

func (f *fakeStore) ListViewsByViewer(_ context.Context, viewerUserID string, limit int, _ *string) ([]domain.ProfileView, *string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	views := append([]domain.ProfileView(nil), f.views[viewerUserID]...)
	sort.Slice(views, func(i, j int) bool { return views[i].ViewedAt.After(views[j].ViewedAt) })
	if len(views) > limit {
		views = views[:limit]
	}
	return views, nil, nil
}

func (f *fakeStore) FindClubAccess(_ context.Context, userID string) (*domain.ClubAccess, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.ledgers[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (f *fakeStore) FindOrCreateClubAccess(_ context.Context, userID string) (*domain.ClubAccess, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.ledgers[userID]
	if !ok {
		now := f.now()
		l = &domain.ClubAccess{
			UserID:             userID,
			FreeViewsRemaining: 3,
			FreeViewsPerWeek:   2,
			TrialExpiresAt:     now.Add(14 * 24 * time.Hour),
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		f.ledgers[userID] = l
	}
	cp := *l
	return &cp, nil
}

func (f *fakeStore) RecordUnlock(_ context.Context, charge domain.UnlockCharge) (*domain.UnlockReceipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recordUnlockCalls++

	ledger, ok := f.ledgers[charge.ViewerUserID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if f.hasViewedLocked(charge.ViewerUserID, charge.ProfileID) {
		return &domain.UnlockReceipt{AlreadyViewed: true}, nil
	}

	receipt := &domain.UnlockReceipt{FreeViewsRemaining: ledger.FreeViewsRemaining}
	switch charge.Kind {
	case domain.ChargeTrial:
		if ledger.FreeViewsRemaining <= 0 || !ledger.TrialExpiresAt.After(charge.ViewedAt) {
			return receipt, apperrors.ErrPaymentRequired
		}
		ledger.FreeViewsRemaining--
		receipt.FreeViewsRemaining = ledger.FreeViewsRemaining
	case domain.ChargeWeekly:
		used := f.countSinceLocked(charge.ViewerUserID, charge.WindowStart)
		if used >= charge.WeeklyLimit {
			return receipt, apperrors.ErrPaymentRequired
		}
		receipt.WeeklyUsed = used + 1
	case domain.ChargeSubscription:
	default:
		return receipt, apperrors.ErrPaymentRequired
	}

	f.views[charge.ViewerUserID] = append(f.views[charge.ViewerUserID], domain.ProfileView{
		ViewID:       charge.ViewerUserID + ":" + charge.ProfileID,
		ViewerUserID: charge.ViewerUserID,
		ProfileID:    charge.ProfileID,
		ViewedAt:     charge.ViewedAt,
	})
	return receipt, nil
}

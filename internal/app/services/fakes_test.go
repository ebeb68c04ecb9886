package services

import (
	"context"
	"errors"
	"mime/multipart"
	"sort"
	"time"

	"github.com/ilokeshmewari/college-project/internal/app/models"
	"github.com/ilokeshmewari/college-project/internal/app/repositories"
)

// In-memory stand-ins for the pgx repositories.

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User)}
}

func (s *fakeUserStore) CreateUser(_ context.Context, user *models.User) (int64, error) {
	for _, u := range s.users {
		if u.Email == user.Email {
			return 0, repositories.ErrEmailAlreadyExists
		}
	}
	s.nextID++
	stored := *user
	stored.ID = s.nextID
	stored.CreatedAt = time.Now()
	s.users[stored.ID] = &stored
	return stored.ID, nil
}

func (s *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (s *fakeUserStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type tokenRecord struct {
	userID    int64
	expiresAt time.Time
	revoked   bool
}

type fakeTokenStore struct {
	tokens map[string]*tokenRecord
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]*tokenRecord)}
}

func (s *fakeTokenStore) CreateToken(_ context.Context, token string, userID int64, expiresAt time.Time) error {
	s.tokens[token] = &tokenRecord{userID: userID, expiresAt: expiresAt}
	return nil
}

func (s *fakeTokenStore) GetTokenByValue(_ context.Context, token string) (int64, time.Time, bool, error) {
	rec, ok := s.tokens[token]
	if !ok {
		return 0, time.Time{}, false, repositories.ErrTokenNotFound
	}
	return rec.userID, rec.expiresAt, rec.revoked, nil
}

func (s *fakeTokenStore) RevokeToken(_ context.Context, token string) error {
	rec, ok := s.tokens[token]
	if !ok {
		return repositories.ErrTokenNotFound
	}
	rec.revoked = true
	return nil
}

type fakeProfileStore struct {
	profiles       map[int64]*models.Profile
	createEmptyErr error
	createCalls    int
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: make(map[int64]*models.Profile)}
}

func (s *fakeProfileStore) GetByUserID(_ context.Context, userID int64) (*models.Profile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	copied := *p
	return &copied, nil
}

func (s *fakeProfileStore) CreateEmpty(_ context.Context, userID int64, email string) (*models.Profile, error) {
	s.createCalls++
	if s.createEmptyErr != nil {
		if errors.Is(s.createEmptyErr, repositories.ErrProfileAlreadyExists) {
			// The concurrent winner's row exists by the time we lose
			s.profiles[userID] = &models.Profile{UserID: userID, Email: email, CreatedAt: time.Now(), UpdatedAt: time.Now()}
		}
		return nil, s.createEmptyErr
	}
	if _, ok := s.profiles[userID]; ok {
		return nil, repositories.ErrProfileAlreadyExists
	}
	p := &models.Profile{UserID: userID, Email: email, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	s.profiles[userID] = p
	copied := *p
	return &copied, nil
}

func (s *fakeProfileStore) Upsert(_ context.Context, profile *models.Profile) error {
	copied := *profile
	copied.UpdatedAt = time.Now()
	s.profiles[profile.UserID] = &copied
	return nil
}

type fakeFacultyStore struct {
	faculty   map[int64]*models.Faculty
	nextID    int64
	createErr error
}

func newFakeFacultyStore() *fakeFacultyStore {
	return &fakeFacultyStore{faculty: make(map[int64]*models.Faculty)}
}

func (s *fakeFacultyStore) CreateFaculty(_ context.Context, faculty *models.Faculty) (int64, error) {
	if s.createErr != nil {
		return 0, s.createErr
	}
	s.nextID++
	stored := *faculty
	stored.ID = s.nextID
	stored.CreatedAt = time.Now()
	s.faculty[stored.ID] = &stored
	return stored.ID, nil
}

func (s *fakeFacultyStore) GetFacultyByID(_ context.Context, id int64) (*models.Faculty, error) {
	f, ok := s.faculty[id]
	if !ok {
		return nil, repositories.ErrFacultyNotFound
	}
	copied := *f
	return &copied, nil
}

func (s *fakeFacultyStore) GetFaculty(_ context.Context, offset uint64, limit int) ([]*models.Faculty, error) {
	all := make([]*models.Faculty, 0, len(s.faculty))
	for _, f := range s.faculty {
		copied := *f
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	if offset >= uint64(len(all)) {
		return nil, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *fakeFacultyStore) CountFaculty(_ context.Context) (int64, error) {
	return int64(len(s.faculty)), nil
}

func (s *fakeFacultyStore) DeleteFaculty(_ context.Context, id int64) error {
	if _, ok := s.faculty[id]; !ok {
		return repositories.ErrFacultyNotFound
	}
	delete(s.faculty, id)
	return nil
}

type fakeFeedbackStore struct {
	feedback  []*models.Feedback
	nextID    int64
	createErr error
}

func newFakeFeedbackStore() *fakeFeedbackStore {
	return &fakeFeedbackStore{}
}

func (s *fakeFeedbackStore) CreateFeedback(_ context.Context, feedback *models.Feedback) (*models.Feedback, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.nextID++
	stored := *feedback
	stored.ID = s.nextID
	stored.CreatedAt = time.Now()
	s.feedback = append(s.feedback, &stored)
	copied := stored
	return &copied, nil
}

func (s *fakeFeedbackStore) GetByFacultyID(_ context.Context, facultyID int64, offset uint64, limit int) ([]*models.Feedback, error) {
	matched := make([]*models.Feedback, 0)
	for _, f := range s.feedback {
		if f.FacultyID == facultyID {
			copied := *f
			matched = append(matched, &copied)
		}
	}
	// Newest first, matching the repository's created_at DESC ordering
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	if offset >= uint64(len(matched)) {
		return nil, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *fakeFeedbackStore) CountByFacultyID(_ context.Context, facultyID int64) (int64, error) {
	var count int64
	for _, f := range s.feedback {
		if f.FacultyID == facultyID {
			count++
		}
	}
	return count, nil
}

type fakeStorage struct {
	saveErr error
	saved   []string
	deleted []string
}

func (s *fakeStorage) Save(fileHeader *multipart.FileHeader) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	url := "/uploads/" + fileHeader.Filename
	s.saved = append(s.saved, url)
	return url, nil
}

func (s *fakeStorage) Delete(fileURL string) error {
	s.deleted = append(s.deleted, fileURL)
	return nil
}

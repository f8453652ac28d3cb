package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/abh6007/job-board-app/internal/core/domain"
	"github.com/abh6007/job-board-app/internal/core/port"
	"github.com/abh6007/job-board-app/internal/repository"
)

type jobRepoStub struct {
	mu         sync.Mutex
	jobs       map[int64]*domain.Job
	nextID     int64
	lastFilter port.JobFilter
	searched   [][]int64
	err        error
}

func newJobRepoStub() *jobRepoStub {
	return &jobRepoStub{jobs: make(map[int64]*domain.Job), nextID: 1}
}

func (s *jobRepoStub) Create(_ context.Context, job *domain.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	job.ID = s.nextID
	s.nextID++
	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now
	copied := *job
	s.jobs[job.ID] = &copied
	return nil
}

func (s *jobRepoStub) GetByID(_ context.Context, id int64) (*domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	job, ok := s.jobs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *job
	return &copied, nil
}

func (s *jobRepoStub) List(_ context.Context, filter port.JobFilter) ([]domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.lastFilter = filter

	matches := make([]domain.Job, 0)
	for _, job := range s.jobs {
		if len(filter.Statuses) > 0 {
			found := false
			for _, status := range filter.Statuses {
				if job.Status == status {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		if filter.Search != "" && !containsFold(job.Title, filter.Search) && !containsFold(job.Description, filter.Search) {
			continue
		}
		matches = append(matches, *job)
	}
	return matches, nil
}

func (s *jobRepoStub) Update(_ context.Context, job *domain.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.jobs[job.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *job
	s.jobs[job.ID] = &copied
	return nil
}

func (s *jobRepoStub) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.jobs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.jobs, id)
	return nil
}

func (s *jobRepoStub) IncrementClicks(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	job, ok := s.jobs[id]
	if !ok {
		return repository.ErrNotFound
	}
	job.ClickCount++
	return nil
}

func (s *jobRepoStub) IncrementSearches(_ context.Context, ids []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.searched = append(s.searched, ids)
	for _, id := range ids {
		if job, ok := s.jobs[id]; ok {
			job.SearchCount++
		}
	}
	return nil
}

func (s *jobRepoStub) Stats(_ context.Context, _ uint64) (*domain.BoardStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	stats := &domain.BoardStats{}
	for _, job := range s.jobs {
		stats.JobsPosted++
		switch job.Status {
		case domain.JobStatusActive:
			stats.JobsActive++
		case domain.JobStatusInactive:
			stats.JobsInactive++
		}
	}
	return stats, nil
}

func containsFold(haystack, needle string) bool {
	h := []rune(haystack)
	n := []rune(needle)
	if len(n) == 0 {
		return true
	}
	lower := func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}
	for i := 0; i+len(n) <= len(h); i++ {
		match := true
		for j := range n {
			if lower(h[i+j]) != lower(n[j]) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

type socialLinkRepoStub struct {
	mu     sync.Mutex
	links  map[int64]*domain.SocialLink
	nextID int64
}

func newSocialLinkRepoStub() *socialLinkRepoStub {
	return &socialLinkRepoStub{links: make(map[int64]*domain.SocialLink), nextID: 1}
}

func (s *socialLinkRepoStub) Create(_ context.Context, link *domain.SocialLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	link.ID = s.nextID
	s.nextID++
	copied := *link
	s.links[link.ID] = &copied
	return nil
}

func (s *socialLinkRepoStub) List(_ context.Context, visibleOnly bool) ([]domain.SocialLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	links := make([]domain.SocialLink, 0)
	for _, link := range s.links {
		if visibleOnly && !link.IsVisible {
			continue
		}
		links = append(links, *link)
	}
	return links, nil
}

func (s *socialLinkRepoStub) Update(_ context.Context, link *domain.SocialLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.links[link.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *link
	s.links[link.ID] = &copied
	return nil
}

func (s *socialLinkRepoStub) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.links[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.links, id)
	return nil
}

type automationLinkRepoStub struct {
	mu     sync.Mutex
	links  map[int64]*domain.AutomationLink
	nextID int64
}

func newAutomationLinkRepoStub() *automationLinkRepoStub {
	return &automationLinkRepoStub{links: make(map[int64]*domain.AutomationLink), nextID: 1}
}

func (s *automationLinkRepoStub) Create(_ context.Context, link *domain.AutomationLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	link.ID = s.nextID
	s.nextID++
	copied := *link
	s.links[link.ID] = &copied
	return nil
}

func (s *automationLinkRepoStub) List(_ context.Context, visibleOnly bool) ([]domain.AutomationLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	links := make([]domain.AutomationLink, 0)
	for _, link := range s.links {
		if visibleOnly && !link.IsVisible {
			continue
		}
		links = append(links, *link)
	}
	return links, nil
}

func (s *automationLinkRepoStub) Update(_ context.Context, link *domain.AutomationLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.links[link.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *link
	s.links[link.ID] = &copied
	return nil
}

func (s *automationLinkRepoStub) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.links[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.links, id)
	return nil
}

type aboutMeRepoStub struct {
	mu    sync.Mutex
	about *domain.AboutMe
}

func (s *aboutMeRepoStub) Get(_ context.Context) (*domain.AboutMe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.about == nil {
		return nil, repository.ErrNotFound
	}
	copied := *s.about
	return &copied, nil
}

func (s *aboutMeRepoStub) Upsert(_ context.Context, about *domain.AboutMe) (*domain.AboutMe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := domain.AboutMe{ID: 1, Content: about.Content}
	s.about = &stored
	copied := stored
	return &copied, nil
}

type designSettingsRepoStub struct {
	mu       sync.Mutex
	settings *domain.DesignSettings
}

func (s *designSettingsRepoStub) Get(_ context.Context) (*domain.DesignSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings == nil {
		return nil, repository.ErrNotFound
	}
	copied := *s.settings
	return &copied, nil
}

func (s *designSettingsRepoStub) Upsert(_ context.Context, settings *domain.DesignSettings) (*domain.DesignSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *settings
	stored.ID = 1
	stored.UpdatedAt = time.Now().UTC()
	s.settings = &stored
	copied := stored
	return &copied, nil
}

var (
	_ port.JobRepository            = (*jobRepoStub)(nil)
	_ port.SocialLinkRepository     = (*socialLinkRepoStub)(nil)
	_ port.AutomationLinkRepository = (*automationLinkRepoStub)(nil)
	_ port.AboutMeRepository        = (*aboutMeRepoStub)(nil)
	_ port.DesignSettingsRepository = (*designSettingsRepoStub)(nil)
)

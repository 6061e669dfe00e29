// Package mockstore provides an in-memory implementation of domain.TaskStore.
// It simulates a remote backend: every operation sleeps for a randomized
// latency window before answering, so callers must handle pending states.
package mockstore

import (
	_ "embed"
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var builtinSeed []byte

// SeedData is the fixture layout loaded into a fresh store.
type SeedData struct {
	Projects []*domain.Project `yaml:"projects"`
	Tags     []*domain.Tag     `yaml:"tags"`
	Tasks    []*domain.Task    `yaml:"tasks"`
}

// Store implements domain.TaskStore over in-memory collections.
// A RWMutex serializes mutations so concurrent callers cannot lose updates.
// Fields are ordered to minimize memory padding.
type Store struct {
	clock      domain.Clock
	tasks      []*domain.Task
	projects   []*domain.Project
	tags       []*domain.Tag
	latencyMin time.Duration
	latencyMax time.Duration
	mu         sync.RWMutex
}

// Option configures a Store.
type Option func(*Store) error

// WithLatency sets the simulated latency bounds. Zero disables the delay.
func WithLatency(min, max time.Duration) Option {
	return func(s *Store) error {
		if min < 0 || max < min {
			return fmt.Errorf("invalid latency bounds %v..%v", min, max)
		}
		s.latencyMin = min
		s.latencyMax = max
		return nil
	}
}

// WithSeedFile loads fixtures from a YAML file instead of the built-in seed.
func WithSeedFile(path string) Option {
	return func(s *Store) error {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read seed file: %w", err)
		}
		return s.loadSeed(content)
	}
}

// WithSeedData replaces the fixtures directly. Useful for tests.
func WithSeedData(seed SeedData) Option {
	return func(s *Store) error {
		s.projects = seed.Projects
		s.tags = seed.Tags
		s.tasks = seed.Tasks
		return nil
	}
}

// New creates a Store seeded with the built-in fixtures unless an option
// overrides them.
func New(clock domain.Clock, opts ...Option) (*Store, error) {
	s := &Store{
		clock:      clock,
		latencyMin: 200 * time.Millisecond,
		latencyMax: 500 * time.Millisecond,
	}
	if err := s.loadSeed(builtinSeed); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) loadSeed(content []byte) error {
	var seed SeedData
	if err := yaml.Unmarshal(content, &seed); err != nil {
		return fmt.Errorf("parse seed data: %w", err)
	}
	s.projects = seed.Projects
	s.tags = seed.Tags
	s.tasks = seed.Tasks
	return nil
}

// sleep blocks for a randomized latency window, or until ctx is done.
func (s *Store) sleep(ctx context.Context) error {
	if s.latencyMax == 0 {
		return ctx.Err()
	}
	d := s.latencyMin
	if span := s.latencyMax - s.latencyMin; span > 0 {
		d += rand.N(span + 1)
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ListTasks retrieves all tasks.
func (s *Store) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, cloneTask(t))
	}
	return tasks, nil
}

// ListProjects retrieves all projects.
func (s *Store) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]*domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		clone := *p
		projects = append(projects, &clone)
	}
	return projects, nil
}

// ListTags retrieves all tags.
func (s *Store) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	tags := make([]*domain.Tag, 0, len(s.tags))
	for _, t := range s.tags {
		clone := *t
		tags = append(tags, &clone)
	}
	return tags, nil
}

// CreateTask assigns max(existing IDs)+1, stamps the creation date from the
// clock and appends the task. The store does not validate the draft.
func (s *Store) CreateTask(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := 1
	for _, t := range s.tasks {
		if t.ID >= id {
			id = t.ID + 1
		}
	}

	task := &domain.Task{
		ID:          id,
		Title:       draft.Title,
		Description: draft.Description,
		ProjectID:   draft.ProjectID,
		TagIDs:      append([]int(nil), draft.TagIDs...),
		DueDate:     draft.DueDate,
		Status:      draft.Status,
		CreatedAt:   domain.StartOfDay(s.clock.Now()),
	}
	s.tasks = append(s.tasks, task)

	return cloneTask(task), nil
}

// UpdateTask shallow-merges the patch onto the stored record.
func (s *Store) UpdateTask(ctx context.Context, id int, patch domain.TaskPatch) (*domain.Task, error) {
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID == id {
			merged := patch.Apply(*t)
			s.tasks[i] = &merged
			return cloneTask(&merged), nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

// DeleteTask removes the record with the given identifier.
func (s *Store) DeleteTask(ctx context.Context, id int) (int, error) {
	if err := s.sleep(ctx); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return id, nil
		}
	}
	return 0, domain.ErrTaskNotFound
}

func cloneTask(t *domain.Task) *domain.Task {
	clone := *t
	clone.TagIDs = append([]int(nil), t.TagIDs...)
	return &clone
}

// Ensure Store implements TaskStore.
var _ domain.TaskStore = (*Store)(nil)

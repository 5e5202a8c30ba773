package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taskhub/internal/core/domain"
)

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskRepository) Get(ctx context.Context, userID, taskID string) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *MockTaskRepository) Create(ctx context.Context, task domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, task domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, userID, taskID string) error {
	return m.Called(ctx, userID, taskID).Error(0)
}

func (m *MockTaskRepository) ListPending(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdatePriority(ctx context.Context, taskID string, priority domain.Priority) error {
	return m.Called(ctx, taskID, priority).Error(0)
}

type MockSubjectRepository struct {
	mock.Mock
}

func (m *MockSubjectRepository) List(ctx context.Context, userID string) ([]domain.Subject, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Subject), args.Error(1)
}

func (m *MockSubjectRepository) Get(ctx context.Context, userID, subjectID string) (domain.Subject, error) {
	args := m.Called(ctx, userID, subjectID)
	return args.Get(0).(domain.Subject), args.Error(1)
}

func (m *MockSubjectRepository) Create(ctx context.Context, subject domain.Subject) error {
	return m.Called(ctx, subject).Error(0)
}

func (m *MockSubjectRepository) Update(ctx context.Context, subject domain.Subject) error {
	return m.Called(ctx, subject).Error(0)
}

func (m *MockSubjectRepository) Delete(ctx context.Context, userID, subjectID string) error {
	return m.Called(ctx, userID, subjectID).Error(0)
}

func (m *MockSubjectRepository) NameExists(ctx context.Context, userID, name, excludeID string) (bool, error) {
	args := m.Called(ctx, userID, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubjectRepository) AssignProfessor(ctx context.Context, userID, subjectID string, professorID *string) error {
	return m.Called(ctx, userID, subjectID, professorID).Error(0)
}

type MockProfessorRepository struct {
	mock.Mock
}

func (m *MockProfessorRepository) List(ctx context.Context, userID string) ([]domain.Professor, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Professor), args.Error(1)
}

func (m *MockProfessorRepository) Get(ctx context.Context, userID, professorID string) (domain.Professor, error) {
	args := m.Called(ctx, userID, professorID)
	return args.Get(0).(domain.Professor), args.Error(1)
}

func (m *MockProfessorRepository) Create(ctx context.Context, professor domain.Professor) error {
	return m.Called(ctx, professor).Error(0)
}

func (m *MockProfessorRepository) Update(ctx context.Context, professor domain.Professor) error {
	return m.Called(ctx, professor).Error(0)
}

func (m *MockProfessorRepository) Delete(ctx context.Context, userID, professorID string) error {
	return m.Called(ctx, userID, professorID).Error(0)
}

func (m *MockProfessorRepository) TaxCodeExists(ctx context.Context, userID, taxCode, excludeID string) (bool, error) {
	args := m.Called(ctx, userID, taxCode, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) List(ctx context.Context, userID string) ([]domain.ScheduleEntry, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.ScheduleEntry), args.Error(1)
}

func (m *MockScheduleRepository) Get(ctx context.Context, userID, entryID string) (domain.ScheduleEntry, error) {
	args := m.Called(ctx, userID, entryID)
	return args.Get(0).(domain.ScheduleEntry), args.Error(1)
}

func (m *MockScheduleRepository) Create(ctx context.Context, entry domain.ScheduleEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockScheduleRepository) Update(ctx context.Context, entry domain.ScheduleEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockScheduleRepository) Delete(ctx context.Context, userID, entryID string) error {
	return m.Called(ctx, userID, entryID).Error(0)
}

type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) List(ctx context.Context, userID string, subjectID *string) ([]domain.Note, error) {
	args := m.Called(ctx, userID, subjectID)
	return args.Get(0).([]domain.Note), args.Error(1)
}

func (m *MockNoteRepository) Get(ctx context.Context, userID, noteID string) (domain.Note, error) {
	args := m.Called(ctx, userID, noteID)
	return args.Get(0).(domain.Note), args.Error(1)
}

func (m *MockNoteRepository) Create(ctx context.Context, note domain.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *MockNoteRepository) Update(ctx context.Context, note domain.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *MockNoteRepository) Delete(ctx context.Context, userID, noteID string) error {
	return m.Called(ctx, userID, noteID).Error(0)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Get(ctx context.Context, userID string) (domain.Profile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) Tasks(ctx context.Context, userID string) ([]domain.Task, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskStore) Refresh(ctx context.Context, userID string) ([]domain.Task, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskStore) Put(userID string, task domain.Task) {
	m.Called(userID, task)
}

func (m *MockTaskStore) Remove(userID, taskID string) {
	m.Called(userID, taskID)
}

func (m *MockTaskStore) Invalidate(userID string) {
	m.Called(userID)
}

func (m *MockTaskStore) Evict(userID string) {
	m.Called(userID)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event domain.ChangeEvent) error {
	return m.Called(ctx, event).Error(0)
}

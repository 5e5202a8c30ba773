package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

type taskServiceMock struct {
	mock.Mock
}

var _ ports.TaskService = (*taskServiceMock)(nil)

func (m *taskServiceMock) ListTasks(ctx context.Context, userID string, view domain.TaskView) ([]domain.Task, error) {
	args := m.Called(ctx, userID, view)
	return tasksArg(args, 0), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, userID, taskID string) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, userID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ToggleTask(ctx context.Context, userID, taskID string) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, userID, taskID string) error {
	return m.Called(ctx, userID, taskID).Error(0)
}

func (m *taskServiceMock) RefreshTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	args := m.Called(ctx, userID)
	return tasksArg(args, 0), args.Error(1)
}

func (m *taskServiceMock) Dashboard(ctx context.Context, userID string) (domain.Dashboard, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Dashboard), args.Error(1)
}

func (m *taskServiceMock) RefreshPriorities(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func tasksArg(args mock.Arguments, idx int) []domain.Task {
	if value := args.Get(idx); value != nil {
		return value.([]domain.Task)
	}
	return nil
}

type subjectServiceMock struct {
	mock.Mock
}

var _ ports.SubjectService = (*subjectServiceMock)(nil)

func (m *subjectServiceMock) ListSubjects(ctx context.Context, userID string) ([]domain.Subject, error) {
	args := m.Called(ctx, userID)
	var subjects []domain.Subject
	if value := args.Get(0); value != nil {
		subjects = value.([]domain.Subject)
	}
	return subjects, args.Error(1)
}

func (m *subjectServiceMock) CreateSubject(ctx context.Context, userID string, input domain.CreateSubjectInput) (domain.Subject, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Subject), args.Error(1)
}

func (m *subjectServiceMock) UpdateSubject(ctx context.Context, userID, subjectID string, input domain.UpdateSubjectInput) (domain.Subject, error) {
	args := m.Called(ctx, userID, subjectID, input)
	return args.Get(0).(domain.Subject), args.Error(1)
}

func (m *subjectServiceMock) DeleteSubject(ctx context.Context, userID, subjectID string) error {
	return m.Called(ctx, userID, subjectID).Error(0)
}

func (m *subjectServiceMock) AssignProfessor(ctx context.Context, userID, subjectID string, professorID *string) (domain.Subject, error) {
	args := m.Called(ctx, userID, subjectID, professorID)
	return args.Get(0).(domain.Subject), args.Error(1)
}

type professorServiceMock struct {
	mock.Mock
}

var _ ports.ProfessorService = (*professorServiceMock)(nil)

func (m *professorServiceMock) ListProfessors(ctx context.Context, userID string) ([]domain.Professor, error) {
	args := m.Called(ctx, userID)
	var professors []domain.Professor
	if value := args.Get(0); value != nil {
		professors = value.([]domain.Professor)
	}
	return professors, args.Error(1)
}

func (m *professorServiceMock) CreateProfessor(ctx context.Context, userID string, input domain.CreateProfessorInput) (domain.Professor, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Professor), args.Error(1)
}

func (m *professorServiceMock) UpdateProfessor(ctx context.Context, userID, professorID string, input domain.UpdateProfessorInput) (domain.Professor, error) {
	args := m.Called(ctx, userID, professorID, input)
	return args.Get(0).(domain.Professor), args.Error(1)
}

func (m *professorServiceMock) DeleteProfessor(ctx context.Context, userID, professorID string) error {
	return m.Called(ctx, userID, professorID).Error(0)
}

type scheduleServiceMock struct {
	mock.Mock
}

var _ ports.ScheduleService = (*scheduleServiceMock)(nil)

func (m *scheduleServiceMock) WeeklySchedule(ctx context.Context, userID string) ([]domain.ScheduleDay, error) {
	args := m.Called(ctx, userID)
	var days []domain.ScheduleDay
	if value := args.Get(0); value != nil {
		days = value.([]domain.ScheduleDay)
	}
	return days, args.Error(1)
}

func (m *scheduleServiceMock) CreateEntry(ctx context.Context, userID string, input domain.CreateScheduleEntryInput) (domain.ScheduleEntry, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.ScheduleEntry), args.Error(1)
}

func (m *scheduleServiceMock) UpdateEntry(ctx context.Context, userID, entryID string, input domain.UpdateScheduleEntryInput) (domain.ScheduleEntry, error) {
	args := m.Called(ctx, userID, entryID, input)
	return args.Get(0).(domain.ScheduleEntry), args.Error(1)
}

func (m *scheduleServiceMock) DeleteEntry(ctx context.Context, userID, entryID string) error {
	return m.Called(ctx, userID, entryID).Error(0)
}

type noteServiceMock struct {
	mock.Mock
}

var _ ports.NoteService = (*noteServiceMock)(nil)

func (m *noteServiceMock) ListNotes(ctx context.Context, userID string, subjectID *string) ([]domain.Note, error) {
	args := m.Called(ctx, userID, subjectID)
	var notes []domain.Note
	if value := args.Get(0); value != nil {
		notes = value.([]domain.Note)
	}
	return notes, args.Error(1)
}

func (m *noteServiceMock) GetNote(ctx context.Context, userID, noteID string) (domain.Note, error) {
	args := m.Called(ctx, userID, noteID)
	return args.Get(0).(domain.Note), args.Error(1)
}

func (m *noteServiceMock) CreateNote(ctx context.Context, userID string, input domain.CreateNoteInput) (domain.Note, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Note), args.Error(1)
}

func (m *noteServiceMock) UpdateNote(ctx context.Context, userID, noteID string, input domain.UpdateNoteInput) (domain.Note, error) {
	args := m.Called(ctx, userID, noteID, input)
	return args.Get(0).(domain.Note), args.Error(1)
}

func (m *noteServiceMock) DeleteNote(ctx context.Context, userID, noteID string) error {
	return m.Called(ctx, userID, noteID).Error(0)
}

type profileServiceMock struct {
	mock.Mock
}

var _ ports.ProfileService = (*profileServiceMock)(nil)

func (m *profileServiceMock) Session(ctx context.Context, userID string) (domain.Session, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *profileServiceMock) EndSession(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *profileServiceMock) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Profile), args.Error(1)
}

func (m *profileServiceMock) UpsertProfile(ctx context.Context, userID string, input domain.UpsertProfileInput) (domain.Profile, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Profile), args.Error(1)
}

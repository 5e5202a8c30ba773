package tests

import (
	"context"
	"net/http"
	"strings"
	"time"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/core/domain"
)

func (s *apiSuite) createTask(userID string, body map[string]any) dto.TaskItem {
	var task dto.TaskItem
	s.decode(s.call(userID, http.MethodPost, "/api/tasks", body), http.StatusCreated, &task)
	return task
}

func (s *apiSuite) createSubject(userID, name string) dto.SubjectItem {
	var subject dto.SubjectItem
	s.decode(s.call(userID, http.MethodPost, "/api/subjects", map[string]any{"name": name}), http.StatusCreated, &subject)
	return subject
}

func (s *apiSuite) listTasks(userID, view string) []dto.TaskItem {
	var tasks []dto.TaskItem
	s.decode(s.call(userID, http.MethodGet, "/api/tasks?view="+view, nil), http.StatusOK, &tasks)
	return tasks
}

func (s *apiSuite) TestHealthIsPublic() {
	rec := s.call("", http.MethodGet, "/api/health", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.call("", http.MethodGet, "/metrics", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Contains(rec.Body.String(), "taskhub_http_requests_total")
}

func (s *apiSuite) TestProtectedRoutesRequireToken() {
	s.requireError(s.call("", http.MethodGet, "/api/tasks", nil), http.StatusUnauthorized, "Missing authorization token")

	s.requireError(s.call("", http.MethodGet, "/api/dashboard", nil), http.StatusUnauthorized, "Missing authorization token")

	expired := token(aliceID, time.Now().Add(-time.Minute))
	rec := s.callWithToken(expired, http.MethodGet, "/api/tasks")
	s.requireError(rec, http.StatusUnauthorized, "Authorization token has expired")

	rec = s.callWithToken("not-a-jwt", http.MethodGet, "/api/tasks")
	s.requireError(rec, http.StatusUnauthorized, "Invalid authorization token")
}

func (s *apiSuite) TestTaskLifecycle() {
	urgent := s.createTask(aliceID, map[string]any{"title": "Exam prep", "due_date": "2026-03-11", "difficulty": "hard"})
	late := s.createTask(aliceID, map[string]any{"title": "Homework", "due_date": "2026-03-09", "due_time": "18:00", "difficulty": "easy"})
	later := s.createTask(aliceID, map[string]any{"title": "Thesis draft", "due_date": "2026-04-30", "difficulty": "medium"})

	s.Require().Equal(1, urgent.Priority)
	s.Require().Equal(domain.DefaultDueTime, urgent.DueTime)
	s.Require().Equal(2, late.Priority)
	s.Require().True(late.Overdue)
	s.Require().Equal(3, later.Priority)

	s.Require().Len(s.listTasks(aliceID, "all"), 3)
	overdue := s.listTasks(aliceID, "overdue")
	s.Require().Len(overdue, 1)
	s.Require().Equal(late.ID, overdue[0].ID)

	var toggled dto.TaskItem
	s.decode(s.call(aliceID, http.MethodPost, "/api/tasks/"+late.ID+"/toggle", nil), http.StatusOK, &toggled)
	s.Require().True(toggled.Completed)
	s.Require().False(toggled.Overdue)
	s.Require().Equal(2, toggled.Priority)
	s.Require().Empty(s.listTasks(aliceID, "overdue"))
	s.Require().Len(s.listTasks(aliceID, "completed"), 1)
	s.Require().Len(s.listTasks(aliceID, "pending"), 2)

	var edited dto.TaskItem
	s.decode(s.call(aliceID, http.MethodPatch, "/api/tasks/"+urgent.ID, map[string]any{"difficulty": "easy"}), http.StatusOK, &edited)
	s.Require().Equal(2, edited.Priority)

	s.decode(s.call(aliceID, http.MethodPatch, "/api/tasks/"+later.ID, map[string]any{"title": "Thesis outline"}), http.StatusOK, &edited)
	s.Require().Equal("Thesis outline", edited.Title)
	s.Require().Equal(3, edited.Priority)

	var dashboard dto.DashboardResponse
	s.decode(s.call(aliceID, http.MethodGet, "/api/dashboard", nil), http.StatusOK, &dashboard)
	s.Require().Equal(3, dashboard.Total)
	s.Require().Equal(2, dashboard.Pending)
	s.Require().Equal(1, dashboard.Completed)
	s.Require().Equal(0, dashboard.Overdue)
	s.Require().Equal(dto.PriorityCount{Priority: 2, Count: 2}, dashboard.ByPriority[1])
	s.Require().Equal(dto.DifficultyCount{Difficulty: "easy", Count: 2}, dashboard.ByDifficulty[0])
	s.Require().Equal(1, dashboard.Daily[len(dashboard.Daily)-1].Count)
	s.Require().Equal(1, dashboard.Weekly[len(dashboard.Weekly)-1].Count)
	s.Require().Len(dashboard.Upcoming, 2)
	s.Require().Equal(urgent.ID, dashboard.Upcoming[0].ID)

	rec := s.call(aliceID, http.MethodDelete, "/api/tasks/"+later.ID, nil)
	s.Require().Equal(http.StatusNoContent, rec.Code)
	s.requireError(s.call(aliceID, http.MethodGet, "/api/tasks/"+later.ID, nil), http.StatusNotFound, "Task not found")
	s.Require().Len(s.listTasks(aliceID, "all"), 2)
}

func (s *apiSuite) TestTasksAreScopedToOwner() {
	task := s.createTask(aliceID, map[string]any{"title": "Private", "due_date": "2026-03-20", "difficulty": "medium"})

	s.requireError(s.call(bobID, http.MethodGet, "/api/tasks/"+task.ID, nil), http.StatusNotFound, "Task not found")
	s.requireError(s.call(bobID, http.MethodDelete, "/api/tasks/"+task.ID, nil), http.StatusNotFound, "Task not found")
	s.Require().Empty(s.listTasks(bobID, "all"))
	s.Require().Len(s.listTasks(aliceID, "all"), 1)
}

func (s *apiSuite) TestTaskReferencesMustExist() {
	rec := s.call(aliceID, http.MethodPost, "/api/tasks", map[string]any{
		"title":      "Orphan",
		"due_date":   "2026-03-20",
		"difficulty": "easy",
		"subject_id": "11111111-2222-4333-8444-555555555555",
	})
	s.requireError(rec, http.StatusNotFound, "Subject not found")

	subject := s.createSubject(bobID, "Fisica")
	rec = s.call(aliceID, http.MethodPost, "/api/tasks", map[string]any{
		"title":      "Foreign subject",
		"due_date":   "2026-03-20",
		"difficulty": "easy",
		"subject_id": subject.ID,
	})
	s.requireError(rec, http.StatusNotFound, "Subject not found")
}

func (s *apiSuite) TestRefreshReloadsExternalWrites() {
	task := s.createTask(aliceID, map[string]any{"title": "Original", "due_date": "2026-03-20", "difficulty": "easy"})
	s.Require().Equal("Original", s.listTasks(aliceID, "all")[0].Title)

	_, err := s.DB.Exec(s.DB.Rebind("UPDATE tasks SET title = ? WHERE id = ?"), "Edited elsewhere", task.ID)
	s.Require().NoError(err)
	s.Require().Equal("Original", s.listTasks(aliceID, "all")[0].Title)

	var refreshed []dto.TaskItem
	s.decode(s.call(aliceID, http.MethodPost, "/api/tasks/refresh", nil), http.StatusOK, &refreshed)
	s.Require().Len(refreshed, 1)
	s.Require().Equal("Edited elsewhere", refreshed[0].Title)
}

func (s *apiSuite) TestSubjectsAndProfessors() {
	subject := s.createSubject(aliceID, "Analisi I")
	s.requireError(s.call(aliceID, http.MethodPost, "/api/subjects", map[string]any{"name": "analisi i"}), http.StatusConflict, "A subject with this name already exists")
	s.createSubject(bobID, "Analisi I")

	s.requireError(s.call(aliceID, http.MethodPost, "/api/professors", map[string]any{"name": "Rossi", "tax_code": "ABC"}), http.StatusBadRequest, "Invalid tax code")

	var professor dto.ProfessorItem
	s.decode(s.call(aliceID, http.MethodPost, "/api/professors", map[string]any{"name": "Maria Rossi", "tax_code": "rssmra80a41h501u"}), http.StatusCreated, &professor)
	s.Require().Equal("RSSMRA80A41H501U", *professor.TaxCode)
	s.requireError(s.call(aliceID, http.MethodPost, "/api/professors", map[string]any{"name": "Other", "tax_code": "RSSMRA80A41H501U"}), http.StatusConflict, "A professor with this tax code already exists")

	var assigned dto.SubjectItem
	s.decode(s.call(aliceID, http.MethodPut, "/api/subjects/"+subject.ID+"/professor", map[string]any{"professor_id": professor.ID}), http.StatusOK, &assigned)
	s.Require().Equal(professor.ID, *assigned.ProfessorID)
	s.Require().Equal(1, s.count("SELECT COUNT(*) FROM professor_subjects WHERE professor_id = ? AND subject_id = ?", professor.ID, subject.ID))

	s.requireError(s.call(bobID, http.MethodPut, "/api/subjects/"+subject.ID+"/professor", map[string]any{"professor_id": professor.ID}), http.StatusNotFound, "Subject not found")

	task := s.createTask(aliceID, map[string]any{
		"title":        "Office hours",
		"due_date":     "2026-03-20",
		"difficulty":   "easy",
		"subject_id":   subject.ID,
		"professor_id": professor.ID,
	})
	s.Require().Equal(professor.ID, *task.ProfessorID)

	s.Require().Equal(http.StatusNoContent, s.call(aliceID, http.MethodDelete, "/api/professors/"+professor.ID, nil).Code)

	var subjects []dto.SubjectItem
	s.decode(s.call(aliceID, http.MethodGet, "/api/subjects", nil), http.StatusOK, &subjects)
	s.Require().Len(subjects, 1)
	s.Require().Nil(subjects[0].ProfessorID)
	s.Require().Equal(0, s.count("SELECT COUNT(*) FROM professor_subjects WHERE professor_id = ?", professor.ID))

	var reloaded dto.TaskItem
	s.decode(s.call(aliceID, http.MethodGet, "/api/tasks/"+task.ID, nil), http.StatusOK, &reloaded)
	s.Require().Nil(reloaded.ProfessorID)
	s.Require().Equal(subject.ID, *reloaded.SubjectID)
}

func (s *apiSuite) TestScheduleRejectsOverlaps() {
	subject := s.createSubject(aliceID, "Chimica")
	entry := func(start, end string) map[string]any {
		return map[string]any{"subject_id": subject.ID, "day_of_week": 2, "start_time": start, "end_time": end}
	}

	s.Require().Equal(http.StatusCreated, s.call(aliceID, http.MethodPost, "/api/schedule", entry("09:00", "11:00")).Code)
	s.requireError(s.call(aliceID, http.MethodPost, "/api/schedule", entry("10:00", "12:00")), http.StatusConflict, "The class overlaps another class")
	s.requireError(s.call(aliceID, http.MethodPost, "/api/schedule", entry("12:00", "11:30")), http.StatusBadRequest, "Invalid time range")
	s.Require().Equal(http.StatusCreated, s.call(aliceID, http.MethodPost, "/api/schedule", entry("11:00", "12:00")).Code)
	s.Require().Equal(http.StatusCreated, s.call(aliceID, http.MethodPost, "/api/schedule", entry("07:30", "08:30")).Code)
	s.Require().Equal(http.StatusCreated, s.call(bobID, http.MethodPost, "/api/schedule", map[string]any{
		"subject_id": s.createSubject(bobID, "Chimica").ID, "day_of_week": 2, "start_time": "09:30", "end_time": "10:30",
	}).Code)

	var week []dto.ScheduleDay
	s.decode(s.call(aliceID, http.MethodGet, "/api/schedule", nil), http.StatusOK, &week)
	s.Require().Len(week, 7)
	tuesday := week[1]
	s.Require().Equal(2, tuesday.DayOfWeek)
	s.Require().Len(tuesday.Entries, 3)
	s.Require().Equal("07:30", tuesday.Entries[0].StartTime)
	s.Require().Equal("09:00", tuesday.Entries[1].StartTime)
	s.Require().Equal("11:00", tuesday.Entries[2].StartTime)

	var moved dto.ScheduleEntryItem
	s.decode(s.call(aliceID, http.MethodPatch, "/api/schedule/"+tuesday.Entries[0].ID, map[string]any{"day_of_week": 5}), http.StatusOK, &moved)
	s.Require().Equal(5, moved.DayOfWeek)
}

func (s *apiSuite) TestNotes() {
	subject := s.createSubject(aliceID, "Storia")

	var first, second dto.NoteItem
	s.decode(s.call(aliceID, http.MethodPost, "/api/notes", map[string]any{"title": "General", "content": "misc"}), http.StatusCreated, &first)
	s.decode(s.call(aliceID, http.MethodPost, "/api/notes", map[string]any{"title": "Rome", "content": "republic", "subject_id": subject.ID}), http.StatusCreated, &second)

	var all, filtered []dto.NoteItem
	s.decode(s.call(aliceID, http.MethodGet, "/api/notes", nil), http.StatusOK, &all)
	s.Require().Len(all, 2)
	s.decode(s.call(aliceID, http.MethodGet, "/api/notes?subject_id="+subject.ID, nil), http.StatusOK, &filtered)
	s.Require().Len(filtered, 1)
	s.Require().Equal(second.ID, filtered[0].ID)

	var updated dto.NoteItem
	s.decode(s.call(aliceID, http.MethodPatch, "/api/notes/"+first.ID, map[string]any{"content": "updated"}), http.StatusOK, &updated)
	s.Require().Equal("updated", updated.Content)
	s.Require().Equal("General", updated.Title)

	s.Require().Equal(http.StatusNoContent, s.call(aliceID, http.MethodDelete, "/api/notes/"+first.ID, nil).Code)
	s.requireError(s.call(aliceID, http.MethodGet, "/api/notes/"+first.ID, nil), http.StatusNotFound, "Note not found")
	s.requireError(s.call(bobID, http.MethodGet, "/api/notes/"+second.ID, nil), http.StatusNotFound, "Note not found")
}

func (s *apiSuite) TestSessionLifecycle() {
	s.createTask(aliceID, map[string]any{"title": "Warmup", "due_date": "2026-03-20", "difficulty": "easy"})

	rec := s.call(aliceID, http.MethodGet, "/api/session", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().JSONEq(`{"user_id":"`+aliceID+`","profile":null}`, rec.Body.String())
	s.Require().Equal(1, s.store.Len())

	s.requireError(s.call(aliceID, http.MethodGet, "/api/profile", nil), http.StatusNotFound, "Profile not found")

	var profile dto.ProfileItem
	s.decode(s.call(aliceID, http.MethodPut, "/api/profile", map[string]any{"full_name": "Alice Verdi", "university": "UniTo"}), http.StatusOK, &profile)
	s.Require().Equal("Alice Verdi", profile.FullName)
	s.decode(s.call(aliceID, http.MethodPut, "/api/profile", map[string]any{"full_name": "Alice M. Verdi"}), http.StatusOK, &profile)

	var session dto.SessionResponse
	s.decode(s.call(aliceID, http.MethodGet, "/api/session", nil), http.StatusOK, &session)
	s.Require().NotNil(session.Profile)
	s.Require().Equal("Alice M. Verdi", session.Profile.FullName)
	s.Require().Nil(session.Profile.University)

	s.Require().Equal(http.StatusNoContent, s.call(aliceID, http.MethodDelete, "/api/session", nil).Code)
	s.Require().Equal(0, s.store.Len())
}

func (s *apiSuite) TestMutationsPublishChangeEvents() {
	events := s.subscribe(aliceID)

	task := s.createTask(aliceID, map[string]any{"title": "Notify", "due_date": "2026-03-20", "difficulty": "easy"})

	select {
	case event := <-events:
		s.Require().Equal(domain.ChangeCreated, event.Type)
		s.Require().Equal(domain.EntityTask, event.Entity)
		s.Require().Equal(task.ID, event.EntityID)
		s.Require().Equal(aliceID, event.UserID)
		s.Require().Equal("test-instance", event.Origin)
	case <-time.After(time.Second):
		s.Fail("expected a change event")
	}
}

func (s *apiSuite) TestRemoteChangesInvalidateStore() {
	s.createTask(aliceID, map[string]any{"title": "Cached", "due_date": "2026-03-20", "difficulty": "easy"})
	s.Require().Len(s.listTasks(aliceID, "all"), 1)

	_, err := s.DB.Exec(s.DB.Rebind("UPDATE tasks SET title = ? WHERE user_id = ?"), "Changed remotely", aliceID)
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	feed, stop := s.broker.Subscribe("")
	defer stop()
	go s.store.Watch(ctx, feed, s.broker.Origin())

	s.broker.Deliver(domain.ChangeEvent{Type: domain.ChangeUpdated, Entity: domain.EntityTask, UserID: aliceID, Origin: "other-instance"})

	s.Require().Eventually(func() bool {
		rec := s.call(aliceID, http.MethodGet, "/api/tasks", nil)
		return rec.Code == http.StatusOK && strings.Contains(rec.Body.String(), "Changed remotely")
	}, time.Second, 10*time.Millisecond)
}

func (s *apiSuite) count(query string, args ...any) int {
	var n int
	s.Require().NoError(s.DB.Get(&n, s.DB.Rebind(query), args...))
	return n
}

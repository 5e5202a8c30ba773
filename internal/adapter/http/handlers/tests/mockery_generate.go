package tests

// Mock generation for handler tests. The checked-in mocks in mocks_test.go
// follow the same shape.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name "TaskService|SubjectService|ProfessorService|ScheduleService|NoteService|ProfileService" --dir ../../../../core/ports --output ./mocks --outpkg mocks --with-expecter

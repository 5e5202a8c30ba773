package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"taskhub/internal/adapter/http/handlers"
	"taskhub/internal/adapter/http/middleware"
)

type Handlers struct {
	Health    *handlers.HealthHandler
	Task      *handlers.TaskHandler
	Subject   *handlers.SubjectHandler
	Professor *handlers.ProfessorHandler
	Schedule  *handlers.ScheduleHandler
	Note      *handlers.NoteHandler
	Profile   *handlers.ProfileHandler
	Events    *handlers.EventsHandler
}

// RegisterRoutes mounts the API. Everything under /api except the health
// checks requires a bearer token signed with jwtSecret.
func RegisterRoutes(r *gin.Engine, h Handlers, jwtSecret string) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
	}

	secured := api.Group("")
	secured.Use(middleware.AuthMiddleware(jwtSecret))
	{
		secured.GET("/session", h.Profile.Session)
		secured.DELETE("/session", h.Profile.EndSession)
		secured.GET("/profile", h.Profile.GetProfile)
		secured.PUT("/profile", h.Profile.UpsertProfile)

		secured.GET("/tasks", h.Task.ListTasks)
		secured.POST("/tasks", h.Task.CreateTask)
		secured.POST("/tasks/refresh", h.Task.RefreshTasks)
		secured.GET("/tasks/:id", h.Task.GetTask)
		secured.PATCH("/tasks/:id", h.Task.UpdateTask)
		secured.DELETE("/tasks/:id", h.Task.DeleteTask)
		secured.POST("/tasks/:id/toggle", h.Task.ToggleTask)
		secured.GET("/dashboard", h.Task.Dashboard)

		secured.GET("/subjects", h.Subject.ListSubjects)
		secured.POST("/subjects", h.Subject.CreateSubject)
		secured.PATCH("/subjects/:id", h.Subject.UpdateSubject)
		secured.DELETE("/subjects/:id", h.Subject.DeleteSubject)
		secured.PUT("/subjects/:id/professor", h.Subject.AssignProfessor)

		secured.GET("/professors", h.Professor.ListProfessors)
		secured.POST("/professors", h.Professor.CreateProfessor)
		secured.PATCH("/professors/:id", h.Professor.UpdateProfessor)
		secured.DELETE("/professors/:id", h.Professor.DeleteProfessor)

		secured.GET("/schedule", h.Schedule.WeeklySchedule)
		secured.POST("/schedule", h.Schedule.CreateEntry)
		secured.PATCH("/schedule/:id", h.Schedule.UpdateEntry)
		secured.DELETE("/schedule/:id", h.Schedule.DeleteEntry)

		secured.GET("/notes", h.Note.ListNotes)
		secured.POST("/notes", h.Note.CreateNote)
		secured.GET("/notes/:id", h.Note.GetNote)
		secured.PATCH("/notes/:id", h.Note.UpdateNote)
		secured.DELETE("/notes/:id", h.Note.DeleteNote)

		secured.GET("/events", h.Events.Stream)
	}
}

package apierrors

const (
	MsgInvalidID    = "invalidID"
	MsgMissingToken = "missingToken"
	MsgInvalidToken = "invalidToken"
	MsgExpiredToken = "expiredToken"

	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidTaskView    = "invalidTaskView"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailListTasks      = "failListTasks"
	MsgFailGetTask        = "failGetTask"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailToggleTask     = "failToggleTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailRefreshTasks   = "failRefreshTasks"
	MsgFailDashboard      = "failDashboard"

	MsgInvalidSubjectPayload = "invalidSubjectPayload"
	MsgSubjectNotFound       = "subjectNotFound"
	MsgDuplicateSubject      = "duplicateSubject"
	MsgFailListSubjects      = "failListSubjects"
	MsgFailCreateSubject     = "failCreateSubject"
	MsgFailUpdateSubject     = "failUpdateSubject"
	MsgFailDeleteSubject     = "failDeleteSubject"
	MsgFailAssignProfessor   = "failAssignProfessor"

	MsgInvalidProfessorPayload = "invalidProfessorPayload"
	MsgProfessorNotFound       = "professorNotFound"
	MsgDuplicateProfessor      = "duplicateProfessor"
	MsgInvalidTaxCode          = "invalidTaxCode"
	MsgFailListProfessors      = "failListProfessors"
	MsgFailCreateProfessor     = "failCreateProfessor"
	MsgFailUpdateProfessor     = "failUpdateProfessor"
	MsgFailDeleteProfessor     = "failDeleteProfessor"

	MsgInvalidSchedulePayload = "invalidSchedulePayload"
	MsgScheduleEntryNotFound  = "scheduleEntryNotFound"
	MsgScheduleConflict       = "scheduleConflict"
	MsgInvalidTimeRange       = "invalidTimeRange"
	MsgFailListSchedule       = "failListSchedule"
	MsgFailCreateSchedule     = "failCreateSchedule"
	MsgFailUpdateSchedule     = "failUpdateSchedule"
	MsgFailDeleteSchedule     = "failDeleteSchedule"

	MsgInvalidNotePayload = "invalidNotePayload"
	MsgNoteNotFound       = "noteNotFound"
	MsgFailListNotes      = "failListNotes"
	MsgFailGetNote        = "failGetNote"
	MsgFailCreateNote     = "failCreateNote"
	MsgFailUpdateNote     = "failUpdateNote"
	MsgFailDeleteNote     = "failDeleteNote"

	MsgInvalidProfilePayload = "invalidProfilePayload"
	MsgProfileNotFound       = "profileNotFound"
	MsgFailGetSession        = "failGetSession"
	MsgFailEndSession        = "failEndSession"
	MsgFailGetProfile        = "failGetProfile"
	MsgFailUpsertProfile     = "failUpsertProfile"
)

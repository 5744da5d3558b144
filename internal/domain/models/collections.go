// internal/domain/models/collections.go
package models

// Collection names. The database holds documents migrated from the legacy
// school app, so collection and field names keep their historical spelling.
const (
	CollPageStats           = "page_stats"
	CollUsers               = "users"
	CollTeacherLeaveRecords = "teacherLeaveRecords"
	CollCourses             = "courses"
	CollExams               = "exams"
	CollQuizHistory         = "quizHistory"
	CollEnrolledCourses     = "enrolledCourses"
	CollHistoryCertificates = "history_certificates"
)

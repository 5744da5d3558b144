// internal/app/features/reports/routes.go
package reports

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter mounted under /reports.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Route("/leave", func(rr chi.Router) {
		rr.Get("/teachers", h.ServeLeaveTotals)
		rr.Get("/rollup", h.ServeLeaveRollup)
		rr.Get("/rollup.xlsx", h.ServeLeaveRollupXLSX)
		rr.Get("/audit", h.ServeLeaveAudit)
		rr.Get("/subjects/{subjectID}", h.ServeSubjectLeave)
	})

	r.Get("/students/by-teacher", h.ServeStudentsByTeacher)
	r.Get("/students/by-teacher.xlsx", h.ServeStudentsByTeacherXLSX)
	r.Get("/enrollments/by-teacher", h.ServeEnrollmentsByTeacher)

	r.Get("/quiz", h.ServeQuiz)
	r.Get("/quiz.xlsx", h.ServeQuizXLSX)

	r.Get("/certificates", h.ServeCertificates)
	r.Get("/certificates/{source}/{id}", h.ServeCertificate)

	return r
}

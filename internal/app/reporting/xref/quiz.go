// internal/app/reporting/xref/quiz.go
package xref

import (
	"fmt"

	"github.com/dalemusser/schoolreports/internal/domain/models"
)

// NoScore marks a course the student has not attempted.
const NoScore = "-"

// QuizCell is one course column of a student's row.
type QuizCell struct {
	CourseID   string `json:"courseId"`
	CourseName string `json:"courseName"`
	Score      string `json:"score"`
}

// ResolveQuizRow returns one cell per course, in course order. A course with
// an attempt on its exam shows "score/total"; otherwise NoScore. When a
// student has several attempts on one exam, the first in history wins.
// Only history entries belonging to student are considered; unattributed
// attempts count for nobody.
func ResolveQuizRow(student models.StudentProfile, courses []models.CourseFact, history []models.QuizHistoryFact) []QuizCell {
	byExam := make(map[string]models.QuizHistoryFact, len(history))
	for _, h := range history {
		if h.StudentID != student.ID {
			continue
		}
		if _, seen := byExam[h.ExamID]; !seen {
			byExam[h.ExamID] = h
		}
	}

	cells := make([]QuizCell, len(courses))
	for i, c := range courses {
		cells[i] = QuizCell{CourseID: c.ID, CourseName: c.Title, Score: NoScore}
		if c.ExamID == "" {
			continue
		}
		if h, ok := byExam[c.ExamID]; ok {
			cells[i].Score = fmt.Sprintf("%d/%d", h.Score, h.TotalQuestions)
		}
	}
	return cells
}

// QuizFilter narrows the matrix. Empty fields match everything.
type QuizFilter struct {
	TeacherID string
	Level     string
}

// QuizRow is one student in the matrix.
type QuizRow struct {
	StudentID   string     `json:"studentId"`
	StudentName string     `json:"studentName"`
	Level       string     `json:"educationLevel"`
	Results     []QuizCell `json:"results"`
}

// QuizMatrix is students by courses.
type QuizMatrix struct {
	Courses []models.CourseFact `json:"courses"`
	Rows    []QuizRow           `json:"rows"`
}

// BuildQuizMatrix selects courses at the filter level and students of the
// filter teacher and level, then resolves every row against the history.
// Rows follow student order; every row has one cell per selected course.
func BuildQuizMatrix(students []models.StudentProfile, courses []models.CourseFact, history []models.QuizHistoryFact, f QuizFilter) QuizMatrix {
	level := models.NormalizeLevel(f.Level)

	var cols []models.CourseFact
	for _, c := range courses {
		if level == "" || models.NormalizeLevel(c.EducationLevel) == level {
			cols = append(cols, c)
		}
	}

	byStudent := map[string][]models.QuizHistoryFact{}
	for _, h := range history {
		byStudent[h.StudentID] = append(byStudent[h.StudentID], h)
	}

	m := QuizMatrix{Courses: cols, Rows: []QuizRow{}}
	for _, s := range students {
		if f.TeacherID != "" && (s.TeacherID == nil || *s.TeacherID != f.TeacherID) {
			continue
		}
		if level != "" && models.NormalizeLevel(s.EducationLevel) != level {
			continue
		}
		lv := s.EducationLevel
		if lv == "" {
			lv = "N/A"
		}
		m.Rows = append(m.Rows, QuizRow{
			StudentID:   s.ID,
			StudentName: s.DisplayName(),
			Level:       lv,
			Results:     ResolveQuizRow(s, cols, byStudent[s.ID]),
		})
	}
	return m
}

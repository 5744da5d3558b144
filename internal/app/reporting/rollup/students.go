// internal/app/reporting/rollup/students.go
package rollup

import "github.com/dalemusser/schoolreports/internal/domain/models"

// LevelCounts splits a student count by education level. Other holds
// students whose level is missing or not one of the three known levels;
// they still count toward Total.
type LevelCounts struct {
	Primary        int `json:"primary"`
	LowerSecondary int `json:"lowerSecondary"`
	UpperSecondary int `json:"upperSecondary"`
	Other          int `json:"other"`
	Total          int `json:"total"`
}

// Add counts one student at level.
func (c *LevelCounts) Add(level string) {
	switch models.NormalizeLevel(level) {
	case models.LevelPrimary:
		c.Primary++
	case models.LevelLowerSecondary:
		c.LowerSecondary++
	case models.LevelUpperSecondary:
		c.UpperSecondary++
	default:
		c.Other++
	}
	c.Total++
}

// Plus returns the elementwise sum of c and o.
func (c LevelCounts) Plus(o LevelCounts) LevelCounts {
	return LevelCounts{
		Primary:        c.Primary + o.Primary,
		LowerSecondary: c.LowerSecondary + o.LowerSecondary,
		UpperSecondary: c.UpperSecondary + o.UpperSecondary,
		Other:          c.Other + o.Other,
		Total:          c.Total + o.Total,
	}
}

// StudentRollup is the result of GroupStudentsByTeacherAndLevel.
type StudentRollup struct {
	// ByTeacher has one entry per teacher passed in, including teachers
	// with no students.
	ByTeacher map[string]LevelCounts `json:"byTeacher"`
	// Unclassified counts students with no teacher id, or one that does
	// not match any teacher. They are not part of GrandTotal.
	Unclassified LevelCounts `json:"unclassified"`
	// GrandTotal is the elementwise sum of ByTeacher.
	GrandTotal LevelCounts `json:"grandTotal"`
}

// GroupStudentsByTeacherAndLevel counts students per assigned teacher and
// education level.
func GroupStudentsByTeacherAndLevel(students []models.StudentProfile, teachers []models.TeacherProfile) StudentRollup {
	out := StudentRollup{ByTeacher: make(map[string]LevelCounts, len(teachers))}
	for _, t := range teachers {
		out.ByTeacher[t.ID] = LevelCounts{}
	}

	for _, s := range students {
		if s.TeacherID == nil {
			out.Unclassified.Add(s.EducationLevel)
			continue
		}
		c, ok := out.ByTeacher[*s.TeacherID]
		if !ok {
			out.Unclassified.Add(s.EducationLevel)
			continue
		}
		c.Add(s.EducationLevel)
		out.ByTeacher[*s.TeacherID] = c
	}

	for _, c := range out.ByTeacher {
		out.GrandTotal = out.GrandTotal.Plus(c)
	}
	return out
}

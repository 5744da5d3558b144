// internal/domain/models/course.go
package models

// CourseFact is a course with its attached exam.
type CourseFact struct {
	ID             string `bson:"_id" json:"id"`
	Title          string `bson:"title" json:"title"`
	ExamID         string `bson:"examId,omitempty" json:"examId,omitempty"`
	EducationLevel string `bson:"educationLevel,omitempty" json:"educationLevel,omitempty"`
	TeacherName    string `bson:"teacherName,omitempty" json:"teacherName,omitempty"`
}

// EnrollmentFact records that a student is enrolled in a course.
type EnrollmentFact struct {
	ID          string `bson:"_id" json:"id"`
	StudentID   string `bson:"userId" json:"studentId"`
	CourseID    string `bson:"courseId" json:"courseId"`
	SubjectName string `bson:"subjectName,omitempty" json:"subjectName,omitempty"`
	TeacherName string `bson:"teacherName,omitempty" json:"teacherName,omitempty"`
}

package domain

// GradeCategory is one grading bucket of a course (e.g. "Midterm", 30%).
// CurrentScore stays nil until the student records a score for the bucket.
type GradeCategory struct {
	ID           string
	CourseID     string
	Category     string
	Weight       float64
	CurrentScore *float64
}

package contract

// GradeProjection is the computed standing for one course.
type GradeProjection struct {
	CourseID      string
	WeightedGrade float64
	Letter        string

	// What-if simulation. Zero-valued when no hypothetical was requested
	// or no exam-like category exists to substitute into.
	WhatIfGrade    float64
	WhatIfLetter   string
	WhatIfCategory string
}

package dto

type AssessmentInput struct {
	Name     string  `json:"name" validate:"required,max=50"`
	MaxScore float64 `json:"max_score" validate:"required,gt=0,lte=100"`
}

// BatchAssessmentRequest defines a class's continuous assessments and its
// optional end-of-term exam in one shot.
type BatchAssessmentRequest struct {
	ClassID               uint              `json:"class_id" validate:"required,gt=0"`
	ContinuousAssessments []AssessmentInput `json:"continuous_assessments" validate:"required,min=1,dive"`
	Exam                  *AssessmentInput  `json:"exam" validate:"omitempty"`
}

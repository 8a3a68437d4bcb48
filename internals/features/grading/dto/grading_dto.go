package dto

// GradeInput is one [min,max] → letter-grade mapping in a creation request.
// Zero-width ranges (min == max) are legal.
type GradeInput struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Grade  string  `json:"grade" validate:"required,max=10"`
	Remark string  `json:"remark" validate:"max=255"`
}

type CreateGradingSchemeRequest struct {
	Name        string       `json:"name" validate:"required,max=255"`
	UsePosition bool         `json:"use_position"`
	ClassIDs    []uint       `json:"class_ids" validate:"required,min=1,dive,gt=0"`
	Grades      []GradeInput `json:"grades" validate:"required,min=1,dive"`
}

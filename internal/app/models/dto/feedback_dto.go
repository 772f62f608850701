package dto

import "github.com/rhydam1003/demo-erp/internal/app/models"

// SubmitFeedbackRequest carries one course's answer arrays. Array lengths
// and rating bounds are validated against the fixed question sets by the
// service layer.
type SubmitFeedbackRequest struct {
	CourseID       int64   `json:"courseId" binding:"required,min=1"`
	CourseAnswers  []int32 `json:"courseAnswers" binding:"required"`
	TeacherAnswers []int32 `json:"teacherAnswers" binding:"required"`
}

// FeedbackResponse wraps a single feedback row. Feedback is null when the
// student has not submitted for the course yet.
type FeedbackResponse struct {
	Feedback *models.Feedback `json:"feedback"`
}

// SubmissionResponse wraps the caller's final-submission row, or null when
// the student has never finalized.
type SubmissionResponse struct {
	Submission *models.FeedbackSubmission `json:"submission"`
}

// FinalSubmitResponse is returned when the final submit succeeds
type FinalSubmitResponse struct {
	Message    string                     `json:"message"`
	Submission *models.FeedbackSubmission `json:"submission"`
}

// QuestionsResponse lists the fixed question sets feedback answers are
// positional against.
type QuestionsResponse struct {
	CourseQuestions  []string `json:"courseQuestions"`
	TeacherQuestions []string `json:"teacherQuestions"`
}

package models

// The question sets are fixed for every course in a term. Answer arrays in
// feedback rows are positional against these lists, so their lengths drive
// server-side validation.

// CourseQuestions are the Likert-scale questions asked about the course itself
var CourseQuestions = []string{
	"The syllabus was covered completely and systematically",
	"The course content was relevant and up-to-date",
	"Assignments and practicals helped in better understanding",
	"Study materials provided were helpful",
	"The pace of the course was appropriate",
	"Learning objectives were clearly defined",
	"Course workload was manageable",
	"Overall course quality was excellent",
}

// TeacherQuestions are the Likert-scale questions asked about the teacher
var TeacherQuestions = []string{
	"Teacher explains concepts clearly and effectively",
	"Teacher is punctual and regular to classes",
	"Teacher encourages student participation",
	"Teacher is approachable for doubts and queries",
	"Teacher uses effective teaching methods",
	"Teacher shows enthusiasm for the subject",
	"Teacher provides constructive feedback",
	"Teacher's overall performance is excellent",
}

// Rating bounds for every answer
const (
	RatingMin = 1
	RatingMax = 5
)

package courseRoutes

import (
	controllers "school/controllers/course"
	validators "school/validators/course"

	"github.com/gofiber/fiber/v2"
)

var (
	courseID     = validators.ParamID("id", "courseID", "Course")
	moduleID     = validators.ParamID("id", "moduleID", "Module")
	lessonID     = validators.ParamID("id", "lessonID", "Lesson")
	assignmentID = validators.ParamID("id", "assignmentID", "Assignment")
	submissionID = validators.ParamID("id", "submissionID", "Submission")
	quizID       = validators.ParamID("id", "quizID", "Quiz")
	questionID   = validators.ParamID("id", "questionID", "Question")
	studentID    = validators.ParamID("id", "studentID", "Student")
)

// SetupCourseRoutes sets up student-facing routes: enrollment, submissions and quiz attempts
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	// Enrollment
	courseGroup.Post("/:id/enroll", courseID, validators.EnrollCourse(), controllers.EnrollInCourse)
	courseGroup.Delete("/:id/enroll/:student_id", courseID,
		validators.ParamID("student_id", "studentID", "Student"), controllers.UnenrollFromCourse)
	courseGroup.Get("/:id/students", courseID, controllers.GetCourseStudents)

	// Assignment submissions and grading
	assignmentGroup := app.Group("/assignments")
	assignmentGroup.Post("/:id/submissions", assignmentID, validators.SubmitAssignment(), controllers.SubmitAssignment)
	assignmentGroup.Get("/:id/submissions", assignmentID, controllers.GetAssignmentSubmissions)

	submissionGroup := app.Group("/submissions")
	submissionGroup.Put("/:id/grade", submissionID, validators.GradeSubmission(), controllers.GradeSubmission)

	// Quiz attempts
	quizGroup := app.Group("/quizzes")
	quizGroup.Post("/:id/take", quizID, validators.TakeQuiz(), controllers.TakeQuiz)
	quizGroup.Get("/:id/submissions", quizID, controllers.GetQuizSubmissions)

	// Per-student projections
	studentGroup := app.Group("/students")
	studentGroup.Get("/:id/courses", studentID, controllers.GetStudentCourses)
	studentGroup.Get("/:id/submissions", studentID, controllers.GetStudentSubmissions)
	studentGroup.Get("/:id/quiz-submissions", studentID, controllers.GetStudentQuizSubmissions)
}

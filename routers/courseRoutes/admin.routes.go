package courseRoutes

import (
	controllers "school/controllers/course"
	validators "school/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes sets up catalog authoring routes: users, courses, modules, lessons, assignments, quizzes
func SetupCatalogRoutes(app *fiber.App) {
	app.Post("/users", validators.CreateUser(), controllers.CreateUser)
	app.Post("/categories", validators.CreateCategory(), controllers.CreateCategory)

	// Course CRUD
	courseGroup := app.Group("/courses")
	courseGroup.Post("/", validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Get("/:id", courseID, controllers.GetCourseDetails)
	courseGroup.Post("/:id/modules", courseID, validators.CreateModule(), controllers.CreateModule)

	// Module Management
	moduleGroup := app.Group("/modules")
	moduleGroup.Get("/:id", moduleID, controllers.GetModule)
	moduleGroup.Delete("/:id", moduleID, controllers.DeleteModule)
	moduleGroup.Post("/:id/lessons", moduleID, validators.AddLesson(), controllers.AddLesson)
	moduleGroup.Post("/:id/quiz", moduleID, validators.CreateQuiz(), controllers.CreateQuiz)

	// Lesson Management
	lessonGroup := app.Group("/lessons")
	lessonGroup.Get("/:id", lessonID, controllers.GetLesson)
	lessonGroup.Delete("/:id", lessonID, controllers.DeleteLesson)
	lessonGroup.Post("/:id/assignments", lessonID, validators.CreateAssignment(), controllers.CreateAssignment)
	lessonGroup.Get("/:id/assignments", lessonID, controllers.GetLessonAssignments)

	// Assignment Management
	assignmentGroup := app.Group("/assignments")
	assignmentGroup.Get("/:id", assignmentID, controllers.GetAssignment)
	assignmentGroup.Delete("/:id", assignmentID, controllers.DeleteAssignment)

	// Quiz authoring
	quizGroup := app.Group("/quizzes")
	quizGroup.Get("/:id", quizID, controllers.GetQuiz)
	quizGroup.Post("/:id/questions", quizID, validators.AddQuestion(), controllers.AddQuestion)

	questionGroup := app.Group("/questions")
	questionGroup.Post("/:id/options", questionID, validators.AddAnswerOption(), controllers.AddAnswerOption)
}

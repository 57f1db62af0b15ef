package router

import (
	"quiz-editor/internal/config"
	"quiz-editor/internal/handler"
	"quiz-editor/internal/middleware"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

const bodyLimit = 10 * 1024 * 1024

// NewApp builds the Fiber app with middleware and routes registered.
func NewApp(serverCfg config.ServerConfig, quizHandler *handler.QuizHandler) *fiber.App {
	readTimeout := serverCfg.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 20 * time.Second
	}
	writeTimeout := serverCfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 20 * time.Second
	}

	app := fiber.New(fiber.Config{
		AppName:      "quiz-editor",
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    bodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(middleware.CORS())
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	api.Put("/edit-quiz", quizHandler.EditQuiz)
	api.Get("/quiz/:id", quizHandler.GetQuiz)

	return app
}

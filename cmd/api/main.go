package main

import (
	"log"
	"time"

	config "github.com/chalkroute/teacher_match/configs"
	"github.com/chalkroute/teacher_match/database"
	"github.com/chalkroute/teacher_match/handlers"
	"github.com/chalkroute/teacher_match/identity"
	"github.com/chalkroute/teacher_match/jobs"
	"github.com/chalkroute/teacher_match/notifications"
	"github.com/chalkroute/teacher_match/routes"
	"github.com/chalkroute/teacher_match/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedAdmin()
	database.SeedQuizQuestions()
	database.ConnectRedis()
	notifications.InitEmailService()

	ids := identity.New(config.Config("JWT_SECRET"))

	c := cron.New()
	c.AddFunc("*/5 * * * *", jobs.SendInterviewReminders)
	c.AddFunc("*/5 * * * *", jobs.ExpireStaleJobs)
	c.AddFunc("0 * * * *", jobs.RefreshRecentMatches)
	go c.Start()
	log.Println("✅ Cron jobs scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "ChalkRoute",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		PassLocalsToViews: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "America/New_York",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to the ChalkRoute API",
		})
	})

	authHandler := handlers.NewAuthHandler(ids)
	profileHandler := handlers.NewProfileHandler(ids)
	quizHandler := handlers.NewQuizHandler(ids)
	schoolHandler := handlers.NewSchoolHandler(ids)
	jobHandler := handlers.NewJobHandler(ids)
	matchHandler := handlers.NewMatchHandler(ids)
	applicationHandler := handlers.NewApplicationHandler(ids)
	interviewHandler := handlers.NewInterviewHandler(ids)
	reviewHandler := handlers.NewReviewHandler(ids)
	messagingHandler := handlers.NewMessagingHandler(ids)
	notificationHandler := handlers.NewNotificationHandler(ids)
	adminHandler := handlers.NewAdminHandler(ids)

	routes.AuthRoutes(app, authHandler)
	routes.ProfileRoutes(app, profileHandler, quizHandler, ids)
	routes.SchoolRoutes(app, schoolHandler, ids)
	routes.JobRoutes(app, jobHandler, matchHandler, ids)
	routes.MatchRoutes(app, matchHandler, ids)
	routes.ApplicationRoutes(app, applicationHandler, ids)
	routes.InterviewRoutes(app, interviewHandler, ids)
	routes.ReviewRoutes(app, reviewHandler, ids)
	routes.MessagingRoutes(app, messagingHandler, ids)
	routes.NotificationRoutes(app, notificationHandler, ids)
	routes.UploadRoutes(app, ids)
	routes.AdminRoutes(app, adminHandler, ids)

	go websocket.RunHub()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Println("✅ Server is running on port 8080")
	err := app.Listen(":8080")
	if err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}

package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/KevCav575/crm-simple/auth"
	"github.com/KevCav575/crm-simple/config"
	"github.com/KevCav575/crm-simple/controllers"
	"github.com/KevCav575/crm-simple/middlewares"
	"github.com/KevCav575/crm-simple/models"
	"github.com/KevCav575/crm-simple/repository"
)

func main() {
	// Load environment variables
	godotenv.Load()

	db, err := config.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := models.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	r := SetupRouter(db, auth.NewTokenServiceFromEnv())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

// SetupRouter wires repositories, controllers and routes onto a gin engine.
func SetupRouter(db *gorm.DB, tokens *auth.TokenService) *gin.Engine {
	userRepo := &repository.UserRepository{DB: db}

	authController := &controllers.AuthController{Users: userRepo, Tokens: tokens}
	customerController := &controllers.CustomerController{Repo: &repository.CustomerRepository{DB: db}}
	contactController := &controllers.ContactController{Repo: &repository.ContactRepository{DB: db}}
	dealController := &controllers.DealController{Repo: &repository.DealRepository{DB: db}}
	taskController := &controllers.TaskController{Repo: &repository.TaskRepository{DB: db}}
	dashboardController := &controllers.DashboardController{Repo: &repository.DashboardRepository{DB: db}}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	api := r.Group("/api")
	api.POST("/auth/register", authController.Register)
	api.POST("/auth/login", authController.Login)

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware(tokens, userRepo))
	protected.GET("/auth/user", authController.Me)

	protected.GET("/customers", customerController.List)
	protected.POST("/customers", customerController.Create)
	protected.PUT("/customers/:id", customerController.Update)
	protected.DELETE("/customers/:id", customerController.Delete)

	protected.GET("/contacts", contactController.List)
	protected.POST("/contacts", contactController.Create)
	protected.PUT("/contacts/:id", contactController.Update)
	protected.DELETE("/contacts/:id", contactController.Delete)

	protected.GET("/deals", dealController.List)
	protected.POST("/deals", dealController.Create)
	protected.PUT("/deals/:id", dealController.Update)
	protected.DELETE("/deals/:id", dealController.Delete)

	protected.GET("/tasks", taskController.List)
	protected.POST("/tasks", taskController.Create)
	protected.PUT("/tasks/:id", taskController.Update)
	protected.DELETE("/tasks/:id", taskController.Delete)

	protected.GET("/dashboard", dashboardController.Summary)

	return r
}

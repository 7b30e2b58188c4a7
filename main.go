package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/usecase"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}
}

func setupRouter(db *gorm.DB, serverCfg config.ServerConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.RequestSizeLimiter(serverCfg.MaxRequestSize))
	router.Use(middleware.MetricsMiddleware())

	usersService := &usecase.UsersService{
		UserRepo: repository.GetUserRepo(db),
	}
	notesService := &usecase.NotesService{
		NotesRepo: repository.GetNotesRepo(db),
	}

	usersHandler := handler.NewUsersHandler(usersService)
	notesHandler := handler.NewNotesHandler(notesService)
	healthHandler := handler.NewHealthHandler(db)

	users := router.Group("/users")
	{
		users.POST("/", usersHandler.CreateUser)
		users.GET("/", usersHandler.GetUsers)
		// Serves /users/u{id} and /users/{username}
		users.GET("/:user_id", usersHandler.GetUser)
		users.PUT("/:user_id/update/", usersHandler.UpdateUser)
		users.DELETE("/:user_id/delete/", usersHandler.DeleteUser)

		users.GET("/:user_id/notes/", notesHandler.GetUserNotes)
		users.GET("/:user_id/notes/:note_id", notesHandler.GetNote)
		users.PUT("/:user_id/notes/:note_id/update/", notesHandler.UpdateNote)
		users.DELETE("/:user_id/notes/:note_id/delete/", notesHandler.DeleteNote)
	}

	notes := router.Group("/notes")
	{
		notes.POST("/", notesHandler.CreateNote)
		notes.GET("/", notesHandler.GetNotes)
	}

	router.GET("/health", healthHandler.Status)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

func main() {
	db, err := config.ConnectDatabase(config.LoadDatabaseConfig())
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := repository.SetupSchema(db); err != nil {
		log.Fatalf("Failed to set up schema: %v", err)
	}

	serverCfg := config.LoadServerConfig()
	router := setupRouter(db, serverCfg)

	srv := &http.Server{
		Addr:    ":" + serverCfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	sig := <-signalChan
	log.Printf("Caught signal %s, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server shutdown complete")
}

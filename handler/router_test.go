package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestRouter builds the route table from main over an in-memory store.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := repository.SetupSchema(db); err != nil {
		t.Fatalf("Failed to set up schema: %v", err)
	}

	usersHandler := NewUsersHandler(&usecase.UsersService{
		UserRepo: repository.GetUserRepo(db),
	})
	notesHandler := NewNotesHandler(&usecase.NotesService{
		NotesRepo: repository.GetNotesRepo(db),
	})

	router := gin.New()

	users := router.Group("/users")
	{
		users.POST("/", usersHandler.CreateUser)
		users.GET("/", usersHandler.GetUsers)
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

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doForm(t *testing.T, router *gin.Engine, method, path, form string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var resp utils.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("Response missing data object: %s", w.Body.String())
	}
	return data
}

func parseList(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()

	var resp utils.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	list, ok := resp.Data.([]interface{})
	if !ok {
		t.Fatalf("Response missing data list: %s", w.Body.String())
	}
	return list
}

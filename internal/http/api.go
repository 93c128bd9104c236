package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"exercise-tracker/internal/apperr"
	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users     service.UserService
	exercises service.ExerciseService
	pingStore func(ctx context.Context) error
	logger    *logrus.Logger
}

func NewHandler(users service.UserService, exercises service.ExerciseService, pingStore func(ctx context.Context) error, logger *logrus.Logger) *Handler {
	return &Handler{
		users:     users,
		exercises: exercises,
		pingStore: pingStore,
		logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.POST("/users", h.createUser)
		api.GET("/users", h.listUsers)
		api.POST("/users/:id/exercises", h.addExercise)
		api.GET("/users/:id/logs", h.getLog)
		api.GET("/test", h.testStatus)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

type createUserRequest struct {
	Username string `json:"username" form:"username"`
}

type addExerciseRequest struct {
	Description string     `json:"description" form:"description"`
	Duration    flexString `json:"duration" form:"duration"`
	Date        string     `json:"date" form:"date"`
}

// flexString tolerates JSON numbers where clients historically posted form
// fields, so {"duration": 30} and {"duration": "30"} bind identically.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	if string(data) == "null" {
		*f = ""
		return nil
	}
	*f = flexString(data)
	return nil
}

func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	// Binding failures fall through as an empty username; the service owns
	// the validation message.
	_ = c.ShouldBind(&req)

	user, err := h.users.CreateOrGet(c.Request.Context(), req.Username)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.ListAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(users[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) addExercise(c *gin.Context) {
	var req addExerciseRequest
	_ = c.ShouldBind(&req)

	record, err := h.exercises.AddExercise(
		c.Request.Context(),
		c.Param("id"),
		req.Description,
		string(req.Duration),
		req.Date,
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExerciseResponse{
		ID:          record.User.ID.Hex(),
		Username:    record.User.Username,
		Description: record.Exercise.Description,
		Duration:    record.Exercise.Duration,
		Date:        dateString(record.Exercise.Date),
	})
}

func (h *Handler) getLog(c *gin.Context) {
	log, err := h.exercises.GetLog(
		c.Request.Context(),
		c.Param("id"),
		c.Query("from"),
		c.Query("to"),
		c.Query("limit"),
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	entries := make([]LogEntryResponse, len(log.Entries))
	for i, entry := range log.Entries {
		entries[i] = LogEntryResponse{
			Description: entry.Description,
			Duration:    entry.Duration,
			Date:        dateString(entry.Date),
		}
	}

	c.JSON(http.StatusOK, LogResponse{
		ID:       log.User.ID.Hex(),
		Username: log.User.Username,
		Count:    len(entries),
		Log:      entries,
	})
}

func (h *Handler) testStatus(c *gin.Context) {
	database := "Not connected"
	if h.pingStore != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.pingStore(ctx); err == nil {
			database = "Connected"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Exercise Tracker API is working!",
		"database": database,
	})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": apperr.MessageOf(err)})
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": apperr.MessageOf(err)})
	default:
		h.logger.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}

type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

type ExerciseResponse struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type LogEntryResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type LogResponse struct {
	ID       string             `json:"_id"`
	Username string             `json:"username"`
	Count    int                `json:"count"`
	Log      []LogEntryResponse `json:"log"`
}

func userToResponse(user domain.User) UserResponse {
	return UserResponse{
		Username: user.Username,
		ID:       user.ID.Hex(),
	}
}

// dateString renders timestamps the way the public contract fixed them:
// "Thu Feb 01 2024", day zero-padded.
func dateString(t time.Time) string {
	return t.Format("Mon Jan 02 2006")
}

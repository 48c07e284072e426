package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"isavralabel.com/sikus/internal/model"
	"isavralabel.com/sikus/pkg/apperror"
)

// GetUserID retrieves the authenticated user ID from the context
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	return userID, nil
}

// GetRole retrieves the authenticated user's role from the context
func GetRole(c *gin.Context) (model.Role, error) {
	role, exists := c.Get("user_role")
	if !exists {
		return "", apperror.ErrUnauthorized
	}

	r, ok := role.(model.Role)
	if !ok || !r.Valid() {
		return "", apperror.ErrUnauthorized
	}

	return r, nil
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Internal details stay in the server log, never in the body
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
		c.JSON(code, gin.H{"error": "Server error"})
		return
	}

	c.JSON(code, gin.H{"error": err.Error()})
}

// Pagination is the list envelope metadata shared by reports and users.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

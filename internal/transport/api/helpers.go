package api

import (
	"strconv"

	"github.com/IEVN1001-20001021/api-paso/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

// dateLayout is the wire format for trip and birth dates.
const dateLayout = "2006-01-02"

// getUserIDFromContext reads the current user id placed into the gin context
// by middlewares.AuthRequired. Returns 0 when the value is missing or of an
// unexpected type.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDVal, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDVal.(int64)
	if !ok {
		return 0
	}
	return userID
}

// parseIDParam parses a positive int64 path parameter.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

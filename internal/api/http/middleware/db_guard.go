package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RequireDB fails requests with 503 while the service runs without a
// database. Presence and health stay up; only the DB-backed groups
// sit behind this guard.
func RequireDB(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "database not available",
			})
			return
		}
		c.Next()
	}
}

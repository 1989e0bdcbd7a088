package tests

import (
	"github.com/gin-gonic/gin"

	"github.com/LuisM11/TaskMaster/internal/adapter/http/middleware"
	"github.com/LuisM11/TaskMaster/internal/auth"
)

const testUserID uint64 = 42

// asUser stands in for the auth middleware: it plants an authenticated
// identity the way middleware.AuthMiddleware would after token verification.
func asUser(userID uint64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("identity", auth.Identity{UserID: userID, Username: "tester"})
		c.Next()
	}
}

func testRouter(method, path string, handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Handle(method, path, middleware.LanguageMiddleware(), asUser(testUserID), handler)
	return router
}

package controllers

import (
	"net/http"

	"caltrack/middlewares"
	"caltrack/storage"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *storage.UserStore
}

func NewUserController(users *storage.UserStore) *UserController {
	return &UserController{users: users}
}

// Me returns the caller's own directory record, minus the password.
func (uc *UserController) Me(c *gin.Context) {
	user, err := uc.users.GetByID(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

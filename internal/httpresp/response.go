package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Message answers with a user-visible notice and the page the client should show next.
func Message(c *gin.Context, status int, message, redirect string) {
	c.JSON(status, gin.H{
		"message":  message,
		"redirect": redirect,
	})
}

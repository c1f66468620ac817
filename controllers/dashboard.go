package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KevCav575/crm-simple/middlewares"
	"github.com/KevCav575/crm-simple/repository"
)

type DashboardController struct {
	Repo *repository.DashboardRepository
}

// Summary returns the per-user dashboard numbers and recent-activity feed.
func (ctrl *DashboardController) Summary(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := ctrl.Repo.Summarize(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

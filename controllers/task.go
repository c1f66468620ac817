package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KevCav575/crm-simple/apperrors"
	"github.com/KevCav575/crm-simple/middlewares"
	"github.com/KevCav575/crm-simple/models"
	"github.com/KevCav575/crm-simple/repository"
)

type TaskController struct {
	Repo *repository.TaskRepository
}

func (ctrl *TaskController) List(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tasks, err := ctrl.Repo.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result := make([]gin.H, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, taskJSON(task))
	}
	c.JSON(http.StatusOK, result)
}

func (ctrl *TaskController) Create(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	task, err := ctrl.Repo.Create(userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrReferenceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Related entity not found"})
		case errors.Is(err, apperrors.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, taskJSON(*task))
}

func (ctrl *TaskController) Update(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	var req models.TaskUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	task, err := ctrl.Repo.Update(userID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		case errors.Is(err, apperrors.ErrReferenceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Related entity not found"})
		case errors.Is(err, apperrors.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, taskJSON(*task))
}

func (ctrl *TaskController) Delete(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if err := ctrl.Repo.Delete(userID, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

func taskJSON(task models.TaskView) gin.H {
	return gin.H{
		"id":           task.ID,
		"title":        task.Title,
		"related_type": task.RelatedType,
		"related_id":   task.RelatedID,
		"related_name": task.RelatedName,
		"due_date":     task.DueDate.Format("2006-01-02"),
		"priority":     task.Priority,
		"status":       task.Status,
		"description":  task.Description,
		"created_at":   task.CreatedAt.Format(time.RFC3339),
	}
}

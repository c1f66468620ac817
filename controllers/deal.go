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

type DealController struct {
	Repo *repository.DealRepository
}

func (ctrl *DealController) List(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	deals, err := ctrl.Repo.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result := make([]gin.H, 0, len(deals))
	for _, deal := range deals {
		result = append(result, dealJSON(deal))
	}
	c.JSON(http.StatusOK, result)
}

func (ctrl *DealController) Create(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.DealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	deal, err := ctrl.Repo.Create(userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrReferenceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		case errors.Is(err, apperrors.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, dealJSON(*deal))
}

func (ctrl *DealController) Update(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}

	var req models.DealUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	deal, err := ctrl.Repo.Update(userID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		case errors.Is(err, apperrors.ErrReferenceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		case errors.Is(err, apperrors.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, dealJSON(*deal))
}

func (ctrl *DealController) Delete(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}

	if err := ctrl.Repo.Delete(userID, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deal deleted"})
}

func dealJSON(deal models.DealView) gin.H {
	var closeDate interface{}
	if deal.CloseDate != nil {
		closeDate = deal.CloseDate.Format("2006-01-02")
	}
	return gin.H{
		"id":            deal.ID,
		"title":         deal.Title,
		"value":         deal.Value,
		"stage":         deal.Stage,
		"close_date":    closeDate,
		"notes":         deal.Notes,
		"customer_id":   deal.CustomerID,
		"customer_name": deal.CustomerName,
		"created_at":    deal.CreatedAt.Format(time.RFC3339),
	}
}

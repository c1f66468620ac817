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

type ContactController struct {
	Repo *repository.ContactRepository
}

func (ctrl *ContactController) List(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	contacts, err := ctrl.Repo.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result := make([]gin.H, 0, len(contacts))
	for _, contact := range contacts {
		result = append(result, contactJSON(contact))
	}
	c.JSON(http.StatusOK, result)
}

func (ctrl *ContactController) Create(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	contact, err := ctrl.Repo.Create(userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrReferenceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, contactJSON(*contact))
}

func (ctrl *ContactController) Update(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}

	var req models.ContactUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	contact, err := ctrl.Repo.Update(userID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		case errors.Is(err, apperrors.ErrReferenceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, contactJSON(*contact))
}

func (ctrl *ContactController) Delete(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}

	if err := ctrl.Repo.Delete(userID, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted"})
}

func contactJSON(contact models.ContactView) gin.H {
	return gin.H{
		"id":            contact.ID,
		"name":          contact.Name,
		"position":      contact.Position,
		"email":         contact.Email,
		"phone":         contact.Phone,
		"notes":         contact.Notes,
		"customer_id":   contact.CustomerID,
		"customer_name": contact.CustomerName,
		"created_at":    contact.CreatedAt.Format(time.RFC3339),
	}
}

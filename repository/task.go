package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/KevCav575/crm-simple/apperrors"
	"github.com/KevCav575/crm-simple/models"
)

type TaskRepository struct {
	DB *gorm.DB
}

func (r *TaskRepository) List(userID uint) ([]models.TaskView, error) {
	tasks := []models.Task{}
	if err := r.DB.Where("user_id = ?", userID).Find(&tasks).Error; err != nil {
		return nil, err
	}

	views := []models.TaskView{}
	for _, task := range tasks {
		name, err := r.relatedName(userID, task.RelatedType, task.RelatedID)
		if err != nil {
			return nil, err
		}
		views = append(views, models.TaskView{Task: task, RelatedName: name})
	}
	return views, nil
}

func (r *TaskRepository) Create(userID uint, in models.TaskRequest) (*models.TaskView, error) {
	if in.RelatedType != "" && in.RelatedID != nil && *in.RelatedID != 0 {
		if err := r.checkRelated(userID, in.RelatedType, *in.RelatedID); err != nil {
			return nil, err
		}
	}

	dueDate, err := parseDate(in.DueDate)
	if err != nil {
		return nil, err
	}

	task := models.Task{
		Title:       in.Title,
		RelatedType: in.RelatedType,
		RelatedID:   in.RelatedID,
		DueDate:     dueDate,
		Priority:    in.Priority,
		Status:      in.Status,
		Description: in.Description,
		UserID:      userID,
	}
	if task.Priority == "" {
		task.Priority = "medium"
	}
	if task.Status == "" {
		task.Status = "pending"
	}

	if err := r.DB.Create(&task).Error; err != nil {
		return nil, err
	}

	name, err := r.relatedName(userID, task.RelatedType, task.RelatedID)
	if err != nil {
		return nil, err
	}
	return &models.TaskView{Task: task, RelatedName: name}, nil
}

func (r *TaskRepository) Update(userID, id uint, in models.TaskUpdate) (*models.TaskView, error) {
	var task models.Task
	if err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if in.Title != nil && *in.Title != "" {
		task.Title = *in.Title
	}

	if in.RelatedType != nil || in.RelatedID != nil {
		relatedType := task.RelatedType
		if in.RelatedType != nil {
			relatedType = *in.RelatedType
		}
		relatedID := task.RelatedID
		if in.RelatedID != nil {
			if *in.RelatedID == 0 {
				relatedID = nil
			} else {
				relatedID = in.RelatedID
			}
		}
		if relatedType != "" && relatedID != nil {
			if err := r.checkRelated(userID, relatedType, *relatedID); err != nil {
				return nil, err
			}
		}
		task.RelatedType = relatedType
		task.RelatedID = relatedID
	}

	if in.DueDate != nil && *in.DueDate != "" {
		dueDate, err := parseDate(*in.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = dueDate
	}
	if in.Priority != nil && *in.Priority != "" {
		task.Priority = *in.Priority
	}
	if in.Status != nil && *in.Status != "" {
		task.Status = *in.Status
	}
	if in.Description != nil {
		task.Description = *in.Description
	}

	if err := r.DB.Save(&task).Error; err != nil {
		return nil, err
	}

	name, err := r.relatedName(userID, task.RelatedType, task.RelatedID)
	if err != nil {
		return nil, err
	}
	return &models.TaskView{Task: task, RelatedName: name}, nil
}

func (r *TaskRepository) Delete(userID, id uint) error {
	result := r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// checkRelated verifies the related entity exists and belongs to the user.
// An unknown related_type fails the same way a missing row does.
func (r *TaskRepository) checkRelated(userID uint, relatedType string, relatedID uint) error {
	var count int64
	var err error
	switch relatedType {
	case "customer":
		err = r.DB.Model(&models.Customer{}).Where("id = ? AND user_id = ?", relatedID, userID).Count(&count).Error
	case "contact":
		err = r.DB.Model(&models.Contact{}).Where("id = ? AND user_id = ?", relatedID, userID).Count(&count).Error
	case "deal":
		err = r.DB.Model(&models.Deal{}).Where("id = ? AND user_id = ?", relatedID, userID).Count(&count).Error
	default:
		return apperrors.ErrReferenceNotFound
	}
	if err != nil {
		return err
	}
	if count == 0 {
		return apperrors.ErrReferenceNotFound
	}
	return nil
}

// relatedName resolves the display name of the related entity, scoped to the
// owning user. A dangling or absent reference resolves to an empty string.
func (r *TaskRepository) relatedName(userID uint, relatedType string, relatedID *uint) (string, error) {
	if relatedType == "" || relatedID == nil || *relatedID == 0 {
		return "", nil
	}

	var name string
	var err error
	switch relatedType {
	case "customer":
		var customer models.Customer
		err = r.DB.Where("id = ? AND user_id = ?", *relatedID, userID).First(&customer).Error
		name = customer.Name
	case "contact":
		var contact models.Contact
		err = r.DB.Where("id = ? AND user_id = ?", *relatedID, userID).First(&contact).Error
		name = contact.Name
	case "deal":
		var deal models.Deal
		err = r.DB.Where("id = ? AND user_id = ?", *relatedID, userID).First(&deal).Error
		name = deal.Title
	default:
		return "", nil
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return name, nil
}

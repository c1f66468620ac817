package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/KevCav575/crm-simple/apperrors"
	"github.com/KevCav575/crm-simple/models"
)

type DealRepository struct {
	DB *gorm.DB
}

func (r *DealRepository) List(userID uint) ([]models.DealView, error) {
	deals := []models.DealView{}
	err := r.DB.Model(&models.Deal{}).
		Select("deals.*, customers.name AS customer_name").
		Joins("JOIN customers ON customers.id = deals.customer_id").
		Where("deals.user_id = ?", userID).
		Scan(&deals).Error
	if err != nil {
		return nil, err
	}
	return deals, nil
}

func (r *DealRepository) Create(userID uint, in models.DealRequest) (*models.DealView, error) {
	customer, err := r.ownedCustomer(userID, in.CustomerID)
	if err != nil {
		return nil, err
	}

	deal := models.Deal{
		Title:      in.Title,
		Value:      in.Value,
		Stage:      in.Stage,
		Notes:      in.Notes,
		CustomerID: in.CustomerID,
		UserID:     userID,
	}
	if deal.Stage == "" {
		deal.Stage = "prospect"
	}
	if in.CloseDate != "" {
		closeDate, err := parseDate(in.CloseDate)
		if err != nil {
			return nil, err
		}
		deal.CloseDate = &closeDate
	}

	if err := r.DB.Create(&deal).Error; err != nil {
		return nil, err
	}
	return &models.DealView{Deal: deal, CustomerName: customer.Name}, nil
}

func (r *DealRepository) Update(userID, id uint, in models.DealUpdate) (*models.DealView, error) {
	var deal models.Deal
	if err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&deal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if in.Title != nil && *in.Title != "" {
		deal.Title = *in.Title
	}
	if in.Value != nil {
		deal.Value = *in.Value
	}
	if in.Stage != nil && *in.Stage != "" {
		deal.Stage = *in.Stage
	}
	if in.CloseDate != nil && *in.CloseDate != "" {
		closeDate, err := parseDate(*in.CloseDate)
		if err != nil {
			return nil, err
		}
		deal.CloseDate = &closeDate
	}
	if in.Notes != nil {
		deal.Notes = *in.Notes
	}
	if in.CustomerID != nil && *in.CustomerID != 0 {
		if _, err := r.ownedCustomer(userID, *in.CustomerID); err != nil {
			return nil, err
		}
		deal.CustomerID = *in.CustomerID
	}

	if err := r.DB.Save(&deal).Error; err != nil {
		return nil, err
	}

	customer, err := r.ownedCustomer(userID, deal.CustomerID)
	if err != nil {
		return nil, err
	}
	return &models.DealView{Deal: deal, CustomerName: customer.Name}, nil
}

func (r *DealRepository) Delete(userID, id uint) error {
	result := r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Deal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *DealRepository) ownedCustomer(userID, customerID uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.DB.Where("id = ? AND user_id = ?", customerID, userID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReferenceNotFound
		}
		return nil, err
	}
	return &customer, nil
}

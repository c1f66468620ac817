package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/KevCav575/crm-simple/apperrors"
	"github.com/KevCav575/crm-simple/models"
)

type ContactRepository struct {
	DB *gorm.DB
}

func (r *ContactRepository) List(userID uint) ([]models.ContactView, error) {
	contacts := []models.ContactView{}
	err := r.DB.Model(&models.Contact{}).
		Select("contacts.*, customers.name AS customer_name").
		Joins("JOIN customers ON customers.id = contacts.customer_id").
		Where("contacts.user_id = ?", userID).
		Scan(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *ContactRepository) Create(userID uint, in models.ContactRequest) (*models.ContactView, error) {
	customer, err := r.ownedCustomer(userID, in.CustomerID)
	if err != nil {
		return nil, err
	}

	contact := models.Contact{
		Name:       in.Name,
		Position:   in.Position,
		Email:      in.Email,
		Phone:      in.Phone,
		Notes:      in.Notes,
		CustomerID: in.CustomerID,
		UserID:     userID,
	}
	if err := r.DB.Create(&contact).Error; err != nil {
		return nil, err
	}
	return &models.ContactView{Contact: contact, CustomerName: customer.Name}, nil
}

func (r *ContactRepository) Update(userID, id uint, in models.ContactUpdate) (*models.ContactView, error) {
	var contact models.Contact
	if err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if in.Name != nil && *in.Name != "" {
		contact.Name = *in.Name
	}
	if in.Position != nil {
		contact.Position = *in.Position
	}
	if in.Email != nil && *in.Email != "" {
		contact.Email = *in.Email
	}
	if in.Phone != nil {
		contact.Phone = *in.Phone
	}
	if in.Notes != nil {
		contact.Notes = *in.Notes
	}
	if in.CustomerID != nil && *in.CustomerID != 0 {
		if _, err := r.ownedCustomer(userID, *in.CustomerID); err != nil {
			return nil, err
		}
		contact.CustomerID = *in.CustomerID
	}

	if err := r.DB.Save(&contact).Error; err != nil {
		return nil, err
	}

	customer, err := r.ownedCustomer(userID, contact.CustomerID)
	if err != nil {
		return nil, err
	}
	return &models.ContactView{Contact: contact, CustomerName: customer.Name}, nil
}

func (r *ContactRepository) Delete(userID, id uint) error {
	result := r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Contact{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ContactRepository) ownedCustomer(userID, customerID uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.DB.Where("id = ? AND user_id = ?", customerID, userID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReferenceNotFound
		}
		return nil, err
	}
	return &customer, nil
}

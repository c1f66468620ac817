package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/KevCav575/crm-simple/apperrors"
	"github.com/KevCav575/crm-simple/models"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func (r *CustomerRepository) List(userID uint) ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := r.DB.Where("user_id = ?", userID).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomerRepository) Create(userID uint, in models.CustomerRequest) (*models.Customer, error) {
	status := in.Status
	if status == "" {
		status = "new"
	}

	customer := models.Customer{
		Name:    in.Name,
		Company: in.Company,
		Email:   in.Email,
		Phone:   in.Phone,
		Status:  status,
		Notes:   in.Notes,
		UserID:  userID,
	}
	if err := r.DB.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) Update(userID, id uint, in models.CustomerUpdate) (*models.Customer, error) {
	customer, err := r.get(userID, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != "" {
		customer.Name = *in.Name
	}
	if in.Company != nil && *in.Company != "" {
		customer.Company = *in.Company
	}
	if in.Email != nil && *in.Email != "" {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Status != nil && *in.Status != "" {
		customer.Status = *in.Status
	}
	if in.Notes != nil {
		customer.Notes = *in.Notes
	}

	if err := r.DB.Save(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer together with its contacts and deals, so no row
// is ever left pointing at a customer that no longer exists.
func (r *CustomerRepository) Delete(userID, id uint) error {
	customer, err := r.get(userID, id)
	if err != nil {
		return err
	}

	tx := r.DB.Begin()
	if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.Contact{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.Deal{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(customer).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (r *CustomerRepository) get(userID, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

package repository

import (
	"github.com/promoforge/promoforge-backend/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create creates a new customer
func (r *CustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// CreateBatch inserts an imported roster in one statement
func (r *CustomerRepository) CreateBatch(customers []*models.Customer) error {
	if len(customers) == 0 {
		return nil
	}
	return r.db.Create(customers).Error
}

// GetByUserID retrieves the full roster for a user
func (r *CustomerRepository) GetByUserID(userID string) ([]*models.Customer, error) {
	var customers []*models.Customer
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&customers).Error
	return customers, err
}

// GetByUserIDAndID retrieves a customer by user ID and customer ID
func (r *CustomerRepository) GetByUserIDAndID(userID, customerID string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("user_id = ? AND id = ?", userID, customerID).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetPageByUserID retrieves a page of the roster with an optional segment filter
func (r *CustomerRepository) GetPageByUserID(userID string, segment models.Segment, offset, limit int) ([]*models.Customer, int64, error) {
	var customers []*models.Customer
	var total int64

	query := r.db.Model(&models.Customer{}).Where("user_id = ?", userID)
	if segment != "" {
		query = query.Where("segment = ?", segment)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at ASC").Offset(offset).Limit(limit).Find(&customers).Error; err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

// Update updates a customer
func (r *CustomerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

// DeleteByUserIDAndID deletes a customer by user ID and customer ID
func (r *CustomerRepository) DeleteByUserIDAndID(userID, customerID string) error {
	return r.db.Where("user_id = ? AND id = ?", userID, customerID).Delete(&models.Customer{}).Error
}

// CountByUserID counts the roster size for a user
func (r *CustomerRepository) CountByUserID(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

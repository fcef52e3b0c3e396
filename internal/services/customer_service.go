package services

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/promoforge/promoforge-backend/internal/database/repository"
	"github.com/promoforge/promoforge-backend/internal/models"
	"github.com/promoforge/promoforge-backend/internal/services/importer"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type CustomerService struct {
	customerRepo *repository.CustomerRepository
	events       *EventsService
}

func NewCustomerService(customerRepo *repository.CustomerRepository, events *EventsService) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		events:       events,
	}
}

// ImportRoster parses an uploaded roster file and persists the resulting
// records. CSV and TXT run through the delimited-text engine; XLSX through
// the spreadsheet path. Rows without a name are skipped, everything else is
// kept with explicit sentinels.
func (s *CustomerService) ImportRoster(userID, filename string, r io.Reader) (*models.ImportCustomersResponse, error) {
	var parsed []models.Customer

	if strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		customers, err := importer.ParseRosterXLSX(r)
		if err != nil {
			return nil, fmt.Errorf("failed to parse workbook: %w", err)
		}
		parsed = customers
	} else {
		content, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read upload: %w", err)
		}
		parsed = importer.ParseRoster(string(content))
	}

	customers := make([]*models.Customer, len(parsed))
	for i := range parsed {
		c := parsed[i]
		c.ID = uuid.NewString()
		c.UserID = userID
		customers[i] = &c
	}

	if err := s.customerRepo.CreateBatch(customers); err != nil {
		return nil, fmt.Errorf("failed to store imported customers: %w", err)
	}

	logrus.Infof("Imported %d customers for user %s from %s", len(customers), userID, filename)

	if s.events != nil {
		if err := s.events.PublishImportCompleted(userID, filename, len(customers)); err != nil {
			logrus.Warnf("Failed to publish import event: %v", err)
		}
	}

	responses := make([]models.CustomerResponse, len(customers))
	for i, c := range customers {
		responses[i] = toCustomerResponse(c)
	}

	return &models.ImportCustomersResponse{
		Imported:  len(customers),
		Customers: responses,
	}, nil
}

// CreateCustomer handles the manual-entry path: the segment comes from the
// user and the segmentation heuristic is bypassed.
func (s *CustomerService) CreateCustomer(userID string, req *models.CreateCustomerRequest) (*models.CustomerResponse, error) {
	if !models.IsValidSegment(req.Segment) {
		return nil, fmt.Errorf("invalid segment %q", req.Segment)
	}

	customer := &models.Customer{
		ID:               uuid.NewString(),
		UserID:           userID,
		Name:             req.Name,
		Email:            orSentinel(req.Email),
		Phone:            orSentinel(req.Phone),
		PurchaseHistory:  req.PurchaseHistory,
		Segment:          req.Segment,
		SegmentReason:    importer.ManualEntryReason,
		TotalSpent:       req.TotalSpent,
		LastPurchaseDate: models.FieldNotAvailable,
	}

	if err := s.customerRepo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	response := toCustomerResponse(customer)
	return &response, nil
}

// UpdateCustomer edits a customer. The stored segment reason is left as-is.
func (s *CustomerService) UpdateCustomer(userID, customerID string, req *models.UpdateCustomerRequest) (*models.CustomerResponse, error) {
	customer, err := s.customerRepo.GetByUserIDAndID(userID, customerID)
	if err != nil {
		return nil, errors.New("customer not found")
	}

	if !models.IsValidSegment(req.Segment) {
		return nil, fmt.Errorf("invalid segment %q", req.Segment)
	}

	customer.Name = req.Name
	customer.Email = orSentinel(req.Email)
	customer.Phone = orSentinel(req.Phone)
	customer.PurchaseHistory = req.PurchaseHistory
	customer.Segment = req.Segment
	customer.TotalSpent = req.TotalSpent

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	response := toCustomerResponse(customer)
	return &response, nil
}

// GetCustomers retrieves a page of the user's roster
func (s *CustomerService) GetCustomers(userID string, segment models.Segment, offset, limit int) ([]models.CustomerResponse, int64, error) {
	if segment != "" && !models.IsValidSegment(segment) {
		return nil, 0, fmt.Errorf("invalid segment %q", segment)
	}

	customers, total, err := s.customerRepo.GetPageByUserID(userID, segment, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get customers: %w", err)
	}

	responses := make([]models.CustomerResponse, len(customers))
	for i, c := range customers {
		responses[i] = toCustomerResponse(c)
	}
	return responses, total, nil
}

// DeleteCustomer deletes a customer (user must own it)
func (s *CustomerService) DeleteCustomer(userID, customerID string) error {
	if _, err := s.customerRepo.GetByUserIDAndID(userID, customerID); err != nil {
		return errors.New("customer not found")
	}
	return s.customerRepo.DeleteByUserIDAndID(userID, customerID)
}

// ExportRoster writes the user's full roster to an xlsx workbook
func (s *CustomerService) ExportRoster(userID string) (*excelize.File, string, error) {
	customers, err := s.customerRepo.GetByUserID(userID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load roster: %w", err)
	}

	roster := make([]models.Customer, len(customers))
	for i, c := range customers {
		roster[i] = *c
	}

	f, err := importer.ExportRosterXLSX(roster)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build workbook: %w", err)
	}

	filename := fmt.Sprintf("customers_%d.xlsx", time.Now().Unix())
	return f, filename, nil
}

func orSentinel(s string) string {
	if strings.TrimSpace(s) == "" {
		return models.FieldNotAvailable
	}
	return s
}

// toCustomerResponse converts a Customer model to its response DTO
func toCustomerResponse(c *models.Customer) models.CustomerResponse {
	return models.CustomerResponse{
		ID:               c.ID,
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		PurchaseHistory:  c.PurchaseHistory,
		Segment:          c.Segment,
		SegmentReason:    c.SegmentReason,
		TotalSpent:       c.TotalSpent,
		LastPurchaseDate: c.LastPurchaseDate,
		CreatedAt:        c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        c.UpdatedAt.Format(time.RFC3339),
	}
}

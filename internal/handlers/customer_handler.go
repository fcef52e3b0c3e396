package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/promoforge/promoforge-backend/internal/models"
	"github.com/promoforge/promoforge-backend/internal/services"
	"github.com/promoforge/promoforge-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerService *services.CustomerService
}

func NewCustomerHandler(customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// ImportCustomers godoc
// @Summary Import customer roster
// @Description Parse an uploaded roster file (plain text, CSV or XLSX), classify each row and store the resulting customers
// @Tags customers
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Roster file"
// @Success 200 {object} models.ImportCustomersResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/customers/import [post]
func (h *CustomerHandler) ImportCustomers(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded", "details": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open uploaded file", "details": err.Error()})
		return
	}
	defer file.Close()

	userID := c.GetString("user_id")
	response, err := h.customerService.ImportRoster(userID, fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import customers", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// CreateCustomer godoc
// @Summary Create customer
// @Description Manually add a single customer to the roster
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateCustomerRequest true "Create customer request"
// @Success 201 {object} models.CustomerResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req models.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	response, err := h.customerService.CreateCustomer(userID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "invalid segment") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetCustomers godoc
// @Summary List customers
// @Description List the current user's customers, optionally filtered by segment
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param segment query string false "Segment filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/customers [get]
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	segment := models.Segment(c.Query("segment"))
	if segment != "" && !models.IsValidSegment(segment) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid segment: %s", segment)})
		return
	}

	page, pageSize := utils.ParsePaginationFromQuery(c.Query("page"), c.Query("page_size"))
	offset := utils.CalculateOffset(page, pageSize)

	userID := c.GetString("user_id")
	customers, total, err := h.customerService.GetCustomers(userID, segment, offset, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get customers", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customers":  customers,
		"pagination": utils.CalculatePaginationInfo(int(total), page, pageSize),
	})
}

// UpdateCustomer godoc
// @Summary Update customer
// @Description Update a customer's details
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body models.UpdateCustomerRequest true "Update customer request"
// @Success 200 {object} models.CustomerResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var req models.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	response, err := h.customerService.UpdateCustomer(userID, c.Param("id"), &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if strings.Contains(err.Error(), "invalid segment") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteCustomer godoc
// @Summary Delete customer
// @Description Remove a customer from the roster
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	userID := c.GetString("user_id")
	if err := h.customerService.DeleteCustomer(userID, c.Param("id")); err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// ExportCustomers godoc
// @Summary Export customer roster
// @Description Download the current user's roster as an XLSX workbook
// @Tags customers
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/customers/export [get]
func (h *CustomerHandler) ExportCustomers(c *gin.Context) {
	userID := c.GetString("user_id")
	file, filename, err := h.customerService.ExportRoster(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export customers", "details": err.Error()})
		return
	}
	defer file.Close()

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")
	c.Header("Cache-Control", "must-revalidate")
	c.Header("Pragma", "public")

	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write file", "details": err.Error()})
		return
	}
}

// GetSegments godoc
// @Summary List segments
// @Description Return the set of known segments with display metadata
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SegmentInfo
// @Router /api/v1/customers/segments [get]
func (h *CustomerHandler) GetSegments(c *gin.Context) {
	c.JSON(http.StatusOK, models.AllSegments)
}

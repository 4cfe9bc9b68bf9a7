package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	companyuc "employee-service/internal/usecase/company"
)

// CompanyHandler handles HTTP requests for company operations
type CompanyHandler struct {
	uc  companyuc.Usecase
	log *zap.Logger
}

// NewCompanyHandler creates a new CompanyHandler instance
func NewCompanyHandler(uc companyuc.Usecase, log *zap.Logger) *CompanyHandler {
	return &CompanyHandler{uc: uc, log: log}
}

// ListCompanies handles GET /companies, paged when both page and pageSize
// are present.
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	ctx := c.Request.Context()

	page, pageSize, paged, handled := parsePage(c, h.log)
	if handled {
		return
	}
	if paged {
		resp, err := h.uc.ListCompaniesPage(ctx, companyuc.ListPageRequest{Page: page, PageSize: pageSize})
		if err != nil {
			handleError(c, h.log, err)
			return
		}
		setPaginationHeaders(c, resp.Pagination)
		c.JSON(http.StatusOK, toCompanyResponses(resp.Companies))
		return
	}

	resp, err := h.uc.ListCompanies(ctx)
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toCompanyResponses(resp))
}

// CreateCompany handles POST /companies
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create company request", zap.Error(err))
		AbortWithError(c, http.StatusBadRequest, "malformed request body")
		return
	}

	in := companyuc.CreateCompanyRequest{
		CompanyName: req.CompanyName,
		Employees:   make([]companyuc.NewEmployee, len(req.Employees)),
	}
	for i, e := range req.Employees {
		in.Employees[i] = companyuc.NewEmployee{Name: e.Name, Age: e.Age, Gender: e.Gender, Salary: e.Salary}
	}

	resp, err := h.uc.CreateCompany(c.Request.Context(), in)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, toCompanyResponse(*resp))
}

// GetCompany handles GET /companies/:id
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, ok := parseID(c, h.log, "Company")
	if !ok {
		return
	}

	resp, err := h.uc.GetCompany(c.Request.Context(), companyuc.GetCompanyRequest{ID: id})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toCompanyResponse(*resp))
}

// GetCompanyEmployees handles GET /companies/:id/employees
func (h *CompanyHandler) GetCompanyEmployees(c *gin.Context) {
	id, ok := parseID(c, h.log, "Company")
	if !ok {
		return
	}

	resp, err := h.uc.GetCompanyEmployees(c.Request.Context(), companyuc.GetCompanyRequest{ID: id})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toEmployeeResponses(resp))
}

// UpdateCompany handles PUT /companies/:id. Only companyName is applied.
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, ok := parseID(c, h.log, "Company")
	if !ok {
		return
	}

	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid update company request", zap.Int64("id", id), zap.Error(err))
		AbortWithError(c, http.StatusBadRequest, "malformed request body")
		return
	}

	resp, err := h.uc.UpdateCompany(c.Request.Context(), companyuc.UpdateCompanyRequest{ID: id, CompanyName: req.CompanyName})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toCompanyResponse(*resp))
}

// DeleteCompany handles DELETE /companies/:id
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, ok := parseID(c, h.log, "Company")
	if !ok {
		return
	}

	if err := h.uc.DeleteCompany(c.Request.Context(), companyuc.DeleteCompanyRequest{ID: id}); err != nil {
		handleError(c, h.log, err)
		return
	}

	c.Status(http.StatusOK)
}

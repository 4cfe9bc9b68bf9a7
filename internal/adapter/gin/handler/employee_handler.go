package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	employeeuc "employee-service/internal/usecase/employee"
)

// EmployeeHandler handles HTTP requests for employee operations
type EmployeeHandler struct {
	uc  employeeuc.Usecase
	log *zap.Logger
}

// NewEmployeeHandler creates a new EmployeeHandler instance
func NewEmployeeHandler(uc employeeuc.Usecase, log *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		uc:  uc,
		log: log,
	}
}

// ListEmployees handles GET /employees. A gender query parameter selects
// the gender filter; otherwise page and pageSize together select a page;
// otherwise every employee is returned.
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	ctx := c.Request.Context()

	if gender, ok := c.GetQuery("gender"); ok {
		resp, err := h.uc.ListEmployeesByGender(ctx, employeeuc.ListByGenderRequest{Gender: gender})
		if err != nil {
			handleError(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, toEmployeeResponses(resp))
		return
	}

	page, pageSize, paged, handled := parsePage(c, h.log)
	if handled {
		return
	}
	if paged {
		resp, err := h.uc.ListEmployeesPage(ctx, employeeuc.ListPageRequest{Page: page, PageSize: pageSize})
		if err != nil {
			handleError(c, h.log, err)
			return
		}
		setPaginationHeaders(c, resp.Pagination)
		c.JSON(http.StatusOK, toEmployeeResponses(resp.Employees))
		return
	}

	resp, err := h.uc.ListEmployees(ctx)
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toEmployeeResponses(resp))
}

// CreateEmployee handles POST /employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create employee request", zap.Error(err))
		AbortWithError(c, http.StatusBadRequest, "malformed request body")
		return
	}

	resp, err := h.uc.CreateEmployee(c.Request.Context(), employeeuc.CreateEmployeeRequest{
		Name:      req.Name,
		Age:       req.Age,
		Gender:    req.Gender,
		Salary:    req.Salary,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, toEmployeeResponse(*resp))
}

// GetEmployee handles GET /employees/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := parseID(c, h.log, "Employee")
	if !ok {
		return
	}

	resp, err := h.uc.GetEmployee(c.Request.Context(), employeeuc.GetEmployeeRequest{ID: id})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toEmployeeResponse(*resp))
}

// UpdateEmployee handles PUT /employees/:id
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseID(c, h.log, "Employee")
	if !ok {
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid update employee request", zap.Int64("id", id), zap.Error(err))
		AbortWithError(c, http.StatusBadRequest, "malformed request body")
		return
	}

	resp, err := h.uc.UpdateEmployee(c.Request.Context(), employeeuc.UpdateEmployeeRequest{
		ID:     id,
		Name:   req.Name,
		Age:    req.Age,
		Gender: req.Gender,
		Salary: req.Salary,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toEmployeeResponse(*resp))
}

// DeleteEmployee handles DELETE /employees/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseID(c, h.log, "Employee")
	if !ok {
		return
	}

	if err := h.uc.DeleteEmployee(c.Request.Context(), employeeuc.DeleteEmployeeRequest{ID: id}); err != nil {
		handleError(c, h.log, err)
		return
	}

	c.Status(http.StatusOK)
}

package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"employee-service/internal/domain/pagination"
	companyuc "employee-service/internal/usecase/company"
	employeeuc "employee-service/internal/usecase/employee"
	apperrors "employee-service/pkg/errors"
)

// Pagination headers set on paged list responses.
const (
	HeaderTotalCount = "X-Total-Count"
	HeaderTotalPages = "X-Total-Pages"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// StatusName returns the upper snake case name of an HTTP status code,
// e.g. NOT_FOUND for 404.
func StatusName(code int) string {
	text := http.StatusText(code)
	if text == "" {
		return strconv.Itoa(code)
	}
	text = strings.ReplaceAll(text, "-", " ")
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}

// AbortWithError writes the error body with status code and stops the chain.
func AbortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorResponse{Message: message, Status: StatusName(code)})
}

// EmployeeRequest represents the HTTP request body for creating or
// replacing an employee.
type EmployeeRequest struct {
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Salary    int    `json:"salary"`
	CompanyID *int64 `json:"companyId,omitempty"`
}

// EmployeeResponse represents the HTTP response for employee data
type EmployeeResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Salary    int    `json:"salary"`
	CompanyID *int64 `json:"companyId,omitempty"`
}

// CompanyRequest represents the HTTP request body for creating or renaming
// a company. Employees are only read on create.
type CompanyRequest struct {
	CompanyName string            `json:"companyName"`
	Employees   []EmployeeRequest `json:"employees,omitempty"`
}

// CompanyResponse represents the HTTP response for company data
type CompanyResponse struct {
	ID             int64              `json:"id"`
	CompanyName    string             `json:"companyName"`
	EmployeeNumber int                `json:"employeeNumber"`
	Employees      []EmployeeResponse `json:"employees"`
}

func toEmployeeResponse(e employeeuc.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Age:       e.Age,
		Gender:    e.Gender,
		Salary:    e.Salary,
		CompanyID: e.CompanyID,
	}
}

func toEmployeeResponses(in []employeeuc.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, len(in))
	for i, e := range in {
		out[i] = toEmployeeResponse(e)
	}
	return out
}

func toCompanyResponse(c companyuc.Company) CompanyResponse {
	return CompanyResponse{
		ID:             c.ID,
		CompanyName:    c.CompanyName,
		EmployeeNumber: c.EmployeeNumber(),
		Employees:      toEmployeeResponses(c.Employees),
	}
}

func toCompanyResponses(in []companyuc.Company) []CompanyResponse {
	out := make([]CompanyResponse, len(in))
	for i, c := range in {
		out[i] = toCompanyResponse(c)
	}
	return out
}

func setPaginationHeaders(c *gin.Context, info *pagination.Info) {
	if info == nil {
		return
	}
	c.Header(HeaderTotalCount, strconv.FormatInt(info.Total, 10))
	c.Header(HeaderTotalPages, strconv.FormatInt(info.TotalPages, 10))
}

// parseID reads the :id path parameter. It writes a 400 response and
// returns false when the parameter is not an integer.
func parseID(c *gin.Context, log *zap.Logger, resource string) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		log.Warn("invalid id", zap.String("resource", resource), zap.String("id", idStr), zap.Error(err))
		AbortWithError(c, http.StatusBadRequest, resource+" ID must be a valid number")
		return 0, false
	}
	return id, true
}

// parsePage reads page and pageSize query parameters. ok is false when
// either is missing; a present but non-numeric value writes a 400.
func parsePage(c *gin.Context, log *zap.Logger) (page, pageSize int, ok, handled bool) {
	pageStr, hasPage := c.GetQuery("page")
	sizeStr, hasSize := c.GetQuery("pageSize")
	if !hasPage || !hasSize {
		return 0, 0, false, false
	}

	var err error
	if page, err = strconv.Atoi(pageStr); err != nil {
		log.Warn("invalid page", zap.String("page", pageStr))
		AbortWithError(c, http.StatusBadRequest, "page must be a valid number")
		return 0, 0, false, true
	}
	if pageSize, err = strconv.Atoi(sizeStr); err != nil {
		log.Warn("invalid pageSize", zap.String("page_size", sizeStr))
		AbortWithError(c, http.StatusBadRequest, "pageSize must be a valid number")
		return 0, 0, false, true
	}
	return page, pageSize, true, false
}

// handleError converts usecase errors to HTTP responses. Internal errors
// never expose their message.
func handleError(c *gin.Context, log *zap.Logger, err error) {
	coded, ok := apperrors.Classify(err)
	if !ok || coded.HTTPStatus() >= http.StatusInternalServerError {
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		AbortWithError(c, http.StatusInternalServerError, "An internal error occurred")
		return
	}
	AbortWithError(c, coded.HTTPStatus(), coded.Error())
}

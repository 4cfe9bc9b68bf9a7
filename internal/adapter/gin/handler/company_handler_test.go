package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"employee-service/internal/domain/pagination"
	companyuc "employee-service/internal/usecase/company"
	employeeuc "employee-service/internal/usecase/employee"
	pkgerrors "employee-service/pkg/errors"
)

func acmeDTO() *companyuc.Company {
	companyID := int64(1)
	return &companyuc.Company{
		ID:          1,
		CompanyName: "acme",
		Employees: []employeeuc.Employee{
			{ID: 1, Name: "nelly", Age: 18, Gender: "female", Salary: 10, CompanyID: &companyID},
		},
	}
}

func TestCreateCompany(t *testing.T) {
	t.Run("Nested Employees", func(t *testing.T) {
		r, mockUsecase := setupCompanyTest(t)

		mockUsecase.On("CreateCompany", mock.Anything, companyuc.CreateCompanyRequest{
			CompanyName: "acme",
			Employees:   []companyuc.NewEmployee{{Name: "nelly", Age: 18, Gender: "female", Salary: 10}},
		}).Return(acmeDTO(), nil)

		w := httptest.NewRecorder()
		body := `{"companyName":"acme","employees":[{"name":"nelly","age":18,"gender":"female","salary":10}]}`
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/companies", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{
			"id": 1,
			"companyName": "acme",
			"employeeNumber": 1,
			"employees": [{"id":1,"name":"nelly","age":18,"gender":"female","salary":10,"companyId":1}]
		}`, w.Body.String())
	})

	t.Run("No Employees", func(t *testing.T) {
		r, mockUsecase := setupCompanyTest(t)

		mockUsecase.On("CreateCompany", mock.Anything, mock.Anything).
			Return(&companyuc.Company{ID: 2, CompanyName: "empty", Employees: []employeeuc.Employee{}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/companies", bytes.NewBufferString(`{"companyName":"empty"}`)))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":2,"companyName":"empty","employeeNumber":0,"employees":[]}`, w.Body.String())
	})

	t.Run("Malformed Body", func(t *testing.T) {
		r, _ := setupCompanyTest(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/companies", bytes.NewBufferString(`{"companyName":`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetCompany(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, mockUsecase := setupCompanyTest(t)
		mockUsecase.On("GetCompany", mock.Anything, companyuc.GetCompanyRequest{ID: 1}).Return(acmeDTO(), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/companies/1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp CompanyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.EmployeeNumber)
	})

	t.Run("Not Found", func(t *testing.T) {
		r, mockUsecase := setupCompanyTest(t)
		mockUsecase.On("GetCompany", mock.Anything, companyuc.GetCompanyRequest{ID: 7}).
			Return(nil, pkgerrors.NewNotFoundError("company", "Company ID 7 does not exist!"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/companies/7", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, ErrorResponse{Message: "Company ID 7 does not exist!", Status: "NOT_FOUND"}, decodeError(t, w))
	})
}

func TestGetCompanyEmployees(t *testing.T) {
	r, mockUsecase := setupCompanyTest(t)
	mockUsecase.On("GetCompanyEmployees", mock.Anything, companyuc.GetCompanyRequest{ID: 1}).
		Return(acmeDTO().Employees, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/companies/1/employees", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []EmployeeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "nelly", resp[0].Name)
}

func TestUpdateCompany_IgnoresEmployees(t *testing.T) {
	r, mockUsecase := setupCompanyTest(t)
	mockUsecase.On("UpdateCompany", mock.Anything, companyuc.UpdateCompanyRequest{ID: 1, CompanyName: "globex"}).
		Return(&companyuc.Company{ID: 1, CompanyName: "globex", Employees: acmeDTO().Employees}, nil)

	w := httptest.NewRecorder()
	body := `{"companyName":"globex","employees":[{"name":"ignored"}]}`
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/companies/1", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusOK, w.Code)
	mockUsecase.AssertExpectations(t)
}

func TestDeleteCompany(t *testing.T) {
	r, mockUsecase := setupCompanyTest(t)
	mockUsecase.On("DeleteCompany", mock.Anything, companyuc.DeleteCompanyRequest{ID: 3}).Return(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/companies/3", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListCompanies(t *testing.T) {
	t.Run("All", func(t *testing.T) {
		r, mockUsecase := setupCompanyTest(t)
		mockUsecase.On("ListCompanies", mock.Anything).Return([]companyuc.Company{*acmeDTO()}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/companies", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []CompanyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 1)
	})

	t.Run("Paged", func(t *testing.T) {
		r, mockUsecase := setupCompanyTest(t)
		mockUsecase.On("ListCompaniesPage", mock.Anything, companyuc.ListPageRequest{Page: 2, PageSize: 1}).
			Return(&companyuc.ListPageResponse{Companies: []companyuc.Company{*acmeDTO()}, Pagination: pagination.NewInfo(2, 2, 1)}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/companies?page=2&pageSize=1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get(HeaderTotalCount))
		assert.Equal(t, "2", w.Header().Get(HeaderTotalPages))
	})
}

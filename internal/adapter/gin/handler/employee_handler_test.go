package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"employee-service/internal/domain/pagination"
	employeeuc "employee-service/internal/usecase/employee"
	pkgerrors "employee-service/pkg/errors"
)

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateEmployee(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, mockUsecase := setupEmployeeTest(t)

		mockUsecase.On("CreateEmployee", mock.Anything, employeeuc.CreateEmployeeRequest{
			Name: "nelly", Age: 18, Gender: "female", Salary: 10,
		}).Return(&employeeuc.Employee{ID: 1, Name: "nelly", Age: 18, Gender: "female", Salary: 10}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees",
			bytes.NewBufferString(`{"name":"nelly","age":18,"gender":"female","salary":10}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":1,"name":"nelly","age":18,"gender":"female","salary":10}`, w.Body.String())
	})

	t.Run("Ignores Client ID", func(t *testing.T) {
		r, mockUsecase := setupEmployeeTest(t)

		mockUsecase.On("CreateEmployee", mock.Anything, mock.MatchedBy(func(in employeeuc.CreateEmployeeRequest) bool {
			return in.Name == "nelly"
		})).Return(&employeeuc.Employee{ID: 4, Name: "nelly"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(`{"id":99,"name":"nelly"}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp EmployeeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(4), resp.ID)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		r, mockUsecase := setupEmployeeTest(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString("invalid json"))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "BAD_REQUEST", decodeError(t, w).Status)
		mockUsecase.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything)
	})

	t.Run("Wrong Field Type", func(t *testing.T) {
		r, _ := setupEmployeeTest(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(`{"name":"nelly","age":"old"}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown Company", func(t *testing.T) {
		r, mockUsecase := setupEmployeeTest(t)

		mockUsecase.On("CreateEmployee", mock.Anything, mock.Anything).
			Return(nil, pkgerrors.NewNotFoundError("company", "Company ID 8 does not exist!"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(`{"name":"nelly","companyId":8}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, ErrorResponse{Message: "Company ID 8 does not exist!", Status: "NOT_FOUND"}, decodeError(t, w))
	})

	t.Run("Usecase Error", func(t *testing.T) {
		r, mockUsecase := setupEmployeeTest(t)

		mockUsecase.On("CreateEmployee", mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection refused"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(`{"name":"nelly"}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", resp.Status)
		assert.NotContains(t, resp.Message, "pq")
	})
}

func TestGetEmployee(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, mockUsecase := setupEmployeeTest(t)

		companyID := int64(2)
		mockUsecase.On("GetEmployee", mock.Anything, employeeuc.GetEmployeeRequest{ID: 1}).
			Return(&employeeuc.Employee{ID: 1, Name: "nelly", CompanyID: &companyID}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"name":"nelly","age":0,"gender":"","salary":0,"companyId":2}`, w.Body.String())
	})

	t.Run("Invalid ID", func(t *testing.T) {
		r, _ := setupEmployeeTest(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		r, mockUsecase := setupEmployeeTest(t)

		mockUsecase.On("GetEmployee", mock.Anything, employeeuc.GetEmployeeRequest{ID: 1}).
			Return(nil, pkgerrors.NewNotFoundError("employee", "Employee ID 1 does not exist!"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/1", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Employee ID 1 does not exist!", decodeError(t, w).Message)
	})
}

func TestUpdateEmployee(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, mockUsecase := setupEmployeeTest(t)

		mockUsecase.On("UpdateEmployee", mock.Anything, employeeuc.UpdateEmployeeRequest{
			ID: 1, Name: "yllen", Age: 19, Gender: "female", Salary: 20,
		}).Return(&employeeuc.Employee{ID: 1, Name: "yllen", Age: 19, Gender: "female", Salary: 20}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/employees/1",
			bytes.NewBufferString(`{"id":5,"name":"yllen","age":19,"gender":"female","salary":20}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp EmployeeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID, "the path id wins over the body id")
	})

	t.Run("Not Found", func(t *testing.T) {
		r, mockUsecase := setupEmployeeTest(t)

		mockUsecase.On("UpdateEmployee", mock.Anything, mock.Anything).
			Return(nil, pkgerrors.NewNotFoundError("employee", "Employee ID 3 does not exist!"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/employees/3", bytes.NewBufferString(`{"name":"x"}`)))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		r, _ := setupEmployeeTest(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/employees/abc", bytes.NewBufferString("{}")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteEmployee(t *testing.T) {
	r, mockUsecase := setupEmployeeTest(t)

	mockUsecase.On("DeleteEmployee", mock.Anything, employeeuc.DeleteEmployeeRequest{ID: 1}).Return(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/employees/1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	mockUsecase.AssertExpectations(t)
}

func TestListEmployees_Dispatch(t *testing.T) {
	all := []employeeuc.Employee{{ID: 1, Name: "nelly", Gender: "female"}, {ID: 2, Name: "bob", Gender: "male"}}

	t.Run("All", func(t *testing.T) {
		r, mockUsecase := setupEmployeeTest(t)
		mockUsecase.On("ListEmployees", mock.Anything).Return(all, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []EmployeeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("Empty Is Array", func(t *testing.T) {
		r, mockUsecase := setupEmployeeTest(t)
		mockUsecase.On("ListEmployees", mock.Anything).Return([]employeeuc.Employee{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))

		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("Gender Wins Over Page", func(t *testing.T) {
		r, mockUsecase := setupEmployeeTest(t)
		mockUsecase.On("ListEmployeesByGender", mock.Anything, employeeuc.ListByGenderRequest{Gender: "female"}).
			Return(all[:1], nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?gender=female&page=1&pageSize=5", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		mockUsecase.AssertNotCalled(t, "ListEmployeesPage", mock.Anything, mock.Anything)
	})

	t.Run("Paged", func(t *testing.T) {
		r, mockUsecase := setupEmployeeTest(t)
		mockUsecase.On("ListEmployeesPage", mock.Anything, employeeuc.ListPageRequest{Page: 1, PageSize: 2}).
			Return(&employeeuc.ListPageResponse{Employees: all, Pagination: pagination.NewInfo(5, 1, 2)}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?page=1&pageSize=2", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "5", w.Header().Get(HeaderTotalCount))
		assert.Equal(t, "3", w.Header().Get(HeaderTotalPages))
	})

	t.Run("Page Without PageSize Lists All", func(t *testing.T) {
		r, mockUsecase := setupEmployeeTest(t)
		mockUsecase.On("ListEmployees", mock.Anything).Return(all, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?page=1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Non Numeric Page", func(t *testing.T) {
		r, _ := setupEmployeeTest(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?page=one&pageSize=2", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Invalid Page", func(t *testing.T) {
		r, mockUsecase := setupEmployeeTest(t)
		mockUsecase.On("ListEmployeesPage", mock.Anything, employeeuc.ListPageRequest{Page: 0, PageSize: 2}).
			Return(nil, pkgerrors.NewValidationError("Page", "Page must be at least 1"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?page=0&pageSize=2", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "BAD_REQUEST", decodeError(t, w).Status)
	})
}

func TestStatusName(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", StatusName(http.StatusNotFound))
	assert.Equal(t, "BAD_REQUEST", StatusName(http.StatusBadRequest))
	assert.Equal(t, "TOO_MANY_REQUESTS", StatusName(http.StatusTooManyRequests))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", StatusName(http.StatusInternalServerError))
	assert.Equal(t, "NON_AUTHORITATIVE_INFORMATION", StatusName(http.StatusNonAuthoritativeInfo))
	assert.Equal(t, "599", StatusName(599))
}

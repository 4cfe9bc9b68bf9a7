package benchmark

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"employee-service/internal/adapter/db/memory"
	"employee-service/internal/adapter/gin/handler"
	"employee-service/internal/adapter/gin/router"
	companyuc "employee-service/internal/usecase/company"
	employeeuc "employee-service/internal/usecase/employee"
)

// setupRouter builds the REST router over the in-memory store with n
// employees already stored.
func setupRouter(b *testing.B, n int) *gin.Engine {
	b.Helper()
	gin.SetMode(gin.ReleaseMode)
	log := zap.NewNop()

	store := memory.NewStore()
	companies := memory.NewCompanyRepo(store)
	employees := employeeuc.New(memory.NewEmployeeRepo(store), companies, log)
	r := router.SetupRouter(
		handler.NewEmployeeHandler(employees, log),
		handler.NewCompanyHandler(companyuc.New(companies, log), log),
		router.Options{ServiceName: "employee-service"},
		log,
	)

	for i := 0; i < n; i++ {
		body, _ := json.Marshal(handler.EmployeeRequest{Name: fmt.Sprintf("employee-%d", i), Age: 30, Gender: "female"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/employees", bytes.NewReader(body)))
		if w.Code != http.StatusCreated {
			b.Fatalf("seed employee %d: status %d", i, w.Code)
		}
	}
	return r
}

func BenchmarkCreateEmployee(b *testing.B) {
	r := setupRouter(b, 0)
	body, _ := json.Marshal(handler.EmployeeRequest{Name: "nelly", Age: 18, Gender: "female", Salary: 10})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/employees", bytes.NewReader(body)))
		if w.Code != http.StatusCreated {
			b.Fatalf("status %d", w.Code)
		}
	}
}

func BenchmarkGetEmployee(b *testing.B) {
	r := setupRouter(b, 100)

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/employees/%d", i%100+1), nil))
			if w.Code != http.StatusOK {
				b.Errorf("status %d", w.Code)
				return
			}
			i++
		}
	})
}

func BenchmarkListEmployeesPage(b *testing.B) {
	for _, size := range []int{10, 100} {
		b.Run(fmt.Sprintf("pageSize=%d", size), func(b *testing.B) {
			r := setupRouter(b, 1000)
			path := fmt.Sprintf("/employees?page=3&pageSize=%d", size)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
				if w.Code != http.StatusOK {
					b.Fatalf("status %d", w.Code)
				}
			}
		})
	}
}

package postgres

import (
	"employee-service/internal/domain/company"
	"employee-service/internal/domain/employee"
)

// EmployeeSchema represents the database schema for the employees table.
type EmployeeSchema struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"` // Unique identifier with auto-increment
	Name      string `gorm:"size:255"`
	Age       int
	Gender    string `gorm:"size:64;index"` // Indexed for gender filtering
	Salary    int
	CompanyID *int64 `gorm:"index"` // Owning company, nil when unassigned
}

// TableName specifies the table name for the EmployeeSchema model.
func (EmployeeSchema) TableName() string {
	return "employees"
}

// CompanySchema represents the database schema for the companies table.
type CompanySchema struct {
	ID          int64            `gorm:"primaryKey;autoIncrement"`
	CompanyName string           `gorm:"size:255"`
	Employees   []EmployeeSchema `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the CompanySchema model.
func (CompanySchema) TableName() string {
	return "companies"
}

// Models lists the schemas in dependency order for AutoMigrate.
func Models() []any {
	return []any{&CompanySchema{}, &EmployeeSchema{}}
}

func employeeFromDomain(e *employee.Employee) EmployeeSchema {
	return EmployeeSchema{
		ID:        e.ID,
		Name:      e.Name,
		Age:       e.Age,
		Gender:    e.Gender,
		Salary:    e.Salary,
		CompanyID: e.CompanyID,
	}
}

func (m EmployeeSchema) toDomain() employee.Employee {
	return employee.Employee{
		ID:        m.ID,
		Name:      m.Name,
		Age:       m.Age,
		Gender:    m.Gender,
		Salary:    m.Salary,
		CompanyID: m.CompanyID,
	}
}

func employeesToDomain(models []EmployeeSchema) []employee.Employee {
	out := make([]employee.Employee, len(models))
	for i, m := range models {
		out[i] = m.toDomain()
	}
	return out
}

func companyFromDomain(c *company.Company) CompanySchema {
	model := CompanySchema{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		Employees:   make([]EmployeeSchema, 0, len(c.Employees)),
	}
	for i := range c.Employees {
		model.Employees = append(model.Employees, employeeFromDomain(&c.Employees[i]))
	}
	return model
}

func (m CompanySchema) toDomain() company.Company {
	return company.Company{
		ID:          m.ID,
		CompanyName: m.CompanyName,
		Employees:   employeesToDomain(m.Employees),
	}
}

func companiesToDomain(models []CompanySchema) []company.Company {
	out := make([]company.Company, len(models))
	for i, m := range models {
		out[i] = m.toDomain()
	}
	return out
}

package employee

// Employee represents an employee entity in the system.
type Employee struct {
	ID        int64  // ID is assigned by the store on first persist
	Name      string // Name is the employee's display name
	Age       int    // Age in years
	Gender    string // Gender is free-form text, matched exactly on filter
	Salary    int    // Salary in whole currency units
	CompanyID *int64 // CompanyID is the owning company, nil when unassigned
}

package model

// EmployeeRecord is one parsed row from the source table.
// Immutable after parsing.
type EmployeeRecord struct {
	Name          string
	UserID        string // unique key within a snapshot (not enforced, see hierarchy)
	JobTitle      string
	Organization  string
	Location      string
	Email         string
	Telephone     string // first non-empty of Telephone, Mobile, Home Phone
	ManagerUserID string // empty means no manager
	Status        string // inclusion filter only
	EmployeeType  string
}

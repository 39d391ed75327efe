// Package orgchart builds hierarchical organization charts from flat
// employee lists.
//
// Quick start:
//
//	chart := orgchart.Build([]orgchart.Employee{
//	    {Name: "Ann", UserID: "a1", JobTitle: "Senior Director"},
//	    {Name: "Bob", UserID: "b1", JobTitle: "Engineer", ManagerUserID: "a1"},
//	})
//
//	for _, line := range chart.Lines() {
//	    fmt.Printf("%*s%s\n", line.Depth*2, "", line.Text)
//	}
//	fmt.Println(chart.Stats().Total)
//
// Manager references that point outside the given set promote the employee
// to a root; manager cycles are broken by promoting the most senior member
// of the cycle. Siblings are ordered by title seniority, then name.
package orgchart

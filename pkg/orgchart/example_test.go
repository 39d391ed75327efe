package orgchart_test

import (
	"fmt"

	"github.com/crimson-sun/orgchart/pkg/orgchart"
)

func ExampleBuild() {
	chart := orgchart.Build([]orgchart.Employee{
		{Name: "Ann", UserID: "a1", JobTitle: "Senior Director", Organization: "Platform"},
		{Name: "Bob", UserID: "b1", JobTitle: "Manager", Organization: "Platform", ManagerUserID: "a1"},
		{Name: "Cid", UserID: "c1", JobTitle: "Engineer", Organization: "Platform", ManagerUserID: "b1"},
	})

	for _, line := range chart.Lines() {
		fmt.Printf("%*s%s\n", line.Depth*2, "", line.Text[:line.NameEnd])
	}
	fmt.Println("total:", chart.Stats().Total)
	// Output:
	// Ann
	//   Bob
	//     Cid
	// total: 3
}

func ExampleRank() {
	fmt.Println(orgchart.Rank("Senior Director, Infrastructure"))
	fmt.Println(orgchart.Rank("Engineering Manager"))
	fmt.Println(orgchart.Rank("Software Engineer"))
	// Output:
	// 1
	// 4
	// 8
}

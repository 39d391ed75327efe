package orgchart

// Employee is one input record for Build.
// This is the stable public type — internal representations may evolve
// independently without breaking consumers.
type Employee struct {
	Name          string `json:"name"`
	UserID        string `json:"user_id"`                  // unique key within the set
	JobTitle      string `json:"job_title,omitempty"`
	Organization  string `json:"organization,omitempty"`
	Location      string `json:"location,omitempty"`
	Email         string `json:"email,omitempty"`
	Telephone     string `json:"telephone,omitempty"`
	ManagerUserID string `json:"manager_user_id,omitempty"` // empty = no manager
}

// Line is one formatted chart line in depth-first pre-order.
type Line struct {
	Depth    int    `json:"depth"`     // nesting level, root = 0
	Text     string `json:"text"`      // name plus non-empty detail fields
	NameEnd  int    `json:"name_end"`  // byte offset: Text[:NameEnd] is the employee name
	FontSize int    `json:"font_size"` // suggested point size: 14, 12, or 11
}

// Stats holds the aggregate counts for a chart.
type Stats struct {
	Total          int            `json:"total"`
	ByOrganization map[string]int `json:"by_organization"`
	ByLocation     map[string]int `json:"by_location"`
	ByLevel        map[string]int `json:"by_level"`
}

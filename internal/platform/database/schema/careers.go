package schema

// CareersPositionTable represents the 'careers.position' table
type CareersPositionTable struct {
	Table       string
	ID          string
	Title       string
	Department  string
	Location    string
	Description string
	Open        string
	SortOrder   string
	CreatedAt   string
	UpdatedAt   string
}

var CareersPosition = CareersPositionTable{
	Table:       "careers.position",
	ID:          "id",
	Title:       "title",
	Department:  "department",
	Location:    "location",
	Description: "description",
	Open:        "open",
	SortOrder:   "sortorder",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// CareersApplicationTable represents the 'careers.application' table
type CareersApplicationTable struct {
	Table       string
	ID          string
	PositionID  string
	FullName    string
	Email       string
	Phone       string
	CoverLetter string
	ResumeURL   string
	CreatedAt   string
}

var CareersApplication = CareersApplicationTable{
	Table:       "careers.application",
	ID:          "id",
	PositionID:  "positionid",
	FullName:    "fullname",
	Email:       "email",
	Phone:       "phone",
	CoverLetter: "coverletter",
	ResumeURL:   "resumeurl",
	CreatedAt:   "createdat",
}

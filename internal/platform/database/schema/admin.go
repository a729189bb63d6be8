package schema

// AdminAccountTable represents the 'admin.account' table
type AdminAccountTable struct {
	Table        string
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	Role         string
	Active       string
	CreatedAt    string
	UpdatedAt    string
}

var AdminAccount = AdminAccountTable{
	Table:        "admin.account",
	ID:           "id",
	Email:        "email",
	PasswordHash: "passwordhash",
	DisplayName:  "displayname",
	Role:         "role",
	Active:       "active",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

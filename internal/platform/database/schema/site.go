package schema

// SiteSeoEntryTable represents the 'site.seo_entry' table
type SiteSeoEntryTable struct {
	Table       string
	ID          string
	Route       string
	Title       string
	Description string
	Keywords    string
	OgImage     string
	CreatedAt   string
	UpdatedAt   string
}

var SiteSeoEntry = SiteSeoEntryTable{
	Table:       "site.seo_entry",
	ID:          "id",
	Route:       "route",
	Title:       "title",
	Description: "description",
	Keywords:    "keywords",
	OgImage:     "ogimage",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// SiteSettingTable represents the 'site.setting' table
type SiteSettingTable struct {
	Table       string
	ID          string
	Key         string
	Value       string
	Description string
	UpdatedAt   string
}

var SiteSetting = SiteSettingTable{
	Table:       "site.setting",
	ID:          "id",
	Key:         "key",
	Value:       "value",
	Description: "description",
	UpdatedAt:   "updatedat",
}

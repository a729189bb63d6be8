// Package schema centralizes table and column identifiers so repositories
// never embed raw string literals in their queries.
package schema

// ContentSectorTable represents the 'content.business_sector' table
type ContentSectorTable struct {
	Table       string
	ID          string
	Slug        string
	Title       string
	Description string
	HeroImage   string
	SortOrder   string
	Active      string
	CreatedAt   string
	UpdatedAt   string
}

var ContentSector = ContentSectorTable{
	Table:       "content.business_sector",
	ID:          "id",
	Slug:        "slug",
	Title:       "title",
	Description: "description",
	HeroImage:   "heroimage",
	SortOrder:   "sortorder",
	Active:      "active",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// ContentHeroSlideTable represents the 'content.hero_slide' table
type ContentHeroSlideTable struct {
	Table     string
	ID        string
	Title     string
	Subtitle  string
	ImageURL  string
	CtaLabel  string
	CtaURL    string
	SortOrder string
	Active    string
	CreatedAt string
	UpdatedAt string
}

var ContentHeroSlide = ContentHeroSlideTable{
	Table:     "content.hero_slide",
	ID:        "id",
	Title:     "title",
	Subtitle:  "subtitle",
	ImageURL:  "imageurl",
	CtaLabel:  "ctalabel",
	CtaURL:    "ctaurl",
	SortOrder: "sortorder",
	Active:    "active",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// ContentNewsArticleTable represents the 'content.news_article' table
type ContentNewsArticleTable struct {
	Table       string
	ID          string
	Slug        string
	Title       string
	Excerpt     string
	Body        string
	CoverImage  string
	Published   string
	PublishedAt string
	CreatedAt   string
	UpdatedAt   string
}

var ContentNewsArticle = ContentNewsArticleTable{
	Table:       "content.news_article",
	ID:          "id",
	Slug:        "slug",
	Title:       "title",
	Excerpt:     "excerpt",
	Body:        "body",
	CoverImage:  "coverimage",
	Published:   "published",
	PublishedAt: "publishedat",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// ContentTeamMemberTable represents the 'content.team_member' table
type ContentTeamMemberTable struct {
	Table     string
	ID        string
	Name      string
	Role      string
	PhotoURL  string
	Bio       string
	SortOrder string
	Active    string
	CreatedAt string
	UpdatedAt string
}

var ContentTeamMember = ContentTeamMemberTable{
	Table:     "content.team_member",
	ID:        "id",
	Name:      "name",
	Role:      "role",
	PhotoURL:  "photourl",
	Bio:       "bio",
	SortOrder: "sortorder",
	Active:    "active",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// ContentPartnerTable represents the 'content.partner' table
type ContentPartnerTable struct {
	Table      string
	ID         string
	Name       string
	LogoURL    string
	WebsiteURL string
	SortOrder  string
	Active     string
	CreatedAt  string
	UpdatedAt  string
}

var ContentPartner = ContentPartnerTable{
	Table:      "content.partner",
	ID:         "id",
	Name:       "name",
	LogoURL:    "logourl",
	WebsiteURL: "websiteurl",
	SortOrder:  "sortorder",
	Active:     "active",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}

// ContentSectionTable represents the 'content.section' table
type ContentSectionTable struct {
	Table     string
	ID        string
	Key       string
	Title     string
	Body      string
	Payload   string
	CreatedAt string
	UpdatedAt string
}

var ContentSection = ContentSectionTable{
	Table:     "content.section",
	ID:        "id",
	Key:       "key",
	Title:     "title",
	Body:      "body",
	Payload:   "payload",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

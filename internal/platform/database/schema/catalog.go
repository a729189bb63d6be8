package schema

// CatalogTileCollectionTable represents the 'catalog.tile_collection' table
type CatalogTileCollectionTable struct {
	Table     string
	ID        string
	SectorID  string
	Name      string
	Series    string
	Size      string
	Finish    string
	ImageURL  string
	SortOrder string
	Active    string
	CreatedAt string
	UpdatedAt string
}

var CatalogTileCollection = CatalogTileCollectionTable{
	Table:     "catalog.tile_collection",
	ID:        "id",
	SectorID:  "sectorid",
	Name:      "name",
	Series:    "series",
	Size:      "size",
	Finish:    "finish",
	ImageURL:  "imageurl",
	SortOrder: "sortorder",
	Active:    "active",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// CatalogTileApplicationTable represents the 'catalog.tile_application' table
type CatalogTileApplicationTable struct {
	Table           string
	ID              string
	Name            string
	Description     string
	ImageURL        string
	SuitableTileIDs string
	SortOrder       string
	Active          string
	CreatedAt       string
	UpdatedAt       string
}

var CatalogTileApplication = CatalogTileApplicationTable{
	Table:           "catalog.tile_application",
	ID:              "id",
	Name:            "name",
	Description:     "description",
	ImageURL:        "imageurl",
	SuitableTileIDs: "suitabletileids",
	SortOrder:       "sortorder",
	Active:          "active",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

// CatalogTileInstallationTable represents the 'catalog.tile_installation' table
type CatalogTileInstallationTable struct {
	Table     string
	ID        string
	Title     string
	Steps     string
	SortOrder string
	Active    string
	CreatedAt string
	UpdatedAt string
}

var CatalogTileInstallation = CatalogTileInstallationTable{
	Table:     "catalog.tile_installation",
	ID:        "id",
	Title:     "title",
	Steps:     "steps",
	SortOrder: "sortorder",
	Active:    "active",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// CatalogBathroomCategoryTable represents the 'catalog.bathroom_category' table
type CatalogBathroomCategoryTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	SortOrder   string
	Active      string
	CreatedAt   string
	UpdatedAt   string
}

var CatalogBathroomCategory = CatalogBathroomCategoryTable{
	Table:       "catalog.bathroom_category",
	ID:          "id",
	Name:        "name",
	Description: "description",
	SortOrder:   "sortorder",
	Active:      "active",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// CatalogBathroomProductTable represents the 'catalog.bathroom_product' table
type CatalogBathroomProductTable struct {
	Table          string
	ID             string
	CategoryID     string
	Name           string
	Description    string
	ImageURL       string
	Price          string
	Specifications string
	SortOrder      string
	Active         string
	CreatedAt      string
	UpdatedAt      string
}

var CatalogBathroomProduct = CatalogBathroomProductTable{
	Table:          "catalog.bathroom_product",
	ID:             "id",
	CategoryID:     "categoryid",
	Name:           "name",
	Description:    "description",
	ImageURL:       "imageurl",
	Price:          "price",
	Specifications: "specifications",
	SortOrder:      "sortorder",
	Active:         "active",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}

// CatalogBathroomInstallationTable represents the 'catalog.bathroom_installation' table
type CatalogBathroomInstallationTable struct {
	Table     string
	ID        string
	Title     string
	Steps     string
	SortOrder string
	Active    string
	CreatedAt string
	UpdatedAt string
}

var CatalogBathroomInstallation = CatalogBathroomInstallationTable{
	Table:     "catalog.bathroom_installation",
	ID:        "id",
	Title:     "title",
	Steps:     "steps",
	SortOrder: "sortorder",
	Active:    "active",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

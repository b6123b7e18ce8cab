package entities

// Catalog entities drive the order form: type, shape, preset size, filling
// and frosting. They are listed to the client filtered on IsActive and
// ordered by SortOrder.

type CakeType struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ImagePath string `json:"imagePath"`
	SortOrder int    `json:"sortOrder"`
	IsActive  bool   `json:"isActive"`
}

type CakeShape struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ImagePath string `json:"imagePath"`
	SortOrder int    `json:"sortOrder"`
	IsActive  bool   `json:"isActive"`
}

// CakeSize is a preset size belonging to a shape.
//
// Dimensions is a JSON object with shape-specific geometry:
//   - {"roundDiameterIn": 10}
//   - {"lengthIn": 12, "widthIn": 9}
type CakeSize struct {
	ID         int64  `json:"id"`
	ShapeID    int64  `json:"shapeId"`
	Name       string `json:"name"`
	Dimensions string `json:"dimensions"`
	ImagePath  string `json:"imagePath"`
	SortOrder  int    `json:"sortOrder"`
	IsActive   bool   `json:"isActive"`
}

type Filling struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ImagePath string `json:"imagePath"`
	SortOrder int    `json:"sortOrder"`
	IsActive  bool   `json:"isActive"`
}

type Frosting struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ImagePath string `json:"imagePath"`
	SortOrder int    `json:"sortOrder"`
	IsActive  bool   `json:"isActive"`
}

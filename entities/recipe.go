package entities

type Recipe struct {
	RecipeID     uint   `gorm:"column:recipe_id;primaryKey;autoIncrement" json:"recipe_id"`
	Name         string `gorm:"column:name;type:varchar(100);not null;uniqueIndex" json:"name"`
	AssetsURL    string `gorm:"column:assets_url;type:varchar(255)" json:"assets_url"`
	PeopleServed int    `gorm:"column:people_served" json:"people_served"`
	PrepTime     int    `gorm:"column:prep_time" json:"prep_time"` // minutes

	Parts []RecipePart `gorm:"foreignKey:RecipeID" json:"parts,omitempty"`
}

func (Recipe) TableName() string {
	return TableRecipes
}

// RecipePart links a product to a recipe. The (RecipeID, ProductID) pair is
// the primary key, so a product appears at most once per recipe.
type RecipePart struct {
	RecipeID  uint `gorm:"column:recipe_id;primaryKey;autoIncrement:false" json:"recipe_id"`
	ProductID uint `gorm:"column:product_id;primaryKey;autoIncrement:false;index" json:"product_id"`
	Amount    int  `gorm:"column:amount;not null" json:"amount"`
}

func (RecipePart) TableName() string {
	return TableRecipeParts
}

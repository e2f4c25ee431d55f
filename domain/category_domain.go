package domain

var (
	MessageSuccessCreateCategory   = "category created successfully"
	MessageSuccessGetCategories    = "success get categories"
	MessageSuccessGetCategoryItems = "success get category products"
	MessageSuccessUpdateCategory   = "category updated successfully"
	MessageSuccessDeleteCategory   = "category successfully deleted"

	MessageFailedCreateCategory   = "failed to create category"
	MessageFailedGetCategories    = "no categories found"
	MessageFailedGetCategoryItems = "no products found for given category ID"
	MessageFailedUpdateCategory   = "failed to update category"
	MessageFailedDeleteCategory   = "failed to delete category"

	ErrCategoryNotFound = NewRuleError(ErrNotFound, "no category found with given ID")
	ErrCategoryExists   = NewRuleError(ErrAlreadyExists, "category name already exists")
)

type (
	CategoryRequest struct {
		Name string `json:"name" validate:"required,max=100"`
	}

	CategoryResponse struct {
		CategoryID uint   `json:"category_id"`
		Name       string `json:"name"`
	}
)

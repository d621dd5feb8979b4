package domain

var (
	MessageCategoryName       = "please provide a name for the category"
	MessageCategoryUpdateName = "please provide a name to update the category"

	ErrCategoryNotFound = NewError(CodeNotFound, "category not found")
	ErrCategoryExists   = NewError(CodeInvalidInput, "a category with this name already exists")
)

type (
	CategoryRequest struct {
		Name string `validate:"required"`
	}

	CategoryFilter struct {
		ID *uint
	}
)

func (r *CategoryRequest) Normalize() {
	r.Name = trim(r.Name)
}

package domain

var (
	MessageIngredientFields       = "please provide a description and a positive quantity for the ingredient"
	MessageIngredientUpdateFields = "please provide a description or quantity to update the ingredient"
	MessageStepDescription        = "please provide a description for the step"

	ErrIngredientNotFound = NewError(CodeNotFound, "ingredient not found")
	ErrStepNotFound       = NewError(CodeNotFound, "step not found")
)

type (
	CreateIngredientRequest struct {
		RecipeID    uint   `validate:"required"`
		Description string `validate:"required"`
		Quantity    int    `validate:"required,min=1"`
	}

	UpdateIngredientRequest struct {
		Description *string
		Quantity    *int `validate:"omitempty,min=1"`
	}

	IngredientFilter struct {
		ID       *uint
		RecipeID *uint
	}

	CreateStepRequest struct {
		RecipeID    uint   `validate:"required"`
		Description string `validate:"required"`
	}

	UpdateStepRequest struct {
		Description string `validate:"required"`
	}

	StepFilter struct {
		ID       *uint
		RecipeID *uint
	}
)

func (r *CreateIngredientRequest) Normalize() {
	r.Description = trim(r.Description)
}

func (r *UpdateIngredientRequest) Normalize() {
	r.Description = trimPtr(r.Description)
}

func (r *UpdateIngredientRequest) IsEmpty() bool {
	return r.Description == nil && r.Quantity == nil
}

func (r *CreateStepRequest) Normalize() {
	r.Description = trim(r.Description)
}

func (r *UpdateStepRequest) Normalize() {
	r.Description = trim(r.Description)
}

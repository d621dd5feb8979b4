package domain

import "io"

var (
	MessageRecipeNameDescription = "please provide a name and description for the recipe"
	MessageRecipeCategories      = "please provide at least one category for the recipe"
	MessageRecipeIngredients     = "please provide at least one ingredient for the recipe"
	MessageRecipeSteps           = "please provide at least one step for the recipe"
	MessageRecipeUpdateFields    = "please provide a name or a description to update the recipe"
	MessageRecipeImageRequired   = "please provide an image file"
	MessageRecipeImageType       = "the uploaded file must be an image"

	MessageSuccessUploadRecipeImage = "recipe image uploaded successfully"
	MessageFailedUploadRecipeImage  = "failed to upload recipe image"

	ErrRecipeNotFound = NewError(CodeNotFound, "recipe not found")
)

type (
	CreateRecipeRequest struct {
		Name        string            `validate:"required"`
		Description string            `validate:"required"`
		CategoryIDs []uint            `validate:"required,min=1"`
		Ingredients []IngredientInput `validate:"required,min=1,dive"`
		Steps       []StepInput       `validate:"required,min=1,dive"`
	}

	IngredientInput struct {
		Description string `validate:"required"`
		Quantity    int    `validate:"required,min=1"`
	}

	StepInput struct {
		Description string `validate:"required"`
	}

	UpdateRecipeRequest struct {
		Name        *string
		Description *string
	}

	RecipeFilter struct {
		ID         *uint
		UserID     *uint
		CategoryID *uint
	}

	UploadRecipeImageRequest struct {
		RecipeID    uint      `validate:"required"`
		FileName    string    `validate:"required"`
		ContentType string    `validate:"required,startswith=image/"`
		Size        int64     `validate:"min=1"`
		Body        io.Reader `validate:"-"`
	}

	UploadRecipeImageResponse struct {
		RecipeID uint   `json:"recipe_id"`
		ImageURL string `json:"image_url"`
	}
)

func (r *CreateRecipeRequest) Normalize() {
	r.Name = trim(r.Name)
	r.Description = trim(r.Description)
	for i := range r.Ingredients {
		r.Ingredients[i].Description = trim(r.Ingredients[i].Description)
	}
	for i := range r.Steps {
		r.Steps[i].Description = trim(r.Steps[i].Description)
	}
}

// RecipeMessages maps a failing top-level field to the message returned to the caller.
var RecipeMessages = map[string]string{
	"Name":        MessageRecipeNameDescription,
	"Description": MessageRecipeNameDescription,
	"CategoryIDs": MessageRecipeCategories,
	"Ingredients": MessageRecipeIngredients,
	"Steps":       MessageRecipeSteps,
}

func (r *UpdateRecipeRequest) Normalize() {
	r.Name = trimPtr(r.Name)
	r.Description = trimPtr(r.Description)
}

func (r *UpdateRecipeRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil
}

package domain

var (
	MessageReviewFields       = "please provide a title, text and a rating between 1 and 5 for the review"
	MessageReviewUpdateFields = "please provide a title, text or rating to update the review"
	MessageReviewRating       = "the rating must be between 1 and 5"

	ErrReviewNotFound  = NewError(CodeNotFound, "review not found")
	ErrDuplicateReview = NewError(CodeDuplicateReview, "you already have a review of this recipe")
)

type (
	CreateReviewRequest struct {
		RecipeID uint   `validate:"required"`
		Title    string `validate:"required"`
		Text     string `validate:"required"`
		Rating   int    `validate:"required,min=1,max=5"`
	}

	UpdateReviewRequest struct {
		Title  *string
		Text   *string
		Rating *int `validate:"omitempty,min=1,max=5"`
	}

	ReviewFilter struct {
		ID       *uint
		RecipeID *uint
		UserID   *uint
	}
)

func (r *CreateReviewRequest) Normalize() {
	r.Title = trim(r.Title)
	r.Text = trim(r.Text)
}

func (r *UpdateReviewRequest) Normalize() {
	r.Title = trimPtr(r.Title)
	r.Text = trimPtr(r.Text)
}

func (r *UpdateReviewRequest) IsEmpty() bool {
	return r.Title == nil && r.Text == nil && r.Rating == nil
}

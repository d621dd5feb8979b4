package domain

import "Recipe-Sharing-API/entities"

var (
	MessageRegisterFieldsRequired = "please provide a name, email and password"
	MessageInvalidEmail           = "provided email is not valid"
	MessageLoginIdentifier        = "please provide a name or email"
	MessageLoginPassword          = "please provide a password"
	MessageNewNameRequired        = "please provide the new name"
	MessageNewEmailRequired       = "please provide the new email"
	MessagePasswordsRequired      = "please provide the current and new passwords"
	MessagePasswordTooLong        = "the password must not exceed 72 bytes"

	ErrUserNotFound      = NewError(CodeNotFound, "user not found")
	ErrEmailTaken        = NewError(CodeInvalidInput, "email is already in use")
	ErrIncorrectPassword = NewError(CodeUnauthenticated, "provided password is incorrect")
	ErrCurrentPassword   = NewError(CodeInvalidInput, "the provided current password is incorrect")
)

type (
	RegisterRequest struct {
		Name     string `validate:"required"`
		Email    string `validate:"required,email"`
		Password string `validate:"required"`
	}

	LoginRequest struct {
		Name     *string
		Email    *string
		Password string `validate:"required"`
	}

	UpdateNameRequest struct {
		NewName string `validate:"required"`
	}

	UpdateEmailRequest struct {
		NewEmail string `validate:"required,email"`
	}

	UpdatePasswordRequest struct {
		Password    string `validate:"required"`
		NewPassword string `validate:"required"`
	}

	UserFilter struct {
		ID *uint
	}

	AuthInfo struct {
		User  *entities.User
		Token string
	}
)

func (r *RegisterRequest) Normalize() {
	r.Name = trim(r.Name)
	r.Email = trim(r.Email)
	r.Password = trim(r.Password)
}

func (r *LoginRequest) Normalize() {
	r.Name = trimPtr(r.Name)
	r.Email = trimPtr(r.Email)
	r.Password = trim(r.Password)
}

func (r *UpdateNameRequest) Normalize() {
	r.NewName = trim(r.NewName)
}

func (r *UpdateEmailRequest) Normalize() {
	r.NewEmail = trim(r.NewEmail)
}

func (r *UpdatePasswordRequest) Normalize() {
	r.Password = trim(r.Password)
	r.NewPassword = trim(r.NewPassword)
}

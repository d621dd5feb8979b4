package user

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"Recipe-Sharing-API/internal/utils"
	"Recipe-Sharing-API/internal/utils/mailing"
	"Recipe-Sharing-API/pkg/authz"
	"Recipe-Sharing-API/pkg/jwt"
	"context"
	"errors"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthInfo, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthInfo, error)
		UpdateName(ctx context.Context, actor *entities.User, req domain.UpdateNameRequest) (*entities.User, error)
		UpdateEmail(ctx context.Context, actor *entities.User, req domain.UpdateEmailRequest) (*entities.User, error)
		UpdatePassword(ctx context.Context, actor *entities.User, req domain.UpdatePasswordRequest) (*entities.User, error)
		DeleteUser(ctx context.Context, actor *entities.User, id uint) (*entities.User, error)
		GetUsers(ctx context.Context, filter domain.UserFilter) ([]entities.User, error)
		GetUserByID(ctx context.Context, id uint) (*entities.User, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		guard          *authz.Guard
		mailer         mailing.Mailer
		appURL         string
	}
)

func NewUserService(
	userRepository UserRepository,
	jwtService jwt.JWTService,
	guard *authz.Guard,
	mailer mailing.Mailer,
) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		guard:          guard,
		mailer:         mailer,
		appURL:         utils.GetConfig("APP_URL"),
	}
}

// OwnerLookup treats every user as their own owner.
func OwnerLookup(userRepository UserRepository) authz.OwnerLookup {
	return func(ctx context.Context, id uint) (uint, error) {
		user, err := userRepository.GetUserByID(ctx, id)
		if err != nil {
			return 0, notFound(err)
		}
		return user.ID, nil
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrUserNotFound
	}
	return err
}

func hashPassword(password string) (string, error) {
	hashed, err := utils.HashPassword(password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.InvalidInput(domain.MessagePasswordTooLong)
	}
	return hashed, err
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthInfo, error) {
	req.Normalize()
	if err := utils.Validate.Struct(req); err != nil {
		if utils.FailedOn(err, "email") {
			return domain.AuthInfo{}, domain.InvalidInput(domain.MessageInvalidEmail)
		}
		return domain.AuthInfo{}, domain.InvalidInput(domain.MessageRegisterFieldsRequired)
	}

	hashedPassword, err := hashPassword(req.Password)
	if err != nil {
		return domain.AuthInfo{}, err
	}

	user := &entities.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     entities.RoleUser,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.AuthInfo{}, err
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return domain.AuthInfo{}, err
	}

	s.sendWelcomeMail(user)

	created, err := s.userRepository.GetUserByID(ctx, user.ID)
	if err != nil {
		return domain.AuthInfo{}, notFound(err)
	}
	return domain.AuthInfo{User: created, Token: token}, nil
}

func (s *userService) sendWelcomeMail(user *entities.User) {
	if s.mailer == nil {
		return
	}
	name, email := user.Name, user.Email
	go func() {
		if err := s.mailer.SendMail(email, "Welcome to the recipe book", mailing.WelcomeBody(name, s.appURL)); err != nil {
			log.Errorf("failed to send welcome mail to %s: %v", email, err)
		}
	}()
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthInfo, error) {
	req.Normalize()
	if req.Name == nil && req.Email == nil {
		return domain.AuthInfo{}, domain.InvalidInput(domain.MessageLoginIdentifier)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return domain.AuthInfo{}, domain.InvalidInput(domain.MessageLoginPassword)
	}

	user, err := s.userRepository.FindUser(ctx, req.Name, req.Email)
	if err != nil {
		return domain.AuthInfo{}, notFound(err)
	}

	if !utils.ComparePassword(req.Password, user.Password) {
		return domain.AuthInfo{}, domain.ErrIncorrectPassword
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return domain.AuthInfo{}, err
	}
	return domain.AuthInfo{User: user, Token: token}, nil
}

// loadSelf re-reads the caller so that every self-service change works on
// fresh state and fails for an account deleted after its token was issued.
func (s *userService) loadSelf(ctx context.Context, actor *entities.User) (*entities.User, error) {
	if err := s.guard.RequireOwnerOrAdmin(ctx, actor, authz.KindUser, actor.ID); err != nil {
		return nil, err
	}
	user, err := s.userRepository.GetUserByID(ctx, actor.ID)
	if err != nil {
		return nil, notFound(err)
	}
	return user, nil
}

func (s *userService) save(ctx context.Context, user *entities.User) (*entities.User, error) {
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	updated, err := s.userRepository.GetUserByID(ctx, user.ID)
	if err != nil {
		return nil, notFound(err)
	}
	return updated, nil
}

func (s *userService) UpdateName(ctx context.Context, actor *entities.User, req domain.UpdateNameRequest) (*entities.User, error) {
	req.Normalize()
	if err := utils.Validate.Struct(req); err != nil {
		return nil, domain.InvalidInput(domain.MessageNewNameRequired)
	}
	if err := authz.RequireRole(actor, authz.AnyRole...); err != nil {
		return nil, err
	}

	user, err := s.loadSelf(ctx, actor)
	if err != nil {
		return nil, err
	}
	user.Name = req.NewName
	return s.save(ctx, user)
}

func (s *userService) UpdateEmail(ctx context.Context, actor *entities.User, req domain.UpdateEmailRequest) (*entities.User, error) {
	req.Normalize()
	if err := utils.Validate.Struct(req); err != nil {
		if utils.FailedOn(err, "email") {
			return nil, domain.InvalidInput(domain.MessageInvalidEmail)
		}
		return nil, domain.InvalidInput(domain.MessageNewEmailRequired)
	}
	if err := authz.RequireRole(actor, authz.AnyRole...); err != nil {
		return nil, err
	}

	user, err := s.loadSelf(ctx, actor)
	if err != nil {
		return nil, err
	}
	user.Email = req.NewEmail
	return s.save(ctx, user)
}

func (s *userService) UpdatePassword(ctx context.Context, actor *entities.User, req domain.UpdatePasswordRequest) (*entities.User, error) {
	req.Normalize()
	if err := utils.Validate.Struct(req); err != nil {
		return nil, domain.InvalidInput(domain.MessagePasswordsRequired)
	}
	if err := authz.RequireRole(actor, authz.AnyRole...); err != nil {
		return nil, err
	}

	user, err := s.loadSelf(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !utils.ComparePassword(req.Password, user.Password) {
		return nil, domain.ErrCurrentPassword
	}

	hashedPassword, err := hashPassword(req.NewPassword)
	if err != nil {
		return nil, err
	}
	user.Password = hashedPassword
	return s.save(ctx, user)
}

func (s *userService) DeleteUser(ctx context.Context, actor *entities.User, id uint) (*entities.User, error) {
	if err := s.guard.Authorize(ctx, actor, authz.AnyRole, authz.KindUser, id); err != nil {
		return nil, err
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return nil, notFound(err)
	}
	return user, nil
}

func (s *userService) GetUsers(ctx context.Context, filter domain.UserFilter) ([]entities.User, error) {
	return s.userRepository.GetUsers(ctx, filter)
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return user, nil
}

package user

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/campusconnect/campus-scheduler/internal/audit"
	domain "github.com/campusconnect/campus-scheduler/internal/domain/user"
	"github.com/campusconnect/campus-scheduler/internal/httperr"
	"github.com/campusconnect/campus-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateUserInput struct {
	Name       string
	Email      string
	Password   string
	Role       string
	FirstName  string
	LastName   string
	Phone      string
	Department string
}

// ======================================================
// USE CASE
// ======================================================

type CreateUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateUser(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *CreateUser {
	return &CreateUser{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute provisions a teacher or student account on behalf of an
// admin. Admin accounts are never created through this path.
func (uc *CreateUser) Execute(
	ctx context.Context,
	adminID uint,
	in CreateUserInput,
) (*models.User, error) {

	if in.Role != models.RoleTeacher && in.Role != models.RoleStudent {
		return nil, httperr.ErrBusiness("invalid_role")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	taken, err := uc.repo.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("email_taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         in.Role,
		Profile: &models.Profile{
			FirstName:  in.FirstName,
			LastName:   in.LastName,
			Phone:      in.Phone,
			Department: in.Department,
		},
	}

	if err := uc.repo.CreateWithProfile(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "user_created",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"role": u.Role},
	})

	return u, nil
}

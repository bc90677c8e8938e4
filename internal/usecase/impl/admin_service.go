// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "dealhub/internal/delivery/context"
	"dealhub/internal/domain/entity"
	domainerrors "dealhub/internal/domain/errors"
	"dealhub/internal/domain/repository"
	"dealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	adminRepo repository.AdminRepository
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	AdminRepo repository.AdminRepository
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager: params.TxManager,
		adminRepo: params.AdminRepo,
		logger:    params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IsAdmin reports whether the user holds a grant. Any resolution error
// yields false: access checks fail closed.
func (srv *adminService) IsAdmin(ctx context.Context, userID uuid.UUID) bool {
	if _, err := srv.adminRepo.FindAdminByUserID(ctx, userID); err != nil {
		if !errors.Is(err, repository.ErrAdminNotFound) {
			srv.log(ctx).Error("Admin check failed, denying access", slog.Any("error", err), slog.Any("userID", userID))
		}

		return false
	}

	return true
}

// GetAdminForUser returns the grant held by a user.
func (srv *adminService) GetAdminForUser(ctx context.Context, userID uuid.UUID) (*entity.AdminUser, error) {
	admin, err := srv.adminRepo.FindAdminByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrAdminNotFound.WrapMessage("admin grant lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find admin grant by user")
	}

	return admin, nil
}

// ListAdmins returns all grant records.
func (srv *adminService) ListAdmins(ctx context.Context) ([]*entity.AdminUser, error) {
	admins, err := srv.adminRepo.ListAdmins(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list admin grants", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list admin grants")
	}

	return admins, nil
}

// MakeAdmin grants back-office access to a user.
func (srv *adminService) MakeAdmin(ctx context.Context, userID uuid.UUID, role entity.Role) (*entity.AdminUser, error) {
	srv.log(ctx).Info("Granting admin access", slog.Any("userID", userID), slog.String("role", role.String()))

	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown admin role")
	}

	newAdmin := &entity.AdminUser{
		UserID: userID,
		Role:   role,
	}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// Grants reference a user row; a dangling grant locks nobody in.
		if _, err := repoFactory.UserRepo().FindByID(ctx, userID); err != nil {
			return domainerrors.ErrUserNotFound.WrapMessage("admin grant failed")
		}

		if err := repoFactory.AdminRepo().CreateAdmin(ctx, newAdmin); err != nil {
			if errors.Is(err, repository.ErrDuplicateAdmin) {
				return domainerrors.ErrAdminAlreadyExists.WrapMessage("admin grant failed")
			}

			return errors.Wrap(err, "failed to create admin grant")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Admin grant failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute admin grant transaction")
	}

	return newAdmin, nil
}

// RemoveAdmin revokes a grant record. The acting user may not revoke
// their own grant.
func (srv *adminService) RemoveAdmin(ctx context.Context, actorUserID, grantID uuid.UUID) error {
	srv.log(ctx).Info("Revoking admin access", slog.Any("grantID", grantID), slog.Any("actorUserID", actorUserID))

	grant, err := srv.adminRepo.FindAdminByID(ctx, grantID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domainerrors.ErrAdminNotFound.WrapMessage("admin revocation failed")
		}

		return errors.Wrap(err, "failed to find admin grant for revocation")
	}

	if grant.UserID == actorUserID {
		return domainerrors.ErrAdminSelfRevocation.WrapMessage("admins cannot revoke their own grant")
	}

	if err := srv.adminRepo.DeleteAdmin(ctx, grantID); err != nil {
		srv.log(ctx).Error("Failed to delete admin grant", slog.Any("error", err), slog.Any("grantID", grantID))

		return errors.Wrap(err, "failed to delete admin grant")
	}

	return nil
}

// Package seed populates the database with default records on startup.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/studenthub/backend/internal/app/models"
	appRepos "github.com/studenthub/backend/internal/app/repositories"
)

const defaultAdminEmail = "admin@studenthub.app"

// CreateDefaultData creates default institutions and the platform admin
// account when the database is empty. Existing records are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	institutionRepo := appRepos.NewInstitutionRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	defaults := []appModels.Institution{
		{Name: "State University", Code: "SU", Address: "1 University Ave", ContactEmail: "contact@stateuniversity.edu"},
		{Name: "City Technical College", Code: "CTC", Address: "42 College Rd", ContactEmail: "info@citytech.edu"},
	}

	for i := range defaults {
		inst := &defaults[i]
		exists, err := institutionRepo.CodeExists(ctx, inst.Code)
		if err != nil {
			lgr.Error().Err(err).Str("code", inst.Code).Msg("Error checking institution")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}
		if err := institutionRepo.Create(ctx, inst); err != nil {
			lgr.Error().Err(err).Str("code", inst.Code).Msg("Error creating default institution")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Str("name", inst.Name).Msg("Default institution created")
		}
	}

	if err := createDefaultAdmin(ctx, userRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

// createDefaultAdmin creates the initial admin account with a well-known
// password that must be changed after first login.
func createDefaultAdmin(ctx context.Context, userRepo *appRepos.UserRepository, lgr zerolog.Logger) error {
	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking default admin account")
		return err
	}
	if exists {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), 12)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &appModels.User{
		Email:              defaultAdminEmail,
		Password:           string(hashed),
		FullName:           "Platform Admin",
		Role:               appModels.RoleAdmin,
		VerificationStatus: appModels.VerificationVerified,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"store_service/internal/domain"
)

// passwordCost is lowered by tests.
var passwordCost = bcrypt.DefaultCost

type StoreUseCase interface {
	RegisterStore(ctx context.Context, reg *domain.StoreRegistration) (*domain.Store, error)
	GetStore(ctx context.Context, id int) (*domain.Store, error)
	UpdateStore(ctx context.Context, id int, updates map[string]interface{}) (*domain.Store, error)
	DeleteStore(ctx context.Context, id int) error
	Login(ctx context.Context, creds domain.Credentials) (*domain.Store, error)
}

type storeUseCase struct {
	storeRepo domain.StoreRepository
	audit     LogUseCase
	log       *logrus.Logger
}

func NewStoreUseCase(repo domain.StoreRepository, audit LogUseCase, logger *logrus.Logger) StoreUseCase {
	return &storeUseCase{
		storeRepo: repo,
		audit:     audit,
		log:       logger,
	}
}

func (uc *storeUseCase) RegisterStore(ctx context.Context, reg *domain.StoreRegistration) (*domain.Store, error) {
	const endpoint = "/register"

	email := strings.ToLower(strings.TrimSpace(reg.Email))
	store := &domain.Store{
		StoreName:        strings.TrimSpace(reg.StoreName),
		StoreType:        strings.TrimSpace(reg.StoreType),
		StoreDescription: strings.TrimSpace(reg.StoreDescription),
		ContactNumber:    strings.TrimSpace(reg.ContactNumber),
		Email:            email,
	}

	if store.StoreName == "" || store.StoreType == "" || store.ContactNumber == "" ||
		email == "" || reg.Password == "" || reg.Latitude == nil || reg.Longitude == nil {
		uc.log.Warnf("Use Case: Registration rejected for %q - missing required fields", email)
		uc.audit.Audit(ctx, domain.LogLevelError, "Missing required fields", email, endpoint)
		return nil, domain.NewValidationError(domain.ErrMissingFields)
	}
	store.Latitude = *reg.Latitude
	store.Longitude = *reg.Longitude

	hashed, err := bcrypt.GenerateFromPassword([]byte(reg.Password), passwordCost)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to hash password for %s: %v", email, err)
		return nil, fmt.Errorf("internal error processing password: %w", err)
	}
	store.PasswordHash = string(hashed)

	created, err := uc.storeRepo.CreateStore(ctx, store)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create store for %s: %v", email, err)
		uc.audit.Audit(ctx, domain.LogLevelError, "Database error: "+err.Error(), email, endpoint)
		return nil, err
	}

	uc.audit.Audit(ctx, domain.LogLevelInfo, "Store registered successfully", email, endpoint)
	uc.log.Infof("Use Case: Store registered successfully. ID: %d, Email: %s", created.ID, created.Email)
	return created, nil
}

func (uc *storeUseCase) GetStore(ctx context.Context, id int) (*domain.Store, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get store with invalid ID: %d", id)
		return nil, domain.NewValidationError(errors.New("invalid store ID"))
	}
	store, err := uc.storeRepo.GetStoreByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get store ID %d: %v", id, err)
		return nil, err
	}
	return store, nil
}

func (uc *storeUseCase) UpdateStore(ctx context.Context, id int, updates map[string]interface{}) (*domain.Store, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted update with invalid store ID: %d", id)
		return nil, domain.NewValidationError(errors.New("invalid store ID for update"))
	}

	validUpdates := make(map[string]interface{})
	for key, value := range updates {
		switch key {
		case "store_name", "store_type", "contact_number", "email":
			s, ok := value.(string)
			s = strings.TrimSpace(s)
			if !ok || s == "" {
				uc.log.Warnf("Use Case: Invalid or empty '%s' provided for store update ID %d", key, id)
				return nil, domain.NewValidationError(fmt.Errorf("%s cannot be empty if provided for update", key))
			}
			if key == "email" {
				s = strings.ToLower(s)
			}
			validUpdates[key] = s
		case "store_description":
			s, ok := value.(string)
			if !ok && value != nil {
				return nil, domain.NewValidationError(errors.New("invalid type for store_description"))
			}
			validUpdates[key] = strings.TrimSpace(s)
		case "latitude", "longitude":
			f, ok := value.(float64)
			if !ok {
				uc.log.Warnf("Use Case: Invalid '%s' provided for store update ID %d", key, id)
				return nil, domain.NewValidationError(fmt.Errorf("invalid type for %s", key))
			}
			validUpdates[key] = f
		default:
			uc.log.Warnf("Use Case: Attempted to update unknown or unsupported field '%s' for store ID %d", key, id)
		}
	}

	if len(validUpdates) == 0 {
		uc.log.Infof("Use Case: No valid fields remaining after validation for store update ID %d", id)
		return uc.storeRepo.GetStoreByID(ctx, id)
	}

	updated, err := uc.storeRepo.UpdateStore(ctx, id, validUpdates)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed partial update for store ID %d: %v", id, err)
		return nil, err
	}
	uc.log.Infof("Use Case: Store updated successfully for ID %d", updated.ID)
	return updated, nil
}

func (uc *storeUseCase) DeleteStore(ctx context.Context, id int) error {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted delete with invalid store ID: %d", id)
		return domain.NewValidationError(errors.New("invalid store ID for delete"))
	}
	if err := uc.storeRepo.DeleteStore(ctx, id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete store ID %d: %v", id, err)
		return err
	}
	uc.log.Infof("Use Case: Store deleted successfully for ID %d", id)
	return nil
}

func (uc *storeUseCase) Login(ctx context.Context, creds domain.Credentials) (*domain.Store, error) {
	const endpoint = "/login"

	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if email == "" || creds.Password == "" {
		uc.log.Warn("Use Case: Login rejected - missing email or password")
		uc.audit.Audit(ctx, domain.LogLevelError, "Login attempt with missing fields", email, endpoint)
		return nil, domain.NewValidationError(errors.New("email and password are required"))
	}

	store, err := uc.storeRepo.GetStoreByEmail(ctx, email)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			uc.log.Warnf("Use Case: Login failed - store not found: %s", email)
			uc.audit.Audit(ctx, domain.LogLevelError, "Login failed: Invalid credentials", email, endpoint)
			return nil, domain.ErrInvalidCredentials
		}
		uc.log.Errorf("Use Case: Error retrieving store %s during login: %v", email, err)
		return nil, fmt.Errorf("failed to retrieve store: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(store.PasswordHash), []byte(creds.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			uc.log.Warnf("Use Case: Login failed - incorrect password for %s (ID: %d)", email, store.ID)
			uc.audit.Audit(ctx, domain.LogLevelError, "Login failed: Invalid credentials", email, endpoint)
			return nil, domain.ErrInvalidCredentials
		}
		uc.log.Errorf("Use Case: Error comparing password hash for %s: %v", email, err)
		return nil, fmt.Errorf("internal error during authentication: %w", err)
	}

	uc.audit.Audit(ctx, domain.LogLevelInfo, "Login successful", email, endpoint)
	uc.log.Infof("Use Case: Login successful for %s (ID: %d)", email, store.ID)
	return store, nil
}

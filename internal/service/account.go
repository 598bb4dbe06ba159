package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/workflow-tracker-server/internal/apierror"
	"github.com/dtroode/workflow-tracker-server/internal/logger"
	"github.com/dtroode/workflow-tracker-server/internal/model"
)

// Account registers accounts and verifies credentials.
type Account struct {
	accountStore model.AccountStore
	queryTimeout time.Duration
	now          func() time.Time
	logger       *logger.Logger
}

func NewAccount(accountStore model.AccountStore, queryTimeout time.Duration, logger *logger.Logger) *Account {
	return &Account{
		accountStore: accountStore,
		queryTimeout: queryTimeout,
		now:          time.Now,
		logger:       logger,
	}
}

// Register creates an account unless one with the same email exists.
//
// The lookup and the insert are separate store calls; a registration racing
// between them is rejected by the store's uniqueness check instead.
func (a *Account) Register(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return apierror.NewErrValidation("All fields are required.")
	}

	a.logger.Debug("Account service: starting registration",
		"email", email)

	_, err := withTimeout(ctx, a.queryTimeout, func(ctx context.Context) (model.Account, error) {
		return a.accountStore.GetByEmail(ctx, email)
	})
	if err == nil {
		a.logger.Info("Account service: account already exists",
			"email", email)
		return apierror.NewErrAccountExists()
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Account service: failed to get account by email",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to get account by email: %w", err)
	}

	account := model.Account{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Password:  password,
		CreatedAt: a.now(),
	}

	_, err = withTimeout(ctx, a.queryTimeout, func(ctx context.Context) (model.Account, error) {
		return a.accountStore.Create(ctx, account)
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		a.logger.Info("Account service: account created concurrently",
			"email", email)
		return apierror.NewErrAccountExists()
	}
	if err != nil {
		a.logger.Error("Account service: failed to create account",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to create account: %w", err)
	}

	a.logger.Info("Account service: new account registered",
		"email", email)

	return nil
}

// Login succeeds only when an account matches both email and password exactly.
func (a *Account) Login(ctx context.Context, email, password string) error {
	a.logger.Debug("Account service: verifying credentials",
		"email", email)

	_, err := withTimeout(ctx, a.queryTimeout, func(ctx context.Context) (model.Account, error) {
		return a.accountStore.GetByCredentials(ctx, email, password)
	})
	if errors.Is(err, model.ErrNotFound) {
		return apierror.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.Error("Account service: failed to get account by credentials",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to get account by credentials: %w", err)
	}

	return nil
}

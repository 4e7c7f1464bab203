package services

import (
	"rentledger/config"
	"rentledger/internal/database"
	"rentledger/internal/metrics"
	"rentledger/internal/repositories"
)

type Service struct {
	Transaction   *TransactionService
	Ownership     *OwnershipService
	Authorization *AuthorizationService
	Policy        *PolicyService
	Meter         *MeterService
	Token         *TokenService
	Password      *PasswordService
	Report        *ReportService
	Metrics       *metrics.Metrics
}

func New(
	db database.DB,
	repos repositories.Repository,
	config config.Config,
	m *metrics.Metrics,
) (Service, error) {
	policyService, err := NewPolicyService()
	if err != nil {
		return Service{}, err
	}

	ownershipService := NewOwnershipService(db, repos, m)

	return Service{
		Transaction:   NewTransactionService(db),
		Ownership:     ownershipService,
		Authorization: NewAuthorizationService(db, ownershipService, repos.User, m),
		Policy:        policyService,
		Meter:         NewMeterService(repos.Utility, m),
		Token:         NewTokenService(config),
		Password:      NewPasswordService(config.BcryptCost),
		Report:        NewReportService(),
		Metrics:       m,
	}, nil
}

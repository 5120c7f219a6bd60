package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/allisson/parkledger/internal/cache"
	ledgerService "github.com/allisson/parkledger/internal/ledger/service"
	mirrorService "github.com/allisson/parkledger/internal/mirror/service"
	sessionHTTP "github.com/allisson/parkledger/internal/session/http"
	"github.com/allisson/parkledger/internal/session/repository"
	sessionService "github.com/allisson/parkledger/internal/session/service"
	sessionUseCase "github.com/allisson/parkledger/internal/session/usecase"
)

// SessionKey returns the 32-byte session encryption key, loading and
// unwrapping it from configuration on first access.
func (c *Container) SessionKey() ([]byte, error) {
	var err error
	c.sessionKeyInit.Do(func() {
		c.sessionKey, err = sessionService.LoadSessionKey(
			context.Background(),
			c.config.SessionKey,
			c.config.SessionKeyURI,
		)
		if err != nil {
			c.initErrors["sessionKey"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionKey"]; exists {
		return nil, storedErr
	}
	return c.sessionKey, nil
}

// Envelope returns the AES-256-GCM metadata envelope.
func (c *Container) Envelope() (sessionService.Envelope, error) {
	var err error
	c.envelopeInit.Do(func() {
		c.envelope, err = c.initEnvelope()
		if err != nil {
			c.initErrors["envelope"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["envelope"]; exists {
		return nil, storedErr
	}
	return c.envelope, nil
}

// PlateHasher returns the keyed plate digest service.
func (c *Container) PlateHasher() (sessionService.PlateHasher, error) {
	var err error
	c.plateHasherInit.Do(func() {
		c.plateHasher, err = c.initPlateHasher()
		if err != nil {
			c.initErrors["plateHasher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["plateHasher"]; exists {
		return nil, storedErr
	}
	return c.plateHasher, nil
}

// TokenClient returns the session token ledger client.
func (c *Container) TokenClient() (*ledgerService.SessionTokenClient, error) {
	var err error
	c.tokenClientInit.Do(func() {
		c.tokenClient, err = c.initTokenClient()
		if err != nil {
			c.initErrors["tokenClient"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenClient"]; exists {
		return nil, storedErr
	}
	return c.tokenClient, nil
}

// MirrorClient returns the ledger mirror client.
func (c *Container) MirrorClient() (*mirrorService.Client, error) {
	var err error
	c.mirrorClientInit.Do(func() {
		c.mirrorClient, err = c.initMirrorClient()
		if err != nil {
			c.initErrors["mirrorClient"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["mirrorClient"]; exists {
		return nil, storedErr
	}
	return c.mirrorClient, nil
}

// SessionRepository returns the session repository based on database driver.
func (c *Container) SessionRepository() (sessionUseCase.SessionRepository, error) {
	var err error
	c.sessionRepoInit.Do(func() {
		c.sessionRepo, err = c.initSessionRepository()
		if err != nil {
			c.initErrors["sessionRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionRepo"]; exists {
		return nil, storedErr
	}
	return c.sessionRepo, nil
}

// StatusCache returns the plate status cache.
// A no-op cache is returned when Redis is disabled.
func (c *Container) StatusCache() (sessionUseCase.StatusCache, error) {
	var err error
	c.statusCacheInit.Do(func() {
		c.statusCache, err = c.initStatusCache()
		if err != nil {
			c.initErrors["statusCache"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["statusCache"]; exists {
		return nil, storedErr
	}
	return c.statusCache, nil
}

// SessionUseCase returns the session use case.
func (c *Container) SessionUseCase() (sessionUseCase.SessionUseCase, error) {
	var err error
	c.sessionUseCaseInit.Do(func() {
		c.sessionUseCase, err = c.initSessionUseCase()
		if err != nil {
			c.initErrors["sessionUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionUseCase"]; exists {
		return nil, storedErr
	}
	return c.sessionUseCase, nil
}

// SessionHandler returns the HTTP handler for session operations.
func (c *Container) SessionHandler() (*sessionHTTP.SessionHandler, error) {
	var err error
	c.sessionHandlerInit.Do(func() {
		c.sessionHandler, err = c.initSessionHandler()
		if err != nil {
			c.initErrors["sessionHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionHandler"]; exists {
		return nil, storedErr
	}
	return c.sessionHandler, nil
}

// initEnvelope creates the metadata envelope from the session key.
func (c *Container) initEnvelope() (sessionService.Envelope, error) {
	key, err := c.SessionKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get session key for envelope: %w", err)
	}
	return sessionService.NewAESGCMEnvelope(key)
}

// initPlateHasher creates the plate hasher from the session key.
func (c *Container) initPlateHasher() (sessionService.PlateHasher, error) {
	key, err := c.SessionKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get session key for plate hasher: %w", err)
	}
	return sessionService.NewPlateHasher(key)
}

// initTokenClient creates the token client over the REST ledger gateway.
func (c *Container) initTokenClient() (*ledgerService.SessionTokenClient, error) {
	envelope, err := c.Envelope()
	if err != nil {
		return nil, fmt.Errorf("failed to get envelope for token client: %w", err)
	}

	ledger := ledgerService.NewRESTLedger(c.config.LedgerGatewayURL, nil)

	return ledgerService.NewSessionTokenClient(ledger, envelope, c.Logger()), nil
}

// initMirrorClient creates the mirror client.
func (c *Container) initMirrorClient() (*mirrorService.Client, error) {
	envelope, err := c.Envelope()
	if err != nil {
		return nil, fmt.Errorf("failed to get envelope for mirror client: %w", err)
	}

	return mirrorService.NewClient(c.config.MirrorBaseURL, nil, envelope, c.Logger()), nil
}

// initSessionRepository creates the session repository based on the database driver.
func (c *Container) initSessionRepository() (sessionUseCase.SessionRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for session repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return repository.NewPostgreSQLSessionRepository(db), nil
	case "mysql":
		return repository.NewMySQLSessionRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initStatusCache creates the plate status cache.
func (c *Container) initStatusCache() (sessionUseCase.StatusCache, error) {
	if !c.config.RedisEnabled {
		return sessionUseCase.NopStatusCache{}, nil
	}

	c.redisClientInit.Do(func() {
		c.redisClient = redis.NewClient(&redis.Options{Addr: c.config.RedisAddr})
	})

	return cache.NewStatusCache(c.redisClient, c.config.RedisStatusTTL, c.Logger()), nil
}

// initSessionUseCase creates the session use case with all its dependencies.
func (c *Container) initSessionUseCase() (sessionUseCase.SessionUseCase, error) {
	sessionRepo, err := c.SessionRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get session repository for session use case: %w", err)
	}

	tokenClient, err := c.TokenClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get token client for session use case: %w", err)
	}

	mirrorClient, err := c.MirrorClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get mirror client for session use case: %w", err)
	}

	plateHasher, err := c.PlateHasher()
	if err != nil {
		return nil, fmt.Errorf("failed to get plate hasher for session use case: %w", err)
	}

	statusCache, err := c.StatusCache()
	if err != nil {
		return nil, fmt.Errorf("failed to get status cache for session use case: %w", err)
	}

	useCase := sessionUseCase.NewSessionUseCase(
		sessionRepo,
		tokenClient,
		mirrorClient,
		plateHasher,
		statusCache,
		c.config.LedgerTokenID,
		c.Logger(),
	)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for session use case: %w", err)
	}

	return sessionUseCase.NewSessionUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initSessionHandler creates the session HTTP handler.
func (c *Container) initSessionHandler() (*sessionHTTP.SessionHandler, error) {
	useCase, err := c.SessionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get session use case for session handler: %w", err)
	}

	return sessionHTTP.NewSessionHandler(useCase, c.Logger()), nil
}

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stockee/backend/config"
	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/infra/dependency"
	"github.com/stockee/backend/internal/integration/adapters"
	"github.com/stockee/backend/internal/integration/persistence"
	"github.com/stockee/backend/internal/integration/persistence/model"
	"github.com/stockee/backend/test/integration/mock"
)

const (
	testJWTSecret       = "test-jwt-secret-key-for-testing-purposes"
	defaultTestPassword = "SecurePass123!"
	rateLimitWindow     = time.Minute
)

// suite holds everything shared by all scenarios: one database, one Redis,
// one fake Resend API and one HTTP server.
type suite struct {
	db           *mock.Db
	redis        *mock.Redis
	resend       *mock.ApiMock
	injector     *dependency.Injector
	server       *httptest.Server
	tokenService adapter.TokenService
}

var (
	suiteOnce sync.Once
	shared    *suite
)

type testContext struct {
	*suite

	client       *http.Client
	headers      map[string]string
	response     *response
	accessToken  string
	refreshToken string
	users        map[string]uuid.UUID
	// values captured from responses, substituted as {{name}}
	vars map[string]string
}

type response struct {
	status int
	body   any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})

	ctx.AfterSuite(func() {
		if shared != nil && shared.server != nil {
			shared.server.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Fixture steps
	ctx.Given(`^"([^"]*)" owns a group named "([^"]*)"$`, test.ownsAGroupNamed)
	ctx.Given(`^"([^"]*)" is a member of group "([^"]*)"$`, test.isAMemberOfGroup)
	ctx.Given(`^a personal item "([^"]*)" with quantity (\d+) exists for "([^"]*)"$`, test.aPersonalItemExistsFor)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I send (\d+) "([^"]*)" requests to "([^"]*)" with body:$`, test.iSendRequestsToWithBody)
	ctx.When(`^I save the response field "([^"]*)" as "([^"]*)"$`, test.iSaveTheResponseFieldAs)
	ctx.When(`^the email queue is processed$`, test.theEmailQueueIsProcessed)
	ctx.When(`^the rate limit window has passed$`, test.theRateLimitWindowHasPassed)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) entries$`, test.theResponseFieldShouldHaveEntries)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// External API assertion steps
	ctx.Then(`^the email provider should have received (\d+) emails?$`, test.theEmailProviderShouldHaveReceived)
	ctx.Then(`^the email provider request (\d+) field "([^"]*)" should contain "([^"]*)"$`, test.theEmailProviderRequestFieldShouldContain)
}

func (t *testContext) before() error {
	t.suite = bootSuite()
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.users = make(map[string]uuid.UUID)
	t.vars = make(map[string]string)

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	if err := t.redis.Clear(); err != nil {
		return err
	}
	t.resend.Reset()
	t.resend.SetResponse(http.MethodPost, "/emails", http.StatusOK, map[string]any{"id": "re_" + uuid.NewString()})
	return nil
}

func bootSuite() *suite {
	suiteOnce.Do(func() {
		testDB := mock.NewDb(model.All()...)
		redisMock := mock.NewRedis()

		resend := mock.NewApiServer()
		resend.Start()

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.JWT.Secret = testJWTSecret
		cfg.RateLimit.LoginAttempts = 5
		cfg.RateLimit.JoinAttempts = 10
		cfg.RateLimit.Window = rateLimitWindow
		cfg.Email.ResendAPIKey = "re_test_key"
		cfg.Email.ResendBaseURL = resend.GetUrl()
		cfg.Email.AppBaseURL = "http://stockee.test"

		dbCheck := func(ctx context.Context) error {
			sqlDB, err := testDB.DbConn.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}

		injector, err := dependency.NewInjector(cfg, testDB.DbConn, redisMock.Client, dbCheck)
		if err != nil {
			panic(fmt.Sprintf("failed to wire application: %v", err))
		}

		shared = &suite{
			db:           testDB,
			redis:        redisMock,
			resend:       resend,
			injector:     injector,
			server:       httptest.NewServer(injector.Router.Setup(cfg.Server.Environment)),
			tokenService: adapters.NewTokenService(testJWTSecret, persistence.NewTokenRepository(testDB.DbConn)),
		}
	})

	return shared
}

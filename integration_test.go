//go:build integration

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"oop-pillars/internal/config"
	"oop-pillars/internal/server"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

type IntegrationTestSuite struct {
	suite.Suite
	postgresContainer *postgres.PostgresContainer
	serverInstance    *server.Server
	baseURL           string
	client            *http.Client
}

func (suite *IntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("oop_pillars"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		suite.T().Fatalf("Failed to start postgres container: %s", err)
	}
	suite.postgresContainer = postgresContainer

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		suite.T().Fatalf("Failed to get container host: %s", err)
	}

	port, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		suite.T().Fatalf("Failed to get mapped port: %s", err)
	}

	// Migrations run inside StartServer.
	cfg := &config.Config{
		ServerPort: "0",
		DBHost:     host,
		DBPort:     port.Port(),
		DBUser:     "postgres",
		DBPassword: "password",
		DBName:     "oop_pillars",
		DBSSLMode:  "disable",
	}

	serverInstance, serverPort, err := server.StartServer(cfg)
	if err != nil {
		suite.T().Fatalf("Failed to start application server: %s", err)
	}
	suite.serverInstance = serverInstance
	suite.baseURL = "http://localhost:" + serverPort

	suite.client = &http.Client{
		Timeout: 30 * time.Second,
	}

	if err := suite.waitForServerReady(); err != nil {
		suite.T().Fatalf("Server not ready: %s", err)
	}
}

func (suite *IntegrationTestSuite) waitForServerReady() error {
	timeout := 30 * time.Second
	start := time.Now()

	for time.Since(start) < timeout {
		resp, err := http.Get(suite.baseURL + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return nil
		}
		if resp != nil {
			resp.Body.Close()
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}

func (suite *IntegrationTestSuite) TearDownSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if suite.serverInstance != nil {
		suite.serverInstance.Stop(ctx)
	}

	if suite.postgresContainer != nil {
		testcontainers.TerminateContainer(suite.postgresContainer)
	}
}

func (suite *IntegrationTestSuite) do(method, path string, reqBody interface{}) (int, map[string]interface{}) {
	var body io.Reader
	if reqBody != nil {
		raw, _ := json.Marshal(reqBody)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, suite.baseURL+path, body)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := suite.client.Do(req)
	suite.Require().NoError(err)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	suite.T().Logf("%s %s -> %d %s", method, path, resp.StatusCode, raw)

	var response map[string]interface{}
	if err := json.Unmarshal(raw, &response); err != nil {
		suite.T().Fatalf("Failed to parse response: %s", raw)
	}
	return resp.StatusCode, response
}

func (suite *IntegrationTestSuite) operation(kind, amount, idempotencyKey string) (int, map[string]interface{}) {
	reqBody := map[string]interface{}{"amount": amount}
	if idempotencyKey != "" {
		reqBody["idempotency_key"] = idempotencyKey
	}
	return suite.do(http.MethodPost, "/accounts/ACC123/"+kind, reqBody)
}

func (suite *IntegrationTestSuite) assertBalance(expected string) {
	status, response := suite.do(http.MethodGet, "/accounts/ACC123", nil)
	assert.Equal(suite.T(), http.StatusOK, status)

	data := response["data"].(map[string]interface{})
	actual, err := decimal.NewFromString(data["balance"].(string))
	suite.Require().NoError(err)
	assert.True(suite.T(), decimal.RequireFromString(expected).Equal(actual),
		"Decimal values not equal: expected %s, got %s", expected, actual)
}

func (suite *IntegrationTestSuite) errorCode(response map[string]interface{}) string {
	errorInfo, ok := response["error"].(map[string]interface{})
	if !assert.True(suite.T(), ok, "Response should have 'error' field") {
		return ""
	}
	return errorInfo["code"].(string)
}

// ------------------------------------------------------------------
// Steps run in the order TestFlow invokes them; each builds on the
// balance left by the previous one.
// ------------------------------------------------------------------

func (suite *IntegrationTestSuite) stepDemoTranscript() {
	resp, err := suite.client.Get(suite.baseURL + "/demo")
	suite.Require().NoError(err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	assert.Contains(suite.T(), string(body), "Insufficient funds!\n")
}

func (suite *IntegrationTestSuite) stepOpenAccount() {
	status, _ := suite.do(http.MethodPost, "/accounts", map[string]interface{}{
		"account_number":  "ACC123",
		"initial_balance": "1000.0",
	})
	assert.Equal(suite.T(), http.StatusCreated, status)

	status, response := suite.do(http.MethodPost, "/accounts", map[string]interface{}{
		"account_number":  "ACC123",
		"initial_balance": "1",
	})
	assert.Equal(suite.T(), http.StatusConflict, status)
	assert.Equal(suite.T(), "duplicate_account", suite.errorCode(response))

	suite.assertBalance("1000")
}

func (suite *IntegrationTestSuite) stepScriptedSequence() {
	status, response := suite.operation("deposits", "500", "")
	assert.Equal(suite.T(), http.StatusCreated, status)
	assert.Equal(suite.T(), "1500.0", response["data"].(map[string]interface{})["balance_after"])

	status, _ = suite.operation("withdrawals", "200", "")
	assert.Equal(suite.T(), http.StatusCreated, status)

	status, response = suite.operation("withdrawals", "2000", "")
	assert.Equal(suite.T(), http.StatusUnprocessableEntity, status)
	assert.Equal(suite.T(), "insufficient_funds", suite.errorCode(response))

	suite.assertBalance("1300")
}

func (suite *IntegrationTestSuite) stepInvalidDeposit() {
	status, response := suite.operation("deposits", "-5", "")
	assert.Equal(suite.T(), http.StatusBadRequest, status)
	assert.Equal(suite.T(), "invalid_amount", suite.errorCode(response))

	suite.assertBalance("1300")
}

func (suite *IntegrationTestSuite) stepIdempotentDeposit() {
	key := uuid.New().String()

	status, first := suite.operation("deposits", "100", key)
	assert.Equal(suite.T(), http.StatusCreated, status)

	status, second := suite.operation("deposits", "100", key)
	assert.Equal(suite.T(), http.StatusCreated, status)

	assert.Equal(suite.T(),
		first["data"].(map[string]interface{})["transaction_id"],
		second["data"].(map[string]interface{})["transaction_id"])

	suite.assertBalance("1400")
}

func (suite *IntegrationTestSuite) stepHistory() {
	status, response := suite.do(http.MethodGet, "/accounts/ACC123/transactions", nil)
	assert.Equal(suite.T(), http.StatusOK, status)

	entries := response["data"].([]interface{})
	// deposit, withdrawal, rejected withdrawal, rejected deposit, idempotent deposit
	assert.Len(suite.T(), entries, 5)
}

func (suite *IntegrationTestSuite) stepUnknownAccount() {
	status, response := suite.do(http.MethodGet, "/accounts/NOPE", nil)
	assert.Equal(suite.T(), http.StatusNotFound, status)
	assert.Equal(suite.T(), "account_not_found", suite.errorCode(response))
}

func (suite *IntegrationTestSuite) TestFlow() {
	suite.stepDemoTranscript()
	suite.stepOpenAccount()
	suite.stepScriptedSequence()
	suite.stepInvalidDeposit()
	suite.stepIdempotentDeposit()
	suite.stepHistory()
	suite.stepUnknownAccount()
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

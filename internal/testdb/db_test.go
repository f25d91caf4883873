package testdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTestDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ACCOUNTS_TEST_DB_URL", "")
	assert.Empty(t, GetTestDatabaseURL())
	assert.False(t, IsIntegrationTestEnvironment())

	t.Setenv("ACCOUNTS_TEST_DB_URL", "postgres://fallback")
	assert.Equal(t, "postgres://fallback", GetTestDatabaseURL())

	t.Setenv("DATABASE_URL", "postgres://primary")
	assert.Equal(t, "postgres://primary", GetTestDatabaseURL())
	assert.True(t, IsIntegrationTestEnvironment())
}

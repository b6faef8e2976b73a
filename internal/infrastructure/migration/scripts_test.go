package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The migrate command reads versioned SQL from the scripts directory; a
// fresh deploy with no scripts would have no schema at all outside
// development auto-migrate.
func TestVersionedScriptsShipInitialSchema(t *testing.T) {
	entries, err := os.ReadDir("scripts")
	require.NoError(t, err)

	var sqlFiles []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".sql") {
			sqlFiles = append(sqlFiles, e.Name())
		}
	}
	require.NotEmpty(t, sqlFiles, "no versioned SQL scripts found")

	tables := []string{
		"users", "hotels", "hotel_counters", "products", "orders",
		"plans", "subscriptions", "payments", "coupons", "coupon_usages",
		"tickets", "ticket_comments", "ticket_attachments", "notifications",
	}

	var all strings.Builder
	for _, name := range sqlFiles {
		body, err := os.ReadFile(filepath.Join("scripts", name))
		require.NoError(t, err)

		script := string(body)
		assert.Contains(t, script, "-- +goose Up", "%s missing up marker", name)
		assert.Contains(t, script, "-- +goose Down", "%s missing down marker", name)
		all.WriteString(script)
	}

	for _, table := range tables {
		assert.Contains(t, all.String(), "CREATE TABLE "+table+" ", "no CREATE TABLE for %s", table)
	}
	assert.Contains(t, all.String(), "phone_number")
	assert.Contains(t, all.String(), "current_subscription_id")
}

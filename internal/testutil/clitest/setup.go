// Package clitest builds CLI instances for command tests.
// It lives apart from testutil so service tests can import testutil
// without pulling in the CLI.
package clitest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/testutil"
)

// SetupCLITest creates an in-memory database and a CLI over it.
// The clock is pinned to testutil.FixedNow.
func SetupCLITest(t *testing.T) *cli.CLI {
	t.Helper()

	db, err := database.Open(context.Background(), database.Options{Path: database.MemoryPath})
	require.NoError(t, err, "failed to create test database")

	application := app.New(db,
		app.WithLogger(testutil.DiscardLogger()),
		app.WithClock(func() time.Time { return testutil.FixedNow }),
	)

	c := cli.New(application, config.Default())
	t.Cleanup(func() {
		_ = c.Close()
	})
	return c
}

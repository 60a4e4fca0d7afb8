package cmd

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"fieldroutes/internal/adapters/out/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot() CompositionRoot {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCompositionRoot(Config{
		Timezone:        "UTC",
		StaleRouteAfter: 8 * time.Hour,
	}, nil, logger)
}

func TestCompositionRoot_UsesUnitOfWorkPort(t *testing.T) {
	root := newTestRoot()

	require.IsType(t, &postgres.GormUnitOfWorkFactory{}, root.uowFactory)
	uow := root.uowFactory.Create()
	assert.NotNil(t, uow)
	assert.NotSame(t, uow, root.uowFactory.Create())
}

func TestCompositionRoot_BuildsHandlers(t *testing.T) {
	root := newTestRoot()

	assert.NotNil(t, root.CreateHTTPServer())

	jobManager, err := root.CreateJobManager()
	require.NoError(t, err)
	assert.Equal(t, 0, jobManager.Len())
}

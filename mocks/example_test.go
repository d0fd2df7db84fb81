package mocks_test

import (
	"context"
	"testing"

	"github.com/jmgilman/go/placeholder"
	"github.com/jmgilman/go/placeholder/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Example test showing how to use the GatewayMock
func TestExampleUsingMock(t *testing.T) {
	ctx := context.Background()

	// Create and configure mock gateway
	mock := &mocks.GatewayMock{
		ListUsersFunc: func(ctx context.Context) ([]placeholder.User, error) {
			return []placeholder.User{
				{ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz"},
			}, nil
		},
	}

	// Use the mock
	client, err := placeholder.NewClient(mock)
	require.NoError(t, err)

	users, err := client.Users().List(ctx)
	require.NoError(t, err)

	// Served from the cache the second time
	_, err = client.Users().List(ctx)
	require.NoError(t, err)

	// Assert behavior
	require.Len(t, users, 1)
	assert.Equal(t, "Leanne Graham", users[0].Name)
	assert.Len(t, mock.ListUsersCalls(), 1)
}

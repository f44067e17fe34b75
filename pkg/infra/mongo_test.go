package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMongoConnection_InvalidURL(t *testing.T) {
	client, err := NewMongoConnection(MongoConfig{URL: "not-a-connection-string"})

	assert.Error(t, err)
	assert.Nil(t, client)
}

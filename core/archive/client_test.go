package archive_test

import (
	"testing"

	"order-manager/core/archive"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := archive.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "order-snapshots",
			Region:    "us-east-1",
		}

		client, err := archive.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithScheme", func(t *testing.T) {
		cfg := archive.Config{
			Endpoint:  "https://minio.internal:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
		}

		client, err := archive.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("InvalidEndpoint", func(t *testing.T) {
		cfg := archive.Config{
			Endpoint: "://bad",
		}

		client, err := archive.NewClient(cfg)
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

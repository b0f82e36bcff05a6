package server_test

import (
	"testing"

	"order-manager/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Origins(t *testing.T) {
	tests := []struct {
		name    string
		origins string
		want    []string
	}{
		{"Wildcard", "*", []string{"*"}},
		{"Single", "https://example.com", []string{"https://example.com"}},
		{"Multiple", "https://a.test, https://b.test", []string{"https://a.test", "https://b.test"}},
		{"TrailingComma", "https://a.test,", []string{"https://a.test"}},
		{"Empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{CORSOrigins: tt.origins}
			assert.Equal(t, tt.want, c.Origins())
		})
	}
}

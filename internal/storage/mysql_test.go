package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kcisum/internal/config"
	"kcisum/internal/domain"
)

func TestDSN(t *testing.T) {
	settings := config.DatabaseSettings{
		Host:     "127.0.0.1",
		Port:     "3306",
		User:     "kci",
		Password: "secret",
		Name:     "kernelci",
	}

	assert.Equal(t, "kci:secret@tcp(127.0.0.1:3306)/kernelci", DSN(settings, true))
	assert.Equal(t, "kci:secret@tcp(127.0.0.1:3306)/", DSN(settings, false))

	settings.Host = "::1"
	assert.Equal(t, "kci:secret@tcp([::1]:3306)/kernelci", DSN(settings, true))
}

func TestValidIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"boot_results", true},
		{"kernelci2", true},
		{"", false},
		{"boot-results", false},
		{"results`; DROP TABLE x", false},
		{"a.b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidIdentifier(tt.name))
		})
	}
}

func TestOpenMySQL_InvalidTable(t *testing.T) {
	_, err := OpenMySQL(config.DatabaseSettings{Host: "127.0.0.1", Port: "3306"}, "bad-name")
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.ErrCodeConfig))
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesConfig(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "localhost:9090")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://u:p@localhost:5432/contacts")
	t.Setenv("APP_PAGE_SIZE", "25")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://u:p@localhost:5432/contacts", cfg.Storage.DB.DSN)
	assert.Equal(t, 25, cfg.App.PageSize)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "localhost with port", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip with port", input: "127.0.0.1:9000", want: "127.0.0.1:9000"},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:abc", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr.String())
		})
	}
}

func TestNetAddress_String_Empty(t *testing.T) {
	var addr NetAddress
	assert.Equal(t, "", addr.String())
}

func TestParseJSON_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"app": {"version": "1.0.0", "page_size": 15},
		"storage": {"db": {"dsn": "postgres://localhost/contacts"}},
		"server": {"http_address": "0.0.0.0:8081", "request_timeout": "45s"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, 15, cfg.App.PageSize)
	assert.Equal(t, "postgres://localhost/contacts", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestValidate_DefaultsAndRequired(t *testing.T) {
	cfg := &StructuredConfig{}
	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)

	cfg.Storage.DB.DSN = "postgres://localhost/contacts"
	require.NoError(t, cfg.validate())

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10, cfg.App.PageSize)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"1m30s"`)))
	assert.Equal(t, Duration(90*time.Second), d)

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, Duration(time.Second), d)

	assert.Error(t, d.UnmarshalJSON([]byte(`true`)))
	assert.Error(t, d.UnmarshalJSON([]byte(`"not-a-duration"`)))
}

package config

import (
	"testing"

	v "github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

// setValid fills viper with a minimal runnable configuration
func setValid() {
	v.Reset()
	v.Set("app.log_level", "info")
	v.Set("host.port", 8080)
	v.Set("host.cors", []string{"http://localhost:5173"})
	v.Set("db.driver", "sqlite")
	v.Set("db.dsn", "database.db")
	v.Set("jwt.secret", "secret")
	v.Set("mail.on_failure", "log_and_continue")
	v.Set("google.client_id", "client")
	v.Set("google.link_policy", "link-by-email")
}

func TestValidate(t *testing.T) {
	t.Cleanup(v.Reset)

	tests := []struct {
		name    string
		key     string
		value   any
		wantErr bool
	}{
		{"valid config", "", nil, false},
		{"bad log level", "app.log_level", "loud", true},
		{"bad port", "host.port", 0, true},
		{"no cors origins", "host.cors", []string{}, true},
		{"bad driver", "db.driver", "oracle", true},
		{"empty dsn", "db.dsn", "", true},
		{"missing jwt secret", "jwt.secret", "", true},
		{"bad mail policy", "mail.on_failure", "retry", true},
		{"propagate without mail host", "mail.on_failure", "propagate", true},
		{"missing google client id", "google.client_id", "", true},
		{"bad link policy", "google.link_policy", "merge", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setValid()
			if tt.key != "" {
				v.Set(tt.key, tt.value)
			}

			err := validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

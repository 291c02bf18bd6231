package bootstrap

import (
	"testing"

	"github.com/AuraHubTeam/AuraHub/internal/conf"
)

func TestInitConfigRequiresCredentials(t *testing.T) {
	tests := []struct {
		name    string
		login   string
		key     string
		wantErr bool
	}{
		{name: "both set", login: "l", key: "k", wantErr: false},
		{name: "missing key", login: "l", key: "", wantErr: true},
		{name: "missing login", login: "", key: "k", wantErr: true},
		{name: "missing both", login: "", key: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STREAMTAPE_LOGIN", tt.login)
			t.Setenv("STREAMTAPE_KEY", tt.key)
			err := InitConfig()
			if (err != nil) != tt.wantErr {
				t.Fatalf("InitConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestInitConfigDefaults(t *testing.T) {
	t.Setenv("STREAMTAPE_LOGIN", "l")
	t.Setenv("STREAMTAPE_KEY", "k")
	if err := InitConfig(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.Conf.Upstream.BaseURL != "https://api.streamtape.com" {
		t.Errorf("unexpected base url default: %s", conf.Conf.Upstream.BaseURL)
	}
	if conf.Conf.Upstream.TimeoutSeconds != 30 {
		t.Errorf("unexpected timeout default: %d", conf.Conf.Upstream.TimeoutSeconds)
	}
	if conf.Conf.AllowedOrigins != "*" {
		t.Errorf("unexpected origins default: %s", conf.Conf.AllowedOrigins)
	}
}

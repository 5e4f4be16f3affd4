package launch_test

import (
	"testing"

	"github.com/aelexs/bridge-launcher/internal/config"
	"github.com/aelexs/bridge-launcher/internal/launch"
	"github.com/stretchr/testify/assert"
)

func TestNewCommand(t *testing.T) {
	tests := []struct {
		name     string
		port     string
		wantPort string
	}{
		{"empty port uses default", "", "8001"},
		{"default port", "8001", "8001"},
		{"explicit port", "9090", "9090"},
		{"non-numeric port is passed through", "abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Port: tt.port, Server: "uvicorn"}

			cmd := launch.NewCommand(cfg, nil)

			assert.Equal(t, "uvicorn", cmd.Path)
			assert.Equal(t, []string{"uvicorn", "app.main:app", "--host", "0.0.0.0", "--port", tt.wantPort}, cmd.Args)
			assert.Equal(t, tt.wantPort, cmd.Port)
			assert.Equal(t, []string{"PORT=" + tt.wantPort}, cmd.Env)
		})
	}
}

func TestNewCommandDefaultServer(t *testing.T) {
	cmd := launch.NewCommand(&config.Config{}, nil)

	assert.Equal(t, "uvicorn", cmd.Path)
	assert.Equal(t, "uvicorn", cmd.Args[0])
}

func TestNewCommandCustomServer(t *testing.T) {
	cmd := launch.NewCommand(&config.Config{Server: "/opt/venv/bin/uvicorn", Port: "8080"}, nil)

	assert.Equal(t, "/opt/venv/bin/uvicorn", cmd.Path)
	assert.Equal(t, "/opt/venv/bin/uvicorn", cmd.Args[0])
}

func TestNewCommandEnvironment(t *testing.T) {
	environ := []string{
		"PATH=/usr/bin",
		"PORT=",
		"TELEGRAM_API_ID=42",
		"PORTAL=keep",
	}

	cmd := launch.NewCommand(&config.Config{Port: ""}, environ)

	assert.Equal(t, []string{
		"PATH=/usr/bin",
		"TELEGRAM_API_ID=42",
		"PORTAL=keep",
		"PORT=8001",
	}, cmd.Env)
	assert.Equal(t, "PORT=", environ[1], "input environment must not be modified")
}

package domain_test

import (
	"testing"

	"github.com/aelexs/bridge-launcher/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsValidMode(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want bool
	}{
		{name: "exec is valid", mode: "exec", want: true},
		{name: "child is valid", mode: "child", want: true},
		{name: "empty is invalid", mode: "", want: false},
		{name: "EXEC is invalid (case-sensitive)", mode: "EXEC", want: false},
		{name: "fork is invalid", mode: "fork", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsValidMode(tt.mode))
		})
	}
}

func TestLaunchContract(t *testing.T) {
	assert.Equal(t, "8001", domain.DefaultPort)
	assert.Equal(t, "0.0.0.0", domain.BindHost)
	assert.Equal(t, "app.main:app", domain.AppTarget)
}

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "missing pattern",
			cfg:     Config{},
			wantErr: "no pattern",
		},
		{
			name: "valid minimal",
			cfg:  Config{Pattern: "foo"},
		},
		{
			name: "valid with context",
			cfg:  Config{Pattern: "foo", After: 2, Before: 3},
		},
		{
			name:    "negative after",
			cfg:     Config{Pattern: "foo", After: -1},
			wantErr: "context after",
		},
		{
			name:    "negative before",
			cfg:     Config{Pattern: "foo", Before: -2},
			wantErr: "context before",
		},
		{
			name:    "fixed and pcre",
			cfg:     Config{Pattern: "foo", Fixed: true, PCRE: true},
			wantErr: "cannot use",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

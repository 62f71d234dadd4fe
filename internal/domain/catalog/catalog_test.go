package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   int
		wantErr bool
	}{
		{"ground level", 0, false},
		{"top level", 3, false},
		{"below ground", -1, true},
		{"above rack", 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLevel(tt.level)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrLevelOutOfRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

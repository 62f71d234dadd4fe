package placements

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name    string
		current *Placement
		slotID  int64
		want    Outcome
	}{
		{
			name:    "never placed",
			current: nil,
			slotID:  100,
			want:    OutcomePlaced,
		},
		{
			name:    "same slot is a no-op",
			current: &Placement{PackageID: 50, SlotID: 100},
			slotID:  100,
			want:    OutcomeUnchanged,
		},
		{
			name:    "different slot is a move",
			current: &Placement{PackageID: 50, SlotID: 100},
			slotID:  101,
			want:    OutcomeMoved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decide(tt.current, tt.slotID))
		})
	}
}

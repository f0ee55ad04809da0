package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualifiesFantasyland(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		board *Board
		want  bool
	}{
		{"queens", strongBoard(), true},
		{"jacks", MustParseBoard("Jc Jd 2h", "Kc Kd Kh 3s 4d", "Ac Ad Ah As 5c"), false},
		{"trips kings", MustParseBoard("Kc Kd Ks", "Ac Ad Ah 2s 3d", "5c 6c 7c 8c 9c"), true},
		{"trips deuces", MustParseBoard("2c 2d 2s", "Ac Ad Ah 3s 4d", "5c 6c 7c 8c 9c"), false},
		{"joker pairs the queen", MustParseBoard("X1 Qh 2c", "Kc Kd 7h 3s 4d", "Ac Ad 9h 9s 7c"), true},
		{"fouled aces", MustParseBoard("Ac Ad 2h", "Kc Qd 9h 7s 3d", "Tc Td 3c 4h 6s"), false},
		{"no pair", weakBoard(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := QualifiesFantasyland(tt.board)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQualifiesFantasylandRequiresCompleteBoard(t *testing.T) {
	t.Parallel()
	_, err := QualifiesFantasyland(MustParseBoard("Qc Qd 2h", "", ""))
	assert.ErrorIs(t, err, ErrInvalidBoardState)
}

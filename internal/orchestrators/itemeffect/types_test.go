package itemeffect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/monster-api/internal/errors"
	"github.com/KirkDiggler/monster-api/internal/orchestrators/itemeffect"
)

func TestParseEffect(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    *itemeffect.Effect
		wantErr bool
	}{
		{
			name: "learn_mm",
			in:   "learn_mm fire",
			want: &itemeffect.Effect{Name: itemeffect.EffectLearnMM, Params: []string{"fire"}},
		},
		{
			name: "extra whitespace",
			in:   "  LEARN_MM   water ",
			want: &itemeffect.Effect{Name: itemeffect.EffectLearnMM, Params: []string{"water"}},
		},
		{name: "empty", in: "   ", wantErr: true},
		{name: "missing element", in: "learn_mm", wantErr: true},
		{name: "two elements", in: "learn_mm fire water", wantErr: true},
		{name: "unknown", in: "capture 3", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := itemeffect.ParseEffect(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

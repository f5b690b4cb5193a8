package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		raw     string
		want    Mode
		wantErr bool
	}{
		{raw: "light", want: ModeLight},
		{raw: "DARK", want: ModeDark},
		{raw: " Auto ", want: ModeAuto},
		{raw: "neon", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseMode(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEffectiveResolvesAuto(t *testing.T) {
	m := &Manager{mode: ModeAuto, lastSystemDark: true}
	assert.Equal(t, ModeDark, m.Effective())

	m.lastSystemDark = false
	assert.Equal(t, ModeLight, m.Effective())

	m.mode = ModeDark
	assert.Equal(t, ModeDark, m.Effective())
}

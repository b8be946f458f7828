package damage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sasakirione/pokesim/damage"
	"github.com/sasakirione/pokesim/ptype"
)

func TestSTAB(t *testing.T) {
	tests := []struct {
		name string
		in   damage.STABInput
		want float64
	}{
		{
			name: "ordinary type match",
			in: damage.STABInput{
				OriginalTypes:  []ptype.Type{ptype.Water},
				EffectiveTypes: []ptype.Type{ptype.Water},
				MoveType:       ptype.Water,
			},
			want: 1.5,
		},
		{
			name: "no match",
			in: damage.STABInput{
				OriginalTypes:  []ptype.Type{ptype.Water},
				EffectiveTypes: []ptype.Type{ptype.Water},
				MoveType:       ptype.Fire,
			},
			want: 1.0,
		},
		{
			name: "temporary type grants stab",
			in: damage.STABInput{
				OriginalTypes:  []ptype.Type{ptype.Water},
				EffectiveTypes: []ptype.Type{ptype.Ghost},
				MoveType:       ptype.Ghost,
			},
			want: 1.5,
		},
		{
			name: "terastal matching an original type",
			in: damage.STABInput{
				OriginalTypes:  []ptype.Type{ptype.Dragon, ptype.Ground},
				EffectiveTypes: []ptype.Type{ptype.Dragon, ptype.Ground},
				TerastalActive: true,
				TerastalType:   ptype.Dragon,
				MoveType:       ptype.Dragon,
			},
			want: 2.0,
		},
		{
			name: "terastal into a new type",
			in: damage.STABInput{
				OriginalTypes:  []ptype.Type{ptype.Dragon, ptype.Ground},
				EffectiveTypes: []ptype.Type{ptype.Dragon, ptype.Ground},
				TerastalActive: true,
				TerastalType:   ptype.Steel,
				MoveType:       ptype.Steel,
			},
			want: 1.5,
		},
		{
			name: "terastal active but move uses an original type",
			in: damage.STABInput{
				OriginalTypes:  []ptype.Type{ptype.Dragon, ptype.Ground},
				EffectiveTypes: []ptype.Type{ptype.Dragon, ptype.Ground},
				TerastalActive: true,
				TerastalType:   ptype.Steel,
				MoveType:       ptype.Ground,
			},
			want: 1.5,
		},
		{
			name: "inactive terastal type grants nothing",
			in: damage.STABInput{
				OriginalTypes:  []ptype.Type{ptype.Dragon},
				EffectiveTypes: []ptype.Type{ptype.Dragon},
				TerastalActive: false,
				TerastalType:   ptype.Steel,
				MoveType:       ptype.Steel,
			},
			want: 1.0,
		},
		{
			name: "normal move never gets stab",
			in: damage.STABInput{
				OriginalTypes:  []ptype.Type{ptype.Normal},
				EffectiveTypes: []ptype.Type{ptype.Normal},
				MoveType:       ptype.Normal,
			},
			want: 1.0,
		},
		{
			name: "normal terastal still no stab",
			in: damage.STABInput{
				OriginalTypes:  []ptype.Type{ptype.Normal},
				EffectiveTypes: []ptype.Type{ptype.Normal},
				TerastalActive: true,
				TerastalType:   ptype.Normal,
				MoveType:       ptype.Normal,
			},
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, damage.STAB(tt.in))
		})
	}
}

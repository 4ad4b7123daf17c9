package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type level int

func TestTruthy(t *testing.T) {
	zero := 0
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"true", true, true},
		{"false", false, false},
		{"string", "up", true},
		{"empty string", "", false},
		{"int", 30, true},
		{"negative int", -1, true},
		{"zero int", 0, false},
		{"int64", int64(5), true},
		{"float", 0.5, true},
		{"zero float", 0.0, false},
		{"NaN", math.NaN(), false},
		{"float32", float32(2), true},
		{"uint", uint(0), false},
		{"named int", level(3), true},
		{"named zero", level(0), false},
		{"pointer", &zero, true},
		{"nil pointer", (*int)(nil), false},
		{"empty slice", []string{}, true},
		{"nil slice", []string(nil), false},
		{"struct", struct{}{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truthy(tt.value))
		})
	}
}

func TestPolicyIncludes(t *testing.T) {
	assert.False(t, PolicyTruthy.Includes(0))
	assert.True(t, PolicyExplicit.Includes(0))
	assert.True(t, PolicyExplicit.Includes(false))
	assert.False(t, PolicyExplicit.Includes(nil))
	assert.False(t, PolicyExplicit.Includes((*int)(nil)))
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    InclusionPolicy
		wantErr bool
	}{
		{"truthy", PolicyTruthy, false},
		{"", PolicyTruthy, false},
		{"EXPLICIT", PolicyExplicit, false},
		{" explicit ", PolicyExplicit, false},
		{"strict", PolicyTruthy, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePolicy(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "truthy", PolicyTruthy.String())
	assert.Equal(t, "explicit", PolicyExplicit.String())
	assert.Equal(t, "InclusionPolicy(7)", InclusionPolicy(7).String())
}

package utils_test

import (
	"testing"

	"foodfunk/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    int
		wantErr bool
	}{
		{"Int", 7, 7, false},
		{"Int64", int64(12), 12, false},
		{"WholeFloat", float64(100), 100, false},
		{"FractionalFloat", 1.5, 0, true},
		{"String", " 42 ", 42, false},
		{"Bytes", []byte("3"), 3, false},
		{"Garbage", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ToInt(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		in      any
		want    bool
		wantErr bool
	}{
		{true, true, false},
		{"true", true, false},
		{"1", true, false},
		{"yes", true, false},
		{"OFF", false, false},
		{0, false, false},
		{1, true, false},
		{[]byte("false"), false, false},
		{"maybe", false, true},
	}

	for _, tt := range tests {
		got, err := utils.ToBool(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "%v", tt.in)
			continue
		}
		assert.NoError(t, err, "%v", tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}
}

func TestToFloatAndString(t *testing.T) {
	f, err := utils.ToFloat(" 0.25")
	assert.NoError(t, err)
	assert.Equal(t, 0.25, f)

	_, err = utils.ToFloat("x")
	assert.Error(t, err)

	s, err := utils.ToString(12)
	assert.NoError(t, err)
	assert.Equal(t, "12", s)

	s, err = utils.ToString([]byte("raw"))
	assert.NoError(t, err)
	assert.Equal(t, "raw", s)
}

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromGOOS(t *testing.T) {
	tests := []struct {
		goos string
		want Family
	}{
		{"darwin", Darwin},
		{"linux", Linux},
		{"windows", Other},
		{"freebsd", Other},
		{"", Other},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, fromGOOS(tt.goos))
		})
	}
}

func TestDetect_ReturnsKnownFamily(t *testing.T) {
	family := Detect()
	assert.Contains(t, []Family{Darwin, Linux, Other}, family)
}

func TestFamily_String(t *testing.T) {
	assert.Equal(t, "darwin", Darwin.String())
	assert.Equal(t, "linux", Linux.String())
	assert.Equal(t, "other", Other.String())
}

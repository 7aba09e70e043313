package macaddr

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want net.HardwareAddr
	}{
		{
			name: "colon separated",
			in:   "0a:0b:0c:0d:0e:0f",
			want: net.HardwareAddr{0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f},
		},
		{
			name: "hyphen separated",
			in:   "0a-0b-0c-0d-0e-0f",
			want: net.HardwareAddr{0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f},
		},
		{
			name: "mixed separators",
			in:   "02:00-5e:00-53:01",
			want: net.HardwareAddr{0x02, 0x00, 0x5e, 0x00, 0x53, 0x01},
		},
		{
			name: "uppercase hex",
			in:   "DE:AD:BE:EF:00:01",
			want: net.HardwareAddr{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01},
		},
		{
			name: "single digit groups",
			in:   "a:b:c:d:e:f",
			want: net.HardwareAddr{0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	const in = "02:1a:2b:3c:4d:5e"
	mac, err := Parse(in)
	require.NoError(t, err)
	assert.Equal(t, in, mac.String())
}

func TestParseWrongGroupCount(t *testing.T) {
	for _, in := range []string{
		"",
		"0a",
		"0a:0b:0c:0d:0e",
		"0a:0b:0c:0d:0e:0f:10",
		"0a0b0c0d0e0f",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestParseBadHexGroup(t *testing.T) {
	tests := []struct {
		in       string
		offender string
	}{
		{"0a:0b:0c:0d:0e:zz", "zz"},
		{"0a:0b::0d:0e:0f", ""},
		{"0a:0b:0c:0d:0e:0x0f", "0x0f"},
		{"0a:0b:0c:0d:0e:fff", "fff"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrInvalidFormat)
			assert.Contains(t, err.Error(), `"`+tt.offender+`"`)
		})
	}
}

func TestRandomIsLocallyAdministeredUnicast(t *testing.T) {
	for i := 0; i < 1000; i++ {
		mac := Random()
		require.Len(t, mac, 6)
		assert.NotZero(t, mac[0]&0x02, "locally administered bit must be set in %s", mac)
		assert.Zero(t, mac[0]&0x01, "multicast bit must be clear in %s", mac)
	}
}

func TestRandomVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 32; i++ {
		seen[Random().String()] = true
	}
	assert.Greater(t, len(seen), 1, "repeated calls should not return a constant address")
}

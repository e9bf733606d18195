package mimeb64

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// wrapStd builds the expected output from encoding/base64 by cutting it into CRLF terminated lines.
func wrapStd(src []byte) string {
	flat := base64.StdEncoding.EncodeToString(src)

	var sb strings.Builder
	for len(flat) > 0 {
		n := min(MaxLineLength, len(flat))
		sb.WriteString(flat[:n])
		sb.WriteString("\r\n")
		flat = flat[n:]
	}
	return sb.String()
}

func TestEncodeDecodeRoundTrip1MB(t *testing.T) {
	raw := make([]byte, 1024*1024)
	_, err := rand.Read(raw)
	require.NoError(t, err)

	encoded := EncodeToString(raw)
	t.Logf("Raw: %d, Encoded: %d", len(raw), len(encoded))
	require.Equal(t, EncodedLen(len(raw)), len(encoded))

	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(encoded, "\r\n", ""))
	require.NoError(t, err)
	require.True(t, bytes.Equal(raw, decoded))
}

func TestEncodeMatchesStdEncodingSmall(t *testing.T) {
	for size := 0; size <= 512; size++ {
		raw := make([]byte, size)
		for i := range raw {
			raw[i] = byte(i)
		}

		encoded := EncodeToString(raw)
		require.Equal(t, wrapStd(raw), encoded, "size=%d", size)

		decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(encoded, "\r\n", ""))
		require.NoError(t, err, "size=%d", size)
		require.Equal(t, raw, decoded, "size=%d", size)
	}
}

func TestEncodeLineLength(t *testing.T) {
	raw := make([]byte, 10_000)
	_, err := rand.Read(raw)
	require.NoError(t, err)

	for _, size := range []int{1, 2, 56, 57, 58, 59, 60, 113, 114, 115, 388, 1000, 10_000} {
		encoded := EncodeToString(raw[:size])
		require.True(t, strings.HasSuffix(encoded, "\r\n"), "size=%d", size)

		lines := strings.Split(encoded, "\r\n")
		require.Empty(t, lines[len(lines)-1], "size=%d", size)
		for _, line := range lines[:len(lines)-1] {
			require.NotEmpty(t, line, "size=%d", size)
			require.LessOrEqual(t, len(line), MaxLineLength, "size=%d", size)
			require.NotContains(t, line, "\r", "size=%d", size)
			require.NotContains(t, line, "\n", "size=%d", size)
		}
	}
}

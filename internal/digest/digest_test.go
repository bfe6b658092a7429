package digest

import (
	"testing"

	"github.com/GriffinCanCode/fileshell/internal/shared/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

func TestDigestEmptyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/home/user/test.txt", nil, 0o644))

	sum, err := New(fs).Digest("/home/user/test.txt", SHA256)
	require.NoError(t, err)
	assert.Equal(t, emptySHA256, sum)
}

func TestDigestKnownVectors(t *testing.T) {
	tests := []struct {
		algo     Algorithm
		input    string
		expected string
	}{
		{SHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{SHA512, "abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
		{SHA3, "abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{BLAKE2b, "", "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"},
	}

	for _, tt := range tests {
		t.Run(string(tt.algo), func(t *testing.T) {
			sum, err := Sum([]byte(tt.input), tt.algo)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sum)
		})
	}
}

func TestDigestDeterministic(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/f.txt", []byte("hello world"), 0o644))
	engine := New(fs)

	first, err := engine.Digest("/f.txt", Default)
	require.NoError(t, err)
	second, err := engine.Digest("/f.txt", Default)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, afero.WriteFile(fs, "/f.txt", []byte("hello worle"), 0o644))
	changed, err := engine.Digest("/f.txt", Default)
	require.NoError(t, err)
	assert.NotEqual(t, first, changed)
	assert.Len(t, changed, 64)
}

func TestDigestSourceNotFound(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/dir", 0o755))
	engine := New(fs)

	_, err := engine.Digest("/missing", SHA256)
	assert.Equal(t, types.KindSourceNotFound, types.KindOf(err))

	_, err = engine.Digest("/dir", SHA256)
	assert.Equal(t, types.KindSourceNotFound, types.KindOf(err))
}

func TestParseAlgorithm(t *testing.T) {
	algo, err := ParseAlgorithm("")
	require.NoError(t, err)
	assert.Equal(t, SHA256, algo)

	algo, err = ParseAlgorithm("SHA-512")
	require.NoError(t, err)
	assert.Equal(t, SHA512, algo)

	_, err = ParseAlgorithm("md5")
	assert.True(t, types.IsKind(err, types.KindInvalidInput))

	assert.Equal(t, []string{"blake2b", "sha256", "sha3", "sha512"}, Algorithms())
}

package service

import (
	"strings"
	"testing"

	"wallet-custody/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testKDF returns Argon2id parameters cheap enough for the test suite.
func testKDF() config.KDFConfig {
	return config.KDFConfig{
		Algorithm:  "argon2id",
		Iterations: 1,
		MemoryKiB:  8192,
		Threads:    4,
	}
}

func TestArgon2HashService_HashAndVerify(t *testing.T) {
	svc, err := NewArgon2HashService(testKDF())
	require.NoError(t, err)

	passphrase := "SecureP@ssphrase!"
	hash, err := svc.Hash(passphrase)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Format check
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v="), "hash should start with $argon2id$v=")

	match, err := svc.Verify(passphrase, hash)
	require.NoError(t, err)
	assert.True(t, match, "correct passphrase should verify")
}

func TestArgon2HashService_VerifyWrongPassphrase(t *testing.T) {
	svc, err := NewArgon2HashService(testKDF())
	require.NoError(t, err)

	hash, err := svc.Hash("correct-passphrase")
	require.NoError(t, err)

	match, err := svc.Verify("wrong-passphrase", hash)
	require.NoError(t, err)
	assert.False(t, match, "wrong passphrase should not verify")
}

func TestArgon2HashService_UniqueSalts(t *testing.T) {
	svc, err := NewArgon2HashService(testKDF())
	require.NoError(t, err)

	hash1, err := svc.Hash("same-passphrase")
	require.NoError(t, err)

	hash2, err := svc.Hash("same-passphrase")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2, "same passphrase should produce different hashes (different salts)")
}

func TestArgon2HashService_EmptyPassphrase(t *testing.T) {
	svc, err := NewArgon2HashService(testKDF())
	require.NoError(t, err)

	hash, err := svc.Hash("")
	require.NoError(t, err)

	match, err := svc.Verify("", hash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestArgon2HashService_VerifyInvalidFormat(t *testing.T) {
	svc, err := NewArgon2HashService(testKDF())
	require.NoError(t, err)

	_, err = svc.Verify("passphrase", "not-a-valid-hash")
	assert.Error(t, err)
}

func TestArgon2HashService_HashContainsParams(t *testing.T) {
	svc, err := NewArgon2HashService(testKDF())
	require.NoError(t, err)

	hash, err := svc.Hash("test")
	require.NoError(t, err)

	assert.Contains(t, hash, "m=8192,t=1,p=4", "hash should carry its Argon2id params")
}

func TestArgon2HashService_VerifySurvivesParamChange(t *testing.T) {
	old, err := NewArgon2HashService(testKDF())
	require.NoError(t, err)

	hash, err := old.Hash("passphrase")
	require.NoError(t, err)

	// Stronger config; stored hash still verifies with its embedded params.
	stronger := testKDF()
	stronger.Iterations = 2
	current, err := NewArgon2HashService(stronger)
	require.NoError(t, err)

	match, err := current.Verify("passphrase", hash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestArgon2HashService_RejectsInvalidConfig(t *testing.T) {
	bad := testKDF()
	bad.Iterations = 0
	_, err := NewArgon2HashService(bad)
	assert.Error(t, err)

	bad = testKDF()
	bad.Algorithm = "bcrypt"
	_, err = NewArgon2HashService(bad)
	assert.Error(t, err)
}

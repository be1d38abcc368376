package integration

import (
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentOnboarding fires 20 simultaneous create requests for one
// owner. The per-owner lock plus the unique owner index must let exactly
// one through; the rest see the duplicate-wallet conflict.
func TestConcurrentOnboarding(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	ownerID := uuid.New()
	const workers = 20

	var created, conflicted, other int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			code, _ := app.do(t, http.MethodPost, "/api/v1/wallets", ownerHeader(ownerID),
				map[string]any{"strength_bits": 128, "passphrase": "shared-pass"})
			switch code {
			case http.StatusCreated:
				atomic.AddInt64(&created, 1)
			case http.StatusConflict:
				atomic.AddInt64(&conflicted, 1)
			default:
				atomic.AddInt64(&other, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), created, "exactly one onboarding must win")
	assert.Equal(t, int64(workers-1), conflicted)
	assert.Equal(t, int64(0), other, "no request may fail with an unexpected status")
}

// TestConcurrentRotations runs competing rotations against one wallet.
// Serialization means every rotation either succeeds against the then-current
// passphrase or fails authentication; afterwards exactly one passphrase
// opens the wallet.
func TestConcurrentRotations(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	ownerID := uuid.New()
	code, env := app.do(t, http.MethodPost, "/api/v1/wallets", ownerHeader(ownerID),
		map[string]any{"strength_bits": 128, "passphrase": "pass-0"})
	require.Equal(t, http.StatusCreated, code)
	walletID := env.Data["id"].(string)
	mnemonic := env.Data["mnemonic"].(string)

	// Every worker tries to rotate pass-0 to its own passphrase. Only the
	// first to hold the lock sees pass-0; later workers fail authentication.
	const workers = 8
	candidates := make([]string, workers)
	results := make([]int, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		candidates[i] = "candidate-" + uuid.NewString()
		go func(i int) {
			defer wg.Done()
			code, _ := app.do(t, http.MethodPost, "/api/v1/wallets/"+walletID+"/rotate", nil,
				map[string]any{"old_passphrase": "pass-0", "new_passphrase": candidates[i]})
			results[i] = code
		}(i)
	}
	wg.Wait()

	var succeeded []string
	for i, code := range results {
		switch code {
		case http.StatusOK:
			succeeded = append(succeeded, candidates[i])
		case http.StatusUnauthorized, http.StatusServiceUnavailable:
			// Lost the race to the winning rotation, or timed out waiting.
		default:
			t.Fatalf("unexpected rotation status %d", code)
		}
	}
	require.Len(t, succeeded, 1, "exactly one rotation may win")

	// The winner's passphrase opens the wallet and the backup phrase is intact.
	code, env = app.do(t, http.MethodPost, "/api/v1/wallets/"+walletID+"/backup", nil,
		map[string]any{"passphrase": succeeded[0]})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, mnemonic, env.Data["mnemonic"])

	code, _ = app.do(t, http.MethodPost, "/api/v1/wallets/"+walletID+"/backup", nil,
		map[string]any{"passphrase": "pass-0"})
	assert.Equal(t, http.StatusUnauthorized, code)
}

// TestConcurrentReads verifies the read path needs no lock: many parallel
// GETs and derivations against one wallet all succeed.
func TestConcurrentReads(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	ownerID := uuid.New()
	code, env := app.do(t, http.MethodPost, "/api/v1/wallets", ownerHeader(ownerID),
		map[string]any{"strength_bits": 128, "passphrase": "read-pass"})
	require.Equal(t, http.StatusCreated, code)
	walletID := env.Data["id"].(string)

	const workers = 16
	var failures int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			var code int
			if i%2 == 0 {
				code, _ = app.do(t, http.MethodGet, "/api/v1/wallets/"+walletID, nil, nil)
			} else {
				code, _ = app.do(t, http.MethodPost, "/api/v1/wallets/"+walletID+"/derive", nil,
					map[string]any{"passphrase": "read-pass", "path": "m/0/1"})
			}
			if code != http.StatusOK {
				atomic.AddInt64(&failures, 1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(0), failures)
}

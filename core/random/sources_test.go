package random_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkpass/xkpass/core/random"
)

func TestLocalSource(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("returns the requested count in range", func(t *testing.T) {
		t.Parallel()

		src := random.NewLocalSource()
		values, err := src.Draw(ctx, 50)
		require.NoError(t, err)
		require.NoError(t, random.ValidateBatch(values, 50))
	})

	t.Run("is reproducible when seeded", func(t *testing.T) {
		t.Parallel()

		a, err := random.NewLocalSource(random.WithSeed(99)).Draw(ctx, 10)
		require.NoError(t, err)
		b, err := random.NewLocalSource(random.WithSeed(99)).Draw(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("rejects non-positive count", func(t *testing.T) {
		t.Parallel()

		_, err := random.NewLocalSource().Draw(ctx, 0)
		require.ErrorIs(t, err, random.ErrInvalidBatchSize)
	})
}

func TestDeviceSource(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("normalizes raw bytes into the unit interval", func(t *testing.T) {
		t.Parallel()

		raw := bytes.Repeat([]byte{0xFF}, 16)
		src := random.NewDeviceSource(random.WithReader(bytes.NewReader(raw)))

		values, err := src.Draw(ctx, 2)
		require.NoError(t, err)
		require.NoError(t, random.ValidateBatch(values, 2))
		assert.Less(t, values[0], 1.0)
	})

	t.Run("all-zero bytes map to zero", func(t *testing.T) {
		t.Parallel()

		src := random.NewDeviceSource(random.WithReader(bytes.NewReader(make([]byte, 8))))
		values, err := src.Draw(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 0.0, values[0])
	})

	t.Run("short reader fails the draw", func(t *testing.T) {
		t.Parallel()

		src := random.NewDeviceSource(random.WithReader(bytes.NewReader([]byte{1, 2, 3})))
		_, err := src.Draw(ctx, 1)
		require.Error(t, err)
	})

	t.Run("default source satisfies the contract", func(t *testing.T) {
		t.Parallel()

		values, err := random.NewDeviceSource().Draw(ctx, 25)
		require.NoError(t, err)
		require.NoError(t, random.ValidateBatch(values, 25))
	})
}

func TestRemoteSource(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	serve := func(t *testing.T, handler http.HandlerFunc) *random.RemoteSource {
		t.Helper()
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)

		src, err := random.NewRemoteSource(srv.URL, random.WithHTTPClient(srv.Client()))
		require.NoError(t, err)
		return src
	}

	t.Run("fetches and normalizes a batch", func(t *testing.T) {
		t.Parallel()

		src := serve(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "3", r.URL.Query().Get("num"))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
			_ = json.NewEncoder(w).Encode(map[string][]int64{
				"numbers": {0, 500_000_000, 999_999_999},
			})
		})

		values, err := src.Draw(ctx, 3)
		require.NoError(t, err)
		require.NoError(t, random.ValidateBatch(values, 3))
		assert.Equal(t, 0.0, values[0])
		assert.Equal(t, 0.5, values[1])
	})

	t.Run("wrong count is a hard error", func(t *testing.T) {
		t.Parallel()

		src := serve(t, func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string][]int64{"numbers": {1, 2}})
		})

		_, err := src.Draw(ctx, 3)
		require.ErrorIs(t, err, random.ErrSourceCount)
	})

	t.Run("out-of-domain integer is a hard error", func(t *testing.T) {
		t.Parallel()

		src := serve(t, func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string][]int64{"numbers": {1_000_000_000}})
		})

		_, err := src.Draw(ctx, 1)
		require.ErrorIs(t, err, random.ErrValueOutOfRange)
	})

	t.Run("non-200 status is a hard error", func(t *testing.T) {
		t.Parallel()

		src := serve(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := src.Draw(ctx, 1)
		require.ErrorIs(t, err, random.ErrRemoteRequest)
	})

	t.Run("malformed payload is a hard error", func(t *testing.T) {
		t.Parallel()

		src := serve(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		})

		_, err := src.Draw(ctx, 1)
		require.ErrorIs(t, err, random.ErrRemoteResponse)
	})

	t.Run("rejects an empty service url", func(t *testing.T) {
		t.Parallel()

		_, err := random.NewRemoteSource("")
		require.Error(t, err)
	})
}

package guardclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"phishguard/pkg/domain"
	"phishguard/pkg/guardclient"

	"github.com/stretchr/testify/require"
)

func analyzedURL(t *testing.T, r *http.Request) string {
	t.Helper()
	var req struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

	return req.URL
}

func okResponse(url string, verdict domain.Verdict) *http.Response {
	body, _ := json.Marshal(domain.AnalysisResult{
		URL:              url,
		Verdict:          verdict,
		RiskLevel:        domain.RiskLow,
		ServiceAvailable: true,
	})

	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(string(body))),
	}
}

func TestCoordinator_Check_mergesClientIndicators(t *testing.T) {
	client := newTestClient(func(r *http.Request) (*http.Response, error) {
		return okResponse(analyzedURL(t, r), domain.VerdictSafe), nil
	})
	coordinator := guardclient.NewCoordinator(client, time.Second)

	res, err := coordinator.Check(context.Background(), "https://example.com")
	require.NoError(t, err)
	require.Equal(t, domain.VerdictSafe, res.Verdict)
	require.True(t, res.ServiceAvailable)
	require.Len(t, res.ClientIndicators, 9)
	require.Equal(t, res, coordinator.Latest())
}

func TestCoordinator_Check_pendingFallback(t *testing.T) {
	client := newTestClient(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})
	coordinator := guardclient.NewCoordinator(client, time.Second)

	res, err := coordinator.Check(context.Background(), "http://203.0.113.5@evil.example/login")
	require.NoError(t, err)
	require.Equal(t, domain.VerdictPending, res.Verdict)
	require.Equal(t, domain.RiskUnknown, res.RiskLevel)
	require.False(t, res.ServiceAvailable)
	require.Nil(t, res.Confidence)
	require.Len(t, res.ClientIndicators, 9)
	// With the service unreachable, the evidence is exactly the device-local
	// indicator projection, safe and non-safe records alike.
	require.Equal(t, res.ClientIndicators, res.Evidence)
	require.Len(t, res.CheckedItems, len(res.ClientIndicators))
	for i, rec := range res.ClientIndicators {
		require.Equal(t, rec.Message, res.CheckedItems[i])
	}
	require.NotEmpty(t, res.IdentificationTips)
	require.NotEmpty(t, res.ActionSteps)

	// The device-local checks caught the @ trick, the plain-http scheme, the
	// raw IP hidden in the userinfo and the bait keyword.
	nonSafe := 0
	for _, rec := range res.ClientIndicators {
		if rec.NonSafe() {
			nonSafe++
		}
	}
	require.GreaterOrEqual(t, nonSafe, 4)
}

func TestCoordinator_Check_newCheckSupersedesInflight(t *testing.T) {
	started := make(chan struct{})
	client := newTestClient(func(r *http.Request) (*http.Response, error) {
		url := analyzedURL(t, r)
		if strings.Contains(url, "first") {
			close(started)
			// Block until the coordinator cancels this request.
			<-r.Context().Done()

			return nil, r.Context().Err()
		}

		return okResponse(url, domain.VerdictSafe), nil
	})
	coordinator := guardclient.NewCoordinator(client, time.Minute)

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = coordinator.Check(context.Background(), "https://first.example")
	}()

	<-started
	second, err := coordinator.Check(context.Background(), "https://second.example")
	require.NoError(t, err)
	require.Equal(t, domain.VerdictSafe, second.Verdict)

	wg.Wait()
	require.Error(t, firstErr)
	require.True(t, errors.Is(firstErr, guardclient.ErrSuperseded))

	// The superseded result is discarded, never stored.
	require.Equal(t, second, coordinator.Latest())
}

func TestCoordinator_Latest_nilBeforeFirstCheck(t *testing.T) {
	client := newTestClient(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("unused")
	})
	coordinator := guardclient.NewCoordinator(client, time.Second)
	require.Nil(t, coordinator.Latest())
}

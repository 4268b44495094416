package results

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/match-league/internal/engine"
)

func sampleResult() engine.Result {
	return engine.Result{
		Summary: engine.Summary{
			Score:          1240,
			ElapsedSeconds: 95,
			Moves:          61,
			Completed:      true,
		},
		Player:  "ana",
		Tier:    engine.TierMedium,
		BatchID: 3,
	}
}

func TestFormRoundTrip(t *testing.T) {
	values, err := NewForm(sampleResult()).Encode()
	require.NoError(t, err)

	assert.Equal(t, "1240", values.Get("puntuacion"))
	assert.Equal(t, "95", values.Get("tiempo"))
	assert.Equal(t, "61", values.Get("movimientos"))
	assert.Equal(t, "true", values.Get("completado"))
	assert.Equal(t, "3", values.Get("idLote"))

	f, err := DecodeForm(values)
	require.NoError(t, err)
	got := f.Result()
	assert.Equal(t, sampleResult().Summary.Score, got.Score)
	assert.Equal(t, "ana", got.Player)
	assert.Equal(t, engine.TierMedium, got.Tier)
	assert.Equal(t, int64(3), got.BatchID)
}

func TestFormOmitsZeroBatch(t *testing.T) {
	r := sampleResult()
	r.BatchID = 0
	values, err := NewForm(r).Encode()
	require.NoError(t, err)
	assert.False(t, values.Has("idLote"))
}

func TestDecodeFormRejects(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
	}{
		{"missing score", url.Values{"tiempo": {"1"}, "movimientos": {"1"}, "completado": {"false"}}},
		{"negative moves", url.Values{"puntuacion": {"1"}, "tiempo": {"1"}, "movimientos": {"-4"}, "completado": {"false"}}},
		{"not a number", url.Values{"puntuacion": {"lots"}, "tiempo": {"1"}, "movimientos": {"1"}, "completado": {"false"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeForm(tt.values)
			assert.Error(t, err)
		})
	}
}

func TestHTTPSubmitter(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		got = r.PostForm
		json.NewEncoder(w).Encode(Response{Success: true, ResultID: 17, Ranking: 2, Message: "saved"})
	}))
	defer srv.Close()

	receipt, err := NewHTTPSubmitter(srv.URL, time.Second).Submit(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, Receipt{ResultID: 17, Ranking: 2, Message: "saved"}, receipt)
	assert.Equal(t, "1240", got.Get("puntuacion"))
}

func TestHTTPSubmitterRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Response{Success: false, Message: "not authenticated"})
	}))
	defer srv.Close()

	_, err := NewHTTPSubmitter(srv.URL, time.Second).Submit(context.Background(), sampleResult())
	assert.ErrorIs(t, err, ErrRejected)
}

func TestHTTPSubmitterBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewHTTPSubmitter(srv.URL, time.Second).Submit(context.Background(), sampleResult())
	assert.Error(t, err)
}

func TestMulti(t *testing.T) {
	boom := errors.New("boom")
	failing := SubmitterFunc(func(context.Context, engine.Result) (Receipt, error) {
		return Receipt{}, boom
	})
	ranked := SubmitterFunc(func(context.Context, engine.Result) (Receipt, error) {
		return Receipt{Ranking: 4}, nil
	})
	calls := 0
	counting := SubmitterFunc(func(context.Context, engine.Result) (Receipt, error) {
		calls++
		return Receipt{Ranking: 9}, nil
	})

	receipt, err := Multi{failing, ranked, counting}.Submit(context.Background(), sampleResult())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 4, receipt.Ranking)
	assert.Equal(t, 1, calls, "every submitter runs")

	receipt, err = Multi{counting}.Submit(context.Background(), sampleResult())
	assert.NoError(t, err)
	assert.Equal(t, 9, receipt.Ranking)
}

func TestReporterDeliversOutcome(t *testing.T) {
	s := SubmitterFunc(func(context.Context, engine.Result) (Receipt, error) {
		return Receipt{Ranking: 1}, nil
	})
	rp := NewReporter(s, log.New(io.Discard), time.Second)

	rp.Report(sampleResult())

	select {
	case out := <-rp.Outcomes():
		assert.True(t, out.Ranked())
		assert.Equal(t, 1, out.Receipt.Ranking)
		assert.NoError(t, out.Err)
		assert.Equal(t, "ana", out.Result.Player)
	case <-time.After(2 * time.Second):
		t.Fatal("no outcome delivered")
	}
	rp.Close()
}

func TestReporterFailureIsDeliveredNotRaised(t *testing.T) {
	s := SubmitterFunc(func(ctx context.Context, _ engine.Result) (Receipt, error) {
		<-ctx.Done()
		return Receipt{}, ctx.Err()
	})
	rp := NewReporter(s, log.New(io.Discard), 20*time.Millisecond)

	rp.Report(sampleResult())
	rp.Close()

	out, ok := <-rp.Outcomes()
	require.True(t, ok)
	assert.ErrorIs(t, out.Err, context.DeadlineExceeded)
	assert.False(t, out.Ranked())

	_, ok = <-rp.Outcomes()
	assert.False(t, ok, "channel closed after Close")
}

func TestReporterIgnoresReportsAfterClose(t *testing.T) {
	rp := NewReporter(nil, log.New(io.Discard), time.Second)
	rp.Close()
	rp.Report(sampleResult())
	rp.Close()

	_, ok := <-rp.Outcomes()
	assert.False(t, ok)
}

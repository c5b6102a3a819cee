package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-sea-effect/internal/weather"
)

type fakeRefresher struct {
	opts  []weather.RefreshOptions
	err   error
	calls chan struct{}
}

func (f *fakeRefresher) Refresh(_ context.Context, opts weather.RefreshOptions) (weather.RefreshReport, error) {
	f.opts = append(f.opts, opts)
	if f.calls != nil {
		f.calls <- struct{}{}
	}
	return weather.RefreshReport{Saved: []string{"Mumbai"}}, f.err
}

type fakeReporter struct {
	runs int
}

func (f *fakeReporter) Run(context.Context) ([]string, error) {
	f.runs++
	return []string{"temperature_timeseries.png"}, nil
}

func TestRunOnce(t *testing.T) {
	ref := &fakeRefresher{}
	rep := &fakeReporter{}

	New(time.Hour, ref, rep).RunOnce()

	require.Len(t, ref.opts, 1)
	assert.True(t, ref.opts[0].SkipFailed)
	assert.Equal(t, 1, rep.runs)
}

func TestRunOnceSkipsReportOnRefreshError(t *testing.T) {
	ref := &fakeRefresher{err: errors.New("refresh aborted")}
	rep := &fakeReporter{}

	New(time.Hour, ref, rep).RunOnce()
	assert.Equal(t, 0, rep.runs)
}

func TestRunOnceWithoutReporter(t *testing.T) {
	ref := &fakeRefresher{}
	New(time.Hour, ref, nil).RunOnce()
	assert.Len(t, ref.opts, 1)
}

func TestStartRunsImmediately(t *testing.T) {
	ref := &fakeRefresher{calls: make(chan struct{}, 1)}
	s := New(time.Hour, ref, nil)
	require.NoError(t, s.Start())
	defer s.Stop()

	select {
	case <-ref.calls:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduled job did not run")
	}
}

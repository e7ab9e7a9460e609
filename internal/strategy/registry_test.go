// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/metrics"
	"github.com/Informasjonsforvaltning/fdk-parser-service/internal/rdfgraph"
)

type record struct {
	ID     *string
	Source *string
}

func str(s string) *string { return &s }

// --- mock strategy ---

type mockStrategy struct {
	source string
	err    error
	panics bool
	empty  bool
}

func (m *mockStrategy) ParseResource(_ *rdfgraph.Graph, _ rdfgraph.Term) (*record, error) {
	if m.panics {
		panic("boom")
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.empty {
		return &record{}, nil
	}
	return &record{Source: str(m.source)}, nil
}

func (m *mockStrategy) Parse(g *rdfgraph.Graph, s rdfgraph.Term, id string) (*record, error) {
	rec, err := m.ParseResource(g, s)
	if rec != nil {
		rec.ID = str(id)
	}
	return rec, err
}

var subject = rdfgraph.IRI("https://example.org/datasets/1")

func newTestRegistry(t *testing.T, maxParallel int) (*Registry[record], *metrics.Metrics) {
	t.Helper()
	m, err := metrics.New(nil)
	require.NoError(t, err)
	return NewRegistry[record](Config{Kind: "dataset", MaxParallel: maxParallel, Metrics: m}), m
}

func sources(recs []*record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = *r.Source
	}
	return out
}

func TestRunAllOrdersByPriority(t *testing.T) {
	r, _ := newTestRegistry(t, 1)
	r.Register(&mockStrategy{source: "low"}, 50, "low")
	r.Register(&mockStrategy{source: "high"}, 100, "high")

	recs, err := r.RunAll(context.Background(), nil, subject, "id-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"high", "low"}, sources(recs))
	assert.Equal(t, "id-1", *recs[0].ID)
}

func TestRunAllTiesKeepRegistrationOrder(t *testing.T) {
	r, _ := newTestRegistry(t, 8)
	r.Register(&mockStrategy{source: "a"}, 10, "a")
	r.Register(&mockStrategy{source: "b"}, 20, "b")
	r.Register(&mockStrategy{source: "c"}, 10, "c")
	r.Register(&mockStrategy{source: "d"}, 10, "d")

	recs, err := r.RunAll(context.Background(), nil, subject, "id")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c", "d"}, sources(recs))
}

func TestRunAllParallelMatchesSequential(t *testing.T) {
	seq, _ := newTestRegistry(t, 1)
	par, _ := newTestRegistry(t, 16)
	for i := 0; i < 20; i++ {
		s := &mockStrategy{source: fmt.Sprintf("s%02d", i)}
		seq.Register(s, i%3, s.source)
		par.Register(s, i%3, s.source)
	}

	a, err := seq.RunAll(context.Background(), nil, subject, "id")
	require.NoError(t, err)
	b, err := par.RunAll(context.Background(), nil, subject, "id")
	require.NoError(t, err)
	assert.Equal(t, sources(a), sources(b))
}

func TestRunAllToleratesFailures(t *testing.T) {
	r, m := newTestRegistry(t, 4)
	r.Register(&mockStrategy{err: errors.New("broken dialect")}, 100, "broken")
	r.Register(&mockStrategy{source: "ok"}, 50, "ok")

	recs, err := r.RunAll(context.Background(), nil, subject, "id")
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, sources(recs))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.StrategyRuns.WithLabelValues("dataset", "broken", metrics.OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StrategyRuns.WithLabelValues("dataset", "ok", metrics.OutcomeSuccess)))
}

func TestRunAllExcludesNotApplicableAndEmpty(t *testing.T) {
	r, m := newTestRegistry(t, 4)
	r.Register(&mockStrategy{err: NotApplicable("wrong type")}, 100, "na")
	r.Register(&mockStrategy{empty: true}, 90, "empty")
	r.Register(&mockStrategy{source: "ok"}, 50, "ok")

	recs, err := r.RunAll(context.Background(), nil, subject, "id")
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, sources(recs))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StrategyRuns.WithLabelValues("dataset", "na", metrics.OutcomeNotApplicable)))
}

func TestRunAllRecoversPanics(t *testing.T) {
	r, _ := newTestRegistry(t, 4)
	r.Register(&mockStrategy{panics: true}, 100, "panics")
	r.Register(&mockStrategy{source: "ok"}, 50, "ok")

	recs, err := r.RunAll(context.Background(), nil, subject, "id")
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, sources(recs))
}

func TestRunAllAllFail(t *testing.T) {
	r, _ := newTestRegistry(t, 4)
	r.Register(&mockStrategy{err: errors.New("a")}, 100, "a")
	r.Register(&mockStrategy{panics: true}, 50, "b")

	recs, err := r.RunAll(context.Background(), nil, subject, "id-9")
	assert.ErrorIs(t, err, ErrNoStrategySucceeded)
	assert.Contains(t, err.Error(), "id-9")
	assert.Nil(t, recs)
}

func TestRunAllEmptyRegistry(t *testing.T) {
	r, _ := newTestRegistry(t, 4)
	_, err := r.RunAll(context.Background(), nil, subject, "id")
	assert.ErrorIs(t, err, ErrNoStrategySucceeded)
}

func TestRunAllCancelled(t *testing.T) {
	r, _ := newTestRegistry(t, 4)
	r.Register(&mockStrategy{source: "ok"}, 50, "ok")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.RunAll(ctx, nil, subject, "id")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunAllResourceSkipsIdentity(t *testing.T) {
	r, _ := newTestRegistry(t, 4)
	r.Register(&mockStrategy{source: "ok"}, 50, "ok")

	recs, err := r.RunAllResource(context.Background(), nil, subject)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Nil(t, recs[0].ID)
}

func TestIntrospection(t *testing.T) {
	r, _ := newTestRegistry(t, 4)
	assert.Equal(t, 0, r.Count())
	r.Register(&mockStrategy{source: "a"}, 1, "a")
	r.Register(&mockStrategy{source: "b"}, 2, "b")

	assert.Equal(t, 2, r.Count())
	regs := r.Registrations()
	require.Len(t, regs, 2)
	assert.Equal(t, "a", regs[0].Name)
	assert.Equal(t, 2, regs[1].Priority)
	assert.Equal(t, "dataset", r.Kind())

	regs[0].Name = "mutated"
	assert.Equal(t, "a", r.Registrations()[0].Name)
}

func TestConcurrentRegisterAndRun(t *testing.T) {
	r, _ := newTestRegistry(t, 4)
	r.Register(&mockStrategy{source: "seed"}, 0, "seed")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			r.Register(&mockStrategy{source: fmt.Sprint(i)}, i, fmt.Sprint(i))
		}(i)
		go func() {
			defer wg.Done()
			_, err := r.RunAll(context.Background(), nil, subject, "id")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 11, r.Count())
}

// --- Dialect adapter ---

func TestDialectRejectsEmptyRecords(t *testing.T) {
	d := Dialect[record]{
		ParseFunc: func(*rdfgraph.Graph, rdfgraph.Term) (*record, error) { return &record{}, nil },
		IdentifyFunc: func(rec *record, _ *rdfgraph.Graph, _ rdfgraph.Term, id string) {
			rec.ID = str(id)
		},
	}

	_, err := d.Parse(nil, subject, "id")
	assert.ErrorIs(t, err, ErrNotApplicable)
}

func TestDialectIdentifies(t *testing.T) {
	d := Dialect[record]{
		ParseFunc: func(*rdfgraph.Graph, rdfgraph.Term) (*record, error) { return &record{Source: str("x")}, nil },
		IdentifyFunc: func(rec *record, _ *rdfgraph.Graph, _ rdfgraph.Term, id string) {
			rec.ID = str(id)
		},
	}

	rec, err := d.Parse(nil, subject, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "id-1", *rec.ID)

	rec, err = d.ParseResource(nil, subject)
	require.NoError(t, err)
	assert.Nil(t, rec.ID)
}

func TestDialectPropagatesErrors(t *testing.T) {
	d := Dialect[record]{
		ParseFunc: func(*rdfgraph.Graph, rdfgraph.Term) (*record, error) { return nil, errors.New("bad") },
	}
	_, err := d.Parse(nil, subject, "id")
	assert.EqualError(t, err, "bad")
}

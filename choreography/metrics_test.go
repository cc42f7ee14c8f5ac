// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package choreography

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/moose/ids"
	"github.com/luxfi/moose/networking"
	"github.com/luxfi/moose/storage"
	"github.com/luxfi/moose/value"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestMetricsCountLaunchesAndAborts(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := New(nil, ids.Identity("alice"), networking.NewInMemory(), nil, storage.NewInMemory(), reg)

	sid := ids.GenerateTestSessionId()
	comp := simpleComputation(t)
	args := map[string]value.Value{"a": value.HostRing64Tensor{Plc: host(), Shape: []int64{1}, Data: []uint64{1}}}

	require.NoError(t, s.LaunchComputation(context.Background(), sid, comp, nil, args))
	require.Equal(t, float64(1), counterValue(t, s.metrics.launches))

	require.NoError(t, s.AbortComputation(context.Background(), sid))
	require.Equal(t, float64(1), counterValue(t, s.metrics.aborts))
}

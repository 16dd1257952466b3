package equations

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/percolab/shangdiag/internal/params"
	"github.com/percolab/shangdiag/internal/proxy"
)

// singaporeMapped mirrors the published self-check vector after mapping.
func singaporeMapped(t *testing.T) proxy.Mapped {
	t.Helper()
	m, err := proxy.Map([]float64{
		0.044, 0.92, 0.012, 0.10, 0.41, 0.40, 1.5,
		0.95, 1.00, 0.96, 0.25, 0.091, 0.069, 0.05, 0.35,
	}, proxy.DefaultWeights())
	require.NoError(t, err)
	return m
}

func TestTransfers(t *testing.T) {
	m := singaporeMapped(t)
	p := params.Defaults()

	assert.InDelta(t, 1.573974, TransferPlus(m, p), 1e-5)
	assert.InDelta(t, 0.073084, TransferMinus(m, p), 1e-5)
}

func TestTransfers_BelowThresholdsYieldZero(t *testing.T) {
	p := params.Defaults()
	m := proxy.Mapped{Energy: 0.5, SigmaPlus: 0.5, SigmaMinus: 0.5, CreditPlus: 0.5, CreditMinus: 0.5}

	// Energy under the survival threshold: nothing to transfer either way.
	assert.Zero(t, TransferPlus(m, p))
	assert.Zero(t, TransferMinus(m, p))

	// Between delta and R+: positive transfer flows, negative stays dry.
	m.Energy = 1.5
	assert.Greater(t, TransferPlus(m, p), 0.0)
	assert.Zero(t, TransferMinus(m, p))
}

func TestFactorTrends(t *testing.T) {
	m := singaporeMapped(t)
	p := params.Defaults()

	assert.InDelta(t, 0.113135, SigmaPlusTrend(m, p), 1e-6)

	trend, err := SigmaMinusTrend(m, p)
	require.NoError(t, err)
	assert.InDelta(t, -0.258143, trend, 1e-6)
}

func TestSigmaMinusTrend_ZeroDensity(t *testing.T) {
	m := singaporeMapped(t)
	m.EnergyDensity = 0
	_, err := SigmaMinusTrend(m, params.Defaults())
	require.ErrorIs(t, err, ErrNumericDomain)
}

func TestConnectivity(t *testing.T) {
	m := singaporeMapped(t)
	p := params.Defaults()

	// The raw positive estimate (~3.39) saturates at the calibration ceiling.
	phiPlus, err := PositiveConnectivity(m, p)
	require.NoError(t, err)
	assert.Equal(t, 0.80, phiPlus)

	phiMinus, err := NegativeConnectivity(m, p)
	require.NoError(t, err)
	assert.InDelta(t, 0.090207, phiMinus, 1e-6)
}

func TestConnectivity_FloorSaturation(t *testing.T) {
	p := params.Defaults()
	// No transfers at all: connectivity rests on the percolation floor.
	m := proxy.Mapped{}
	phiPlus, err := PositiveConnectivity(m, p)
	require.NoError(t, err)
	assert.Equal(t, 0.05, phiPlus)

	phiMinus, err := NegativeConnectivity(m, p)
	require.NoError(t, err)
	assert.Equal(t, 0.02, phiMinus)
}

func TestConnectivity_ZeroDissipation(t *testing.T) {
	m := singaporeMapped(t)
	p := params.Defaults()

	p.ZetaPlus = 0
	_, err := PositiveConnectivity(m, p)
	require.ErrorIs(t, err, ErrNumericDomain)

	p = params.Defaults()
	p.ZetaMinus = 0
	_, err = NegativeConnectivity(m, p)
	require.ErrorIs(t, err, ErrNumericDomain)
}

func TestTransitionPotential(t *testing.T) {
	m := singaporeMapped(t)
	p := params.Defaults()

	tp, err := TransitionPotential(m, p)
	require.NoError(t, err)
	assert.InDelta(t, 6.2900, tp, 1e-3)
	assert.InDelta(t, 0.59, Eta(m), 1e-9)
}

func TestTransitionPotential_NonFinite(t *testing.T) {
	m := singaporeMapped(t)
	p := params.Defaults()
	p.Omega = math.Inf(1)

	_, err := TransitionPotential(m, p)
	require.ErrorIs(t, err, ErrNumericDomain)
}

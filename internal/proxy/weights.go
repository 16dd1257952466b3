package proxy

// #region bound

// Bound is an inclusive clamp range for a mapped quantity.
type Bound struct {
	Lo float64
	Hi float64
}

// Clamp restricts v to [b.Lo, b.Hi].
func (b Bound) Clamp(v float64) float64 {
	if v < b.Lo {
		return b.Lo
	}
	if v > b.Hi {
		return b.Hi
	}
	return v
}

// #endregion bound

// #region weights

// Weights is the mapping table that combines raw proxies into the quantities
// the equations consume. These are calibration constants of the theory, kept
// as data so recalibration never touches the equation engine.
type Weights struct {
	// Generalized energy P.
	EnergyGDP      float64
	EnergyDigital  float64
	EnergyInternet float64
	EnergyScale    float64

	// Positive credit encoding: non-cash ratio discounted by NPL exposure.
	CreditPlusNPL   float64
	CreditPlusBound Bound

	// Negative credit encoding: shadow economy and dark-pool share.
	CreditMinusShadow float64
	CreditMinusCrypto float64
	CreditMinusBound  Bound

	// Positive Shang factor.
	SigmaPlusBase         float64
	SigmaPlusPolarization float64
	SigmaPlusMigration    float64
	SigmaPlusToxicity     float64
	SigmaPlusBound        Bound

	// Negative Shang factor.
	SigmaMinusBase         float64
	SigmaMinusUnemployment float64
	SigmaMinusDebt         float64
	SigmaMinusPolarization float64
	SigmaMinusBound        Bound

	// Civilizational attraction A.
	AttractionBase      float64
	AttractionMigration float64
	AttractionDigital   float64
	AttractionToxicity  float64
	AttractionBound     Bound

	// Institutional penalty strength.
	PenaltyBase  float64
	PenaltyNPL   float64
	PenaltyBound Bound

	// Energy density G.
	DensityGDPScale    float64
	DensityGDPWeight   float64
	DensityElectricity float64

	// Psychological recovery H.
	RecoveryBase         float64
	RecoveryUnemployment float64
	RecoveryToxicity     float64
	RecoveryBound        Bound
}

// #endregion weights

// #region defaults

// DefaultWeights returns the calibrated mapping table.
func DefaultWeights() Weights {
	return Weights{
		EnergyGDP:      0.4,
		EnergyDigital:  0.3,
		EnergyInternet: 0.3,
		EnergyScale:    10.0,

		CreditPlusNPL:   5.0,
		CreditPlusBound: Bound{0.10, 0.95},

		CreditMinusShadow: 0.3,
		CreditMinusCrypto: 0.7,
		CreditMinusBound:  Bound{0.05, 0.80},

		SigmaPlusBase:         0.7,
		SigmaPlusPolarization: 0.5,
		SigmaPlusMigration:    0.01,
		SigmaPlusToxicity:     0.3,
		SigmaPlusBound:        Bound{0.10, 0.90},

		SigmaMinusBase:         0.1,
		SigmaMinusUnemployment: 0.6,
		SigmaMinusDebt:         0.3,
		SigmaMinusPolarization: 0.4,
		SigmaMinusBound:        Bound{0.05, 0.80},

		AttractionBase:      0.3,
		AttractionMigration: 0.05,
		AttractionDigital:   0.2,
		AttractionToxicity:  0.15,
		AttractionBound:     Bound{0.10, 0.90},

		PenaltyBase:  1.5,
		PenaltyNPL:   10.0,
		PenaltyBound: Bound{0.5, 3.0},

		DensityGDPScale:    10.0,
		DensityGDPWeight:   0.7,
		DensityElectricity: 0.3,

		RecoveryBase:         0.8,
		RecoveryUnemployment: 0.5,
		RecoveryToxicity:     0.3,
		RecoveryBound:        Bound{0.2, 1.0},
	}
}

// #endregion defaults

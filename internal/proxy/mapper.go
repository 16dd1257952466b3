package proxy

// #region imports
import (
	"fmt"
	"math"
)

// #endregion

// #region validate

// Validate checks that values has exactly Count entries, all finite.
func Validate(values []float64) error {
	if len(values) != Count {
		return fmt.Errorf("%w: got %d", ErrInputShape, len(values))
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: proxy %d (%s) is %v", ErrInputValue, i+1, labels[i], v)
		}
	}
	return nil
}

// #endregion validate

// #region map

// Map combines the 15 raw proxies into the intermediate quantities consumed
// by the equation engine, using the given mapping table. Pure linear and
// weighted combinations; the only branching is the shape/value check.
// FintechGrowth is validated but not consumed by the current calibration.
func Map(values []float64, w Weights) (Mapped, error) {
	if err := Validate(values); err != nil {
		return Mapped{}, err
	}

	energy := (values[GDPGrowth]*w.EnergyGDP +
		values[DigitalCoverage]*w.EnergyDigital +
		values[InternetPenetration]*w.EnergyInternet) * w.EnergyScale

	creditPlus := w.CreditPlusBound.Clamp(
		values[NonCashRatio] * (1 - values[NPLRatio]*w.CreditPlusNPL))

	creditMinus := w.CreditMinusBound.Clamp(
		w.CreditMinusShadow*values[ShadowEconomy] +
			w.CreditMinusCrypto*values[CryptoEstimate])

	sigmaPlus := w.SigmaPlusBound.Clamp(
		w.SigmaPlusBase -
			values[Polarization]*w.SigmaPlusPolarization +
			values[NetMigration]*w.SigmaPlusMigration -
			values[ToxicityIndex]*w.SigmaPlusToxicity)

	sigmaMinus := w.SigmaMinusBound.Clamp(
		w.SigmaMinusBase +
			values[YouthUnemployment]*w.SigmaMinusUnemployment +
			values[DebtServiceRatio]*w.SigmaMinusDebt +
			values[Polarization]*w.SigmaMinusPolarization)

	attraction := w.AttractionBound.Clamp(
		w.AttractionBase +
			values[NetMigration]*w.AttractionMigration +
			values[DigitalCoverage]*w.AttractionDigital -
			values[ToxicityIndex]*w.AttractionToxicity)

	penalty := w.PenaltyBound.Clamp(
		w.PenaltyBase -
			values[ShadowEconomy] -
			values[NPLRatio]*w.PenaltyNPL)

	density := values[GDPGrowth]*w.DensityGDPScale*w.DensityGDPWeight +
		values[ElectricityAccess]*w.DensityElectricity

	recovery := w.RecoveryBound.Clamp(
		w.RecoveryBase -
			values[YouthUnemployment]*w.RecoveryUnemployment -
			values[ToxicityIndex]*w.RecoveryToxicity)

	return Mapped{
		Energy:        energy,
		CreditPlus:    creditPlus,
		CreditMinus:   creditMinus,
		SigmaPlus:     sigmaPlus,
		SigmaMinus:    sigmaMinus,
		Attraction:    attraction,
		Division:      values[Polarization],
		Penalty:       penalty,
		Narrative:     1 - values[ToxicityIndex],
		EnergyDensity: density,
		Recovery:      recovery,
		Gini:          values[Gini],
	}, nil
}

// #endregion map

package proxy

// #region imports
import "errors"

// #endregion

// #region errors

var (
	// ErrInputShape indicates the input vector does not have exactly Count entries.
	ErrInputShape = errors.New("proxy: input vector must have exactly 15 entries")
	// ErrInputValue indicates a proxy entry is NaN or infinite.
	ErrInputValue = errors.New("proxy: proxy value must be a finite number")
)

// #endregion errors

// #region indices

// Count is the fixed length of an input vector.
const Count = 15

// Positional indices into an input vector. The order is semantically fixed:
// position i always carries proxy i.
const (
	GDPGrowth = iota
	NonCashRatio
	NPLRatio
	ShadowEconomy
	Gini
	Polarization
	NetMigration
	DigitalCoverage
	ElectricityAccess
	InternetPenetration
	FintechGrowth
	YouthUnemployment
	DebtServiceRatio
	CryptoEstimate
	ToxicityIndex
)

// #endregion indices

// #region labels

var labels = [Count]string{
	"GDP per capita growth",
	"Non-cash payment transactions / total",
	"NPL ratio (bank non-performing loans)",
	"Shadow economy (% of GDP)",
	"Gini coefficient",
	"Polarization index (0-1)",
	"Net migration rate (per 1,000)",
	"Digital infrastructure coverage",
	"Electricity access rate",
	"Internet penetration",
	"Mobile money / fintech transaction growth",
	"Youth unemployment rate",
	"Government debt service / revenue ratio",
	"Crypto & dark-pool transaction estimate",
	"Social media toxicity / hate-speech index",
}

// Label returns the display name of proxy i, or "" when i is out of range.
func Label(i int) string {
	if i < 0 || i >= Count {
		return ""
	}
	return labels[i]
}

// #endregion labels

// #region mapped

// Mapped holds the intermediate quantities the equation engine consumes,
// produced from one input vector. Field groupings follow the theory:
// Energy through CreditMinus feed the transfer equations, SigmaPlus/SigmaMinus
// the factor trends, Attraction/Division the connectivity equations, and
// Penalty through Recovery the suppression and recovery terms.
type Mapped struct {
	Energy        float64 `json:"energy"`         // generalized energy P
	CreditPlus    float64 `json:"credit_plus"`    // positive credit encoding K+
	CreditMinus   float64 `json:"credit_minus"`   // negative credit encoding K-
	SigmaPlus     float64 `json:"sigma_plus"`     // positive Shang factor
	SigmaMinus    float64 `json:"sigma_minus"`    // negative Shang factor
	Attraction    float64 `json:"attraction"`     // civilizational attraction A
	Division      float64 `json:"division"`       // social division D
	Penalty       float64 `json:"penalty"`        // institutional penalty strength
	Narrative     float64 `json:"narrative"`      // narrative suppression
	EnergyDensity float64 `json:"energy_density"` // mean productivity G
	Recovery      float64 `json:"recovery"`       // psychological recovery H
	Gini          float64 `json:"gini"`           // kept raw for the fairness term
}

// #endregion mapped

// Package report renders a terminal diagnosis report.
package report

// #region imports
import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/percolab/shangdiag/internal/classify"
	"github.com/percolab/shangdiag/internal/diagnose"
	"github.com/percolab/shangdiag/internal/params"
	"github.com/percolab/shangdiag/internal/proxy"
)

// #endregion

// #region styles

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#58a6ff"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#c9d1d9"))

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3fb950"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#d29922"))
	badStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f85149"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
)

// #endregion styles

// #region render

// Render formats a full diagnosis report for the terminal: headline
// indicators with threshold checks, the assigned status, advisory warnings,
// derived indicators, and key influencing factors read off the raw proxies.
func Render(caseName string, proxies []float64, res diagnose.Result, p params.ParameterSet) string {
	var b strings.Builder

	rule := dimStyle.Render(strings.Repeat("=", 60))
	b.WriteString(rule + "\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("Dual-Percolation Diagnostic Report — %s", caseName)) + "\n")
	b.WriteString(rule + "\n\n")

	b.WriteString(headingStyle.Render("Core indicators") + "\n")
	b.WriteString(indicatorLine("phi+ (positive connectivity)", res.PhiPlus,
		fmt.Sprintf("threshold >= %.2f", p.PhiPlusCritical), res.Met.PhiPlusCritical))
	b.WriteString(indicatorLine("phi- (negative connectivity)", res.PhiMinus,
		fmt.Sprintf("safe <= %.2f", p.PhiMinusSafe), res.Met.PhiMinusSafe))
	b.WriteString(indicatorLine("TP (transition potential)", res.TP,
		fmt.Sprintf("target >= %.2f", p.TPForward), res.Met.TPForward))

	b.WriteString("\n" + headingStyle.Render("Status") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", statusMark(res.Diagnosis), res.Diagnosis.Label()))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  risk level: %s", strings.ToUpper(string(res.Risk)))) + "\n")

	if len(res.Warnings) > 0 {
		b.WriteString("\n" + headingStyle.Render("Warnings") + "\n")
		for _, w := range res.Warnings {
			b.WriteString("  " + warnStyle.Render("! "+w) + "\n")
		}
	}

	b.WriteString("\n" + headingStyle.Render("Derived indicators") + "\n")
	b.WriteString(fmt.Sprintf("  positive transfer T+:    %8.3f\n", res.TransferPlus))
	b.WriteString(fmt.Sprintf("  negative transfer T-:    %8.3f\n", res.TransferMinus))
	b.WriteString(fmt.Sprintf("  fairness efficiency eta: %8.3f\n", res.Eta))

	if factors := keyFactors(proxies); len(factors) > 0 {
		b.WriteString("\n" + headingStyle.Render("Key influencing factors") + "\n")
		for _, f := range factors {
			b.WriteString("  " + dimStyle.Render("- "+f) + "\n")
		}
	}

	b.WriteString("\n" + rule + "\n")
	return b.String()
}

func indicatorLine(name string, value float64, threshold string, met bool) string {
	mark := okStyle.Render("[ok]")
	if !met {
		mark = badStyle.Render("[--]")
	}
	return fmt.Sprintf("  %-30s %8.3f  %s %s\n", name, value, dimStyle.Render(threshold), mark)
}

func statusMark(d classify.Diagnosis) string {
	switch d {
	case classify.DeepPositive:
		return okStyle.Render("[+]")
	case classify.FragilePositive:
		return warnStyle.Render("[~]")
	case classify.NegativeWarning:
		return warnStyle.Render("[!]")
	case classify.Negative:
		return badStyle.Render("[x]")
	default:
		return dimStyle.Render("[=]")
	}
}

// #endregion render

// #region key-factors

// keyFactors surfaces the proxies that most constrain the outcome, per the
// published case commentary.
func keyFactors(proxies []float64) []string {
	if len(proxies) != proxy.Count {
		return nil
	}
	var factors []string
	if proxies[proxy.Gini] > 0.4 {
		factors = append(factors, fmt.Sprintf(
			"income inequality (Gini %.2f) suppresses system efficiency", proxies[proxy.Gini]))
	}
	if proxies[proxy.YouthUnemployment] > 0.15 {
		factors = append(factors, fmt.Sprintf(
			"youth unemployment (%.1f%%) is the main source of the negative factor", proxies[proxy.YouthUnemployment]*100))
	}
	if proxies[proxy.Polarization] > 0.45 {
		factors = append(factors, fmt.Sprintf(
			"polarization index %.2f strongly suppresses cooperative willingness", proxies[proxy.Polarization]))
	}
	if proxies[proxy.NPLRatio] < 0.03 {
		factors = append(factors, fmt.Sprintf(
			"low non-performing loan ratio (%.1f%%) supports positive credit encoding", proxies[proxy.NPLRatio]*100))
	}
	return factors
}

// #endregion key-factors

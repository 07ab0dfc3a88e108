package report

import "github.com/fatih/color"

// Grade classifies an overhead percentage.
type Grade int

const (
	// Good overhead is below the threshold's Good bound.
	Good Grade = iota
	// Fair overhead is below the Fair bound.
	Fair
	// Poor is everything else.
	Poor
)

// String returns "good", "fair" or "poor".
func (g Grade) String() string {
	switch g {
	case Good:
		return "good"
	case Fair:
		return "fair"
	default:
		return "poor"
	}
}

func (g Grade) attr() color.Attribute {
	switch g {
	case Good:
		return color.FgGreen
	case Fair:
		return color.FgYellow
	default:
		return color.FgRed
	}
}

// Threshold holds the two overhead bounds in percent.
type Threshold struct {
	Good float64
	Fair float64
}

// Grade classifies overhead against t.
func (t Threshold) Grade(overhead float64) Grade {
	switch {
	case overhead < t.Good:
		return Good
	case overhead < t.Fair:
		return Fair
	default:
		return Poor
	}
}

// Thresholds used by the reports.
var (
	TimingThreshold     = Threshold{Good: 15, Fair: 30}
	MemoryThreshold     = Threshold{Good: 20, Fair: 50}
	ScalingThreshold    = Threshold{Good: 30, Fair: 60}
	LegacyThreshold     = Threshold{Good: 20, Fair: 50}
	LegacyFullThreshold = Threshold{Good: 50, Fair: 100}
)

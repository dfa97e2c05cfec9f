package oracle

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"github.com/quantfolio/option-analyzer/src/models"
)

// CommandOracle prices options by invoking the pricing engine executable
// once per request. Each invocation is bounded by Timeout; a slow or broken
// engine fails one option, never the run.
type CommandOracle struct {
	Path    string
	Timeout time.Duration
}

func NewCommandOracle(path string, timeout time.Duration) *CommandOracle {
	return &CommandOracle{
		Path:    path,
		Timeout: timeout,
	}
}

func (o *CommandOracle) Price(ctx context.Context, req PriceRequest) (models.PricingResult, error) {
	ctx, cancel := context.WithTimeout(ctx, o.Timeout)
	defer cancel()

	args := []string{
		"price",
		"--spot", formatFloatArg(req.Spot),
		"--strike", formatFloatArg(req.Strike),
		"--rate", formatFloatArg(req.Rate),
		"--time", formatFloatArg(req.TimeToExpiryYears),
		"--vol", formatFloatArg(req.Volatility),
		"--type", string(req.OptionType),
		"--greeks",
	}

	cmd := exec.CommandContext(ctx, o.Path, args...)

	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return models.FailedPricingResult(), fmt.Errorf("pricing engine timed out after %s", o.Timeout)
		}
		return models.FailedPricingResult(), fmt.Errorf("pricing engine failed: %v: %s", err, stderr.String())
	}

	result, err := ParsePricingOutput(out.String())
	if err != nil {
		return models.FailedPricingResult(), fmt.Errorf("failed to parse pricing engine output: %v", err)
	}

	return result, nil
}

func formatFloatArg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/heartmonitor/heartmonitor/api/internal/domain"
	"github.com/heartmonitor/heartmonitor/api/internal/dto"
	"github.com/heartmonitor/heartmonitor/api/internal/service"
)

type predictOptions struct {
	height       float64
	weight       float64
	age          int
	gender       string
	bodySize     string
	perturbation float64
	explain      bool
	server       string
	timeout      time.Duration
}

func newPredictCommand(verbose *bool) *cobra.Command {
	opts := &predictOptions{}

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Estimate a resting heart rate",
		Long: `Estimate a resting heart rate from height (cm), weight (kg), age (years),
gender (male|female) and body size (small|medium|large).

Without --server the estimate is computed locally. Use --perturbation 0 for a
deterministic result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := payloadFromFlags(cmd, opts)
			out := cmd.OutOrStdout()

			if opts.server != "" {
				logVerbose(cmd.ErrOrStderr(), *verbose, "posting to %s", opts.server)
				client := NewClient(opts.server, opts.timeout)
				resp, err := client.Predict(cmd.Context(), payload)
				if err != nil {
					return err
				}
				return writeJSON(out, resp)
			}

			logVerbose(cmd.ErrOrStderr(), *verbose, "estimating locally with perturbation ±%g", opts.perturbation)
			svc := service.NewPredictionService(
				service.NewEstimator(service.NewUniformSampler(opts.perturbation)),
				zap.NewNop(),
			)

			if opts.explain {
				breakdown, err := svc.Explain(cmd.Context(), payload)
				if err != nil {
					return err
				}
				return writeJSON(out, breakdown)
			}

			result, err := svc.Predict(cmd.Context(), payload)
			if err != nil {
				return err
			}
			return writeJSON(out, dto.NewPredictHeartRateResponse(result))
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.height, "height", 0, "Height in centimeters (100-250)")
	f.Float64Var(&opts.weight, "weight", 0, "Weight in kilograms (30-200)")
	f.IntVar(&opts.age, "age", 0, "Age in years (1-120)")
	f.StringVar(&opts.gender, "gender", "", "Gender: male or female")
	f.StringVar(&opts.bodySize, "body-size", "", "Body size: small, medium or large")
	f.Float64Var(&opts.perturbation, "perturbation", service.DefaultPerturbation, "Half-width of the random variation in bpm")
	f.BoolVar(&opts.explain, "explain", false, "Print every term of the estimate")
	f.StringVar(&opts.server, "server", "", "Heart Rate Monitor API base URL; computes locally when empty")
	f.DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout when --server is set")

	return cmd
}

// payloadFromFlags includes only the flags the user set so that missing
// measurements are reported by the validator in field order.
func payloadFromFlags(cmd *cobra.Command, opts *predictOptions) map[string]any {
	payload := make(map[string]any)
	f := cmd.Flags()
	if f.Changed("height") {
		payload[domain.FieldHeight] = opts.height
	}
	if f.Changed("weight") {
		payload[domain.FieldWeight] = opts.weight
	}
	if f.Changed("age") {
		payload[domain.FieldAge] = opts.age
	}
	if f.Changed("gender") {
		payload[domain.FieldGender] = opts.gender
	}
	if f.Changed("body-size") {
		payload[domain.FieldBodySize] = opts.bodySize
	}
	return payload
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

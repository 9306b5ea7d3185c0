// Package boot provides bootstrap inference for derived mediation statistics.
//
// Given a fitted model's parameter estimates (or raw data plus a refit
// callback), it computes a point estimate and a percentile confidence
// interval for a caller-supplied statistic by resampling.
//
// # Methods
//
// The package provides three resampling methods behind one entry point:
//
//   - Parametric: draws parameter vectors from a multivariate normal
//     distribution centered on the point estimates with the estimated
//     covariance, and evaluates the statistic on each draw.
//
//   - Nonparametric: redraws whole observations with replacement and reruns
//     a caller-supplied refit-and-evaluate callback on each resample.
//
//   - Plugin: evaluates the statistic once on the point estimates, with no
//     resampling and no interval.
//
// # Reproducibility
//
// Every iteration derives its own seed from (master seed, iteration index)
// and owns its own random source, so sequential and parallel runs with the
// same seed and iteration count produce identical distributions regardless
// of worker count.
//
// # Usage
//
//	est, _ := estimate.New(map[string]float64{"a": 0.5, "b": 0.4}, cov)
//
//	res, err := boot.Run(ctx, boot.Parametric,
//	    boot.WithStatistic(func(p map[string]float64) (float64, error) {
//	        return p["a"] * p["b"], nil
//	    }),
//	    boot.WithEstimate(est),
//	    boot.WithIterations(1000),
//	    boot.WithSeed(123),
//	)
//	if err != nil {
//	    return err
//	}
//	iv, _ := res.Interval()
//	fmt.Println(res.Estimate(), iv.Lower, iv.Upper)
package boot

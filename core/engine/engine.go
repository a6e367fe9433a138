// Package engine provides the API-primary quoting engine.
// CLI is a thin wrapper around this engine.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cover-quote/core/determinism"
	"cover-quote/core/output"
	"cover-quote/core/quote"
	"cover-quote/core/request"
	"cover-quote/internal/errors"
)

// Version is the tool version reported in result metadata
const Version = "0.1.0"

// Engine is the primary API for quoting.
// All other interfaces are thin wrappers.
type Engine struct {
	generator *quote.Generator
	logger    *zap.Logger

	// now and newID are replaced in tests
	now   func() time.Time
	newID func() string
}

// New creates an engine. A nil generator prices against the default
// catalog and a nil logger discards logs.
func New(generator *quote.Generator, logger *zap.Logger) *Engine {
	if generator == nil {
		generator = quote.NewGenerator(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		generator: generator,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Run prices a request. Validation failures are returned unchanged as
// errors.TypeInvalidRequest and no partial result is produced.
func (e *Engine) Run(ctx context.Context, req *request.Request) (*output.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, errors.Internal("nil quote request", nil)
	}

	start := e.now()
	id := e.newID()
	log := e.logger.With(zap.String("request_id", id))

	log.Debug("Generating quotes",
		zap.Float64("risk_score", req.RiskScore),
		zap.Strings("bundles", req.Bundles),
		zap.Strings("named_items", req.NamedItems))

	covers, err := e.generator.GenerateQuotes(req.RiskScore, req.Bundles, req.NamedItems)
	if err != nil {
		if errors.IsType(err, errors.TypeInvalidRequest) {
			log.Info("Quote request rejected", zap.Error(err))
		} else {
			log.Error("Quote generation failed", zap.Error(err))
		}
		return nil, err
	}

	for cover, set := range covers {
		fields := []zap.Field{zap.String("cover", cover), zap.Int("options", set.Len())}
		if cheapest, ok := set.Cheapest(); ok {
			fields = append(fields, zap.Float64("cheapest_price", cheapest.Price()))
		}
		log.Debug("Cover priced", fields...)
	}

	elapsed := e.now().Sub(start)
	log.Info("Quotes generated", zap.Int("covers", len(covers)), zap.Duration("duration", elapsed))

	return &output.Result{
		RequestID:    id,
		RiskScore:    req.RiskScore,
		RiskQuotient: quote.RiskQuotient(req.RiskScore),
		Covers:       covers,
		Metadata: output.Metadata{
			Timestamp:   start.UTC().Format(time.RFC3339),
			Fingerprint: string(determinism.RequestFingerprint(req.RiskScore, req.Bundles, req.NamedItems)),
			Duration:    elapsed.String(),
			Version:     Version,
		},
	}, nil
}

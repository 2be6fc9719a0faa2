package rsa

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/taurusgroup/modexp/pkg/math/bigint"
	"github.com/taurusgroup/modexp/pkg/math/modexp"
	"github.com/taurusgroup/modexp/pkg/math/montgomery"
	"github.com/taurusgroup/modexp/pkg/pool"
)

// Engine applies the RSA transform for many moduli, reusing the Montgomery
// context of each modulus it has seen.
//
// An Engine is safe for concurrent use.
type Engine struct {
	cache *montgomery.Cache
	pool  *pool.Pool

	Log zerolog.Logger
}

// NewEngine returns an Engine distributing batches over pl.
// A nil pool runs every transform on the calling goroutine.
func NewEngine(pl *pool.Pool) *Engine {
	return &Engine{
		cache: montgomery.NewCache(),
		pool:  pl,
		Log: zerolog.New(zerolog.NewConsoleWriter()).Level(zerolog.InfoLevel).With().
			Str("component", "rsa").Logger(),
	}
}

// Cache returns the Montgomery contexts computed so far.
func (e *Engine) Cache() *montgomery.Cache {
	return e.cache
}

func (e *Engine) context(modulus bigint.Int) *montgomery.Context {
	if ctx, ok := e.cache.Lookup(modulus); ok {
		return ctx
	}
	ctx := e.cache.Get(modulus)
	e.Log.Debug().
		Int("bits", modulus.BitLen()).
		Bool("montgomery", ctx.Enabled()).
		Msg("new modulus")
	return ctx
}

// Transform returns messageᵉˣᵖᵒⁿᵉⁿᵗ (mod modulus), as the package level Transform.
func (e *Engine) Transform(message, exponent, modulus bigint.Int) (bigint.Int, error) {
	c, err := modexp.ExpContext(e.context(modulus), message, exponent)
	if err != nil {
		return bigint.Int{}, fmt.Errorf("rsa.Engine: %w", err)
	}
	return c, nil
}

type batchResult struct {
	value bigint.Int
	err   error
}

// TransformBatch transforms every message under the same exponent and modulus.
//
// The output is in the order of messages. If some transforms fail, the error
// of the first failing message is returned.
func (e *Engine) TransformBatch(messages []bigint.Int, exponent, modulus bigint.Int) ([]bigint.Int, error) {
	ctx := e.context(modulus)
	e.Log.Debug().
		Int("messages", len(messages)).
		Int("workers", e.pool.Workers()).
		Msg("transform batch")

	results := e.pool.Parallelize(len(messages), func(i int) interface{} {
		c, err := modexp.ExpContext(ctx, messages[i], exponent)
		return batchResult{value: c, err: err}
	})

	out := make([]bigint.Int, len(messages))
	for i, r := range results {
		res := r.(batchResult)
		if res.err != nil {
			return nil, fmt.Errorf("rsa.Engine: message %d: %w", i, res.err)
		}
		out[i] = res.value
	}
	return out, nil
}

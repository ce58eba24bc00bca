package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/netarea/core"
	"github.com/katalvlaran/netarea/expr"
	"github.com/katalvlaran/netarea/extrema"
	"github.com/katalvlaran/netarea/montecarlo"
	"github.com/katalvlaran/netarea/riemann"
)

// Pipeline validates inputs and runs the selected integrator. Cycles are
// meant to be driven by one caller; Last may be read from any goroutine.
type Pipeline struct {
	cfg config

	mu   sync.RWMutex
	last *Snapshot
}

// New builds a Pipeline; options are applied in order.
func New(opts ...Option) *Pipeline {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Pipeline{cfg: cfg}
}

// Run validates in and returns the text outcome. Exactly one of
// Result.ErrorMessage and Result.NetAreaText is non-empty.
func (p *Pipeline) Run(ctx context.Context, in Input) Result {
	v, err := p.Validate(ctx, in)
	if err != nil {
		return Result{ErrorMessage: Message(err)}
	}

	return Result{NetAreaText: FormatDouble(v), NetArea: v}
}

// Validate runs one cycle and returns the net area, or a *Rejection.
func (p *Pipeline) Validate(ctx context.Context, in Input) (float64, error) {
	start := time.Now()
	log := p.cfg.logger.With(slog.String("cycle", uuid.NewString()))

	snap, rej := p.cycle(ctx, in)
	if rej != nil {
		p.store(nil)
		kind := KindName(rej)
		log.Debug("input rejected",
			slog.Int("check", int(rej.Check)),
			slog.String("kind", kind),
			slog.String("message", rej.Message),
		)
		p.cfg.recorder.RecordCycle("rejected", kind)

		return 0, rej
	}

	snap.Elapsed = time.Since(start)
	p.store(snap)
	log.Info("net area computed",
		slog.String("method", snap.Request.Method.String()),
		slog.Float64("net_area", snap.NetArea),
		slog.Int("points", snap.Request.Points),
		slog.Duration("elapsed", snap.Elapsed),
	)
	p.cfg.recorder.RecordCycle("accepted", KindName(nil))

	return snap.NetArea, nil
}

// Last returns the snapshot of the most recent accepted cycle. ok is false
// before the first acceptance and after any rejection or Reset.
func (p *Pipeline) Last() (Snapshot, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.last == nil {
		return Snapshot{}, false
	}

	return *p.last, true
}

// Reset forgets the last accepted cycle.
func (p *Pipeline) Reset() { p.store(nil) }

func (p *Pipeline) store(s *Snapshot) {
	p.mu.Lock()
	p.last = s
	p.mu.Unlock()
}

// cycle runs every check and then the integrator.
func (p *Pipeline) cycle(ctx context.Context, in Input) (*Snapshot, *Rejection) {
	nums, rej := parseNumbers(in, p.cfg)
	if rej != nil {
		return nil, rej
	}
	e, rej := compileEquation(in.Equation, p.cfg.restriction)
	if rej != nil {
		return nil, rej
	}
	if rej = checkContinuity(ctx, e, nums.interval, p.cfg.continuityStep); rej != nil {
		return nil, rej
	}

	snap := &Snapshot{Request: Request{
		Equation: e,
		Method:   nums.method,
		Endpoint: nums.endpoint,
		Interval: nums.interval,
		Points:   nums.points,
	}}

	began := time.Now()
	var err error
	switch nums.method {
	case RiemannSum:
		err = p.integrateRiemann(snap)
	default:
		err = p.integrateMonteCarlo(ctx, snap)
	}
	if err != nil {
		return nil, computeRejection(err)
	}
	elapsed := time.Since(began)
	if !core.IsFinite(snap.NetArea) {
		return nil, reject(CheckCompute, ErrContinuity, MsgNotContinuous, nil)
	}
	p.cfg.recorder.RecordIntegration(nums.method.String(), elapsed)

	snap.Curve = sampleCurve(e, nums.interval)

	return snap, nil
}

func (p *Pipeline) integrateRiemann(snap *Snapshot) error {
	req := snap.Request
	rects, err := riemann.Partition(req.Equation, req.Interval, req.Points, req.Endpoint)
	if err != nil {
		return err
	}
	area, err := riemann.Sum(req.Equation, req.Interval, req.Points, req.Endpoint)
	if err != nil {
		return err
	}
	snap.Rects = rects
	snap.NetArea = area

	return nil
}

func (p *Pipeline) integrateMonteCarlo(ctx context.Context, snap *Snapshot) error {
	req := snap.Request
	r, err := extrema.Scan(ctx, req.Equation, req.Interval, extrema.WithStep(p.cfg.extremaStep))
	if err != nil {
		return err
	}
	b := montecarlo.Bounds(req.Interval, r)
	if !core.IsFinite(b.Area()) {
		return montecarlo.ErrBadRange
	}
	samples, err := montecarlo.Generate(b.X0, b.X1, b.Y0, b.Y1, req.Points, montecarlo.WithSeed(p.cfg.seed))
	if err != nil {
		return err
	}
	est, err := montecarlo.Survey(ctx, req.Equation, req.Interval, samples,
		montecarlo.WithExtremaStep(p.cfg.extremaStep))
	if err != nil {
		return err
	}
	snap.Samples = samples
	snap.Regions = est.Regions
	snap.Bounds = est.Bounds
	snap.NetArea = est.Area

	return nil
}

// computeRejection maps an integrator failure to a Rejection.
func computeRejection(err error) *Rejection {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return reject(CheckCompute, ErrCanceled, MsgCanceled, err)
	case errors.Is(err, montecarlo.ErrBadRange), errors.Is(err, extrema.ErrNoFiniteValue):
		return reject(CheckCompute, ErrContinuity, MsgNotContinuous, err)
	default:
		return reject(CheckCompute, ErrEvaluation, MsgInvalidFunction, err)
	}
}

// sampleCurve evaluates f at curveSegments+1 evenly spaced points for
// plotting. Points that fail or are not finite are left out.
func sampleCurve(f *expr.Expression, iv core.Interval) []core.Point {
	dx := iv.Width() / curveSegments
	out := make([]core.Point, 0, curveSegments+1)
	for i := 0; i <= curveSegments; i++ {
		x := iv.Lower + float64(i)*dx
		if i == curveSegments {
			x = iv.Upper
		}
		y, err := f.Eval(x)
		if err != nil || !core.IsFinite(y) {
			continue
		}
		out = append(out, core.Point{X: x, Y: y})
	}

	return out
}

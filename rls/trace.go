package rls

import "github.com/tphakala/go-audio-filterlab/linalg"

// trace accumulates per-sample diagnostics.
type trace struct {
	rows   [traceRows][]float64
	cost   float64
	energy float64
}

func (t *trace) record(eta, err, d, gainNorm, inputNorm float64) {
	t.cost += err * eta
	t.energy += d * d

	t.rows[TraceError] = append(t.rows[TraceError], err)
	t.rows[TraceEta] = append(t.rows[TraceEta], eta)
	t.rows[TraceCost] = append(t.rows[TraceCost], t.cost)
	t.rows[TraceGainNorm] = append(t.rows[TraceGainNorm], gainNorm)
	t.rows[TraceInputNorm] = append(t.rows[TraceInputNorm], inputNorm)
	t.rows[TraceEnergy] = append(t.rows[TraceEnergy], t.energy)
}

func (t *trace) matrix() *linalg.Matrix {
	n := len(t.rows[TraceError])
	if n == 0 {
		return linalg.NewMatrix(0, 0)
	}
	m := linalg.NewMatrix(traceRows, n)
	for i, row := range t.rows {
		m.SetRow(i, linalg.VectorOf(row...))
	}
	return m
}

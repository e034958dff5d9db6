package classifier

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

// MLP is a one-hidden-layer perceptron (tanh units, logistic output)
// trained on the mean log-loss plus an L2 penalty with L-BFGS.
type MLP struct {
	Hidden  int     `json:"hidden"`
	Alpha   float64 `json:"alpha"`
	MaxIter int     `json:"max_iter"`
	Tol     float64 `json:"tol"`
	Seed    uint64  `json:"seed"`

	W1 [][]float64 `json:"w1"`
	B1 []float64   `json:"b1"`
	W2 []float64   `json:"w2"`
	B2 float64     `json:"b2"`
}

// NewMLP creates a perceptron with default hyperparameters
func NewMLP() *MLP {
	return &MLP{Hidden: 100, Alpha: 1e-4, MaxIter: 200, Tol: 1e-4, Seed: 1}
}

// mlpLayout addresses the flat parameter vector: W1 row-major, then B1, W2
// and B2.
type mlpLayout struct {
	dim, hidden int
}

func (l mlpLayout) size() int                       { return l.hidden*(l.dim+2) + 1 }
func (l mlpLayout) w1(p []float64, j int) []float64 { return p[j*l.dim : (j+1)*l.dim] }
func (l mlpLayout) b1(p []float64) []float64        { return p[l.hidden*l.dim : l.hidden*(l.dim+1)] }
func (l mlpLayout) w2(p []float64) []float64        { return p[l.hidden*(l.dim+1) : l.hidden*(l.dim+2)] }
func (l mlpLayout) b2(p []float64) *float64         { return &p[l.size()-1] }

// forward fills h with the hidden activations and returns the output score.
func (l mlpLayout) forward(p, x, h []float64) float64 {
	b1 := l.b1(p)
	for j := range h {
		h[j] = math.Tanh(floats.Dot(l.w1(p, j), x) + b1[j])
	}
	return floats.Dot(l.w2(p), h) + *l.b2(p)
}

// Fit trains the model on X and y. Initial weights come from Seed, so
// training is deterministic.
func (m *MLP) Fit(X [][]float64, y []int) error {
	dim, err := validate(X, y)
	if err != nil {
		return err
	}
	if m.Hidden <= 0 {
		return fmt.Errorf("hidden layer size must be positive, got %d", m.Hidden)
	}

	l := mlpLayout{dim: dim, hidden: m.Hidden}
	n := float64(len(X))
	h := make([]float64, m.Hidden)

	penalty := func(p []float64) (w1, w2 []float64) {
		return p[:l.hidden*l.dim], l.w2(p)
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			var f float64
			for i, x := range X {
				loss, _ := logLoss(l.forward(p, x, h), y[i])
				f += loss
			}
			w1, w2 := penalty(p)
			return f/n + m.Alpha/(2*n)*(floats.Dot(w1, w1)+floats.Dot(w2, w2))
		},
		Grad: func(grad, p []float64) {
			clear(grad)
			gb1, gw2 := l.b1(grad), l.w2(grad)
			w2 := l.w2(p)
			for i, x := range X {
				_, dz := logLoss(l.forward(p, x, h), y[i])
				floats.AddScaled(gw2, dz, h)
				*l.b2(grad) += dz
				for j, hj := range h {
					dh := dz * w2[j] * (1 - hj*hj)
					floats.AddScaled(l.w1(grad, j), dh, x)
					gb1[j] += dh
				}
			}
			floats.Scale(1/n, grad)

			pw1, pw2 := penalty(p)
			gw1, _ := penalty(grad)
			floats.AddScaled(gw1, m.Alpha/n, pw1)
			floats.AddScaled(gw2, m.Alpha/n, pw2)
		},
	}

	settings := &optimize.Settings{MajorIterations: m.MaxIter, GradientThreshold: m.Tol}
	res, err := optimize.Minimize(problem, m.initParams(l), settings, &optimize.LBFGS{})
	if res == nil {
		return fmt.Errorf("minimizing loss: %w", err)
	}

	m.W1 = make([][]float64, m.Hidden)
	for j := range m.W1 {
		m.W1[j] = append([]float64(nil), l.w1(res.X, j)...)
	}
	m.B1 = append([]float64(nil), l.b1(res.X)...)
	m.W2 = append([]float64(nil), l.w2(res.X)...)
	m.B2 = *l.b2(res.X)
	return nil
}

// initParams draws Glorot-uniform weights; biases start at zero.
func (m *MLP) initParams(l mlpLayout) []float64 {
	rng := rand.New(rand.NewPCG(m.Seed, m.Seed))
	p := make([]float64, l.size())

	bound1 := math.Sqrt(6 / float64(l.dim+l.hidden))
	for i := range p[:l.hidden*l.dim] {
		p[i] = (2*rng.Float64() - 1) * bound1
	}
	bound2 := math.Sqrt(6 / float64(l.hidden+1))
	w2 := l.w2(p)
	for i := range w2 {
		w2[i] = (2*rng.Float64() - 1) * bound2
	}
	return p
}

// Predict returns 1 when the output probability is at least 0.5.
func (m *MLP) Predict(x []float64) int {
	if len(m.W1) == 0 || len(x) != len(m.W1[0]) {
		return Healthy
	}
	z := m.B2
	for j, row := range m.W1 {
		z += m.W2[j] * math.Tanh(floats.Dot(row, x)+m.B1[j])
	}
	if z >= 0 {
		return Unhealthy
	}
	return Healthy
}

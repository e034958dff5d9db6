package classifier

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

// Linear holds the parameters shared by the linear models.
type Linear struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// Score returns w·x + b.
func (l *Linear) Score(x []float64) float64 {
	if len(x) != len(l.Weights) {
		return l.Bias
	}
	return floats.Dot(l.Weights, x) + l.Bias
}

// Predict returns 1 when the score is non-negative.
func (l *Linear) Predict(x []float64) int {
	if l.Score(x) >= 0 {
		return Unhealthy
	}
	return Healthy
}

// lossFunc returns the loss of one sample with score z and its derivative
// with respect to z.
type lossFunc func(z float64, label int) (loss, dz float64)

// fitLinear minimises 0.5·||w||² + C·Σ loss(w·x+b, y) with L-BFGS. The bias
// is not penalised.
func fitLinear(X [][]float64, y []int, c float64, maxIter int, tol float64, loss lossFunc) (Linear, error) {
	dim, err := validate(X, y)
	if err != nil {
		return Linear{}, err
	}

	score := func(params, x []float64) float64 {
		return floats.Dot(params[:dim], x) + params[dim]
	}

	problem := optimize.Problem{
		Func: func(params []float64) float64 {
			w := params[:dim]
			f := 0.5 * floats.Dot(w, w)
			for i, x := range X {
				l, _ := loss(score(params, x), y[i])
				f += c * l
			}
			return f
		},
		Grad: func(grad, params []float64) {
			copy(grad[:dim], params[:dim])
			grad[dim] = 0
			for i, x := range X {
				_, dz := loss(score(params, x), y[i])
				floats.AddScaled(grad[:dim], c*dz, x)
				grad[dim] += c * dz
			}
		},
	}

	settings := &optimize.Settings{MajorIterations: maxIter, GradientThreshold: tol}
	res, err := optimize.Minimize(problem, make([]float64, dim+1), settings, &optimize.LBFGS{})
	if res == nil {
		return Linear{}, fmt.Errorf("minimizing loss: %w", err)
	}
	// A line search failure near the optimum still leaves the best point in res.X.

	return Linear{
		Weights: append([]float64(nil), res.X[:dim]...),
		Bias:    res.X[dim],
	}, nil
}

// Logistic is L2-regularised logistic regression.
type Logistic struct {
	Linear

	C       float64 `json:"c"`
	MaxIter int     `json:"max_iter"`
	Tol     float64 `json:"tol"`
}

// NewLogistic creates a logistic regression with default hyperparameters
func NewLogistic() *Logistic {
	return &Logistic{C: 1.0, MaxIter: 100, Tol: 1e-4}
}

// Fit trains the model on X and y.
func (m *Logistic) Fit(X [][]float64, y []int) error {
	lin, err := fitLinear(X, y, m.C, m.MaxIter, m.Tol, logLoss)
	if err != nil {
		return err
	}
	m.Linear = lin
	return nil
}

// Probability returns P(label = 1 | x).
func (m *Logistic) Probability(x []float64) float64 {
	return sigmoid(m.Score(x))
}

func logLoss(z float64, label int) (float64, float64) {
	return softplus(z) - float64(label)*z, sigmoid(z) - float64(label)
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// softplus is log(1 + e^z), stable for large |z|.
func softplus(z float64) float64 {
	return math.Max(z, 0) + math.Log1p(math.Exp(-math.Abs(z)))
}

// LinearSVM is a linear SVM with the squared hinge loss.
type LinearSVM struct {
	Linear

	C       float64 `json:"c"`
	MaxIter int     `json:"max_iter"`
	Tol     float64 `json:"tol"`
}

// NewLinearSVM creates a linear SVM with default hyperparameters
func NewLinearSVM() *LinearSVM {
	return &LinearSVM{C: 1.0, MaxIter: 1000, Tol: 1e-4}
}

// Fit trains the model on X and y.
func (m *LinearSVM) Fit(X [][]float64, y []int) error {
	lin, err := fitLinear(X, y, m.C, m.MaxIter, m.Tol, squaredHinge)
	if err != nil {
		return err
	}
	m.Linear = lin
	return nil
}

func squaredHinge(z float64, label int) (float64, float64) {
	sign := -1.0
	if label == Unhealthy {
		sign = 1.0
	}
	margin := 1 - sign*z
	if margin <= 0 {
		return 0, 0
	}
	return margin * margin, -2 * sign * margin
}

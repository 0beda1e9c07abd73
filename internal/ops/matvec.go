package ops

import (
	"github.com/strand-ml/strand/internal/tensor"
)

// MatVec returns the rule for a matrix-vector product y = W @ x, the core
// of a dense layer. The edge's sources are [W, x] and its target is [y].
//
// Backward pass:
//   - dL/dW = cot ⊗ x (outer product)
//   - dL/dx = Wᵀ @ cot
func MatVec() Rule {
	return Rule{
		Forward: func(inputs []*tensor.Tensor) ([]*tensor.Tensor, error) {
			if err := checkArity("matvec", inputs, 2); err != nil {
				return nil, err
			}
			out, err := tensor.MatVec(inputs[0], inputs[1])
			if err != nil {
				return nil, err
			}
			return []*tensor.Tensor{out}, nil
		},
		Backward: func(inputs []*tensor.Tensor) ([]*tensor.Tensor, error) {
			if err := checkArity("matvec backward", inputs, 3); err != nil {
				return nil, err
			}
			w, x, cot := inputs[0], inputs[1], inputs[2]
			gradW, err := tensor.Outer(cot, x)
			if err != nil {
				return nil, err
			}
			gradX, err := tensor.MatTVec(w, cot)
			if err != nil {
				return nil, err
			}
			return []*tensor.Tensor{gradW, gradX}, nil
		},
	}
}

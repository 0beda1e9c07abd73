package ops

import (
	"github.com/strand-ml/strand/internal/tensor"
)

// Sum returns the rule for element-wise addition of n same-shape inputs.
//
// Backward pass: d(x₁+…+xₙ)/dxᵢ = 1, so the output cotangent flows
// unchanged to every input.
func Sum(n int) Rule {
	return Rule{
		Forward: func(inputs []*tensor.Tensor) ([]*tensor.Tensor, error) {
			if err := checkArity("sum", inputs, n); err != nil {
				return nil, err
			}
			out, err := tensor.Sum(inputs...)
			if err != nil {
				return nil, err
			}
			return []*tensor.Tensor{out}, nil
		},
		Backward: func(inputs []*tensor.Tensor) ([]*tensor.Tensor, error) {
			// n primal inputs followed by the single output cotangent.
			if err := checkArity("sum backward", inputs, n+1); err != nil {
				return nil, err
			}
			cot := inputs[n]
			grads := make([]*tensor.Tensor, n)
			for i := range grads {
				grads[i] = cot.Clone()
			}
			return grads, nil
		},
	}
}

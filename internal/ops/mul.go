package ops

import (
	"github.com/strand-ml/strand/internal/tensor"
)

// Mul returns the rule for element-wise multiplication of two same-shape
// inputs.
//
// Backward pass (product rule):
//   - d(a*b)/da = b, so grad_a = cot * b
//   - d(a*b)/db = a, so grad_b = cot * a
func Mul() Rule {
	return Rule{
		Forward: func(inputs []*tensor.Tensor) ([]*tensor.Tensor, error) {
			if err := checkArity("mul", inputs, 2); err != nil {
				return nil, err
			}
			out, err := tensor.Mul(inputs[0], inputs[1])
			if err != nil {
				return nil, err
			}
			return []*tensor.Tensor{out}, nil
		},
		Backward: func(inputs []*tensor.Tensor) ([]*tensor.Tensor, error) {
			if err := checkArity("mul backward", inputs, 3); err != nil {
				return nil, err
			}
			a, b, cot := inputs[0], inputs[1], inputs[2]
			gradA, err := tensor.Mul(cot, b)
			if err != nil {
				return nil, err
			}
			gradB, err := tensor.Mul(cot, a)
			if err != nil {
				return nil, err
			}
			return []*tensor.Tensor{gradA, gradB}, nil
		},
	}
}

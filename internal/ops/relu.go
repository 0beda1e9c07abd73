package ops

import (
	"fmt"

	"github.com/strand-ml/strand/internal/tensor"
)

// ReLU returns the rule for the rectified linear unit y = max(0, x).
//
// Backward pass: the cotangent flows through where the primal input was
// positive and is zeroed elsewhere. The derivative at exactly zero is
// taken as zero.
func ReLU() Rule {
	return Rule{
		Forward: func(inputs []*tensor.Tensor) ([]*tensor.Tensor, error) {
			if err := checkArity("relu", inputs, 1); err != nil {
				return nil, err
			}
			out := inputs[0].Clone()
			data := out.Data()
			for i, v := range data {
				if v < 0 {
					data[i] = 0
				}
			}
			return []*tensor.Tensor{out}, nil
		},
		Backward: func(inputs []*tensor.Tensor) ([]*tensor.Tensor, error) {
			if err := checkArity("relu backward", inputs, 2); err != nil {
				return nil, err
			}
			x, cot := inputs[0], inputs[1]
			if !x.Shape().Equal(cot.Shape()) {
				return nil, fmt.Errorf("relu backward: shape mismatch %v vs %v", x.Shape(), cot.Shape())
			}
			grad := cot.Clone()
			data := grad.Data()
			for i, v := range x.Data() {
				if v <= 0 {
					data[i] = 0
				}
			}
			return []*tensor.Tensor{grad}, nil
		},
	}
}

package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strand-ml/strand/internal/ops"
	"github.com/strand-ml/strand/internal/tensor"
)

func vec(t *testing.T, data ...float64) *tensor.Tensor {
	t.Helper()
	out, err := tensor.FromSlice(data, tensor.Shape{len(data)})
	require.NoError(t, err)
	return out
}

func TestSumForward(t *testing.T) {
	rule := ops.Sum(3)
	out, err := rule.Forward([]*tensor.Tensor{vec(t, 1, 2), vec(t, 3, 4), vec(t, 5, 6)})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []float64{9, 12}, out[0].Data())
}

func TestSumBackwardBroadcastsCotangent(t *testing.T) {
	rule := ops.Sum(2)
	grads, err := rule.Backward([]*tensor.Tensor{vec(t, 1, 2), vec(t, 3, 4), vec(t, 10, 20)})
	require.NoError(t, err)
	require.Len(t, grads, 2)
	assert.Equal(t, []float64{10, 20}, grads[0].Data())
	assert.Equal(t, []float64{10, 20}, grads[1].Data())

	// Each gradient is an independent copy of the cotangent.
	grads[0].Data()[0] = -1
	assert.Equal(t, 10.0, grads[1].At(0))
}

func TestSumArity(t *testing.T) {
	rule := ops.Sum(2)
	_, err := rule.Forward([]*tensor.Tensor{vec(t, 1)})
	assert.Error(t, err)
	_, err = rule.Backward([]*tensor.Tensor{vec(t, 1), vec(t, 2)})
	assert.Error(t, err)
}

func TestMulForward(t *testing.T) {
	rule := ops.Mul()
	out, err := rule.Forward([]*tensor.Tensor{vec(t, 2, 3), vec(t, 4, 5)})
	require.NoError(t, err)
	assert.Equal(t, []float64{8, 15}, out[0].Data())
}

func TestMulBackwardProductRule(t *testing.T) {
	rule := ops.Mul()
	grads, err := rule.Backward([]*tensor.Tensor{vec(t, 2, 3), vec(t, 4, 5), vec(t, 1, 10)})
	require.NoError(t, err)
	require.Len(t, grads, 2)
	assert.Equal(t, []float64{4, 50}, grads[0].Data())
	assert.Equal(t, []float64{2, 30}, grads[1].Data())
}

func TestMulShapeMismatch(t *testing.T) {
	rule := ops.Mul()
	_, err := rule.Forward([]*tensor.Tensor{vec(t, 1, 2), vec(t, 1, 2, 3)})
	assert.Error(t, err)
}

func TestMatVecForward(t *testing.T) {
	rule := ops.MatVec()
	w, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)
	out, err := rule.Forward([]*tensor.Tensor{w, vec(t, 5, 6)})
	require.NoError(t, err)
	assert.Equal(t, []float64{17, 39}, out[0].Data())
}

func TestMatVecBackward(t *testing.T) {
	rule := ops.MatVec()
	w, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)
	x := vec(t, 5, 6)
	cot := vec(t, 1, 2)

	grads, err := rule.Backward([]*tensor.Tensor{w, x, cot})
	require.NoError(t, err)
	require.Len(t, grads, 2)

	// dL/dW = cot ⊗ x.
	assert.True(t, grads[0].Shape().Equal(tensor.Shape{2, 2}))
	assert.Equal(t, []float64{5, 6, 10, 12}, grads[0].Data())

	// dL/dx = Wᵀ @ cot = (1*1 + 3*2, 2*1 + 4*2).
	assert.Equal(t, []float64{7, 10}, grads[1].Data())
}

func TestReLUForward(t *testing.T) {
	rule := ops.ReLU()
	out, err := rule.Forward([]*tensor.Tensor{vec(t, -2, 0, 3)})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 3}, out[0].Data())
}

func TestReLUForwardLeavesInputIntact(t *testing.T) {
	rule := ops.ReLU()
	in := vec(t, -2, 3)
	_, err := rule.Forward([]*tensor.Tensor{in})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, 3}, in.Data())
}

func TestReLUBackwardMasksNonPositive(t *testing.T) {
	rule := ops.ReLU()
	grads, err := rule.Backward([]*tensor.Tensor{vec(t, -2, 0, 3), vec(t, 10, 10, 10)})
	require.NoError(t, err)
	require.Len(t, grads, 1)
	assert.Equal(t, []float64{0, 0, 10}, grads[0].Data())
}

func TestReLUBackwardShapeMismatch(t *testing.T) {
	rule := ops.ReLU()
	_, err := rule.Backward([]*tensor.Tensor{vec(t, 1, 2), vec(t, 1)})
	assert.Error(t, err)
}

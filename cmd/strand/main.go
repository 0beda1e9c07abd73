// Package main provides the Strand hypergraph CLI.
package main

import (
	"fmt"
	"os"

	"github.com/strand-ml/strand/eval"
	"github.com/strand-ml/strand/hypergraph"
	"github.com/strand-ml/strand/layering"
	"github.com/strand-ml/strand/ops"
	"github.com/strand-ml/strand/tensor"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Strand %s\n", version)
			return
		case "demo":
			if err := demo(); err != nil {
				fmt.Fprintf(os.Stderr, "demo: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Strand - String-Diagram Hypergraph IR for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Layer and evaluate a small example network")
}

// demo builds a two-layer network y = relu(W @ x) + b, prints its layer
// decomposition and evaluates it on fixed values.
func demo() error {
	g := hypergraph.New()
	w := g.AddVariable(tensor.Shape{2, 3}, "W")
	x := g.AddVariable(tensor.Shape{3}, "x")
	b := g.AddVariable(tensor.Shape{2}, "b")
	h := g.AddVariable(tensor.Shape{2}, "h")
	r := g.AddVariable(tensor.Shape{2}, "r")
	y := g.AddVariable(tensor.Shape{2}, "y")

	matvec := ops.MatVec()
	if _, err := g.AddOperation([]hypergraph.VertexID{w, x}, []hypergraph.VertexID{h},
		"matvec", matvec.Forward, matvec.Backward); err != nil {
		return err
	}
	relu := ops.ReLU()
	if _, err := g.AddOperation([]hypergraph.VertexID{h}, []hypergraph.VertexID{r},
		"relu", relu.Forward, relu.Backward); err != nil {
		return err
	}
	sum := ops.Sum(2)
	if _, err := g.AddOperation([]hypergraph.VertexID{r, b}, []hypergraph.VertexID{y},
		"sum", sum.Forward, sum.Backward); err != nil {
		return err
	}
	if err := g.SetInputs(w, x, b); err != nil {
		return err
	}
	if err := g.SetOutputs(y); err != nil {
		return err
	}

	layered, layers, err := layering.Decompose(g, false)
	if err != nil {
		return err
	}
	layering.MinimizeCrossings(layered, layers)
	fmt.Print(layering.Render(layered, layers))

	weights, err := tensor.FromSlice([]float64{1, 0, -1, 0, 2, 1}, tensor.Shape{2, 3})
	if err != nil {
		return err
	}
	input, err := tensor.FromSlice([]float64{3, 1, 2}, tensor.Shape{3})
	if err != nil {
		return err
	}
	bias, err := tensor.FromSlice([]float64{0.5, -0.5}, tensor.Shape{2})
	if err != nil {
		return err
	}
	for id, value := range map[hypergraph.VertexID]*tensor.Tensor{w: weights, x: input, b: bias} {
		if err := g.SetValue(id, value); err != nil {
			return err
		}
	}
	if err := eval.Compute(g); err != nil {
		return err
	}
	fmt.Printf("\ny = %s\n", g.Value(y))
	return nil
}

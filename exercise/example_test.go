// SPDX-License-Identifier: MIT

package exercise_test

import (
	"fmt"
	"io"
	"log/slog"
	"math/big"

	"github.com/katalvlaran/lvlalg/compose"
	"github.com/katalvlaran/lvlalg/exercise"
	"github.com/katalvlaran/lvlalg/expr"
	"github.com/katalvlaran/lvlalg/numeric"
)

func ExampleFromTerms() {
	half := expr.Num(numeric.FromRat(big.NewRat(1, 2)))
	res, err := exercise.FromTerms(
		[]expr.Expr{expr.Int(2), half, expr.Int(3)},
		[]compose.Operator{compose.Multiply(), compose.Power(2)},
		exercise.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Problem)
	fmt.Println(res.Solution)
	// Output:
	// \left( 2 \cdot \frac{1}{2} \right)^{2} \cdot 3 =
	// 3
}

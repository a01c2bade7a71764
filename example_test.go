package qsubset_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/qsubset"
)

func Example() {
	solver, err := qsubset.New([]float64{5, 2, 1}, 3,
		qsubset.WithExactDistribution(true),
	)
	if err != nil {
		log.Fatal(err)
	}

	result, err := solver.Execute(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	for _, s := range result.Subsets {
		fmt.Println(s.Values)
	}
	// Output:
	// [2 1]
}

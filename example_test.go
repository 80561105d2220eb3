package gridwalk_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/gridwalk"
	"github.com/aretw0/gridwalk/pkg/domain"
)

func ExampleTraverseMatrix() {
	out, err := gridwalk.TraverseMatrix([][]string{
		{"HI", "1", "v2", ">3", "4"},
		{"v9", "<10", ">11", "^12", "13"},
		{"14", "^15", "16", "17", "<18"},
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
	// Output:
	// HI, 1, 2, 11, 12, 3, 4
}

func ExampleWalker() {
	grid := domain.MustGrid([][]string{
		{">a", "v"},
		{"^c", "<b"},
	})

	w := gridwalk.NewWalker(grid)
	for w.Step(context.Background()) {
		fmt.Printf("%s heading %s\n", w.Position(), w.Heading())
	}
	fmt.Println(w.Status(), w.Parse())
	// Output:
	// (0,1) heading right
	// (1,1) heading down
	// (1,0) heading left
	// (0,0) heading up
	// looped a, , b, c, LOOP
}

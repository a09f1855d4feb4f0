package perm_test

import (
	"fmt"

	"github.com/permkit/permkit/pkg/perm"
)

func ExampleParse() {
	p, err := perm.Parse("(1 2)(3 4 5)")
	if err != nil {
		panic(err)
	}
	fmt.Println(p.Image(1), p.Image(3), p.Image(5))
	fmt.Println(p)
	// Output:
	// 2 4 3
	// (1 2)(3 4 5)
}

func ExamplePerm_Compose() {
	a := perm.MustParse("(1 2)")
	b := perm.MustParse("(2 3)")

	// Composition applies left to right: 1 -> 2 under a, then 2 -> 3 under b.
	fmt.Println(a.Compose(b))
	fmt.Println(b.Compose(a))
	// Output:
	// (1 3 2)
	// (1 2 3)
}

func ExamplePerm_Inverse() {
	p := perm.MustParse("(1 2 3)")
	fmt.Println(p.Inverse())
	fmt.Println(p.Compose(p.Inverse()))
	// Output:
	// (1 3 2)
	// ()
}

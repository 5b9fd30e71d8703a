package cluster_test

import (
	"fmt"

	"github.com/matzehuels/profilecluster/pkg/cluster"
)

func ExampleComputeSlots() {
	cfg, err := cluster.NewLayoutConfig(200, 40, 20, cluster.WithSpacing(-8))
	if err != nil {
		panic(err)
	}
	slots, contentWidth := cluster.ComputeSlots(cfg)
	fmt.Println(slots, contentWidth)
	// Output: [#0 #1 #2 #3 #4 +15] 648
}

func ExamplePlace() {
	cfg, _ := cluster.NewLayoutConfig(200, 40, 3,
		cluster.WithSpacing(10),
		cluster.WithAlignment(cluster.AlignCenter),
	)
	slots, _ := cluster.ComputeSlots(cfg)
	for _, f := range cluster.Place(cfg, slots) {
		fmt.Printf("%s at %.0f\n", f.Slot, f.X)
	}
	// Output:
	// #0 at 30
	// #1 at 80
	// #2 at 130
}

func ExampleView() {
	names := []string{"ada", "grace", "linus", "ken"}
	r := cluster.RendererFuncs[string]{
		Avatar:   func(i int) string { return names[i] },
		Overflow: func(more int) string { return fmt.Sprintf("+%d", more) },
	}
	src := cluster.ItemCountFunc(func() int { return len(names) })

	v, _ := cluster.NewView[string](src, r, cluster.DefaultSettings())
	placed, _ := v.Resize(80, 32)
	for _, p := range placed {
		fmt.Println(p.Visual)
	}
	// Output:
	// ada
	// grace
	// +2
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kfaulhaber/memkit/alloc"
)

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	var backend string
	var capacity int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a representative workload against one backend",
		Long: `Runs a short allocate/realloc/free sequence against the chosen
backend and prints the allocator's observable state after every step.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch backend {
			case "heap":
				return demoHeap()
			case "bump":
				return demoBump(capacity)
			case "arena":
				return demoArena()
			case "sys":
				return demoSys()
			default:
				return fmt.Errorf("unknown backend %q (want heap, bump, arena, or sys)", backend)
			}
		},
	}

	cmd.Flags().StringVarP(&backend, "backend", "b", "bump", "Backend to exercise: heap, bump, arena, sys")
	cmd.Flags().IntVarP(&capacity, "capacity", "c", 1024, "Bump buffer capacity in bytes")

	return cmd
}

func demoHeap() error {
	ha := alloc.NewHeap()

	b, err := ha.Alloc(100)
	if err != nil {
		return err
	}
	printInfo("heap: allocated %d bytes\n", len(b))

	b, err = ha.Realloc(b, 200)
	if err != nil {
		return err
	}
	printInfo("heap: reallocated to %d bytes\n", len(b))

	ha.Free(b)
	printInfo("heap: freed\n")
	return nil
}

func demoBump(capacity int) error {
	ba := alloc.NewBump(capacity)
	defer ba.Destroy()

	for _, size := range []int{100, 200} {
		if _, err := ba.Alloc(size); err != nil {
			return err
		}
		printInfo("bump: allocated %d, cursor=%d/%d\n", size, ba.Used(), ba.Cap())
	}

	// An oversized request fails without moving the cursor.
	if _, err := ba.Alloc(capacity); err != nil {
		printInfo("bump: allocating %d failed (%v), cursor=%d\n", capacity, err, ba.Used())
	}

	ba.FreeAll()
	printInfo("bump: free-all, cursor=%d/%d\n", ba.Used(), ba.Cap())
	return nil
}

func demoArena() error {
	arena := alloc.NewArena(alloc.NewHeap())
	defer arena.Destroy()

	printInfo("arena: created empty, used=%d cap=%d\n", arena.Used(), arena.Cap())

	for i := 0; i < 6; i++ {
		if _, err := arena.Alloc(100); err != nil {
			return err
		}
		printVerbose("arena: step %d, used=%d cap=%d\n", i, arena.Used(), arena.Cap())
	}
	printInfo("arena: after 6 x 100 bytes, used=%d cap=%d\n", arena.Used(), arena.Cap())

	arena.Clear()
	printInfo("arena: cleared, used=%d cap=%d (buffer retained)\n", arena.Used(), arena.Cap())
	return nil
}

func demoSys() error {
	sa := alloc.NewSys()

	b, err := sa.Alloc(1 << 16)
	if err != nil {
		return err
	}
	printInfo("sys: mapped %d bytes\n", len(b))

	b, err = sa.Realloc(b, 1<<17)
	if err != nil {
		return err
	}
	printInfo("sys: remapped to %d bytes\n", len(b))

	sa.Free(b)
	printInfo("sys: unmapped\n")
	return nil
}

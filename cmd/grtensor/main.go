// Package main provides the grtensor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/grtensor/grtensor/sym"
	"github.com/grtensor/grtensor/tensor"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("grtensor %s\n", version)
		return
	}
	if len(os.Args) > 1 && os.Args[1] == "demo" {
		demo()
		return
	}

	fmt.Println("grtensor - Symbolic tensors for general relativity in Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Raise an index on a small diagonal metric")
}

// demoMetric is a diagonal metric collaborator over a single symbol a.
type demoMetric struct {
	cov *sym.Array
	con *sym.Array
}

func (m *demoMetric) CovariantForm() *sym.Array     { return m.cov }
func (m *demoMetric) ContravariantForm() *sym.Array { return m.con }

func demo() {
	a := sym.S("a")
	zero := sym.N(0)
	cov, err := sym.FromNested([][]sym.Expr{
		{a, zero},
		{zero, sym.PowOf(a, sym.N(2))},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
	con, err := sym.FromNested([][]sym.Expr{
		{sym.PowOf(a, sym.N(-1)), zero},
		{zero, sym.PowOf(a, sym.N(-2))},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
	metric := &demoMetric{cov: cov, con: con}

	t, err := tensor.New(cov, "ll")
	if err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
	fmt.Println("g_ab =", t)

	raised, err := t.ChangeConfig(metric, "ul")
	if err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
	fmt.Println("g^a_b =", raised)
}

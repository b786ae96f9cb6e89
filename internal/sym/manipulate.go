package sym

import "fmt"

// TensorProduct returns the outer product of a and b: an array of rank
// a.Rank()+b.Rank() whose element at (i..., j...) is a[i...] * b[j...].
func TensorProduct(a, b *Array) *Array {
	shape := append(a.shape.Clone(), b.shape...)
	bn := len(b.data)
	data := make([]Expr, len(a.data)*bn)
	for i, x := range a.data {
		for j, y := range b.data {
			data[i*bn+j] = MulOf(x, y)
		}
	}
	return &Array{shape: shape, data: data}
}

// Contract sums the array over the paired axes ax1 and ax2, reducing
// rank by two. The surviving axes keep their relative order. Panics if
// the axes are out of range, identical, or of different extents.
func Contract(a *Array, ax1, ax2 int) *Array {
	rank := a.Rank()
	checkAxis(rank, ax1)
	checkAxis(rank, ax2)
	if ax1 == ax2 {
		panic(fmt.Sprintf("sym: cannot contract axis %d with itself", ax1))
	}
	if ax1 > ax2 {
		ax1, ax2 = ax2, ax1
	}
	if a.shape[ax1] != a.shape[ax2] {
		panic(fmt.Sprintf("sym: cannot contract axes of extents %d and %d",
			a.shape[ax1], a.shape[ax2]))
	}

	n := a.shape[ax1]
	strides := a.shape.ComputeStrides()
	pairStride := strides[ax1] + strides[ax2]

	kept := make([]int, 0, rank-2)
	outShape := make(Shape, 0, rank-2)
	for ax := 0; ax < rank; ax++ {
		if ax != ax1 && ax != ax2 {
			kept = append(kept, ax)
			outShape = append(outShape, a.shape[ax])
		}
	}

	data := make([]Expr, outShape.NumElements())
	for out := range data {
		idx := outShape.indexOf(out)
		base := 0
		for j, ax := range kept {
			base += idx[j] * strides[ax]
		}
		terms := make([]Expr, n)
		for k := 0; k < n; k++ {
			terms[k] = a.data[base+k*pairStride]
		}
		data[out] = AddOf(terms...)
	}
	return &Array{shape: outShape, data: data}
}

// MoveAxis moves the axis at position src to position dst, shifting the
// remaining axes to keep their relative order. Panics if either
// position is out of range.
func MoveAxis(a *Array, src, dst int) *Array {
	rank := a.Rank()
	checkAxis(rank, src)
	checkAxis(rank, dst)
	if src == dst {
		return &Array{shape: a.shape.Clone(), data: append([]Expr(nil), a.data...)}
	}

	// order[j] is the source axis that lands at output position j.
	order := make([]int, 0, rank)
	for ax := 0; ax < rank; ax++ {
		if ax != src {
			order = append(order, ax)
		}
	}
	order = append(order[:dst], append([]int{src}, order[dst:]...)...)

	outShape := make(Shape, rank)
	for j, ax := range order {
		outShape[j] = a.shape[ax]
	}

	strides := a.shape.ComputeStrides()
	data := make([]Expr, len(a.data))
	for out := range data {
		idx := outShape.indexOf(out)
		offset := 0
		for j, ax := range order {
			offset += idx[j] * strides[ax]
		}
		data[out] = a.data[offset]
	}
	return &Array{shape: outShape, data: data}
}

func checkAxis(rank, ax int) {
	if ax < 0 || ax >= rank {
		panic(fmt.Sprintf("sym: axis %d out of range for rank %d", ax, rank))
	}
}

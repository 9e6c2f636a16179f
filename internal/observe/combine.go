package observe

// Combine2 derives a cell whose value is f applied to the latest snapshots of
// a and b. The derived value is recomputed whenever either input changes; f
// must be a pure function of its arguments. The returned cancel function
// detaches the derived cell from its inputs.
func Combine2[A, B, R any](a *Cell[A], b *Cell[B], f func(A, B) R) (*Cell[R], func()) {
	out := NewCell(f(a.Get(), b.Get()))
	recompute := func() { out.Set(f(a.Get(), b.Get())) }
	cancelA := a.Subscribe(func(A) { recompute() })
	cancelB := b.Subscribe(func(B) { recompute() })
	return out, func() {
		cancelA()
		cancelB()
	}
}

// Combine3 is Combine2 over three inputs.
func Combine3[A, B, C, R any](a *Cell[A], b *Cell[B], c *Cell[C], f func(A, B, C) R) (*Cell[R], func()) {
	out := NewCell(f(a.Get(), b.Get(), c.Get()))
	recompute := func() { out.Set(f(a.Get(), b.Get(), c.Get())) }
	cancelA := a.Subscribe(func(A) { recompute() })
	cancelB := b.Subscribe(func(B) { recompute() })
	cancelC := c.Subscribe(func(C) { recompute() })
	return out, func() {
		cancelA()
		cancelB()
		cancelC()
	}
}

// Combine4 is Combine2 over four inputs.
func Combine4[A, B, C, D, R any](a *Cell[A], b *Cell[B], c *Cell[C], d *Cell[D], f func(A, B, C, D) R) (*Cell[R], func()) {
	out := NewCell(f(a.Get(), b.Get(), c.Get(), d.Get()))
	recompute := func() { out.Set(f(a.Get(), b.Get(), c.Get(), d.Get())) }
	cancelA := a.Subscribe(func(A) { recompute() })
	cancelB := b.Subscribe(func(B) { recompute() })
	cancelC := c.Subscribe(func(C) { recompute() })
	cancelD := d.Subscribe(func(D) { recompute() })
	return out, func() {
		cancelA()
		cancelB()
		cancelC()
		cancelD()
	}
}

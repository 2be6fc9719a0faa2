package bigint

// GCD returns gcd(x, y). GCD(0, 0) is 0.
func (x Int) GCD(y Int) Int {
	a, b := x, y
	for !b.IsZero() {
		// b ≠ 0, the division cannot fail.
		_, r, _ := a.DivMod(b)
		a, b = b, r
	}
	return a
}

// ModInverse returns x⁻¹ (mod n) and true, or false if gcd(x, n) ≠ 1 or n = 0.
//
// It runs the extended Euclidean algorithm on (n, x mod n). Since Int has no
// sign, the Bézout coefficient of x is kept reduced modulo n at every step:
// t_{i+1} = t_{i-1} - q⋅t_i is computed as t_{i-1} + (n - q⋅t_i mod n) mod n.
func (x Int) ModInverse(n Int) (Int, bool) {
	if n.IsZero() {
		return Int{}, false
	}
	a, _ := x.Mod(n)

	// Invariants: tPrev⋅x ≡ rPrev, t⋅x ≡ r (mod n).
	rPrev, r := n, a
	tPrev, t := Zero(), One()
	for !r.IsZero() {
		q, rem, _ := rPrev.DivMod(r)
		rPrev, r = r, rem

		qt, _ := q.Mul(t).Mod(n)
		next, _ := tPrev.Add(n.Sub(qt)).Mod(n)
		tPrev, t = t, next
	}
	if !rPrev.IsOne() {
		return Int{}, false
	}
	inv, _ := tPrev.Mod(n)
	return inv, true
}

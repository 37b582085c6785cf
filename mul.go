package bignum

// KaratsubaCutoff is the minimum digit count (of the smaller operand)
// at or above which Mul dispatches to Karatsuba instead of schoolbook
// multiplication, per spec.md §4.4.
var KaratsubaCutoff = 80

// mulSchoolbookMag computes |a|*|b| truncated to at most n columns
// (n <= 0 means no truncation: the full a.used+b.used columns are
// kept), writing the result into dst (which must not alias a or b).
// Outer loop over digits of a, inner loop accumulates
// a[i]*b[j] + dst[i+j] + carry into a word, per spec.md §4.4.
func mulSchoolbookMag(dst, a, b *BigInt, n int) error {
	full := a.used + b.used
	if n <= 0 || n > full {
		n = full
	}
	if a.used == 0 || b.used == 0 || n == 0 {
		dst.setZero()
		return nil
	}
	if err := dst.grow(n); err != nil {
		return err
	}
	for i := range dst.digits[:n] {
		dst.digits[i] = 0
	}
	for i := 0; i < a.used && i < n; i++ {
		ai := word(a.digits[i])
		if ai == 0 {
			continue
		}
		var carry word
		maxJ := b.used
		if i+maxJ > n {
			maxJ = n - i
		}
		for j := 0; j < maxJ; j++ {
			col := i + j
			p := ai*word(b.digits[j]) + word(dst.digits[col]) + carry
			dst.digits[col] = Digit(p & uint64(digitMask))
			carry = p >> digitBits
		}
		// Propagate remaining carry into columns beyond b's digits,
		// but never past the n-column cap.
		col := i + maxJ
		for carry != 0 && col < n {
			p := word(dst.digits[col]) + carry
			dst.digits[col] = Digit(p & uint64(digitMask))
			carry = p >> digitBits
			col++
		}
	}
	dst.used = n
	dst.sign = 1
	dst.clamp()
	return nil
}

// karatsubaMag computes |a|*|b| via the Karatsuba split-and-combine
// recursion of spec.md §4.4, recursing through mulMag (which
// re-dispatches by size).
func karatsubaMag(dst, a, b *BigInt) error {
	bDigits := a.used
	if b.used < bDigits {
		bDigits = b.used
	}
	split := bDigits / 2
	if split == 0 {
		return mulSchoolbookMag(dst, a, b, 0)
	}

	x0, x1 := splitMag(a, split)
	y0, y1 := splitMag(b, split)

	z0 := new(BigInt)
	z2 := new(BigInt)
	z1 := new(BigInt)

	if err := mulMag(z0, x0, y0, 0); err != nil {
		return err
	}
	if err := mulMag(z2, x1, y1, 0); err != nil {
		return err
	}

	xs := new(BigInt)
	ys := new(BigInt)
	xs.Add(x1, x0)
	ys.Add(y1, y0)
	if err := mulMag(z1, xs, ys, 0); err != nil {
		return err
	}
	z1.Sub(z1, z2)
	z1.Sub(z1, z0)
	z1.sign = 1

	result := new(BigInt)
	_ = result.shiftLeftDigits(z2, 2*split)
	mid := new(BigInt)
	_ = mid.shiftLeftDigits(z1, split)
	result.Add(result, mid)
	result.Add(result, z0)
	result.sign = 1
	dst.Set(result)
	return nil
}

// splitMag splits |x| at digit boundary k: low = x mod base^k,
// high = x div base^k. Both results are unsigned magnitudes.
func splitMag(x *BigInt, k int) (low, high *BigInt) {
	low = new(BigInt)
	high = new(BigInt)
	if k >= x.used {
		low.Set(x)
		low.sign = 1
		return low, high
	}
	_ = low.grow(k)
	copy(low.digits, x.digits[:k])
	low.used = k
	low.sign = 1
	low.clamp()

	n := x.used - k
	_ = high.grow(n)
	copy(high.digits, x.digits[k:x.used])
	high.used = n
	high.sign = 1
	high.clamp()
	return low, high
}

// mulMag computes dst = |a|*|b|, truncated to n columns (n <= 0 means
// full precision), dispatching between schoolbook and Karatsuba per
// spec.md §4.4's cutoff rule. Correct when dst aliases a or b.
func mulMag(dst, a, b *BigInt, n int) error {
	minUsed := a.used
	if b.used < minUsed {
		minUsed = b.used
	}

	target := dst
	if dst == a || dst == b {
		target = new(BigInt)
	}

	var err error
	if minUsed >= KaratsubaCutoff && n <= 0 {
		err = karatsubaMag(target, a, b)
	} else {
		err = mulSchoolbookMag(target, a, b, n)
	}
	if err != nil {
		return err
	}
	if target != dst {
		dst.swap(target)
	}
	return nil
}

// Mul sets z = a * b and returns z. The sign of the product is the
// XOR of the operand signs; a zero factor yields zero with sign +1.
func (z *BigInt) Mul(a, b *BigInt) *BigInt {
	sameSign := a.sign == b.sign // read before z (which may alias) is written
	_ = mulMag(z, a, b, 0)
	if z.used == 0 {
		z.sign = 1
		return z
	}
	if sameSign {
		z.sign = 1
	} else {
		z.sign = -1
	}
	return z
}

// MulTrunc sets z = (a * b) truncated to at most n low digits (base
// representation), per spec.md §4.4's caller-specified digit cap.
func (z *BigInt) MulTrunc(a, b *BigInt, n int) *BigInt {
	sameSign := a.sign == b.sign // read before z (which may alias) is written
	_ = mulMag(z, a, b, n)
	if z.used == 0 {
		z.sign = 1
		return z
	}
	if sameSign {
		z.sign = 1
	} else {
		z.sign = -1
	}
	return z
}

// Sqr sets z = x*x and returns z. It is a thin wrapper over Mul; the
// core does not implement a dedicated squaring fast path.
func (z *BigInt) Sqr(x *BigInt) *BigInt {
	return z.Mul(x, x)
}

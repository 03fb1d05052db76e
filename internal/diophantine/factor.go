// Package diophantine solves the norm equation t*Adj(t) = xi for t in
// Z[omega], the final step the synthesizer needs before it can complete a
// Z-rotation candidate into a full exact unitary (1403.2975 appendix A).
package diophantine

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"
)

// FactorizationBudget is the sieve limit: every prime up to it is tried by
// trial division before the remaining cofactor is handed to Pollard's rho.
// Past this point candidate norms are astronomically unlikely to have
// further small factors, and rho handles the rest in expected O(n^1/4).
const FactorizationBudget = 10_000_000

var smallPrimes = sieveSmallPrimes(FactorizationBudget)

// sieveSmallPrimes returns every prime up to limit using a bitset-backed
// sieve of Eratosthenes.
func sieveSmallPrimes(limit int) []int64 {
	composite := bitset.New(uint(limit + 1))
	var primes []int64
	for i := 2; i <= limit; i++ {
		if composite.Test(uint(i)) {
			continue
		}
		primes = append(primes, int64(i))
		for j := i * i; j <= limit && j > 0; j += i {
			composite.Set(uint(j))
		}
	}
	return primes
}

// primeFactor is a rational prime p appearing to multiplicity exp in a
// factorization.
type primeFactor struct {
	p   *big.Int
	exp int
}

// factorize returns the prime factorization of |n| (n must be non-zero).
// It tries every prime under FactorizationBudget by trial division, then
// repeatedly applies Pollard's rho to whatever composite cofactor remains.
func factorize(n *big.Int) []primeFactor {
	n = new(big.Int).Abs(n)
	var factors []primeFactor
	rem := new(big.Int).Set(n)

	for _, sp := range smallPrimes {
		if rem.Cmp(big.NewInt(1)) == 0 {
			break
		}
		p := big.NewInt(sp)
		if p.Cmp(rem) > 0 {
			break
		}
		exp := 0
		for new(big.Int).Mod(rem, p).Sign() == 0 {
			rem.Quo(rem, p)
			exp++
		}
		if exp > 0 {
			factors = append(factors, primeFactor{p: p, exp: exp})
		}
	}

	factors = append(factors, factorRemainder(rem)...)
	return factors
}

// factorRemainder fully factors rem (which by construction has no prime
// factor below FactorizationBudget) via recursive Pollard rho splitting.
func factorRemainder(rem *big.Int) []primeFactor {
	one := big.NewInt(1)
	if rem.Cmp(one) == 0 {
		return nil
	}
	if rem.ProbablyPrime(30) {
		return []primeFactor{{p: new(big.Int).Set(rem), exp: 1}}
	}
	d := pollardRho(rem)
	if d == nil {
		// Pollard's rho failed to split this cofactor within its iteration
		// budget; treat it as prime rather than looping forever. Solve will
		// simply fail to certify a witness for it, which is safe.
		return []primeFactor{{p: new(big.Int).Set(rem), exp: 1}}
	}
	left := factorRemainder(d)
	right := factorRemainder(new(big.Int).Quo(rem, d))
	return mergeFactors(left, right)
}

func mergeFactors(a, b []primeFactor) []primeFactor {
	counts := map[string]*primeFactor{}
	var order []string
	add := func(list []primeFactor) {
		for _, f := range list {
			key := f.p.String()
			if existing, ok := counts[key]; ok {
				existing.exp += f.exp
			} else {
				copy := f
				counts[key] = &copy
				order = append(order, key)
			}
		}
	}
	add(a)
	add(b)
	out := make([]primeFactor, 0, len(order))
	for _, key := range order {
		out = append(out, *counts[key])
	}
	return out
}

// pollardRho finds a non-trivial factor of n (assumed composite), or nil if
// the bounded number of restarts all fail to find one.
func pollardRho(n *big.Int) *big.Int {
	if new(big.Int).Mod(n, big.NewInt(2)).Sign() == 0 {
		return big.NewInt(2)
	}
	one := big.NewInt(1)
	for seed := int64(2); seed < 64; seed++ {
		x := big.NewInt(seed)
		y := big.NewInt(seed)
		c := big.NewInt(seed + 1)
		d := big.NewInt(1)
		f := func(v *big.Int) *big.Int {
			r := new(big.Int).Mul(v, v)
			r.Add(r, c)
			return r.Mod(r, n)
		}
		for i := 0; i < 1_000_000 && d.Cmp(one) == 0; i++ {
			x = f(x)
			y = f(f(y))
			diff := new(big.Int).Sub(x, y)
			diff.Abs(diff)
			if diff.Sign() == 0 {
				break
			}
			d = new(big.Int).GCD(nil, nil, diff, n)
		}
		if d.Cmp(one) > 0 && d.Cmp(n) != 0 {
			return d
		}
	}
	return nil
}

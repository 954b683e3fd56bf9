package quantum

// BasisState returns the length-n vector with a unit amplitude at index k.
func BasisState(n, k int) Vector {
	psi := make(Vector, n)
	psi[k] = complex(1, 0)
	return psi
}

// InitialState is the starting state of every run: the middle rung of the
// ladder fully populated.
func InitialState(p Params) Vector {
	return BasisState(p.States, p.MiddleIndex())
}

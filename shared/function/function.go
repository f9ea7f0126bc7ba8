// Package function holds the small combinators used to give data-first
// functions a data-last, pipeable form.
package function

// Dual1 turns a data-first binary function into its curried data-last form,
// so f(self, x) can also be written Dual1(f)(x)(self).
func Dual1[S, X, R any](f func(S, X) R) func(X) func(S) R {
	return func(x X) func(S) R {
		return func(self S) R {
			return f(self, x)
		}
	}
}

// Dual2 is Dual1 for functions taking two arguments after self.
func Dual2[S, X, Y, R any](f func(S, X, Y) R) func(X, Y) func(S) R {
	return func(x X, y Y) func(S) R {
		return func(self S) R {
			return f(self, x, y)
		}
	}
}

func Identity[A any](a A) A {
	return a
}

// Pipe2 feeds a through two data-last stages, as returned by the ...With forms.
func Pipe2[A, B, C any](a A, ab func(A) B, bc func(B) C) C {
	return bc(ab(a))
}

func Pipe3[A, B, C, D any](a A, ab func(A) B, bc func(B) C, cd func(C) D) D {
	return cd(bc(ab(a)))
}

// Flow composes left to right.
func Flow[A, B, C any](ab func(A) B, bc func(B) C) func(A) C {
	return func(a A) C {
		return bc(ab(a))
	}
}

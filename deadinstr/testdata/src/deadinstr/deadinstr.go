package deadinstr

func pure(a, b int) int {
	_ = a * b // want "result is never used"
	return a + b
}

func builtins(s []int) int {
	_ = len(s) // want "result is never used"
	println(len(s))
	return cap(s)
}

func overwritten(a int) int {
	x := a + 1 // want "result is never used"
	x = 5
	return x
}

func effects(m map[int]int, a, b int) int {
	m[a] = b
	_ = a / b
	return m[b]
}

func loop(n int) (s int) {
	for i := 0; i < n; i++ {
		s += i
	}
	return
}

func closure(a int) func() int {
	return func() int {
		_ = a << 2 // want "result is never used"
		return a
	}
}

type pair struct {
	k int
	v interface{}
}

func panicking(a, n int, x, y interface{}, p, q pair) int {
	_ = a << n
	_ = a >> n
	_ = x == y
	_ = p != q
	_ = make(map[int]int, n)
	_ = a << 3 // want "result is never used"
	return a
}

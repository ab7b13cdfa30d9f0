package bench

import (
	"fmt"
	"math"
	"strconv"
)

// NewDefaultSuite returns a suite with every built-in workload registered.
func NewDefaultSuite() *Suite {
	s := NewSuite()
	s.Register(Workload{"loop", "simple loop with arithmetic", runLoop})
	s.Register(Workload{"array", "slice append and sum", runArray})
	s.Register(Workload{"string", "naive string concatenation", runString})
	s.Register(Workload{"nested", "nested loops", runNested})
	s.Register(Workload{"factorial", "recursive factorial", runFactorial})
	s.Register(Workload{"map", "map fill and sum", runMap})
	s.Register(Workload{"conditional", "branch-heavy counting", runConditional})
	s.Register(Workload{"function", "function call overhead", runFunction})
	s.Register(Workload{"class", "struct instantiation and method calls", runClass})
	s.Register(Workload{"fibonacci", "naive recursive fibonacci", runFibonacci})
	return s
}

func runLoop() ([]Metric, error) {
	var result int64
	for i := int64(1); i <= 1_000_000; i++ {
		result += i * i
	}
	return []Metric{
		{"Result", strconv.FormatInt(result, 10)},
	}, nil
}

func runArray() ([]Metric, error) {
	var arr []int
	for i := 0; i < 100_000; i++ {
		arr = append(arr, i)
	}

	var total int64
	for _, v := range arr {
		total += int64(v)
	}
	return []Metric{
		{"Array length", strconv.Itoa(len(arr))},
		{"Sum", strconv.FormatInt(total, 10)},
	}, nil
}

func runString() ([]Metric, error) {
	// Deliberately naive concatenation; allocation churn is the workload.
	result := ""
	for i := 0; i < 10_000; i++ {
		result += strconv.Itoa(i)
	}
	return []Metric{
		{"String length", strconv.Itoa(len(result))},
	}, nil
}

func runNested() ([]Metric, error) {
	var total int64
	for i := int64(1); i <= 500; i++ {
		for j := int64(1); j <= 500; j++ {
			total += i * j
		}
	}
	return []Metric{
		{"Total", strconv.FormatInt(total, 10)},
	}, nil
}

func factorial(n int64) int64 {
	if n <= 1 {
		return 1
	}
	return n * factorial(n-1)
}

func runFactorial() ([]Metric, error) {
	var result int64
	for i := 1; i <= 100; i++ {
		// Modulo keeps recursion depth reasonable.
		result += factorial(int64(i % 20))
	}
	return []Metric{
		{"Result", strconv.FormatInt(result, 10)},
	}, nil
}

func runMap() ([]Metric, error) {
	data := make(map[string]int)
	for i := 0; i < 10_000; i++ {
		data[strconv.Itoa(i)] = i * 2
	}

	var total int64
	for _, v := range data {
		total += int64(v)
	}
	return []Metric{
		{"Map size", strconv.Itoa(len(data))},
		{"Sum", strconv.FormatInt(total, 10)},
	}, nil
}

func runConditional() ([]Metric, error) {
	count := 0
	for i := 0; i < 100_000; i++ {
		switch {
		case i%2 == 0:
			count++
		case i%3 == 0:
			count += 2
		default:
			count += 3
		}
	}
	return []Metric{
		{"Count", strconv.Itoa(count)},
	}, nil
}

func calculate(x, y int64) int64 {
	return x*x + y*y
}

func runFunction() ([]Metric, error) {
	var result int64
	for i := int64(0); i < 50_000; i++ {
		result += calculate(i, i+1)
	}
	return []Metric{
		{"Result", strconv.FormatInt(result, 10)},
	}, nil
}

type point struct {
	x, y float64
}

func (p point) distance() float64 {
	return math.Sqrt(p.x*p.x + p.y*p.y)
}

func runClass() ([]Metric, error) {
	var total float64
	for i := 0; i < 10_000; i++ {
		p := point{float64(i), float64(i + 1)}
		total += p.distance()
	}
	return []Metric{
		{"Total", fmt.Sprintf("%.2f", total)},
	}, nil
}

func fib(n int) int {
	if n <= 1 {
		return n
	}
	return fib(n-1) + fib(n-2)
}

func runFibonacci() ([]Metric, error) {
	result := 0
	for i := 0; i < 25; i++ {
		result += fib(i)
	}
	return []Metric{
		{"Result", strconv.Itoa(result)},
	}, nil
}

package bench

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSuiteRegistersAllWorkloads(t *testing.T) {
	suite := NewDefaultSuite()
	assert.Equal(t, []string{
		"loop", "array", "string", "nested", "factorial",
		"map", "conditional", "function", "class", "fibonacci",
	}, suite.Names())

	for _, w := range suite.Workloads() {
		assert.NotEmpty(t, w.Description, "workload %s has no description", w.Name)
		assert.NotNil(t, w.Run, "workload %s has no run func", w.Name)
	}
}

// metricValue finds the value reported under the given label.
func metricValue(t *testing.T, metrics []Metric, label string) string {
	t.Helper()
	for _, m := range metrics {
		if m.Label == label {
			return m.Value
		}
	}
	t.Fatalf("metric %q not reported", label)
	return ""
}

func TestLoopWorkload(t *testing.T) {
	metrics, err := runLoop()
	require.NoError(t, err)
	assert.Equal(t, "333333833333500000", metricValue(t, metrics, "Result"))
}

func TestArrayWorkload(t *testing.T) {
	metrics, err := runArray()
	require.NoError(t, err)
	assert.Equal(t, "100000", metricValue(t, metrics, "Array length"))
	assert.Equal(t, "4999950000", metricValue(t, metrics, "Sum"))
}

func TestStringWorkload(t *testing.T) {
	metrics, err := runString()
	require.NoError(t, err)
	assert.Equal(t, "38890", metricValue(t, metrics, "String length"))
}

func TestNestedWorkload(t *testing.T) {
	metrics, err := runNested()
	require.NoError(t, err)
	assert.Equal(t, "15687562500", metricValue(t, metrics, "Total"))
}

func TestFactorialWorkload(t *testing.T) {
	assert.Equal(t, int64(1), factorial(0))
	assert.Equal(t, int64(1), factorial(1))
	assert.Equal(t, int64(120), factorial(5))

	metrics, err := runFactorial()
	require.NoError(t, err)
	assert.Equal(t, "642127429675901570", metricValue(t, metrics, "Result"))
}

func TestMapWorkload(t *testing.T) {
	metrics, err := runMap()
	require.NoError(t, err)
	assert.Equal(t, "10000", metricValue(t, metrics, "Map size"))
	assert.Equal(t, "99990000", metricValue(t, metrics, "Sum"))
}

func TestConditionalWorkload(t *testing.T) {
	metrics, err := runConditional()
	require.NoError(t, err)
	assert.Equal(t, "183333", metricValue(t, metrics, "Count"))
}

func TestFunctionWorkload(t *testing.T) {
	assert.Equal(t, int64(13), calculate(2, 3))

	metrics, err := runFunction()
	require.NoError(t, err)
	assert.Equal(t, "83333333350000", metricValue(t, metrics, "Result"))
}

func TestClassWorkload(t *testing.T) {
	p := point{3, 4}
	assert.InDelta(t, 5.0, p.distance(), 1e-12)

	metrics, err := runClass()
	require.NoError(t, err)

	total, parseErr := strconv.ParseFloat(metricValue(t, metrics, "Total"), 64)
	require.NoError(t, parseErr)
	assert.InDelta(t, 70710680.03, total, 0.1)
}

func TestFibonacciWorkload(t *testing.T) {
	assert.Equal(t, 0, fib(0))
	assert.Equal(t, 1, fib(1))
	assert.Equal(t, 55, fib(10))

	metrics, err := runFibonacci()
	require.NoError(t, err)
	assert.Equal(t, "121392", metricValue(t, metrics, "Result"))
}

func TestWorkloadsAreDeterministic(t *testing.T) {
	suite := NewDefaultSuite()
	for _, name := range []string{"loop", "fibonacci", "conditional"} {
		first := suite.Run(name, 1)
		second := suite.Run(name, 1)
		require.NoError(t, first.Err)
		assert.Equal(t, first.Metrics, second.Metrics, "workload %s not deterministic", name)
	}
}

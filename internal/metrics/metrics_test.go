package metrics

import (
	"regexp"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var snakeCase = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// TestMetricsRegistration gathers every metric and checks naming and help text
func TestMetricsRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, zap.NewNop())

	// Vectors only show up once a label set exists
	m.RecordHTTPRequest("GET", "/x", 200, 0)
	m.RecordDBQuery("select", "product_configs", 0, nil)
	m.RecordDBQuery("select", "product_configs", 0, errTest)
	m.RecordExternalAPICall("/v1/products", "GET", 500, 0, nil)
	m.RecordCacheLookup("resolved", true)
	m.RecordResolution("cube", SourceComputed, 0)
	m.RecordPriceRefresh("success")

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}
	if len(families) < 20 {
		t.Errorf("Expected at least 20 metric families, got %d", len(families))
	}

	for _, family := range families {
		name := family.GetName()
		if !strings.HasPrefix(name, namespace+"_") {
			t.Errorf("Metric %s is missing the %s namespace", name, namespace)
		}
		if !snakeCase.MatchString(name) {
			t.Errorf("Metric %s is not snake_case", name)
		}
		if strings.TrimSpace(family.GetHelp()) == "" {
			t.Errorf("Metric %s has no help text", name)
		}
	}
}

type testError struct{}

func (testError) Error() string { return "test error" }

var errTest = testError{}

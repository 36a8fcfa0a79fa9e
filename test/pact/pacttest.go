//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "delish-express-api"
	ConsumerName = "storefront-web"

	StateCatalogSeeded = "the restaurant catalog is seeded"
	StateCartHasRoll   = "the cart holds one spicy tuna roll"
	StateCartEmpty     = "the cart is empty"
)

const (
	SushiPalaceID       int64 = 2
	MissingRestaurantID int64 = 404

	SpicyTunaRollID    = "roll1"
	SpicyTunaRollName  = "Spicy Tuna Roll"
	SpicyTunaRollPrice = 12.99
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the storefront consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleCheckoutForm is a delivery form that passes validation.
func ExampleCheckoutForm() map[string]any {
	return map[string]any{
		"name":          "Alex Doe",
		"address":       "123 Main St",
		"city":          "Springfield",
		"postalCode":    "12345",
		"paymentMethod": "creditCard",
	}
}

// ExampleInvalidCheckoutForm fails on name and postal code.
func ExampleInvalidCheckoutForm() map[string]any {
	form := ExampleCheckoutForm()
	form["name"] = "A"
	form["postalCode"] = "12"
	return form
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}

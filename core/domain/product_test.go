// ABOUTME: Tests for product validation and normalization

package domain

import "testing"

func TestProduct_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    bool
	}{
		{
			name:    "valid",
			product: Product{Name: "Laptop", Price: 49990},
			want:    true,
		},
		{
			name:    "missing name",
			product: Product{Price: 49990},
			want:    false,
		},
		{
			name:    "zero price",
			product: Product{Name: "Laptop"},
			want:    false,
		},
		{
			name:    "negative price",
			product: Product{Name: "Laptop", Price: -10},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.product.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	products := []Product{
		{Name: "A", Price: 100},
		{Name: "", Price: 200},
		{Name: "B", Price: 0},
		{Name: "C", Price: 300},
	}

	got := Normalize(products)

	if len(got) != 2 {
		t.Fatalf("got %d products, want 2", len(got))
	}
	if got[0].Name != "A" || got[1].Name != "C" {
		t.Errorf("order not preserved: %s, %s", got[0].Name, got[1].Name)
	}
}

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize(nil); len(got) != 0 {
		t.Errorf("got %d products, want 0", len(got))
	}
}

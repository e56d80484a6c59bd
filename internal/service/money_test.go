package service_test

import (
	"testing"

	"github.com/VorteXproCR/Expense-Tracker/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestToPaisa(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		want   int64
	}{
		{name: "whole rupees", amount: 5, want: 500},
		{name: "two decimal places", amount: 12.50, want: 1250},
		{name: "float noise below a paisa", amount: 0.29, want: 29},
		{name: "repeated addition artifact", amount: 0.1 + 0.2, want: 30},
		{name: "largest two decimal value", amount: 99.99, want: 9999},
		{name: "half paisa rounds away from zero", amount: 0.005, want: 1},
		{name: "zero", amount: 0, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, service.ToPaisa(tc.amount))
		})
	}
}

func TestToRupees(t *testing.T) {
	assert.Equal(t, 12.5, service.ToRupees(1250))
	assert.Equal(t, 0.29, service.ToRupees(29))
	assert.Equal(t, 0.0, service.ToRupees(0))
}

func TestMoneyRoundTrip(t *testing.T) {
	// Every two-decimal amount must survive the paisa conversion exactly.
	for paisa := int64(0); paisa <= 10000; paisa++ {
		assert.Equal(t, paisa, service.ToPaisa(service.ToRupees(paisa)))
	}
}

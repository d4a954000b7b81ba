package expr

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestSerialize(t *testing.T) {
	normal := Call("normal", Number(0), Number(1))
	tests := []struct {
		name          string
		expr          Expression
		displayScopes bool
		want          string
	}{
		{name: "token", expr: Token("x"), want: "x"},
		{name: "token with scopes", expr: Token("mu"), displayScopes: true, want: "mu"},
		{name: "integral number", expr: Number(5), want: "5"},
		{name: "fractional number", expr: Number(1.5), want: "1.5"},
		{name: "boolean", expr: Boolean(true), want: "true"},
		{name: "flat compound", expr: Call("add", Token("1"), Token("2")), want: "(add 1 2)"},
		{name: "nested compound", expr: Call("normal", Call("mul", Token("a"), Number(2)), Number(0.5)), want: "(normal (mul a 2) 0.5)"},
		{name: "empty compound", expr: Compound{}, want: "()"},
		{name: "single element", expr: Call("flip"), want: "(flip)"},
		{
			name: "scope hidden",
			expr: ScopeInclude(Token("0"), Number(1), normal),
			want: "(normal 0 1)",
		},
		{
			name:          "scope shown",
			expr:          ScopeInclude(Token("0"), Number(1), normal),
			displayScopes: true,
			want:          "(scope_include 0 1 (normal 0 1))",
		},
		{
			name:          "nested scope hidden even when shown",
			expr:          Call("add", ScopeInclude(Token("p"), Number(0), Token("x")), Number(1)),
			displayScopes: true,
			want:          "(add x 1)",
		},
		{
			name:          "nested scope inside shown scope",
			expr:          ScopeInclude(Token("a"), Number(0), ScopeInclude(Token("b"), Number(1), Token("x"))),
			displayScopes: true,
			want:          "(scope_include a 0 x)",
		},
		{
			name: "scope around scope",
			expr: ScopeInclude(Token("a"), Number(0), ScopeInclude(Token("b"), Number(1), Token("x"))),
			want: "x",
		},
		{
			name: "literal head is not a scope tag",
			expr: Compound{Literal{Type: "symbol", Value: ScopeIncludeTag}, Token("s"), Token("b"), Token("x")},
			want: "(scope_include s b x)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Serialize(tt.expr, tt.displayScopes)
			if err != nil {
				t.Fatalf("Serialize: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Serialize mismatch:\nwant %q\ngot  %q", tt.want, got)
			}
		})
	}
}

func TestSerializeScopeDropsScopeParts(t *testing.T) {
	inner := Call("uniform_continuous", Number(-10), Number(10))
	want, err := Serialize(inner, false)
	if err != nil {
		t.Fatal(err)
	}
	for _, scope := range []Expression{Token("param"), Number(3), Call("quote", Token("p"))} {
		got, err := Serialize(ScopeInclude(scope, Token("i"), inner), false)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("scope %v: want %q, got %q", scope, want, got)
		}
	}
}

func TestSerializeMalformed(t *testing.T) {
	tests := []struct {
		name string
		expr Expression
		kind MalformedKind
		path []int
	}{
		{name: "nil root", expr: nil, kind: MalformedNilNode},
		{name: "holder without value", expr: Call("f", Literal{Type: "number"}), kind: MalformedNoValue, path: []int{1}},
		{name: "nested nil", expr: Call("f", Token("a"), Call("g", nil)), kind: MalformedNilNode, path: []int{2, 1}},
		{name: "short scope", expr: Compound{Token(ScopeIncludeTag), Token("s")}, kind: MalformedScopeArity},
		{name: "bad scope body", expr: ScopeInclude(Token("s"), Token("b"), Literal{}), kind: MalformedNoValue, path: []int{3}},
		{name: "bad value type", expr: Literal{Value: struct{}{}}, kind: MalformedValueType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Serialize(tt.expr, false)
			if err == nil {
				t.Fatalf("expected error, got %q", got)
			}
			if got != "" {
				t.Fatalf("partial output %q returned with error", got)
			}
			if !errors.Is(err, ErrMalformedExpression) {
				t.Fatalf("error %v does not wrap ErrMalformedExpression", err)
			}
			var me *MalformedError
			if !errors.As(err, &me) {
				t.Fatalf("error %T is not *MalformedError", err)
			}
			if me.Kind != tt.kind {
				t.Fatalf("kind: want %d, got %d", tt.kind, me.Kind)
			}
			if !slices.Equal(me.Path, tt.path) {
				t.Fatalf("path: want %v, got %v", tt.path, me.Path)
			}
		})
	}
}

func TestMalformedErrorMessage(t *testing.T) {
	err := &MalformedError{Kind: MalformedNoValue, Path: []int{2, 1}}
	want := "malformed expression at [2 1]: literal holder has no value"
	if err.Error() != want {
		t.Fatalf("want %q, got %q", want, err.Error())
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{5, "5"},
		{-3, "-3"},
		{1.5, "1.5"},
		{0.1, "0.1"},
		{1.0 / 3.0, "0.3333333333333333"},
		{123456789, "123456789"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e22, "1.5e+22"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{-2.5e-8, "-2.5e-8"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v): want %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestFormatValueFloat32(t *testing.T) {
	tests := []struct {
		in   float32
		want string
	}{
		{0.1, "0.1"},
		{2.3, "2.3"},
		{16777216, "16777216"},
		{1e-7, "1e-7"},
		{1e21, "1e+21"},
	}
	for _, tt := range tests {
		got, err := FormatValue(tt.in)
		if err != nil {
			t.Fatalf("FormatValue(float32 %v): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("FormatValue(float32 %v): want %q, got %q", tt.in, tt.want, got)
		}
	}
	got, err := Serialize(Call("flip", Literal{Type: "number", Value: float32(0.1)}), false)
	if err != nil || got != "(flip 0.1)" {
		t.Fatalf("Serialize with float32 literal: %q, %v", got, err)
	}
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.5, "1.50"},
		{0, "0.00"},
		{math.Copysign(0, -1), "0.00"},
		{-0.001, "-0.00"},
		{2, "2.00"},
		{3.14159, "3.14"},
		{-7.456, "-7.46"},
		{1e21, "1e+21"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
	}
	for _, tt := range tests {
		if got := FormatFixed(tt.in, 2); got != tt.want {
			t.Errorf("FormatFixed(%v, 2): want %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestFormatValueList(t *testing.T) {
	got, err := FormatValue([]any{1.0, 2.5, true, nil, "a", []any{int64(3), 4.0}})
	if err != nil {
		t.Fatal(err)
	}
	if want := "1,2.5,true,,a,3,4"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestSerializeDoesNotMutate(t *testing.T) {
	e := Call("add", ScopeInclude(Token("s"), Number(0), Token("x")), Number(2))
	snapshot := slices.Clone(e)
	first, err := Serialize(e, false)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Serialize(e, false)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("non-deterministic output: %q vs %q", first, second)
	}
	if len(e) != len(snapshot) {
		t.Fatalf("compound length changed")
	}
}

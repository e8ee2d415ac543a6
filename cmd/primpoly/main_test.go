package main

import (
	"bytes"
	"testing"

	"github.com/ppopth/galois"
	"github.com/ppopth/galois/search"
)

func TestPrintPairs(t *testing.T) {
	r, err := galois.New(&galois.Config{Prime: 3, Modulus: []int64{1, 0, 2}})
	if err != nil {
		t.Fatal(err)
	}
	s, err := search.New(r)
	if err != nil {
		t.Fatal(err)
	}
	pairs, err := s.PrimitivePolynomials(2)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	printPairs(&buf, pairs)

	want := "primitive root:   2    minimal polynomial:   1 1\n" +
		"primitive root: 1 0    minimal polynomial: 1 0 2\n" +
		"primitive root: 2 0    minimal polynomial: 1 0 2\n"
	if got := buf.String(); got != want {
		t.Errorf("printPairs output:\n%s\nwant:\n%s", got, want)
	}
}

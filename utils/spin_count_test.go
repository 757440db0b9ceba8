package utils

import (
	"testing"
)

func TestSpinCount_String(t *testing.T) {
	if s := SpinCount(0).String(); s != "0" {
		t.Fatal("zero count wrong:", s)
	}
	if s := SpinCount(999).String(); s != "999" {
		t.Fatal("raw count wrong:", s)
	}
	if s := SpinCount(25000).String(); s == "25000" {
		t.Fatal("large count not humanized:", s)
	}
}

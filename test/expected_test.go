package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/simon/test"
)

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)

	var err error
	test.ExpectSuccess(t, err)
}

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 10)
	test.ExpectEquality(t, "foo", "foo")
	test.ExpectInequality(t, uint8(1), uint8(2))
}

func TestCompareWriter(t *testing.T) {
	var w test.CompareWriter
	w.Write([]byte("foo"))
	test.ExpectSuccess(t, w.Compare("foo"))
	w.Write([]byte("bar"))
	test.ExpectEquality(t, w.String(), "foobar")
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}

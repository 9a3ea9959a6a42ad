package tobe

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/lifo-cli/lifo/stack"
	. "github.com/smartystreets/goconvey/convey"
)

const classic = "to be or not to - be - - that - - - is"

func TestRun(t *testing.T) {
	Convey("Given the classic input", t, func() {
		result, err := Run(strings.NewReader(classic), nil)
		So(err, ShouldBeNil)

		Convey("Items are popped in LIFO order", func() {
			So(result.Popped, ShouldResemble, []string{"to", "be", "not", "that", "or", "be"})
		})

		Convey("Two items are left", func() {
			So(result.Left, ShouldEqual, 2)
			So(result.Remaining, ShouldResemble, []string{"to", "is"})
			So(result.Underflows, ShouldEqual, 0)
		})

		Convey("It renders like the reference client", func() {
			So(result.String(), ShouldEqual, "to be not that or be (2 left on stack)")
		})

		Convey("The buffer grew and shrank back", func() {
			So(result.Stats, ShouldResemble, stack.Stats{Len: 2, Capacity: 2, Grows: 2, Shrinks: 2})
		})
	})

	Convey("Given the short walkthrough", t, func() {
		result, err := Run(strings.NewReader("to be or not to - be - -"), &Options{})
		So(err, ShouldBeNil)
		So(result.Popped, ShouldResemble, []string{"to", "be", "not"})
		So(result.Left, ShouldEqual, 3)
		So(result.Remaining, ShouldResemble, []string{"to", "be", "or"})
	})

	Convey("Given empty input", t, func() {
		result, err := Run(strings.NewReader("  \n\t "), nil)
		So(err, ShouldBeNil)
		So(result.Popped, ShouldBeEmpty)
		So(result.Left, ShouldEqual, 0)
		So(result.String(), ShouldEqual, "(0 left on stack)")
	})
}

func TestRunUnderflow(t *testing.T) {
	Convey("Given a pop token on an empty stack", t, func() {
		input := "- a - - b"

		Convey("It is skipped by default", func() {
			result, err := Run(strings.NewReader(input), nil)
			So(err, ShouldBeNil)
			So(result.Underflows, ShouldEqual, 2)
			So(result.Popped, ShouldResemble, []string{"a"})
			So(result.Remaining, ShouldResemble, []string{"b"})
		})

		Convey("It fails in strict mode", func() {
			result, err := Run(strings.NewReader(input), &Options{Strict: true})
			So(result, ShouldBeNil)
			So(errors.Is(err, stack.ErrUnderflow), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "token 1")
		})
	})
}

func TestRunOptions(t *testing.T) {
	Convey("Given custom options", t, func() {
		Convey("A custom pop token is honoured", func() {
			result, err := Run(strings.NewReader("a b pop - pop"), &Options{PopToken: "pop"})
			So(err, ShouldBeNil)
			So(result.Popped, ShouldResemble, []string{"b", "-"})
			So(result.Remaining, ShouldResemble, []string{"a"})
		})

		Convey("Popped items stream to Out", func() {
			var out bytes.Buffer
			result, err := Run(strings.NewReader(classic), &Options{Out: &out})
			So(err, ShouldBeNil)
			So(out.String(), ShouldEqual, "to be not that or be ")
			So(result.Left, ShouldEqual, 2)
		})
	})

	Convey("Given a failing reader", t, func() {
		result, err := Run(iotest.ErrReader(errors.New("boom")), nil)
		So(result, ShouldBeNil)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "boom")
	})
}

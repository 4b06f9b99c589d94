// internal/cliutil/cliutil_test.go
package cliutil

import (
	"flag"
	"io"
	"reflect"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.String("range", "", "")
	fs.Bool("strict", false, "")
	return fs
}

func TestSplitFlagsAfterPositional(t *testing.T) {
	fs := newFS()
	flags, pos := SplitFlagsAndPositionals(fs, []string{"P01308", "--range", "1-21", "--strict"})
	if !reflect.DeepEqual(flags, []string{"--range", "1-21", "--strict"}) {
		t.Fatalf("flags = %v", flags)
	}
	if !reflect.DeepEqual(pos, []string{"P01308"}) {
		t.Fatalf("pos = %v", pos)
	}
}

func TestSplitEqualsForm(t *testing.T) {
	fs := newFS()
	flags, pos := SplitFlagsAndPositionals(fs, []string{"--range=1-21", "Insulin"})
	if !reflect.DeepEqual(flags, []string{"--range=1-21"}) {
		t.Fatalf("flags = %v", flags)
	}
	if !reflect.DeepEqual(pos, []string{"Insulin"}) {
		t.Fatalf("pos = %v", pos)
	}
}

func TestSplitBoolFlagTakesNoValue(t *testing.T) {
	fs := newFS()
	flags, pos := SplitFlagsAndPositionals(fs, []string{"--strict", "Insulin"})
	if !reflect.DeepEqual(flags, []string{"--strict"}) {
		t.Fatalf("flags = %v", flags)
	}
	if !reflect.DeepEqual(pos, []string{"Insulin"}) {
		t.Fatalf("pos = %v", pos)
	}
}

func TestSplitDoubleDashTerminator(t *testing.T) {
	fs := newFS()
	flags, pos := SplitFlagsAndPositionals(fs, []string{"--strict", "--", "--range"})
	if !reflect.DeepEqual(flags, []string{"--strict"}) {
		t.Fatalf("flags = %v", flags)
	}
	if !reflect.DeepEqual(pos, []string{"--range"}) {
		t.Fatalf("pos = %v", pos)
	}
}

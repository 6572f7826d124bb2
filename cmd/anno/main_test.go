package main

import (
	"reflect"
	"strings"
	"testing"
)

func TestLessOpenFilterForcesColor(t *testing.T) {
	if !strings.HasPrefix(lessOpenFilter, "||-") {
		t.Fatalf("filter must use the exit-status-aware pipe form: %q", lessOpenFilter)
	}
	if !strings.Contains(lessOpenFilter, "--color on") {
		t.Fatalf("filter runs on a pipe, not a terminal, and must force markup: %q", lessOpenFilter)
	}
	if !strings.Contains(lessOpenFilter, "%s") {
		t.Fatalf("filter needs the filename placeholder: %q", lessOpenFilter)
	}
}

func TestPagerArgv(t *testing.T) {
	got := pagerArgv([]string{"a.txt", "b.txt"})
	want := []string{"less", "-R", "a.txt", "b.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("argv = %v, want %v", got, want)
	}
	if got := pagerArgv(nil); !reflect.DeepEqual(got, []string{"less", "-R"}) {
		t.Fatalf("bare argv = %v", got)
	}
}

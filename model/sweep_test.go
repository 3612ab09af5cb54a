package model

import (
	"context"
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestAdvanceAll(t *testing.T) {
	vertical := rows("010", "010", "010")
	horizontal := rows("000", "111", "000")
	border := rows("111", "000", "000")

	bounded := NewBoundedEngine(NewGridPool())
	unbounded := NewUnboundedEngine()
	edge := NewBoundedEngine(nil)
	mustSeed(t, bounded, vertical)
	mustSeed(t, unbounded, vertical)
	mustSeed(t, edge, border)

	got, err := AdvanceAll(context.Background(), []Engine{bounded, unbounded, edge}, 3)
	if err != nil {
		t.Fatalf("AdvanceAll() error = %+v", err)
	}

	want := [][][]int{horizontal, horizontal, rows("000", "000", "000")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AdvanceAll() = %v, want %v", got, want)
	}
}

func TestAdvanceAllReportsUnseededEngine(t *testing.T) {
	seeded := NewUnboundedEngine()
	mustSeed(t, seeded, rows("11", "11"))

	_, err := AdvanceAll(context.Background(), []Engine{seeded, NewBoundedEngine(nil)}, 2)
	if !errors.Is(err, ErrNotSeeded) {
		t.Fatalf("AdvanceAll() error = %v, want %v", err, ErrNotSeeded)
	}
}

func TestAdvanceAllStopsOnCancel(t *testing.T) {
	e := NewUnboundedEngine()
	mustSeed(t, e, rows("010", "010", "010"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := AdvanceAll(ctx, []Engine{e}, 5); !errors.Is(err, context.Canceled) {
		t.Fatalf("AdvanceAll() error = %v, want %v", err, context.Canceled)
	}
}

package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rushteam/basketkit/core"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	txns := []core.Transaction{
		{ID: "t1", Items: []string{"bread", "milk"}},
		{ID: "t2", Items: []string{"eggs"}},
	}
	if err := s.PutTransactions(ctx, "store-001:2026-08", txns); err != nil {
		t.Fatalf("PutTransactions() error = %v", err)
	}

	got, err := s.GetTransactions(ctx, "store-001:2026-08")
	if err != nil {
		t.Fatalf("GetTransactions() error = %v", err)
	}
	if !reflect.DeepEqual(got, txns) {
		t.Errorf("GetTransactions() = %v, want %v", got, txns)
	}
}

func TestMemoryStore_NotFound(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	_, err := s.GetTransactions(context.Background(), "missing")
	if !errors.Is(err, core.ErrStoreNotFound) {
		t.Errorf("err = %v, want ErrStoreNotFound", err)
	}
	if !core.IsStoreNotFound(err) {
		t.Errorf("IsStoreNotFound(%v) = false, want true", err)
	}
}

func TestMemoryStore_DefensiveCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	txns := []core.Transaction{{ID: "t1", Items: []string{"bread"}}}
	if err := s.PutTransactions(ctx, "seg", txns); err != nil {
		t.Fatalf("PutTransactions() error = %v", err)
	}

	// 写入后修改原切片，不影响存储内容
	txns[0].Items[0] = "mutated"
	got, _ := s.GetTransactions(ctx, "seg")
	if got[0].Items[0] != "bread" {
		t.Errorf("写入后原切片的修改泄漏进了存储: %v", got)
	}

	// 修改取出的批次，不影响后续读取
	got[0].Items[0] = "mutated"
	again, _ := s.GetTransactions(ctx, "seg")
	if again[0].Items[0] != "bread" {
		t.Errorf("取出批次的修改泄漏进了存储: %v", again)
	}
}

func TestMemoryStore_Segments(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	for _, seg := range []string{"c", "a", "b"} {
		if err := s.PutTransactions(ctx, seg, nil); err != nil {
			t.Fatalf("PutTransactions(%s) error = %v", seg, err)
		}
	}

	got, err := s.Segments(ctx)
	if err != nil {
		t.Fatalf("Segments() error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Segments() = %v, want 排序后的 [a b c]", got)
	}
}

package model

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func sampleList() []ChecklistItem {
	return []ChecklistItem{
		{Text: "milk"},
		{Text: "bread", Checked: true, CompletedAt: "01-01-25 kl 10:00"},
		{Text: "eggs"},
	}
}

func TestAddItem(t *testing.T) {
	t.Run("PrependsNewItem", func(t *testing.T) {
		list := AddItem([]ChecklistItem{{Text: "old"}}, "buy milk")
		if len(list) != 2 {
			t.Fatalf("expected 2 items, got %d", len(list))
		}
		if list[0].Text != "buy milk" || list[0].Checked {
			t.Errorf("expected new unchecked item first, got %+v", list[0])
		}
		if list[1].Text != "old" {
			t.Errorf("expected existing item second, got %+v", list[1])
		}
	})

	t.Run("EmptyListGetsFirstItem", func(t *testing.T) {
		list := AddItem([]ChecklistItem{}, "buy milk")
		want := []ChecklistItem{{Text: "buy milk", Checked: false}}
		if !reflect.DeepEqual(list, want) {
			t.Errorf("got %+v, want %+v", list, want)
		}
	})

	t.Run("BlankTextIsNoOp", func(t *testing.T) {
		for _, text := range []string{"", "   ", "\t\n"} {
			original := sampleList()
			list := AddItem(original, text)
			if len(list) != len(original) {
				t.Errorf("AddItem(%q) changed length from %d to %d", text, len(original), len(list))
			}
		}
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		original := sampleList()
		AddItem(original, "new")
		if original[0].Text != "milk" {
			t.Errorf("input list was mutated: %+v", original)
		}
	})
}

func TestRemoveItem(t *testing.T) {
	t.Run("RemovesAtIndex", func(t *testing.T) {
		list, err := RemoveItem(sampleList(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("expected 2 items, got %d", len(list))
		}
		if list[0].Text != "milk" || list[1].Text != "eggs" {
			t.Errorf("unexpected remainder: %+v", list)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		for _, i := range []int{-1, 3, 100} {
			if _, err := RemoveItem(sampleList(), i); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("RemoveItem(_, %d) = %v, want ErrIndexOutOfRange", i, err)
			}
		}
	})
}

func TestToggleItem(t *testing.T) {
	now := time.Date(2025, 3, 7, 14, 30, 0, 0, time.UTC)

	t.Run("CheckStampsCompletedAt", func(t *testing.T) {
		for i := range sampleList() {
			list, err := ToggleItem(sampleList(), i, true, now)
			if err != nil {
				t.Fatalf("unexpected error at %d: %v", i, err)
			}
			if !list[i].Checked {
				t.Errorf("item %d not checked", i)
			}
			if list[i].CompletedAt != "07-03-25 kl 14:30" {
				t.Errorf("item %d completed_at = %q, want %q", i, list[i].CompletedAt, "07-03-25 kl 14:30")
			}
		}
	})

	t.Run("UncheckClearsCompletedAt", func(t *testing.T) {
		list, err := ToggleItem(sampleList(), 1, false, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list[1].Checked {
			t.Error("item still checked")
		}
		if list[1].CompletedAt != "" {
			t.Errorf("completed_at not cleared: %q", list[1].CompletedAt)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		if _, err := ToggleItem(sampleList(), 5, true, now); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("got %v, want ErrIndexOutOfRange", err)
		}
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		original := sampleList()
		if _, err := ToggleItem(original, 0, true, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if original[0].Checked {
			t.Error("input list was mutated")
		}
	})
}

func TestClearChecked(t *testing.T) {
	list := ClearChecked(sampleList())
	if len(list) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list))
	}
	for _, item := range list {
		if item.Checked {
			t.Errorf("checked item survived: %+v", item)
		}
	}
}

func TestClearAll(t *testing.T) {
	list := ClearAll(sampleList())
	if len(list) != 0 {
		t.Errorf("expected empty list, got %+v", list)
	}
}

func TestRestart(t *testing.T) {
	list := Restart(sampleList())
	if len(list) != 3 {
		t.Fatalf("expected 3 items, got %d", len(list))
	}
	wantTexts := []string{"milk", "bread", "eggs"}
	for i, item := range list {
		if item.Text != wantTexts[i] {
			t.Errorf("item %d text = %q, want %q", i, item.Text, wantTexts[i])
		}
		if item.Checked || item.CompletedAt != "" {
			t.Errorf("item %d not reset: %+v", i, item)
		}
	}
}

func TestRestartThenClearCheckedIsIdentity(t *testing.T) {
	restarted := Restart(sampleList())
	cleared := ClearChecked(restarted)
	if !reflect.DeepEqual(cleared, restarted) {
		t.Errorf("ClearChecked after Restart changed the list: %+v vs %+v", cleared, restarted)
	}
}

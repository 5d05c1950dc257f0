package clinic

import (
	"reflect"
	"testing"
)

func TestSlotCatalogGeneration(t *testing.T) {
	catalog := NewSlotCatalog(9, 18)

	want := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00"}
	if !reflect.DeepEqual(catalog.Slots(), want) {
		t.Fatalf("slots = %v, want %v", catalog.Slots(), want)
	}
	if catalog.Len() != 10 {
		t.Fatalf("len = %d, want 10", catalog.Len())
	}
}

func TestSlotCatalogZeroPadding(t *testing.T) {
	catalog := NewSlotCatalog(7, 9)

	want := []string{"07:00", "08:00", "09:00"}
	if !reflect.DeepEqual(catalog.Slots(), want) {
		t.Fatalf("slots = %v, want %v", catalog.Slots(), want)
	}
}

func TestSlotCatalogSingleHour(t *testing.T) {
	catalog := NewSlotCatalog(12, 12)

	if catalog.Len() != 1 || catalog.Slots()[0] != "12:00" {
		t.Fatalf("slots = %v, want [12:00]", catalog.Slots())
	}
}

func TestSlotCatalogContains(t *testing.T) {
	catalog := NewSlotCatalog(9, 18)

	for _, slot := range catalog.Slots() {
		if !catalog.Contains(slot) {
			t.Errorf("Contains(%q) = false, want true", slot)
		}
	}

	for _, label := range []string{"08:00", "19:00", "22:00", "09:30", "9:00", ""} {
		if catalog.Contains(label) {
			t.Errorf("Contains(%q) = true, want false", label)
		}
	}
}

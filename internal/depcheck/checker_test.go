package depcheck

import (
	"reflect"
	"testing"

	"github.com/tacogips/dzmod/internal/loadorder"
	"github.com/tacogips/dzmod/internal/mod"
)

func TestCheckAgainstInventory(t *testing.T) {
	inv := &mod.Inventory{Mods: []mod.Mod{
		{Name: "@CF"},
		{Name: "@ModC", Dependencies: []string{"CF", "DabsFramework"}},
		{Name: "@Plain"},
	}}

	reports := Check(inv, Options{})

	c := reports["@ModC"]
	if !reflect.DeepEqual(c.Declared, []string{"CF", "DabsFramework"}) {
		t.Errorf("Declared = %v, want [CF DabsFramework]", c.Declared)
	}
	if !reflect.DeepEqual(c.Missing, []string{"DabsFramework"}) {
		t.Errorf("Missing = %v, want [DabsFramework]", c.Missing)
	}

	plain := reports["@Plain"]
	if len(plain.Declared) != 0 || len(plain.Missing) != 0 {
		t.Errorf("Expected empty report for @Plain, got %+v", plain)
	}
}

func TestCheckCaseInsensitivePrefixNormalized(t *testing.T) {
	inv := &mod.Inventory{Mods: []mod.Mod{
		{Name: "@DayZ-Expansion-Core"},
		{Name: "@Market", Dependencies: []string{"@dayz-expansion-core", "DAYZ-EXPANSION-CORE"}},
	}}

	reports := Check(inv, Options{})

	if len(reports["@Market"].Missing) != 0 {
		t.Errorf("Missing = %v, want none: matching is case-insensitive and prefix-normalized",
			reports["@Market"].Missing)
	}
}

func TestCheckAgainstLoadOrder(t *testing.T) {
	// @Dabs is installed but not in the load order: missing in load-order
	// mode, present in inventory mode.
	inv := &mod.Inventory{Mods: []mod.Mod{
		{Name: "@CF"},
		{Name: "@Dabs"},
		{Name: "@ModC", Dependencies: []string{"@CF", "@Dabs"}},
	}}
	list := loadorder.NewList([]string{"@CF", "@ModC"})

	invReports := Check(inv, Options{})
	if len(invReports["@ModC"].Missing) != 0 {
		t.Errorf("Inventory mode Missing = %v, want none", invReports["@ModC"].Missing)
	}

	loReports := Check(inv, Options{AgainstLoadOrder: true, LoadOrder: list})
	if !reflect.DeepEqual(loReports["@ModC"].Missing, []string{"@Dabs"}) {
		t.Errorf("Load-order mode Missing = %v, want [@Dabs]", loReports["@ModC"].Missing)
	}
}

func TestCheckAgainstNilLoadOrder(t *testing.T) {
	inv := &mod.Inventory{Mods: []mod.Mod{
		{Name: "@ModC", Dependencies: []string{"@CF"}},
	}}

	reports := Check(inv, Options{AgainstLoadOrder: true})

	if !reflect.DeepEqual(reports["@ModC"].Missing, []string{"@CF"}) {
		t.Errorf("Missing = %v, want [@CF] against empty reference set", reports["@ModC"].Missing)
	}
}

package services

import (
	"errors"
	"testing"
)

func TestCartAddAccumulatesQty(t *testing.T) {
	db := testDB(t)
	catalog := newCatalog(db)
	cart := newCart(db)

	item := mustCreateItem(t, catalog, "Idli", 3000)

	for i := 0; i < 5; i++ {
		mustAdd(t, cart, item.ID)
	}

	items, _, err := cart.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("lines = %d, want 1 (one line per item)", len(items))
	}
	if items[0].Qty != 5 {
		t.Fatalf("qty = %d, want 5", items[0].Qty)
	}
}

func TestCartAddUnknownItem(t *testing.T) {
	db := testDB(t)
	cart := newCart(db)

	if err := cart.Add(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCartTotals(t *testing.T) {
	db := testDB(t)
	catalog := newCatalog(db)
	cart := newCart(db)

	a := mustCreateItem(t, catalog, "Idli", 3000)
	b := mustCreateItem(t, catalog, "Dosai", 5000)

	// {a qty 2, b qty 1} -> 2*30.00 + 50.00 = 110.00
	mustAdd(t, cart, a.ID)
	mustAdd(t, cart, a.ID)
	mustAdd(t, cart, b.ID)

	_, totals, err := cart.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if totals.Subtotal != 11000 {
		t.Fatalf("subtotal = %d, want 11000", totals.Subtotal)
	}
	if totals.Total != totals.Subtotal {
		t.Fatalf("total = %d, want subtotal %d (no tax model)", totals.Total, totals.Subtotal)
	}
}

func TestCartAdjustQtyToZeroRemovesLine(t *testing.T) {
	db := testDB(t)
	catalog := newCatalog(db)
	cart := newCart(db)

	item := mustCreateItem(t, catalog, "Vadai", 3500)
	mustAdd(t, cart, item.ID)
	mustAdd(t, cart, item.ID)
	mustAdd(t, cart, item.ID)

	if err := cart.AdjustQty(item.ID, -3); err != nil {
		t.Fatalf("adjust: %v", err)
	}

	items, _, _ := cart.Get()
	if len(items) != 0 {
		t.Fatalf("line should be removed at qty 0, got %#v", items)
	}

	// the freed slot must accept the item again
	mustAdd(t, cart, item.ID)
	items, _, _ = cart.Get()
	if len(items) != 1 || items[0].Qty != 1 {
		t.Fatalf("re-add after adjust-to-zero: %#v", items)
	}
}

func TestCartAdjustQtyAbsentIsNoop(t *testing.T) {
	db := testDB(t)
	cart := newCart(db)

	if err := cart.AdjustQty(7, 1); err != nil {
		t.Fatalf("adjust on empty cart must be a no-op, got %v", err)
	}
}

func TestCartPriceSnapshotSurvivesCatalogEdit(t *testing.T) {
	db := testDB(t)
	catalog := newCatalog(db)
	cart := newCart(db)

	item := mustCreateItem(t, catalog, "Appam", 4500)
	mustAdd(t, cart, item.ID)

	if _, err := catalog.Update(item.ID, &MenuItemIn{Name: "Appam", Price: 9900}); err != nil {
		t.Fatalf("update: %v", err)
	}

	items, totals, _ := cart.Get()
	if items[0].UnitPrice != 4500 {
		t.Fatalf("line price = %d, want the add-time snapshot 4500", items[0].UnitPrice)
	}
	if totals.Subtotal != 4500 {
		t.Fatalf("subtotal = %d, want 4500", totals.Subtotal)
	}
}

func TestCartClearAndRemove(t *testing.T) {
	db := testDB(t)
	catalog := newCatalog(db)
	cart := newCart(db)

	a := mustCreateItem(t, catalog, "Idli", 3000)
	b := mustCreateItem(t, catalog, "Dosai", 5000)
	mustAdd(t, cart, a.ID)
	mustAdd(t, cart, b.ID)

	if err := cart.Remove(a.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	items, _, _ := cart.Get()
	if len(items) != 1 || items[0].MenuItemID != b.ID {
		t.Fatalf("after remove: %#v", items)
	}

	if err := cart.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	items, totals, _ := cart.Get()
	if len(items) != 0 || totals.Total != 0 {
		t.Fatalf("after clear: items=%#v totals=%#v", items, totals)
	}
}

func TestCartReAddAfterRemove(t *testing.T) {
	db := testDB(t)
	catalog := newCatalog(db)
	cart := newCart(db)

	item := mustCreateItem(t, catalog, "Poori", 4000)

	mustAdd(t, cart, item.ID)
	if err := cart.Remove(item.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	// removal must fully release the line, not leave a dead row blocking
	// the unique menu_item_id slot
	mustAdd(t, cart, item.ID)

	items, totals, err := cart.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(items) != 1 || items[0].Qty != 1 {
		t.Fatalf("re-added line = %#v, want one fresh line with qty 1", items)
	}
	if totals.Subtotal != 4000 {
		t.Fatalf("subtotal = %d, want 4000", totals.Subtotal)
	}
}

func TestCartReAddAfterClear(t *testing.T) {
	db := testDB(t)
	catalog := newCatalog(db)
	cart := newCart(db)

	a := mustCreateItem(t, catalog, "Idli", 3000)
	b := mustCreateItem(t, catalog, "Dosai", 5000)
	mustAdd(t, cart, a.ID)
	mustAdd(t, cart, b.ID)

	if err := cart.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	mustAdd(t, cart, a.ID)
	mustAdd(t, cart, b.ID)

	items, _, _ := cart.Get()
	if len(items) != 2 {
		t.Fatalf("lines after clear+re-add = %d, want 2", len(items))
	}
}

// Released under an MIT license. See LICENSE.

package namespace

import (
	"testing"
)

func TestParseItem(t *testing.T) {
	i := ParseItem("std::math::consts::pi")

	if i.Target != "pi" || i.Path.String() != "std::math::consts" {
		t.Fatalf("unexpected item %#v", i)
	}

	if !i.Qualified() {
		t.Fatal("expected a qualified item")
	}

	if s := i.String(); s != "std::math::consts::pi" {
		t.Fatalf("expected std::math::consts::pi, got %s", s)
	}

	r := ParseItem("square")
	if r.Qualified() || r.String() != "square" {
		t.Fatalf("unexpected item %#v", r)
	}
}

func TestJoin(t *testing.T) {
	ns := Parse("std::math")

	if s := ns.Join("square").String(); s != "std::math::square" {
		t.Fatalf("expected std::math::square, got %s", s)
	}

	if s := ns.Join("consts::pi").String(); s != "std::math::consts::pi" {
		t.Fatalf("expected std::math::consts::pi, got %s", s)
	}

	if len(ns) != 2 {
		t.Fatal("join modified the namespace")
	}
}

func TestOrder(t *testing.T) {
	items := []Item{
		ParseItem("a"),
		ParseItem("z"),
		ParseItem("std::cmp::="),
		ParseItem("std::math::+"),
		ParseItem("std::math::consts::e"),
	}

	for i := 1; i < len(items); i++ {
		if items[i-1].Compare(items[i]) >= 0 {
			t.Fatalf("expected %s before %s", items[i-1], items[i])
		}
	}

	if !ParseItem("std::x").Equal(New("std").Join("x")) {
		t.Fatal("expected equal items")
	}

	if ParseItem("std::x").Equal(ParseItem("x")) {
		t.Fatal("items in different namespaces should not be equal")
	}
}

package quote

import (
	"encoding/json"
	"testing"
)

func TestFlexUnmarshal(t *testing.T) {
	var got struct {
		GRT Flex `json:"grt"`
		LOA Flex `json:"loa"`
		DWT Flex `json:"dwt"`
	}
	if err := json.Unmarshal([]byte(`{"grt":"10,000","loa":149.5,"dwt":null}`), &got); err != nil {
		t.Fatal(err)
	}
	if v, ok := got.GRT.Num(); !ok || v != 10000 {
		t.Fatalf("grt = (%v, %v)", v, ok)
	}
	if got.GRT.Raw() != "10,000" {
		t.Fatalf("grt raw = %q", got.GRT.Raw())
	}
	if v, ok := got.LOA.Num(); !ok || v != 149.5 {
		t.Fatalf("loa = (%v, %v)", v, ok)
	}
	if got.DWT.Defined() {
		t.Fatal("null must leave the value absent")
	}

	var bad Flex
	if err := json.Unmarshal([]byte(`[1]`), &bad); err == nil {
		t.Fatal("arrays must be rejected")
	}
}

func TestFlexNum(t *testing.T) {
	if _, ok := (Flex{}).Num(); ok {
		t.Fatal("absent value must not parse")
	}
	if v, ok := String("").Num(); !ok || v != 0 {
		t.Fatal("present empty string coerces to zero")
	}
	if v, ok := String(" 1,234.5 ").Num(); !ok || v != 1234.5 {
		t.Fatalf("got (%v, %v)", v, ok)
	}
	if _, ok := String("PLS ADVISE").Num(); ok {
		t.Fatal("text must not parse")
	}
	if _, ok := String("Inf").Num(); ok {
		t.Fatal("infinities must be rejected")
	}
}

func TestFlexOr(t *testing.T) {
	if got := String("x").Or("y"); got != "x" {
		t.Fatalf("got %q", got)
	}
	if got := String("").Or("y"); got != "y" {
		t.Fatalf("got %q", got)
	}
	if got := (Flex{}).Or("y"); got != "y" {
		t.Fatalf("got %q", got)
	}
}

func TestFlexMarshal(t *testing.T) {
	b, err := json.Marshal(map[string]Flex{"a": Number(12.5), "b": String("TBN"), "c": {}})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"a":12.5,"b":"TBN","c":null}` {
		t.Fatalf("got %s", string(b))
	}
}

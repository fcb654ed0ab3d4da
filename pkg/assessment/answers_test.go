package assessment_test

import (
	"encoding/json"
	"testing"

	"github.com/diagnostica/diagnostica/pkg/assessment"
)

func TestAnswerMapUnmarshal(t *testing.T) {
	payload := []byte(`{"d1": 3, "m1": [0, 2, 5], "s1": 42}`)

	var m assessment.AnswerMap
	if err := json.Unmarshal(payload, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if v, ok := m.Single("d1"); !ok || v != 3 {
		t.Errorf("d1 = %d (ok=%v), want 3", v, ok)
	}
	if v, ok := m.Single("s1"); !ok || v != 42 {
		t.Errorf("s1 = %d (ok=%v), want 42", v, ok)
	}

	a, ok := m["m1"]
	if !ok || !a.IsMulti() {
		t.Fatalf("m1 missing or not multi: %+v", a)
	}
	if !a.Contains(2) || a.Contains(1) {
		t.Errorf("m1 indices = %v, want {0,2,5}", a.Indices())
	}
}

func TestAnswerMapUnmarshalDropsMalformedEntries(t *testing.T) {
	payload := []byte(`{"d1": 2, "d2": "tampered", "d3": {"nested": true}, "d4": null, "m1": [1, "x"]}`)

	var m assessment.AnswerMap
	if err := json.Unmarshal(payload, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if _, ok := m["d2"]; ok {
		t.Error("string entry should have been dropped")
	}
	if _, ok := m["d3"]; ok {
		t.Error("object entry should have been dropped")
	}
	if _, ok := m["m1"]; ok {
		t.Error("mixed-type array should have been dropped")
	}
	if _, ok := m["d4"]; ok {
		t.Error("null entry should have been dropped")
	}
	if v, ok := m.Single("d1"); !ok || v != 2 {
		t.Errorf("d1 = %d (ok=%v), want 2", v, ok)
	}
}

func TestAnswerMapRoundTrip(t *testing.T) {
	m := assessment.AnswerMap{
		"d1": assessment.Single(1),
		"m2": assessment.Multi(0, 3),
	}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back assessment.AnswerMap
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if v, _ := back.Single("d1"); v != 1 {
		t.Errorf("d1 = %d, want 1", v)
	}
	if a := back["m2"]; !a.IsMulti() || !a.Contains(0) || !a.Contains(3) {
		t.Errorf("m2 = %v, want multi {0,3}", a.Indices())
	}
}

func TestAnswerMapSingleOnMulti(t *testing.T) {
	m := assessment.AnswerMap{"m1": assessment.Multi(1)}
	if _, ok := m.Single("m1"); ok {
		t.Error("Single on a multi answer should report ok=false")
	}
	if _, ok := m.Single("absent"); ok {
		t.Error("Single on a missing answer should report ok=false")
	}
}
